package credit

import "github.com/heartmarshall/fritter-backend/internal/domain"

// ExchangeResult holds both records as persisted by an exchange.
type ExchangeResult struct {
	Giver    domain.CreditRecord
	Receiver domain.CreditRecord
}
