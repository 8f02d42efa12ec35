package auth

import "github.com/heartmarshall/fritter-backend/internal/domain"

// AuthResult is returned by Register and Login.
// Credit is set only on registration.
type AuthResult struct {
	AccessToken string
	User        *domain.User
	Credit      *domain.CreditRecord
}
