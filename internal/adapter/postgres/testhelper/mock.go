package testhelper

import (
	"testing"

	"github.com/pashagolub/pgxmock/v2"
)

// NewMockDB returns a pgxmock pool that fails the test on unmet expectations.
func NewMockDB(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()

	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("testhelper: pgxmock.NewPool: %v", err)
	}

	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("testhelper: unmet pgxmock expectations: %v", err)
		}
		mock.Close()
	})

	return mock
}
