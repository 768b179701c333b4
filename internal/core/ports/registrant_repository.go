package ports

import (
	"context"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

// RegistrantRepository is the persistence boundary for registrant records.
// It consumes a Scope but never an Identity: policy stays in the core.
type RegistrantRepository interface {
	// List returns every registrant matching scope. A ScopeNone scope
	// yields an empty result without touching the store.
	List(ctx context.Context, scope domain.Scope) ([]domain.Registrant, error)
	FindByID(ctx context.Context, id string) (*domain.Registrant, error)
	// UpdatePayment sets the paid flag. The stored transaction number is
	// cleared whenever paid is false, regardless of the value supplied.
	UpdatePayment(ctx context.Context, id string, paid bool, transactionNumber string) error
}
