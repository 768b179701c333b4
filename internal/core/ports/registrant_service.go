package ports

import (
	"context"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
)

// UpdatePaymentInput carries the payment verification verdict for one
// registrant. FullName and Email address the notification, not the store.
type UpdatePaymentInput struct {
	ID                string
	Paid              bool
	FullName          string
	Email             string
	TransactionNumber string
}

// ExportResult is a fully rendered CSV export held in a per-request
// buffer. Nothing is shared between concurrent exports.
type ExportResult struct {
	Filename string
	Content  []byte
}

// RegistrantService defines the admin-facing use cases over registrants.
// Every operation derives its visibility from the caller's identity.
type RegistrantService interface {
	List(ctx context.Context, id domain.Identity) ([]domain.Registrant, error)
	PaymentImage(ctx context.Context, registrantID string) (string, error)
	// UpdatePayment persists the verdict and then sends the status email.
	// The returned string is the mail message id. A mail failure is
	// reported but the committed update is not rolled back.
	UpdatePayment(ctx context.Context, in UpdatePaymentInput) (string, error)
	Export(ctx context.Context, id domain.Identity) (*ExportResult, error)
}
