package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
)

const exportFilename = "userData.csv"

// exportHeader fixes the CSV column order expected by the admin frontend.
var exportHeader = []string{
	"S No", "Email", "Full Name", "Phone", "College Name",
	"Department", "Paid", "Transaction Number", "Selected Department",
}

// RegistrantService implements the admin use cases over registrant
// records. List and Export derive their visibility from the same
// domain.Scope, so an export can never contain rows the list would hide.
type RegistrantService struct {
	repo   ports.RegistrantRepository
	mailer ports.Mailer
	log    zerolog.Logger
}

func NewRegistrantService(repo ports.RegistrantRepository, mailer ports.Mailer, log zerolog.Logger) *RegistrantService {
	return &RegistrantService{repo: repo, mailer: mailer, log: log}
}

// List returns the registrants visible to the identity.
func (s *RegistrantService) List(ctx context.Context, id domain.Identity) ([]domain.Registrant, error) {
	return s.repo.List(ctx, domain.ScopeFor(id))
}

// PaymentImage returns the stored screenshot URL for a registrant.
func (s *RegistrantService) PaymentImage(ctx context.Context, registrantID string) (string, error) {
	reg, err := s.repo.FindByID(ctx, registrantID)
	if err != nil {
		return "", err
	}
	if reg.TransactionScreenshot == "" {
		return "", domain.ErrImageNotFound
	}
	return reg.TransactionScreenshot, nil
}

// UpdatePayment persists the verification verdict and then emails the
// registrant. The two steps share no transaction: a mail failure is
// surfaced to the caller but the committed flag update is never rolled
// back, and no retry is attempted.
func (s *RegistrantService) UpdatePayment(ctx context.Context, in ports.UpdatePaymentInput) (string, error) {
	if err := s.repo.UpdatePayment(ctx, in.ID, in.Paid, in.TransactionNumber); err != nil {
		s.log.Error().Err(err).Str("id", in.ID).Msg("payment update failed")
		return "", err
	}

	subject, body, err := paymentStatusMail(in.Paid, in.FullName)
	if err != nil {
		return "", fmt.Errorf("render status mail: %w", err)
	}

	messageID, err := s.mailer.Send(ctx, in.Email, subject, body)
	if err != nil {
		s.log.Error().Err(err).Str("id", in.ID).Str("email", in.Email).Msg("status email failed after update")
		return "", fmt.Errorf("%w: %v", domain.ErrMailDelivery, err)
	}

	s.log.Info().Str("id", in.ID).Bool("paid", in.Paid).Str("message_id", messageID).Msg("payment updated")
	return messageID, nil
}

// Export renders the scoped registrant set as CSV into a buffer owned by
// this request. Nothing is shared between concurrent exports.
func (s *RegistrantService) Export(ctx context.Context, id domain.Identity) (*ports.ExportResult, error) {
	registrants, err := s.repo.List(ctx, domain.ScopeFor(id))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range registrants {
		paid := "No"
		if r.Paid {
			paid = "Yes"
		}
		row := []string{
			strconv.Itoa(i + 1),
			r.Email,
			r.FullName,
			r.PhoneNumber,
			r.CollegeName,
			r.Department,
			paid,
			r.TransactionNumber,
			r.SelectedDepartment,
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return &ports.ExportResult{Filename: exportFilename, Content: buf.Bytes()}, nil
}
