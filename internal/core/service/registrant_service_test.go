package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/domain"
	"github.com/Clem0-o7/csetechutsav25-user-admin-backend/internal/core/ports"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type stubRegistrantRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Registrant
	listErr   error
	updateErr error
}

func newStubRegistrantRepo(regs ...domain.Registrant) *stubRegistrantRepo {
	repo := &stubRegistrantRepo{byID: make(map[string]*domain.Registrant)}
	for i := range regs {
		r := regs[i]
		repo.byID[r.ID] = &r
	}
	return repo
}

func (r *stubRegistrantRepo) List(_ context.Context, scope domain.Scope) ([]domain.Registrant, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Registrant{}
	for _, reg := range r.byID {
		if scope.Matches(*reg) {
			out = append(out, *reg)
		}
	}
	return out, nil
}

func (r *stubRegistrantRepo) FindByID(_ context.Context, id string) (*domain.Registrant, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrRegistrantNotFound
	}
	copied := *reg
	return &copied, nil
}

func (r *stubRegistrantRepo) UpdatePayment(_ context.Context, id string, paid bool, transactionNumber string) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	reg, ok := r.byID[id]
	if !ok {
		return domain.ErrRegistrantNotFound
	}
	if !paid {
		transactionNumber = ""
	}
	reg.Paid = paid
	reg.TransactionNumber = transactionNumber
	return nil
}

type stubMailer struct {
	sendErr   error
	messageID string
	sent      []string // recipients
	subjects  []string
}

func (m *stubMailer) Send(_ context.Context, to, subject, _ string) (string, error) {
	if m.sendErr != nil {
		return "", m.sendErr
	}
	m.sent = append(m.sent, to)
	m.subjects = append(m.subjects, subject)
	return m.messageID, nil
}

func seedRegistrants() []domain.Registrant {
	return []domain.Registrant{
		{ID: "1", Email: "a@x.edu", FullName: "Alice", PhoneNumber: "9000000001", CollegeName: "TCE", Department: "CSE", SelectedDepartment: "IT"},
		{ID: "2", Email: "b@x.edu", FullName: "Bob", PhoneNumber: "9000000002", CollegeName: "TCE", Department: "IT", SelectedDepartment: "CSE", Paid: true, TransactionNumber: "TXN9"},
		{ID: "3", Email: "c@x.edu", FullName: "Cara", PhoneNumber: "9000000003", CollegeName: "NEC", Department: "DS", SelectedDepartment: "IT", TransactionScreenshot: "https://blob.example/payments/c.png"},
	}
}

func newRegistrantSvc(repo *stubRegistrantRepo, mailer *stubMailer) *RegistrantService {
	if mailer == nil {
		mailer = &stubMailer{messageID: "<id@test>"}
	}
	return NewRegistrantService(repo, mailer, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// List
// ---------------------------------------------------------------------------

func TestRegistrantService_List_DepartmentScope(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	got, err := svc.List(context.Background(), domain.Identity{Role: domain.RoleDepartmentAdmin, Department: "IT"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 IT registrants, got %d", len(got))
	}
	for _, r := range got {
		if r.SelectedDepartment != "IT" {
			t.Fatalf("out-of-scope registrant leaked: %+v", r)
		}
	}
}

func TestRegistrantService_List_SuperAdminSeesAll(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	got, err := svc.List(context.Background(), domain.Identity{Role: domain.RoleSuperAdmin, Department: domain.DepartmentAll})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected every registrant, got %d", len(got))
	}
}

func TestRegistrantService_List_EmptyDepartmentSeesNothing(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	got, err := svc.List(context.Background(), domain.Identity{Role: domain.RoleDepartmentAdmin, Department: ""})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected zero rows for scope-less identity, got %d", len(got))
	}
}

// ---------------------------------------------------------------------------
// PaymentImage
// ---------------------------------------------------------------------------

func TestRegistrantService_PaymentImage(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	url, err := svc.PaymentImage(context.Background(), "3")
	if err != nil {
		t.Fatalf("payment image: %v", err)
	}
	if url != "https://blob.example/payments/c.png" {
		t.Fatalf("unexpected url %q", url)
	}
}

func TestRegistrantService_PaymentImage_MissingReference(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	if _, err := svc.PaymentImage(context.Background(), "1"); !errors.Is(err, domain.ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}

func TestRegistrantService_PaymentImage_MissingRecord(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	if _, err := svc.PaymentImage(context.Background(), "999"); !errors.Is(err, domain.ErrRegistrantNotFound) {
		t.Fatalf("expected ErrRegistrantNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// UpdatePayment
// ---------------------------------------------------------------------------

func TestRegistrantService_UpdatePayment_Verified(t *testing.T) {
	repo := newStubRegistrantRepo(seedRegistrants()...)
	mailer := &stubMailer{messageID: "<msg-1@test>"}
	svc := newRegistrantSvc(repo, mailer)

	id, err := svc.UpdatePayment(context.Background(), ports.UpdatePaymentInput{
		ID: "1", Paid: true, FullName: "Alice", Email: "a@x.edu", TransactionNumber: "TXN123",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if id != "<msg-1@test>" {
		t.Fatalf("unexpected message id %q", id)
	}

	stored, _ := repo.FindByID(context.Background(), "1")
	if !stored.Paid || stored.TransactionNumber != "TXN123" {
		t.Fatalf("update not persisted: %+v", stored)
	}
	if len(mailer.sent) != 1 || mailer.sent[0] != "a@x.edu" {
		t.Fatalf("expected one mail to a@x.edu, got %v", mailer.sent)
	}
	if !strings.Contains(mailer.subjects[0], "Successful") {
		t.Fatalf("expected success subject, got %q", mailer.subjects[0])
	}
}

func TestRegistrantService_UpdatePayment_RejectedClearsTransaction(t *testing.T) {
	repo := newStubRegistrantRepo(seedRegistrants()...)
	mailer := &stubMailer{messageID: "<msg-2@test>"}
	svc := newRegistrantSvc(repo, mailer)

	// paid=false with a transaction number supplied: the stored value
	// must still be cleared.
	_, err := svc.UpdatePayment(context.Background(), ports.UpdatePaymentInput{
		ID: "2", Paid: false, FullName: "Bob", Email: "b@x.edu", TransactionNumber: "STALE",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	stored, _ := repo.FindByID(context.Background(), "2")
	if stored.Paid {
		t.Fatalf("expected paid=false")
	}
	if stored.TransactionNumber != "" {
		t.Fatalf("expected cleared transaction number, got %q", stored.TransactionNumber)
	}
	if !strings.Contains(mailer.subjects[0], "Failed") {
		t.Fatalf("expected failure subject, got %q", mailer.subjects[0])
	}
}

func TestRegistrantService_UpdatePayment_MailFailureKeepsUpdate(t *testing.T) {
	repo := newStubRegistrantRepo(seedRegistrants()...)
	mailer := &stubMailer{sendErr: errors.New("smtp unreachable")}
	svc := newRegistrantSvc(repo, mailer)

	_, err := svc.UpdatePayment(context.Background(), ports.UpdatePaymentInput{
		ID: "1", Paid: true, FullName: "Alice", Email: "a@x.edu", TransactionNumber: "TXN123",
	})
	if !errors.Is(err, domain.ErrMailDelivery) {
		t.Fatalf("expected ErrMailDelivery, got %v", err)
	}

	// The committed flag update is not rolled back.
	stored, _ := repo.FindByID(context.Background(), "1")
	if !stored.Paid || stored.TransactionNumber != "TXN123" {
		t.Fatalf("update rolled back unexpectedly: %+v", stored)
	}
}

func TestRegistrantService_UpdatePayment_StoreFailureSkipsMail(t *testing.T) {
	repo := newStubRegistrantRepo(seedRegistrants()...)
	repo.updateErr = errors.New("store down")
	mailer := &stubMailer{messageID: "<x@test>"}
	svc := newRegistrantSvc(repo, mailer)

	if _, err := svc.UpdatePayment(context.Background(), ports.UpdatePaymentInput{
		ID: "1", Paid: true, FullName: "Alice", Email: "a@x.edu",
	}); err == nil {
		t.Fatalf("expected error")
	}
	if len(mailer.sent) != 0 {
		t.Fatalf("no mail must be sent when the update fails")
	}
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestRegistrantService_Export_ScopedLikeList(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)
	identity := domain.Identity{Role: domain.RoleDepartmentAdmin, Department: "CSE"}

	export, err := svc.Export(context.Background(), identity)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if export.Filename != "userData.csv" {
		t.Fatalf("unexpected filename %q", export.Filename)
	}

	lines := strings.Split(strings.TrimSpace(string(export.Content)), "\n")
	if lines[0] != "S No,Email,Full Name,Phone,College Name,Department,Paid,Transaction Number,Selected Department" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("expected header + 1 CSE row, got %d lines", len(lines))
	}
	if !strings.Contains(lines[1], "b@x.edu") || !strings.Contains(lines[1], "Yes") {
		t.Fatalf("unexpected row: %q", lines[1])
	}
	if strings.Contains(string(export.Content), "a@x.edu") {
		t.Fatalf("export leaked an out-of-scope registrant")
	}
}

func TestRegistrantService_Export_PaidRendersYesNo(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	export, err := svc.Export(context.Background(), domain.Identity{Role: domain.RoleSuperAdmin, Department: domain.DepartmentAll})
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	content := string(export.Content)
	if !strings.Contains(content, ",Yes,") || !strings.Contains(content, ",No,") {
		t.Fatalf("expected Yes/No paid rendering:\n%s", content)
	}
}

func TestRegistrantService_Export_ConcurrentRequestsDoNotMix(t *testing.T) {
	svc := newRegistrantSvc(newStubRegistrantRepo(seedRegistrants()...), nil)

	itID := domain.Identity{Role: domain.RoleDepartmentAdmin, Department: "IT"}
	cseID := domain.Identity{Role: domain.RoleDepartmentAdmin, Department: "CSE"}

	const rounds = 50
	var wg sync.WaitGroup
	errs := make(chan string, rounds*2)

	run := func(id domain.Identity, own, other string) {
		defer wg.Done()
		for i := 0; i < rounds; i++ {
			export, err := svc.Export(context.Background(), id)
			if err != nil {
				errs <- err.Error()
				return
			}
			content := string(export.Content)
			if !strings.Contains(content, own) {
				errs <- "missing own scope row for " + id.Department
				return
			}
			if strings.Contains(content, other) {
				errs <- "foreign scope row leaked into " + id.Department
				return
			}
		}
	}

	wg.Add(2)
	go run(itID, "a@x.edu", "b@x.edu")
	go run(cseID, "b@x.edu", "a@x.edu")
	wg.Wait()
	close(errs)

	for msg := range errs {
		t.Fatal(msg)
	}
}
