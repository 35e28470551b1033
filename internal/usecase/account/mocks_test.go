package account

import (
	"context"
	"testing"
	"time"

	"github.com/jhc-clinics/hms-api/internal/audit"
	"github.com/jhc-clinics/hms-api/internal/domain/directory"
	"github.com/jhc-clinics/hms-api/internal/mail"
	"github.com/jhc-clinics/hms-api/internal/models"
)

// Compile-time check so the mock tracks the directory contract.
var _ directory.Repository = (*mockDirectoryRepository)(nil)

// mockDirectoryRepository is a function-field mock: each test wires only the
// methods its use case touches. Unwired lookups behave like an empty
// directory and report directory.ErrNotFound.
type mockDirectoryRepository struct {
	HospitalEmailExistsFunc    func(ctx context.Context, email string) (bool, error)
	HospitalPhoneExistsFunc    func(ctx context.Context, phone string) (bool, error)
	HospitalUsernameExistsFunc func(ctx context.Context, username string) (bool, error)
	CreateHospitalFunc         func(ctx context.Context, h *models.Hospital) error
	HospitalByEmailFunc        func(ctx context.Context, email string) (*models.Hospital, error)
	HospitalByIDFunc           func(ctx context.Context, id uint) (*models.Hospital, error)

	DoctorEmailExistsFunc func(ctx context.Context, email string) (bool, error)
	DoctorPhoneExistsFunc func(ctx context.Context, phone string) (bool, error)
	CreateDoctorFunc      func(ctx context.Context, d *models.Doctor) error
	DoctorByEmailFunc     func(ctx context.Context, email string) (*models.Doctor, error)
	DoctorByIDFunc        func(ctx context.Context, id uint) (*models.Doctor, error)
	UpdateDoctorFunc      func(ctx context.Context, d *models.Doctor) error

	PatientEmailExistsFunc func(ctx context.Context, email string) (bool, error)
	PatientPhoneExistsFunc func(ctx context.Context, phone string) (bool, error)
	CreatePatientFunc      func(ctx context.Context, p *models.Patient) error
	PatientByEmailFunc     func(ctx context.Context, email string) (*models.Patient, error)
	UpdatePatientFunc      func(ctx context.Context, p *models.Patient) error
}

func (m *mockDirectoryRepository) HospitalEmailExists(ctx context.Context, email string) (bool, error) {
	if m.HospitalEmailExistsFunc != nil {
		return m.HospitalEmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *mockDirectoryRepository) HospitalPhoneExists(ctx context.Context, phone string) (bool, error) {
	if m.HospitalPhoneExistsFunc != nil {
		return m.HospitalPhoneExistsFunc(ctx, phone)
	}
	return false, nil
}

func (m *mockDirectoryRepository) HospitalUsernameExists(ctx context.Context, username string) (bool, error) {
	if m.HospitalUsernameExistsFunc != nil {
		return m.HospitalUsernameExistsFunc(ctx, username)
	}
	return false, nil
}

func (m *mockDirectoryRepository) CreateHospital(ctx context.Context, h *models.Hospital) error {
	if m.CreateHospitalFunc != nil {
		return m.CreateHospitalFunc(ctx, h)
	}
	return nil
}

func (m *mockDirectoryRepository) HospitalByEmail(ctx context.Context, email string) (*models.Hospital, error) {
	if m.HospitalByEmailFunc != nil {
		return m.HospitalByEmailFunc(ctx, email)
	}
	return nil, directory.ErrNotFound
}

func (m *mockDirectoryRepository) HospitalByID(ctx context.Context, id uint) (*models.Hospital, error) {
	if m.HospitalByIDFunc != nil {
		return m.HospitalByIDFunc(ctx, id)
	}
	return nil, directory.ErrNotFound
}

func (m *mockDirectoryRepository) DoctorEmailExists(ctx context.Context, email string) (bool, error) {
	if m.DoctorEmailExistsFunc != nil {
		return m.DoctorEmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *mockDirectoryRepository) DoctorPhoneExists(ctx context.Context, phone string) (bool, error) {
	if m.DoctorPhoneExistsFunc != nil {
		return m.DoctorPhoneExistsFunc(ctx, phone)
	}
	return false, nil
}

func (m *mockDirectoryRepository) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	if m.CreateDoctorFunc != nil {
		return m.CreateDoctorFunc(ctx, d)
	}
	return nil
}

func (m *mockDirectoryRepository) DoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	if m.DoctorByEmailFunc != nil {
		return m.DoctorByEmailFunc(ctx, email)
	}
	return nil, directory.ErrNotFound
}

func (m *mockDirectoryRepository) DoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	if m.DoctorByIDFunc != nil {
		return m.DoctorByIDFunc(ctx, id)
	}
	return nil, directory.ErrNotFound
}

func (m *mockDirectoryRepository) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	if m.UpdateDoctorFunc != nil {
		return m.UpdateDoctorFunc(ctx, d)
	}
	return nil
}

func (m *mockDirectoryRepository) PatientEmailExists(ctx context.Context, email string) (bool, error) {
	if m.PatientEmailExistsFunc != nil {
		return m.PatientEmailExistsFunc(ctx, email)
	}
	return false, nil
}

func (m *mockDirectoryRepository) PatientPhoneExists(ctx context.Context, phone string) (bool, error) {
	if m.PatientPhoneExistsFunc != nil {
		return m.PatientPhoneExistsFunc(ctx, phone)
	}
	return false, nil
}

func (m *mockDirectoryRepository) CreatePatient(ctx context.Context, p *models.Patient) error {
	if m.CreatePatientFunc != nil {
		return m.CreatePatientFunc(ctx, p)
	}
	return nil
}

func (m *mockDirectoryRepository) PatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	if m.PatientByEmailFunc != nil {
		return m.PatientByEmailFunc(ctx, email)
	}
	return nil, directory.ErrNotFound
}

func (m *mockDirectoryRepository) UpdatePatient(ctx context.Context, p *models.Patient) error {
	if m.UpdatePatientFunc != nil {
		return m.UpdatePatientFunc(ctx, p)
	}
	return nil
}

// --- Notification capture ---

type sentMail struct {
	kind      mail.EventKind
	email     string
	firstName string
	secret    string
}

var _ mail.Notifier = (*recordingNotifier)(nil)

// recordingNotifier forwards every delivery to a channel so tests can wait
// for the async dispatcher to drain.
type recordingNotifier struct {
	sent chan sentMail
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{sent: make(chan sentMail, 10)}
}

func (n *recordingNotifier) SendDoctorWelcome(email, firstName, lastName, password string) error {
	n.sent <- sentMail{kind: mail.KindDoctorWelcome, email: email, firstName: firstName, secret: password}
	return nil
}

func (n *recordingNotifier) SendPatientWelcome(email, firstName, lastName, token string) error {
	n.sent <- sentMail{kind: mail.KindPatientWelcome, email: email, firstName: firstName, secret: token}
	return nil
}

func (n *recordingNotifier) SendPasswordReset(email, firstName, lastName, token string) error {
	n.sent <- sentMail{kind: mail.KindPasswordReset, email: email, firstName: firstName, secret: token}
	return nil
}

func (n *recordingNotifier) SendPasswordResetSuccess(email, firstName, lastName string) error {
	n.sent <- sentMail{kind: mail.KindPasswordResetSuccess, email: email, firstName: firstName}
	return nil
}

func waitForMail(t *testing.T, n *recordingNotifier) sentMail {
	t.Helper()
	select {
	case m := <-n.sent:
		return m
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return sentMail{}
	}
}

// --- Shared test plumbing ---

// The nil-db audit logger turns audit rows into no-ops.
func newTestAudit() *audit.Dispatcher {
	return audit.NewDispatcher(audit.New(nil))
}
