package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"sante-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/utils/tests"
)

// newTestDB returns a *gorm.DB that never reaches a real database. The stub
// repositories below ignore the handle entirely; the usecases only need a
// non-nil value to thread context through.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(tests.DummyDialector{}, &gorm.Config{})
	require.NoError(t, err)
	return db
}

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type stubAppointmentRepo struct {
	created    []*entity.Appointment
	updated    []*entity.Appointment
	byID       map[uuid.UUID]*entity.Appointment
	atSlot     *entity.Appointment
	byDate     []entity.Appointment
	byDoctor   []entity.Appointment
	byPatient  []entity.Appointment
	all        []entity.Appointment
	deletedIDs []uuid.UUID
	deleteN    int64
	createErr  error
	updateErr  error
}

func (s *stubAppointmentRepo) Create(db *gorm.DB, a *entity.Appointment) error {
	if s.createErr != nil {
		return s.createErr
	}
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	s.created = append(s.created, a)
	return nil
}

func (s *stubAppointmentRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Appointment, error) {
	return s.byID[id], nil
}

func (s *stubAppointmentRepo) FindAll(db *gorm.DB, limit, offset int) ([]entity.Appointment, int64, error) {
	return s.all, int64(len(s.all)), nil
}

func (s *stubAppointmentRepo) FindByDate(db *gorm.DB, date time.Time) ([]entity.Appointment, error) {
	return s.byDate, nil
}

func (s *stubAppointmentRepo) FindByDoctorAndDate(db *gorm.DB, doctorID uuid.UUID, date time.Time) ([]entity.Appointment, error) {
	return s.byDoctor, nil
}

func (s *stubAppointmentRepo) FindByPatientID(db *gorm.DB, patientID uuid.UUID) ([]entity.Appointment, error) {
	return s.byPatient, nil
}

func (s *stubAppointmentRepo) FindAtSlot(db *gorm.DB, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) (*entity.Appointment, error) {
	if s.atSlot != nil && excludeID != nil && s.atSlot.ID == *excludeID {
		return nil, nil
	}
	if s.atSlot != nil && s.atSlot.TimeOfDay() != timeOfDay {
		return nil, nil
	}
	return s.atSlot, nil
}

func (s *stubAppointmentRepo) Update(db *gorm.DB, a *entity.Appointment) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	s.updated = append(s.updated, a)
	return nil
}

func (s *stubAppointmentRepo) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	s.deletedIDs = append(s.deletedIDs, id)
	return s.deleteN, nil
}

type stubPatientRepo struct {
	byID map[uuid.UUID]*entity.Patient
}

func (s *stubPatientRepo) Create(db *gorm.DB, p *entity.Patient) error { return nil }

func (s *stubPatientRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Patient, error) {
	return s.byID[id], nil
}

func (s *stubPatientRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Patient, error) {
	for _, p := range s.byID {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

type stubEmployeeRepo struct {
	byID   map[uuid.UUID]*entity.Employee
	onDuty []entity.Employee
	freeOn []entity.Employee
}

func (s *stubEmployeeRepo) Create(db *gorm.DB, e *entity.Employee) error { return nil }

func (s *stubEmployeeRepo) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Employee, error) {
	return s.byID[id], nil
}

func (s *stubEmployeeRepo) FindByUserID(db *gorm.DB, userID uuid.UUID) (*entity.Employee, error) {
	for _, e := range s.byID {
		if e.UserID == userID {
			return e, nil
		}
	}
	return nil, nil
}

func (s *stubEmployeeRepo) FindDoctorsOnDuty(db *gorm.DB, day string) ([]entity.Employee, error) {
	return s.onDuty, nil
}

func (s *stubEmployeeRepo) FindDoctorsFreeOn(db *gorm.DB, day string, date time.Time) ([]entity.Employee, error) {
	return s.freeOn, nil
}

type stubAuditService struct {
	actions []string
}

func (s *stubAuditService) Record(ctx context.Context, actorID *uuid.UUID, action, ipAddress, description string) {
	s.actions = append(s.actions, action)
}

// newDoctor builds an employee with a doctor user attached, the shape the
// appointment usecase expects from FindByID with preloaded user.
func newDoctor() *entity.Employee {
	id := uuid.New()
	return &entity.Employee{
		ID:            id,
		UserID:        uuid.New(),
		LicenseNumber: "LIC-" + id.String()[:8],
		AvailableDays: entity.StringList{"monday", "tuesday", "wednesday", "thursday", "friday"},
		User:          entity.User{Role: entity.RoleDoctor, FirstName: "Sarah", LastName: "Ahmed"},
	}
}

func newPatient() *entity.Patient {
	return &entity.Patient{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		CPRNumber: "90010123",
	}
}
