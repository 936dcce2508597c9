package usecase

import (
	"context"
	"testing"
	"time"

	"sante-backend/internal/delivery/dto"
	"sante-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAppointmentUsecaseForTest(t *testing.T, apptRepo *stubAppointmentRepo, patientRepo *stubPatientRepo, employeeRepo *stubEmployeeRepo) (AppointmentUsecase, *stubAuditService) {
	t.Helper()
	audit := &stubAuditService{}
	uc := NewAppointmentUsecase(newTestDB(t), newTestLogger(), apptRepo, patientRepo, employeeRepo, audit)
	return uc, audit
}

func TestCreateAppointment(t *testing.T) {
	patient := newPatient()
	doctor := newDoctor()

	newRequest := func() *dto.CreateAppointmentRequest {
		return &dto.CreateAppointmentRequest{
			PatientID:       patient.ID,
			DoctorID:        doctor.ID,
			AppointmentDate: "2026-09-07",
			AppointmentTime: "14:00",
		}
	}

	t.Run("creates with status forced to scheduled", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{byID: map[uuid.UUID]*entity.Appointment{}}
		uc, audit := newAppointmentUsecaseForTest(t, apptRepo,
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{doctor.ID: doctor}},
		)

		req := newRequest()
		req.Status = string(entity.AppointmentStatusCompleted) // must be ignored

		resp, err := uc.CreateAppointment(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, apptRepo.created, 1)

		created := apptRepo.created[0]
		assert.Equal(t, entity.AppointmentStatusScheduled, created.Status)
		assert.Equal(t, "14:00", created.AppointmentTime)
		assert.Equal(t, string(entity.AppointmentStatusScheduled), resp.Status)
		assert.Equal(t, []string{entity.AuditActionAppointmentCreate}, audit.actions)
	})

	t.Run("stores optional clinical fields verbatim", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{byID: map[uuid.UUID]*entity.Appointment{}}
		uc, _ := newAppointmentUsecaseForTest(t, apptRepo,
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{doctor.ID: doctor}},
		)

		heartRate := 72
		req := newRequest()
		req.Notes = "follow-up in two weeks"
		req.HeartRate = &heartRate
		req.BloodPressure = "120/80"

		_, err := uc.CreateAppointment(context.Background(), req)
		require.NoError(t, err)

		created := apptRepo.created[0]
		assert.Equal(t, "follow-up in two weeks", created.Notes)
		assert.Equal(t, 72, *created.HeartRate)
		assert.Equal(t, "120/80", created.BloodPressure)
	})

	t.Run("conflict when slot is occupied regardless of status", func(t *testing.T) {
		existing := &entity.Appointment{
			ID:              uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			AppointmentTime: "14:00",
			Status:          entity.AppointmentStatusCancelled,
		}
		apptRepo := &stubAppointmentRepo{atSlot: existing}
		uc, audit := newAppointmentUsecaseForTest(t, apptRepo,
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{doctor.ID: doctor}},
		)

		_, err := uc.CreateAppointment(context.Background(), newRequest())
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Empty(t, apptRepo.created)
		assert.Empty(t, audit.actions)
	})

	t.Run("adjacent slot does not conflict", func(t *testing.T) {
		existing := &entity.Appointment{
			ID:              uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			AppointmentTime: "14:00",
			Status:          entity.AppointmentStatusScheduled,
		}
		apptRepo := &stubAppointmentRepo{atSlot: existing, byID: map[uuid.UUID]*entity.Appointment{}}
		uc, _ := newAppointmentUsecaseForTest(t, apptRepo,
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{doctor.ID: doctor}},
		)

		req := newRequest()
		req.AppointmentTime = "14:30"

		_, err := uc.CreateAppointment(context.Background(), req)
		assert.NoError(t, err)
		assert.Len(t, apptRepo.created, 1)
	})

	t.Run("unknown patient", func(t *testing.T) {
		uc, _ := newAppointmentUsecaseForTest(t, &stubAppointmentRepo{},
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{doctor.ID: doctor}},
		)

		_, err := uc.CreateAppointment(context.Background(), newRequest())
		assert.ErrorIs(t, err, ErrPatientNotFound)
	})

	t.Run("unknown doctor", func(t *testing.T) {
		uc, _ := newAppointmentUsecaseForTest(t, &stubAppointmentRepo{},
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{}},
		)

		_, err := uc.CreateAppointment(context.Background(), newRequest())
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("employee without doctor role is not a doctor", func(t *testing.T) {
		nurse := newDoctor()
		nurse.User.Role = entity.RoleNurse

		uc, _ := newAppointmentUsecaseForTest(t, &stubAppointmentRepo{},
			&stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}},
			&stubEmployeeRepo{byID: map[uuid.UUID]*entity.Employee{nurse.ID: nurse}},
		)

		req := newRequest()
		req.DoctorID = nurse.ID

		_, err := uc.CreateAppointment(context.Background(), req)
		assert.ErrorIs(t, err, ErrDoctorNotFound)
	})

	t.Run("invalid date", func(t *testing.T) {
		uc, _ := newAppointmentUsecaseForTest(t, &stubAppointmentRepo{}, &stubPatientRepo{}, &stubEmployeeRepo{})

		req := newRequest()
		req.AppointmentDate = "07/09/2026"

		_, err := uc.CreateAppointment(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("invalid time", func(t *testing.T) {
		uc, _ := newAppointmentUsecaseForTest(t, &stubAppointmentRepo{}, &stubPatientRepo{}, &stubEmployeeRepo{})

		req := newRequest()
		req.AppointmentTime = "2pm"

		_, err := uc.CreateAppointment(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	})
}

func TestUpdateAppointment(t *testing.T) {
	doctor := newDoctor()

	newExisting := func() *entity.Appointment {
		return &entity.Appointment{
			ID:              uuid.New(),
			PatientID:       uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC),
			AppointmentTime: "10:00",
			Status:          entity.AppointmentStatusScheduled,
		}
	}

	t.Run("notes-only update never conflicts with itself", func(t *testing.T) {
		existing := newExisting()
		apptRepo := &stubAppointmentRepo{
			byID:   map[uuid.UUID]*entity.Appointment{existing.ID: existing},
			atSlot: existing, // guard sees the row itself at the slot
		}
		uc, audit := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		notes := "rescheduling discussed"
		resp, err := uc.UpdateAppointment(context.Background(), existing.ID, &dto.UpdateAppointmentRequest{Notes: &notes})
		require.NoError(t, err)

		assert.Equal(t, "rescheduling discussed", resp.Notes)
		require.Len(t, apptRepo.updated, 1)
		assert.Equal(t, []string{entity.AuditActionAppointmentUpdate}, audit.actions)
	})

	t.Run("moving onto an occupied slot conflicts", func(t *testing.T) {
		existing := newExisting()
		other := &entity.Appointment{
			ID:              uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentDate: existing.AppointmentDate,
			AppointmentTime: "11:00",
			Status:          entity.AppointmentStatusScheduled,
		}
		apptRepo := &stubAppointmentRepo{
			byID:   map[uuid.UUID]*entity.Appointment{existing.ID: existing},
			atSlot: other,
		}
		uc, _ := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		_, err := uc.UpdateAppointment(context.Background(), existing.ID, &dto.UpdateAppointmentRequest{AppointmentTime: "11:00"})
		assert.ErrorIs(t, err, ErrSlotTaken)
		assert.Empty(t, apptRepo.updated)
	})

	t.Run("status transition", func(t *testing.T) {
		existing := newExisting()
		apptRepo := &stubAppointmentRepo{byID: map[uuid.UUID]*entity.Appointment{existing.ID: existing}}
		uc, _ := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		resp, err := uc.UpdateAppointment(context.Background(), existing.ID, &dto.UpdateAppointmentRequest{Status: string(entity.AppointmentStatusCompleted)})
		require.NoError(t, err)
		assert.Equal(t, string(entity.AppointmentStatusCompleted), resp.Status)
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		existing := newExisting()
		apptRepo := &stubAppointmentRepo{byID: map[uuid.UUID]*entity.Appointment{existing.ID: existing}}
		uc, _ := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		_, err := uc.UpdateAppointment(context.Background(), existing.ID, &dto.UpdateAppointmentRequest{Status: "Rescheduled"})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})

	t.Run("missing appointment", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{byID: map[uuid.UUID]*entity.Appointment{}}
		uc, _ := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		_, err := uc.UpdateAppointment(context.Background(), uuid.New(), &dto.UpdateAppointmentRequest{})
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
	})
}

func TestDeleteAppointment(t *testing.T) {
	t.Run("deletes and audits", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{deleteN: 1}
		uc, audit := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		id := uuid.New()
		err := uc.DeleteAppointment(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{id}, apptRepo.deletedIDs)
		assert.Equal(t, []string{entity.AuditActionAppointmentDelete}, audit.actions)
	})

	t.Run("missing appointment", func(t *testing.T) {
		apptRepo := &stubAppointmentRepo{deleteN: 0}
		uc, audit := newAppointmentUsecaseForTest(t, apptRepo, &stubPatientRepo{}, &stubEmployeeRepo{})

		err := uc.DeleteAppointment(context.Background(), uuid.New())
		assert.ErrorIs(t, err, ErrAppointmentNotFound)
		assert.Empty(t, audit.actions)
	})
}

func TestPatientBelongsToUser(t *testing.T) {
	patient := newPatient()
	patientRepo := &stubPatientRepo{byID: map[uuid.UUID]*entity.Patient{patient.ID: patient}}
	uc, _ := newAppointmentUsecaseForTest(t, &stubAppointmentRepo{}, patientRepo, &stubEmployeeRepo{})

	owns, err := uc.PatientBelongsToUser(context.Background(), patient.ID, patient.UserID)
	require.NoError(t, err)
	assert.True(t, owns)

	owns, err = uc.PatientBelongsToUser(context.Background(), patient.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, owns)

	owns, err = uc.PatientBelongsToUser(context.Background(), uuid.New(), patient.UserID)
	require.NoError(t, err)
	assert.False(t, owns)
}
