package usecase

import (
	"context"
	"testing"
	"time"

	"sante-backend/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScheduleUsecaseForTest(t *testing.T, employeeRepo *stubEmployeeRepo, apptRepo *stubAppointmentRepo) ScheduleUsecase {
	t.Helper()
	return NewScheduleUsecase(newTestDB(t), newTestLogger(), employeeRepo, apptRepo)
}

func TestGetDailySchedule(t *testing.T) {
	t.Run("date is required", func(t *testing.T) {
		uc := newScheduleUsecaseForTest(t, &stubEmployeeRepo{}, &stubAppointmentRepo{})

		_, err := uc.GetDailySchedule(context.Background(), "")
		assert.ErrorIs(t, err, ErrDateRequired)
	})

	t.Run("invalid date", func(t *testing.T) {
		uc := newScheduleUsecaseForTest(t, &stubEmployeeRepo{}, &stubAppointmentRepo{})

		_, err := uc.GetDailySchedule(context.Background(), "not-a-date")
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})

	t.Run("no doctors on duty yields empty schedule", func(t *testing.T) {
		uc := newScheduleUsecaseForTest(t, &stubEmployeeRepo{}, &stubAppointmentRepo{})

		resp, err := uc.GetDailySchedule(context.Background(), "2026-09-07")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-07", resp.Date)
		assert.Empty(t, resp.Schedule)
	})

	t.Run("free day shows every slot available", func(t *testing.T) {
		doctor := newDoctor()
		doctor.ShiftStart = "09:00"
		doctor.ShiftEnd = "11:00"

		uc := newScheduleUsecaseForTest(t,
			&stubEmployeeRepo{onDuty: []entity.Employee{*doctor}},
			&stubAppointmentRepo{},
		)

		resp, err := uc.GetDailySchedule(context.Background(), "2026-09-07")
		require.NoError(t, err)
		require.Len(t, resp.Schedule, 1)

		slots := resp.Schedule[0].Slots
		require.Len(t, slots, 4)
		for i, at := range []string{"09:00", "09:30", "10:00", "10:30"} {
			assert.Equal(t, at, slots[i].Time)
			assert.Equal(t, "Available", slots[i].Status)
			assert.Nil(t, slots[i].Appointment)
		}
	})

	t.Run("booked slot carries the appointment's own status", func(t *testing.T) {
		doctor := newDoctor()
		doctor.ShiftStart = "09:00"
		doctor.ShiftEnd = "11:00"

		appt := entity.Appointment{
			ID:              uuid.New(),
			PatientID:       uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentTime: "09:30",
			Status:          entity.AppointmentStatusCompleted,
			Patient: entity.Patient{
				CPRNumber: "90010123",
				User:      entity.User{FirstName: "Ali", LastName: "Hassan", Email: "ali@example.com"},
			},
		}

		uc := newScheduleUsecaseForTest(t,
			&stubEmployeeRepo{onDuty: []entity.Employee{*doctor}},
			&stubAppointmentRepo{byDoctor: []entity.Appointment{appt}},
		)

		resp, err := uc.GetDailySchedule(context.Background(), "2026-09-07")
		require.NoError(t, err)
		require.Len(t, resp.Schedule, 1)

		slots := resp.Schedule[0].Slots
		require.Len(t, slots, 4)

		assert.Equal(t, "Available", slots[0].Status)
		assert.Equal(t, "Completed", slots[1].Status)
		require.NotNil(t, slots[1].Appointment)
		assert.Equal(t, appt.ID, slots[1].Appointment.ID)
		assert.Equal(t, "Ali", slots[1].Appointment.PatientFirstName)
		assert.Equal(t, "90010123", slots[1].Appointment.PatientCPR)
		assert.Equal(t, "Available", slots[2].Status)
		assert.Equal(t, "Available", slots[3].Status)
	})

	t.Run("postgres time format matches the grid", func(t *testing.T) {
		doctor := newDoctor()
		doctor.ShiftStart = "09:00:00"
		doctor.ShiftEnd = "10:00:00"

		appt := entity.Appointment{
			ID:              uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentTime: "09:30:00",
			Status:          entity.AppointmentStatusScheduled,
		}

		uc := newScheduleUsecaseForTest(t,
			&stubEmployeeRepo{onDuty: []entity.Employee{*doctor}},
			&stubAppointmentRepo{byDoctor: []entity.Appointment{appt}},
		)

		resp, err := uc.GetDailySchedule(context.Background(), "2026-09-07")
		require.NoError(t, err)

		slots := resp.Schedule[0].Slots
		require.Len(t, slots, 2)
		assert.Equal(t, "Scheduled", slots[1].Status)
	})

	t.Run("off-grid appointment does not appear", func(t *testing.T) {
		doctor := newDoctor()
		doctor.ShiftStart = "09:00"
		doctor.ShiftEnd = "10:00"

		appt := entity.Appointment{
			ID:              uuid.New(),
			DoctorID:        doctor.ID,
			AppointmentTime: "09:15",
			Status:          entity.AppointmentStatusScheduled,
		}

		uc := newScheduleUsecaseForTest(t,
			&stubEmployeeRepo{onDuty: []entity.Employee{*doctor}},
			&stubAppointmentRepo{byDoctor: []entity.Appointment{appt}},
		)

		resp, err := uc.GetDailySchedule(context.Background(), "2026-09-07")
		require.NoError(t, err)

		for _, slot := range resp.Schedule[0].Slots {
			assert.Equal(t, "Available", slot.Status)
			assert.Nil(t, slot.Appointment)
		}
	})
}

func TestResolveSlots(t *testing.T) {
	doctor := &entity.Employee{ShiftStart: "09:00", ShiftEnd: "09:00"}

	t.Run("empty shift yields no slots", func(t *testing.T) {
		assert.Empty(t, resolveSlots(doctor, nil))
	})

	t.Run("booked slot count equals matching appointments", func(t *testing.T) {
		doctor := &entity.Employee{ShiftStart: "09:00", ShiftEnd: "17:00"}
		appointments := []entity.Appointment{
			{ID: uuid.New(), AppointmentTime: "09:00", Status: entity.AppointmentStatusScheduled},
			{ID: uuid.New(), AppointmentTime: "13:30", Status: entity.AppointmentStatusNoShow},
		}

		slots := resolveSlots(doctor, appointments)
		booked := 0
		for _, slot := range slots {
			if slot.Status != "Available" {
				booked++
			}
		}
		assert.Equal(t, 2, booked)
	})
}

func TestGetAvailableDoctors(t *testing.T) {
	t.Run("returns free doctors with shift bounds", func(t *testing.T) {
		doctor := newDoctor()
		doctor.Specialization = "Cardiology"

		uc := newScheduleUsecaseForTest(t,
			&stubEmployeeRepo{freeOn: []entity.Employee{*doctor}},
			&stubAppointmentRepo{},
		)

		resp, err := uc.GetAvailableDoctors(context.Background(), "2026-09-07")
		require.NoError(t, err)
		require.Len(t, resp.Doctors, 1)

		assert.Equal(t, doctor.ID, resp.Doctors[0].ID)
		assert.Equal(t, "Cardiology", resp.Doctors[0].Specialization)
		// defaults surface when the record carries no explicit bounds
		assert.Equal(t, "09:00", resp.Doctors[0].ShiftStart)
		assert.Equal(t, "17:00", resp.Doctors[0].ShiftEnd)
	})

	t.Run("invalid date", func(t *testing.T) {
		uc := newScheduleUsecaseForTest(t, &stubEmployeeRepo{}, &stubAppointmentRepo{})

		_, err := uc.GetAvailableDoctors(context.Background(), "09-07-2026")
		assert.ErrorIs(t, err, ErrInvalidDateFormat)
	})
}

func TestGetAppointmentsByDate(t *testing.T) {
	appointments := []entity.Appointment{
		{ID: uuid.New(), AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), AppointmentTime: "09:00", Status: entity.AppointmentStatusScheduled},
		{ID: uuid.New(), AppointmentDate: time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC), AppointmentTime: "10:00", Status: entity.AppointmentStatusScheduled},
	}

	uc := newScheduleUsecaseForTest(t, &stubEmployeeRepo{}, &stubAppointmentRepo{byDate: appointments})

	resp, err := uc.GetAppointmentsByDate(context.Background(), "2026-09-07")
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
	assert.Equal(t, int64(2), resp.Total)
}
