package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"sante-backend/internal/converter"
	"sante-backend/internal/delivery/dto"
	"sante-backend/internal/domain/entity"
	"sante-backend/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrInvalidDateFormat = errors.New("invalid date format, use YYYY-MM-DD")
	ErrDateRequired      = errors.New("date parameter is required")
)

const slotStatusAvailable = "Available"

type ScheduleUsecase interface {
	// GetDailySchedule returns the slot view for every doctor on duty on
	// the given date.
	GetDailySchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error)
	// GetAvailableDoctors returns doctors on duty that weekday with no
	// appointment at all on the date (day-level rule, coarser than slots).
	GetAvailableDoctors(ctx context.Context, date string) (*dto.AvailableDoctorsResponse, error)
	// GetAppointmentsByDate returns the plain appointment list for a date.
	GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error)
}

type scheduleUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	employeeRepo    repository.EmployeeRepository
	appointmentRepo repository.AppointmentRepository
}

func NewScheduleUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	employeeRepo repository.EmployeeRepository,
	appointmentRepo repository.AppointmentRepository,
) ScheduleUsecase {
	return &scheduleUsecase{
		db:              db,
		log:             log,
		employeeRepo:    employeeRepo,
		appointmentRepo: appointmentRepo,
	}
}

func (u *scheduleUsecase) GetDailySchedule(ctx context.Context, date string) (*dto.ScheduleResponse, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	selected, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	day := strings.ToLower(selected.Weekday().String())
	doctors, err := u.employeeRepo.FindDoctorsOnDuty(u.db.WithContext(ctx), day)
	if err != nil {
		u.log.Warnf("Failed to find doctors on duty for %s: %+v", day, err)
		return nil, err
	}

	schedule := make([]dto.DoctorScheduleResponse, 0, len(doctors))
	for i := range doctors {
		doctor := &doctors[i]

		appointments, err := u.appointmentRepo.FindByDoctorAndDate(u.db.WithContext(ctx), doctor.ID, selected)
		if err != nil {
			u.log.Warnf("Failed to find appointments for doctor %s on %s: %+v", doctor.ID, date, err)
			return nil, err
		}

		schedule = append(schedule, dto.DoctorScheduleResponse{
			Doctor: converter.EmployeeToDoctorResponse(doctor),
			Slots:  resolveSlots(doctor, appointments),
		})
	}

	return &dto.ScheduleResponse{
		Date:     selected.Format("2006-01-02"),
		Schedule: schedule,
	}, nil
}

// resolveSlots annotates a doctor's slot grid with existing bookings. A slot
// carries the matching appointment's own status string, so cancelled and
// no-show bookings stay distinguishable from free slots. Matching is by
// exact time key, so an appointment off the half-hour grid does not appear
// in the slot view.
func resolveSlots(doctor *entity.Employee, appointments []entity.Appointment) []dto.SlotResponse {
	booked := make(map[string]*entity.Appointment, len(appointments))
	for i := range appointments {
		booked[appointments[i].TimeOfDay()] = &appointments[i]
	}

	times := doctor.ShiftSlots()
	slots := make([]dto.SlotResponse, 0, len(times))
	for _, at := range times {
		slot := dto.SlotResponse{Time: at, Status: slotStatusAvailable}
		if appt, ok := booked[at]; ok {
			slot.Status = string(appt.Status)
			slot.Appointment = &dto.SlotAppointmentResponse{
				ID:               appt.ID,
				PatientID:        appt.PatientID,
				PatientFirstName: appt.Patient.User.FirstName,
				PatientLastName:  appt.Patient.User.LastName,
				PatientCPR:       appt.Patient.CPRNumber,
				PatientEmail:     appt.Patient.User.Email,
				Status:           string(appt.Status),
			}
		}
		slots = append(slots, slot)
	}
	return slots
}

func (u *scheduleUsecase) GetAvailableDoctors(ctx context.Context, date string) (*dto.AvailableDoctorsResponse, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	selected, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	day := strings.ToLower(selected.Weekday().String())
	doctors, err := u.employeeRepo.FindDoctorsFreeOn(u.db.WithContext(ctx), day, selected)
	if err != nil {
		u.log.Warnf("Failed to find free doctors for %s: %+v", date, err)
		return nil, err
	}

	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = converter.EmployeeToDoctorResponse(&doctors[i])
	}

	return &dto.AvailableDoctorsResponse{
		Date:    selected.Format("2006-01-02"),
		Doctors: responses,
	}, nil
}

func (u *scheduleUsecase) GetAppointmentsByDate(ctx context.Context, date string) (*dto.AppointmentListResponse, error) {
	if date == "" {
		return nil, ErrDateRequired
	}
	selected, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	appointments, err := u.appointmentRepo.FindByDate(u.db.WithContext(ctx), selected)
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", date, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int64(len(appointments)),
	}, nil
}
