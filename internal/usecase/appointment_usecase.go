package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"sante-backend/internal/converter"
	"sante-backend/internal/delivery/dto"
	"sante-backend/internal/delivery/http/middleware"
	"sante-backend/internal/domain/entity"
	"sante-backend/internal/domain/repository"
	"sante-backend/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrPatientNotFound     = errors.New("patient not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("an appointment already exists at this time")
	ErrInvalidTimeFormat   = errors.New("invalid time format, use HH:MM")
	ErrInvalidStatus       = errors.New("invalid appointment status")
)

type AppointmentUsecase interface {
	CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error)
	UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error)
	GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error)
	GetAllAppointments(ctx context.Context, page, pageSize int) (*dto.AppointmentListResponse, error)
	GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error)
	PatientBelongsToUser(ctx context.Context, patientID, userID uuid.UUID) (bool, error)
	DeleteAppointment(ctx context.Context, id uuid.UUID) error
}

type appointmentUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	employeeRepo    repository.EmployeeRepository
	auditService    service.AuditService
}

func NewAppointmentUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	employeeRepo repository.EmployeeRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		db:              db,
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		employeeRepo:    employeeRepo,
		auditService:    auditService,
	}
}

// CreateAppointment validates the request, resolves both parties, runs the
// slot conflict guard and persists the appointment with status forced to
// Scheduled. The partial unique index on scheduled rows backs the guard up:
// a duplicate-key error from a concurrent create maps to the same conflict.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, req *dto.CreateAppointmentRequest) (*dto.AppointmentResponse, error) {
	date, err := time.Parse("2006-01-02", req.AppointmentDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	timeOfDay, err := parseTimeOfDay(req.AppointmentTime)
	if err != nil {
		return nil, ErrInvalidTimeFormat
	}

	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), req.PatientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", req.PatientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	doctor, err := u.employeeRepo.FindByID(u.db.WithContext(ctx), req.DoctorID)
	if err != nil {
		u.log.Warnf("Failed to find doctor %s: %+v", req.DoctorID, err)
		return nil, err
	}
	if doctor == nil || doctor.User.Role != entity.RoleDoctor {
		return nil, ErrDoctorNotFound
	}

	if err := u.guardSlot(ctx, doctor.ID, date, timeOfDay, nil); err != nil {
		return nil, err
	}

	appointment := &entity.Appointment{
		PatientID:        patient.ID,
		DoctorID:         doctor.ID,
		AppointmentDate:  date,
		AppointmentTime:  timeOfDay,
		Status:           entity.AppointmentStatusScheduled,
		Notes:            req.Notes,
		BloodPressure:    req.BloodPressure,
		HeartRate:        req.HeartRate,
		Temperature:      req.Temperature,
		O2Sat:            req.O2Sat,
		RespRate:         req.RespRate,
	}
	if req.FollowUpRequired != nil {
		appointment.FollowUpRequired = *req.FollowUpRequired
	}

	if err := u.appointmentRepo.Create(u.db.WithContext(ctx), appointment); err != nil {
		if isUniqueViolation(err, "uniq_appointments_active_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.recordAudit(ctx, entity.AuditActionAppointmentCreate,
		fmt.Sprintf("Created appointment %s for patient %s with doctor %s on %s at %s",
			appointment.ID, patient.ID, doctor.ID, req.AppointmentDate, timeOfDay))

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

// UpdateAppointment applies a partial update. Fields absent from the request
// are left unchanged; patient and doctor references never change here. The
// conflict guard re-runs against the resulting (doctor, date, time) triple,
// excluding the appointment itself.
func (u *appointmentUsecase) UpdateAppointment(ctx context.Context, id uuid.UUID, req *dto.UpdateAppointmentRequest) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}

	if req.AppointmentDate != "" {
		date, err := time.Parse("2006-01-02", req.AppointmentDate)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		appointment.AppointmentDate = date
	}
	if req.AppointmentTime != "" {
		timeOfDay, err := parseTimeOfDay(req.AppointmentTime)
		if err != nil {
			return nil, ErrInvalidTimeFormat
		}
		appointment.AppointmentTime = timeOfDay
	}
	if req.Status != "" {
		status := entity.AppointmentStatus(req.Status)
		if !status.Valid() {
			return nil, ErrInvalidStatus
		}
		appointment.Status = status
	}
	if req.Notes != nil {
		appointment.Notes = *req.Notes
	}
	if req.FollowUpRequired != nil {
		appointment.FollowUpRequired = *req.FollowUpRequired
	}
	if req.HeartRate != nil {
		appointment.HeartRate = req.HeartRate
	}
	if req.BloodPressure != nil {
		appointment.BloodPressure = *req.BloodPressure
	}
	if req.Temperature != nil {
		appointment.Temperature = req.Temperature
	}
	if req.O2Sat != nil {
		appointment.O2Sat = req.O2Sat
	}
	if req.RespRate != nil {
		appointment.RespRate = req.RespRate
	}

	excludeID := appointment.ID
	if err := u.guardSlot(ctx, appointment.DoctorID, appointment.AppointmentDate, appointment.TimeOfDay(), &excludeID); err != nil {
		return nil, err
	}

	if err := u.appointmentRepo.Update(u.db.WithContext(ctx), appointment); err != nil {
		if isUniqueViolation(err, "uniq_appointments_active_slot") {
			return nil, ErrSlotTaken
		}
		u.log.Warnf("Failed to update appointment %s: %+v", id, err)
		return nil, err
	}

	u.recordAudit(ctx, entity.AuditActionAppointmentUpdate,
		fmt.Sprintf("Updated appointment %s", appointment.ID))

	full, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), appointment.ID)
	if err != nil || full == nil {
		u.log.Warnf("Failed to reload appointment %s: %+v", appointment.ID, err)
		return converter.AppointmentToResponse(appointment), nil
	}
	return converter.AppointmentToResponse(full), nil
}

func (u *appointmentUsecase) GetAppointment(ctx context.Context, id uuid.UUID) (*dto.AppointmentResponse, error) {
	appointment, err := u.appointmentRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find appointment %s: %+v", id, err)
		return nil, err
	}
	if appointment == nil {
		return nil, ErrAppointmentNotFound
	}
	return converter.AppointmentToResponse(appointment), nil
}

func (u *appointmentUsecase) GetAllAppointments(ctx context.Context, page, pageSize int) (*dto.AppointmentListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 28
	}

	appointments, total, err := u.appointmentRepo.FindAll(u.db.WithContext(ctx), pageSize, (page-1)*pageSize)
	if err != nil {
		u.log.Warnf("Failed to find appointments: %+v", err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        total,
	}, nil
}

// PatientBelongsToUser reports whether the patient record is linked to the
// given user account.
func (u *appointmentUsecase) PatientBelongsToUser(ctx context.Context, patientID, userID uuid.UUID) (bool, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return false, err
	}
	if patient == nil {
		return false, nil
	}
	return patient.UserID == userID, nil
}

func (u *appointmentUsecase) GetPatientAppointments(ctx context.Context, patientID uuid.UUID) (*dto.AppointmentListResponse, error) {
	patient, err := u.patientRepo.FindByID(u.db.WithContext(ctx), patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}

	appointments, err := u.appointmentRepo.FindByPatientID(u.db.WithContext(ctx), patient.ID)
	if err != nil {
		u.log.Warnf("Failed to find appointments for patient %s: %+v", patientID, err)
		return nil, err
	}

	return &dto.AppointmentListResponse{
		Appointments: converter.AppointmentsToResponses(appointments),
		Total:        int64(len(appointments)),
	}, nil
}

func (u *appointmentUsecase) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	affected, err := u.appointmentRepo.Delete(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to delete appointment %s: %+v", id, err)
		return err
	}
	if affected == 0 {
		return ErrAppointmentNotFound
	}

	u.recordAudit(ctx, entity.AuditActionAppointmentDelete,
		fmt.Sprintf("Deleted appointment %s", id))
	return nil
}

// guardSlot is the conflict guard: at most one appointment per (doctor,
// date, time), counted regardless of status, so a cancelled appointment
// still blocks its slot. excludeID skips the appointment being updated.
func (u *appointmentUsecase) guardSlot(ctx context.Context, doctorID uuid.UUID, date time.Time, timeOfDay string, excludeID *uuid.UUID) error {
	existing, err := u.appointmentRepo.FindAtSlot(u.db.WithContext(ctx), doctorID, date, timeOfDay, excludeID)
	if err != nil {
		u.log.Warnf("Failed conflict check for doctor %s at %s %s: %+v", doctorID, date.Format("2006-01-02"), timeOfDay, err)
		return err
	}
	if existing != nil {
		return ErrSlotTaken
	}
	return nil
}

func (u *appointmentUsecase) recordAudit(ctx context.Context, action, description string) {
	var actorID *uuid.UUID
	if userID, ok := middleware.GetUserIDFromContext(ctx); ok {
		actorID = &userID
	}
	ip, _ := middleware.GetClientIPFromContext(ctx)
	u.auditService.Record(ctx, actorID, action, ip, description)
}

// parseTimeOfDay validates and canonicalizes an "HH:MM" input.
func parseTimeOfDay(value string) (string, error) {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return "", err
	}
	return t.Format("15:04"), nil
}

// isUniqueViolation checks for a PostgreSQL unique constraint violation on
// the named constraint or index.
func isUniqueViolation(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// 23505 = unique_violation
		return pgErr.Code == "23505" && pgErr.ConstraintName == constraintName
	}
	return false
}
