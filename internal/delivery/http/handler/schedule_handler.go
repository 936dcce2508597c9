package handler

import (
	"encoding/json"
	"net/http"

	"sante-backend/internal/delivery/dto"
	"sante-backend/internal/usecase"
	"sante-backend/pkg/response"
	"sante-backend/pkg/validator"
)

type ScheduleHandler struct {
	scheduleUsecase usecase.ScheduleUsecase
	validator       *validator.CustomValidator
}

func NewScheduleHandler(scheduleUsecase usecase.ScheduleUsecase, validator *validator.CustomValidator) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUsecase: scheduleUsecase,
		validator:       validator,
	}
}

// GetDailySchedule returns every on-duty doctor's slot grid for one date.
// @Summary Get daily schedule
// @Description Slot-by-slot view of every doctor on duty for the given date
// @Tags Schedule
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /schedule [get]
func (h *ScheduleHandler) GetDailySchedule(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	schedule, err := h.scheduleUsecase.GetDailySchedule(r.Context(), date)
	if err != nil {
		switch err {
		case usecase.ErrDateRequired:
			response.Error(w, http.StatusBadRequest, "Date parameter is required", nil)
		case usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get schedule")
		}
		return
	}

	response.Success(w, http.StatusOK, "Schedule retrieved successfully", schedule)
}

// GetAppointmentsByDate lists every appointment on the given date.
func (h *ScheduleHandler) GetAppointmentsByDate(w http.ResponseWriter, r *http.Request) {
	var req dto.AppointmentsByDateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	appointments, err := h.scheduleUsecase.GetAppointmentsByDate(r.Context(), req.AppointmentDate)
	if err != nil {
		switch err {
		case usecase.ErrDateRequired, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}

// GetAvailableDoctors lists doctors on duty for the date's weekday with no
// appointment booked on that date.
func (h *ScheduleHandler) GetAvailableDoctors(w http.ResponseWriter, r *http.Request) {
	var req dto.AvailableDoctorsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctors, err := h.scheduleUsecase.GetAvailableDoctors(r.Context(), req.AppointmentDate)
	if err != nil {
		switch err {
		case usecase.ErrDateRequired, usecase.ErrInvalidDateFormat:
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
		default:
			response.InternalServerError(w, "Failed to get available doctors")
		}
		return
	}

	response.Success(w, http.StatusOK, "Available doctors retrieved successfully", doctors)
}
