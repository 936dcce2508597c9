package converter

import (
	"sante-backend/internal/delivery/dto"
	"sante-backend/internal/domain/entity"

	"github.com/google/uuid"
)

// AppointmentToResponse converts an Appointment entity to its response DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:               appointment.ID,
		AppointmentDate:  appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime:  appointment.TimeOfDay(),
		Status:           string(appointment.Status),
		HeartRate:        appointment.HeartRate,
		BloodPressure:    appointment.BloodPressure,
		Temperature:      appointment.Temperature,
		O2Sat:            appointment.O2Sat,
		RespRate:         appointment.RespRate,
		Notes:            appointment.Notes,
		FollowUpRequired: appointment.FollowUpRequired,
		CreatedAt:        appointment.CreatedAt,
		UpdatedAt:        appointment.UpdatedAt,
	}

	if appointment.Patient.ID != uuid.Nil {
		response.Patient = PatientToPersonResponse(&appointment.Patient)
	}
	if appointment.Doctor.ID != uuid.Nil {
		response.Doctor = DoctorToPersonResponse(&appointment.Doctor)
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		responses[i] = *AppointmentToResponse(&appointments[i])
	}
	return responses
}

// PatientToPersonResponse flattens a patient and their user record into the
// projection attached to appointments.
func PatientToPersonResponse(patient *entity.Patient) *dto.AppointmentPersonResponse {
	if patient == nil {
		return nil
	}
	return &dto.AppointmentPersonResponse{
		ID:           patient.ID,
		FirstName:    patient.User.FirstName,
		LastName:     patient.User.LastName,
		Email:        patient.User.Email,
		ProfileImage: patient.User.ProfileImage,
		CPRNumber:    patient.CPRNumber,
		BloodType:    patient.BloodType,
		PhoneNumber:  patient.User.PhoneNumber,
		Allergies:    patient.Allergies,
	}
}

// DoctorToPersonResponse flattens a doctor and their user record into the
// projection attached to appointments.
func DoctorToPersonResponse(doctor *entity.Employee) *dto.AppointmentPersonResponse {
	if doctor == nil {
		return nil
	}
	return &dto.AppointmentPersonResponse{
		ID:             doctor.ID,
		FirstName:      doctor.User.FirstName,
		LastName:       doctor.User.LastName,
		Email:          doctor.User.Email,
		ProfileImage:   doctor.User.ProfileImage,
		Specialization: doctor.Specialization,
		OfficeNumber:   doctor.OfficeNumber,
	}
}

// EmployeeToDoctorResponse converts an Employee entity to the doctor header
// used by the schedule and available-doctors views.
func EmployeeToDoctorResponse(doctor *entity.Employee) dto.DoctorResponse {
	shiftStart := doctor.ShiftStart
	if shiftStart == "" {
		shiftStart = entity.DefaultShiftStart
	}
	shiftEnd := doctor.ShiftEnd
	if shiftEnd == "" {
		shiftEnd = entity.DefaultShiftEnd
	}

	return dto.DoctorResponse{
		ID:             doctor.ID,
		Name:           doctor.User.FullName(),
		Specialization: doctor.Specialization,
		OfficeNumber:   doctor.OfficeNumber,
		AvailableDays:  doctor.AvailableDays,
		ShiftStart:     entity.NormalizeClock(shiftStart),
		ShiftEnd:       entity.NormalizeClock(shiftEnd),
	}
}
