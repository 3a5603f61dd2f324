package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zeecare/hms-backend/internal/domain/entity"
	"github.com/zeecare/hms-backend/internal/handler/http/dto"
	"github.com/zeecare/hms-backend/internal/handler/http/middleware"
	usecasecontract "github.com/zeecare/hms-backend/internal/usecase/contract"
)

type AppointmentHandler struct {
	appointmentUsecase usecasecontract.IAppointmentUseCase
}

func NewAppointmentHandler(appointmentUsecase usecasecontract.IAppointmentUseCase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase}
}

// PostAppointment books an appointment for the current patient
func (h *AppointmentHandler) PostAppointment(c *gin.Context) {
	patient, ok := middleware.CurrentUser(c)
	if !ok {
		ErrorHandler(c, entity.NewAuthError("Patient Not Authenticated!"))
		return
	}

	var req dto.AppointmentRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	appointment, err := h.appointmentUsecase.Book(c.Request.Context(), patient.ID, req.ToInput())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AppointmentResponse{Success: true, Message: "Appointment Send!", Appointment: appointment})
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.appointmentUsecase.ListAll(c.Request.Context())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	if appointments == nil {
		appointments = []*entity.Appointment{}
	}
	SuccessHandler(c, http.StatusOK, dto.AppointmentsResponse{Success: true, Appointments: appointments})
}

func (h *AppointmentHandler) UpdateAppointmentStatus(c *gin.Context) {
	var req dto.UpdateAppointmentRequest
	if err := Bind(c, &req); err != nil {
		return
	}

	appointment, err := h.appointmentUsecase.Update(c.Request.Context(), c.Param("id"), req.ToUpdate())
	if err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.AppointmentResponse{Success: true, Message: "Appointment Status Updated!", Appointment: appointment})
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.appointmentUsecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		ErrorHandler(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.Ack("Appointment Deleted!"))
}
