package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/httpresp"
	"github.com/saobentodouna/rg-agendamento/internal/middleware"
	ucAppointment "github.com/saobentodouna/rg-agendamento/internal/usecase/appointment"
)

// ======================================================
// HANDLER (balcão administrativo)
// ======================================================

type AppointmentHandler struct {
	bookUC       *ucAppointment.BookAppointment
	listUC       *ucAppointment.ListAppointments
	statusUC     *ucAppointment.UpdateStatus
	rescheduleUC *ucAppointment.RescheduleAppointment
	tz           string
}

func NewAppointmentHandler(
	bookUC *ucAppointment.BookAppointment,
	listUC *ucAppointment.ListAppointments,
	statusUC *ucAppointment.UpdateStatus,
	rescheduleUC *ucAppointment.RescheduleAppointment,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		bookUC:       bookUC,
		listUC:       listUC,
		statusUC:     statusUC,
		rescheduleUC: rescheduleUC,
		tz:           tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	TaxID     string `json:"tax_id" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Date      string `json:"date" binding:"required"`
	Time      string `json:"time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type RescheduleRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// ======================================================
// CREATE (canal presencial)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	out, err := h.bookUC.Execute(
		c.Request.Context(),
		ucAppointment.BookAppointmentInput{
			FullName:  req.FullName,
			TaxID:     req.TaxID,
			BirthDate: req.BirthDate,
			Phone:     req.Phone,
			Email:     req.Email,
			Date:      req.Date,
			Time:      req.Time,
			Channel:   ucAppointment.ChannelInPerson,
		},
		&adminID,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, out.Appointment)
}

// ======================================================
// LIST (período + filtros)
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	fromStr := c.DefaultQuery("from", todayIn(h.tz).Format("2006-01-02"))
	toStr := c.DefaultQuery("to", fromStr)

	from, err := parseDate(h.tz, fromStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inicial inválida.")
		return
	}

	to, err := parseDate(h.tz, toStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data final inválida.")
		return
	}

	list, err := h.listUC.Execute(
		c.Request.Context(),
		from,
		to.AddDate(0, 0, 1),
		ucAppointment.ListFilter{
			Status: c.Query("status"),
			Search: c.Query("q"),
		},
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.List(c, list)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.statusUC.Execute(c.Request.Context(), adminID, uint(id), req.Status)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// RESCHEDULE
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextAdminID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.rescheduleUC.Execute(
		c.Request.Context(),
		adminID,
		uint(id),
		req.Date,
		req.Time,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, ap)
}
