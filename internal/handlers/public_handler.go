package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/httpresp"
	ucAppointment "github.com/saobentodouna/rg-agendamento/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	nextUC         *ucAppointment.FindNextAvailable
	bookUC         *ucAppointment.BookAppointment
	tz             string
}

func NewPublicHandler(
	availabilityUC *ucAppointment.GetAvailability,
	nextUC *ucAppointment.FindNextAvailable,
	bookUC *ucAppointment.BookAppointment,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		availabilityUC: availabilityUC,
		nextUC:         nextUC,
		bookUC:         bookUC,
		tz:             tz,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicBookRequest struct {
	FullName  string `json:"full_name" binding:"required"`
	TaxID     string `json:"tax_id" binding:"required"`
	BirthDate string `json:"birth_date" binding:"required"` // YYYY-MM-DD
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm
}

type BookResponse struct {
	Protocol       string   `json:"protocol"`
	ScheduledDate  string   `json:"scheduled_date"`
	ScheduledTime  string   `json:"scheduled_time"`
	Receipt        string   `json:"receipt"`
	RemainingSlots []string `json:"remaining_slots"`
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.availabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "failed_to_load_availability", "Erro ao carregar horários.")
		return
	}

	httpresp.List(c, slots)
}

func (h *PublicHandler) NextAvailable(c *gin.Context) {
	next, err := h.nextUC.Execute(c.Request.Context(), todayIn(h.tz))
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date": next.Date.Format("2006-01-02"),
		"time": next.Time,
	})
}

////////////////////////////////////////////////////////
// CREATE (canal online)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	var req PublicBookRequest
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
			Channel:   ucAppointment.ChannelOnline,
		},
		nil,
	)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	httpresp.Created(c, BookResponse{
		Protocol:       out.Appointment.Protocol,
		ScheduledDate:  out.Appointment.ScheduledDate.Format("2006-01-02"),
		ScheduledTime:  out.Appointment.ScheduledTime,
		Receipt:        out.Receipt,
		RemainingSlots: out.RemainingSlots,
	})
}
