package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/httpresp"
	"github.com/saobentodouna/rg-agendamento/internal/models"
	"github.com/saobentodouna/rg-agendamento/internal/validators"
)

type WaitlistHandler struct {
	db *gorm.DB
}

func NewWaitlistHandler(db *gorm.DB) *WaitlistHandler {
	return &WaitlistHandler{db: db}
}

type AddWaitlistRequest struct {
	FullName string `json:"full_name" binding:"required"`
	TaxID    string `json:"tax_id" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
}

func (h *WaitlistHandler) List(c *gin.Context) {
	var entries []models.WaitlistEntry
	if err := h.db.Order("created_at ASC").Find(&entries).Error; err != nil {
		httperr.Internal(c, "failed_to_list_waitlist", "Erro ao buscar lista de espera.")
		return
	}

	httpresp.List(c, entries)
}

func (h *WaitlistHandler) Add(c *gin.Context) {
	var req AddWaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if !validators.IsCPFValid(req.TaxID) {
		httperr.BadRequest(c, "invalid_tax_id", "CPF inválido.")
		return
	}

	entry := models.WaitlistEntry{
		FullName: req.FullName,
		TaxID:    req.TaxID,
		Phone:    req.Phone,
	}

	if err := h.db.Create(&entry).Error; err != nil {
		httperr.Internal(c, "failed_to_add_waitlist", "Erro ao adicionar à lista de espera.")
		return
	}

	httpresp.Created(c, entry)
}

func (h *WaitlistHandler) Remove(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.WaitlistEntry{}, "id = ?", id)
	if res.Error != nil {
		httperr.Internal(c, "failed_to_remove_waitlist", "Erro ao remover da lista de espera.")
		return
	}
	if res.RowsAffected == 0 {
		httperr.NotFound(c, "waitlist_entry_not_found", "Registro não encontrado.")
		return
	}

	httpresp.OK(c, gin.H{"removed": true})
}
