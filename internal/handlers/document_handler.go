package handlers

import (
	"io"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/saobentodouna/rg-agendamento/internal/httperr"
	"github.com/saobentodouna/rg-agendamento/internal/httpresp"
	"github.com/saobentodouna/rg-agendamento/internal/models"
	"github.com/saobentodouna/rg-agendamento/internal/storage"
)

const maxDocumentBytes = 10 << 20 // 10 MiB

type DocumentHandler struct {
	db    *gorm.DB
	store *storage.DocumentStore
}

func NewDocumentHandler(db *gorm.DB, store *storage.DocumentStore) *DocumentHandler {
	return &DocumentHandler{db: db, store: store}
}

// Upload recebe um documento digitalizado via multipart e o anexa ao
// agendamento. Fotos são re-encodadas em WebP antes de subir.
func (h *DocumentHandler) Upload(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var ap models.Appointment
	if err := h.db.First(&ap, appointmentID).Error; err != nil {
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "Arquivo obrigatório.")
		return
	}

	if fileHeader.Size > maxDocumentBytes {
		httperr.BadRequest(c, "file_too_large", "Arquivo excede o limite de 10MB.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Erro ao ler o arquivo.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	data, contentType = storage.CompressImage(data, contentType)

	key, err := h.store.Put(c.Request.Context(), ap.ID, contentType, data)
	if err != nil {
		httperr.Internal(c, "failed_to_store_file", "Erro ao armazenar o arquivo.")
		return
	}

	doc := models.Document{
		AppointmentID: ap.ID,
		FileName:      fileHeader.Filename,
		StorageKey:    key,
		ContentType:   contentType,
		SizeBytes:     int64(len(data)),
	}

	if err := h.db.Create(&doc).Error; err != nil {
		httperr.Internal(c, "failed_to_save_document", "Erro ao registrar o documento.")
		return
	}

	httpresp.Created(c, doc)
}

func (h *DocumentHandler) ListByAppointment(c *gin.Context) {
	appointmentID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var docs []models.Document
	if err := h.db.
		Where("appointment_id = ?", appointmentID).
		Order("created_at ASC").
		Find(&docs).Error; err != nil {
		httperr.Internal(c, "failed_to_list_documents", "Erro ao listar documentos.")
		return
	}

	httpresp.List(c, docs)
}
