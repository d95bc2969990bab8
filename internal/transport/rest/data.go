package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/heartmarshall/tagebuch-backend/internal/domain"
	"github.com/heartmarshall/tagebuch-backend/internal/service/backup"
)

type backupService interface {
	Export(ctx context.Context) (*backup.Document, error)
	Import(ctx context.Context, doc *backup.Document, mode backup.Mode) (*backup.ImportReport, error)
	Clear(ctx context.Context, confirm string) error
}

// DataHandler serves /api/data: export, import and clear.
type DataHandler struct {
	svc backupService
	log *slog.Logger
}

// NewDataHandler creates a DataHandler.
func NewDataHandler(svc backupService, logger *slog.Logger) *DataHandler {
	return &DataHandler{svc: svc, log: logger.With("handler", "data")}
}

type importRequest struct {
	Data *backup.Document `json:"data"`
	Mode backup.Mode      `json:"mode"`
}

type importResponse struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Stats   *backup.ImportReport `json:"stats"`
}

type clearRequest struct {
	Confirm string `json:"confirm"`
}

// Export handles GET /api/data/export. The document is sent as a download.
func (h *DataHandler) Export(w http.ResponseWriter, r *http.Request) {
	doc, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filename := fmt.Sprintf("deutschtagebuch-backup-%s.json", doc.ExportDate.Format(time.DateOnly))
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)
	writeJSON(w, http.StatusOK, doc)
}

// Import handles POST /api/data/import with body {"data": <document>, "mode": "merge"|"replace"}.
func (h *DataHandler) Import(w http.ResponseWriter, r *http.Request) {
	var req importRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Data == nil {
		handleError(h.log, w, r, domain.NewValidationError("data", "invalid import data format"))
		return
	}

	report, err := h.svc.Import(r.Context(), req.Data, req.Mode)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, importResponse{
		Success: true,
		Message: "Data imported successfully",
		Stats:   report,
	})
}

// Clear handles DELETE /api/data/clear with body {"confirm": "DELETE_ALL_DATA"}.
func (h *DataHandler) Clear(w http.ResponseWriter, r *http.Request) {
	var req clearRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Clear(r.Context(), req.Confirm); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeMessage(w, "All data cleared successfully")
}
