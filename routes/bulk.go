package routes

import (
	"github.com/Joeseb100/realprops/storage"
	"github.com/Joeseb100/realprops/utils"

	"github.com/kataras/iris/v12"
)

type BulkImportHandler struct {
	Importer *storage.Importer
	Audit    *storage.AuditRecorder
}

func NewBulkImportHandler(importer *storage.Importer, audit *storage.AuditRecorder) *BulkImportHandler {
	return &BulkImportHandler{Importer: importer, Audit: audit}
}

type BulkImportInput struct {
	Properties []storage.ImportRow `json:"properties"`
	CSV        string              `json:"csv"`
}

// Import processes a batch of raw property rows. Per-row failures are
// aggregated into the summary rather than failing the request: the batch
// itself succeeded, so the response is 200 even when rows failed.
func (h *BulkImportHandler) Import(ctx iris.Context) {
	var input BulkImportInput
	if err := ctx.ReadJSON(&input); err != nil {
		utils.HandleValidationErrors(err, ctx)
		return
	}

	rows := input.Properties
	if input.CSV != "" {
		rows = storage.ParseCSV(input.CSV)
	}
	if len(rows) == 0 {
		utils.JSONError(ctx, iris.StatusBadRequest, "invalid_payload", "Please provide an array of properties")
		return
	}

	summary := h.Importer.Import(rows)

	h.Audit.Record(utils.AdminID(ctx), "property.bulk_import", "property", 0, nil, summary, utils.ClientIP(ctx))
	ctx.JSON(summary)
}
