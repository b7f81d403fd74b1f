package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/dtltrading/almacen-api/internal/application/dto"
	"github.com/dtltrading/almacen-api/internal/application/reports"
	"github.com/dtltrading/almacen-api/internal/domain"
)

// reportPDFGenerator es el contrato mínimo para exportar un reporte a PDF.
// Lo implementa *pdf.MarotoReportGenerator.
type reportPDFGenerator interface {
	GenerateReportPDF(report *dto.GeneratedReport) ([]byte, error)
}

// ReportHandler genera y exporta reportes (protegido).
type ReportHandler struct {
	uc  *reports.UseCase
	pdf reportPDFGenerator
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase, pdf reportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// Generate godoc
// @Summary      Generar reporte
// @Description  Tipos: inventory, low_stock, transactions, valuation.
// @Description  format=json devuelve las filas; csv y pdf descargan el archivo.
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        type    path   string  true   "Tipo de reporte"
// @Param        format  query  string  false  "json | csv | pdf"  default(json)
// @Success      200  {object}  dto.GeneratedReport
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/{type} [post]
func (h *ReportHandler) Generate(c *fiber.Ctx) error {
	reportType := c.Params("type")
	out, err := h.uc.Generate(GetActor(c), reportType)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "tipo de reporte desconocido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, out)
}

// History godoc
// @Summary      Historial de reportes generados
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"   default(20)
// @Param        offset  query  int  false  "Offset"   default(0)
// @Success      200     {object}  dto.ReportListResponse
// @Router       /api/reports/history [get]
func (h *ReportHandler) History(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	out, err := h.uc.History(limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Re-exportar un reporte del historial
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del reporte"
// @Param        format  query  string  false  "json | csv | pdf"  default(json)
// @Success      200  {object}  dto.GeneratedReport
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/{id}/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.Reprint(id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "reporte no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return h.respond(c, out)
}

// respond serializa según ?format= (json por defecto, csv o pdf como descarga).
func (h *ReportHandler) respond(c *fiber.Ctx, report *dto.GeneratedReport) error {
	switch c.Query("format", "json") {
	case "json":
		return c.JSON(report)
	case "csv":
		data, err := reports.RenderCSV(report)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reports.Filename(report, "csv")+`"`)
		return c.Send(data)
	case "pdf":
		data, err := h.pdf.GenerateReportPDF(report)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		c.Set(fiber.HeaderContentType, "application/pdf")
		c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+reports.Filename(report, "pdf")+`"`)
		return c.Send(data)
	}
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_FORMAT", Message: "format debe ser json, csv o pdf"})
}
