package http

import (
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	"github.com/jhoicas/Despensa-api/internal/application/report"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

// ReportHandler genera PDFs: hojas de etiquetas QR y reportes de movimientos
// (protegido, admin y bodeguero).
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LabelSheet godoc
// @Summary      Hoja de etiquetas QR de un item
// @Description  Genera count códigos únicos para el item y devuelve el PDF
//
//	con sus QR. Los códigos generados van en el header X-Label-Codes.
//
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        bucket  path   string  true   "bodega"
// @Param        id      path   string  true   "item ID"
// @Param        count   query  int     false  "etiquetas a generar (default 1, máx 100)"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items/{id}/labels [get]
func (h *ReportHandler) LabelSheet(c *fiber.Ctx) error {
	count := 1
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "count debe estar entre 1 y 100"})
		}
		count = n
	}

	codes, pdf, err := h.uc.LabelSheet(c.Context(), c.Params("bucket"), c.Params("id"), count)
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega o parámetros inválidos"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set("X-Label-Codes", strings.Join(codes, ","))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="etiquetas.pdf"`)
	return c.Send(pdf)
}

// MovementReport godoc
// @Summary      Reporte PDF del historial de movimientos
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        bucket    path   string  true   "bodega"
// @Param        location  query  string  false  "sede (vacío = todas)"
// @Param        from      query  string  false  "desde (2006-01-02)"
// @Param        to        query  string  false  "hasta (2006-01-02)"
// @Success      200   {file}    file
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/report [get]
func (h *ReportHandler) MovementReport(c *fiber.Ctx) error {
	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida"})
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida"})
	}

	pdf, err := h.uc.MovementReport(c.Context(), c.Params("bucket"), c.Query("location"), from, to)
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidLocation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega o sede desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos.pdf"`)
	return c.Send(pdf)
}
