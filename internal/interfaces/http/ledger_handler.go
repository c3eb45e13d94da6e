package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	appstock "github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain"
)

// LedgerHandler expone el historial de movimientos de las bodegas (protegido).
type LedgerHandler struct {
	uc *appstock.UseCase
}

// NewLedgerHandler construye el handler del ledger.
func NewLedgerHandler(uc *appstock.UseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Historial de movimientos de una bodega
// @Description  Asientos más recientes primero. from/to en formato RFC 3339
//
//	o fecha simple (2006-01-02).
//
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        bucket    path   string  true   "bodega"
// @Param        location  query  string  false  "sede (vacío = todas)"
// @Param        from      query  string  false  "desde"
// @Param        to        query  string  false  "hasta"
// @Param        limit     query  int     false  "máximo de asientos (default 20)"
// @Param        offset    query  int     false  "desplazamiento"
// @Success      200  {array}   dto.LedgerEntryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "paginación inválida"})
	}
	page.DefaultPage()

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'from' inválida"})
	}
	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "fecha 'to' inválida"})
	}

	entries, err := h.uc.ListLedger(c.Context(), c.Params("bucket"), c.Query("location"), from, to, page.Limit, page.Offset)
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidLocation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega o sede desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.ToLedgerEntryResponse(e))
	}
	return c.JSON(out)
}

// parseTimeParam acepta RFC 3339 o fecha simple; "" devuelve nil.
func parseTimeParam(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
