package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	appstock "github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain"
	domstock "github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// TransferHandler maneja traslados y retornos entre bodegas (protegido).
type TransferHandler struct {
	uc *appstock.TransferUseCase
}

// NewTransferHandler construye el handler de traslados.
func NewTransferHandler(uc *appstock.TransferUseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Transfer godoc
// @Summary      Trasladar cantidad a la bodega destino
// @Description  Mueve cantidad del item hacia la bodega destino configurada
//
//	(congelados → descongelando). Ambos lados y sus asientos se persisten en
//	una sola transacción: no puede observarse un traslado a medias.
//
// @Tags         transfer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        bucket  path  string               true  "bodega origen"
// @Param        id      path  string               true  "item ID"
// @Param        body    body  dto.TransferRequest  true  "quantity, note"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items/{id}/transfer [post]
func (h *TransferHandler) Transfer(c *fiber.Ctx) error {
	return h.run(c, h.uc.Transfer)
}

// Return godoc
// @Summary      Devolver cantidad a la bodega de origen
// @Description  Devuelve cantidad hacia la bodega de origen (descongelando →
//
//	congelados). El lado saliente queda como asiento RETURN.
//
// @Tags         transfer
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        bucket  path  string               true  "bodega actual del item"
// @Param        id      path  string               true  "item ID"
// @Param        body    body  dto.TransferRequest  true  "quantity, note"
// @Success      200   {object}  dto.TransferResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items/{id}/return [post]
func (h *TransferHandler) Return(c *fiber.Ctx) error {
	return h.run(c, h.uc.ReturnToSource)
}

func (h *TransferHandler) run(c *fiber.Ctx, op func(ctx context.Context, in appstock.TransferInput) (*appstock.TransferResult, error)) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	res, err := op(c.Context(), appstock.TransferInput{
		Bucket:   c.Params("bucket"),
		ItemID:   c.Params("id"),
		Quantity: in.Quantity,
		Note:     in.Note,
		UserID:   userID,
	})
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos de traslado inválidos"})
		}
		if err == domain.ErrTransferNotAllowed {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "TRANSFER_NOT_ALLOWED", Message: "la bodega no tiene destino de traslado"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		if err == domain.ErrInsufficientStock {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: "stock insuficiente para el traslado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.TransferResponse{
		Source:      dto.ToStockItemResponse(res.Source, domstock.IsLowStock(*res.Source)),
		Destination: dto.ToStockItemResponse(res.Destination, domstock.IsLowStock(*res.Destination)),
	})
}
