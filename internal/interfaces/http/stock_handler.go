package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Despensa-api/internal/application/dto"
	appstock "github.com/jhoicas/Despensa-api/internal/application/stock"
	"github.com/jhoicas/Despensa-api/internal/domain"
	domstock "github.com/jhoicas/Despensa-api/internal/domain/stock"
)

// StockHandler maneja las peticiones HTTP sobre items de las bodegas
// (protegido). La bodega llega en el path: /api/buckets/:bucket/...
type StockHandler struct {
	uc *appstock.UseCase
}

// NewStockHandler construye el handler de stock.
func NewStockHandler(uc *appstock.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar items de una bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        bucket    path   string  true  "congelados | descongelando | secos | desechables"
// @Param        location  query  string  true  "sede-centro | sede-norte | sede-sur"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.ListBucket(c.Context(), c.Params("bucket"), c.Query("location"))
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidLocation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega o sede desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToStockItemResponse(it, domstock.IsLowStock(*it)))
	}
	return c.JSON(out)
}

// LowStock godoc
// @Summary      Items en o bajo su umbral mínimo
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        bucket    path   string  true  "bodega"
// @Param        location  query  string  true  "sede"
// @Success      200  {array}   dto.StockItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/low-stock [get]
func (h *StockHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock(c.Context(), c.Params("bucket"), c.Query("location"))
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidLocation {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega o sede desconocida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ToStockItemResponse(it, true))
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear item en una bodega
// @Description  Unidad y umbral mínimo salen de la política de la bodega si
//
//	no vienen en el body. Cantidad inicial > 0 genera el asiento IN de apertura.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        bucket  path  string              true  "bodega"
// @Param        body    body  dto.AddItemRequest  true  "name, quantity, category, location"
// @Success      201   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.AddItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.AddItem(c.Context(), appstock.AddItemInput{
		Bucket:       c.Params("bucket"),
		Name:         in.Name,
		Quantity:     in.Quantity,
		Unit:         in.Unit,
		Category:     in.Category,
		MinThreshold: in.MinThreshold,
		Location:     in.Location,
		UserID:       userID,
	})
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidLocation || err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "datos inválidos para la bodega"})
		}
		if err == domain.ErrConflict {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el item ya existe en la bodega"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToStockItemResponse(item, domstock.IsLowStock(*item)))
}

// ConfirmQuantity godoc
// @Summary      Confirmar cantidad de un item
// @Description  Fija la cantidad absoluta contada. El delta contra la
//
//	cantidad actual queda como asiento IN u OUT; delta cero no escribe nada.
//
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        bucket  path  string                     true  "bodega"
// @Param        id      path  string                     true  "item ID"
// @Param        body    body  dto.ConfirmQuantityRequest true  "quantity (absoluta)"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items/{id}/quantity [put]
func (h *StockHandler) ConfirmQuantity(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.ConfirmQuantityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.ConfirmQuantity(c.Context(), c.Params("bucket"), c.Params("id"), in.Quantity, userID)
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cantidad inválida"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToStockItemResponse(item, domstock.IsLowStock(*item)))
}

// UpdateStatus godoc
// @Summary      Cambiar estado de un item (bodegas con estado)
// @Tags         stock
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        bucket  path  string                  true  "descongelando"
// @Param        id      path  string                  true  "item ID"
// @Param        body    body  dto.UpdateStatusRequest true  "status: en-proceso | listo"
// @Success      200   {object}  dto.StockItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items/{id}/status [put]
func (h *StockHandler) UpdateStatus(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	var in dto.UpdateStatusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	item, err := h.uc.UpdateStatus(c.Context(), c.Params("bucket"), c.Params("id"), in.Status, userID)
	if err != nil {
		if err == domain.ErrInvalidBucket || err == domain.ErrInvalidInput {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "estado inválido o bodega sin estados"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToStockItemResponse(item, domstock.IsLowStock(*item)))
}

// Delete godoc
// @Summary      Retirar un item de la bodega
// @Description  Si queda cantidad, registra primero el asiento OUT de cierre
//
//	por el remanente. El historial del item sobrevive a su retiro.
//
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        bucket  path  string  true  "bodega"
// @Param        id      path  string  true  "item ID"
// @Success      204   "sin contenido"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/buckets/{bucket}/items/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	err := h.uc.DeleteItem(c.Context(), c.Params("bucket"), c.Params("id"), userID)
	if err != nil {
		if err == domain.ErrInvalidBucket {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "bodega desconocida"})
		}
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "item no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
