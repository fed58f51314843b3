package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/farmasys/farmastock-api/internal/application/dto"
	"github.com/farmasys/farmastock-api/internal/application/inventory"
	"github.com/farmasys/farmastock-api/internal/domain"
	"github.com/farmasys/farmastock-api/internal/domain/repository"
)

// MovementHandler maneja el registro y consulta de movimientos del ledger.
type MovementHandler struct {
	submit  *inventory.SubmitMovementUseCase
	queries *inventory.QueryUseCase
}

// NewMovementHandler construye el handler.
func NewMovementHandler(submit *inventory.SubmitMovementUseCase, queries *inventory.QueryUseCase) *MovementHandler {
	return &MovementHandler{submit: submit, queries: queries}
}

// insufficientStockResponse cuerpo del 409 por stock insuficiente.
type insufficientStockResponse struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	ProductID string `json:"product_id"`
	Available int64  `json:"available"`
	Requested int64  `json:"requested"`
}

// Submit godoc
// @Summary      Registrar movimiento de inventario (entrada o salida)
// @Tags         movements
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SubmitMovementRequest  true  "product_id, tipo, cantidad, motivo"
// @Success      201   {object}  map[string]string
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/movements [post]
func (h *MovementHandler) Submit(c *fiber.Ctx) error {
	var in dto.SubmitMovementRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	input := inventory.SubmitMovementInput{
		ProductID: in.ProductID,
		Tipo:      in.Tipo,
		Cantidad:  in.Cantidad,
		UserID:    GetUserID(c),
		Motivo:    in.Motivo,
	}
	id, err := h.submit.Submit(c.UserContext(), input)
	if err != nil {
		var insufficient *domain.InsufficientStockError
		switch {
		case errors.As(err, &insufficient):
			return c.Status(fiber.StatusConflict).JSON(insufficientStockResponse{
				Code:      "INSUFFICIENT_STOCK",
				Message:   insufficient.Error(),
				ProductID: insufficient.ProductID,
				Available: insufficient.Available,
				Requested: insufficient.Requested,
			})
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrInvalidQuantity):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUANTITY", Message: "cantidad debe ser un entero positivo"})
		case errors.Is(err, domain.ErrInvalidMovementType):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_TYPE", Message: "tipo debe ser entrada o salida"})
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": id})
}

// List godoc
// @Summary      Listar movimientos del ledger (más recientes primero)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        product_id   query  string  false  "Filtrar por producto"
// @Param        tipo         query  string  false  "entrada | salida"
// @Param        fecha_desde  query  string  false  "YYYY-MM-DD"
// @Param        fecha_hasta  query  string  false  "YYYY-MM-DD"
// @Param        limit        query  int     false  "Límite"  default(50)
// @Param        offset       query  int     false  "Offset"  default(0)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements [get]
func (h *MovementHandler) List(c *fiber.Ctx) error {
	var q dto.MovementListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	filter := repository.MovementFilter{
		ProductID: q.ProductID,
		Tipo:      q.Tipo,
		Limit:     q.Limit,
		Offset:    q.Offset,
	}
	if q.FechaDesde != "" {
		t, err := dto.ParseDate(q.FechaDesde)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha_desde debe ser YYYY-MM-DD"})
		}
		filter.FechaDesde = &t
	}
	if q.FechaHasta != "" {
		t, err := dto.ParseDate(q.FechaHasta)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fecha_hasta debe ser YYYY-MM-DD"})
		}
		filter.FechaHasta = &t
	}
	movs, err := h.queries.ListMovements(c.UserContext(), filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToMovementResponses(movs))
}

// Recent godoc
// @Summary      Últimos movimientos del ledger (widget del dashboard)
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200  {array}  dto.MovementResponse
// @Router       /api/movements/recent [get]
func (h *MovementHandler) Recent(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 10)
	movs, err := h.queries.RecentMovements(c.UserContext(), limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.ToMovementResponses(movs))
}

// GetStock godoc
// @Summary      Stock efectivo de un producto, derivado del ledger
// @Tags         movements
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del producto"
// @Success      200  {object}  dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/products/{id}/stock [get]
func (h *MovementHandler) GetStock(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	stock, err := h.queries.GetEffectiveStock(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "PRODUCT_NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.StockResponse{ProductID: id, StockActual: stock})
}
