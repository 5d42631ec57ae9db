package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// respondDomainError traduce los errores de negocio tipados a HTTP.
// Cualquier otro error se propaga al ErrorHandler global (fault inesperado).
func respondDomainError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrConflict), errors.Is(err, domain.ErrEmailAlreadyExists):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	case errors.Is(err, domain.ErrUnauthorized):
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: err.Error()})
	default:
		return err
	}
}

// NewErrorHandler construye el ErrorHandler global de Fiber: loguea el fault
// con el request id y responde un mensaje genérico. Solo en development se
// expone el detalle del error al caller.
func NewErrorHandler(log *logger.Logger, env string) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return c.Status(fiberErr.Code).JSON(dto.ErrorResponse{Code: "HTTP_ERROR", Message: fiberErr.Message})
		}

		requestID, _ := c.Locals("requestid").(string)
		log.Error().Err(err).
			Str("request_id", requestID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no manejado procesando la petición")

		resp := dto.ErrorResponse{
			Code:      "INTERNAL",
			Message:   "ocurrió un error inesperado",
			RequestID: requestID,
		}
		if env == "development" {
			resp.Detail = err.Error()
		}
		return c.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}
