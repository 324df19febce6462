package utils

import (
	"errors"

	"ticketing_admin/apperror"
	"ticketing_admin/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
		"error":   errMsg,
	})
}

// FailResponse map lỗi từ service sang HTTP status
func FailResponse(c *fiber.Ctx, err error) error {
	if ve, ok := apperror.IsValidation(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"status":  "error",
			"message": constants.ERROR_VALIDATION,
			"error":   ve.Error(),
			"errors":  ve.Fields,
		})
	}
	switch {
	case errors.Is(err, apperror.ErrNotFound):
		return ErrorResponse(c, fiber.StatusNotFound, constants.ERROR_NOT_FOUND, err)
	case errors.Is(err, apperror.ErrInUse):
		return ErrorResponse(c, fiber.StatusConflict, constants.ERROR_IN_USE, err)
	case errors.Is(err, apperror.ErrDuplicate):
		return ErrorResponse(c, fiber.StatusConflict, constants.ERROR_DUPLICATE, err)
	case errors.Is(err, apperror.ErrUnavailable):
		return ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_FEATURE_UNAVAILABLE, err)
	}

	log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	return ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

func MessageResponse(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "success",
		"message": message,
		"data":    data,
	})
}

func ApplyPagination(query *gorm.DB, limit, page *int) *gorm.DB {
	if limit != nil && *limit > 0 && page != nil && *page >= 1 {
		query = query.Limit(*limit)
		offset := *limit * (*page - 1)
		query = query.Offset(offset)
	}

	return query
}
