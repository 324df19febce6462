package handler

import (
	"ticketing_admin/constants"
	"ticketing_admin/metrics"
	"ticketing_admin/model"
	"ticketing_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetOrder(c *fiber.Ctx) error {
	var p model.Pagination
	if err := c.QueryParser(&p); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, total, err := h.Order.List(c.UserContext(), p)
	metrics.Record(constants.ENTITY_ORDER, constants.ACTION_LIST, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, listResponse(rows, p, total))
}

// GetOrderById returns the order with its buyer and lines.
func (h *Handler) GetOrderById(c *fiber.Ctx) error {
	order, err := h.Order.Get(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_ORDER, constants.ACTION_GET, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, order)
}

func (h *Handler) CreateOrder(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.OrderInput)

	order, err := h.Order.Create(c.UserContext(), input)
	metrics.Record(constants.ENTITY_ORDER, constants.ACTION_CREATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, constants.ORDER_CREATED, order)
}

func (h *Handler) UpdateOrder(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.OrderInput)

	order, err := h.Order.Update(c.UserContext(), inputId(c), input)
	metrics.Record(constants.ENTITY_ORDER, constants.ACTION_UPDATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.ORDER_UPDATED, order)
}

func (h *Handler) DeleteOrder(c *fiber.Ctx) error {
	err := h.Order.Delete(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_ORDER, constants.ACTION_DELETED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.ORDER_DELETED, nil)
}

func (h *Handler) GetOrderQR(c *fiber.Ctx) error {
	png, err := h.Order.QRCode(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_ORDER, constants.ACTION_QR, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
