package handler

import (
	"ticketing_admin/constants"
	"ticketing_admin/metrics"
	"ticketing_admin/model"
	"ticketing_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetTiket(c *fiber.Ctx) error {
	var p model.Pagination
	if err := c.QueryParser(&p); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, total, err := h.Tiket.List(c.UserContext(), p)
	metrics.Record(constants.ENTITY_TIKET, constants.ACTION_LIST, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, listResponse(rows, p, total))
}

func (h *Handler) GetTiketById(c *fiber.Ctx) error {
	tiket, err := h.Tiket.Get(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_TIKET, constants.ACTION_GET, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tiket)
}

func (h *Handler) CreateTiket(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateTiketInput)

	tiket, err := h.Tiket.Create(c.UserContext(), input)
	metrics.Record(constants.ENTITY_TIKET, constants.ACTION_CREATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, constants.TIKET_CREATED, tiket)
}

func (h *Handler) UpdateTiket(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateTiketInput)

	tiket, err := h.Tiket.Update(c.UserContext(), inputId(c), input)
	metrics.Record(constants.ENTITY_TIKET, constants.ACTION_UPDATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.TIKET_UPDATED, tiket)
}

func (h *Handler) DeleteTiket(c *fiber.Ctx) error {
	err := h.Tiket.Delete(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_TIKET, constants.ACTION_DELETED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.TIKET_DELETED, nil)
}
