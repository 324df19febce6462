package handler

import (
	"ticketing_admin/constants"
	"ticketing_admin/metrics"
	"ticketing_admin/model"
	"ticketing_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetLokasi(c *fiber.Ctx) error {
	var p model.Pagination
	if err := c.QueryParser(&p); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, total, err := h.Lokasi.List(c.UserContext(), p)
	metrics.Record(constants.ENTITY_LOKASI, constants.ACTION_LIST, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, listResponse(rows, p, total))
}

func (h *Handler) GetLokasiById(c *fiber.Ctx) error {
	lokasi, err := h.Lokasi.Get(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_LOKASI, constants.ACTION_GET, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, lokasi)
}

func (h *Handler) CreateLokasi(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.LokasiInput)

	lokasi, err := h.Lokasi.Create(c.UserContext(), input)
	metrics.Record(constants.ENTITY_LOKASI, constants.ACTION_CREATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, constants.LOKASI_CREATED, lokasi)
}

func (h *Handler) UpdateLokasi(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.LokasiInput)

	lokasi, err := h.Lokasi.Update(c.UserContext(), inputId(c), input)
	metrics.Record(constants.ENTITY_LOKASI, constants.ACTION_UPDATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.LOKASI_UPDATED, lokasi)
}

func (h *Handler) DeleteLokasi(c *fiber.Ctx) error {
	err := h.Lokasi.Delete(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_LOKASI, constants.ACTION_DELETED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.LOKASI_DELETED, nil)
}
