package handler

import (
	"ticketing_admin/constants"
	"ticketing_admin/metrics"
	"ticketing_admin/model"
	"ticketing_admin/utils"

	"github.com/gofiber/fiber/v2"
)

func (h *Handler) GetKategori(c *fiber.Ctx) error {
	var p model.Pagination
	if err := c.QueryParser(&p); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, total, err := h.Kategori.List(c.UserContext(), p)
	metrics.Record(constants.ENTITY_KATEGORI, constants.ACTION_LIST, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, listResponse(rows, p, total))
}

func (h *Handler) GetKategoriById(c *fiber.Ctx) error {
	kategori, err := h.Kategori.Get(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_KATEGORI, constants.ACTION_GET, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, kategori)
}

func (h *Handler) CreateKategori(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.KategoriInput)

	kategori, err := h.Kategori.Create(c.UserContext(), input)
	metrics.Record(constants.ENTITY_KATEGORI, constants.ACTION_CREATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, constants.KATEGORI_CREATED, kategori)
}

func (h *Handler) UpdateKategori(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.KategoriInput)

	kategori, err := h.Kategori.Update(c.UserContext(), inputId(c), input)
	metrics.Record(constants.ENTITY_KATEGORI, constants.ACTION_UPDATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.KATEGORI_UPDATED, kategori)
}

func (h *Handler) DeleteKategori(c *fiber.Ctx) error {
	err := h.Kategori.Delete(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_KATEGORI, constants.ACTION_DELETED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.KATEGORI_DELETED, nil)
}
