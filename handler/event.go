package handler

import (
	"ticketing_admin/constants"
	"ticketing_admin/helper"
	"ticketing_admin/metrics"
	"ticketing_admin/model"
	"ticketing_admin/utils"

	"github.com/gofiber/fiber/v2"
)

// GetEvent hỗ trợ lọc ?kategori_id=, ?lokasi_id=, ?search= ngoài phân trang
func (h *Handler) GetEvent(c *fiber.Ctx) error {
	filter := new(model.EventFilter)
	if err := c.QueryParser(filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, total, err := h.Event.List(c.UserContext(), *filter)
	metrics.Record(constants.ENTITY_EVENT, constants.ACTION_LIST, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, listResponse(rows, filter.Pagination, total))
}

func (h *Handler) GetEventById(c *fiber.Ctx) error {
	event, err := h.Event.Get(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_EVENT, constants.ACTION_GET, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func (h *Handler) CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("createInput").(model.CreateEventInput)
	userId, _ := helper.UserIDFromToken(c)

	event, err := h.Event.Create(c.UserContext(), input, userId)
	metrics.Record(constants.ENTITY_EVENT, constants.ACTION_CREATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusCreated, constants.EVENT_CREATED, event)
}

func (h *Handler) UpdateEvent(c *fiber.Ctx) error {
	input := c.Locals("updateInput").(model.UpdateEventInput)

	event, err := h.Event.Update(c.UserContext(), inputId(c), input)
	metrics.Record(constants.ENTITY_EVENT, constants.ACTION_UPDATED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.EVENT_UPDATED, event)
}

func (h *Handler) DeleteEvent(c *fiber.Ctx) error {
	err := h.Event.Delete(c.UserContext(), inputId(c))
	metrics.Record(constants.ENTITY_EVENT, constants.ACTION_DELETED, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.MessageResponse(c, fiber.StatusOK, constants.EVENT_DELETED, nil)
}

func (h *Handler) GetTiketByEvent(c *fiber.Ctx) error {
	var p model.Pagination
	if err := c.QueryParser(&p); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	rows, total, err := h.Tiket.ListByEvent(c.UserContext(), inputId(c), p)
	metrics.Record(constants.ENTITY_TIKET, constants.ACTION_LIST, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, listResponse(rows, p, total))
}

// GenerateSignature ký params để browser upload ảnh event thẳng lên cloudinary
func (h *Handler) GenerateSignature(c *fiber.Ctx) error {
	input := c.Locals("signatureInput").(model.SignatureInput)

	sig, err := h.Event.UploadSignature(input)
	metrics.Record(constants.ENTITY_EVENT, constants.ACTION_SIGN, err)
	if err != nil {
		return utils.FailResponse(c, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, sig)
}
