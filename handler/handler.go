package handler

import (
	"ticketing_admin/model"
	"ticketing_admin/notifier"
	"ticketing_admin/service"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Handler holds everything the admin routes need.
type Handler struct {
	Lokasi   *service.LokasiService
	Kategori *service.KategoriService
	Event    *service.EventService
	Tiket    *service.TiketService
	Order    *service.OrderService

	// nil khi tắt change feed
	Feed notifier.Subscriber
	DB   *gorm.DB
}

func listResponse(rows any, p model.Pagination, total int64) model.ResponseCustom {
	return model.ResponseCustom{
		Rows:       rows,
		Limit:      p.Limit,
		Page:       p.Page,
		TotalCount: total,
	}
}

func inputId(c *fiber.Ctx) uint {
	id, _ := c.Locals("inputId").(uint)
	return id
}
