package router

import (
	"ticketing_admin/handler"
	"ticketing_admin/middleware"
	"ticketing_admin/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, h *handler.Handler, jwtSecret string) {
	app.Get("/health", h.Health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	admin := app.Group("/admin", middleware.Protected(jwtSecret))

	lokasi := admin.Group("/lokasi")
	lokasi.Get("/", h.GetLokasi)
	lokasi.Get("/:lokasiId", validate.GetById("lokasiId"), h.GetLokasiById)
	lokasi.Post("/", validate.CreateLokasi(), h.CreateLokasi)
	lokasi.Put("/:lokasiId", validate.UpdateLokasi("lokasiId"), h.UpdateLokasi)
	lokasi.Patch("/:lokasiId", validate.UpdateLokasi("lokasiId"), h.UpdateLokasi)
	lokasi.Delete("/:lokasiId", validate.GetById("lokasiId"), h.DeleteLokasi)

	kategori := admin.Group("/kategori")
	kategori.Get("/", h.GetKategori)
	kategori.Get("/:kategoriId", validate.GetById("kategoriId"), h.GetKategoriById)
	kategori.Post("/", validate.CreateKategori(), h.CreateKategori)
	kategori.Put("/:kategoriId", validate.UpdateKategori("kategoriId"), h.UpdateKategori)
	kategori.Patch("/:kategoriId", validate.UpdateKategori("kategoriId"), h.UpdateKategori)
	kategori.Delete("/:kategoriId", validate.GetById("kategoriId"), h.DeleteKategori)

	event := admin.Group("/event")
	event.Get("/", h.GetEvent)
	event.Get("/:eventId", validate.GetById("eventId"), h.GetEventById)
	event.Get("/:eventId/tiket", validate.GetById("eventId"), h.GetTiketByEvent)
	event.Post("/", validate.CreateEvent(), h.CreateEvent)
	event.Put("/:eventId", validate.UpdateEvent("eventId"), h.UpdateEvent)
	event.Patch("/:eventId", validate.UpdateEvent("eventId"), h.UpdateEvent)
	event.Delete("/:eventId", validate.GetById("eventId"), h.DeleteEvent)

	tiket := admin.Group("/tiket")
	tiket.Get("/", h.GetTiket)
	tiket.Get("/:tiketId", validate.GetById("tiketId"), h.GetTiketById)
	tiket.Post("/", validate.CreateTiket(), h.CreateTiket)
	tiket.Put("/:tiketId", validate.UpdateTiket("tiketId"), h.UpdateTiket)
	tiket.Patch("/:tiketId", validate.UpdateTiket("tiketId"), h.UpdateTiket)
	tiket.Delete("/:tiketId", validate.GetById("tiketId"), h.DeleteTiket)

	order := admin.Group("/order")
	order.Get("/", h.GetOrder)
	order.Get("/:orderId", validate.GetById("orderId"), h.GetOrderById)
	order.Get("/:orderId/qr", validate.GetById("orderId"), h.GetOrderQR)
	order.Post("/", validate.CreateOrder(), h.CreateOrder)
	order.Put("/:orderId", validate.UpdateOrder("orderId"), h.UpdateOrder)
	order.Patch("/:orderId", validate.UpdateOrder("orderId"), h.UpdateOrder)
	order.Delete("/:orderId", validate.GetById("orderId"), h.DeleteOrder)

	admin.Post("/cloudinary-signature", validate.UploadSignature(), h.GenerateSignature)

	admin.Get("/ws/perubahan", h.UpgradePerubahan, websocket.New(h.PerubahanWebsocket))
}
