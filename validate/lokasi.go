package validate

import (
	"ticketing_admin/model"

	"github.com/gofiber/fiber/v2"
)

func CreateLokasi() fiber.Handler {
	return body[model.LokasiInput]("createInput")
}

func UpdateLokasi(key string) fiber.Handler {
	return withId[model.LokasiInput](key, "updateInput")
}
