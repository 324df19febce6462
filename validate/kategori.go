package validate

import (
	"ticketing_admin/model"

	"github.com/gofiber/fiber/v2"
)

func CreateKategori() fiber.Handler {
	return body[model.KategoriInput]("createInput")
}

func UpdateKategori(key string) fiber.Handler {
	return withId[model.KategoriInput](key, "updateInput")
}
