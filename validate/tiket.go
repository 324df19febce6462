package validate

import (
	"ticketing_admin/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTiket() fiber.Handler {
	return body[model.CreateTiketInput]("createInput")
}

func UpdateTiket(key string) fiber.Handler {
	return withId[model.UpdateTiketInput](key, "updateInput")
}
