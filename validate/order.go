package validate

import (
	"ticketing_admin/model"

	"github.com/gofiber/fiber/v2"
)

func CreateOrder() fiber.Handler {
	return body[model.OrderInput]("createInput")
}

func UpdateOrder(key string) fiber.Handler {
	return withId[model.OrderInput](key, "updateInput")
}
