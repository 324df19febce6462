package validate

import (
	"ticketing_admin/model"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return body[model.CreateEventInput]("createInput")
}

func UpdateEvent(key string) fiber.Handler {
	return withId[model.UpdateEventInput](key, "updateInput")
}

func UploadSignature() fiber.Handler {
	return body[model.SignatureInput]("signatureInput")
}
