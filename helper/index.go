package helper

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	return string(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// UserIDFromToken lấy user đang thao tác từ token mà middleware.Protected đã gán.
// Claim có thể là userId, user_id hoặc sub.
func UserIDFromToken(c *fiber.Ctx) (uint, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return 0, false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, false
	}

	for _, key := range []string{"userId", "user_id", "sub"} {
		switch v := claims[key].(type) {
		case float64:
			if v > 0 {
				return uint(v), true
			}
		case string:
			if id, err := strconv.ParseUint(v, 10, 32); err == nil && id > 0 {
				return uint(id), true
			}
		}
	}
	return 0, false
}
