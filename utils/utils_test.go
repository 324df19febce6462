package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/png"
	"io"
	"net/http/httptest"
	"testing"

	"ticketing_admin/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderQRCode(t *testing.T) {
	data, err := OrderQRCode("ORD-1A2B3C4D")
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, OrderQRSize, img.Bounds().Dx())
	assert.Equal(t, OrderQRSize, img.Bounds().Dy())
}

func TestOrderQRCode_EmptyKode(t *testing.T) {
	_, err := OrderQRCode("")
	assert.Error(t, err)
}

func TestRenderOrderConfirmation(t *testing.T) {
	body, err := RenderOrderConfirmation(OrderConfirmationData{
		BuyerName:    "Admin",
		OrderCode:    "ORD-1A2B3C4D",
		TanggalOrder: "01-09-2026",
		Lines:        []OrderLineMail{{Tipe: "VIP", Jumlah: 2, SubtotalHarga: 300000}},
		TotalHarga:   300000,
	})
	require.NoError(t, err)

	assert.Contains(t, body, "ORD-1A2B3C4D")
	assert.Contains(t, body, "<td>VIP</td><td>2</td><td>300000</td>")
}

func TestNewMailer_DisabledWithoutHost(t *testing.T) {
	assert.Nil(t, NewMailer("", 587, "", "", ""))
	assert.NotNil(t, NewMailer("smtp.local", 587, "u", "p", "from@local"))
}

func TestFailResponse_Mapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", fmt.Errorf("create: %w", apperror.NewValidation("nama_lokasi", "wajib diisi")), fiber.StatusUnprocessableEntity},
		{"not found", fmt.Errorf("update: %w", apperror.ErrNotFound), fiber.StatusNotFound},
		{"in use", fmt.Errorf("delete: %w", apperror.ErrInUse), fiber.StatusConflict},
		{"duplicate", fmt.Errorf("create order: %w", apperror.ErrDuplicate), fiber.StatusConflict},
		{"other", fmt.Errorf("boom"), fiber.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error { return FailResponse(c, tc.err) })

			resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
			require.NoError(t, err)
			assert.Equal(t, tc.status, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var out map[string]any
			require.NoError(t, json.Unmarshal(raw, &out))
			assert.Equal(t, "error", out["status"])
		})
	}
}

func TestFailResponse_ValidationListsFields(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return FailResponse(c, apperror.NewValidation("nama_lokasi", "maksimal 255 karakter"))
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil), -1)
	require.NoError(t, err)

	var out struct {
		Errors []apperror.FieldError `json:"errors"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Errors, 1)
	assert.Equal(t, "nama_lokasi", out.Errors[0].Field)
}
