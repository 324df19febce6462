package utils

import (
	"bytes"
	"errors"
	"image/png"

	"github.com/skip2/go-qrcode"
)

// cạnh (px) của ảnh QR đơn hàng
const OrderQRSize = 256

// OrderQRCode tạo ảnh PNG QR chứa mã order (ORD-XXXXXXXX), dùng để quét khi check-in.
func OrderQRCode(kode string) ([]byte, error) {
	if kode == "" {
		return nil, errors.New("qr: empty order kode")
	}
	return GenerateQRCode(kode, OrderQRSize)
}

func GenerateQRCode(content string, size int) ([]byte, error) {
	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, qr.Image(size)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
