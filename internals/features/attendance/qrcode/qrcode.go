// internals/features/attendance/qrcode/qrcode.go
package qrcode

import (
	"fmt"
	"image/color"

	qr "github.com/skip2/go-qrcode"
)

// Ukuran dan warna mengikuti kartu QR di dashboard intern.
const (
	ImageSize = 256
)

var (
	// #3B82F6 (biru tailwind) di atas putih
	foreground = color.RGBA{R: 0x3B, G: 0x82, B: 0xF6, A: 0xFF}
	background = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// BuildPayload menyusun payload QR harian:
// "<ORG>-ATTENDANCE-<userID>-<yyyy-MM-dd>", ASCII tanpa escaping.
func BuildPayload(orgPrefix, userID, dateKey string) string {
	return fmt.Sprintf("%s-ATTENDANCE-%s-%s", orgPrefix, userID, dateKey)
}

// Generate meng-encode payload jadi PNG 256x256. Deterministik dan
// stateless; error hanya kalau payload tidak bisa di-encode.
func Generate(payload string) ([]byte, error) {
	code, err := qr.New(payload, qr.Medium)
	if err != nil {
		return nil, fmt.Errorf("encode QR: %w", err)
	}
	code.ForegroundColor = foreground
	code.BackgroundColor = background
	png, err := code.PNG(ImageSize)
	if err != nil {
		return nil, fmt.Errorf("render QR PNG: %w", err)
	}
	return png, nil
}
