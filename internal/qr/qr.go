// Package qr renders the QR codes printed on products.
package qr

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/skip2/go-qrcode"
)

// DefaultSize is the side length in pixels of generated images.
const DefaultSize = 256

// Encode renders content as a PNG QR code of size x size pixels.
func Encode(content string, size int) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("QR content is empty")
	}
	if size <= 0 {
		size = DefaultSize
	}

	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode QR code: %w", err)
	}
	return png, nil
}

// PassportURL returns the public page address encoded into a passport QR code.
func PassportURL(baseURL, passportID string) string {
	return strings.TrimRight(baseURL, "/") + "/product/" + url.PathEscape(passportID)
}
