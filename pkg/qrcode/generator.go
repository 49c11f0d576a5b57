package qrcode

import (
	"encoding/base64"
	"errors"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"

	"github.com/dmitrymomot/clinicsite/pkg/booking"
)

// DefaultSize is the image size in pixels used when size is not positive.
const DefaultSize = 256

// Generate encodes content as a size x size PNG with medium error recovery.
func Generate(content string, size int) ([]byte, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}
	if size <= 0 {
		size = DefaultSize
	}
	png, err := skipqrcode.Encode(content, skipqrcode.Medium, size)
	if err != nil {
		return nil, errors.Join(ErrGenerate, err)
	}
	return png, nil
}

// DataURI returns the PNG for content as a data:image/png;base64 URI for
// use in an img src.
func DataURI(content string, size int) (string, error) {
	png, err := Generate(content, size)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// WhatsApp returns a PNG of the chat link for number with greeting
// pre-filled, and the link itself.
func WhatsApp(number, greeting string, size int) (png []byte, link string, err error) {
	link, err = booking.ContactLink(number, greeting)
	if err != nil {
		return nil, "", err
	}
	png, err = Generate(link, size)
	if err != nil {
		return nil, "", err
	}
	return png, link, nil
}
