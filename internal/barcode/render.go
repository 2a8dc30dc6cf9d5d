// Package barcode wraps the external symbology encoders behind one renderer
// interface returning PNG bytes.
package barcode

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	qrcode "github.com/skip2/go-qrcode"
)

// Renderer turns a validated code into an encoded PNG image.
type Renderer interface {
	Render(data string) ([]byte, error)
}

// Code128 renders the linear Code 128 symbology. Width and Height are the
// target pixel dimensions; zero values fall back to defaults.
type Code128 struct {
	Width  int
	Height int
}

// Render encodes data as Code 128 and returns PNG bytes. The encoder may
// reject input outside its alphabet even when the code grammar allowed it;
// that error is passed through unchanged.
func (r Code128) Render(data string) ([]byte, error) {
	bc, err := code128.Encode(data)
	if err != nil {
		return nil, err
	}
	width := r.Width
	if width <= 0 {
		width = 400
	}
	height := r.Height
	if height <= 0 {
		height = 120
	}
	// Scale refuses to shrink below the symbol's intrinsic module count.
	if min := bc.Bounds().Dx(); width < min {
		width = min
	}
	scaled, err := barcode.Scale(bc, width, height)
	if err != nil {
		return nil, fmt.Errorf("scale barcode: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// QR renders the same code text as a QR symbol, used by the QR preview
// endpoint.
type QR struct {
	Size int
}

func (r QR) Render(data string) ([]byte, error) {
	size := r.Size
	if size <= 0 {
		size = 256
	}
	if size > 2048 {
		size = 2048
	}
	return qrcode.Encode(data, qrcode.Medium, size)
}
