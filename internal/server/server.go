// Package server exposes the HTTP surface: single-code preview and
// download, print pages, PDF sheets and stored-artifact access.
package server

import (
	"errors"
	"fmt"
	"html/template"

	"example.com/barcoded/internal/artifact"
	"example.com/barcoded/internal/barcode"
	"example.com/barcoded/internal/code"
	"example.com/barcoded/internal/storage"
)

// Options configures server creation.
type Options struct {
	// Store receives every rendered artifact. Required.
	Store storage.Store
	// Renderer produces the linear barcode images. Defaults to Code 128
	// at the package defaults when nil.
	Renderer barcode.Renderer
	// QRSize is the default pixel size for the QR preview route.
	QRSize int
}

// Server holds the handler state shared across requests.
type Server struct {
	svc       *artifact.Service
	store     storage.Store
	qrSize    int
	templates *template.Template
}

// NewServer wires the artifact service and parses the page templates.
func NewServer(opts Options) (*Server, error) {
	if opts.Store == nil {
		return nil, errors.New("store is required")
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = barcode.Code128{}
	}
	qrSize := opts.QRSize
	if qrSize <= 0 {
		qrSize = 256
	}
	templates, err := template.New("index").Parse(landingPage)
	if err != nil {
		return nil, fmt.Errorf("parse landing template: %w", err)
	}
	if _, err := templates.New("print").Parse(printPage); err != nil {
		return nil, fmt.Errorf("parse print template: %w", err)
	}
	return &Server{
		svc:       artifact.NewService(renderer, opts.Store),
		store:     opts.Store,
		qrSize:    qrSize,
		templates: templates,
	}, nil
}

// isClientError reports whether err should surface as a 400. Renderer
// rejections stay client-facing: the encoder vetoing a grammar-valid code is
// treated as bad input, not a server fault.
func isClientError(err error) bool {
	var (
		formatErr *code.FormatError
		batchErr  *code.BatchError
		renderErr *artifact.RenderError
	)
	switch {
	case errors.As(err, &formatErr),
		errors.As(err, &batchErr),
		errors.As(err, &renderErr),
		errors.Is(err, code.ErrNoCodes),
		errors.Is(err, code.ErrNoValidCodes):
		return true
	}
	return false
}
