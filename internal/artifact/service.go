// Package artifact orchestrates one render-and-persist cycle: validate the
// code, render it, pick a collision-free name and write the image.
package artifact

import (
	"fmt"

	"example.com/barcoded/internal/barcode"
	"example.com/barcoded/internal/code"
	"example.com/barcoded/internal/common"
	"example.com/barcoded/internal/storage"
)

// Ext is the fixed extension for stored artifacts.
const Ext = ".png"

// Rendered is the outcome of one render-and-persist call: the encoded image
// kept in memory for the response, and the name it was stored under.
type Rendered struct {
	Code code.Code
	PNG  []byte
	Name string
}

// RenderError wraps a failure from the external encoder. The encoder may
// reject codes the grammar accepts, so this stays a client-facing error.
type RenderError struct {
	Code code.Code
	Err  error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %s: %v", e.Code, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }

// Service renders codes and persists the resulting artifacts.
type Service struct {
	renderer barcode.Renderer
	store    storage.Store
}

// NewService wires a renderer to an artifact store.
func NewService(renderer barcode.Renderer, store storage.Store) *Service {
	return &Service{renderer: renderer, store: store}
}

// Render validates raw, renders it and writes the image under a unique
// name. Deliberately not memoized: every call produces and stores a fresh
// artifact, so repeated requests for one code accumulate -1, -2, ... copies.
// The write completes before the bytes are returned.
func (s *Service) Render(raw string) (Rendered, error) {
	parsed, err := code.Parse(raw)
	if err != nil {
		return Rendered{}, err
	}
	return s.RenderCode(parsed)
}

// RenderCode is Render for an already-validated code.
func (s *Service) RenderCode(parsed code.Code) (Rendered, error) {
	png, err := s.renderer.Render(parsed.String())
	if err != nil {
		return Rendered{}, &RenderError{Code: parsed, Err: err}
	}
	name := storage.ReservePath(s.store, code.SanitizeFilename(parsed.String()), Ext)
	if err := s.store.Write(name, png); err != nil {
		return Rendered{}, fmt.Errorf("write artifact %s: %w", name, err)
	}
	common.Logf("saved barcode -> %s", name)
	return Rendered{Code: parsed, PNG: png, Name: name}, nil
}
