package artifact

import (
	"errors"
	"testing"

	"example.com/barcoded/internal/code"
	"example.com/barcoded/internal/storage"
)

type stubRenderer struct {
	png []byte
	err error
}

func (r stubRenderer) Render(string) ([]byte, error) {
	return r.png, r.err
}

func TestRenderPersistsBeforeReturning(t *testing.T) {
	store := storage.NewMem()
	svc := NewService(stubRenderer{png: []byte("png-bytes")}, store)

	got, err := svc.Render("i-mce-169369/25")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got.Name != "I-MCE-169369_25.png" {
		t.Fatalf("name = %q, want I-MCE-169369_25.png", got.Name)
	}
	if string(got.PNG) != "png-bytes" {
		t.Fatalf("png = %q", got.PNG)
	}
	if !store.Exists(got.Name) {
		t.Fatalf("artifact not persisted")
	}
}

func TestRenderDisambiguatesRepeatedCodes(t *testing.T) {
	store := storage.NewMem()
	svc := NewService(stubRenderer{png: []byte("png")}, store)

	names := make([]string, 3)
	for i := range names {
		got, err := svc.Render("I-MCE-169369/25")
		if err != nil {
			t.Fatalf("Render #%d: %v", i, err)
		}
		names[i] = got.Name
	}
	want := []string{"I-MCE-169369_25.png", "I-MCE-169369_25-1.png", "I-MCE-169369_25-2.png"}
	for i, name := range names {
		if name != want[i] {
			t.Fatalf("call %d stored %q, want %q", i, name, want[i])
		}
	}
}

func TestRenderPropagatesFormatError(t *testing.T) {
	svc := NewService(stubRenderer{png: []byte("png")}, storage.NewMem())
	_, err := svc.Render("not a code")
	var ferr *code.FormatError
	if !errors.As(err, &ferr) {
		t.Fatalf("expected *code.FormatError, got %v", err)
	}
}

func TestRenderWrapsEncoderFailure(t *testing.T) {
	encoderErr := errors.New("unsupported rune")
	store := storage.NewMem()
	svc := NewService(stubRenderer{err: encoderErr}, store)

	_, err := svc.Render("I-MCE-1/25")
	var rerr *RenderError
	if !errors.As(err, &rerr) {
		t.Fatalf("expected *RenderError, got %v", err)
	}
	if !errors.Is(err, encoderErr) {
		t.Fatalf("RenderError does not wrap encoder error")
	}
	if names, _ := store.List(); len(names) != 0 {
		t.Fatalf("failed render left artifacts: %v", names)
	}
}
