package print

import (
	"strings"
	"testing"
	"time"

	"example.com/barcoded/internal/code"
)

func mustCode(t *testing.T, raw string) code.Code {
	t.Helper()
	c, err := code.Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q): %v", raw, err)
	}
	return c
}

func pinClock(t *testing.T, at time.Time) {
	t.Helper()
	orig := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = orig })
}

func TestComposeSingle(t *testing.T) {
	pinClock(t, time.Unix(0, 12345))
	page := ComposeSingle(mustCode(t, "I-MCE-169369/25"))
	if page.Layout != OnePerPage {
		t.Fatalf("layout = %q", page.Layout)
	}
	if len(page.Cells) != 1 {
		t.Fatalf("cells = %d, want 1", len(page.Cells))
	}
	cell := page.Cells[0]
	if cell.Code.String() != "I-MCE-169369/25" {
		t.Fatalf("code = %q", cell.Code)
	}
	if !strings.HasPrefix(cell.ImageURL, "/barcode/preview?") {
		t.Fatalf("image url = %q", cell.ImageURL)
	}
	if !strings.Contains(cell.ImageURL, "data=I-MCE-169369%2F25") {
		t.Fatalf("image url missing escaped code: %q", cell.ImageURL)
	}
	if !strings.Contains(cell.ImageURL, "ts=12345") {
		t.Fatalf("image url missing cache-busting token: %q", cell.ImageURL)
	}
}

func TestComposeBatchPreservesOrder(t *testing.T) {
	pinClock(t, time.Unix(1, 0))
	batch := code.Batch{
		mustCode(t, "I-MCE-1/25"),
		mustCode(t, "I-ABC-2/26"),
		mustCode(t, "I-XYZ-3/27"),
	}
	page := ComposeBatch(batch, GridOnePage)
	if page.Layout != GridOnePage {
		t.Fatalf("layout = %q", page.Layout)
	}
	if len(page.Cells) != len(batch) {
		t.Fatalf("cells = %d, want %d", len(page.Cells), len(batch))
	}
	for i, cell := range page.Cells {
		if cell.Code != batch[i] {
			t.Fatalf("cell %d = %q, want %q", i, cell.Code, batch[i])
		}
	}
}
