package print

import (
	"bytes"
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"

	"example.com/barcoded/internal/code"
)

// Image is one rendered code handed to the PDF writer.
type Image struct {
	Code code.Code
	PNG  []byte
}

// WritePDF renders the images into an A4 document according to layout and
// streams the result to w.
func WritePDF(w io.Writer, layout Layout, images []Image) error {
	if len(images) == 0 {
		return fmt.Errorf("no images to lay out")
	}
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Barcode Sheet", false)
	pdf.SetCreator("barcoded", false)
	pdf.SetMargins(15, 20, 15)
	pdf.SetAutoPageBreak(true, 20)

	switch layout {
	case GridOnePage:
		addGridPage(pdf, images)
	default:
		addSheetPerCode(pdf, images)
	}

	if pdf.Err() {
		return pdf.Error()
	}
	return pdf.Output(w)
}

func registerImage(pdf *gofpdf.Fpdf, name string, png []byte) {
	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
}

// addSheetPerCode puts each code on its own page, image centered with the
// code text beneath it.
func addSheetPerCode(pdf *gofpdf.Fpdf, images []Image) {
	pageWidth, pageHeight := pdf.GetPageSize()
	imgWidth := 140.0
	imgHeight := 45.0
	for i, img := range images {
		name := fmt.Sprintf("sheet-%d", i)
		registerImage(pdf, name, img.PNG)
		pdf.AddPage()
		x := (pageWidth - imgWidth) / 2
		y := (pageHeight - imgHeight) / 2
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.ImageOptions(name, x, y, imgWidth, imgHeight, false, opts, 0, "")
		pdf.SetFont("Helvetica", "", 14)
		pdf.SetXY(x, y+imgHeight+4)
		pdf.CellFormat(imgWidth, 8, img.Code.String(), "", 0, "C", false, 0, "")
	}
}

// addGridPage flows all codes onto one page, three cells per row, each cell
// captioned with its code.
func addGridPage(pdf *gofpdf.Fpdf, images []Image) {
	const (
		cols      = 3
		cellW     = 60.0
		imgH      = 20.0
		captionH  = 6.0
		cellGap   = 4.0
		imgInsetX = 2.0
	)
	pdf.AddPage()
	left, top, _, _ := pdf.GetMargins()
	pdf.SetFont("Helvetica", "", 9)
	for i, img := range images {
		name := fmt.Sprintf("grid-%d", i)
		registerImage(pdf, name, img.PNG)
		row := i / cols
		col := i % cols
		x := left + float64(col)*cellW
		y := top + float64(row)*(imgH+captionH+cellGap)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.ImageOptions(name, x+imgInsetX, y, cellW-2*imgInsetX, imgH, false, opts, 0, "")
		pdf.SetXY(x, y+imgH)
		pdf.CellFormat(cellW, captionH, img.Code.String(), "", 0, "C", false, 0, "")
	}
}
