package main

import (
	"flag"
	"fmt"
	"os"

	"example.com/barcoded/internal/artifact"
	"example.com/barcoded/internal/barcode"
	"example.com/barcoded/internal/code"
	"example.com/barcoded/internal/common"
	printpkg "example.com/barcoded/internal/print"
	"example.com/barcoded/internal/storage"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}
	cmd := os.Args[1]
	switch cmd {
	case "render":
		renderCmd(os.Args[2:])
	case "batch":
		batchCmd(os.Args[2:])
	case "sheet":
		sheetCmd(os.Args[2:])
	default:
		usage()
	}
}

func usage() {
	fmt.Printf(`barcodectl %s (built %s) <command> [options]

Commands:
  render --code <code> --out-dir <dir>
  batch  [--codes <list>] [--file <path>] --out-dir <dir>
  sheet  [--codes <list>] [--file <path>] [--layout pages|grid] --out <file.pdf>
`, version, buildDate)
}

// newService builds an artifact service writing into dir.
func newService(dir string) (*artifact.Service, error) {
	store, err := storage.NewDir(dir)
	if err != nil {
		return nil, err
	}
	return artifact.NewService(barcode.Code128{}, store), nil
}

// collectBatch merges the --codes list and an optional file of codes.
func collectBatch(codesList, file string) (code.Batch, error) {
	blob := codesList
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read codes file: %w", err)
		}
		if blob != "" {
			blob += "\n"
		}
		blob += string(data)
	}
	return code.ParseBatch(nil, blob)
}

func renderCmd(args []string) {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	codeArg := fs.String("code", "", "code to render")
	outDir := fs.String("out-dir", ".", "output directory")
	fs.Parse(args)
	if *codeArg == "" {
		common.Fatalf("render: --code is required")
	}
	svc, err := newService(*outDir)
	if err != nil {
		common.Fatalf("render: %v", err)
	}
	rendered, err := svc.Render(*codeArg)
	if err != nil {
		common.Fatalf("render: %v", err)
	}
	fmt.Printf("%s\n", rendered.Name)
}

func batchCmd(args []string) {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	codesList := fs.String("codes", "", "comma or newline separated codes")
	file := fs.String("file", "", "file with one code per line")
	outDir := fs.String("out-dir", ".", "output directory")
	fs.Parse(args)
	batch, err := collectBatch(*codesList, *file)
	if err != nil {
		common.Fatalf("batch: %v", err)
	}
	svc, err := newService(*outDir)
	if err != nil {
		common.Fatalf("batch: %v", err)
	}
	for _, c := range batch {
		rendered, err := svc.RenderCode(c)
		if err != nil {
			common.Fatalf("batch: %v", err)
		}
		fmt.Printf("%s\n", rendered.Name)
	}
}

func sheetCmd(args []string) {
	fs := flag.NewFlagSet("sheet", flag.ExitOnError)
	codesList := fs.String("codes", "", "comma or newline separated codes")
	file := fs.String("file", "", "file with one code per line")
	layoutArg := fs.String("layout", "pages", "pages (one per page) or grid")
	out := fs.String("out", "barcodes.pdf", "output PDF path")
	fs.Parse(args)
	batch, err := collectBatch(*codesList, *file)
	if err != nil {
		common.Fatalf("sheet: %v", err)
	}
	var layout printpkg.Layout
	switch *layoutArg {
	case "pages":
		layout = printpkg.OnePerPage
	case "grid":
		layout = printpkg.GridOnePage
	default:
		common.Fatalf("sheet: unknown layout %q", *layoutArg)
	}
	renderer := barcode.Code128{}
	images := make([]printpkg.Image, len(batch))
	for i, c := range batch {
		png, err := renderer.Render(c.String())
		if err != nil {
			common.Fatalf("sheet: render %s: %v", c, err)
		}
		images[i] = printpkg.Image{Code: c, PNG: png}
	}
	f, err := os.Create(*out)
	if err != nil {
		common.Fatalf("sheet: %v", err)
	}
	defer f.Close()
	if err := printpkg.WritePDF(f, layout, images); err != nil {
		common.Fatalf("sheet: %v", err)
	}
	common.Logf("wrote %s (%d codes)", *out, len(batch))
}
