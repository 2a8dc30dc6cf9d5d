package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"example.com/barcoded/internal/artifact"
	"example.com/barcoded/internal/barcode"
	"example.com/barcoded/internal/code"
	printpkg "example.com/barcoded/internal/print"
)

// maxDataLength bounds the raw data parameter before validation, matching
// the original API contract.
const maxDataLength = 1024

// dataParam extracts and bounds-checks the single-code data parameter.
func dataParam(r *http.Request) (string, error) {
	data := r.URL.Query().Get("data")
	if data == "" {
		return "", fmt.Errorf("data parameter is required")
	}
	if len(data) > maxDataLength {
		return "", fmt.Errorf("data parameter exceeds %d characters", maxDataLength)
	}
	return data, nil
}

// batchParams pulls the repeated code values and the delimited codes blob
// out of the query string.
func batchParams(r *http.Request) (code.Batch, error) {
	q := r.URL.Query()
	return code.ParseBatch(q["code"], q.Get("codes"))
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if isClientError(err) {
		status = http.StatusBadRequest
	}
	http.Error(w, err.Error(), status)
}

func requireGet(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// serveImage writes a rendered artifact with the given disposition, naming
// the response after the file just stored.
func serveImage(w http.ResponseWriter, rendered artifact.Rendered, disposition string) {
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(rendered.PNG)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("%s; filename=%q", disposition, rendered.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(rendered.PNG)
}

func (s *Server) renderAndServe(w http.ResponseWriter, r *http.Request, disposition string) {
	data, err := dataParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rendered, err := s.svc.Render(data)
	if err != nil {
		s.fail(w, err)
		return
	}
	serveImage(w, rendered, disposition)
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	s.renderAndServe(w, r, "inline")
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	s.renderAndServe(w, r, "attachment")
}

// handleBarcode is the original combined route: disposition chosen by query
// parameter, defaulting to attachment.
func (s *Server) handleBarcode(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	disposition := r.URL.Query().Get("disposition")
	switch disposition {
	case "":
		disposition = "attachment"
	case "inline", "attachment":
	default:
		http.Error(w, "disposition must be inline or attachment", http.StatusBadRequest)
		return
	}
	s.renderAndServe(w, r, disposition)
}

// handleQRPreview serves the same code as a QR symbol. QR images are served
// directly and not persisted; only the linear barcodes are artifacts.
func (s *Server) handleQRPreview(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	data, err := dataParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	parsed, err := code.Parse(data)
	if err != nil {
		s.fail(w, err)
		return
	}
	size := s.qrSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		parsedSize, err := strconv.Atoi(sizeStr)
		if err != nil || parsedSize <= 0 || parsedSize > 2048 {
			http.Error(w, "size must be between 1 and 2048", http.StatusBadRequest)
			return
		}
		size = parsedSize
	}
	png, err := barcode.QR{Size: size}.Render(parsed.String())
	if err != nil {
		s.fail(w, &artifact.RenderError{Code: parsed, Err: err})
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=%q", code.SanitizeFilename(parsed.String())+"-qr.png"))
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (s *Server) handlePrint(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	data, err := dataParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	parsed, err := code.Parse(data)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.servePrintPage(w, printpkg.ComposeSingle(parsed))
}

func (s *Server) handlePrintBatch(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	batch, err := batchParams(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.servePrintPage(w, printpkg.ComposeBatch(batch, printpkg.OnePerPage))
}

func (s *Server) handlePrintGrid(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	batch, err := batchParams(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.servePrintPage(w, printpkg.ComposeBatch(batch, printpkg.GridOnePage))
}

func (s *Server) servePrintPage(w http.ResponseWriter, page printpkg.Page) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "print", page); err != nil {
		s.fail(w, err)
	}
}

func (s *Server) handlePrintBatchPDF(w http.ResponseWriter, r *http.Request) {
	s.servePDF(w, r, printpkg.OnePerPage)
}

func (s *Server) handlePrintGridPDF(w http.ResponseWriter, r *http.Request) {
	s.servePDF(w, r, printpkg.GridOnePage)
}

// servePDF renders every code in the batch (persisting each artifact, same
// as the image routes) and streams a composed PDF sheet.
func (s *Server) servePDF(w http.ResponseWriter, r *http.Request, layout printpkg.Layout) {
	if !requireGet(w, r) {
		return
	}
	batch, err := batchParams(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	images := make([]printpkg.Image, len(batch))
	for i, c := range batch {
		rendered, err := s.svc.RenderCode(c)
		if err != nil {
			s.fail(w, err)
			return
		}
		images[i] = printpkg.Image{Code: c, PNG: rendered.PNG}
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="barcodes.pdf"`)
	if err := printpkg.WritePDF(w, layout, images); err != nil {
		s.fail(w, err)
	}
}

// handleArtifacts lists stored artifact names at the bare prefix and serves
// a single stored file below it.
func (s *Server) handleArtifacts(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}
	name := strings.TrimPrefix(r.URL.Path, "/artifacts/")
	if name == "" {
		names, err := s.store.List()
		if err != nil {
			s.fail(w, fmt.Errorf("list artifacts: %w", err))
			return
		}
		writeJSON(w, http.StatusOK, names)
		return
	}
	f, err := s.store.Open(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
	io.Copy(w, f)
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, "index", nil); err != nil {
		s.fail(w, err)
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
