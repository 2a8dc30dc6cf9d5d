package server

import "net/http"

// NewRouter wires HTTP routes to the server's handlers.
func NewRouter(s *Server) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/barcode", s.handleBarcode)
	mux.HandleFunc("/barcode/preview", s.handlePreview)
	mux.HandleFunc("/barcode/download", s.handleDownload)
	mux.HandleFunc("/qr/preview", s.handleQRPreview)
	mux.HandleFunc("/print", s.handlePrint)
	mux.HandleFunc("/print-batch", s.handlePrintBatch)
	mux.HandleFunc("/print-grid", s.handlePrintGrid)
	mux.HandleFunc("/print-batch.pdf", s.handlePrintBatchPDF)
	mux.HandleFunc("/print-grid.pdf", s.handlePrintGridPDF)
	mux.HandleFunc("/artifacts/", s.handleArtifacts)
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/", s.handleIndex)
	return mux
}
