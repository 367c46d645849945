// Package http provides http transport for anniversary analysis
package http

import (
	"bytes"
	"io"
	stdhttp "net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"jubilee/internal/adapters/roster/xlsxio"
	"jubilee/internal/core/roster"
	"jubilee/internal/modkit/httpkit"
	perr "jubilee/internal/platform/errors"
	"jubilee/internal/services/api/anniversary/domain"
	svc "jubilee/internal/services/api/anniversary/service"
)

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Config carries transport limits for the upload endpoint
type Config struct {
	MaxUploadBytes int64
}

// Register mounts anniversary endpoints on the given router
func Register(r httpkit.Router, s svc.Service, cfg Config) {
	h := &handlers{svc: s, cfg: cfg}

	r.Post("/analyze", httpkit.Handle(h.analyzeUpload))
	httpkit.PostJSON[domain.AnalyzeRowsInput](r, "/analyze/json", h.analyzeRows)
	httpkit.Get(r, "/runs/{id}", h.run)
	r.Get("/runs/{id}/included.xlsx", httpkit.Handle(h.includedFile))
	r.Get("/runs/{id}/summary.xlsx", httpkit.Handle(h.summaryFile))
	httpkit.Delete(r, "/runs/{id}", h.deleteRun)
	httpkit.Delete(r, "/runs", h.reset)
}

type handlers struct {
	svc svc.Service
	cfg Config
}

// @Summary Analyze an uploaded roster workbook
// @Tags Anniversary
// @Accept mpfd
// @Produce json
// @Param roster formData file true "Roster xlsx"
// @Param year formData int true "Reference year"
// @Param month formData int true "Reference month 1-12"
// @Success 200 {object} domain.RunView "ok"
// @Failure 400 {object} httpkit.Envelope "bad request"
// @Failure 413 {object} httpkit.Envelope "upload too large"
// @Failure 422 {object} httpkit.Envelope "schema or data error"
// @Router /anniversary/analyze [post]
func (h *handlers) analyzeUpload(r *stdhttp.Request) httpkit.Response {
	max := h.cfg.MaxUploadBytes
	if r.ContentLength > max {
		return httpkit.Error(perr.TooLargef("upload exceeds %d bytes", max))
	}
	if err := r.ParseMultipartForm(max); err != nil {
		return httpkit.Error(perr.InvalidArgf("multipart form: %v", err))
	}

	year, err := formInt(r, "year")
	if err != nil {
		return httpkit.Error(err)
	}
	month, err := formInt(r, "month")
	if err != nil {
		return httpkit.Error(err)
	}
	if year < 1900 || year > 9999 {
		return httpkit.Error(perr.InvalidArgf("year must be between 1900 and 9999, got %d", year))
	}

	file, _, err := r.FormFile("roster")
	if err != nil {
		return httpkit.Error(perr.InvalidArgf("missing roster file: %v", err))
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(io.LimitReader(file, max+1))
	if err != nil {
		return httpkit.Error(perr.Processingf(err, "read upload"))
	}
	if int64(len(data)) > max {
		return httpkit.Error(perr.TooLargef("upload exceeds %d bytes", max))
	}

	tbl, err := xlsxio.ReadTable(bytes.NewReader(data))
	if err != nil {
		return httpkit.Error(err)
	}

	view, err := h.svc.Analyze(r.Context(), tbl, year, month)
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.OK(view)
}

// @Summary Analyze tabular roster data supplied as JSON
// @Tags Anniversary
// @Accept json
// @Produce json
// @Param payload body domain.AnalyzeRowsInput true "Roster rows plus reference year and month"
// @Success 200 {object} domain.RunView "ok"
// @Failure 400 {object} httpkit.Envelope "validation error"
// @Failure 422 {object} httpkit.Envelope "schema or data error"
// @Router /anniversary/analyze/json [post]
func (h *handlers) analyzeRows(r *stdhttp.Request, in domain.AnalyzeRowsInput) (any, error) {
	tbl := roster.Table{Columns: in.Columns, Rows: in.Rows}
	return h.svc.Analyze(r.Context(), tbl, in.Year, in.Month)
}

// @Summary Fetch a stored analysis run
// @Tags Anniversary
// @Produce json
// @Param id path string true "Run id"
// @Success 200 {object} domain.RunView "ok"
// @Failure 404 {object} httpkit.Envelope "unknown run"
// @Router /anniversary/runs/{id} [get]
func (h *handlers) run(r *stdhttp.Request) (any, error) {
	return h.svc.Run(r.Context(), chi.URLParam(r, "id"))
}

// @Summary Download the included-records workbook for a run
// @Tags Anniversary
// @Produce octet-stream
// @Param id path string true "Run id"
// @Success 200 {file} file "xlsx workbook"
// @Failure 404 {object} httpkit.Envelope "unknown run"
// @Router /anniversary/runs/{id}/included.xlsx [get]
func (h *handlers) includedFile(r *stdhttp.Request) httpkit.Response {
	b, err := h.svc.IncludedWorkbook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.File(domain.FileIncluded, xlsxMIME, b)
}

// @Summary Download the anniversary-summary workbook for a run
// @Tags Anniversary
// @Produce octet-stream
// @Param id path string true "Run id"
// @Success 200 {file} file "xlsx workbook"
// @Failure 404 {object} httpkit.Envelope "unknown run"
// @Router /anniversary/runs/{id}/summary.xlsx [get]
func (h *handlers) summaryFile(r *stdhttp.Request) httpkit.Response {
	b, err := h.svc.SummaryWorkbook(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		return httpkit.Error(err)
	}
	return httpkit.File(domain.FileSummary, xlsxMIME, b)
}

// @Summary Discard one stored run
// @Tags Anniversary
// @Param id path string true "Run id"
// @Success 200 {object} httpkit.Envelope "ok"
// @Failure 404 {object} httpkit.Envelope "unknown run"
// @Router /anniversary/runs/{id} [delete]
func (h *handlers) deleteRun(r *stdhttp.Request) (any, error) {
	if err := h.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		return nil, err
	}
	return map[string]bool{"deleted": true}, nil
}

// @Summary Discard every stored run
// @Tags Anniversary
// @Success 200 {object} httpkit.Envelope "ok"
// @Router /anniversary/runs [delete]
func (h *handlers) reset(r *stdhttp.Request) (any, error) {
	if err := h.svc.Reset(r.Context()); err != nil {
		return nil, err
	}
	return map[string]bool{"reset": true}, nil
}

func formInt(r *stdhttp.Request, key string) (int, error) {
	raw := r.FormValue(key)
	if raw == "" {
		return 0, perr.InvalidArgf("missing form field %q", key)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, perr.InvalidArgf("form field %q must be an integer, got %q", key, raw)
	}
	return n, nil
}
