// Package service contains anniversary analysis workflows
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"jubilee/internal/adapters/roster/xlsxio"
	"jubilee/internal/core/roster"
	modkit "jubilee/internal/modkit"
	perr "jubilee/internal/platform/errors"
	"jubilee/internal/platform/logger"
	"jubilee/internal/services/api/anniversary/domain"
)

// Status messages surfaced to callers, matching the original workbook tool
const (
	msgDone          = "分析完成！请下载结果文件"
	msgExcludedCount = "已排除特殊部门人员: %d人"
	msgLivewater     = "需要关注活水员工: %s"
)

// Service defines the service contract for anniversary analysis
type Service interface{ domain.ServicePort }

// Svc implements the Service interface
type Svc struct {
	log   logger.Logger
	store *runStore
}

// New creates an anniversary service. MAX_RUNS bounds the in-memory run
// registry, read from the ANNIV_ scope of the module config
func New(deps modkit.Deps) *Svc {
	maxRuns := deps.Cfg.Prefix("ANNIV_").MayInt("MAX_RUNS", 100)
	return &Svc{
		log:   deps.Log,
		store: newRunStore(maxRuns),
	}
}

// Analyze runs the pipeline over tbl and stores the result under a fresh run id
func (s *Svc) Analyze(ctx context.Context, tbl roster.Table, year, month int) (domain.RunView, error) {
	res, err := roster.Analyze(tbl, year, month)
	if err != nil {
		var serr *roster.SchemaError
		var derr *roster.DataTypeError
		switch {
		case errors.As(err, &serr):
			return domain.RunView{}, perr.Schemaf("缺失关键字段: %s", strings.Join(serr.Missing, ", "))
		case errors.As(err, &derr):
			return domain.RunView{}, perr.Wrapf(err, perr.ErrorCodeDataType,
				"入职日期格式错误 (第%d行): %q", derr.Row, derr.Value)
		case errors.Is(err, roster.ErrMonthOutOfRange):
			return domain.RunView{}, perr.InvalidArgf("month must be between 1 and 12, got %d", month)
		default:
			return domain.RunView{}, perr.Processingf(err, "anniversary analysis failed")
		}
	}

	r := &run{Year: year, Month: month, Result: res, CreatedAt: time.Now().UTC()}
	s.store.put(r)

	s.log.Info().
		Str("run_id", r.ID).
		Int("year", year).
		Int("month", month).
		Int("total", res.Stats.Total).
		Int("included", res.Stats.Included).
		Int("excluded", res.Stats.Excluded).
		Int("dropped_too_new", res.Stats.DroppedTooNew).
		Msg("anniversary analysis complete")

	return viewOf(r), nil
}

// Run returns a stored run by id
func (s *Svc) Run(ctx context.Context, id string) (domain.RunView, error) {
	r, ok := s.store.get(id)
	if !ok {
		return domain.RunView{}, perr.NotFoundf("run %s not found", id)
	}
	return viewOf(r), nil
}

// IncludedWorkbook renders the included-records workbook for a stored run
func (s *Svc) IncludedWorkbook(ctx context.Context, id string) ([]byte, error) {
	r, ok := s.store.get(id)
	if !ok {
		return nil, perr.NotFoundf("run %s not found", id)
	}
	return xlsxio.WriteIncluded(r.Result.Columns, r.Result.Included)
}

// SummaryWorkbook renders the anniversary-summary workbook for a stored run
func (s *Svc) SummaryWorkbook(ctx context.Context, id string) ([]byte, error) {
	r, ok := s.store.get(id)
	if !ok {
		return nil, perr.NotFoundf("run %s not found", id)
	}
	return xlsxio.WriteSummary(r.Result.Summary)
}

// Delete discards one stored run
func (s *Svc) Delete(ctx context.Context, id string) error {
	if !s.store.delete(id) {
		return perr.NotFoundf("run %s not found", id)
	}
	return nil
}

// Reset discards every stored run
func (s *Svc) Reset(ctx context.Context) error {
	n := s.store.reset()
	s.log.Info().Int("discarded", n).Msg("anniversary runs reset")
	return nil
}

func viewOf(r *run) domain.RunView {
	res := r.Result

	included := make([]domain.IncludedRecord, 0, len(res.Included))
	for _, inc := range res.Included {
		included = append(included, domain.IncludedRecord{
			Cells:        inc.Cells,
			Name:         inc.Name,
			OrgLevel3:    inc.OrgLevel3,
			HireDate:     inc.HireDate.Format("2006-01-02"),
			ServiceYears: inc.ServiceYears,
			Remark:       inc.Remark,
			DisplayLabel: inc.DisplayLabel,
		})
	}

	summary := make([]domain.SummaryRow, 0, len(res.Summary))
	for _, s := range res.Summary {
		summary = append(summary, domain.SummaryRow{Years: s.Years, Label: s.Label, People: s.People})
	}

	excluded := make([]domain.ExcludedRecord, 0, len(res.Excluded))
	for _, ex := range res.Excluded {
		excluded = append(excluded, domain.ExcludedRecord{
			Name: ex.Name, OrgLevel3: ex.OrgLevel3, OrgLevel4: ex.OrgLevel4,
		})
	}

	warnings := []string{fmt.Sprintf(msgExcludedCount, res.Stats.Excluded)}
	if len(res.Stats.Livewater) > 0 {
		warnings = append(warnings, fmt.Sprintf(msgLivewater, strings.Join(res.Stats.Livewater, ", ")))
	}

	return domain.RunView{
		RunID:    r.ID,
		Year:     r.Year,
		Month:    r.Month,
		Columns:  res.Columns,
		Included: included,
		Summary:  summary,
		Excluded: excluded,
		Stats: domain.RunStats{
			Total:         res.Stats.Total,
			Included:      res.Stats.Included,
			Excluded:      res.Stats.Excluded,
			DroppedTooNew: res.Stats.DroppedTooNew,
			CarveOut:      res.Stats.CarveOut,
			HasOutsourced: res.Stats.HasOutsourced,
			Livewater:     res.Stats.Livewater,
		},
		Messages:  []string{msgDone},
		Warnings:  warnings,
		CreatedAt: r.CreatedAt.Format(time.RFC3339),
	}
}
