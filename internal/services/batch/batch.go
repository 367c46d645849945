// Package batch runs a single roster analysis end to end: workbook in,
// two workbooks plus stats and warnings out. It is the non-HTTP caller
// of the core pipeline, shared by the jubilee-analyze entrypoint
package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"jubilee/internal/adapters/roster/xlsxio"
	"jubilee/internal/core/roster"
	perr "jubilee/internal/platform/errors"
)

// Job describes one analysis run over a roster workbook
type Job struct {
	Reader io.Reader
	Year   int
	Month  int
}

// Output carries the rendered result workbooks and run telemetry
type Output struct {
	IncludedXLSX []byte
	SummaryXLSX  []byte
	Stats        roster.Stats
	Warnings     []string
}

// Run executes the job. Errors carry the platform error codes so callers
// can distinguish schema, data and processing failures
func Run(job Job) (*Output, error) {
	tbl, err := xlsxio.ReadTable(job.Reader)
	if err != nil {
		return nil, err
	}

	res, err := roster.Analyze(tbl, job.Year, job.Month)
	if err != nil {
		var serr *roster.SchemaError
		var derr *roster.DataTypeError
		switch {
		case errors.As(err, &serr):
			return nil, perr.Schemaf("缺失关键字段: %s", strings.Join(serr.Missing, ", "))
		case errors.As(err, &derr):
			return nil, perr.Wrapf(err, perr.ErrorCodeDataType,
				"入职日期格式错误 (第%d行): %q", derr.Row, derr.Value)
		case errors.Is(err, roster.ErrMonthOutOfRange):
			return nil, perr.InvalidArgf("month must be between 1 and 12, got %d", job.Month)
		default:
			return nil, perr.Processingf(err, "anniversary analysis failed")
		}
	}

	included, err := xlsxio.WriteIncluded(res.Columns, res.Included)
	if err != nil {
		return nil, err
	}
	summary, err := xlsxio.WriteSummary(res.Summary)
	if err != nil {
		return nil, err
	}

	warnings := []string{fmt.Sprintf("已排除特殊部门人员: %d人", res.Stats.Excluded)}
	if len(res.Stats.Livewater) > 0 {
		warnings = append(warnings, fmt.Sprintf("需要关注活水员工: %s", strings.Join(res.Stats.Livewater, ", ")))
	}

	return &Output{
		IncludedXLSX: included,
		SummaryXLSX:  summary,
		Stats:        res.Stats,
		Warnings:     warnings,
	}, nil
}
