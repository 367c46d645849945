// jubilee-analyze is the one-shot batch entrypoint: it reads a roster
// workbook, runs the anniversary analysis and writes the two result
// workbooks next to it. Configured entirely through JOB_* env vars
package main

import (
	"os"
	"path/filepath"

	"jubilee/internal/platform/config"
	"jubilee/internal/platform/logger"
	"jubilee/internal/services/batch"
)

func main() {
	root := config.New()
	jobCfg := root.Prefix("JOB_")

	logger.Init(logger.FromEnv())
	l := logger.Get()

	in := jobCfg.MustString("INPUT")
	year := jobCfg.MustInt("YEAR")
	month := jobCfg.MustInt("MONTH")
	outDir := jobCfg.MayString("OUT_DIR", filepath.Dir(in))

	f, err := os.Open(in)
	if err != nil {
		l.Fatal().Err(err).Str("input", in).Msg("open roster workbook")
	}
	defer func() { _ = f.Close() }()

	out, err := batch.Run(batch.Job{
		Reader: f,
		Year:   year,
		Month:  month,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("anniversary analysis failed")
	}

	included := filepath.Join(outDir, "符合条件人员列表.xlsx")
	summary := filepath.Join(outDir, "入职周年统计表.xlsx")
	if err := os.WriteFile(included, out.IncludedXLSX, 0o644); err != nil {
		l.Fatal().Err(err).Str("path", included).Msg("write included workbook")
	}
	if err := os.WriteFile(summary, out.SummaryXLSX, 0o644); err != nil {
		l.Fatal().Err(err).Str("path", summary).Msg("write summary workbook")
	}

	l.Info().
		Int("total", out.Stats.Total).
		Int("included", out.Stats.Included).
		Int("excluded", out.Stats.Excluded).
		Int("dropped_too_new", out.Stats.DroppedTooNew).
		Str("included_file", included).
		Str("summary_file", summary).
		Msg("analysis complete")

	for _, w := range out.Warnings {
		l.Warn().Msg(w)
	}
}
