package domain

import (
	"context"

	"jubilee/internal/core/roster"
)

// ServicePort defines the service contract for anniversary analysis
type ServicePort interface {
	// Analyze runs the pipeline over a parsed table and stores the result
	Analyze(ctx context.Context, tbl roster.Table, year, month int) (RunView, error)
	// Run returns a stored run by id
	Run(ctx context.Context, id string) (RunView, error)
	// IncludedWorkbook renders a stored run's included-records xlsx
	IncludedWorkbook(ctx context.Context, id string) ([]byte, error)
	// SummaryWorkbook renders a stored run's anniversary-summary xlsx
	SummaryWorkbook(ctx context.Context, id string) ([]byte, error)
	// Delete discards one stored run
	Delete(ctx context.Context, id string) error
	// Reset discards every stored run
	Reset(ctx context.Context) error
}
