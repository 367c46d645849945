package module

import (
	"context"

	"jubilee/internal/core/roster"
	annivdom "jubilee/internal/services/api/anniversary/domain"
	annivsvc "jubilee/internal/services/api/anniversary/service"
)

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }

// adaptAnniversaryPort adapts the anniversary service to the domain port interface
type adaptAnniversaryPort struct{ svc annivsvc.Service }

func (a adaptAnniversaryPort) Analyze(ctx context.Context, tbl roster.Table, year, month int) (annivdom.RunView, error) {
	return a.svc.Analyze(ctx, tbl, year, month)
}

func (a adaptAnniversaryPort) Run(ctx context.Context, id string) (annivdom.RunView, error) {
	return a.svc.Run(ctx, id)
}

func (a adaptAnniversaryPort) IncludedWorkbook(ctx context.Context, id string) ([]byte, error) {
	return a.svc.IncludedWorkbook(ctx, id)
}

func (a adaptAnniversaryPort) SummaryWorkbook(ctx context.Context, id string) ([]byte, error) {
	return a.svc.SummaryWorkbook(ctx, id)
}

func (a adaptAnniversaryPort) Delete(ctx context.Context, id string) error {
	return a.svc.Delete(ctx, id)
}

func (a adaptAnniversaryPort) Reset(ctx context.Context) error {
	return a.svc.Reset(ctx)
}
