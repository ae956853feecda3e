package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/TungTran2095/medform/internal/plan/entity"
	"github.com/TungTran2095/medform/internal/shared/gemini"
)

// SubmissionStore is the persistence surface the services depend on.
type SubmissionStore interface {
	Create(ctx context.Context, sub *entity.PlanSubmission) error
	ListAll(ctx context.Context) ([]entity.PlanSubmission, error)
	FindByID(ctx context.Context, id string) (*entity.PlanSubmission, error)
}

// UnitDirectory resolves unit codes to leader names for form pre-fill.
type UnitDirectory interface {
	List(ctx context.Context) ([]entity.UnitDirectoryEntry, error)
}

// TextGenerator produces the dashboard's natural-language summaries.
type TextGenerator interface {
	Summarize(ctx context.Context, content, contentType string) (string, error)
}

// Services bundles the plan services for handler wiring.
type Services struct {
	Submission *SubmissionService
	Dashboard  *DashboardService
	Export     *ExportService
}

// NewServices wires the services over one store. ai and cache may be nil; the
// dashboard then reports summaries as unavailable and caches in process memory.
func NewServices(store SubmissionStore, units UnitDirectory, ai TextGenerator, cache SummaryCache, logger *zap.Logger) *Services {
	dashboard := NewDashboardService(store, ai, cache, logger)
	return &Services{
		Submission: NewSubmissionService(store, logger),
		Dashboard:  dashboard,
		Export:     NewExportService(dashboard),
	}
}

var _ TextGenerator = (*gemini.Client)(nil)
