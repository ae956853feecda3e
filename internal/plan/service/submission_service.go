package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TungTran2095/medform/internal/plan/entity"
	"github.com/TungTran2095/medform/internal/plan/schema"
)

// SubmissionService accepts validated submissions. Client-side validation is
// not trusted; every candidate is re-validated here before the single insert.
type SubmissionService struct {
	store  SubmissionStore
	logger *zap.Logger
}

func NewSubmissionService(store SubmissionStore, logger *zap.Logger) *SubmissionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubmissionService{store: store, logger: logger}
}

// Create validates and persists one submission. A non-empty FieldError list
// means the candidate was rejected and nothing was written; err reports store
// failures only.
func (s *SubmissionService) Create(ctx context.Context, in *schema.SubmissionInput) (*entity.PlanSubmission, []schema.FieldError, error) {
	if errs := schema.Validate(in); len(errs) > 0 {
		return nil, errs, nil
	}

	sub := in.ToEntity()
	sub.ID = uuid.New().String()
	sub.CreatedAt = time.Now()

	if err := s.store.Create(ctx, sub); err != nil {
		return nil, nil, fmt.Errorf("insert submission: %w", err)
	}

	s.logger.Info("plan submission stored",
		zap.String("id", sub.ID),
		zap.String("unit", sub.UnitName),
	)
	return sub, nil, nil
}

// Get returns one submission, or nil when it does not exist.
func (s *SubmissionService) Get(ctx context.Context, id string) (*entity.PlanSubmission, error) {
	sub, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find submission: %w", err)
	}
	return sub, nil
}
