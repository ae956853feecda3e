package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/TungTran2095/medform/internal/plan/entity"
)

// SubmissionRepository persists plan submissions. The table is append-only;
// there is no update or delete path.
type SubmissionRepository struct {
	db *gorm.DB
}

func NewSubmissionRepository(db *gorm.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts one submission in a single statement.
func (r *SubmissionRepository) Create(ctx context.Context, sub *entity.PlanSubmission) error {
	return r.db.WithContext(ctx).Create(sub).Error
}

// ListAll returns every submission, newest first. The dashboard operates on
// the full set; there is no pagination.
func (r *SubmissionRepository) ListAll(ctx context.Context) ([]entity.PlanSubmission, error) {
	var subs []entity.PlanSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	return subs, nil
}

// FindByID returns one submission, or nil when it does not exist.
func (r *SubmissionRepository) FindByID(ctx context.Context, id string) (*entity.PlanSubmission, error) {
	var sub entity.PlanSubmission
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sub).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}
