package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

type ReportRepo interface {
	Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error)
	CountForNotebook(ctx context.Context, tx *gorm.DB, notebookID uint) (int64, error)
}

type reportRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReportRepo(db *gorm.DB, baseLog *logger.Logger) ReportRepo {
	repoLog := baseLog.With("repo", "ReportRepo")
	return &reportRepo{db: db, log: repoLog}
}

func (rr *reportRepo) Create(ctx context.Context, tx *gorm.DB, report *types.Report) (*types.Report, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if transaction == nil {
		return nil, ErrStorageUnavailable
	}

	if err := transaction.WithContext(ctx).Create(report).Error; err != nil {
		return nil, err
	}
	return report, nil
}

func (rr *reportRepo) CountForNotebook(ctx context.Context, tx *gorm.DB, notebookID uint) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = rr.db
	}
	if transaction == nil {
		rr.log.Warn("CountForNotebook without database handle, returning zero")
		return 0, nil
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&types.Report{}).
		Where("notebook_id = ?", notebookID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
