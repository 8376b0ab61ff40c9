package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

type NotebookRepo interface {
	Create(ctx context.Context, tx *gorm.DB, notebook *types.Notebook) (*types.Notebook, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Notebook, error)
	GetByID(ctx context.Context, tx *gorm.DB, notebookID uint) (*types.Notebook, error)
}

type notebookRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewNotebookRepo(db *gorm.DB, baseLog *logger.Logger) NotebookRepo {
	repoLog := baseLog.With("repo", "NotebookRepo")
	return &notebookRepo{db: db, log: repoLog}
}

func (nr *notebookRepo) Create(ctx context.Context, tx *gorm.DB, notebook *types.Notebook) (*types.Notebook, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if transaction == nil {
		return nil, ErrStorageUnavailable
	}

	if err := transaction.WithContext(ctx).Create(notebook).Error; err != nil {
		return nil, err
	}
	return notebook, nil
}

func (nr *notebookRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Notebook, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}

	results := []*types.Notebook{}
	if transaction == nil {
		nr.log.Warn("List without database handle, returning empty")
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (nr *notebookRepo) GetByID(ctx context.Context, tx *gorm.DB, notebookID uint) (*types.Notebook, error) {
	transaction := tx
	if transaction == nil {
		transaction = nr.db
	}
	if transaction == nil {
		nr.log.Warn("GetByID without database handle, returning nil")
		return nil, nil
	}

	var results []*types.Notebook
	if err := transaction.WithContext(ctx).
		Where("id = ?", notebookID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
