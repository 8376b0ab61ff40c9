package repos

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/notebook-gallery-backend/internal/logger"
	"github.com/yungbote/notebook-gallery-backend/internal/types"
)

type UserRepo interface {
	GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error)
	GetByOpenID(ctx context.Context, tx *gorm.DB, openID string) (*types.User, error)
}

type userRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUserRepo(db *gorm.DB, baseLog *logger.Logger) UserRepo {
	repoLog := baseLog.With("repo", "UserRepo")
	return &userRepo{db: db, log: repoLog}
}

func (ur *userRepo) GetByID(ctx context.Context, tx *gorm.DB, userID uint) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if transaction == nil {
		ur.log.Warn("GetByID without database handle, returning nil")
		return nil, nil
	}

	var results []*types.User
	if err := transaction.WithContext(ctx).
		Where("id = ?", userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (ur *userRepo) GetByOpenID(ctx context.Context, tx *gorm.DB, openID string) (*types.User, error) {
	transaction := tx
	if transaction == nil {
		transaction = ur.db
	}
	if transaction == nil {
		ur.log.Warn("GetByOpenID without database handle, returning nil")
		return nil, nil
	}

	var results []*types.User
	if err := transaction.WithContext(ctx).
		Where("open_id = ?", openID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}
