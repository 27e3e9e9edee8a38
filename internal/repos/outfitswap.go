package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/types"
)

// OutfitSwapRepo records accepted swaps and reads them back for pattern
// analysis. Swap history is append only; there is no update path.
type OutfitSwapRepo interface {
	Create(ctx context.Context, tx *gorm.DB, swap *types.OutfitSwap) error
	GetRecent(ctx context.Context, tx *gorm.DB, userID, sessionID *uuid.UUID, limit int) ([]*types.OutfitSwap, error)
}

type outfitSwapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOutfitSwapRepo(db *gorm.DB, baseLog *logger.Logger) OutfitSwapRepo {
	repoLog := baseLog.With("repo", "OutfitSwapRepo")
	return &outfitSwapRepo{db: db, log: repoLog}
}

func (r *outfitSwapRepo) Create(ctx context.Context, tx *gorm.DB, swap *types.OutfitSwap) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if swap.ID == uuid.Nil {
		swap.ID = uuid.New()
	}
	return transaction.WithContext(ctx).Create(swap).Error
}

func (r *outfitSwapRepo) GetRecent(ctx context.Context, tx *gorm.DB, userID, sessionID *uuid.UUID, limit int) ([]*types.OutfitSwap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if limit <= 0 {
		limit = 100
	}

	query := transaction.WithContext(ctx).Model(&types.OutfitSwap{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	} else if sessionID != nil {
		query = query.Where("session_id = ?", *sessionID)
	}

	var results []*types.OutfitSwap
	if err := query.Order("created_at DESC").Limit(limit).Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
