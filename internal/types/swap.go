package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OutfitSwap is the persisted form of a SwapRecord. Append-only; rows are
// written once and never edited. Brand and price of the incoming product are
// denormalized so pattern analysis does not need a catalog join.
type OutfitSwap struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	OutfitID        string     `gorm:"column:outfit_id;not null;index" json:"outfit_id"`
	UserID          *uuid.UUID `gorm:"type:uuid;column:user_id;index" json:"user_id,omitempty"`
	SessionID       *uuid.UUID `gorm:"type:uuid;column:session_id;index" json:"session_id,omitempty"`
	Category        string     `gorm:"column:category;not null" json:"category"`
	OldProductID    uuid.UUID  `gorm:"type:uuid;column:old_product_id;not null" json:"old_product_id"`
	NewProductID    uuid.UUID  `gorm:"type:uuid;column:new_product_id;not null" json:"new_product_id"`
	NewProductBrand string     `gorm:"column:new_product_brand" json:"new_product_brand"`
	NewProductPrice float64    `gorm:"column:new_product_price" json:"new_product_price"`
	ScoreBefore     float64    `gorm:"column:score_before;not null" json:"score_before"`
	ScoreAfter      float64    `gorm:"column:score_after;not null" json:"score_after"`
	Improvement     bool       `gorm:"column:improvement;not null" json:"improvement"`

	CreatedAt time.Time      `gorm:"not null;default:now();index" json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (OutfitSwap) TableName() string { return "outfit_swap" }
