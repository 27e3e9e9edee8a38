package types

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Product is a catalog item. The catalog is owned by an external storage
// service; this engine only reads it.
type Product struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Name         string         `gorm:"not null;column:name" json:"name"`
	Brand        string         `gorm:"column:brand;index" json:"brand"`
	Category     string         `gorm:"column:category;not null;index" json:"category"`
	Price        float64        `gorm:"column:price;not null" json:"price"`
	Colors       datatypes.JSON `gorm:"type:jsonb;column:colors" json:"colors"`
	Tags         datatypes.JSON `gorm:"type:jsonb;column:tags" json:"tags"`
	InStock      bool           `gorm:"column:in_stock;not null;index" json:"in_stock"`
	Retailer     string         `gorm:"column:retailer" json:"retailer"`
	AffiliateURL string         `gorm:"column:affiliate_url" json:"affiliate_url"`

	CreatedAt time.Time      `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null;default:now()" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (Product) TableName() string { return "product" }

// ColorNames decodes the colors column. Malformed data yields nil.
func (p *Product) ColorNames() []string {
	if len(p.Colors) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(p.Colors, &out); err != nil {
		return nil
	}
	return out
}

// SetColorNames encodes names into the colors column.
func (p *Product) SetColorNames(names []string) {
	raw, err := json.Marshal(names)
	if err != nil {
		return
	}
	p.Colors = datatypes.JSON(raw)
}

// TagNames decodes the tags column. Malformed data yields nil.
func (p *Product) TagNames() []string {
	if len(p.Tags) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(p.Tags, &out); err != nil {
		return nil
	}
	return out
}
