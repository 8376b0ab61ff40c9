package types

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Notebook is a submitted gallery entry. A row is written exactly once by the
// submission pipeline and never mutated afterwards.
//
// Tags holds the merged set of user-supplied and suggested tags with exact
// case-sensitive dedup. OGMetadata is the raw scrape result kept for audit.
type Notebook struct {
	ID                  uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID              *uint          `gorm:"column:user_id;index" json:"user_id"`
	Name                string         `gorm:"column:name;not null" json:"name"`
	Description         string         `gorm:"column:description;not null" json:"description"`
	Link                string         `gorm:"column:link;not null" json:"link"`
	Tags                datatypes.JSON `gorm:"column:tags;not null" json:"tags"`
	OGImage             *string        `gorm:"column:og_image" json:"og_image,omitempty"`
	OGMetadata          datatypes.JSON `gorm:"column:og_metadata" json:"og_metadata,omitempty"`
	EnhancedDescription *string        `gorm:"column:enhanced_description" json:"enhanced_description,omitempty"`
	SuggestedTags       datatypes.JSON `gorm:"column:suggested_tags" json:"suggested_tags,omitempty"`
	CreatedAt           time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"not null" json:"updated_at"`
}

func (Notebook) TableName() string {
	return "notebook"
}

// TagList decodes the stored tag column. A missing or malformed column reads
// as no tags.
func (n *Notebook) TagList() []string {
	if len(n.Tags) == 0 {
		return nil
	}
	var tags []string
	if err := json.Unmarshal(n.Tags, &tags); err != nil {
		return nil
	}
	return tags
}
