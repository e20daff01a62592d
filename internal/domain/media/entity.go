package media

import (
	"time"

	"gorm.io/gorm"
)

// Media is a gallery entry: a stored blob plus its descriptive metadata.
type Media struct {
	ID         int64     `gorm:"column:id;primaryKey" json:"id"`
	Filename   string    `gorm:"column:filename;not null" json:"filename"`
	URL        string    `gorm:"column:url;not null" json:"url"`
	StorageKey string    `gorm:"column:storage_key" json:"-"`
	Alt        *string   `gorm:"column:alt" json:"alt"`
	Tags       []string  `gorm:"column:tags;type:text;serializer:json" json:"tags"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime;index" json:"createdAt"`
}

func (Media) TableName() string { return "media" }

func (m *Media) AfterFind(tx *gorm.DB) error {
	if m.Tags == nil {
		m.Tags = []string{}
	}
	return nil
}
