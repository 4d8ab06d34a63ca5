package model

import (
	"time"
)

type MemeTemplate struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_slug" json:"slug"`
	ImageURL  string    `gorm:"type:varchar(255);not null" json:"image_url"`
	TextSlots string    `gorm:"type:varchar(500);not null" json:"text_slots"` // JSON 数组，如 ["Top text","Bottom text"]
	CreatedAt time.Time `json:"created_at"`
}

func (MemeTemplate) TableName() string {
	return "meme_templates"
}
