package model

import (
	"time"
)

type Team struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	ShortCode string    `gorm:"type:varchar(10);not null;uniqueIndex:idx_short_code" json:"short_code"`
	Crest     string    `gorm:"type:varchar(255)" json:"crest"`
	CreatedAt time.Time `json:"created_at"`
}

func (Team) TableName() string {
	return "teams"
}
