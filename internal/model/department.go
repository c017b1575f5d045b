package model

import "time"

type Department struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:150;uniqueIndex;not null" json:"name"`
	College   string    `gorm:"size:150" json:"college"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
