package models

import "time"

// Entry is a single row of the key-value table
type Entry struct {
	Key       string    `gorm:"primarykey" json:"key"`
	Value     string    `gorm:"not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName keeps the table name stable regardless of gorm's pluralization
func (Entry) TableName() string {
	return "kv_entries"
}
