package lookuplog

import (
	"time"
)

const (
	OutcomeSuccess = "success"
)

type LookupRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	LookupID    string    `json:"lookup_id" gorm:"column:lookup_id;uniqueIndex:idx_lookup_id"`
	City        string    `json:"city" gorm:"index:idx_city;index:idx_city_created_at"`
	Latitude    *float64  `json:"latitude,omitempty" gorm:"column:latitude"`
	Longitude   *float64  `json:"longitude,omitempty" gorm:"column:longitude"`
	Temperature *float64  `json:"temperature,omitempty" gorm:"column:temperature"`
	Outcome     string    `json:"outcome" gorm:"column:outcome"`
	Detail      string    `json:"detail" gorm:"column:detail"`
	DurationMs  int64     `json:"duration_ms" gorm:"column:duration_ms"`
	CreatedAt   time.Time `json:"created_at" gorm:"index:idx_created_at;index:idx_city_created_at"`
}

func (LookupRecord) TableName() string {
	return "lookup_records"
}
