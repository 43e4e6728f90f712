package models

import (
	"time"

	"gorm.io/gorm/clause"
)

// SystemConfig is a runtime setting editable from the dashboard.
type SystemConfig struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Key       string    `gorm:"column:key;uniqueIndex;size:100;not null" json:"key"`
	Value     string    `gorm:"type:text" json:"value"`
	Type      string    `gorm:"size:20;default:string" json:"type"`      // string, int, bool
	Group     string    `gorm:"column:group;size:50;index" json:"group"` // email, notification, system
	Label     string    `gorm:"size:200" json:"label"`
	Secret    bool      `gorm:"default:false" json:"secret"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (SystemConfig) TableName() string { return "system_configs" }

// ConfigKey matches the row whose key equals key. "key" and "group" are
// reserved words, so the column is quoted by the dialect.
func ConfigKey(key string) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "key"}, Value: key}
}

// ConfigGroup matches every row in group.
func ConfigGroup(group string) clause.Expression {
	return clause.Eq{Column: clause.Column{Name: "group"}, Value: group}
}
