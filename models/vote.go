package models

import "gorm.io/gorm"

// Vote stances.
const (
	StanceUp   = "up"
	StanceDown = "down"
)

// Vote is one ledger entry: a voter's stance on an article together with the
// mandatory comment. Rows are append-only — nothing in the application updates
// or deletes them, so article counters can always be rebuilt by replaying the
// ledger.
type Vote struct {
	gorm.Model
	NewsID    uint   `gorm:"not null;index" json:"news_id"`
	VoterName string `gorm:"not null" json:"name"`
	Stance    string `gorm:"not null" json:"stance"`
	Comment   string `gorm:"type:text;not null" json:"comment"`
	ImageURL  string `json:"imageUrl"`
}
