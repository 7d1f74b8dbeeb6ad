package models

import (
	"time"

	"gorm.io/gorm"
)

// Verification labels derived from the vote ledger.
const (
	StatusVerified   = "Verified"
	StatusFake       = "Fake"
	StatusUnverified = "Unverified"
)

// News is an article row. UpVotes, DownVotes, CommentsCount and Status are a
// materialized fold of the votes table and must never diverge from it; the
// aggregator is the only writer of those columns after creation.
type News struct {
	gorm.Model
	Title           string    `gorm:"not null" json:"title"`
	Description     string    `gorm:"type:text" json:"description"`
	FullDescription string    `gorm:"type:longtext" json:"fullDescription"`
	Author          string    `gorm:"not null" json:"author"`
	Image           string    `json:"image"`
	Date            time.Time `gorm:"index" json:"date"`
	UpVotes         int64     `gorm:"not null;default:0" json:"upVotes"`
	DownVotes       int64     `gorm:"not null;default:0" json:"downVotes"`
	CommentsCount   int64     `gorm:"not null;default:0" json:"comments"`
	Status          string    `gorm:"not null;default:Unverified" json:"status"`
	Visible         bool      `gorm:"not null;default:true" json:"visible"`
}

// NewsStats is the per-status breakdown returned alongside listings.
type NewsStats struct {
	Total      int64 `json:"total"`
	Verified   int64 `json:"verified"`
	Fake       int64 `json:"fake"`
	Unverified int64 `json:"unverified"`
}
