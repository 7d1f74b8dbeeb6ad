package services

import (
	"testing"
	"time"

	"checkitoff/global"
	"checkitoff/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points global.Db at a fresh in-memory SQLite store. A single
// connection keeps concurrent transactions serialized the way the MySQL row
// lock does in production.
func setupTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.News{}, &models.Vote{}, &models.User{}))

	global.Db = db
	global.RedisDB = nil
	global.RabbitChannel = nil

	t.Cleanup(func() {
		global.Db = nil
		_ = sqlDB.Close()
	})
}

func createTestNews(t *testing.T, title string) *models.News {
	t.Helper()
	date := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	news, err := CreateNews(NewsRequest{Title: title, Author: "Somsak P.", Date: &date})
	require.NoError(t, err)
	return news
}

func mustVote(t *testing.T, newsID uint, voter, stance string) Tally {
	t.Helper()
	_, tally, err := RecordVote(VoteRequest{
		NewsID:    newsID,
		VoterName: voter,
		Stance:    stance,
		Comment:   "looks " + stance,
	}, DefaultPolicy())
	require.NoError(t, err)
	return tally
}
