package services

import (
	"testing"

	"checkitoff/apperrors"
	"checkitoff/global"
	"checkitoff/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name     string
		up, down int64
		want     string
	}{
		{"more up votes", 3, 1, models.StatusVerified},
		{"more down votes", 1, 3, models.StatusFake},
		{"tie", 2, 2, models.StatusUnverified},
		{"no votes", 0, 0, models.StatusUnverified},
		{"single up", 1, 0, models.StatusVerified},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.up, tt.down))
		})
	}
}

func TestStatusFlipsWithLedger(t *testing.T) {
	setupTestDB(t)
	news := createTestNews(t, "Dam collapse rumor")

	mustVote(t, news.ID, "alice", models.StanceUp)
	mustVote(t, news.ID, "bob", models.StanceUp)
	tally := mustVote(t, news.ID, "carol", models.StanceDown)
	assert.Equal(t, int64(2), tally.UpVotes)
	assert.Equal(t, int64(1), tally.DownVotes)
	assert.Equal(t, models.StatusVerified, tally.Status)

	mustVote(t, news.ID, "dave", models.StanceDown)
	tally = mustVote(t, news.ID, "erin", models.StanceDown)
	assert.Equal(t, int64(2), tally.UpVotes)
	assert.Equal(t, int64(3), tally.DownVotes)
	assert.Equal(t, models.StatusFake, tally.Status)

	tally = mustVote(t, news.ID, "frank", models.StanceUp)
	assert.Equal(t, models.StatusUnverified, tally.Status, "3-3 tie stays unverified")

	var stored models.News
	require.NoError(t, global.Db.First(&stored, news.ID).Error)
	assert.Equal(t, tally.Status, stored.Status)
	assert.Equal(t, tally.UpVotes, stored.UpVotes)
	assert.Equal(t, tally.DownVotes, stored.DownVotes)
	assert.Equal(t, int64(6), stored.CommentsCount)
}

func TestRecomputeIdempotent(t *testing.T) {
	setupTestDB(t)
	news := createTestNews(t, "Flood photos")

	mustVote(t, news.ID, "alice", models.StanceUp)
	mustVote(t, news.ID, "bob", models.StanceDown)

	first, err := RecomputeNews(news.ID, DefaultPolicy())
	require.NoError(t, err)
	second, err := RecomputeNews(news.ID, DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, models.StatusUnverified, second.Status)
}

func TestRecomputeMissingNews(t *testing.T) {
	setupTestDB(t)

	_, err := RecomputeNews(9999, DefaultPolicy())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindNotFound))
}

func TestStatusAlwaysMatchesLedgerFold(t *testing.T) {
	setupTestDB(t)
	news := createTestNews(t, "Election recount")

	voters := []struct {
		name   string
		stance string
	}{
		{"a", models.StanceUp}, {"b", models.StanceDown}, {"c", models.StanceUp},
		{"d", models.StanceUp}, {"e", models.StanceDown}, {"f", models.StanceUp},
	}
	for _, v := range voters {
		mustVote(t, news.ID, v.name, v.stance)

		var stored models.News
		require.NoError(t, global.Db.First(&stored, news.ID).Error)

		fold, err := FoldLedger(global.Db, news.ID, DefaultPolicy())
		require.NoError(t, err)
		assert.Equal(t, fold.UpVotes, stored.UpVotes)
		assert.Equal(t, fold.DownVotes, stored.DownVotes)
		assert.Equal(t, DeriveStatus(fold.UpVotes, fold.DownVotes), stored.Status)
	}
}

func TestFoldOnePerVoter(t *testing.T) {
	setupTestDB(t)
	news := createTestNews(t, "Celebrity statement")

	policy := DefaultPolicy()
	mustVote(t, news.ID, "alice", models.StanceUp)
	mustVote(t, news.ID, "alice", models.StanceUp)
	mustVote(t, news.ID, "alice", models.StanceDown)
	mustVote(t, news.ID, "bob", models.StanceUp)

	// Base fold counts every entry.
	base, err := FoldLedger(global.Db, news.ID, policy)
	require.NoError(t, err)
	assert.Equal(t, int64(3), base.UpVotes)
	assert.Equal(t, int64(1), base.DownVotes)

	// Deduped fold keeps each voter's latest stance; comments still count
	// every entry.
	policy.OnePerVoter = true
	deduped, err := FoldLedger(global.Db, news.ID, policy)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deduped.UpVotes, "bob's up vote")
	assert.Equal(t, int64(1), deduped.DownVotes, "alice's latest stance")
	assert.Equal(t, int64(4), deduped.Comments)
}
