package services

import (
	"errors"

	"checkitoff/apperrors"
	"checkitoff/global"
	"checkitoff/models"

	"gorm.io/gorm"
)

// Tally is the result of folding an article's ledger.
type Tally struct {
	UpVotes   int64  `json:"upVotes"`
	DownVotes int64  `json:"downVotes"`
	Comments  int64  `json:"comments"`
	Status    string `json:"status"`
}

// FoldLedger replays every vote for the article and derives the tally. The
// fold is a pure function of the ledger rows: replaying the same rows always
// produces the same tally. With OnePerVoter set, only each voter's most
// recent stance is counted; the comment count still covers every entry.
func FoldLedger(tx *gorm.DB, newsID uint, policy Policy) (Tally, error) {
	var votes []models.Vote
	if err := tx.Where("news_id = ?", newsID).
		Order("created_at ASC, id ASC").
		Find(&votes).Error; err != nil {
		return Tally{}, err
	}

	var up, down int64
	if policy.OnePerVoter {
		latest := make(map[string]string, len(votes))
		for _, v := range votes {
			latest[v.VoterName] = v.Stance
		}
		for _, stance := range latest {
			if stance == models.StanceUp {
				up++
			} else {
				down++
			}
		}
	} else {
		for _, v := range votes {
			if v.Stance == models.StanceUp {
				up++
			} else {
				down++
			}
		}
	}

	return Tally{
		UpVotes:   up,
		DownVotes: down,
		Comments:  int64(len(votes)),
		Status:    policy.Status(up, down),
	}, nil
}

// Recompute folds the ledger and writes the derived counters back onto the
// news row. Must run inside the same transaction as any ledger append so
// readers never observe counters inconsistent with the ledger.
func Recompute(tx *gorm.DB, newsID uint, policy Policy) (Tally, error) {
	tally, err := FoldLedger(tx, newsID, policy)
	if err != nil {
		return Tally{}, err
	}

	err = tx.Model(&models.News{}).Where("id = ?", newsID).Updates(map[string]interface{}{
		"up_votes":       tally.UpVotes,
		"down_votes":     tally.DownVotes,
		"comments_count": tally.Comments,
		"status":         tally.Status,
	}).Error
	if err != nil {
		return Tally{}, err
	}
	return tally, nil
}

// RecomputeNews re-derives one article's counters in its own locked
// transaction. Used by the admin recount endpoint and safe to call any number
// of times.
func RecomputeNews(newsID uint, policy Policy) (Tally, error) {
	var tally Tally
	err := global.Db.Transaction(func(tx *gorm.DB) error {
		var news models.News
		if err := lockForUpdate(tx).First(&news, newsID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("news not found")
			}
			return err
		}
		var err error
		tally, err = Recompute(tx, newsID, policy)
		return err
	})
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return Tally{}, err
		}
		return Tally{}, apperrors.Retryable("failed to recompute counters", err)
	}
	return tally, nil
}
