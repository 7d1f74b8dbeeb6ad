package services

import (
	"errors"

	"checkitoff/apperrors"
	"checkitoff/global"
	"checkitoff/models"

	"gorm.io/gorm"
)

// VoteRequest carries one vote submission from the transport layer.
type VoteRequest struct {
	NewsID    uint   `json:"news_id"`
	VoterName string `json:"name"`
	Stance    string `json:"stance"`
	Comment   string `json:"comment"`
	ImageURL  string `json:"imageUrl"`
}

func (r VoteRequest) validate() error {
	if r.NewsID == 0 {
		return apperrors.Validation("news_id", "news_id is required")
	}
	if r.VoterName == "" {
		return apperrors.Validation("name", "name is required")
	}
	if r.Comment == "" {
		return apperrors.Validation("comment", "comment is required")
	}
	if r.Stance != models.StanceUp && r.Stance != models.StanceDown {
		return apperrors.Validation("stance", "stance must be \"up\" or \"down\"")
	}
	return nil
}

// RecordVote appends a ledger entry and refolds the article's counters as one
// atomic unit. The news row is locked for the duration of the transaction, so
// concurrent votes on the same article serialize and every append is
// reflected in the final tally; votes on other articles are unaffected. On a
// store failure nothing is committed and the caller may retry the whole call.
func RecordVote(req VoteRequest, policy Policy) (*models.Vote, Tally, error) {
	if err := req.validate(); err != nil {
		return nil, Tally{}, err
	}

	vote := models.Vote{
		NewsID:    req.NewsID,
		VoterName: req.VoterName,
		Stance:    req.Stance,
		Comment:   req.Comment,
		ImageURL:  req.ImageURL,
	}

	var tally Tally
	err := global.Db.Transaction(func(tx *gorm.DB) error {
		var news models.News
		err := lockForUpdate(tx).
			Where("visible = ?", true).
			First(&news, req.NewsID).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("news not found")
			}
			return err
		}

		if err := tx.Create(&vote).Error; err != nil {
			return err
		}

		tally, err = Recompute(tx, req.NewsID, policy)
		return err
	})
	if err != nil {
		if apperrors.Is(err, apperrors.KindNotFound) {
			return nil, Tally{}, err
		}
		return nil, Tally{}, apperrors.Retryable("failed to record vote", err)
	}

	// Cache and event fan-out happen only after commit and never fail the
	// request; the database remains the source of truth.
	BumpVoteCache(req.NewsID, tally)
	PublishVoteEvent(&vote, tally)

	return &vote, tally, nil
}

// ListVotes returns ledger entries, optionally filtered to one article,
// newest first. All comment/vote listings share this ordering.
func ListVotes(newsID *uint) ([]models.Vote, error) {
	query := global.Db.Model(&models.Vote{})
	if newsID != nil {
		query = query.Where("news_id = ?", *newsID)
	}

	var votes []models.Vote
	if err := query.Order("created_at DESC, id DESC").Find(&votes).Error; err != nil {
		return nil, apperrors.Service("failed to list votes", err)
	}
	return votes, nil
}
