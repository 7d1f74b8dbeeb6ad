package controllers

import (
	"net/http"
	"strconv"

	"checkitoff/apperrors"
	"checkitoff/services"

	"github.com/gin-gonic/gin"
)

// RecordVote appends a vote with its comment to an article's ledger and
// returns the tally the article settled on.
func RecordVote(ctx *gin.Context) {
	var req services.VoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperrors.Validation("body", "invalid request body"))
		return
	}

	vote, tally, err := services.RecordVote(req, services.PolicyFromConfig())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Vote recorded successfully",
		"vote":    vote,
		"tally":   tally,
	})
}

// GetComments lists ledger entries newest first, optionally filtered by
// news_id.
func GetComments(ctx *gin.Context) {
	var newsID *uint
	if raw := ctx.Query("news_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			respondError(ctx, apperrors.Validation("news_id", "news_id must be a positive integer"))
			return
		}
		v := uint(id)
		newsID = &v
	}

	votes, err := services.ListVotes(newsID)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "count": len(votes), "comments": votes})
}
