package controllers

import (
	"net/http"
	"strconv"

	"checkitoff/apperrors"
	"checkitoff/services"

	"github.com/gin-gonic/gin"
)

func parseID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(ctx, apperrors.Validation("id", "id must be a positive integer"))
		return 0, false
	}
	return uint(id), true
}

// GetNewsList returns all visible articles, newest first, with the
// per-status stats block the frontend dashboard renders.
func GetNewsList(ctx *gin.Context) {
	news, stats, err := services.ListNews()
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"news": news, "stats": stats})
}

func GetNewsByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	news, err := services.GetNews(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, news)
}

func CreateNews(ctx *gin.Context) {
	var req services.NewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperrors.Validation("body", "invalid request body"))
		return
	}

	news, err := services.CreateNews(req)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "News added successfully", "data": news})
}

func SearchNews(ctx *gin.Context) {
	news, err := services.SearchNews(ctx.Query("q"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"news": news})
}

// RecountNews re-derives one article's counters from its ledger.
func RecountNews(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	tally, err := services.RecomputeNews(id, services.PolicyFromConfig())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "tally": tally})
}

func SetNewsVisibility(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req struct {
		Visible *bool `json:"visible" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperrors.Validation("visible", "visible is required"))
		return
	}

	news, err := services.SetNewsVisibility(id, *req.Visible)
	if err != nil {
		respondError(ctx, err)
		return
	}

	message := "News hidden successfully"
	if news.Visible {
		message = "News shown successfully"
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "visible": news.Visible, "message": message})
}

// GetTopNews returns the most-voted ranking from Redis.
func GetTopNews(ctx *gin.Context) {
	top, err := strconv.Atoi(ctx.DefaultQuery("top", "10"))
	if err != nil || top <= 0 {
		top = 10
	}

	list, err := services.TopNews(top)
	if err != nil {
		respondError(ctx, apperrors.Service("failed to load ranking", err))
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"list": list})
}
