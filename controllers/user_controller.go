package controllers

import (
	"net/http"

	"checkitoff/apperrors"
	"checkitoff/services"

	"github.com/gin-gonic/gin"
)

// GetUserByEmail returns the public identity of one account.
func GetUserByEmail(ctx *gin.Context) {
	user, err := services.GetUserByEmail(ctx.Param("email"))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"name":    user.Name,
			"surname": user.Surname,
			"access":  user.Access,
		},
	})
}

func UpdateUserRole(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}

	var req struct {
		Role string `json:"role"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperrors.Validation("role", "role is required"))
		return
	}

	user, err := services.UpdateUserRole(id, req.Role)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": "Role updated to " + user.Role})
}

func SetUserVisibility(ctx *gin.Context) {
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

	if err := services.SetUserVisibility(id, *req.Visible); err != nil {
		respondError(ctx, err)
		return
	}

	message := "User hidden successfully"
	if *req.Visible {
		message = "User shown successfully"
	}
	ctx.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}
