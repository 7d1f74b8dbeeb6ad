package controllers

import (
	"net/http"

	"checkitoff/apperrors"
	"checkitoff/services"

	"github.com/gin-gonic/gin"
)

func Register(ctx *gin.Context) {
	var req services.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperrors.Validation("body", "invalid request body"))
		return
	}

	user, err := services.Register(req, services.PolicyFromConfig())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User registered successfully",
		"user":    user,
	})
}

func Login(ctx *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondError(ctx, apperrors.Validation("body", "invalid request body"))
		return
	}

	user, err := services.Authenticate(req.Email, req.Password, services.PolicyFromConfig())
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"user":    user,
	})
}
