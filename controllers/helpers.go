package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/Abdouxone/KFP/common/errors"
)

// respondError maps a service error straight onto the HTTP response.
func respondError(ctx *gin.Context, appErr *apperrors.Error) {
	ctx.JSON(appErr.Code, gin.H{"error": appErr.Message})
}

// parsePaginationParams extracts and validates pagination parameters.
func parsePaginationParams(ctx *gin.Context) (int, int) {
	const MaxLimit = 100
	const DefaultPage = 1
	const DefaultLimit = 10

	page := ctx.DefaultQuery("page", "1")
	limit := ctx.DefaultQuery("limit", "10")

	pageInt := DefaultPage
	limitInt := DefaultLimit

	if p, err := strconv.Atoi(page); err == nil && p > 0 {
		pageInt = p
	}

	if l, err := strconv.Atoi(limit); err == nil && l > 0 {
		limitInt = l
		if limitInt > MaxLimit {
			limitInt = MaxLimit
		}
	}

	return pageInt, limitInt
}
