// Package handlers binds the HTTP layer to the services: parse the request,
// pull the identity claim, call the service, write its result.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tduyile04/document-management-api/internal/auth"
	"github.com/tduyile04/document-management-api/internal/models"
	"github.com/tduyile04/document-management-api/internal/service"
)

func respond(ctx *gin.Context, res service.Result) {
	ctx.JSON(res.Status, res.Body)
}

func identity(ctx *gin.Context) (models.Identity, bool) {
	who, ok := auth.CurrentIdentity(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"message": "Failed to authenticate token"})
	}
	return who, ok
}

func idParam(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Id must be a number"})
		return 0, false
	}
	return uint(id), true
}

// pageParams reads limit and offset from the query string. Absent or
// non-numeric values become zero and are normalized downstream.
func pageParams(ctx *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(ctx.Query("limit"))
	offset, _ = strconv.Atoi(ctx.Query("offset"))
	return limit, offset
}
