package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tduyile04/document-management-api/internal/service"
)

type DocumentHandler struct {
	svc *service.DocumentService
}

func NewDocumentHandler(svc *service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) Create(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	var in service.DocumentInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	respond(ctx, h.svc.Create(ctx.Request.Context(), who, in))
}

func (h *DocumentHandler) List(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)
	respond(ctx, h.svc.List(ctx.Request.Context(), who, limit, offset))
}

func (h *DocumentHandler) Get(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	respond(ctx, h.svc.Get(ctx.Request.Context(), who, id))
}

func (h *DocumentHandler) Update(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var in service.DocumentInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	respond(ctx, h.svc.Update(ctx.Request.Context(), who, id, in))
}

func (h *DocumentHandler) Delete(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	respond(ctx, h.svc.Delete(ctx.Request.Context(), who, id))
}

func (h *DocumentHandler) Search(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	respond(ctx, h.svc.Search(ctx.Request.Context(), who, ctx.Query("q")))
}

func (h *DocumentHandler) OwnedBy(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	respond(ctx, h.svc.OwnedBy(ctx.Request.Context(), who, id))
}
