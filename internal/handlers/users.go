package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tduyile04/document-management-api/internal/service"
)

type UserHandler struct {
	svc *service.UserService
}

func NewUserHandler(svc *service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) SignUp(ctx *gin.Context) {
	var in service.SignUpInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	respond(ctx, h.svc.SignUp(ctx.Request.Context(), in))
}

func (h *UserHandler) LogIn(ctx *gin.Context) {
	var in service.LogInInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	respond(ctx, h.svc.LogIn(ctx.Request.Context(), in))
}

func (h *UserHandler) List(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	limit, offset := pageParams(ctx)
	respond(ctx, h.svc.List(ctx.Request.Context(), who, limit, offset))
}

func (h *UserHandler) Get(ctx *gin.Context) {
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

func (h *UserHandler) Update(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	var in service.UpdateUserInput
	if err := ctx.ShouldBindJSON(&in); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	respond(ctx, h.svc.Update(ctx.Request.Context(), who, id, in))
}

func (h *UserHandler) Delete(ctx *gin.Context) {
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

func (h *UserHandler) Search(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	respond(ctx, h.svc.Search(ctx.Request.Context(), who, ctx.Query("q")))
}

func (h *UserHandler) Documents(ctx *gin.Context) {
	who, ok := identity(ctx)
	if !ok {
		return
	}
	id, ok := idParam(ctx)
	if !ok {
		return
	}
	respond(ctx, h.svc.DocumentsOf(ctx.Request.Context(), who, id))
}
