package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rangeops/backoffice-go/internal/domain/bulletin"
	"github.com/rangeops/backoffice-go/internal/handler/http/middleware"
	"github.com/rangeops/backoffice-go/internal/handler/http/response"
)

type BulletinHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type BulletinHandlerImpl struct {
	bulletinService bulletin.BulletinService
}

func NewBulletinHandler(bulletinService bulletin.BulletinService) BulletinHandler {
	return &BulletinHandlerImpl{bulletinService: bulletinService}
}

// Create implements BulletinHandler.
func (h *BulletinHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req bulletin.CreatePostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create post decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.AuthorID = middleware.UserID(r)

	post, err := h.bulletinService.CreatePost(r.Context(), req)
	if err != nil {
		slog.Error("Create post service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Post created", post)
}

// Get implements BulletinHandler.
func (h *BulletinHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	post, err := h.bulletinService.GetPost(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, post)
}

// List implements BulletinHandler.
func (h *BulletinHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	posts, total, err := h.bulletinService.ListPosts(r.Context(), limit, offset)
	if err != nil {
		slog.Error("List posts service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, posts, &response.Meta{
		Limit:      limit,
		TotalItems: total,
	})
}

// Update implements BulletinHandler.
func (h *BulletinHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req bulletin.UpdatePostRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update post decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")
	req.AuthorID = middleware.UserID(r)

	post, err := h.bulletinService.UpdatePost(r.Context(), req)
	if err != nil {
		slog.Error("Update post service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, post)
}

// Delete implements BulletinHandler.
func (h *BulletinHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.bulletinService.DeletePost(
		r.Context(),
		chi.URLParam(r, "id"),
		middleware.UserID(r),
		middleware.IsAdmin(r),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Post deleted", nil)
}
