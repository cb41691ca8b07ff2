package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/api/request"
	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/core"
)

type Board struct {
	boardSvc   *core.BoardService
	profileSvc *core.ProfileService
}

func NewBoard(boardSvc *core.BoardService, profileSvc *core.ProfileService) *Board {
	return &Board{boardSvc: boardSvc, profileSvc: profileSvc}
}

// List returns one feed page at the given offset.
func (h *Board) List(w http.ResponseWriter, r *http.Request) {
	offset := request.ParseOffset(r)

	page, err := h.boardSvc.ListPosts(r.Context(), offset, core.BoardPageSize)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to load posts")
		return
	}
	response.WriteJSON(w, http.StatusOK, page)
}

type createPostRequest struct {
	Title       string  `json:"title" validate:"required,min=6,max=120"`
	Body        string  `json:"body" validate:"required,min=20,max=2000"`
	LocationTag *string `json:"locationTag" validate:"omitempty,max=80"`
}

// Create posts a new question. Any signed-in user may post.
func (h *Board) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req createPostRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.boardSvc.CreatePost(r.Context(), user.ID, req.Title, req.Body, req.LocationTag)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	response.WriteJSON(w, http.StatusCreated, post)
}

// Get returns a single post with its replies.
func (h *Board) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	post, replies, err := h.boardSvc.GetPost(r.Context(), id)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to load post")
		return
	}
	if post == nil {
		response.WriteError(w, http.StatusNotFound, "post not found")
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"post": post, "replies": replies})
}

type createReplyRequest struct {
	Body string `json:"body" validate:"required,min=5,max=1500"`
}

// Reply adds an answer. Restricted to verified users and mods.
func (h *Board) Reply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	role, err := h.profileSvc.RoleOf(r.Context(), user.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to resolve role")
		return
	}
	if !role.CanReply() {
		response.WriteError(w, http.StatusForbidden, "replying requires a verified account")
		return
	}

	var req createReplyRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	reply, err := h.boardSvc.CreateReply(r.Context(), chi.URLParam(r, "id"), user.ID, req.Body)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to create reply")
		return
	}
	response.WriteJSON(w, http.StatusCreated, reply)
}

// MarkAnswered flips a post's status. Mods only.
func (h *Board) MarkAnswered(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	role, err := h.profileSvc.RoleOf(r.Context(), user.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to resolve role")
		return
	}
	if !role.CanModerate() {
		response.WriteError(w, http.StatusForbidden, "moderator access required")
		return
	}

	if err := h.boardSvc.MarkAnswered(r.Context(), chi.URLParam(r, "id")); err != nil {
		if errors.Is(err, core.ErrNotFound) {
			response.WriteError(w, http.StatusNotFound, "post not found")
			return
		}
		response.WriteError(w, http.StatusInternalServerError, "failed to update post")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
