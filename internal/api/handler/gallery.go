package handler

import (
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/core"
	"github.com/dayeon/seoulite/internal/storage"
)

// maxImageBytes bounds gallery uploads at 10 MiB.
const maxImageBytes = 10 << 20

type Gallery struct {
	gallerySvc *core.GalleryService
	profileSvc *core.ProfileService
	uploader   *storage.Uploader
}

func NewGallery(gallerySvc *core.GalleryService, profileSvc *core.ProfileService, uploader *storage.Uploader) *Gallery {
	return &Gallery{gallerySvc: gallerySvc, profileSvc: profileSvc, uploader: uploader}
}

// List returns the curated gallery, public.
func (h *Gallery) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.gallerySvc.List(r.Context())
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to load gallery")
		return
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

// Upload accepts a multipart form with a title and an image file, stores
// the image and records the item. Mods only.
func (h *Gallery) Upload(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	role, err := h.profileSvc.RoleOf(r.Context(), user.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to resolve role")
		return
	}
	if !role.CanUploadGallery() {
		response.WriteError(w, http.StatusForbidden, "moderator access required")
		return
	}

	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		response.WriteError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	title := strings.TrimSpace(r.FormValue("title"))
	if title == "" || len(title) > 120 {
		response.WriteError(w, http.StatusBadRequest, "title must be 1-120 characters")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "missing image file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		response.WriteError(w, http.StatusBadRequest, "file must be an image")
		return
	}

	key := "gallery/" + uuid.New().String() + strings.ToLower(path.Ext(header.Filename))
	imageURL, err := h.uploader.UploadImage(r.Context(), key, contentType, file)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to store image")
		return
	}

	item, err := h.gallerySvc.Create(r.Context(), title, imageURL, user.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to create gallery item")
		return
	}
	response.WriteJSON(w, http.StatusCreated, item)
}
