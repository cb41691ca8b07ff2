package handler

import (
	"net/http"

	"github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/core"
)

type Me struct {
	profileSvc *core.ProfileService
}

func NewMe(profileSvc *core.ProfileService) *Me {
	return &Me{profileSvc: profileSvc}
}

// Get returns the signed-in user's display view and role.
func (h *Me) Get(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	role, err := h.profileSvc.RoleOf(r.Context(), user.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to resolve role")
		return
	}

	response.WriteJSON(w, http.StatusOK, map[string]any{
		"id":   user.ID,
		"user": user.View(),
		"role": role,
	})
}
