package handler

import (
	"net/http"

	"github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/api/request"
	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/core"
	"github.com/dayeon/seoulite/internal/model"
)

type DM struct {
	dmSvc *core.DMService
}

func NewDM(dmSvc *core.DMService) *DM {
	return &DM{dmSvc: dmSvc}
}

// GetThread returns the caller's private thread and messages.
func (h *DM) GetThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	thread, messages, err := h.dmSvc.GetThread(r.Context(), user.ID)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to load thread")
		return
	}
	if messages == nil {
		messages = []model.DMMessage{}
	}
	response.WriteJSON(w, http.StatusOK, map[string]any{"thread": thread, "messages": messages})
}

type openThreadRequest struct {
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// OpenThread starts the caller's thread with a first message.
func (h *DM) OpenThread(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req openThreadRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	thread, err := h.dmSvc.OpenThread(r.Context(), user.ID, req.Message)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to open thread")
		return
	}
	response.WriteJSON(w, http.StatusCreated, thread)
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=2000"`
}

// SendMessage appends to the caller's existing thread.
func (h *DM) SendMessage(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req sendMessageRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	msg, err := h.dmSvc.SendMessage(r.Context(), user.ID, req.Body)
	if err != nil {
		response.WriteError(w, http.StatusBadRequest, "no thread open")
		return
	}
	response.WriteJSON(w, http.StatusCreated, msg)
}
