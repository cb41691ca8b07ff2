package handler

import (
	"net/http"

	"github.com/dayeon/seoulite/internal/api/middleware"
	"github.com/dayeon/seoulite/internal/api/request"
	"github.com/dayeon/seoulite/internal/api/response"
	"github.com/dayeon/seoulite/internal/core"
)

type Report struct {
	reportSvc *core.ReportService
}

func NewReport(reportSvc *core.ReportService) *Report {
	return &Report{reportSvc: reportSvc}
}

type createReportRequest struct {
	ContextType string `json:"contextType" validate:"required,oneof=board dm gallery"`
	ContextID   string `json:"contextId" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required,min=4,max=500"`
}

// Create files a content report.
func (h *Report) Create(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUser(r.Context())

	var req createReportRequest
	if err := request.Decode(r, &req); err != nil {
		response.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.reportSvc.Create(r.Context(), user.ID, req.ContextType, req.ContextID, req.Reason)
	if err != nil {
		response.WriteError(w, http.StatusInternalServerError, "failed to create report")
		return
	}
	response.WriteJSON(w, http.StatusCreated, report)
}
