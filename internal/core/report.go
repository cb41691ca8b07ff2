package core

import (
	"context"
	"fmt"

	"github.com/dayeon/seoulite/internal/model"
)

type ReportService struct {
	db DB
}

func NewReportService(db DB) *ReportService {
	return &ReportService{db: db}
}

// Create files a content report for moderator review.
func (s *ReportService) Create(ctx context.Context, reporterID, contextType, contextID, reason string) (*model.Report, error) {
	var rep model.Report
	err := s.db.QueryRow(ctx,
		`INSERT INTO reports (reporter_id, context_type, context_id, reason)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, reporter_id, context_type, context_id, reason, created_at`,
		reporterID, contextType, contextID, reason,
	).Scan(&rep.ID, &rep.ReporterID, &rep.ContextType, &rep.ContextID, &rep.Reason, &rep.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return &rep, nil
}
