package core

// Services aggregates all content services for handler wiring.
type Services struct {
	Profile *ProfileService
	Board   *BoardService
	DM      *DMService
	Gallery *GalleryService
	Tip     *TipService
	Report  *ReportService
}

func NewServices(db DB) *Services {
	return &Services{
		Profile: NewProfileService(db),
		Board:   NewBoardService(db),
		DM:      NewDMService(db),
		Gallery: NewGalleryService(db),
		Tip:     NewTipService(db),
		Report:  NewReportService(db),
	}
}
