package core

import (
	"context"
	"fmt"

	"github.com/dayeon/seoulite/internal/model"
)

type GalleryService struct {
	db DB
}

func NewGalleryService(db DB) *GalleryService {
	return &GalleryService{db: db}
}

// List returns all gallery items, newest first.
func (s *GalleryService) List(ctx context.Context) ([]model.GalleryItem, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, title, image_url, created_by, created_at
		 FROM gallery_items ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("list gallery items: %w", err)
	}
	defer rows.Close()

	items := []model.GalleryItem{}
	for rows.Next() {
		var item model.GalleryItem
		if err := rows.Scan(&item.ID, &item.Title, &item.ImageURL, &item.CreatedBy, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gallery item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Create records a curated item pointing at an already-uploaded image.
func (s *GalleryService) Create(ctx context.Context, title, imageURL, createdBy string) (*model.GalleryItem, error) {
	var item model.GalleryItem
	err := s.db.QueryRow(ctx,
		`INSERT INTO gallery_items (title, image_url, created_by)
		 VALUES ($1, $2, $3)
		 RETURNING id, title, image_url, created_by, created_at`,
		title, imageURL, createdBy,
	).Scan(&item.ID, &item.Title, &item.ImageURL, &item.CreatedBy, &item.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create gallery item: %w", err)
	}
	return &item, nil
}
