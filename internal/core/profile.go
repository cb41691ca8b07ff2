package core

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Role is a site-level permission tier, stored per provider user ID.
type Role string

const (
	RoleUser     Role = "user"
	RoleVerified Role = "verified"
	RoleMod      Role = "mod"
)

// CanReply reports whether a role may answer board posts.
func (r Role) CanReply() bool {
	return r == RoleVerified || r == RoleMod
}

// CanUploadGallery reports whether a role may curate the photo gallery.
func (r Role) CanUploadGallery() bool {
	return r == RoleMod
}

// CanModerate reports whether a role may change board post status.
func (r Role) CanModerate() bool {
	return r == RoleMod
}

type ProfileService struct {
	db DB
}

func NewProfileService(db DB) *ProfileService {
	return &ProfileService{db: db}
}

// RoleOf returns the stored role for a user. Users without a profile row
// are plain users.
func (s *ProfileService) RoleOf(ctx context.Context, userID string) (Role, error) {
	var role string
	err := s.db.QueryRow(ctx,
		`SELECT role FROM profiles WHERE user_id = $1`, userID,
	).Scan(&role)
	if err == pgx.ErrNoRows {
		return RoleUser, nil
	}
	if err != nil {
		return RoleUser, fmt.Errorf("get role for %s: %w", userID, err)
	}

	switch Role(role) {
	case RoleVerified, RoleMod:
		return Role(role), nil
	default:
		return RoleUser, nil
	}
}
