package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleGates(t *testing.T) {
	tests := []struct {
		role       Role
		canReply   bool
		canGallery bool
		canMod     bool
	}{
		{RoleUser, false, false, false},
		{RoleVerified, true, false, false},
		{RoleMod, true, true, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.canReply, tt.role.CanReply(), "role=%s", tt.role)
		assert.Equal(t, tt.canGallery, tt.role.CanUploadGallery(), "role=%s", tt.role)
		assert.Equal(t, tt.canMod, tt.role.CanModerate(), "role=%s", tt.role)
	}
}
