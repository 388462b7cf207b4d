package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyOwned(t *testing.T) {
	tests := []struct {
		name    string
		id      Identity
		ownerID string
		want    bool
	}{
		{"owner may modify", Identity{UserID: "u1", Role: "Farmer"}, "u1", true},
		{"admin may modify anyone's", Identity{UserID: "a1", Role: "Admin"}, "u1", true},
		{"other farmer may not", Identity{UserID: "u2", Role: "Farmer"}, "u1", false},
		{"expert may not modify others'", Identity{UserID: "e1", Role: "Expert"}, "u1", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyOwned(tt.id, tt.ownerID))
		})
	}
}

func TestCanEditProfile(t *testing.T) {
	assert.True(t, CanEditProfile(Identity{UserID: "u1", Role: "Farmer"}, "u1"))
	assert.True(t, CanEditProfile(Identity{UserID: "a1", Role: "Admin"}, "u1"))
	assert.False(t, CanEditProfile(Identity{UserID: "u2", Role: "Expert"}, "u1"))
}

func TestIsAdmin(t *testing.T) {
	assert.True(t, IsAdmin(Identity{UserID: "a1", Role: "Admin"}))
	assert.False(t, IsAdmin(Identity{UserID: "u1", Role: "Farmer"}))
	assert.False(t, IsAdmin(Identity{UserID: "u1", Role: "admin"}))
}
