package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"delete", "Delete"},
		{"delete_forever", "DeleteForever"},
		{"account-circle", "AccountCircle"},
		{"3d_rotation", "ThreeDRotation"},
		{"4k", "FourK"},
		{"360", "Three60"},
		{"wifi", "Wifi"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, GoName(tt.raw), "GoName(%q)", tt.raw)
	}
}

func TestIconIdent(t *testing.T) {
	icon := Icon{Prefix: "zoom_out_map", Category: "maps", Size: 48}
	assert.Equal(t, "ZoomOutMap", icon.Ident())
}
