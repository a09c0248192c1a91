package style_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/ui/style"
)

func TestMark(t *testing.T) {
	tests := []struct {
		state domain.EntryState
		icon  string
	}{
		{domain.StateMaterialized, style.Check},
		{domain.StateModified, style.Tilde},
		{domain.StatePinned, style.Circle},
		{domain.StateStale, style.Cross},
		{domain.StateUntracked, style.Warning},
		{domain.EntryState("unknown"), style.Dot},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			icon, color := style.Mark(tt.state)
			assert.Equal(t, tt.icon, icon)
			assert.NotEmpty(t, color)
		})
	}
}
