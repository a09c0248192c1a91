package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/modpack/internal/core/domain"
)

func TestParseSpecifier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected domain.Specifier
		wantErr  bool
	}{
		{name: "bare slug", input: "sodium", expected: domain.Specifier{Mod: "sodium"}},
		{name: "pinned", input: "sodium:AANobbMI", expected: domain.Specifier{Mod: "sodium", VersionID: "AANobbMI"}},
		{name: "too many colons", input: "a:b:c", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "empty version", input: "sodium:", wantErr: true},
		{name: "empty mod", input: ":v1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseSpecifier(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidSpecifier)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.expected.VersionID != "", got.Pinned())
		})
	}
}
