package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Specifier is a user-supplied mod reference: a slug or id, optionally pinned as "slug:version".
type Specifier struct {
	Mod       string
	VersionID string
}

// Pinned reports whether the specifier names an explicit version.
func (s Specifier) Pinned() bool {
	return s.VersionID != ""
}

// ParseSpecifier parses "slug" or "slug:version".
func ParseSpecifier(raw string) (Specifier, error) {
	parts := strings.Split(raw, ":")
	switch {
	case len(parts) > 2:
		return Specifier{}, zerr.With(zerr.With(Tagged(ErrInvalidSpecifier), "specifier", raw), "reason", "too many colons")
	case parts[0] == "":
		return Specifier{}, zerr.With(zerr.With(Tagged(ErrInvalidSpecifier), "specifier", raw), "reason", "empty mod")
	case len(parts) == 2 && parts[1] == "":
		return Specifier{}, zerr.With(zerr.With(Tagged(ErrInvalidSpecifier), "specifier", raw), "reason", "empty version")
	case len(parts) == 2:
		return Specifier{Mod: parts[0], VersionID: parts[1]}, nil
	default:
		return Specifier{Mod: parts[0]}, nil
	}
}
