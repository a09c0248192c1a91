package catalog

import (
	"time"

	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/zerr"
)

// legacyTimeLayout is the timestamp format of older catalog deployments.
const legacyTimeLayout = "1/2/06 03:04 PM"

type packageDTO struct {
	ID       string   `json:"id"`
	Slug     string   `json:"slug"`
	Title    string   `json:"title"`
	Versions []string `json:"versions"`
}

func (p packageDTO) toDomain() domain.PackageMetadata {
	return domain.PackageMetadata{
		ID:       p.ID,
		Slug:     p.Slug,
		Title:    p.Title,
		Versions: p.Versions,
	}
}

type versionDTO struct {
	ID            string    `json:"id"`
	ProjectID     string    `json:"project_id"`
	ModID         string    `json:"mod_id"`
	Name          string    `json:"name"`
	VersionNumber string    `json:"version_number"`
	DatePublished string    `json:"date_published"`
	GameVersions  []string  `json:"game_versions"`
	Loaders       []string  `json:"loaders"`
	Files         []fileDTO `json:"files"`
}

type fileDTO struct {
	Filename string            `json:"filename"`
	URL      string            `json:"url"`
	Hashes   map[string]string `json:"hashes"`
	Primary  bool              `json:"primary"`
}

func (v versionDTO) toDomain() (domain.VersionMetadata, error) {
	published, err := parseTimestamp(v.DatePublished)
	if err != nil {
		return domain.VersionMetadata{}, zerr.With(err, "version_id", v.ID)
	}

	packageID := v.ProjectID
	if packageID == "" {
		packageID = v.ModID
	}

	files := make([]domain.FileDescriptor, 0, len(v.Files))
	for _, f := range v.Files {
		files = append(files, domain.FileDescriptor{
			Filename: f.Filename,
			URL:      f.URL,
			Hashes:   f.Hashes,
			Primary:  f.Primary,
		})
	}

	return domain.VersionMetadata{
		ID:               v.ID,
		PackageID:        packageID,
		Name:             v.Name,
		VersionNumber:    v.VersionNumber,
		Published:        published,
		PlatformVersions: v.GameVersions,
		Loaders:          v.Loaders,
		Files:            files,
	}, nil
}

// parseTimestamp accepts RFC 3339 and the legacy layout, read as UTC.
// An absent timestamp is the zero time.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(legacyTimeLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, zerr.With(domain.WrapKind(domain.ErrCatalogParseFailed, err), "date_published", s)
	}
	return t, nil
}
