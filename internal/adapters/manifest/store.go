// Package manifest reads and writes the TOML manifest of pinned mods.
package manifest

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"github.com/pelletier/go-toml/v2/unstable"
	modfs "go.trai.ch/modpack/internal/adapters/fs"
	"go.trai.ch/modpack/internal/core/domain"
	"go.trai.ch/modpack/internal/core/ports"
	"go.trai.ch/zerr"
)

const modsTable = "mods"

var _ ports.ManifestStore = (*Store)(nil)

// fileDTO is the decoded manifest document.
type fileDTO struct {
	Details detailsDTO        `toml:"details"`
	Mods    map[string]string `toml:"mods"`
}

type detailsDTO struct {
	GameVersion string `toml:"gameVersion"`
	// PlatformVersion is accepted as an alias of GameVersion on read.
	PlatformVersion string `toml:"platformVersion,omitempty"`
	Loader          string `toml:"loader"`
}

// Store implements ports.ManifestStore on TOML files.
type Store struct{}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Exists reports whether a manifest file is present at path.
func (s *Store) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the manifest at path. [mods] entries keep their declared order.
func (s *Store) Load(path string) (*domain.Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.Tagged(domain.ErrManifestNotFound), "path", path)
		}
		return nil, zerr.With(domain.WrapKind(domain.ErrIOFailure, err), "path", path)
	}

	m, err := Decode(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return m, nil
}

// Save writes the manifest to path atomically and marks it clean.
func (s *Store) Save(path string, m *domain.Manifest) error {
	data, err := Encode(m)
	if err != nil {
		return zerr.With(err, "path", path)
	}
	if err := modfs.WriteBytesAtomic(path, data); err != nil {
		return err
	}
	m.MarkClean()
	return nil
}

// Decode parses a manifest document.
func Decode(data []byte) (*domain.Manifest, error) {
	var file fileDTO
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, domain.WrapKind(domain.ErrManifestParseFailed, err)
	}

	order, err := modsKeyOrder(data)
	if err != nil {
		return nil, domain.WrapKind(domain.ErrManifestParseFailed, err)
	}

	// Keys the order scan could not attribute (e.g. dotted keys) follow in sorted order.
	seen := make(map[string]struct{}, len(order))
	for _, k := range order {
		seen[k] = struct{}{}
	}
	var rest []string
	for k := range file.Mods {
		if _, ok := seen[k]; !ok {
			rest = append(rest, k)
		}
	}
	slices.Sort(rest)
	order = append(order, rest...)

	entries := make([]domain.ManifestEntry, 0, len(order))
	for _, slug := range order {
		version, ok := file.Mods[slug]
		if !ok {
			continue
		}
		entries = append(entries, domain.ManifestEntry{Slug: slug, VersionID: version})
	}

	details := domain.Details{
		PlatformVersion: file.Details.GameVersion,
		Loader:          file.Details.Loader,
	}
	if details.PlatformVersion == "" {
		details.PlatformVersion = file.Details.PlatformVersion
	}

	return domain.NewManifestFromEntries(details, entries), nil
}

// modsKeyOrder returns the keys of the [mods] table in document order.
func modsKeyOrder(data []byte) ([]string, error) {
	var (
		p       unstable.Parser
		inMods  bool
		ordered []string
	)
	p.Reset(data)

	for p.NextExpression() {
		e := p.Expression()
		switch e.Kind {
		case unstable.Table, unstable.ArrayTable:
			inMods = singleKey(e) == modsTable
		case unstable.KeyValue:
			if !inMods {
				continue
			}
			if key := singleKey(e); key != "" {
				ordered = append(ordered, key)
			}
		}
	}
	if err := p.Error(); err != nil {
		return nil, err
	}
	return ordered, nil
}

// singleKey returns the key of a table header or key/value when it is not dotted.
func singleKey(n *unstable.Node) string {
	it := n.Key()
	if !it.Next() {
		return ""
	}
	key := string(it.Node().Data)
	if it.Next() {
		return ""
	}
	return key
}

// Encode renders the manifest: [details] first, then [mods] in entry order.
func Encode(m *domain.Manifest) ([]byte, error) {
	header, err := toml.Marshal(struct {
		Details detailsDTO `toml:"details"`
	}{
		Details: detailsDTO{GameVersion: m.Details.PlatformVersion, Loader: m.Details.Loader},
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode manifest")
	}

	var buf bytes.Buffer
	buf.Write(header)
	buf.WriteString("\n[" + modsTable + "]\n")
	for _, e := range m.Entries() {
		// Marshalling one entry at a time keeps declared order; maps are emitted sorted.
		line, err := toml.Marshal(map[string]string{e.Slug: e.VersionID})
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to encode manifest"), "slug", e.Slug)
		}
		buf.Write(line)
	}
	return buf.Bytes(), nil
}
