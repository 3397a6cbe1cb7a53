package service

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/compozy/autotag/internal/domain"
	"github.com/pelletier/go-toml/v2"
)

// fieldPaths holds the dotted key paths of the values a format stores.
type fieldPaths struct {
	name, version, enabled []string
}

var formatFields = map[domain.ManifestFormat]fieldPaths{
	domain.FormatCargo: {
		name:    []string{"package", "name"},
		version: []string{"package", "version"},
		enabled: []string{"package", "metadata", "auto-tag", "enabled"},
	},
	domain.FormatNpm: {
		name:    []string{"name"},
		version: []string{"version"},
		enabled: []string{"autoTag", "enabled"},
	},
	domain.FormatPoetry: {
		name:    []string{"tool", "poetry", "name"},
		version: []string{"tool", "poetry", "version"},
		enabled: []string{"tool", "auto-tag", "enabled"},
	},
}

// decodeDocument decodes a manifest into a generic tree.
func decodeDocument(format domain.ManifestFormat, data []byte) (map[string]any, error) {
	var doc map[string]any
	var err error
	switch format {
	case domain.FormatCargo, domain.FormatPoetry:
		err = toml.Unmarshal(data, &doc)
	case domain.FormatNpm:
		err = json.Unmarshal(data, &doc)
	default:
		return nil, fmt.Errorf("unsupported manifest format %q", format)
	}
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// lookup walks path through nested tables. A missing key, or an
// intermediate value that is not a table, yields nil.
func lookup(doc map[string]any, path []string) any {
	var cur any = doc
	for _, key := range path {
		table, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		cur = table[key]
	}
	return cur
}

// buildManifest validates the extracted values. Name and version are only
// required once tagging is enabled.
func buildManifest(loc domain.ManifestLocation, doc map[string]any) (*domain.Manifest, error) {
	paths := formatFields[loc.Format]
	m := &domain.Manifest{Format: loc.Format, Path: loc.Path}
	switch enabled := lookup(doc, paths.enabled).(type) {
	case nil:
	case bool:
		m.TaggingEnabled = enabled
	default:
		return nil, fmt.Errorf("%w: %s: %s must be a boolean, got %T",
			domain.ErrManifestMalformed, loc.Path, strings.Join(paths.enabled, "."), enabled)
	}
	m.Name, _ = lookup(doc, paths.name).(string)
	m.Version, _ = lookup(doc, paths.version).(string)
	if !m.TaggingEnabled {
		return m, nil
	}
	if m.Name == "" {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrMissingField, loc.Path, strings.Join(paths.name, "."))
	}
	if m.Version == "" {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrMissingField, loc.Path, strings.Join(paths.version, "."))
	}
	return m, nil
}
