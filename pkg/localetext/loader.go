package localetext

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-datefield/pkg/calendar"
)

// LoadFS walks the provided filesystem and parses every JSON/YAML catalog it
// finds. Duplicate locale names across files are an error. A nil filesystem
// yields an empty set.
func LoadFS(fsys fs.FS) (*Set, error) {
	set := &Set{catalogs: make(map[string]*Catalog)}
	if fsys == nil {
		return set, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isCatalogFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("localetext: read %s: %w", path, err)
		}

		catalog, err := Load(data, path)
		if err != nil {
			return err
		}
		key := normalizeLocale(catalog.locale)
		if _, exists := set.catalogs[key]; exists {
			return fmt.Errorf("localetext: duplicate locale %q (file %s)", key, path)
		}
		set.catalogs[key] = catalog
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}

// Load parses a single catalog document. The source string only decorates
// error messages.
func Load(data []byte, source string) (*Catalog, error) {
	doc, err := parseDocument(data, source)
	if err != nil {
		return nil, err
	}

	locale := strings.TrimSpace(doc.Locale)
	if locale == "" {
		return nil, fmt.Errorf("localetext: file %s has no locale name", source)
	}

	catalog := &Catalog{
		locale:  locale,
		entries: make(map[calendar.SectionType]entry, len(doc.Placeholders)),
	}
	for key, raw := range doc.Placeholders {
		sectionType := calendar.SectionType(strings.TrimSpace(key))
		if !sectionType.Valid() {
			return nil, fmt.Errorf("localetext: file %s names unknown section type %q", source, key)
		}
		e := entry{
			Letter: strings.TrimSpace(raw.Letter),
			Digit:  strings.TrimSpace(raw.Digit),
			Repeat: raw.Repeat,
		}
		if e.Letter == "" && e.Digit == "" {
			return nil, fmt.Errorf("localetext: file %s defines an empty placeholder for %q", source, key)
		}
		catalog.entries[sectionType] = e
	}
	return catalog, nil
}

// Builtin loads one of the embedded catalogs by locale name.
func Builtin(locale string) (*Catalog, error) {
	set, err := LoadFS(EmbeddedLocales())
	if err != nil {
		return nil, err
	}
	catalog, ok := set.Catalog(locale)
	if !ok {
		return nil, fmt.Errorf("localetext: no embedded catalog for locale %q", locale)
	}
	return catalog, nil
}

type documentFile struct {
	Locale       string                    `json:"locale" yaml:"locale"`
	Placeholders map[string]placeholderDoc `json:"placeholders" yaml:"placeholders"`
}

type placeholderDoc struct {
	Letter string `json:"letter" yaml:"letter"`
	Digit  string `json:"digit" yaml:"digit"`
	Repeat bool   `json:"repeat" yaml:"repeat"`
}

func parseDocument(data []byte, source string) (documentFile, error) {
	var doc documentFile
	if len(strings.TrimSpace(string(data))) == 0 {
		return documentFile{}, fmt.Errorf("localetext: file %s is empty", source)
	}

	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	return documentFile{}, fmt.Errorf("localetext: parse %s: invalid JSON or YAML", source)
}

func isCatalogFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}
