package locales

import (
	"embed"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed *.yml
var tableFS embed.FS

// DefaultLocale is used when a requested locale matches no shipped table.
const DefaultLocale = "en"

// Table holds the parsed template entries of a single locale.
type Table struct {
	tag     language.Tag
	entries map[string]any
}

var (
	loadOnce   sync.Once
	loadErr    error
	tables     map[string]*Table
	matcher    language.Matcher
	matcherTag []language.Tag
)

// loadAll parses every embedded table exactly once. The files ship inside
// the binary, so a parse failure is a packaging bug surfaced on first use.
func loadAll() {
	tables = make(map[string]*Table)

	files, err := tableFS.ReadDir(".")
	if err != nil {
		loadErr = errors.Join(ErrFailedToParse, err)
		return
	}

	for _, f := range files {
		content, err := tableFS.ReadFile(f.Name())
		if err != nil {
			loadErr = errors.Join(ErrFailedToParse, err)
			return
		}

		var doc map[string]map[string]any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			loadErr = errors.Join(ErrFailedToParse, fmt.Errorf("file %s: %w", f.Name(), err))
			return
		}

		for tag, entries := range doc {
			parsed, err := language.Parse(tag)
			if err != nil {
				loadErr = errors.Join(ErrFailedToParse, fmt.Errorf("file %s: tag %q: %w", f.Name(), tag, err))
				return
			}
			tables[strings.ToLower(tag)] = &Table{tag: parsed, entries: toAnyMap(entries)}
		}
	}

	// The default locale goes first so it wins as the matcher fallback.
	matcherTag = make([]language.Tag, 0, len(tables))
	if def, ok := tables[DefaultLocale]; ok {
		matcherTag = append(matcherTag, def.tag)
	}
	for key, t := range tables {
		if key != DefaultLocale {
			matcherTag = append(matcherTag, t.tag)
		}
	}
	matcher = language.NewMatcher(matcherTag)
}

// Load returns the template table best matching the requested locale.
// Variants of a shipped locale resolve to it ("en-US" to "en"); locales with
// no shipped table resolve to DefaultLocale. The tag itself must still be
// well-formed, otherwise ErrInvalidLocale is returned.
func Load(locale string) (*Table, error) {
	loadOnce.Do(loadAll)
	if loadErr != nil {
		return nil, loadErr
	}

	if strings.TrimSpace(locale) == "" {
		locale = DefaultLocale
	}

	requested, err := language.Parse(locale)
	if err != nil {
		return nil, errors.Join(ErrInvalidLocale, err)
	}

	_, idx, _ := matcher.Match(requested)
	matched := matcherTag[idx]

	for _, t := range tables {
		if t.tag == matched {
			return t, nil
		}
	}
	// Matcher indexes are always within the tag set; reaching here means the
	// set is empty, which only happens when no tables are embedded.
	return nil, ErrFailedToParse
}

// MustLoad works like Load but panics on failure. Misconfiguration
// surfaces at startup instead of mid-generation.
func MustLoad(locale string) *Table {
	t, err := Load(locale)
	if err != nil {
		panic(fmt.Sprintf("locales: failed to load %q: %v", locale, err))
	}
	return t
}

// Parse reads a template table from a YAML document shipped outside the
// binary. The document must hold exactly one top-level locale tag, the
// same shape as the embedded files.
func Parse(content []byte) (*Table, error) {
	var doc map[string]map[string]any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, errors.Join(ErrFailedToParse, err)
	}
	if len(doc) != 1 {
		return nil, fmt.Errorf("%w: want exactly one locale tag, got %d", ErrFailedToParse, len(doc))
	}

	for tag, entries := range doc {
		parsed, err := language.Parse(tag)
		if err != nil {
			return nil, errors.Join(ErrInvalidLocale, err)
		}
		return &Table{tag: parsed, entries: toAnyMap(entries)}, nil
	}
	return nil, ErrFailedToParse
}

// Locales lists the shipped locale tags, sorted.
func Locales() []string {
	loadOnce.Do(loadAll)

	keys := make([]string, 0, len(tables))
	for key := range tables {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return keys
}

// Locale reports the table's resolved BCP 47 tag.
func (t *Table) Locale() string {
	return t.tag.String()
}

// Template returns the single template stored under the dotted key.
func (t *Table) Template(key string) (string, error) {
	v, err := t.lookup(key)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotATemplate, key)
	}
	return s, nil
}

// Templates returns the template list stored under the dotted key.
func (t *Table) Templates(key string) ([]string, error) {
	v, err := t.lookup(key)
	if err != nil {
		return nil, err
	}

	raw, ok := v.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotATemplateList, key)
	}

	out := make([]string, 0, len(raw))
	for _, item := range raw {
		s, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrNotATemplateList, key)
		}
		out = append(out, s)
	}
	return out, nil
}

// lookup walks the dotted key through nested maps.
func (t *Table) lookup(key string) (any, error) {
	var current any = t.entries
	for _, part := range strings.Split(key, ".") {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
		current, ok = m[part]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingKey, key)
		}
	}
	return current, nil
}

// toAnyMap normalizes the nested maps produced by the YAML decoder so that
// lookup only ever deals with map[string]any.
func toAnyMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		switch val := v.(type) {
		case map[string]any:
			out[k] = toAnyMap(val)
		case map[any]any:
			m := make(map[string]any, len(val))
			for mk, mv := range val {
				if ks, ok := mk.(string); ok {
					if nested, ok := mv.(map[string]any); ok {
						m[ks] = toAnyMap(nested)
					} else {
						m[ks] = mv
					}
				}
			}
			out[k] = m
		default:
			out[k] = v
		}
	}
	return out
}
