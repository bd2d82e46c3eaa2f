package compact

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest is the static categorization an external packaging step produces:
// which identifiers own real data, which redirect, and which are known to
// resolve synthetically. The loader only consumes it as a consistency check.
type Manifest struct {
	Real      []string          `json:"real" yaml:"real"`
	Alias     map[string]string `json:"alias" yaml:"alias"`
	Synthetic []string          `json:"synthetic" yaml:"synthetic"`
}

// corpusFile is the on-disk corpus document, JSON or YAML.
type corpusFile struct {
	Manifest Manifest             `json:"manifest" yaml:"manifest"`
	Locales  map[string]*tableDef `json:"locales" yaml:"locales"`
}

type tableDef struct {
	Symbols         Symbols                                `json:"symbols" yaml:"symbols"`
	Buckets         []int                                  `json:"buckets" yaml:"buckets"`
	Short           map[int]map[PluralCategory]PatternEntry `json:"short" yaml:"short"`
	Long            map[int]map[PluralCategory]PatternEntry `json:"long" yaml:"long"`
	LongUnsupported bool                                   `json:"long_unsupported" yaml:"long_unsupported"`
	Rules           []PluralRule                           `json:"rules" yaml:"rules"`
}

// Loader retrieves a corpus; LoaderFunc adapts bare functions to it.
type Loader interface {
	Load() (*Corpus, error)
}

type LoaderFunc func() (*Corpus, error)

func (fn LoaderFunc) Load() (*Corpus, error) {
	return fn()
}

// FileLoader reads corpus documents from disk. Later paths override earlier
// ones per locale, so a deployment can layer a small patch file over a full
// corpus dump.
type FileLoader struct {
	paths []string
}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

var _ Loader = &FileLoader{}

func (l *FileLoader) Load() (*Corpus, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("compact: no loader paths configured")
	}

	merged := corpusFile{Locales: make(map[string]*tableDef)}
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("compact: read %s: %w", path, err)
		}
		doc, err := decodeCorpusFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("compact: decode %s: %w", path, err)
		}
		mergeCorpusFile(&merged, doc)
	}

	if err := validateManifest(&merged); err != nil {
		return nil, err
	}

	tables := make([]*PatternTable, 0, len(merged.Locales))
	for locale, def := range merged.Locales {
		tables = append(tables, def.toTable(locale))
	}
	return NewCorpus(tables, merged.Manifest.Alias)
}

func decodeCorpusFile(path string, data []byte) (*corpusFile, error) {
	var doc corpusFile
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
	return &doc, nil
}

func mergeCorpusFile(dst *corpusFile, src *corpusFile) {
	for locale, def := range src.Locales {
		if locale == "" || def == nil {
			continue
		}
		dst.Locales[normalizeLocale(locale)] = def
	}
	if len(src.Manifest.Real) > 0 {
		dst.Manifest.Real = src.Manifest.Real
	}
	if len(src.Manifest.Alias) > 0 {
		if dst.Manifest.Alias == nil {
			dst.Manifest.Alias = make(map[string]string, len(src.Manifest.Alias))
		}
		for from, to := range src.Manifest.Alias {
			dst.Manifest.Alias[normalizeLocale(from)] = normalizeLocale(to)
		}
	}
	if len(src.Manifest.Synthetic) > 0 {
		dst.Manifest.Synthetic = src.Manifest.Synthetic
	}
}

// validateManifest cross-checks the document against its manifest: every
// identifier listed as real must carry data, aliases and synthetics must
// not.
func validateManifest(doc *corpusFile) error {
	for _, locale := range doc.Manifest.Real {
		if _, ok := doc.Locales[normalizeLocale(locale)]; !ok {
			return fmt.Errorf("%w: manifest lists %q as real but no data present", ErrDataIntegrity, locale)
		}
	}
	for from := range doc.Manifest.Alias {
		if _, ok := doc.Locales[from]; ok {
			return fmt.Errorf("%w: manifest aliases %q but it owns data", ErrDataIntegrity, from)
		}
	}
	for _, locale := range doc.Manifest.Synthetic {
		id := normalizeLocale(locale)
		if _, ok := doc.Locales[id]; ok {
			return fmt.Errorf("%w: manifest lists %q as synthetic but data present", ErrDataIntegrity, locale)
		}
		if _, ok := doc.Manifest.Alias[id]; ok {
			return fmt.Errorf("%w: manifest lists %q as both synthetic and alias", ErrDataIntegrity, locale)
		}
	}
	return nil
}

func (d *tableDef) toTable(locale string) *PatternTable {
	table := &PatternTable{
		Locale:          locale,
		Symbols:         d.Symbols,
		Buckets:         append([]int(nil), d.Buckets...),
		Short:           d.Short,
		Long:            d.Long,
		LongUnsupported: d.LongUnsupported,
	}
	if len(table.Buckets) == 0 {
		// Derive the bucket list from whichever style carries entries.
		seen := make(map[int]struct{})
		for _, entries := range []map[int]map[PluralCategory]PatternEntry{d.Short, d.Long} {
			for bucket := range entries {
				seen[bucket] = struct{}{}
			}
		}
		for bucket := range seen {
			table.Buckets = append(table.Buckets, bucket)
		}
		sort.Ints(table.Buckets)
	}
	if len(d.Rules) > 0 {
		table.Rules = &PluralRuleSet{Locale: locale, Rules: d.Rules}
	}
	return table
}
