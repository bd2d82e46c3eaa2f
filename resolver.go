package compact

import (
	"fmt"
	"sync"
)

// rootLocale is the terminal identifier of every resolution chain. The
// corpus must carry real data for it; that base case is what makes
// resolution total.
const rootLocale = "root"

// maxAliasRedirects caps alias hops so a cycle in malformed data fails
// fast instead of hanging.
const maxAliasRedirects = 8

// localeRecord is one corpus entry: either real data or an alias redirect.
type localeRecord struct {
	table   *PatternTable
	aliasTo string
}

// Corpus is the static locale data the resolver walks: pattern tables for
// "real" locales plus an alias graph. Identifiers with neither resolve
// synthetically, by subtag stripping down to the root. A corpus never
// changes after construction, so resolved tables cache indefinitely.
type Corpus struct {
	records  map[string]localeRecord
	resolved sync.Map // resolveKey -> *PatternTable
}

type resolveKey struct {
	locale string
	style  Style
}

// NewCorpus validates tables and aliases into a resolvable corpus.
// Construction fails with ErrDataIntegrity when the root table is missing,
// an alias chain does not terminate, a (style, bucket) group lacks its
// "other" entry, or a plural rule set does not compile.
func NewCorpus(tables []*PatternTable, aliases map[string]string) (*Corpus, error) {
	c := &Corpus{records: make(map[string]localeRecord, len(tables)+len(aliases))}

	for _, table := range tables {
		if table == nil || table.Locale == "" {
			return nil, fmt.Errorf("%w: table without locale", ErrDataIntegrity)
		}
		id := normalizeLocale(table.Locale)
		if _, dup := c.records[id]; dup {
			return nil, fmt.Errorf("%w: duplicate locale %q", ErrDataIntegrity, id)
		}
		if err := validateTable(table); err != nil {
			return nil, err
		}
		c.records[id] = localeRecord{table: table}
	}

	for from, to := range aliases {
		id := normalizeLocale(from)
		target := normalizeLocale(to)
		if id == "" || target == "" || id == target {
			return nil, fmt.Errorf("%w: bad alias %q -> %q", ErrDataIntegrity, from, to)
		}
		if _, dup := c.records[id]; dup {
			return nil, fmt.Errorf("%w: alias %q shadows real data", ErrDataIntegrity, id)
		}
		c.records[id] = localeRecord{aliasTo: target}
	}

	if rec, ok := c.records[rootLocale]; !ok || rec.table == nil {
		return nil, fmt.Errorf("%w: missing root locale data", ErrDataIntegrity)
	}

	// Every alias must reach real data within the redirect cap.
	for id, rec := range c.records {
		if rec.aliasTo == "" {
			continue
		}
		if _, err := c.lookup(id); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func validateTable(table *PatternTable) error {
	for prev, i := -1, 0; i < len(table.Buckets); i++ {
		if table.Buckets[i] <= prev {
			return fmt.Errorf("%w: %s buckets not increasing", ErrDataIntegrity, table.Locale)
		}
		prev = table.Buckets[i]
	}
	for _, style := range []Style{StyleShort, StyleLong} {
		for bucket, variants := range table.entries(style) {
			if _, ok := variants[PluralOther]; !ok {
				return fmt.Errorf("%w: %s %s bucket %d lacks %q entry",
					ErrDataIntegrity, table.Locale, style, bucket, PluralOther)
			}
		}
	}
	if err := table.Rules.Compile(); err != nil {
		return fmt.Errorf("%w: %v", ErrDataIntegrity, err)
	}
	return nil
}

// Resolve returns the pattern table for a locale and style, caching the
// result per (locale, style). Population races are benign: every writer
// computes the identical value and LoadOrStore keeps a single winner.
func (c *Corpus) Resolve(locale string, style Style) (*PatternTable, error) {
	key := resolveKey{locale: normalizeLocale(locale), style: style}
	if cached, ok := c.resolved.Load(key); ok {
		return cached.(*PatternTable), nil
	}

	table, err := c.lookup(key.locale)
	if err != nil {
		return nil, err
	}
	actual, _ := c.resolved.LoadOrStore(key, table)
	return actual.(*PatternTable), nil
}

// lookup walks aliases and synthetic parent fallback until real data is
// found. Aliases substitute identifiers without widening the search;
// identifiers with no record shed their least-specific subtag and retry,
// bottoming out at root.
func (c *Corpus) lookup(locale string) (*PatternTable, error) {
	cur := locale
	if cur == "" {
		cur = rootLocale
	}
	redirects := 0
	for {
		if rec, ok := c.records[cur]; ok {
			if rec.table != nil {
				return rec.table, nil
			}
			redirects++
			if redirects > maxAliasRedirects {
				return nil, fmt.Errorf("%w: alias cycle at %q", ErrDataIntegrity, cur)
			}
			cur = rec.aliasTo
			continue
		}
		if parent := localeParent(cur); parent != "" {
			cur = parent
			continue
		}
		if cur == rootLocale {
			return nil, fmt.Errorf("%w: missing root locale data", ErrDataIntegrity)
		}
		cur = rootLocale
	}
}
