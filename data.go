package compact

import "sync"

// Built-in compact pattern corpus. The tables below are hand-maintained
// from CLDR bundles; locales outside this set resolve through aliases and
// synthetic parent fallback, bottoming out at root.

// suf builds the common entry shape: one abbreviated digit followed by a
// literal suffix.
func suf(s string) PatternEntry {
	return PatternEntry{Suffix: s, MinIntegerDigits: 1}
}

// identity marks a magnitude the locale does not abbreviate.
func identity() PatternEntry {
	return PatternEntry{}
}

var builtinAliases = map[string]string{
	// Legacy Norwegian macrolanguage code; formatting-identical to Bokmål.
	"no": "nb",
}

func builtinTables() []*PatternTable {
	return []*PatternTable{
		{
			// Root carries no compact patterns: unknown locales render
			// unabbreviated with neutral separators.
			Locale:  "root",
			Symbols: Symbols{Decimal: ".", Group: ",", Minus: "-"},
		},
		{
			Locale:  "en",
			Symbols: Symbols{Decimal: ".", Group: ",", Minus: "-"},
			Buckets: []int{3, 6, 9, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOther: suf("K")},
				6:  {PluralOther: suf("M")},
				9:  {PluralOther: suf("B")},
				12: {PluralOther: suf("T")},
			},
			Long: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOne: suf(" thousand"), PluralOther: suf(" thousand")},
				6:  {PluralOne: suf(" million"), PluralOther: suf(" million")},
				9:  {PluralOne: suf(" billion"), PluralOther: suf(" billion")},
				12: {PluralOne: suf(" trillion"), PluralOther: suf(" trillion")},
			},
			Rules: &PluralRuleSet{Locale: "en", Rules: []PluralRule{
				{Category: PluralOne, Condition: "i = 1 and v = 0"},
			}},
		},
		{
			Locale:  "de",
			Symbols: Symbols{Decimal: ",", Group: ".", Minus: "-"},
			Buckets: []int{3, 6, 9, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				// German does not abbreviate thousands in short style.
				3:  {PluralOther: identity()},
				6:  {PluralOther: suf(" Mio.")},
				9:  {PluralOther: suf(" Mrd.")},
				12: {PluralOther: suf(" Bio.")},
			},
			Long: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOne: suf(" Tausend"), PluralOther: suf(" Tausend")},
				6:  {PluralOne: suf(" Million"), PluralOther: suf(" Millionen")},
				9:  {PluralOne: suf(" Milliarde"), PluralOther: suf(" Milliarden")},
				12: {PluralOne: suf(" Billion"), PluralOther: suf(" Billionen")},
			},
			Rules: &PluralRuleSet{Locale: "de", Rules: []PluralRule{
				{Category: PluralOne, Condition: "i = 1 and v = 0"},
			}},
		},
		{
			Locale:  "es",
			Symbols: Symbols{Decimal: ",", Group: ".", Minus: "-"},
			Buckets: []int{3, 6, 9, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOther: suf(" mil")},
				6:  {PluralOther: suf(" M")},
				9:  {PluralOther: suf(" mil M")},
				12: {PluralOther: suf(" B")},
			},
			Long: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOne: suf(" mil"), PluralOther: suf(" mil")},
				6:  {PluralOne: suf(" millón"), PluralOther: suf(" millones")},
				9:  {PluralOne: suf(" mil millones"), PluralOther: suf(" mil millones")},
				12: {PluralOne: suf(" billón"), PluralOther: suf(" billones")},
			},
			Rules: &PluralRuleSet{Locale: "es", Rules: []PluralRule{
				{Category: PluralOne, Condition: "n = 1"},
			}},
		},
		{
			Locale:  "fr",
			Symbols: Symbols{Decimal: ",", Group: " ", Minus: "-"},
			Buckets: []int{3, 6, 9, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOther: suf(" k")},
				6:  {PluralOther: suf(" M")},
				9:  {PluralOther: suf(" Md")},
				12: {PluralOther: suf(" Bn")},
			},
			Long: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOne: suf(" millier"), PluralOther: suf(" mille")},
				6:  {PluralOne: suf(" million"), PluralOther: suf(" millions")},
				9:  {PluralOne: suf(" milliard"), PluralOther: suf(" milliards")},
				12: {PluralOne: suf(" billion"), PluralOther: suf(" billions")},
			},
			Rules: &PluralRuleSet{Locale: "fr", Rules: []PluralRule{
				{Category: PluralOne, Condition: "i = 0,1"},
			}},
		},
		{
			// Japanese groups magnitudes in steps of four: 万 10^4, 億 10^8,
			// 兆 10^12. Long style uses the same counters.
			Locale:  "ja",
			Symbols: Symbols{Decimal: ".", Group: ",", Minus: "-"},
			Buckets: []int{4, 8, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				4:  {PluralOther: suf("万")},
				8:  {PluralOther: suf("億")},
				12: {PluralOther: suf("兆")},
			},
			Long: map[int]map[PluralCategory]PatternEntry{
				4:  {PluralOther: suf("万")},
				8:  {PluralOther: suf("億")},
				12: {PluralOther: suf("兆")},
			},
		},
		{
			Locale:  "pl",
			Symbols: Symbols{Decimal: ",", Group: " ", Minus: "-"},
			Buckets: []int{3, 6, 9, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOther: suf(" tys.")},
				6:  {PluralOther: suf(" mln")},
				9:  {PluralOther: suf(" mld")},
				12: {PluralOther: suf(" bln")},
			},
			Long: map[int]map[PluralCategory]PatternEntry{
				3: {
					PluralOne:   suf(" tysiąc"),
					PluralFew:   suf(" tysiące"),
					PluralMany:  suf(" tysięcy"),
					PluralOther: suf(" tysiąca"),
				},
				6: {
					PluralOne:   suf(" milion"),
					PluralFew:   suf(" miliony"),
					PluralMany:  suf(" milionów"),
					PluralOther: suf(" miliona"),
				},
				9: {
					PluralOne:   suf(" miliard"),
					PluralFew:   suf(" miliardy"),
					PluralMany:  suf(" miliardów"),
					PluralOther: suf(" miliarda"),
				},
				12: {
					PluralOne:   suf(" bilion"),
					PluralFew:   suf(" biliony"),
					PluralMany:  suf(" bilionów"),
					PluralOther: suf(" biliona"),
				},
			},
			Rules: &PluralRuleSet{Locale: "pl", Rules: []PluralRule{
				{Category: PluralOne, Condition: "i = 1 and v = 0"},
				{Category: PluralFew, Condition: "v = 0 and i % 10 = 2..4 and i % 100 != 12..14"},
				{Category: PluralMany, Condition: "v = 0 and i != 1 and i % 10 = 0..1 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 12..14"},
			}},
		},
		{
			// Bokmål ships short patterns only; long-style requests are
			// rejected rather than silently degraded.
			Locale:  "nb",
			Symbols: Symbols{Decimal: ",", Group: " ", Minus: "−"},
			Buckets: []int{3, 6, 9, 12},
			Short: map[int]map[PluralCategory]PatternEntry{
				3:  {PluralOther: suf("k")},
				6:  {PluralOther: suf(" mill.")},
				9:  {PluralOther: suf(" mrd.")},
				12: {PluralOther: suf(" bill.")},
			},
			Rules: &PluralRuleSet{Locale: "nb", Rules: []PluralRule{
				{Category: PluralOne, Condition: "n = 1"},
			}},
		},
	}
}

var (
	defaultCorpusOnce sync.Once
	defaultCorpus     *Corpus
)

// DefaultCorpus returns the shared built-in corpus. The data is a
// compile-time artifact, so a validation failure here is a packaging defect
// and panics like any other construction-time misconfiguration.
func DefaultCorpus() *Corpus {
	defaultCorpusOnce.Do(func() {
		corpus, err := NewCorpus(builtinTables(), builtinAliases)
		if err != nil {
			panic("compact: built-in corpus invalid: " + err.Error())
		}
		defaultCorpus = corpus
	})
	return defaultCorpus
}
