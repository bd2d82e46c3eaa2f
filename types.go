package compact

// Style selects between abbreviated suffixes ("1.2T") and spelled-out
// magnitude words ("1.2 trillion") when the locale data carries them.
type Style int

const (
	StyleShort Style = iota
	StyleLong
)

func (s Style) String() string {
	switch s {
	case StyleShort:
		return "short"
	case StyleLong:
		return "long"
	default:
		return "unknown"
	}
}

type PluralCategory string

const (
	PluralZero  PluralCategory = "zero"
	PluralOne   PluralCategory = "one"
	PluralTwo   PluralCategory = "two"
	PluralFew   PluralCategory = "few"
	PluralMany  PluralCategory = "many"
	PluralOther PluralCategory = "other"
)

// RoundingMode controls how excess precision is discarded.
type RoundingMode int

const (
	// RoundHalfEven rounds to nearest, ties to the even neighbor.
	RoundHalfEven RoundingMode = iota
	// RoundDown truncates toward zero.
	RoundDown
	// RoundUp rounds away from zero.
	RoundUp
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
)

// Field identifies the kind of substring a Span covers in formatted output.
type Field int

const (
	FieldInteger Field = iota
	FieldFraction
	FieldGroup
	FieldDecimal
	FieldPrefix
	FieldSuffix
	FieldSign
)

func (f Field) String() string {
	switch f {
	case FieldInteger:
		return "integer"
	case FieldFraction:
		return "fraction"
	case FieldGroup:
		return "group"
	case FieldDecimal:
		return "decimal"
	case FieldPrefix:
		return "prefix"
	case FieldSuffix:
		return "suffix"
	case FieldSign:
		return "sign"
	default:
		return "unknown"
	}
}

// Span marks a half-open [Start, End) byte range of the output string.
// Spans are emitted in left-to-right order and never overlap.
type Span struct {
	Field Field
	Start int
	End   int
}

// Result is a formatted value together with its field layout, for rich-text
// consumers that style the numeric and literal portions differently.
type Result struct {
	Text  string
	Spans []Span
}

// PatternEntry is one compact pattern variant: literal affixes around the
// abbreviated digits plus the minimum count of integer digits to render.
// A zero MinIntegerDigits marks an identity pattern, meaning the locale does
// not abbreviate at this magnitude (German keeps thousands unabbreviated).
type PatternEntry struct {
	Prefix           string `json:"prefix" yaml:"prefix"`
	Suffix           string `json:"suffix" yaml:"suffix"`
	MinIntegerDigits int    `json:"min_integer_digits" yaml:"min_integer_digits"`
}

// Symbols carries the locale's separator and sign characters.
// An empty Minus means the locale data defines no negative pattern and
// negative input is rejected for that locale.
type Symbols struct {
	Decimal      string `json:"decimal" yaml:"decimal"`
	Group        string `json:"group" yaml:"group"`
	Minus        string `json:"minus" yaml:"minus"`
	GroupingSize int    `json:"grouping_size" yaml:"grouping_size"`
}

// PatternTable is the resolved compact data for one locale: pattern variants
// keyed by magnitude bucket and plural category, for both styles.
//
// Buckets holds the configured magnitudes in increasing order (for most
// locales steps of 3: 3, 6, 9, 12; Japanese groups in steps of 4). The
// divisor for a bucket b is always 10^b. Every (style, bucket) pair present
// in the table must carry an "other" entry.
type PatternTable struct {
	Locale          string
	Symbols         Symbols
	Buckets         []int
	Short           map[int]map[PluralCategory]PatternEntry
	Long            map[int]map[PluralCategory]PatternEntry
	LongUnsupported bool
	Rules           *PluralRuleSet
}

// entries returns the pattern map for the requested style.
func (t *PatternTable) entries(style Style) map[int]map[PluralCategory]PatternEntry {
	if style == StyleLong {
		return t.Long
	}
	return t.Short
}
