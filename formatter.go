package compact

import "fmt"

// defaultMaxSignificantDigits is the compact-notation display precision
// when no override is configured.
const defaultMaxSignificantDigits = 2

// defaultShortMinGrouping keeps short forms from growing separators the
// moment they cross four digits; long style groups normally.
const defaultShortMinGrouping = 2

// Properties is the immutable configuration of a Formatter. Unset digit
// limits are 0 for significant digits and -1 for fraction digits; explicit
// fraction limits take precedence over significant-digit limits.
type Properties struct {
	Style                Style
	MinSignificantDigits int
	MaxSignificantDigits int
	MinFractionDigits    int
	MaxFractionDigits    int
	Rounding             RoundingMode
	MinGroupingDigits    int
}

func (p Properties) hasDigitOverrides() bool {
	return p.MinSignificantDigits > 0 || p.MaxSignificantDigits > 0 ||
		p.MinFractionDigits >= 0 || p.MaxFractionDigits >= 0
}

func (p Properties) minGrouping() int {
	if p.MinGroupingDigits > 0 {
		return p.MinGroupingDigits
	}
	if p.Style == StyleShort {
		return defaultShortMinGrouping
	}
	return 1
}

// Option adjusts Properties during construction.
type Option func(*Properties) error

// WithMinSignificantDigits sets the least number of significant digits to
// display, padding with fraction zeros when needed.
func WithMinSignificantDigits(n int) Option {
	return func(p *Properties) error {
		if n < 1 {
			return fmt.Errorf("%w: min significant digits %d", ErrInvalidValue, n)
		}
		p.MinSignificantDigits = n
		return nil
	}
}

// WithMaxSignificantDigits caps the displayed significant digits.
func WithMaxSignificantDigits(n int) Option {
	return func(p *Properties) error {
		if n < 1 {
			return fmt.Errorf("%w: max significant digits %d", ErrInvalidValue, n)
		}
		p.MaxSignificantDigits = n
		return nil
	}
}

// WithFractionDigits bounds the visible fraction digits; it overrides
// significant-digit rounding.
func WithFractionDigits(min, max int) Option {
	return func(p *Properties) error {
		if min < 0 || max < min {
			return fmt.Errorf("%w: fraction digits %d..%d", ErrInvalidValue, min, max)
		}
		p.MinFractionDigits = min
		p.MaxFractionDigits = max
		return nil
	}
}

// WithRoundingMode selects how excess precision is discarded; the default
// is half-even.
func WithRoundingMode(mode RoundingMode) Option {
	return func(p *Properties) error {
		if mode < RoundHalfEven || mode > RoundFloor {
			return fmt.Errorf("%w: rounding mode %d", ErrInvalidValue, mode)
		}
		p.Rounding = mode
		return nil
	}
}

// WithMinGroupingDigits sets how many digits must precede the first group
// separator before grouping applies at all.
func WithMinGroupingDigits(n int) Option {
	return func(p *Properties) error {
		if n < 1 {
			return fmt.Errorf("%w: min grouping digits %d", ErrInvalidValue, n)
		}
		p.MinGroupingDigits = n
		return nil
	}
}

// Formatter renders numbers in locale-correct compact notation, such as
// "1.2B" for English short style or "5,3 Mrd." for German. A Formatter is
// immutable after construction and safe for concurrent use: every call is a
// pure computation over its Properties and the corpus cache, which is
// populated at most once per (locale, style) and read lock-free once warm.
type Formatter struct {
	locale string
	props  Properties
	corpus *Corpus
}

// New builds a Formatter over the built-in corpus.
func New(locale string, style Style, opts ...Option) (*Formatter, error) {
	return NewWithCorpus(DefaultCorpus(), locale, style, opts...)
}

// NewWithCorpus builds a Formatter over the supplied corpus. The locale is
// resolved eagerly so corpus defects surface at construction, and the
// resolved table is already cached for the formatting path.
func NewWithCorpus(corpus *Corpus, locale string, style Style, opts ...Option) (*Formatter, error) {
	if corpus == nil {
		return nil, fmt.Errorf("%w: nil corpus", ErrDataIntegrity)
	}
	props := Properties{
		Style:             style,
		MinFractionDigits: -1,
		MaxFractionDigits: -1,
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&props); err != nil {
			return nil, err
		}
	}

	normalized := normalizeLocale(locale)
	if _, err := corpus.Resolve(normalized, style); err != nil {
		return nil, err
	}
	return &Formatter{locale: normalized, props: props, corpus: corpus}, nil
}

// Locale returns the normalized locale identifier.
func (f *Formatter) Locale() string { return f.locale }

// Style returns the configured compact style.
func (f *Formatter) Style() Style { return f.props.Style }

// FormatInt renders a signed integer.
func (f *Formatter) FormatInt(v int64) (Result, error) {
	return f.format(NewQuantityFromInt64(v))
}

// FormatFloat renders a binary float. Non-finite input fails with
// ErrInvalidValue.
func (f *Formatter) FormatFloat(v float64) (Result, error) {
	q, err := NewQuantityFromFloat64(v)
	if err != nil {
		return Result{}, err
	}
	return f.format(q)
}

// FormatDecimal renders an arbitrary-precision decimal string such as
// "123456789012345678901.5".
func (f *Formatter) FormatDecimal(s string) (Result, error) {
	q, err := ParseQuantity(s)
	if err != nil {
		return Result{}, err
	}
	return f.format(q)
}

func (f *Formatter) format(q *DecimalQuantity) (Result, error) {
	table, err := f.corpus.Resolve(f.locale, f.props.Style)
	if err != nil {
		return Result{}, err
	}
	sel, err := selectPattern(q, table, f.props)
	if err != nil {
		return Result{}, err
	}
	return render(sel, table.Symbols, f.props.minGrouping()), nil
}

// Parse always fails with ErrUnsupported. Compact strings are ambiguous
// across locales and magnitudes; this library does not invert them.
func (f *Formatter) Parse(string) (float64, error) {
	return 0, fmt.Errorf("%w: parsing compact notation", ErrUnsupported)
}

// MarshalJSON always fails with ErrUnsupported; formatter instances do not
// serialize.
func (f *Formatter) MarshalJSON() ([]byte, error) {
	return nil, fmt.Errorf("%w: formatter serialization", ErrUnsupported)
}

// UnmarshalJSON always fails with ErrUnsupported.
func (f *Formatter) UnmarshalJSON([]byte) error {
	return fmt.Errorf("%w: formatter serialization", ErrUnsupported)
}

// GobEncode always fails with ErrUnsupported.
func (f *Formatter) GobEncode() ([]byte, error) {
	return nil, fmt.Errorf("%w: formatter serialization", ErrUnsupported)
}

// GobDecode always fails with ErrUnsupported.
func (f *Formatter) GobDecode([]byte) error {
	return fmt.Errorf("%w: formatter serialization", ErrUnsupported)
}
