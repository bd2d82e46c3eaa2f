package compact

import (
	"fmt"
	"sort"
)

// selection is the outcome of pattern choice: the power-of-ten divisor
// (0 when the value stays unabbreviated), the pattern to apply, and the
// divided, display-rounded quantity to render.
type selection struct {
	bucket   int
	entry    PatternEntry
	adjusted *DecimalQuantity
}

// selectPattern picks the magnitude bucket and pattern variant for a
// quantity. Rounding to display precision can push the divided value across
// the next bucket boundary, so bucket choice iterates until it is stable;
// the loop is bounded by the bucket count.
//
// The plural category is evaluated on the final rounded quantity, which is
// what the reader actually sees, then the (style, bucket, category) entry is
// looked up with "other" as the guaranteed fallback.
func selectPattern(q *DecimalQuantity, table *PatternTable, props Properties) (selection, error) {
	if props.Style == StyleLong {
		if table.LongUnsupported || (len(table.Long) == 0 && len(table.Short) > 0) {
			return selection{}, fmt.Errorf("%w: locale %q has no long-style compact data",
				ErrUnsupported, table.Locale)
		}
	}
	if q.Negative() && table.Symbols.Minus == "" {
		return selection{}, fmt.Errorf("%w: locale %q defines no negative pattern",
			ErrUnsupported, table.Locale)
	}

	buckets := styleBuckets(table, props.Style)
	m := q.Magnitude()
	if len(buckets) == 0 || m < buckets[0] {
		return plainSelection(q, props), nil
	}

	idx := 0
	for idx+1 < len(buckets) && buckets[idx+1] <= m {
		idx++
	}

	for {
		bucket := buckets[idx]
		adjusted := q.Clone()
		adjusted.DivideByPowerOfTen(bucket)
		applyDisplayRounding(adjusted, props)

		// Magnitude promotion: 999,500 at two significant digits rounds to
		// 1,000,000 and must land in the next bucket, not render "1000K".
		if idx+1 < len(buckets) && adjusted.Magnitude()+bucket >= buckets[idx+1] {
			idx++
			continue
		}

		variants := table.entries(props.Style)[bucket]
		category := table.Rules.Evaluate(adjusted.PluralOperands())
		entry, ok := variants[category]
		if !ok {
			if entry, ok = variants[PluralOther]; !ok {
				return selection{}, fmt.Errorf("%w: %s %s bucket %d lacks %q entry",
					ErrDataIntegrity, table.Locale, props.Style, bucket, PluralOther)
			}
		}

		// An identity entry means the locale spells this magnitude out in
		// full (German keeps thousands unabbreviated).
		if entry.MinIntegerDigits == 0 {
			return plainSelection(q, props), nil
		}
		return selection{bucket: bucket, entry: entry, adjusted: adjusted}, nil
	}
}

// plainSelection renders the value unabbreviated. Display rounding applies
// only when the caller configured explicit digit limits; otherwise the
// original digits pass through exactly.
func plainSelection(q *DecimalQuantity, props Properties) selection {
	adjusted := q.Clone()
	if props.hasDigitOverrides() {
		applyDisplayRounding(adjusted, props)
	}
	return selection{entry: PatternEntry{MinIntegerDigits: 1}, adjusted: adjusted}
}

// applyDisplayRounding narrows a divided quantity to display precision:
// explicit fraction limits win, then explicit significant-digit limits,
// defaulting to the compact convention of at most two significant digits.
func applyDisplayRounding(q *DecimalQuantity, props Properties) {
	if props.MinFractionDigits >= 0 || props.MaxFractionDigits >= 0 {
		min, max := props.MinFractionDigits, props.MaxFractionDigits
		if min < 0 {
			min = 0
		}
		if max < 0 {
			max = min
		}
		q.RoundToFractionDigits(min, max, props.Rounding)
		return
	}
	min, max := props.MinSignificantDigits, props.MaxSignificantDigits
	if min <= 0 {
		min = 1
	}
	if max <= 0 {
		max = defaultMaxSignificantDigits
	}
	q.RoundToSignificantDigits(min, max, props.Rounding)
}

// styleBuckets returns the increasing bucket magnitudes that carry entries
// for the style, limited to the table's configured bucket list.
func styleBuckets(table *PatternTable, style Style) []int {
	entries := table.entries(style)
	buckets := make([]int, 0, len(entries))
	for _, b := range table.Buckets {
		if _, ok := entries[b]; ok {
			buckets = append(buckets, b)
		}
	}
	sort.Ints(buckets)
	return buckets
}
