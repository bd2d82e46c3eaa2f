package compact

import "strings"

// defaultGroupingSize is the digits-per-group used when a table does not
// override it.
const defaultGroupingSize = 3

// render applies a pattern to a rounded quantity: literal affixes verbatim
// around the digit run, locale separators, and grouping gated on the
// minimum-grouping-digits threshold so short forms like "12K" stay clean.
// Spans cover every byte of output in left-to-right order without overlap;
// offsets are byte offsets into Text.
func render(sel selection, symbols Symbols, minGrouping int) Result {
	q := sel.adjusted

	intDigits := q.Magnitude() + 1
	if q.IsZero() || intDigits < 1 {
		intDigits = 1
	}
	if intDigits < sel.entry.MinIntegerDigits {
		intDigits = sel.entry.MinIntegerDigits
	}

	group := symbols.GroupingSize
	if group <= 0 {
		group = defaultGroupingSize
	}
	if minGrouping < 1 {
		minGrouping = 1
	}
	// The first separator only appears when enough digits precede it:
	// with size 3 and minimum 2, 1000 renders bare and 10000 groups.
	useGrouping := symbols.Group != "" && intDigits >= group+minGrouping

	decimal := symbols.Decimal
	if decimal == "" {
		decimal = "."
	}

	var b strings.Builder
	spans := make([]Span, 0, 6)
	emit := func(field Field, text string) {
		if text == "" {
			return
		}
		start := b.Len()
		b.WriteString(text)
		spans = append(spans, Span{Field: field, Start: start, End: b.Len()})
	}

	if q.Negative() {
		emit(FieldSign, symbols.Minus)
	}
	emit(FieldPrefix, sel.entry.Prefix)

	runStart := b.Len()
	for p := intDigits - 1; p >= 0; p-- {
		b.WriteByte('0' + q.digitAt(p))
		if useGrouping && p > 0 && p%group == 0 {
			spans = append(spans, Span{Field: FieldInteger, Start: runStart, End: b.Len()})
			emit(FieldGroup, symbols.Group)
			runStart = b.Len()
		}
	}
	spans = append(spans, Span{Field: FieldInteger, Start: runStart, End: b.Len()})

	if q.vis > 0 {
		emit(FieldDecimal, decimal)
		runStart = b.Len()
		for p := -1; p >= -q.vis; p-- {
			b.WriteByte('0' + q.digitAt(p))
		}
		spans = append(spans, Span{Field: FieldFraction, Start: runStart, End: b.Len()})
	}

	emit(FieldSuffix, sel.entry.Suffix)

	return Result{Text: b.String(), Spans: spans}
}
