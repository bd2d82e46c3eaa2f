package compact

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// DecimalQuantity holds an exact decimal value: a sign, the significant
// decimal digits, and the power of ten of the leading digit. Values built
// from integer or decimal-string input carry exactly the digits the input
// denotes; float input is reconstructed through its shortest round-tripping
// decimal form, never by multiplying the binary value.
//
// The zero value represents 0. Quantities only lose precision through the
// explicit rounding operations; nothing widens them silently.
type DecimalQuantity struct {
	neg     bool
	digits  []byte // significant digits 0..9, most significant first, no leading/trailing zeros
	exp     int    // power of ten of digits[0]
	vis     int    // visible fraction digit count, >= the natural fraction length
	inexact bool   // precision was discarded by a rounding operation
}

// NewQuantityFromInt64 builds a quantity from a signed integer.
func NewQuantityFromInt64(v int64) *DecimalQuantity {
	q := &DecimalQuantity{}
	if v == 0 {
		return q
	}
	s := strconv.FormatInt(v, 10)
	if s[0] == '-' {
		q.neg = true
		s = s[1:]
	}
	q.digits = make([]byte, len(s))
	for i := 0; i < len(s); i++ {
		q.digits[i] = s[i] - '0'
	}
	q.exp = len(s) - 1
	q.trim()
	return q
}

// NewQuantityFromFloat64 builds a quantity from a binary float through its
// shortest round-tripping decimal representation. Non-finite input fails
// with ErrInvalidValue.
func NewQuantityFromFloat64(v float64) (*DecimalQuantity, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("%w: non-finite float %v", ErrInvalidValue, v)
	}
	return ParseQuantity(strconv.FormatFloat(v, 'g', -1, 64))
}

// ParseQuantity builds a quantity from a decimal string such as "1.234",
// "-1200", "+0.000001234" or "1.83e5".
func ParseQuantity(s string) (*DecimalQuantity, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return nil, fmt.Errorf("%w: empty numeric string", ErrInvalidValue)
	}

	q := &DecimalQuantity{}
	switch in[0] {
	case '-':
		q.neg = true
		in = in[1:]
	case '+':
		in = in[1:]
	}

	mantissa := in
	exp10 := 0
	if idx := strings.IndexAny(in, "eE"); idx >= 0 {
		mantissa = in[:idx]
		e, err := strconv.Atoi(in[idx+1:])
		if err != nil {
			return nil, fmt.Errorf("%w: bad exponent in %q", ErrInvalidValue, s)
		}
		exp10 = e
	}

	intPart := mantissa
	fracPart := ""
	if idx := strings.IndexByte(mantissa, '.'); idx >= 0 {
		intPart = mantissa[:idx]
		fracPart = mantissa[idx+1:]
	}
	if intPart == "" && fracPart == "" {
		return nil, fmt.Errorf("%w: no digits in %q", ErrInvalidValue, s)
	}

	combined := make([]byte, 0, len(intPart)+len(fracPart))
	for _, part := range []string{intPart, fracPart} {
		for i := 0; i < len(part); i++ {
			c := part[i]
			if c < '0' || c > '9' {
				return nil, fmt.Errorf("%w: bad digit %q in %q", ErrInvalidValue, c, s)
			}
			combined = append(combined, c-'0')
		}
	}

	// Visible fraction digits survive the exponent shift: "1.8300e2" shows
	// two of its four fraction digits after scaling.
	visible := len(fracPart) - exp10
	if visible < 0 {
		visible = 0
	}

	lead := 0
	for lead < len(combined) && combined[lead] == 0 {
		lead++
	}
	if lead == len(combined) {
		q.vis = visible
		return q, nil
	}

	q.digits = combined[lead:]
	// Power of the first significant digit: point sits after intPart.
	q.exp = len(intPart) - 1 - lead + exp10
	q.vis = visible
	q.trim()
	if nat := q.naturalFraction(); q.vis < nat {
		q.vis = nat
	}
	return q, nil
}

// trim drops trailing zero digits; the positions they held are reproduced
// from exp and vis when rendering.
func (q *DecimalQuantity) trim() {
	n := len(q.digits)
	for n > 0 && q.digits[n-1] == 0 {
		n--
	}
	q.digits = q.digits[:n]
	if n == 0 {
		q.exp = 0
	}
}

// IsZero reports whether the quantity is numerically zero.
func (q *DecimalQuantity) IsZero() bool { return len(q.digits) == 0 }

// Negative reports the sign.
func (q *DecimalQuantity) Negative() bool { return q.neg }

// Inexact reports whether any rounding operation discarded nonzero digits.
func (q *DecimalQuantity) Inexact() bool { return q.inexact }

// Magnitude returns the power of ten of the most significant digit,
// 0 for zero. Magnitude(999.5) = 2, Magnitude(0.05) = -2.
func (q *DecimalQuantity) Magnitude() int {
	if q.IsZero() {
		return 0
	}
	return q.exp
}

// naturalFraction is the count of fraction digits actually present.
func (q *DecimalQuantity) naturalFraction() int {
	if q.IsZero() {
		return 0
	}
	low := q.exp - len(q.digits) + 1
	if low >= 0 {
		return 0
	}
	return -low
}

// Clone returns an independent copy.
func (q *DecimalQuantity) Clone() *DecimalQuantity {
	out := *q
	out.digits = append([]byte(nil), q.digits...)
	return &out
}

// DivideByPowerOfTen scales the value down by 10^n. The shift is exact in
// this representation; digits shed below the point stay visible as fraction
// digits until a rounding operation narrows them.
func (q *DecimalQuantity) DivideByPowerOfTen(n int) {
	if q.IsZero() {
		return
	}
	q.exp -= n
	q.vis = q.naturalFraction()
}

// digitAt returns the digit at the given power of ten, 0 when out of range.
func (q *DecimalQuantity) digitAt(power int) byte {
	idx := q.exp - power
	if idx < 0 || idx >= len(q.digits) {
		return 0
	}
	return q.digits[idx]
}

// RoundToSignificantDigits narrows the quantity to at most max significant
// digits under the given mode and widens the visible fraction so at least
// min significant digits display.
func (q *DecimalQuantity) RoundToSignificantDigits(min, max int, mode RoundingMode) {
	if max < 1 {
		max = 1
	}
	if min < 1 {
		min = 1
	}
	if !q.IsZero() {
		q.roundToPower(q.exp-max+1, mode)
	}

	// Displayed significand length is exp+1+vis for every sign of exp.
	nat := q.naturalFraction()
	q.vis = nat
	if pad := min - q.Magnitude() - 1; pad > q.vis {
		q.vis = pad
	}
}

// RoundToFractionDigits narrows the quantity to at most max fraction digits
// and keeps at least min visible.
func (q *DecimalQuantity) RoundToFractionDigits(min, max int, mode RoundingMode) {
	if max < 0 {
		max = 0
	}
	if min < 0 {
		min = 0
	}
	q.roundToPower(-max, mode)

	vis := q.naturalFraction()
	if vis < min {
		vis = min
	}
	q.vis = vis
}

// roundToPower discards every digit below the given power of ten and
// resolves the remainder per mode. Carry propagation can grow the magnitude
// (999.5 rounded to two significant digits becomes 1000).
func (q *DecimalQuantity) roundToPower(keepLow int, mode RoundingMode) {
	if q.IsZero() {
		return
	}
	lowPower := q.exp - len(q.digits) + 1
	if keepLow <= lowPower {
		return
	}

	// Count of kept digits; everything is discarded when <= 0.
	cut := q.exp - keepLow + 1
	q.inexact = true

	increment := false
	switch mode {
	case RoundDown:
	case RoundUp:
		increment = true
	case RoundCeiling:
		increment = !q.neg
	case RoundFloor:
		increment = q.neg
	default: // RoundHalfEven
		boundary := q.digitAt(keepLow - 1)
		switch {
		case boundary > 5:
			increment = true
		case boundary < 5:
		default:
			tail := false
			for p := keepLow - 2; p >= lowPower; p-- {
				if q.digitAt(p) != 0 {
					tail = true
					break
				}
			}
			if tail || q.digitAt(keepLow)%2 == 1 {
				increment = true
			}
		}
	}

	if cut <= 0 {
		if increment {
			q.digits = []byte{1}
			q.exp = keepLow
		} else {
			q.digits = nil
		}
		q.trim()
		return
	}

	q.digits = append([]byte(nil), q.digits[:cut]...)
	if increment {
		i := len(q.digits) - 1
		for ; i >= 0; i-- {
			if q.digits[i] < 9 {
				q.digits[i]++
				q.digits = q.digits[:i+1]
				break
			}
		}
		if i < 0 {
			// Every kept digit was nine: the carry creates a new leading digit.
			q.digits = []byte{1}
			q.exp++
		}
	}
	q.trim()
}

// PluralOperands derives the operands plural rules are evaluated against:
// the integer part ignoring sign, the count of visible fraction digits, the
// visible fraction digits as an integer with and without trailing zeros.
func (q *DecimalQuantity) PluralOperands() PluralOperands {
	var op PluralOperands
	op.V = q.vis

	// Rules only ever inspect the integer operand modulo small powers of
	// ten, so the low-order digits are the ones that must survive when the
	// value exceeds uint64 range.
	top := q.exp
	if top > 17 {
		top = 17
	}
	for p := top; p >= 0; p-- {
		op.I = op.I*10 + uint64(q.digitAt(p))
	}

	nat := q.naturalFraction()
	for p := -1; p >= -q.vis; p-- {
		op.F = op.F*10 + int64(q.digitAt(p))
	}
	op.T = op.F
	for i := 0; i < q.vis-nat && op.T != 0; i++ {
		op.T /= 10
	}
	if nat == 0 {
		op.T = 0
	}

	op.N = float64(op.I)
	if q.vis > 0 {
		op.N += float64(op.F) / math.Pow10(q.vis)
	}
	return op
}

// String renders the plain decimal form, mainly for diagnostics and tests.
func (q *DecimalQuantity) String() string {
	var b strings.Builder
	if q.neg {
		b.WriteByte('-')
	}
	top := q.exp
	if top < 0 {
		top = 0
	}
	for p := top; p >= 0; p-- {
		b.WriteByte('0' + q.digitAt(p))
	}
	if q.vis > 0 {
		b.WriteByte('.')
		for p := -1; p >= -q.vis; p-- {
			b.WriteByte('0' + q.digitAt(p))
		}
	}
	return b.String()
}
