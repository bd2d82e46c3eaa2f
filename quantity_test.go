package compact

import (
	"errors"
	"math"
	"testing"
)

func TestParseQuantityRoundTrip(t *testing.T) {
	tests := []string{
		"0",
		"7",
		"123",
		"1200",
		"123.450",
		"0.000001234",
		"999999999999999999999",
		"123456789012345678901.5",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			q, err := ParseQuantity(input)
			if err != nil {
				t.Fatalf("ParseQuantity(%q): %v", input, err)
			}
			if got := q.String(); got != input {
				t.Errorf("ParseQuantity(%q).String() = %q; want %q", input, got, input)
			}
		})
	}
}

func TestParseQuantityExponent(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "1.83e5", want: "183000"},
		{input: "1.2e-3", want: "0.0012"},
		{input: "-4.5e2", want: "-450"},
		{input: "0.22e-9", want: "0.00000000022"},
	}

	for _, tc := range tests {
		q, err := ParseQuantity(tc.input)
		if err != nil {
			t.Fatalf("ParseQuantity(%q): %v", tc.input, err)
		}
		if got := q.String(); got != tc.want {
			t.Errorf("ParseQuantity(%q).String() = %q; want %q", tc.input, got, tc.want)
		}
	}
}

func TestNewQuantityFromFloat64(t *testing.T) {
	// 0.1 has no exact binary representation; the shortest round-tripping
	// decimal must come back, not a long binary expansion.
	q, err := NewQuantityFromFloat64(0.1)
	if err != nil {
		t.Fatalf("NewQuantityFromFloat64(0.1): %v", err)
	}
	if got := q.String(); got != "0.1" {
		t.Errorf("String() = %q; want %q", got, "0.1")
	}

	q, err = NewQuantityFromFloat64(1234567.89)
	if err != nil {
		t.Fatalf("NewQuantityFromFloat64: %v", err)
	}
	if got := q.String(); got != "1234567.89" {
		t.Errorf("String() = %q; want %q", got, "1234567.89")
	}
}

func TestNewQuantityFromFloat64NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewQuantityFromFloat64(v); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("NewQuantityFromFloat64(%v) error = %v; want ErrInvalidValue", v, err)
		}
	}
}

func TestMagnitude(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{input: "0", want: 0},
		{input: "7", want: 0},
		{input: "999.5", want: 2},
		{input: "1000", want: 3},
		{input: "0.05", want: -2},
	}

	for _, tc := range tests {
		q, err := ParseQuantity(tc.input)
		if err != nil {
			t.Fatalf("ParseQuantity(%q): %v", tc.input, err)
		}
		if got := q.Magnitude(); got != tc.want {
			t.Errorf("Magnitude(%q) = %d; want %d", tc.input, got, tc.want)
		}
	}
}

func TestDivideByPowerOfTen(t *testing.T) {
	q, err := ParseQuantity("999500")
	if err != nil {
		t.Fatal(err)
	}
	q.DivideByPowerOfTen(3)
	if got := q.String(); got != "999.5" {
		t.Errorf("after divide: %q; want %q", got, "999.5")
	}
	if q.Inexact() {
		t.Error("divide marked quantity inexact; the shift is exact")
	}
}

func TestRoundToSignificantDigits(t *testing.T) {
	tests := []struct {
		input    string
		min, max int
		mode     RoundingMode
		want     string
	}{
		{input: "1.234", min: 1, max: 2, mode: RoundHalfEven, want: "1.2"},
		{input: "999.5", min: 1, max: 2, mode: RoundHalfEven, want: "1000"},
		{input: "1.25", min: 1, max: 2, mode: RoundHalfEven, want: "1.2"},
		{input: "1.35", min: 1, max: 2, mode: RoundHalfEven, want: "1.4"},
		{input: "1.25", min: 1, max: 2, mode: RoundUp, want: "1.3"},
		{input: "1.29", min: 1, max: 2, mode: RoundDown, want: "1.2"},
		{input: "-1.25", min: 1, max: 2, mode: RoundCeiling, want: "-1.2"},
		{input: "-1.21", min: 1, max: 2, mode: RoundFloor, want: "-1.3"},
		{input: "1", min: 3, max: 3, mode: RoundHalfEven, want: "1.00"},
		{input: "0.5", min: 2, max: 2, mode: RoundHalfEven, want: "0.50"},
		{input: "100", min: 3, max: 3, mode: RoundHalfEven, want: "100"},
	}

	for _, tc := range tests {
		t.Run(tc.input+"/"+tc.want, func(t *testing.T) {
			q, err := ParseQuantity(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			q.RoundToSignificantDigits(tc.min, tc.max, tc.mode)
			if got := q.String(); got != tc.want {
				t.Errorf("RoundToSignificantDigits(%q, %d, %d) = %q; want %q",
					tc.input, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestRoundToFractionDigits(t *testing.T) {
	tests := []struct {
		input    string
		min, max int
		mode     RoundingMode
		want     string
	}{
		{input: "1.005", min: 2, max: 2, mode: RoundHalfEven, want: "1.00"},
		{input: "1.015", min: 2, max: 2, mode: RoundHalfEven, want: "1.02"},
		{input: "0.6", min: 0, max: 0, mode: RoundHalfEven, want: "1"},
		{input: "0.06", min: 0, max: 0, mode: RoundHalfEven, want: "0"},
		{input: "0.004", min: 1, max: 1, mode: RoundUp, want: "0.1"},
		{input: "2", min: 2, max: 4, mode: RoundHalfEven, want: "2.00"},
	}

	for _, tc := range tests {
		t.Run(tc.input+"/"+tc.want, func(t *testing.T) {
			q, err := ParseQuantity(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			q.RoundToFractionDigits(tc.min, tc.max, tc.mode)
			if got := q.String(); got != tc.want {
				t.Errorf("RoundToFractionDigits(%q, %d, %d) = %q; want %q",
					tc.input, tc.min, tc.max, got, tc.want)
			}
		})
	}
}

func TestRoundingMarksInexact(t *testing.T) {
	q, err := ParseQuantity("1.234")
	if err != nil {
		t.Fatal(err)
	}
	q.RoundToSignificantDigits(1, 2, RoundHalfEven)
	if !q.Inexact() {
		t.Error("discarded nonzero digits but Inexact() = false")
	}
}

func TestPluralOperands(t *testing.T) {
	tests := []struct {
		input string
		i     uint64
		v     int
		f     int64
		tt    int64
	}{
		{input: "1", i: 1, v: 0, f: 0, tt: 0},
		{input: "1.0", i: 1, v: 1, f: 0, tt: 0},
		{input: "1.5", i: 1, v: 1, f: 5, tt: 5},
		{input: "1.50", i: 1, v: 2, f: 50, tt: 5},
		{input: "123.450", i: 123, v: 3, f: 450, tt: 45},
		{input: "-2.3", i: 2, v: 1, f: 3, tt: 3},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			q, err := ParseQuantity(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			op := q.PluralOperands()
			if op.I != tc.i || op.V != tc.v || op.F != tc.f || op.T != tc.tt {
				t.Errorf("PluralOperands(%q) = i=%d v=%d f=%d t=%d; want i=%d v=%d f=%d t=%d",
					tc.input, op.I, op.V, op.F, op.T, tc.i, tc.v, tc.f, tc.tt)
			}
		})
	}
}
