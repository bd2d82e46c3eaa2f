package compact

import "testing"

func operandsFor(t *testing.T, input string) PluralOperands {
	t.Helper()
	q, err := ParseQuantity(input)
	if err != nil {
		t.Fatalf("ParseQuantity(%q): %v", input, err)
	}
	return q.PluralOperands()
}

func TestPluralRuleSetEvaluateEnglish(t *testing.T) {
	set := &PluralRuleSet{Locale: "en", Rules: []PluralRule{
		{Category: PluralOne, Condition: "i = 1 and v = 0"},
	}}

	tests := []struct {
		input string
		want  PluralCategory
	}{
		{input: "1", want: PluralOne},
		{input: "1.0", want: PluralOther},
		{input: "2", want: PluralOther},
		{input: "0", want: PluralOther},
	}

	for _, tc := range tests {
		if got := set.Evaluate(operandsFor(t, tc.input)); got != tc.want {
			t.Errorf("en Evaluate(%s) = %s; want %s", tc.input, got, tc.want)
		}
	}
}

func TestPluralRuleSetEvaluateFrench(t *testing.T) {
	set := &PluralRuleSet{Locale: "fr", Rules: []PluralRule{
		{Category: PluralOne, Condition: "i = 0,1"},
	}}

	tests := []struct {
		input string
		want  PluralCategory
	}{
		{input: "0", want: PluralOne},
		{input: "1", want: PluralOne},
		{input: "1.5", want: PluralOne},
		{input: "2", want: PluralOther},
	}

	for _, tc := range tests {
		if got := set.Evaluate(operandsFor(t, tc.input)); got != tc.want {
			t.Errorf("fr Evaluate(%s) = %s; want %s", tc.input, got, tc.want)
		}
	}
}

func TestPluralRuleSetEvaluatePolish(t *testing.T) {
	set := &PluralRuleSet{Locale: "pl", Rules: []PluralRule{
		{Category: PluralOne, Condition: "i = 1 and v = 0"},
		{Category: PluralFew, Condition: "v = 0 and i % 10 = 2..4 and i % 100 != 12..14"},
		{Category: PluralMany, Condition: "v = 0 and i != 1 and i % 10 = 0..1 or v = 0 and i % 10 = 5..9 or v = 0 and i % 100 = 12..14"},
	}}

	tests := []struct {
		input string
		want  PluralCategory
	}{
		{input: "1", want: PluralOne},
		{input: "2", want: PluralFew},
		{input: "4", want: PluralFew},
		{input: "5", want: PluralMany},
		{input: "12", want: PluralMany},
		{input: "13", want: PluralMany},
		{input: "22", want: PluralFew},
		{input: "112", want: PluralMany},
		{input: "1.5", want: PluralOther},
	}

	for _, tc := range tests {
		if got := set.Evaluate(operandsFor(t, tc.input)); got != tc.want {
			t.Errorf("pl Evaluate(%s) = %s; want %s", tc.input, got, tc.want)
		}
	}
}

func TestPluralRuleSetCompileRejectsMalformed(t *testing.T) {
	tests := []string{
		"",
		"x = 1",
		"i == ",
		"i = 1..",
		"i % = 2",
	}

	for _, condition := range tests {
		set := &PluralRuleSet{Locale: "test", Rules: []PluralRule{
			{Category: PluralOne, Condition: condition},
		}}
		if err := set.Compile(); err == nil {
			t.Errorf("Compile(%q) = nil; want error", condition)
		}
	}
}

func TestPluralRuleSetNilIsOther(t *testing.T) {
	var set *PluralRuleSet
	if got := set.Evaluate(operandsFor(t, "1")); got != PluralOther {
		t.Errorf("nil set Evaluate = %s; want other", got)
	}
}

func TestPluralRuleSetCategories(t *testing.T) {
	set := &PluralRuleSet{Locale: "pl", Rules: []PluralRule{
		{Category: PluralOne, Condition: "i = 1 and v = 0"},
		{Category: PluralFew, Condition: "v = 0 and i % 10 = 2..4"},
		{Category: PluralOne, Condition: "n = 1"},
	}}
	got := set.Categories()
	if len(got) != 2 || got[0] != PluralOne || got[1] != PluralFew {
		t.Errorf("Categories() = %v; want [one few]", got)
	}
}
