package compact

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
)

// PluralOperands are the inputs plural conditions are evaluated against,
// derived from the digits a value displays rather than its raw double:
//
//	N absolute numeric value
//	I integer part ignoring the sign
//	V count of visible fraction digits, trailing zeros included
//	F visible fraction digits as an integer
//	T fraction digits with trailing zeros stripped
type PluralOperands struct {
	N float64
	I uint64
	V int
	F int64
	T int64
}

// PluralRule pairs a category with a CLDR-syntax condition such as
// "i = 1 and v = 0" or "n % 10 = 2..4 and n % 100 != 12..14".
type PluralRule struct {
	Category  PluralCategory `json:"category" yaml:"category"`
	Condition string         `json:"condition" yaml:"condition"`
}

// PluralRuleSet holds the cardinal rules for one locale. Rules are checked
// in order; a value matching none of them is "other".
type PluralRuleSet struct {
	Locale string       `json:"locale" yaml:"locale"`
	Rules  []PluralRule `json:"rules" yaml:"rules"`

	once     sync.Once
	compiled []compiledRule
	compErr  error
}

type compiledRule struct {
	category PluralCategory
	// Disjunction of conjunctions of relations.
	groups [][]relation
}

type relation struct {
	operand byte // one of n i v f t
	modulo  float64
	negated bool
	ranges  []valueRange
}

type valueRange struct {
	lo, hi float64
}

// Compile parses every condition in the set. It reports the first malformed
// condition; a nil set compiles trivially.
func (set *PluralRuleSet) Compile() error {
	if set == nil {
		return nil
	}
	set.once.Do(func() {
		set.compiled = make([]compiledRule, 0, len(set.Rules))
		for _, rule := range set.Rules {
			if rule.Category == "" || rule.Category == PluralOther {
				continue
			}
			groups, err := parseCondition(rule.Condition)
			if err != nil {
				set.compErr = fmt.Errorf("compact: plural rule %q/%s: %w", set.Locale, rule.Category, err)
				return
			}
			set.compiled = append(set.compiled, compiledRule{category: rule.Category, groups: groups})
		}
	})
	return set.compErr
}

// Evaluate returns the category the operands fall into. Malformed rule sets
// degrade to "other" so formatting never fails on plural data; Compile is
// the place where corpus validation surfaces them.
func (set *PluralRuleSet) Evaluate(op PluralOperands) PluralCategory {
	if set == nil {
		return PluralOther
	}
	if err := set.Compile(); err != nil {
		return PluralOther
	}
	for _, rule := range set.compiled {
		if matchCondition(rule.groups, op) {
			return rule.category
		}
	}
	return PluralOther
}

// Categories lists the distinct categories named by the set, in rule order.
func (set *PluralRuleSet) Categories() []PluralCategory {
	if set == nil || len(set.Rules) == 0 {
		return nil
	}
	seen := make(map[PluralCategory]struct{}, len(set.Rules))
	out := make([]PluralCategory, 0, len(set.Rules))
	for _, rule := range set.Rules {
		if rule.Category == "" {
			continue
		}
		if _, ok := seen[rule.Category]; ok {
			continue
		}
		seen[rule.Category] = struct{}{}
		out = append(out, rule.Category)
	}
	return out
}

func matchCondition(groups [][]relation, op PluralOperands) bool {
	for _, group := range groups {
		all := true
		for _, rel := range group {
			if !rel.match(op) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	return false
}

func (r relation) match(op PluralOperands) bool {
	v := operandValue(r.operand, op)
	if r.modulo > 0 {
		v = math.Mod(v, r.modulo)
	}
	in := false
	for _, rng := range r.ranges {
		if rng.lo == rng.hi {
			if v == rng.lo {
				in = true
				break
			}
			continue
		}
		// CLDR ranges only match integral values.
		if v >= rng.lo && v <= rng.hi && v == math.Trunc(v) {
			in = true
			break
		}
	}
	return in != r.negated
}

func operandValue(operand byte, op PluralOperands) float64 {
	switch operand {
	case 'n':
		return op.N
	case 'i':
		return float64(op.I)
	case 'v':
		return float64(op.V)
	case 'f':
		return float64(op.F)
	case 't':
		return float64(op.T)
	default:
		return 0
	}
}

// parseCondition understands the CLDR cardinal-rule subset the shipped
// corpora use: or/and grouping, optional "% value" on the operand, "=" and
// "!=" against comma-separated values and "a..b" ranges.
func parseCondition(input string) ([][]relation, error) {
	condition := strings.TrimSpace(input)
	if condition == "" {
		return nil, fmt.Errorf("empty condition")
	}

	var groups [][]relation
	for _, orPart := range strings.Split(condition, " or ") {
		var group []relation
		for _, andPart := range strings.Split(orPart, " and ") {
			rel, err := parseRelation(andPart)
			if err != nil {
				return nil, err
			}
			group = append(group, rel)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

func parseRelation(input string) (relation, error) {
	var rel relation

	text := strings.TrimSpace(input)
	op := "="
	idx := strings.Index(text, "!=")
	if idx >= 0 {
		op = "!="
	} else {
		idx = strings.Index(text, "=")
	}
	if idx < 0 {
		return rel, fmt.Errorf("relation %q: missing comparator", input)
	}
	rel.negated = op == "!="

	left := strings.TrimSpace(text[:idx])
	right := strings.TrimSpace(text[idx+len(op):])

	if modIdx := strings.IndexByte(left, '%'); modIdx >= 0 {
		mod, err := strconv.ParseFloat(strings.TrimSpace(left[modIdx+1:]), 64)
		if err != nil {
			return rel, fmt.Errorf("relation %q: bad modulo", input)
		}
		rel.modulo = mod
		left = strings.TrimSpace(left[:modIdx])
	}
	if len(left) != 1 || strings.IndexByte("nivft", left[0]) < 0 {
		return rel, fmt.Errorf("relation %q: unknown operand %q", input, left)
	}
	rel.operand = left[0]

	for _, part := range strings.Split(right, ",") {
		part = strings.TrimSpace(part)
		if lo, hi, ok := strings.Cut(part, ".."); ok {
			a, errA := strconv.ParseFloat(strings.TrimSpace(lo), 64)
			b, errB := strconv.ParseFloat(strings.TrimSpace(hi), 64)
			if errA != nil || errB != nil || b < a {
				return rel, fmt.Errorf("relation %q: bad range %q", input, part)
			}
			rel.ranges = append(rel.ranges, valueRange{lo: a, hi: b})
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return rel, fmt.Errorf("relation %q: bad value %q", input, part)
		}
		rel.ranges = append(rel.ranges, valueRange{lo: v, hi: v})
	}
	if len(rel.ranges) == 0 {
		return rel, fmt.Errorf("relation %q: empty range list", input)
	}
	return rel, nil
}
