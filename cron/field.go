package cron

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// splitParts is the number of parts when splitting step or range expressions.
const splitParts = 2

// FieldSpec describes one schedule field: its report label, the inclusive
// range of values it accepts, and an optional alias table mapping lowercase
// three-letter names to values. The five package-level instances are built
// once and never mutated.
type FieldSpec struct {
	Name    string
	Min     int
	Max     int
	Aliases map[string]int

	// Question reports whether the field accepts the "?" literal, which
	// stands for "no specific value" and expands to the full range.
	Question bool

	// Weekday reports whether the field's character set reserves "W".
	// The modifier itself is not implemented; tokens carrying it are
	// rejected with ErrInvalidField rather than silently mis-expanded.
	Weekday bool
}

// The specification for each schedule field, in crontab order.
var (
	MinuteSpec = FieldSpec{Name: "minute", Min: 0, Max: 59}
	HourSpec   = FieldSpec{Name: "hour", Min: 0, Max: 23}

	DayOfMonthSpec = FieldSpec{Name: "day of month", Min: 1, Max: 31, Question: true, Weekday: true}

	MonthSpec = FieldSpec{Name: "month", Min: 1, Max: 12, Aliases: map[string]int{
		"jan": 1,
		"feb": 2,
		"mar": 3,
		"apr": 4,
		"may": 5,
		"jun": 6,
		"jul": 7,
		"aug": 8,
		"sep": 9,
		"oct": 10,
		"nov": 11,
		"dec": 12,
	}}

	DayOfWeekSpec = FieldSpec{Name: "day of week", Min: 1, Max: 7, Question: true, Aliases: map[string]int{
		"mon": 1,
		"tue": 2,
		"wed": 3,
		"thu": 4,
		"fri": 5,
		"sat": 6,
		"sun": 7,
	}}
)

// ExpandField expands a single field token into the ordered set of values it
// denotes. A token is either "?" (where the field permits it), a single atom,
// or a comma-separated list of atoms; each atom may be a wildcard, a value,
// an alias, a range, or any of those combined with a "/step" suffix. The
// result is deduplicated and strictly ascending, with every value inside
// [spec.Min, spec.Max]. A malformed or out-of-range token fails the whole
// expansion with ErrInvalidField.
func ExpandField(token string, spec FieldSpec) ([]int, error) {
	if token == "" {
		return nil, fmt.Errorf("%w: empty %s field", ErrInvalidField, spec.Name)
	}

	// "?" is only meaningful as the whole token, not as a list element.
	if token == "?" && spec.Question {
		return rangeValues(spec.Min, spec.Max, 1), nil
	}

	var result []int

	for _, atom := range strings.Split(token, ",") {
		vals, err := expandAtom(atom, spec)
		if err != nil {
			return nil, err
		}

		result = append(result, vals...)
	}

	return deduplicate(result), nil
}

// expandAtom expands one comma-separated segment of a field token.
func expandAtom(atom string, spec FieldSpec) ([]int, error) {
	if atom == "" {
		return nil, fmt.Errorf("%w: empty list element in %s field", ErrInvalidField, spec.Name)
	}

	if spec.Weekday && strings.ContainsAny(atom, "Ww") {
		return nil, fmt.Errorf("%w: the W modifier is not supported in the %s field", ErrInvalidField, spec.Name)
	}

	stepParts := strings.SplitN(atom, "/", splitParts)
	hasStep := len(stepParts) == splitParts

	step := 1

	if hasStep {
		s, err := parseStep(stepParts[1], spec)
		if err != nil {
			return nil, err
		}

		step = s
	}

	rangePart := stepParts[0]

	var rangeStart, rangeEnd int

	switch {
	case rangePart == "*":
		rangeStart = spec.Min
		rangeEnd = spec.Max
	case strings.Contains(rangePart, "-"):
		lo, hi, err := parseRange(rangePart, spec)
		if err != nil {
			return nil, err
		}

		rangeStart = lo
		rangeEnd = hi
	default:
		val, err := resolveValue(rangePart, spec)
		if err != nil {
			return nil, err
		}

		if !hasStep {
			return []int{val}, nil
		}

		// "A/N" runs from A to the top of the field's range.
		rangeStart = val
		rangeEnd = spec.Max
	}

	return rangeValues(rangeStart, rangeEnd, step), nil
}

// resolveValue resolves a single atom endpoint: alias lookup first,
// case-insensitive, then integer parse, then a bounds check.
func resolveValue(raw string, spec FieldSpec) (int, error) {
	if val, ok := spec.Aliases[strings.ToLower(raw)]; ok {
		return val, nil
	}

	val, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: unrecognized value %q in %s field", ErrInvalidField, raw, spec.Name)
	}

	if val < spec.Min || val > spec.Max {
		return 0, fmt.Errorf("%w: %s value %d out of bounds [%d, %d]", ErrInvalidField, spec.Name, val, spec.Min, spec.Max)
	}

	return val, nil
}

// parseStep parses and validates a step value, ensuring it is a positive integer.
func parseStep(raw string, spec FieldSpec) (int, error) {
	step, err := strconv.Atoi(raw)
	if err != nil || step <= 0 {
		return 0, fmt.Errorf("%w: invalid step %q in %s field", ErrInvalidField, raw, spec.Name)
	}

	return step, nil
}

// parseRange parses a "lo-hi" range expression. Both endpoints go through
// alias resolution, so ranges like "JAN-JUN" or "MON-FRI" are accepted.
func parseRange(rangePart string, spec FieldSpec) (int, int, error) {
	bounds := strings.SplitN(rangePart, "-", splitParts)

	lo, err := resolveValue(bounds[0], spec)
	if err != nil {
		return 0, 0, err
	}

	hi, err := resolveValue(bounds[1], spec)
	if err != nil {
		return 0, 0, err
	}

	if lo > hi {
		return 0, 0, fmt.Errorf("%w: %s range %d-%d runs backwards", ErrInvalidField, spec.Name, lo, hi)
	}

	return lo, hi, nil
}

// rangeValues generates every value from start to end inclusive, step apart.
func rangeValues(start, end, step int) []int {
	var vals []int
	for v := start; v <= end; v += step {
		vals = append(vals, v)
	}

	return vals
}

func deduplicate(vals []int) []int {
	seen := make(map[int]bool, len(vals))
	result := make([]int, 0, len(vals))

	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}

	slices.Sort(result)

	return result
}
