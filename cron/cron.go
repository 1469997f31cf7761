package cron

import (
	"fmt"
	"strings"
	"unicode"
)

// scheduleFieldCount is the number of value fields preceding the command.
const scheduleFieldCount = 5

// Schedule is one fully parsed crontab line: the explicit value set of each
// of the five fields plus the command, kept verbatim. Value sets are
// deduplicated and strictly ascending. A Schedule is immutable after Parse.
type Schedule struct {
	Minute     []int
	Hour       []int
	DayOfMonth []int
	Month      []int
	DayOfWeek  []int
	Command    string
}

// Parse parses a crontab line of the form
//
//	<minute> <hour> <day of month> <month> <day of week> <command>
//
// and expands every field into its explicit value set. The command is
// everything after the fifth field, kept verbatim, so commands with embedded
// whitespace survive intact. Returns ErrMalformedSchedule when the line does
// not carry all six parts, or a wrapped ErrInvalidField naming the offending
// field when a token fails to expand.
func Parse(line string) (*Schedule, error) {
	fields, command, err := splitLine(line)
	if err != nil {
		return nil, err
	}

	minutes, err := ExpandField(fields[0], MinuteSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid minute field: %w", err)
	}

	hours, err := ExpandField(fields[1], HourSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid hour field: %w", err)
	}

	doms, err := ExpandField(fields[2], DayOfMonthSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid day of month field: %w", err)
	}

	months, err := ExpandField(fields[3], MonthSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid month field: %w", err)
	}

	dows, err := ExpandField(fields[4], DayOfWeekSpec)
	if err != nil {
		return nil, fmt.Errorf("invalid day of week field: %w", err)
	}

	return &Schedule{
		Minute:     minutes,
		Hour:       hours,
		DayOfMonth: doms,
		Month:      months,
		DayOfWeek:  dows,
		Command:    command,
	}, nil
}

// splitLine peels the five field tokens off the front of the line and returns
// the trimmed remainder as the command. Splitting stops after the fifth
// token, so the command's own whitespace is preserved.
func splitLine(line string) ([scheduleFieldCount]string, string, error) {
	var fields [scheduleFieldCount]string

	rest := strings.TrimSpace(line)
	if rest == "" {
		return fields, "", fmt.Errorf("%w: empty schedule line", ErrMalformedSchedule)
	}

	for i := range fields {
		cut := strings.IndexFunc(rest, unicode.IsSpace)
		if cut < 0 {
			return fields, "", fmt.Errorf("%w: expected %d fields followed by a command, got %d parts",
				ErrMalformedSchedule, scheduleFieldCount, i+1)
		}

		fields[i] = rest[:cut]
		rest = strings.TrimLeftFunc(rest[cut:], unicode.IsSpace)
	}

	if rest == "" {
		return fields, "", fmt.Errorf("%w: missing command after the %d schedule fields",
			ErrMalformedSchedule, scheduleFieldCount)
	}

	return fields, rest, nil
}
