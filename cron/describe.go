package cron

import (
	"strconv"
	"strings"
)

// Describe renders the schedule as a human-readable report: one line per
// field in crontab order, each formatted as "<label>: <values>" with the
// expanded values space-separated and ascending, and the command verbatim
// on the final line.
func (s *Schedule) Describe() string {
	var b strings.Builder

	writeField(&b, MinuteSpec.Name, s.Minute)
	writeField(&b, HourSpec.Name, s.Hour)
	writeField(&b, DayOfMonthSpec.Name, s.DayOfMonth)
	writeField(&b, MonthSpec.Name, s.Month)
	writeField(&b, DayOfWeekSpec.Name, s.DayOfWeek)

	b.WriteString("command: ")
	b.WriteString(s.Command)

	return b.String()
}

func writeField(b *strings.Builder, label string, values []int) {
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(joinValues(values))
	b.WriteByte('\n')
}

// joinValues formats an expanded value set as space-separated integers.
func joinValues(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
