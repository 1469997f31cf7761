// Package cron parses crontab lines into their explicit field value sets.
//
// It expands wildcards, ranges, steps, lists, and month/weekday names across
// the minute, hour, day-of-month, month, and day-of-week fields, keeping the
// trailing command verbatim. Parsing is pure and reentrant: field
// specifications are read-only after package initialization and every call
// returns freshly allocated results.
package cron
