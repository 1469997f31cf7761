package cron

import "errors"

// ErrMalformedSchedule is returned when a schedule line does not split into
// the five cron fields followed by a command.
var ErrMalformedSchedule = errors.New("malformed cron schedule")

// ErrInvalidField is returned when a field token does not match the accepted
// grammar, an alias or integer fails to resolve, a resolved value falls
// outside the field's range, or a step value is not a positive integer.
var ErrInvalidField = errors.New("invalid cron field")
