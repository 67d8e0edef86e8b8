package schedule

import "errors"

var ErrScheduleNotFound = errors.New("mentor schedule not found")

var ErrInvalidWindow = errors.New("availableTo must be after availableFrom")
