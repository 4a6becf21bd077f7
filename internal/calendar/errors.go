package calendar

import (
	"fmt"
	"time"
)

// InvalidRangeError reports a date range whose start lies after its end.
// Detected once at DateRange construction, never per iteration step.
type InvalidRangeError struct {
	Start time.Time
	End   time.Time
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("start date %s is after end date %s",
		e.Start.Format("2006-01-02"), e.End.Format("2006-01-02"))
}

// OverlayError reports a failure in an import overlay. Op is "load" or
// "plot". A load failure is fatal since the calendar height is undetermined;
// a plot failure leaves the already built grid valid and the caller decides
// whether to persist it.
type OverlayError struct {
	Importer string
	Op       string
	Err      error
}

func (e *OverlayError) Error() string {
	return fmt.Sprintf("importer %s: %s: %v", e.Importer, e.Op, e.Err)
}

func (e *OverlayError) Unwrap() error {
	return e.Err
}
