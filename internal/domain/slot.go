package domain

import (
	"time"

	"github.com/m04kA/FitClub-BookingService/pkg/types"
)

// SlotRef identifies a concrete bookable slot: a date plus the start time of
// a template window on that date. Replaces encoded string identifiers - the
// two fields are carried separately and never parsed out of a string.
type SlotRef struct {
	Date      time.Time
	StartTime types.TimeString
}
