package lunar

import "time"

// PhaseName is one of the eight canonical lunar phase labels.
type PhaseName string

const (
	NewMoon        PhaseName = "New Moon"
	WaxingCrescent PhaseName = "Waxing Crescent"
	FirstQuarter   PhaseName = "First Quarter"
	WaxingGibbous  PhaseName = "Waxing Gibbous"
	FullMoon       PhaseName = "Full Moon"
	WaningGibbous  PhaseName = "Waning Gibbous"
	LastQuarter    PhaseName = "Last Quarter"
	WaningCrescent PhaseName = "Waning Crescent"
)

// AllPhaseNames lists the phases in cycle order starting at new moon.
func AllPhaseNames() []PhaseName {
	return []PhaseName{
		NewMoon, WaxingCrescent, FirstQuarter, WaxingGibbous,
		FullMoon, WaningGibbous, LastQuarter, WaningCrescent,
	}
}

// Sample is the lunar phase for one calendar date.
type Sample struct {
	Date          time.Time
	PhaseFraction float64
	Illumination  float64
	PhaseName     PhaseName
}

// PhaseRequest asks for the phase of a single date. Empty Date means today.
type PhaseRequest struct {
	Date string `json:"date" form:"date"`
}

// CalendarRequest asks for a month grid. Empty Month means the current month.
type CalendarRequest struct {
	Month string `json:"month" form:"month"`
	Days  int    `json:"days" form:"days"`
}

// Day is the serialized form of a Sample.
type Day struct {
	Date                string    `json:"date"`
	PhaseFraction       float64   `json:"phaseFraction"`
	Illumination        float64   `json:"illumination"`
	IlluminationPercent int       `json:"illuminationPercent"`
	PhaseName           PhaseName `json:"phaseName"`
}

// CalendarResponse carries a month worth of phases.
type CalendarResponse struct {
	Month string `json:"month"`
	Days  []Day  `json:"days"`
	Today *Day   `json:"today,omitempty"`
}

// Config wires runtime settings for the lunar domain.
type Config struct {
	Timezone     *time.Location
	CalendarDays int
}
