package astronomy

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/yanqian/celestial/pkg/errors"
)

// ErrMalformedCoordinate reports a latitude or longitude that is not a finite number.
var ErrMalformedCoordinate = errors.New("malformed coordinate")

const unknownPlace = "Unknown"

var moonPhaseNames = map[string]string{
	"NEW_MOON":        "New Moon",
	"WAXING_CRESCENT": "Waxing Crescent",
	"FIRST_QUARTER":   "First Quarter",
	"WAXING_GIBBOUS":  "Waxing Gibbous",
	"FULL_MOON":       "Full Moon",
	"WANING_GIBBOUS":  "Waning Gibbous",
	"LAST_QUARTER":    "Last Quarter",
	"WANING_CRESCENT": "Waning Crescent",
}

// Normalize reshapes an upstream payload into a Record.
// Only unparseable coordinates fail; every other field degrades to a fallback.
func Normalize(raw RawResponse) (Record, error) {
	lat, err := parseCoordinate("latitude", raw.Location.Latitude)
	if err != nil {
		return Record{}, err
	}
	lng, err := parseCoordinate("longitude", raw.Location.Longitude)
	if err != nil {
		return Record{}, err
	}

	loc, astro := raw.Location, raw.Astronomy
	return Record{
		Location: Location{
			City:        orDefault(loc.City, unknownPlace),
			Region:      loc.StateProv,
			Country:     orDefault(loc.CountryName, unknownPlace),
			Label:       loc.LocationString,
			Coordinates: Coordinates{Lat: lat, Lng: lng},
		},
		Sun: Sun{
			Sunrise:   astro.Sunrise,
			Sunset:    astro.Sunset,
			SolarNoon: astro.SolarNoon,
			DayLength: astro.DayLength,
			Altitude:  astro.SunAltitude,
			Azimuth:   astro.SunAzimuth,
			Distance:  astro.SunDistance,
			Status:    astro.SunStatus,
		},
		Moon: Moon{
			Phase:            FormatMoonPhase(astro.MoonPhase),
			Illumination:     parseIllumination(astro.MoonIlluminationPercentage),
			Moonrise:         astro.Moonrise,
			Moonset:          astro.Moonset,
			Altitude:         astro.MoonAltitude,
			Azimuth:          astro.MoonAzimuth,
			Distance:         astro.MoonDistance,
			ParallacticAngle: astro.MoonParallacticAngle,
			Angle:            astro.MoonAngle,
			Status:           astro.MoonStatus,
		},
		Timestamp: Timestamp{
			Date:        astro.Date,
			CurrentTime: astro.CurrentTime,
		},
	}, nil
}

// FormatMoonPhase maps an upstream phase code to its display name.
// Codes outside the known table are title-cased with underscores as spaces.
func FormatMoonPhase(code string) string {
	if name, ok := moonPhaseNames[code]; ok {
		return name
	}
	spaced := strings.ToLower(strings.ReplaceAll(code, "_", " "))
	// a Caser is stateful, so one is built per call
	return cases.Title(language.Und).String(spaced)
}

func parseCoordinate(field, value string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.Wrap(
			apperrors.CodeMalformedCoordinate,
			fmt.Sprintf("%s %q is not a number", field, value),
			ErrMalformedCoordinate,
		)
	}
	return v, nil
}

func parseIllumination(value string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Abs(v)
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
