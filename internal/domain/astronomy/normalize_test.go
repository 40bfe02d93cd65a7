package astronomy

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/celestial/pkg/errors"
)

func TestNormalizeFullPayload(t *testing.T) {
	record, err := Normalize(samplePayload())
	require.NoError(t, err)

	require.Equal(t, Record{
		Location: Location{
			City:        "Mountain View",
			Region:      "California",
			Country:     "United States",
			Label:       "Mountain View, California, United States",
			Coordinates: Coordinates{Lat: 37.42240, Lng: -122.08421},
		},
		Sun: Sun{
			Sunrise:   "06:52",
			Sunset:    "17:44",
			SolarNoon: "12:18",
			DayLength: "10:52",
			Altitude:  -3.85,
			Azimuth:   251.12,
			Distance:  148174538.2,
			Status:    "-",
		},
		Moon: Moon{
			Phase:            "Waxing Gibbous",
			Illumination:     42.5,
			Moonrise:         "13:01",
			Moonset:          "-:-",
			Altitude:         41.4,
			Azimuth:          166.2,
			Distance:         380235.9,
			ParallacticAngle: -9.1,
			Angle:            114.7,
			Status:           "-",
		},
		Timestamp: Timestamp{
			Date:        "2024-11-08",
			CurrentTime: "17:29:39.081",
		},
	}, record)
}

func TestNormalizeDefaultsForMissingPlace(t *testing.T) {
	raw := RawResponse{Location: RawLocation{Latitude: "1.29", Longitude: "103.85"}}

	record, err := Normalize(raw)
	require.NoError(t, err)
	require.Equal(t, "Unknown", record.Location.City)
	require.Equal(t, "Unknown", record.Location.Country)
	require.Equal(t, "", record.Location.Region)
	require.Equal(t, Coordinates{Lat: 1.29, Lng: 103.85}, record.Location.Coordinates)
	require.Equal(t, 0.0, record.Moon.Illumination)
	require.Equal(t, "", record.Moon.Phase)
	require.Equal(t, "", record.Sun.Sunrise)
}

func TestNormalizeMalformedCoordinate(t *testing.T) {
	cases := []struct {
		name string
		lat  string
		lng  string
	}{
		{name: "latitude text", lat: "not-a-number", lng: "10"},
		{name: "longitude text", lat: "10", lng: "east"},
		{name: "empty latitude", lat: "", lng: "10"},
		{name: "nan", lat: "NaN", lng: "10"},
		{name: "infinite", lat: "10", lng: "+Inf"},
		{name: "overflow", lat: "1e400", lng: "10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := samplePayload()
			raw.Location.Latitude = tc.lat
			raw.Location.Longitude = tc.lng

			record, err := Normalize(raw)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrMalformedCoordinate))
			require.True(t, apperrors.IsCode(err, apperrors.CodeMalformedCoordinate))
			require.Equal(t, Record{}, record)
		})
	}
}

func TestNormalizeTrimsCoordinateWhitespace(t *testing.T) {
	raw := samplePayload()
	raw.Location.Latitude = " -33.8688 "

	record, err := Normalize(raw)
	require.NoError(t, err)
	require.Equal(t, -33.8688, record.Location.Coordinates.Lat)
}

func TestNormalizeIllumination(t *testing.T) {
	cases := map[string]float64{
		"-42.5":  42.5,
		"42.5":   42.5,
		"0":      0,
		"-0":     0,
		"":       0,
		"bright": 0,
		"NaN":    0,
		" 99.1 ": 99.1,
	}
	for in, want := range cases {
		require.Equal(t, want, parseIllumination(in), "input %q", in)
	}
}

func TestFormatMoonPhaseKnownCodes(t *testing.T) {
	cases := map[string]string{
		"NEW_MOON":        "New Moon",
		"WAXING_CRESCENT": "Waxing Crescent",
		"FIRST_QUARTER":   "First Quarter",
		"WAXING_GIBBOUS":  "Waxing Gibbous",
		"FULL_MOON":       "Full Moon",
		"WANING_GIBBOUS":  "Waning Gibbous",
		"LAST_QUARTER":    "Last Quarter",
		"WANING_CRESCENT": "Waning Crescent",
	}
	for code, want := range cases {
		require.Equal(t, want, FormatMoonPhase(code))
	}
}

func TestFormatMoonPhaseFallback(t *testing.T) {
	require.Equal(t, "Super Blood Moon", FormatMoonPhase("SUPER_BLOOD_MOON"))
	require.Equal(t, "Blue Moon", FormatMoonPhase("blue_moon"))
	require.Equal(t, "Eclipse", FormatMoonPhase("ECLIPSE"))
	require.Equal(t, "", FormatMoonPhase(""))
}

func TestFormatMoonPhaseFallbackIsWordAware(t *testing.T) {
	// apostrophes and digits stay inside their word
	require.Equal(t, "Hunter's Moon", FormatMoonPhase("HUNTER'S_MOON"))
	require.Equal(t, "2nd Full Moon", FormatMoonPhase("2ND_FULL_MOON"))
}

func samplePayload() RawResponse {
	return RawResponse{
		IP: "8.8.8.8",
		Location: RawLocation{
			Latitude:       "37.42240",
			Longitude:      "-122.08421",
			City:           "Mountain View",
			StateProv:      "California",
			CountryName:    "United States",
			LocationString: "Mountain View, California, United States",
		},
		Astronomy: RawAstronomy{
			Date:                       "2024-11-08",
			CurrentTime:                "17:29:39.081",
			Sunrise:                    "06:52",
			Sunset:                     "17:44",
			SunStatus:                  "-",
			SolarNoon:                  "12:18",
			DayLength:                  "10:52",
			SunAltitude:                -3.85,
			SunDistance:                148174538.2,
			SunAzimuth:                 251.12,
			Moonrise:                   "13:01",
			Moonset:                    "-:-",
			MoonStatus:                 "-",
			MoonAltitude:               41.4,
			MoonDistance:               380235.9,
			MoonAzimuth:                166.2,
			MoonParallacticAngle:       -9.1,
			MoonPhase:                  "WAXING_GIBBOUS",
			MoonIlluminationPercentage: "-42.5",
			MoonAngle:                  114.7,
		},
	}
}
