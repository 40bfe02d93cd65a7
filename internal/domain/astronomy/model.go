package astronomy

// RawResponse is the upstream astronomy payload before normalization.
type RawResponse struct {
	IP        string
	Location  RawLocation
	Astronomy RawAstronomy
}

// RawLocation carries coordinates as the numeric strings the upstream sends.
type RawLocation struct {
	Latitude       string
	Longitude      string
	City           string
	StateProv      string
	CountryName    string
	LocationString string
}

// RawAstronomy mirrors the upstream astronomy block.
type RawAstronomy struct {
	Date        string
	CurrentTime string

	Sunrise     string
	Sunset      string
	SunStatus   string
	SolarNoon   string
	DayLength   string
	SunAltitude float64
	SunDistance float64
	SunAzimuth  float64

	Moonrise                   string
	Moonset                    string
	MoonStatus                 string
	MoonAltitude               float64
	MoonDistance               float64
	MoonAzimuth                float64
	MoonParallacticAngle       float64
	MoonPhase                  string
	MoonIlluminationPercentage string
	MoonAngle                  float64
}

// Record is the canonical astronomy snapshot served to clients.
type Record struct {
	Location  Location  `json:"location"`
	Sun       Sun       `json:"sun"`
	Moon      Moon      `json:"moon"`
	Timestamp Timestamp `json:"timestamp"`
}

// Location describes where the snapshot was computed.
type Location struct {
	City        string      `json:"city"`
	Region      string      `json:"region"`
	Country     string      `json:"country"`
	Label       string      `json:"label,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
}

// Coordinates are decimal degrees.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Sun holds solar timings and geometry. Times are upstream strings.
type Sun struct {
	Sunrise   string  `json:"sunrise"`
	Sunset    string  `json:"sunset"`
	SolarNoon string  `json:"solarNoon"`
	DayLength string  `json:"dayLength"`
	Altitude  float64 `json:"altitude"`
	Azimuth   float64 `json:"azimuth"`
	Distance  float64 `json:"distance"`
	Status    string  `json:"status"`
}

// Moon holds lunar timings, geometry and phase.
type Moon struct {
	Phase            string  `json:"phase"`
	Illumination     float64 `json:"illumination"`
	Moonrise         string  `json:"moonrise"`
	Moonset          string  `json:"moonset"`
	Altitude         float64 `json:"altitude"`
	Azimuth          float64 `json:"azimuth"`
	Distance         float64 `json:"distance"`
	ParallacticAngle float64 `json:"parallacticAngle"`
	Angle            float64 `json:"angle"`
	Status           string  `json:"status"`
}

// Timestamp is the upstream reported date and local time.
type Timestamp struct {
	Date        string `json:"date"`
	CurrentTime string `json:"currentTime"`
}

// QueryMode selects how the upstream resolves the observer location.
type QueryMode string

const (
	QueryByIP          QueryMode = "ip"
	QueryByCoordinates QueryMode = "coordinates"
	QueryByLocation    QueryMode = "location"
)

// Query identifies the observer and optional date of a lookup.
// An empty IP in QueryByIP mode lets the upstream use the caller address.
type Query struct {
	Mode      QueryMode
	Latitude  float64
	Longitude float64
	Location  string
	IP        string
	Date      string
}
