package ipgeolocation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/yanqian/celestial/internal/domain/astronomy"
)

const (
	defaultBaseURL = "https://api.ipgeolocation.io/v2/astronomy"
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 1 << 20
)

// Client fetches astronomy data from ipgeolocation.io.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds an API client. Zero timeout uses the default.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	endpoint := strings.TrimSpace(baseURL)
	if endpoint == "" {
		endpoint = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(endpoint, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch retrieves the astronomy payload for a query. Any non-2xx status fails.
func (c *Client) Fetch(ctx context.Context, q astronomy.Query) (astronomy.RawResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(q), nil)
	if err != nil {
		return astronomy.RawResponse{}, fmt.Errorf("build astronomy request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return astronomy.RawResponse{}, fmt.Errorf("astronomy request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return astronomy.RawResponse{}, fmt.Errorf("astronomy request error: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(payload)))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return astronomy.RawResponse{}, fmt.Errorf("read astronomy response: %w", err)
	}

	var raw apiResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return astronomy.RawResponse{}, fmt.Errorf("decode astronomy response: %w", err)
	}
	return raw.toDomain(), nil
}

func (c *Client) endpoint(q astronomy.Query) string {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	switch q.Mode {
	case astronomy.QueryByCoordinates:
		params.Set("lat", strconv.FormatFloat(q.Latitude, 'f', -1, 64))
		params.Set("long", strconv.FormatFloat(q.Longitude, 'f', -1, 64))
	case astronomy.QueryByLocation:
		params.Set("location", q.Location)
	default:
		if q.IP != "" {
			params.Set("ip", q.IP)
		}
	}
	if q.Date != "" {
		params.Set("date", q.Date)
	}
	return c.baseURL + "?" + params.Encode()
}

type apiResponse struct {
	IP        string      `json:"ip"`
	Location  apiLocation `json:"location"`
	Astronomy apiAstro    `json:"astronomy"`
}

type apiLocation struct {
	Latitude       flexString `json:"latitude"`
	Longitude      flexString `json:"longitude"`
	City           string     `json:"city"`
	StateProv      string     `json:"state_prov"`
	CountryName    string     `json:"country_name"`
	LocationString string     `json:"location_string"`
}

type apiAstro struct {
	Date                       string     `json:"date"`
	CurrentTime                string     `json:"current_time"`
	Sunrise                    string     `json:"sunrise"`
	Sunset                     string     `json:"sunset"`
	SunStatus                  string     `json:"sun_status"`
	SolarNoon                  string     `json:"solar_noon"`
	DayLength                  string     `json:"day_length"`
	SunAltitude                flexFloat  `json:"sun_altitude"`
	SunDistance                flexFloat  `json:"sun_distance"`
	SunAzimuth                 flexFloat  `json:"sun_azimuth"`
	Moonrise                   string     `json:"moonrise"`
	Moonset                    string     `json:"moonset"`
	MoonStatus                 string     `json:"moon_status"`
	MoonAltitude               flexFloat  `json:"moon_altitude"`
	MoonDistance               flexFloat  `json:"moon_distance"`
	MoonAzimuth                flexFloat  `json:"moon_azimuth"`
	MoonParallacticAngle       flexFloat  `json:"moon_parallactic_angle"`
	MoonPhase                  string     `json:"moon_phase"`
	MoonIlluminationPercentage flexString `json:"moon_illumination_percentage"`
	MoonAngle                  flexFloat  `json:"moon_angle"`
}

func (r apiResponse) toDomain() astronomy.RawResponse {
	loc, astro := r.Location, r.Astronomy
	return astronomy.RawResponse{
		IP: r.IP,
		Location: astronomy.RawLocation{
			Latitude:       string(loc.Latitude),
			Longitude:      string(loc.Longitude),
			City:           loc.City,
			StateProv:      loc.StateProv,
			CountryName:    loc.CountryName,
			LocationString: loc.LocationString,
		},
		Astronomy: astronomy.RawAstronomy{
			Date:                       astro.Date,
			CurrentTime:                astro.CurrentTime,
			Sunrise:                    astro.Sunrise,
			Sunset:                     astro.Sunset,
			SunStatus:                  astro.SunStatus,
			SolarNoon:                  astro.SolarNoon,
			DayLength:                  astro.DayLength,
			SunAltitude:                float64(astro.SunAltitude),
			SunDistance:                float64(astro.SunDistance),
			SunAzimuth:                 float64(astro.SunAzimuth),
			Moonrise:                   astro.Moonrise,
			Moonset:                    astro.Moonset,
			MoonStatus:                 astro.MoonStatus,
			MoonAltitude:               float64(astro.MoonAltitude),
			MoonDistance:               float64(astro.MoonDistance),
			MoonAzimuth:                float64(astro.MoonAzimuth),
			MoonParallacticAngle:       float64(astro.MoonParallacticAngle),
			MoonPhase:                  astro.MoonPhase,
			MoonIlluminationPercentage: string(astro.MoonIlluminationPercentage),
			MoonAngle:                  float64(astro.MoonAngle),
		},
	}
}

// flexString accepts a JSON string or number and keeps its text.
type flexString string

func (s *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*s = ""
		return nil
	}
	if data[0] == '"' {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		*s = flexString(text)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return err
	}
	*s = flexString(num.String())
	return nil
}

// flexFloat accepts a JSON number or numeric string. Non-numeric or non-finite values decode to zero.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	var text flexString
	if err := text.UnmarshalJSON(data); err != nil {
		return err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(string(text)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		*f = 0
		return nil
	}
	*f = flexFloat(v)
	return nil
}

var _ astronomy.Client = (*Client)(nil)
