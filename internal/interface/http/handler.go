package http

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/yanqian/celestial/internal/domain/astronomy"
	"github.com/yanqian/celestial/internal/domain/lunar"
	"github.com/yanqian/celestial/internal/infra/config"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	lunarSvc     lunar.Service
	astronomySvc astronomy.Service
	logger       *slog.Logger
	liveRefresh  time.Duration
	upgrader     websocket.Upgrader
}

// NewHandler constructs the root HTTP handler.
func NewHandler(cfg *config.Config, lunarSvc lunar.Service, astronomySvc astronomy.Service, logger *slog.Logger) *Handler {
	origins := cfg.HTTP.AllowedOrigins
	return &Handler{
		lunarSvc:     lunarSvc,
		astronomySvc: astronomySvc,
		logger:       logger.With("component", "http.handler"),
		liveRefresh:  cfg.Astronomy.LiveRefreshInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return originAllowed(r.Header.Get("Origin"), origins)
			},
		},
	}
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// MoonPhase returns the phase sample for a single date, today by default.
func (h *Handler) MoonPhase(c *gin.Context) {
	var req lunar.PhaseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.lunarSvc.Phase(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "moon_phase_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// MoonCalendar returns the phase calendar for a month.
func (h *Handler) MoonCalendar(c *gin.Context) {
	var req lunar.CalendarRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	resp, err := h.lunarSvc.Calendar(c.Request.Context(), req)
	if err != nil {
		abortWithError(c, fromDomainError(err, "moon_calendar_failed"))
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Astronomy returns the normalized sun and moon record for the requested observer.
func (h *Handler) Astronomy(c *gin.Context) {
	query, httpErr := astronomyQuery(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	record, err := h.astronomySvc.Lookup(c.Request.Context(), query)
	if err != nil {
		abortWithError(c, fromDomainError(err, "astronomy_failed"))
		return
	}

	c.JSON(http.StatusOK, record)
}

// astronomyQuery picks the lookup mode from the query string.
// Coordinates win over a location name, which wins over an explicit IP.
func astronomyQuery(c *gin.Context) (astronomy.Query, *HTTPError) {
	query := astronomy.Query{Date: strings.TrimSpace(c.Query("date"))}

	lat := strings.TrimSpace(c.Query("lat"))
	lng := strings.TrimSpace(c.Query("lng"))
	location := strings.TrimSpace(c.Query("location"))

	switch {
	case lat != "" || lng != "":
		if lat == "" || lng == "" {
			return query, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat and lng must be provided together", nil)
		}
		latitude, err := strconv.ParseFloat(lat, 64)
		if err != nil {
			return query, NewHTTPError(http.StatusBadRequest, "invalid_request", "lat must be a number", err)
		}
		longitude, err := strconv.ParseFloat(lng, 64)
		if err != nil {
			return query, NewHTTPError(http.StatusBadRequest, "invalid_request", "lng must be a number", err)
		}
		query.Mode = astronomy.QueryByCoordinates
		query.Latitude = latitude
		query.Longitude = longitude
	case location != "":
		query.Mode = astronomy.QueryByLocation
		query.Location = location
	default:
		query.Mode = astronomy.QueryByIP
		query.IP = strings.TrimSpace(c.Query("ip"))
		if query.IP == "" {
			query.IP = publicClientIP(c.ClientIP())
		}
	}
	return query, nil
}

// publicClientIP forwards the caller address upstream only when it is routable.
// Otherwise the provider falls back to the address it sees.
func publicClientIP(raw string) string {
	ip := net.ParseIP(raw)
	if ip == nil || ip.IsLoopback() || ip.IsPrivate() || ip.IsUnspecified() || ip.IsLinkLocalUnicast() {
		return ""
	}
	return ip.String()
}
