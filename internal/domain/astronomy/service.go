package astronomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"net"
	"strings"

	apperrors "github.com/yanqian/celestial/pkg/errors"
	"github.com/yanqian/celestial/pkg/util"
)

// Service exposes normalized astronomy lookups.
type Service interface {
	Lookup(ctx context.Context, q Query) (Record, error)
}

// Client fetches raw astronomy payloads from the upstream provider.
type Client interface {
	Fetch(ctx context.Context, q Query) (RawResponse, error)
}

type service struct {
	client Client
	logger *slog.Logger
}

// NewService wires up the astronomy domain.
func NewService(client Client, logger *slog.Logger) Service {
	return &service{
		client: client,
		logger: logger.With("component", "astronomy.service"),
	}
}

func (s *service) Lookup(ctx context.Context, q Query) (Record, error) {
	query, err := validateQuery(q)
	if err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeInvalidInput, err.Error(), nil)
	}

	raw, err := s.client.Fetch(ctx, query)
	if err != nil {
		return Record{}, apperrors.Wrap(apperrors.CodeAstronomyFetch, "failed to fetch astronomy data", err)
	}

	record, err := Normalize(raw)
	if err != nil {
		s.logger.Warn("astronomy payload rejected", "mode", query.Mode, "error", err)
		return Record{}, err
	}
	s.logger.Info("astronomy data fetched", "mode", query.Mode, "city", record.Location.City, "date", record.Timestamp.Date)
	return record, nil
}

func validateQuery(q Query) (Query, error) {
	q.Location = strings.TrimSpace(q.Location)
	q.IP = strings.TrimSpace(q.IP)
	q.Date = strings.TrimSpace(q.Date)
	if q.Mode == "" {
		q.Mode = QueryByIP
	}

	switch q.Mode {
	case QueryByCoordinates:
		if math.IsNaN(q.Latitude) || q.Latitude < -90 || q.Latitude > 90 {
			return Query{}, errors.New("latitude must be between -90 and 90")
		}
		if math.IsNaN(q.Longitude) || q.Longitude < -180 || q.Longitude > 180 {
			return Query{}, errors.New("longitude must be between -180 and 180")
		}
	case QueryByLocation:
		if q.Location == "" {
			return Query{}, errors.New("location cannot be empty")
		}
	case QueryByIP:
		if q.IP != "" && net.ParseIP(q.IP) == nil {
			return Query{}, fmt.Errorf("ip %q is not a valid address", q.IP)
		}
	default:
		return Query{}, fmt.Errorf("unsupported query mode %q", q.Mode)
	}

	if q.Date != "" {
		if _, err := util.ParseDate(q.Date, nil); err != nil {
			return Query{}, errors.New("date must be formatted as YYYY-MM-DD")
		}
	}
	return q, nil
}
