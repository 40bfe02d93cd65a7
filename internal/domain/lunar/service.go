package lunar

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"time"

	apperrors "github.com/yanqian/celestial/pkg/errors"
	"github.com/yanqian/celestial/pkg/util"
)

const maxCalendarDays = 62

// Service exposes moon phase lookups for dates and month grids.
type Service interface {
	Phase(ctx context.Context, req PhaseRequest) (Day, error)
	Calendar(ctx context.Context, req CalendarRequest) (CalendarResponse, error)
}

type service struct {
	cfg      Config
	logger   *slog.Logger
	timezone *time.Location
	now      func() time.Time
}

// NewService wires up the lunar domain.
func NewService(cfg Config, logger *slog.Logger) Service {
	tz := cfg.Timezone
	if tz == nil {
		tz = time.UTC
	}
	if cfg.CalendarDays <= 0 {
		cfg.CalendarDays = defaultCalendarDays
	}
	return &service{
		cfg:      cfg,
		logger:   logger.With("component", "lunar.service"),
		timezone: tz,
		now:      util.NowUTC,
	}
}

func (s *service) Phase(_ context.Context, req PhaseRequest) (Day, error) {
	date, err := s.resolveDate(req.Date)
	if err != nil {
		return Day{}, apperrors.Wrap(apperrors.CodeInvalidInput, "date must be formatted as YYYY-MM-DD", err)
	}
	sample := ComputePhase(date)
	s.logger.Debug("moon phase computed", "date", sample.Date.Format(util.DateLayout), "phase", sample.PhaseName)
	return toDay(sample), nil
}

func (s *service) Calendar(_ context.Context, req CalendarRequest) (CalendarResponse, error) {
	month, err := s.resolveMonth(req.Month)
	if err != nil {
		return CalendarResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, "month must be formatted as YYYY-MM", err)
	}
	days := req.Days
	if days == 0 {
		days = s.cfg.CalendarDays
	}
	if days < 0 || days > maxCalendarDays {
		return CalendarResponse{}, apperrors.Wrap(apperrors.CodeInvalidInput, fmt.Sprintf("days must be between 1 and %d", maxCalendarDays), nil)
	}

	samples := MonthCalendar(month.Year(), month.Month(), days, s.timezone)
	out := CalendarResponse{
		Month: month.Format(util.MonthLayout),
		Days:  make([]Day, 0, len(samples)),
	}
	for _, sample := range samples {
		out.Days = append(out.Days, toDay(sample))
	}

	today := s.now().In(s.timezone)
	if today.Year() == month.Year() && today.Month() == month.Month() {
		current := toDay(ComputePhase(today))
		out.Today = &current
	}
	return out, nil
}

func (s *service) resolveDate(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return s.now().In(s.timezone), nil
	}
	return util.ParseDate(trimmed, s.timezone)
}

func (s *service) resolveMonth(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		now := s.now().In(s.timezone)
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.timezone), nil
	}
	return util.ParseMonth(trimmed, s.timezone)
}

func toDay(sample Sample) Day {
	return Day{
		Date:                sample.Date.Format(util.DateLayout),
		PhaseFraction:       sample.PhaseFraction,
		Illumination:        sample.Illumination,
		IlluminationPercent: int(math.Round(sample.Illumination * 100)),
		PhaseName:           sample.PhaseName,
	}
}
