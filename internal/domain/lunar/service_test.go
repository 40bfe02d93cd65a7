package lunar

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/celestial/pkg/errors"
)

func TestServicePhaseForDate(t *testing.T) {
	svc := newTestService(t, "2024-07-01T09:00:00Z")

	day, err := svc.Phase(context.Background(), PhaseRequest{Date: "2000-01-13"})
	require.NoError(t, err)
	require.Equal(t, "2000-01-13", day.Date)
	require.Equal(t, FullMoon, day.PhaseName)
	require.Equal(t, 1.0, day.Illumination)
	require.Equal(t, 100, day.IlluminationPercent)
}

func TestServicePhaseDefaultsToToday(t *testing.T) {
	svc := newTestService(t, "2000-01-05T20:00:00Z")
	svc.timezone = time.FixedZone("Asia/Singapore", 8*60*60)

	day, err := svc.Phase(context.Background(), PhaseRequest{})
	require.NoError(t, err)
	// 20:00 UTC is already the next day in Singapore
	require.Equal(t, "2000-01-06", day.Date)
	require.Equal(t, FirstQuarter, day.PhaseName)
	require.Equal(t, 50, day.IlluminationPercent)
}

func TestServicePhaseInvalidDate(t *testing.T) {
	svc := newTestService(t, "2024-07-01T09:00:00Z")

	_, err := svc.Phase(context.Background(), PhaseRequest{Date: "2024/01/01"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestServiceCalendarCurrentMonthIncludesToday(t *testing.T) {
	svc := newTestService(t, "2000-01-13T12:00:00Z")

	resp, err := svc.Calendar(context.Background(), CalendarRequest{})
	require.NoError(t, err)
	require.Equal(t, "2000-01", resp.Month)
	require.Len(t, resp.Days, 30)
	require.Equal(t, "2000-01-01", resp.Days[0].Date)
	require.Equal(t, "2000-01-30", resp.Days[29].Date)
	require.NotNil(t, resp.Today)
	require.Equal(t, "2000-01-13", resp.Today.Date)
	require.Equal(t, FullMoon, resp.Today.PhaseName)
}

func TestServiceCalendarOtherMonth(t *testing.T) {
	svc := newTestService(t, "2000-01-21T12:00:00Z")

	resp, err := svc.Calendar(context.Background(), CalendarRequest{Month: "2023-02", Days: 28})
	require.NoError(t, err)
	require.Equal(t, "2023-02", resp.Month)
	require.Len(t, resp.Days, 28)
	require.Equal(t, "2023-02-28", resp.Days[27].Date)
	require.Nil(t, resp.Today)
}

func TestServiceCalendarValidation(t *testing.T) {
	svc := newTestService(t, "2000-01-21T12:00:00Z")

	_, err := svc.Calendar(context.Background(), CalendarRequest{Month: "2023-13"})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Calendar(context.Background(), CalendarRequest{Month: "2023-01", Days: 400})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))

	_, err = svc.Calendar(context.Background(), CalendarRequest{Month: "2023-01", Days: -1})
	require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
}

func TestNewServiceDefaults(t *testing.T) {
	svc := NewService(Config{}, slog.New(slog.NewTextHandler(io.Discard, nil))).(*service)
	require.Equal(t, time.UTC, svc.timezone)
	require.Equal(t, defaultCalendarDays, svc.cfg.CalendarDays)
}

func newTestService(t *testing.T, now string) *service {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, now)
	require.NoError(t, err)
	return &service{
		cfg:      Config{CalendarDays: 30},
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		timezone: time.UTC,
		now:      func() time.Time { return ts },
	}
}
