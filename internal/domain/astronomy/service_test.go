package astronomy

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/yanqian/celestial/pkg/errors"
)

func TestServiceLookupSuccess(t *testing.T) {
	client := &stubClient{raw: samplePayload()}
	svc := NewService(client, newTestLogger())

	record, err := svc.Lookup(context.Background(), Query{
		Mode:      QueryByCoordinates,
		Latitude:  37.4224,
		Longitude: -122.0842,
		Date:      "2024-11-08",
	})
	require.NoError(t, err)
	require.Equal(t, "Mountain View", record.Location.City)
	require.Equal(t, 42.5, record.Moon.Illumination)
	require.Equal(t, 1, client.calls)
	require.Equal(t, QueryByCoordinates, client.last.Mode)
}

func TestServiceLookupDefaultsToIP(t *testing.T) {
	client := &stubClient{raw: samplePayload()}
	svc := NewService(client, newTestLogger())

	_, err := svc.Lookup(context.Background(), Query{Location: "  ignored "})
	require.NoError(t, err)
	require.Equal(t, QueryByIP, client.last.Mode)
	require.Equal(t, "", client.last.IP)
}

func TestServiceLookupValidation(t *testing.T) {
	cases := []struct {
		name  string
		query Query
	}{
		{name: "latitude range", query: Query{Mode: QueryByCoordinates, Latitude: 91}},
		{name: "longitude range", query: Query{Mode: QueryByCoordinates, Longitude: -181}},
		{name: "nan latitude", query: Query{Mode: QueryByCoordinates, Latitude: math.NaN()}},
		{name: "empty location", query: Query{Mode: QueryByLocation, Location: "   "}},
		{name: "bad ip", query: Query{Mode: QueryByIP, IP: "999.1.1.1"}},
		{name: "bad date", query: Query{Mode: QueryByIP, Date: "08/11/2024"}},
		{name: "unknown mode", query: Query{Mode: "satellite"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := &stubClient{raw: samplePayload()}
			svc := NewService(client, newTestLogger())

			_, err := svc.Lookup(context.Background(), tc.query)
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, apperrors.CodeInvalidInput))
			require.Zero(t, client.calls)
		})
	}
}

func TestServiceLookupUpstreamFailure(t *testing.T) {
	cause := errors.New("status=503")
	svc := NewService(&stubClient{err: cause}, newTestLogger())

	_, err := svc.Lookup(context.Background(), Query{Mode: QueryByLocation, Location: "Singapore"})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, apperrors.CodeAstronomyFetch))
	require.ErrorIs(t, err, cause)
}

func TestServiceLookupMalformedPayload(t *testing.T) {
	raw := samplePayload()
	raw.Location.Latitude = "not-a-number"
	svc := NewService(&stubClient{raw: raw}, newTestLogger())

	record, err := svc.Lookup(context.Background(), Query{Mode: QueryByIP, IP: "8.8.8.8"})
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMalformedCoordinate)
	require.Equal(t, Record{}, record)
}

type stubClient struct {
	raw   RawResponse
	err   error
	calls int
	last  Query
}

func (s *stubClient) Fetch(_ context.Context, q Query) (RawResponse, error) {
	s.calls++
	s.last = q
	if s.err != nil {
		return RawResponse{}, s.err
	}
	return s.raw, nil
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
