package timeframe

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gnomegl/relslurp/internal/errs"
)

var now = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func TestResolveHours(t *testing.T) {
	t.Parallel()

	w, err := Resolve(Hours(24), now)
	require.NoError(t, err)
	require.Equal(t, now.Add(-24*time.Hour), w.Start)
	require.Equal(t, now, w.End)

	w, err = Resolve(Hours(1), now)
	require.NoError(t, err)
	require.Equal(t, now.Add(-time.Hour), w.Start)
}

func TestResolveDays(t *testing.T) {
	t.Parallel()

	w, err := Resolve(Days(1), now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), w.Start)
	require.Equal(t, time.Date(2025, 6, 15, 23, 59, 59, 999000000, time.UTC), w.End)

	w, err = Resolve(Days(7), now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 9, 0, 0, 0, 0, time.UTC), w.Start)
	require.Equal(t, 7, w.Days())
}

func TestResolveDaysAnchor(t *testing.T) {
	t.Parallel()

	// explicit end anchor wins over now
	anchor := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	w, err := Resolve(DaysEnding(3, anchor), now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC), w.Start)
	require.Equal(t, time.Date(2025, 6, 10, 23, 59, 59, 999000000, time.UTC), w.End)
}

func TestResolveDate(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 6, 12, 17, 45, 0, 0, time.UTC)
	w, err := Resolve(Date(d), now)
	require.NoError(t, err)
	require.Equal(t, time.Date(2025, 6, 12, 0, 0, 0, 0, time.UTC), w.Start)
	require.Equal(t, time.Date(2025, 6, 12, 23, 59, 59, 999000000, time.UTC), w.End)
	require.Equal(t, 1, w.Days())
}

func TestResolveRange(t *testing.T) {
	t.Parallel()

	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 13, 0, 0, 0, 0, time.UTC)
	w, err := Resolve(Range(start, end), now)
	require.NoError(t, err)
	require.Equal(t, start, w.Start)
	require.Equal(t, time.Date(2025, 6, 13, 23, 59, 59, 999000000, time.UTC), w.End)
	require.Equal(t, 4, w.Days())
}

func TestResolveValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		d    Descriptor
		want error
	}{
		{"range inverted", Range(now.AddDate(0, 0, -1), now.AddDate(0, 0, -3)), ErrInvalidWindow},
		{"date in future", Date(now.AddDate(0, 0, 2)), ErrFutureWindow},
		{"range in future", Range(now.AddDate(0, 0, 1), now.AddDate(0, 0, 2)), ErrFutureWindow},
		{"days too large", Days(8), ErrWindowTooLarge},
		{"range too large", Range(now.AddDate(0, 0, -10), now), ErrWindowTooLarge},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Resolve(c.d, now)
			require.ErrorIs(t, err, c.want)
		})
	}
}

func TestResolveBadArguments(t *testing.T) {
	t.Parallel()

	for _, d := range []Descriptor{Hours(0), Hours(-3), Days(0), Days(-1), {Kind: KindDate}, {Kind: KindRange}} {
		_, err := Resolve(d, now)
		require.Error(t, err)
		require.True(t, errs.IsCode(err, errs.CodeInvalidArgument))
	}
}

func TestWindowContains(t *testing.T) {
	t.Parallel()

	w, err := Resolve(Date(now), now)
	require.NoError(t, err)

	require.True(t, w.Contains(w.Start), "start boundary is inclusive")
	require.True(t, w.Contains(w.End), "end boundary is inclusive")
	require.False(t, w.Contains(w.Start.Add(-time.Microsecond)))
	require.False(t, w.Contains(w.End.Add(time.Microsecond)))
}
