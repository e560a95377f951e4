package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gnomegl/relslurp/internal/errs"
	"github.com/gnomegl/relslurp/internal/timeframe"
)

func TestTimeframeDefaultsToOneDay(t *testing.T) {
	t.Parallel()

	d, err := (&AppConfig{}).Timeframe()
	require.NoError(t, err)
	require.Equal(t, timeframe.Days(1), d)
}

func TestTimeframeVariants(t *testing.T) {
	t.Parallel()

	d, err := (&AppConfig{Hours: 12}).Timeframe()
	require.NoError(t, err)
	require.Equal(t, timeframe.Hours(12), d)

	d, err = (&AppConfig{Days: 3}).Timeframe()
	require.NoError(t, err)
	require.Equal(t, timeframe.Days(3), d)

	d, err = (&AppConfig{Date: "2025-06-14"}).Timeframe()
	require.NoError(t, err)
	require.Equal(t, timeframe.Date(time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)), d)

	d, err = (&AppConfig{From: "2025-06-10", To: "2025-06-14"}).Timeframe()
	require.NoError(t, err)
	require.Equal(t, timeframe.KindRange, d.Kind)
}

func TestTimeframeMutualExclusion(t *testing.T) {
	t.Parallel()

	_, err := (&AppConfig{Hours: 12, Days: 2}).Timeframe()
	require.Error(t, err)
	require.True(t, errs.IsCode(err, errs.CodeInvalidArgument))

	_, err = (&AppConfig{Date: "2025-06-14", From: "2025-06-10", To: "2025-06-12"}).Timeframe()
	require.Error(t, err)
}

func TestTimeframeHalfRange(t *testing.T) {
	t.Parallel()

	_, err := (&AppConfig{From: "2025-06-10"}).Timeframe()
	require.Error(t, err)

	_, err = (&AppConfig{To: "2025-06-10"}).Timeframe()
	require.Error(t, err)
}

func TestTimeframeBadDates(t *testing.T) {
	t.Parallel()

	for _, cfg := range []*AppConfig{
		{Date: "June 14"},
		{From: "2025/06/10", To: "2025-06-12"},
		{From: "2025-06-10", To: "nope"},
	} {
		_, err := cfg.Timeframe()
		require.Error(t, err)
		require.True(t, errs.IsCode(err, errs.CodeInvalidArgument))
	}
}
