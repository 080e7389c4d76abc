package daily_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nerdle/go-server/internal/daily"
	"github.com/nerdle/go-server/internal/equation"
)

func TestDateKeyUTC(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	loc := time.FixedZone("UTC-5", -5*3600)
	ts := time.Date(2024, 3, 9, 23, 30, 0, 0, loc)
	assert.Equal(t, "2024-03-10", daily.DateKey(ts))
}

func TestEquationForDeterministic(t *testing.T) {
	d := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	a := daily.EquationFor(d, "salt")
	b := daily.EquationFor(d, "salt")
	assert.Equal(t, a, b)

	// Any time of day maps to the same target.
	later := time.Date(2024, 6, 1, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, a, daily.EquationFor(later, "salt"))
}

func TestEquationForVariesBySaltAndDate(t *testing.T) {
	d := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	base := daily.EquationFor(d, "salt")

	differs := false
	for i := 1; i <= 10 && !differs; i++ {
		differs = daily.EquationFor(d.AddDate(0, 0, i), "salt") != base
	}
	assert.True(t, differs, "ten consecutive days should not all share one target")

	differs = false
	for _, salt := range []string{"a", "b", "c", "d", "e"} {
		if daily.EquationFor(d, salt) != base {
			differs = true
			break
		}
	}
	assert.True(t, differs, "different salts should not all share one target")
}

func TestEquationForAlwaysValid(t *testing.T) {
	d := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 100; i++ {
		eq := daily.EquationFor(d.AddDate(0, 0, i), "local_dev_salt")
		require.NoError(t, equation.Validate(eq), eq)
	}
}
