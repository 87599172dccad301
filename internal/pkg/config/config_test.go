package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "seatsync.db", cfg.DBURL)
	assert.Equal(t, 22, cfg.Seat.OpenHour)
	assert.Equal(t, 50, cfg.Seat.OpenMinute)
}

func TestNew_Overrides(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("SEAT_OPEN_HOUR", "21")
	t.Setenv("SEAT_BASE_URL", "http://localhost:1234/rest")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.Port)
	assert.Equal(t, 21, cfg.Seat.OpenHour)
	assert.Equal(t, "http://localhost:1234/rest", cfg.Seat.BaseURL)
}
