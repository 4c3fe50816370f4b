package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridMinutes(t *testing.T) {
	b := BookingConfig{OpenTime: "08:00", CloseTime: "20:00", SlotMinutes: 60}

	openMin, closeMin, err := b.GridMinutes()
	require.NoError(t, err)
	assert.Equal(t, 480, openMin)
	assert.Equal(t, 1200, closeMin)
}

func TestGridMinutes_TwelveHourClock(t *testing.T) {
	b := BookingConfig{OpenTime: "8:00 AM", CloseTime: "8:00 PM", SlotMinutes: 60}

	openMin, closeMin, err := b.GridMinutes()
	require.NoError(t, err)
	assert.Equal(t, 480, openMin)
	assert.Equal(t, 1200, closeMin)
}

func TestGridMinutes_Invalid(t *testing.T) {
	b := BookingConfig{OpenTime: "not a time", CloseTime: "20:00"}

	_, _, err := b.GridMinutes()
	assert.Error(t, err)
}

func TestValidate_OpenAfterClose(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.DBName = "gritx"
	cfg.Booking.OpenTime = "21:00"

	err := cfg.validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open_time")
}

func TestValidate_Defaults(t *testing.T) {
	cfg := defaultConfig()
	cfg.Database.DBName = "gritx"

	assert.NoError(t, cfg.validate())
}
