package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestResolveScheduledInstant(t *testing.T) {
	t.Run("Bogota wall time resolves to UTC instant", func(t *testing.T) {
		instant, err := ResolveScheduledInstant("2026-09-15", "10:00", "America/Bogota")
		assert.NoError(t, err)
		// Bogota is UTC-5 year-round.
		assert.Equal(t, time.Date(2026, 9, 15, 15, 0, 0, 0, time.UTC), instant)
	})

	t.Run("Timezone with DST resolves per local offset", func(t *testing.T) {
		instant, err := ResolveScheduledInstant("2026-07-01", "09:30", "America/New_York")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2026, 7, 1, 13, 30, 0, 0, time.UTC), instant, "EDT is UTC-4 in July")
	})

	t.Run("Unknown timezone is rejected", func(t *testing.T) {
		_, err := ResolveScheduledInstant("2026-09-15", "10:00", "Mars/Olympus")
		assert.Error(t, err)
	})

	t.Run("Malformed time is rejected", func(t *testing.T) {
		_, err := ResolveScheduledInstant("2026-09-15", "25:99", "America/Bogota")
		assert.Error(t, err)
	})

	t.Run("Malformed date is rejected", func(t *testing.T) {
		_, err := ResolveScheduledInstant("15-09-2026", "10:00", "America/Bogota")
		assert.Error(t, err)
	})
}
