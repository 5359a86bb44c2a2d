package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/musicjam/domain"
)

func TestDeriveStatus(t *testing.T) {
	date := "2025-06-15"
	start := "19:00"
	end := "22:00"

	at := func(hour, minute int) time.Time {
		return time.Date(2025, 6, 15, hour, minute, 0, 0, time.UTC)
	}

	t.Run("before the start time the session is upcoming", func(t *testing.T) {
		assert.Equal(t, domain.StatusUpcoming, domain.DeriveStatus(date, start, end, at(12, 0)))
	})

	t.Run("between start and end the session is ongoing", func(t *testing.T) {
		assert.Equal(t, domain.StatusOngoing, domain.DeriveStatus(date, start, end, at(20, 30)))
	})

	t.Run("after the end time the session is completed", func(t *testing.T) {
		assert.Equal(t, domain.StatusCompleted, domain.DeriveStatus(date, start, end, at(22, 1)))
	})

	t.Run("without an end time the session runs until the end of its day", func(t *testing.T) {
		assert.Equal(t, domain.StatusOngoing, domain.DeriveStatus(date, start, "", at(23, 30)))

		nextDay := time.Date(2025, 6, 16, 0, 30, 0, 0, time.UTC)
		assert.Equal(t, domain.StatusCompleted, domain.DeriveStatus(date, start, "", nextDay))
	})

	t.Run("sessions crossing midnight complete on the next day", func(t *testing.T) {
		assert.Equal(t, domain.StatusOngoing, domain.DeriveStatus(date, "22:00", "02:00", at(23, 45)))

		nextMorning := time.Date(2025, 6, 16, 3, 0, 0, 0, time.UTC)
		assert.Equal(t, domain.StatusCompleted, domain.DeriveStatus(date, "22:00", "02:00", nextMorning))
	})

	t.Run("an unparseable date stays upcoming", func(t *testing.T) {
		assert.Equal(t, domain.StatusUpcoming, domain.DeriveStatus("not-a-date", start, end, at(20, 0)))
	})
}

func TestDeriveStatus_MonotonicOverTime(t *testing.T) {
	rank := map[string]int{
		domain.StatusUpcoming:  0,
		domain.StatusOngoing:   1,
		domain.StatusCompleted: 2,
	}

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{name: "with end time", start: "19:00", end: "22:00"},
		{name: "without end time", start: "19:00", end: ""},
		{name: "crossing midnight", start: "22:00", end: "02:00"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prev := -1
			now := time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC)
			for now.Before(time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)) {
				status := domain.DeriveStatus("2025-06-15", tc.start, tc.end, now)
				r, ok := rank[status]
				assert.True(t, ok, "unexpected status %q", status)
				assert.GreaterOrEqual(t, r, prev, "status went backwards at %s", now)
				prev = r
				now = now.Add(17 * time.Minute)
			}
		})
	}
}

func TestGenres(t *testing.T) {
	genres := domain.Genres()
	assert.Len(t, genres, 20)
	for _, g := range []string{"Rock", "Pop", "Jazz", "Blues", "Classical"} {
		assert.Contains(t, genres, g)
	}

	assert.True(t, domain.IsKnownGenre("Reggae"))
	assert.False(t, domain.IsKnownGenre("Classic Rock"))
}
