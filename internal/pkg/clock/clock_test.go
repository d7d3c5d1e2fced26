//go:build unit

package clock_test

import (
	"sync"
	"testing"
	"time"

	"hotel-kiosk/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	cases := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"mid-morning UTC", time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"last second of the day", time.Date(2026, 1, 5, 23, 59, 59, 0, time.UTC), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
		{"calendar day kept across zones", time.Date(2026, 1, 5, 1, 0, 0, 0, tokyo), time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, clock.Date(c.in))
		})
	}
}

func TestRealClockIsUTC(t *testing.T) {
	assert.Equal(t, time.UTC, clock.NewRealClock().Now().Location())
}

func TestMockClock(t *testing.T) {
	start := time.Date(2026, 1, 5, 9, 30, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	c.AddDays(3)
	assert.Equal(t, time.Date(2026, 1, 8, 9, 30, 0, 0, time.UTC), c.Now())

	c.Add(time.Hour)
	assert.Equal(t, time.Date(2026, 1, 8, 10, 30, 0, 0, time.UTC), c.Now())

	c.Set(start)
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Add(time.Minute)
			_ = c.Now()
		}()
	}
	wg.Wait()
	assert.Equal(t, start.Add(10*time.Minute), c.Now())
}
