package analytics

import (
	"sync"
	"testing"
	"time"
)

func TestDailyBaselineRatios(t *testing.T) {
	g := NewGenerator(42)
	budget := int64(1_000_000) // 1M kyat
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mult := HourMultiplier(at)

	for i := 0; i < 100; i++ {
		s := g.DailyBaseline(budget, at)

		lo := int64(float64(budget) * ImpressionsPerBudgetRatio * JitterMin * mult)
		hi := int64(float64(budget) * ImpressionsPerBudgetRatio * JitterMax * mult)
		if s.Impressions < lo || s.Impressions > hi {
			t.Fatalf("impressions %d outside [%d, %d]", s.Impressions, lo, hi)
		}

		wantClicks := int64(float64(s.Impressions) * ClickThroughRatio)
		if s.Clicks != wantClicks {
			t.Fatalf("clicks = %d, want %d", s.Clicks, wantClicks)
		}
		wantConv := int64(float64(s.Clicks) * ConversionRatio)
		if s.Conversions != wantConv {
			t.Fatalf("conversions = %d, want %d", s.Conversions, wantConv)
		}
		wantReach := int64(float64(s.Impressions) * ReachRatio)
		if s.Reach != wantReach {
			t.Fatalf("reach = %d, want %d", s.Reach, wantReach)
		}
		if s.SpendMMK > budget {
			t.Fatalf("daily spend %d exceeds budget %d", s.SpendMMK, budget)
		}
	}
}

func TestDailyBaselineDeterministicForSeed(t *testing.T) {
	at := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	a := NewGenerator(7).DailyBaseline(500_000, at)
	b := NewGenerator(7).DailyBaseline(500_000, at)
	if a != b {
		t.Errorf("same seed produced different stats: %+v vs %+v", a, b)
	}
}

func TestGeneratorConcurrentUse(t *testing.T) {
	// One generator is shared by all request goroutines; concurrent
	// draws must be safe (run with -race).
	g := NewGenerator(42)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if s := g.DailyBaseline(1_000_000, at); s.Impressions <= 0 {
					t.Errorf("baseline impressions must be positive, got %d", s.Impressions)
					return
				}
				g.HourlyIncrement(1_000_000, at)
			}
		}()
	}
	wg.Wait()
}

func TestDailyBaselineZeroBudget(t *testing.T) {
	g := NewGenerator(1)
	s := g.DailyBaseline(0, time.Now())
	if s != (Stats{}) {
		t.Errorf("zero budget must produce zero stats, got %+v", s)
	}
	s = g.DailyBaseline(-100, time.Now())
	if s != (Stats{}) {
		t.Errorf("negative budget must produce zero stats, got %+v", s)
	}
}

func TestHourlyIncrementAlwaysPositive(t *testing.T) {
	g := NewGenerator(99)
	at := time.Date(2025, 6, 1, 3, 0, 0, 0, time.UTC) // lowest multiplier hours

	for i := 0; i < 50; i++ {
		s := g.HourlyIncrement(100, at) // tiny budget
		if s.Impressions < 1 {
			t.Fatalf("increment impressions must be >= 1, got %d", s.Impressions)
		}
	}
}

func TestHourlyIncrementSmallerThanBaseline(t *testing.T) {
	budget := int64(1_000_000)
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	base := NewGenerator(5).DailyBaseline(budget, at)
	inc := NewGenerator(5).HourlyIncrement(budget, at)
	if inc.Impressions >= base.Impressions {
		t.Errorf("hourly increment %d should be well under daily baseline %d", inc.Impressions, base.Impressions)
	}
}

func TestHourMultiplierTable(t *testing.T) {
	// Every hour must have a positive multiplier and the table must
	// actually vary across the day.
	min, max := hourMultipliers[0], hourMultipliers[0]
	for h, m := range hourMultipliers {
		if m <= 0 {
			t.Errorf("hour %d has non-positive multiplier %v", h, m)
		}
		if m < min {
			min = m
		}
		if m > max {
			max = m
		}
	}
	if min == max {
		t.Error("multiplier table is flat, expected time-of-day variation")
	}

	noon := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	night := time.Date(2025, 6, 1, 2, 0, 0, 0, time.UTC)
	if HourMultiplier(noon) <= HourMultiplier(night) {
		t.Error("midday multiplier should exceed overnight multiplier")
	}
}
