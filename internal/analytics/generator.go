package analytics

import (
	"math/rand"
	"sync"
	"time"
)

// Fixed ratios for the synthetic numbers. These are placeholder
// arithmetic, not a traffic model: daily impressions are a slice of the
// budget, clicks a slice of impressions, conversions a slice of clicks.
const (
	ImpressionsPerBudgetRatio = 0.20
	ClickThroughRatio         = 0.02
	ConversionRatio           = 0.05
	ReachRatio                = 0.75
	SpendSpreadDays           = 30
)

// Jitter bounds applied to the impression base.
const (
	JitterMin = 0.85
	JitterMax = 1.15
)

// hourMultipliers scales activity by hour of day. Low overnight, peaks
// around lunch and evening.
var hourMultipliers = [24]float64{
	0.30, 0.25, 0.20, 0.20, 0.25, 0.35, // 00-05
	0.50, 0.70, 0.90, 1.10, 1.20, 1.30, // 06-11
	1.40, 1.30, 1.20, 1.10, 1.00, 1.30, // 12-17
	1.50, 1.60, 1.40, 1.00, 0.70, 0.45, // 18-23
}

// HourMultiplier returns the activity multiplier for t's hour.
func HourMultiplier(t time.Time) float64 {
	return hourMultipliers[t.Hour()]
}

// Stats is one synthetic measurement, either a full-day baseline or an
// incremental adjustment.
type Stats struct {
	Reach       int64
	Impressions int64
	Clicks      int64
	Conversions int64
	SpendMMK    int64
}

// Generator is shared across request goroutines; rand.Rand is not
// goroutine-safe, so draws go through the mutex.
type Generator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewGenerator seeds the pseudo-random source. seed 0 falls back to the
// current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

func (g *Generator) jitter() float64 {
	g.mu.Lock()
	f := g.rnd.Float64()
	g.mu.Unlock()
	return JitterMin + f*(JitterMax-JitterMin)
}

// fromImpressions derives the dependent counters so the documented
// ratios hold exactly for any impression count.
func fromImpressions(impressions int64, spend int64) Stats {
	clicks := int64(float64(impressions) * ClickThroughRatio)
	return Stats{
		Reach:       int64(float64(impressions) * ReachRatio),
		Impressions: impressions,
		Clicks:      clicks,
		Conversions: int64(float64(clicks) * ConversionRatio),
		SpendMMK:    spend,
	}
}

// DailyBaseline produces a full day's synthetic row for a campaign
// budget, scaled by the hour multiplier of the generation time.
func (g *Generator) DailyBaseline(budgetMMK int64, at time.Time) Stats {
	if budgetMMK <= 0 {
		return Stats{}
	}
	mult := HourMultiplier(at)
	impressions := int64(float64(budgetMMK) * ImpressionsPerBudgetRatio * g.jitter() * mult)
	spend := int64(float64(budgetMMK) / SpendSpreadDays * mult)
	if spend > budgetMMK {
		spend = budgetMMK
	}
	return fromImpressions(impressions, spend)
}

// HourlyIncrement produces a small positive delta for repeated refreshes
// of the same day's row. Roughly 1/24th of a daily baseline.
func (g *Generator) HourlyIncrement(budgetMMK int64, at time.Time) Stats {
	if budgetMMK <= 0 {
		return Stats{}
	}
	mult := HourMultiplier(at)
	impressions := int64(float64(budgetMMK) * ImpressionsPerBudgetRatio / 24 * g.jitter() * mult)
	if impressions < 1 {
		impressions = 1
	}
	spend := int64(float64(budgetMMK) / SpendSpreadDays / 24 * mult)
	return fromImpressions(impressions, spend)
}
