package production

import (
	"math"
	"time"

	"github.com/kilianp07/wellplan/core/model"
)

// Profile fills a context's monthly production arrays, one value per calendar
// month from the context's next available date to its end. Implementations
// are swappable at construction time.
type Profile interface {
	Compute(ctx *model.WellPlanContext) error
}

// monthWalk calls fn for every calendar month overlapping [start, end] with
// the first of the month and the number of in-window days. Partial first and
// last months get partial day counts.
func monthWalk(start, end time.Time, fn func(monthStart time.Time, days int)) {
	current := time.Date(start.Year(), start.Month(), 1, 0, 0, 0, 0, time.UTC)
	for !current.After(end) {
		next := time.Date(current.Year(), current.Month()+1, 1, 0, 0, 0, 0, time.UTC)
		monthEnd := next.AddDate(0, 0, -1)

		periodStart := start
		if current.After(periodStart) {
			periodStart = current
		}
		periodEnd := end
		if monthEnd.Before(periodEnd) {
			periodEnd = monthEnd
		}

		days := int(periodEnd.Sub(periodStart).Hours()/24) + 1
		if days > 0 {
			fn(current, days)
		}
		current = next
	}
}

// Linear produces at the well's constant daily rates.
type Linear struct{}

func (Linear) Compute(ctx *model.WellPlanContext) error {
	var oil, liq []float64
	start := ctx.NextAvailableDate()
	well := ctx.Well
	monthWalk(start, ctx.End, func(_ time.Time, days int) {
		oil = append(oil, well.OilRate*float64(days))
		liq = append(liq, well.LiqRate*float64(days))
	})
	ctx.OilProfile = oil
	ctx.LiqProfile = liq
	return nil
}

// ArpsDecline models hyperbolic production decline:
// rate(t) = rate / (1 + b*D*t)^(1/b) with t in years since production start.
type ArpsDecline struct {
	D float64
	B float64
}

// NewArpsDecline returns a decline profile with the calibrated defaults.
func NewArpsDecline() ArpsDecline {
	return ArpsDecline{D: 0.175, B: 1.548}
}

func (a ArpsDecline) Compute(ctx *model.WellPlanContext) error {
	var oil, liq []float64
	start := ctx.NextAvailableDate()
	well := ctx.Well
	monthWalk(start, ctx.End, func(monthStart time.Time, days int) {
		tYears := monthStart.Sub(start).Hours() / 24 / 365
		decline := math.Pow(1+a.B*a.D*tYears, 1/a.B)
		oil = append(oil, well.OilRate/decline*float64(days))
		liq = append(liq, well.LiqRate/decline*float64(days))
	})
	ctx.OilProfile = oil
	ctx.LiqProfile = liq
	return nil
}
