package production

import (
	"fmt"
	"time"

	"github.com/kilianp07/wellplan/core/logger"
	"github.com/kilianp07/wellplan/core/model"
)

// Record holds externally measured monthly rate series for one well, in tons
// per day.
type Record struct {
	Oil    []float64
	Liquid []float64
}

// Records maps well names to their measured series.
type Records map[string]Record

// FromRecords produces from per-well measured series. Wells without a record
// fall back to decline-curve estimation. Short series are padded with zeros,
// long ones truncated to the scheduling window.
type FromRecords struct {
	records  Records
	fallback ArpsDecline
	log      logger.Logger
}

// NewFromRecords wraps the given record set.
func NewFromRecords(records Records, log logger.Logger) *FromRecords {
	return &FromRecords{records: records, fallback: NewArpsDecline(), log: log}
}

func (p *FromRecords) Compute(ctx *model.WellPlanContext) error {
	start := ctx.NextAvailableDate()
	end := ctx.End
	well := ctx.Well
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month()) + 1

	record, ok := p.records[well.Name]
	if !ok {
		p.log.Debugf("no production record for well %s, using decline curve", well.Name)
		return p.fallback.Compute(ctx)
	}
	if record.Oil == nil || record.Liquid == nil {
		return fmt.Errorf("production record for well %q is missing oil or liquid data", well.Name)
	}

	oilRates := resize(record.Oil, months)
	liqRates := resize(record.Liquid, months)

	oil := make([]float64, months)
	liq := make([]float64, months)
	year, month := start.Year(), int(start.Month())
	for i := 0; i < months; i++ {
		total := month + i
		y := year + (total-1)/12
		m := (total-1)%12 + 1
		days := float64(daysInMonth(y, time.Month(m)))
		oil[i] = oilRates[i] * days
		liq[i] = liqRates[i] * days
	}

	ctx.OilProfile = oil
	ctx.LiqProfile = liq
	return nil
}

func resize(series []float64, length int) []float64 {
	if len(series) >= length {
		return series[:length]
	}
	out := make([]float64, length)
	copy(out, series)
	return out
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
