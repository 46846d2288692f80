package production

import (
	"testing"
	"time"
)

type testLogger struct{ debugs int }

func (l *testLogger) Debugf(string, ...any)         { l.debugs++ }
func (l *testLogger) Debugw(string, map[string]any) {}
func (l *testLogger) Infof(string, ...any)          {}
func (l *testLogger) Warnf(string, ...any)          {}
func (l *testLogger) Errorf(string, ...any)         {}

func TestFromRecords(t *testing.T) {
	records := Records{
		"101": {Oil: []float64{10, 20}, Liquid: []float64{12, 24}},
	}
	p := NewFromRecords(records, &testLogger{})

	ctx := newContext(0, 0, date(2025, 1, 1), date(2025, 4, 30))
	ctx.Well.Name = "101"
	if err := p.Compute(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.OilProfile) != 4 {
		t.Fatalf("months = %d, want 4", len(ctx.OilProfile))
	}
	// Rates scale by the days of each calendar month.
	if ctx.OilProfile[0] != 310 {
		t.Errorf("january = %v, want 310", ctx.OilProfile[0])
	}
	if ctx.OilProfile[1] != 20*28 {
		t.Errorf("february = %v, want 560", ctx.OilProfile[1])
	}
	// The short series is zero-padded to the window.
	if ctx.OilProfile[2] != 0 || ctx.OilProfile[3] != 0 {
		t.Errorf("padding = %v", ctx.OilProfile[2:])
	}
}

func TestFromRecordsTruncatesLongSeries(t *testing.T) {
	records := Records{
		"101": {
			Oil:    []float64{1, 1, 1, 1, 1, 1},
			Liquid: []float64{2, 2, 2, 2, 2, 2},
		},
	}
	p := NewFromRecords(records, &testLogger{})

	ctx := newContext(0, 0, date(2025, 1, 1), date(2025, 2, 28))
	ctx.Well.Name = "101"
	if err := p.Compute(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.OilProfile) != 2 {
		t.Errorf("months = %d, want 2", len(ctx.OilProfile))
	}
}

func TestFromRecordsFallsBackToDecline(t *testing.T) {
	log := &testLogger{}
	p := NewFromRecords(Records{}, log)

	ctx := newContext(100, 120, date(2025, 1, 1), date(2025, 12, 31))
	ctx.Well.Name = "unknown"
	if err := p.Compute(ctx); err != nil {
		t.Fatal(err)
	}
	if len(ctx.OilProfile) != 12 {
		t.Errorf("months = %d, want 12", len(ctx.OilProfile))
	}
	if log.debugs == 0 {
		t.Error("expected a debug log about the fallback")
	}
}

func TestFromRecordsMissingSeries(t *testing.T) {
	records := Records{
		"101": {Oil: []float64{10}},
	}
	p := NewFromRecords(records, &testLogger{})

	ctx := newContext(0, 0, date(2025, 1, 1), date(2025, 3, 31))
	ctx.Well.Name = "101"
	if err := p.Compute(ctx); err == nil {
		t.Fatal("expected error for record without liquid series")
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := daysInMonth(2025, time.February); got != 28 {
		t.Errorf("feb 2025 = %d", got)
	}
	if got := daysInMonth(2024, time.February); got != 29 {
		t.Errorf("feb 2024 = %d", got)
	}
	if got := daysInMonth(2025, time.December); got != 31 {
		t.Errorf("dec 2025 = %d", got)
	}
}
