// Package meter accumulates billed cost across a charging session into an
// exact decimal total and reports exact deltas between successive meter
// readings from its MeteringReceipt exchanges, the way
// an application embedding the codec would report a final bill. The wire
// format itself never carries unbounded decimals (every physical quantity
// is a scaled int16, per PhysicalValueType); this package is the one place
// that needs arbitrary-precision arithmetic, bridging scaled wire integers
// into apd.Decimal for exact accumulation.
package meter

import (
	"github.com/cockroachdb/apd/v3"

	"github.com/v2g-exi/codec/v2g"
)

// SessionTotal accumulates PhysicalValue cost quantities across a session in
// exact decimal, and tracks the last MeterReading sample so it can return the
// delta to the next one; those deltas are not added to the total.
// Not safe for concurrent use; callers own serialization the same way they
// own ordering of the underlying MeteringReceiptReq/Res exchange.
type SessionTotal struct {
	ctx         apd.Context
	energy      apd.Decimal
	lastReading uint32
	haveReading bool
	sampleCount int
}

// NewSessionTotal returns a zeroed accumulator.
func NewSessionTotal() *SessionTotal {
	return &SessionTotal{ctx: apd.BaseContext}
}

// physicalValueDecimal renders a PhysicalValue as value * 10^multiplier,
// the same scaled-integer semantics §3.1 assigns the wire representation.
func physicalValueDecimal(pv v2g.PhysicalValue) *apd.Decimal {
	d := apd.New(int64(pv.Value), int32(pv.Multiplier))
	return d
}

// AddMeterReading folds one MeteringReceiptReq's MeterReading (a running
// total, not a delta) into the accumulator, returning the exact delta since
// the previous reading. The first call establishes the baseline and returns
// zero, since there is no prior reading to subtract.
func (s *SessionTotal) AddMeterReading(reading uint32) (*apd.Decimal, error) {
	delta := new(apd.Decimal)
	if !s.haveReading {
		s.lastReading = reading
		s.haveReading = true
		s.sampleCount++
		return delta, nil
	}

	from := apd.New(int64(s.lastReading), 0)
	to := apd.New(int64(reading), 0)
	if _, err := s.ctx.Sub(delta, to, from); err != nil {
		return nil, err
	}
	s.lastReading = reading
	s.sampleCount++
	return delta, nil
}

// AddCost folds a billed PhysicalValue (e.g. a cost-bearing SalesTariff
// entry's price component) into the running cost total. Units are not
// reconciled across calls; callers are responsible for passing values of a
// consistent unit, matching the wire format's own lack of cross-unit
// conversion.
func (s *SessionTotal) AddCost(pv v2g.PhysicalValue) error {
	_, err := s.ctx.Add(&s.energy, &s.energy, physicalValueDecimal(pv))
	return err
}

// Total returns the accumulated cost as an exact decimal.
func (s *SessionTotal) Total() *apd.Decimal {
	return &s.energy
}

// Samples returns how many MeterReading values have been folded in.
func (s *SessionTotal) Samples() int {
	return s.sampleCount
}

// String renders the running total for logging/CLI display.
func (s *SessionTotal) String() string {
	return s.energy.Text('f')
}
