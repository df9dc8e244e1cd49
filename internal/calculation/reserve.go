package calculation

import "github.com/shopspring/decimal"

// ReservePolicy decides how much cash to pull into the reserve when an
// up-market year follows an empty reserve.
type ReservePolicy interface {
	ReplenishTarget(s *SimulationState, year int) decimal.Decimal
}

// FixedTargetPolicy replenishes toward a fixed amount. The zero-value
// policy targets zero, which leaves replenishment disabled.
type FixedTargetPolicy struct {
	Target decimal.Decimal
}

// ReplenishTarget returns the fixed target regardless of state.
func (p FixedTargetPolicy) ReplenishTarget(*SimulationState, int) decimal.Decimal {
	return p.Target
}

// AddReserve moves cash from the given account's balance in the given year
// into the reserve. It succeeds only when the balance strictly exceeds the
// amount; on failure the state is left untouched.
func (s *SimulationState) AddReserve(amount decimal.Decimal, account, year int) bool {
	acct := s.Accounts[account]
	if acct.Values[year].GreaterThan(amount) {
		s.CashReserve = s.CashReserve.Add(amount)
		acct.Values[year] = acct.Values[year].Sub(amount)
		return true
	}
	return false
}

// ClearReserve zeroes the reserve. Cash drained into an expense year is
// spent, not returned to any account.
func (s *SimulationState) ClearReserve() {
	s.CashReserve = decimal.Zero
}
