package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// BalanceSnapshot is the last-fetched view of one identity's buckets. The
// remote ledger owns the real invariants (Investment equals the sum of Funds);
// the client treats the snapshot as opaque and replaces it wholesale.
type BalanceSnapshot struct {
	Cash       decimal.Decimal
	Savings    decimal.Decimal
	Investment decimal.Decimal
	Funds      map[string]decimal.Decimal
}

// FundHolding is one fund row prepared for rendering.
type FundHolding struct {
	Name   string
	Amount decimal.Decimal
}

// SortedFunds returns the fund holdings in name order. The wire format is an
// unordered map, so rendering needs a stable order.
func (s BalanceSnapshot) SortedFunds() []FundHolding {
	holdings := make([]FundHolding, 0, len(s.Funds))
	for name, amount := range s.Funds {
		holdings = append(holdings, FundHolding{Name: name, Amount: amount})
	}

	sort.Slice(holdings, func(i, j int) bool {
		return holdings[i].Name < holdings[j].Name
	})

	return holdings
}

// FormatAmount renders a decimal as the user-facing dollar string, always
// with two decimal places.
func FormatAmount(amount decimal.Decimal) string {
	return "$" + amount.StringFixed(2)
}
