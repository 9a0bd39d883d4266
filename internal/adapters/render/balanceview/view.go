package balanceview

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/shopspring/decimal"
)

func renderView(identity domain.Identity, snapshot domain.BalanceSnapshot, s styles) string {
	lines := []string{
		s.title.Render("Green Day Bank"),
		s.header.Render(fmt.Sprintf("Logged in as %s", identity)),
		"",
		bucketLine("Cash", snapshot.Cash, s),
		bucketLine("Savings", snapshot.Savings, s),
		bucketLine("Investment", snapshot.Investment, s),
	}

	lines = append(lines, s.section.Render(renderFunds(snapshot, s)))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func bucketLine(name string, amount decimal.Decimal, s styles) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.bucketName.Render(fmt.Sprintf("%-12s", name)),
		s.amount.Render(domain.FormatAmount(amount)),
	)
}

func renderFunds(snapshot domain.BalanceSnapshot, s styles) string {
	holdings := snapshot.SortedFunds()
	if len(holdings) == 0 {
		return s.empty.Render("No fund investments.")
	}

	lines := make([]string, 0, len(holdings)+1)
	lines = append(lines, s.header.Render("Funds"))
	for _, holding := range holdings {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.fundName.Render(fmt.Sprintf("%-12s", holding.Name)),
			s.fundAmount.Render(domain.FormatAmount(holding.Amount)),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
