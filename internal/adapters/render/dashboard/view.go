package dashboard

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/greendaybank/greenday-cli/internal/domain"
)

func (m Model) View() string {
	if m.screen == screenPicker {
		return m.viewPicker()
	}
	return m.viewDashboard()
}

func (m Model) viewPicker() string {
	lines := []string{
		m.styles.title.Render("Green Day Bank"),
		m.styles.header.Render("Select a user to log in"),
		"",
	}

	switch {
	case m.loadingUsers:
		lines = append(lines, m.styles.empty.Render("Loading users..."))
	case len(m.users) == 0:
		lines = append(lines, m.styles.empty.Render("No users available. Press r to retry."))
	default:
		for i, user := range m.users {
			marker := "  "
			name := user.String()
			if i == m.cursor {
				marker = m.styles.cursor.Render("> ")
				name = m.styles.cursor.Render(name)
			}
			lines = append(lines, marker+name)
		}
	}

	lines = append(lines, "", m.toastLine(), m.styles.help.Render("enter login · r reload · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) viewDashboard() string {
	lines := []string{
		m.styles.title.Render("Green Day Bank"),
		m.styles.header.Render("Logged in as ") + m.styles.user.Render(m.svc.Identity().String()),
		"",
	}

	lines = append(lines, m.balanceLines()...)

	if m.form.active {
		lines = append(lines, m.styles.section.Render(m.formLines()))
	}

	lines = append(lines,
		m.styles.section.Render(m.activityLines()),
		"",
		m.toastLine(),
		m.styles.help.Render("d deposit · w withdraw · s send · t transfer · i invest · l liquidate · r refresh · x logout · q quit"),
	)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) balanceLines() []string {
	snapshot, ok := m.svc.Snapshot()
	if !ok {
		return []string{m.styles.empty.Render("Balance not loaded.")}
	}

	lines := []string{
		m.bucketLine("Cash", domain.FormatAmount(snapshot.Cash)),
		m.bucketLine("Savings", domain.FormatAmount(snapshot.Savings)),
		m.bucketLine("Investment", domain.FormatAmount(snapshot.Investment)),
	}

	for _, holding := range snapshot.SortedFunds() {
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			"  ",
			m.styles.fundName.Render(fmt.Sprintf("%-12s", holding.Name)),
			m.styles.formValue.Render(domain.FormatAmount(holding.Amount)),
		))
	}

	return lines
}

func (m Model) bucketLine(name, amount string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.styles.bucketName.Render(fmt.Sprintf("%-12s", name)),
		m.styles.amount.Render(amount),
	)
}

func (m Model) formLines() string {
	lines := []string{m.styles.formLabel.Render(formTitle(m.form.kind))}

	switch m.form.kind {
	case domain.OperationSend:
		lines = append(lines,
			m.styles.formLabel.Render("To:     ")+m.form.recipient.View(),
			m.styles.formLabel.Render("Amount: ")+m.form.amount.View(),
			m.styles.help.Render("tab switch field · enter submit · esc cancel"),
		)
	case domain.OperationTransfer:
		lines = append(lines,
			m.styles.formLabel.Render("Direction: ")+m.styles.formValue.Render(m.form.direction.Label()),
			m.styles.formLabel.Render("Amount:    ")+m.form.amount.View(),
			m.styles.help.Render("←/→ direction · enter submit · esc cancel"),
		)
	case domain.OperationInvest:
		lines = append(lines,
			m.styles.formLabel.Render("Fund:   ")+m.styles.formValue.Render(knownFunds[m.form.fundIndex]),
			m.styles.formLabel.Render("Amount: ")+m.form.amount.View(),
			m.styles.help.Render("←/→ fund · enter submit · esc cancel"),
		)
	default:
		lines = append(lines,
			m.styles.formLabel.Render("Amount: ")+m.form.amount.View(),
			m.styles.help.Render("enter submit · esc cancel"),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func formTitle(kind domain.OperationKind) string {
	switch kind {
	case domain.OperationDeposit:
		return "Deposit to savings"
	case domain.OperationWithdraw:
		return "Withdraw from savings"
	case domain.OperationSend:
		return "Send money"
	case domain.OperationTransfer:
		return "Transfer"
	case domain.OperationInvest:
		return "Invest in fund"
	default:
		return string(kind)
	}
}

func (m Model) activityLines() string {
	entries := m.svc.Activity()
	lines := []string{m.styles.header.Render("Recent activity")}

	if len(entries) == 0 {
		lines = append(lines, m.styles.empty.Render("No activities yet"))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, entry := range entries {
		style := m.styles.info
		switch entry.Kind {
		case domain.ActivitySuccess:
			style = m.styles.success
		case domain.ActivityError:
			style = m.styles.errorText
		}
		lines = append(lines, lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.styles.activityTime.Render(entry.At.Format("15:04:05")),
			" ",
			style.Render(entry.Message),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) toastLine() string {
	notification, ok := m.svc.Notification()
	if !ok {
		return ""
	}

	style := m.styles.toastInfo
	switch notification.Kind {
	case domain.ActivitySuccess:
		style = m.styles.toastSuccess
	case domain.ActivityError:
		style = m.styles.toastError
	}

	return style.Render(notification.Message)
}
