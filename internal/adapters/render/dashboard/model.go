// Package dashboard is the interactive client: identity picker, balance
// panel, operation forms, activity feed and the transient toast line.
//
// All session state lives in the application service; the model only holds
// input state and re-reads the service on every message. Operations run in
// bubbletea commands, so several may be in flight at once; the service's
// generation check keeps late responses from touching a newer session.
package dashboard

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/greendaybank/greenday-cli/internal/application"
	"github.com/greendaybank/greenday-cli/internal/domain"
	"github.com/shopspring/decimal"
)

const tickInterval = 500 * time.Millisecond

// knownFunds mirrors the funds the ledger offers.
var knownFunds = []string{"LOW_RISK", "MEDIUM_RISK", "HIGH_RISK"}

type screen int

const (
	screenPicker screen = iota
	screenDashboard
)

type usersLoadedMsg struct {
	users []domain.Identity
	err   error
}

type loggedInMsg struct{}

type operationDoneMsg struct {
	err error
}

type refreshDoneMsg struct{}

type tickMsg time.Time

type operationForm struct {
	active      bool
	kind        domain.OperationKind
	amount      textinput.Model
	recipient   textinput.Model
	direction   domain.TransferDirection
	fundIndex   int
	focusSecond bool
}

type Model struct {
	svc    *application.Service
	styles styles

	screen       screen
	users        []domain.Identity
	cursor       int
	loadingUsers bool

	form operationForm
}

func New(svc *application.Service) Model {
	amount := textinput.New()
	amount.Placeholder = "0.00"
	amount.CharLimit = 16
	amount.Width = 16

	recipient := textinput.New()
	recipient.Placeholder = "recipient"
	recipient.CharLimit = 32
	recipient.Width = 20

	return Model{
		svc:          svc,
		styles:       newStyles(),
		screen:       screenPicker,
		loadingUsers: true,
		form: operationForm{
			amount:    amount,
			recipient: recipient,
			direction: domain.SavingsToInvestment,
		},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadUsers(), tick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		// re-render so the toast expires on time
		return m, tick()
	case usersLoadedMsg:
		m.loadingUsers = false
		if msg.err == nil {
			m.users = msg.users
			if m.cursor >= len(m.users) {
				m.cursor = 0
			}
		}
		return m, nil
	case loggedInMsg:
		m.screen = screenDashboard
		return m, nil
	case operationDoneMsg:
		if msg.err == nil {
			m.form = m.resetForm()
		}
		return m, nil
	case refreshDoneMsg:
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.screen == screenPicker {
		return m.handlePickerKey(msg)
	}
	if m.form.active {
		return m.handleFormKey(msg)
	}
	return m.handleDashboardKey(msg)
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "r":
		if !m.loadingUsers {
			m.loadingUsers = true
			return m, m.loadUsers()
		}
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.users)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if len(m.users) == 0 {
			return m, nil
		}
		return m, m.login(m.users[m.cursor])
	default:
		return m, nil
	}
}

func (m Model) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "x":
		m.svc.Logout()
		m.screen = screenPicker
		m.form = m.resetForm()
		return m, nil
	case "r":
		return m, m.refresh()
	case "d":
		return m.openForm(domain.OperationDeposit), nil
	case "w":
		return m.openForm(domain.OperationWithdraw), nil
	case "s":
		return m.openForm(domain.OperationSend), nil
	case "t":
		return m.openForm(domain.OperationTransfer), nil
	case "i":
		return m.openForm(domain.OperationInvest), nil
	case "l":
		return m, m.submit(domain.NewLiquidateInvestments())
	default:
		return m, nil
	}
}

func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.form = m.resetForm()
		return m, nil
	case "enter":
		return m, m.submit(m.buildRequest())
	case "tab":
		if m.form.kind == domain.OperationSend {
			m.form.focusSecond = !m.form.focusSecond
			m.syncFormFocus()
		}
		return m, nil
	case "left", "right":
		switch m.form.kind {
		case domain.OperationTransfer:
			if m.form.direction == domain.SavingsToInvestment {
				m.form.direction = domain.InvestmentToSavings
			} else {
				m.form.direction = domain.SavingsToInvestment
			}
			return m, nil
		case domain.OperationInvest:
			if msg.String() == "left" {
				m.form.fundIndex = (m.form.fundIndex + len(knownFunds) - 1) % len(knownFunds)
			} else {
				m.form.fundIndex = (m.form.fundIndex + 1) % len(knownFunds)
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.form.kind == domain.OperationSend && m.form.focusSecond {
		m.form.recipient, cmd = m.form.recipient.Update(msg)
	} else {
		m.form.amount, cmd = m.form.amount.Update(msg)
	}
	return m, cmd
}

func (m Model) openForm(kind domain.OperationKind) Model {
	m.form = m.resetForm()
	m.form.active = true
	m.form.kind = kind
	m.syncFormFocus()
	return m
}

func (m *Model) syncFormFocus() {
	if m.form.kind == domain.OperationSend && m.form.focusSecond {
		m.form.amount.Blur()
		m.form.recipient.Focus()
		return
	}
	m.form.recipient.Blur()
	m.form.amount.Focus()
}

func (m Model) resetForm() operationForm {
	form := m.form
	form.active = false
	form.kind = ""
	form.amount.Reset()
	form.recipient.Reset()
	form.amount.Blur()
	form.recipient.Blur()
	form.direction = domain.SavingsToInvestment
	form.fundIndex = 0
	form.focusSecond = false
	return form
}

// buildRequest assembles the operation from the form. A bad amount becomes
// zero so the service's validation produces the user-facing message.
func (m Model) buildRequest() domain.OperationRequest {
	amount, err := domain.ParseAmount(m.form.amount.Value())
	if err != nil {
		amount = decimal.Zero
	}

	switch m.form.kind {
	case domain.OperationDeposit:
		return domain.NewDeposit(amount)
	case domain.OperationWithdraw:
		return domain.NewWithdraw(amount)
	case domain.OperationSend:
		return domain.NewSend(domain.Identity(m.form.recipient.Value()), amount)
	case domain.OperationTransfer:
		return domain.NewTransfer(m.form.direction, amount)
	case domain.OperationInvest:
		return domain.NewInvest(knownFunds[m.form.fundIndex], amount)
	default:
		return domain.NewLiquidateInvestments()
	}
}

func (m Model) loadUsers() tea.Cmd {
	return func() tea.Msg {
		users, err := m.svc.Identities(context.Background())
		return usersLoadedMsg{users: users, err: err}
	}
}

func (m Model) login(identity domain.Identity) tea.Cmd {
	return func() tea.Msg {
		_ = m.svc.Login(context.Background(), identity)
		return loggedInMsg{}
	}
}

func (m Model) submit(req domain.OperationRequest) tea.Cmd {
	return func() tea.Msg {
		return operationDoneMsg{err: m.svc.Submit(context.Background(), req)}
	}
}

func (m Model) refresh() tea.Cmd {
	return func() tea.Msg {
		_ = m.svc.Refresh(context.Background())
		return refreshDoneMsg{}
	}
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the interactive session and blocks until the user quits.
func Run(ctx context.Context, svc *application.Service, output io.Writer) error {
	opts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if output != nil {
		opts = append(opts, tea.WithOutput(output))
	}

	p := tea.NewProgram(New(svc), opts...)
	_, err := p.Run()
	return err
}
