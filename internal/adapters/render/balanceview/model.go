package balanceview

import (
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/greendaybank/greenday-cli/internal/domain"
)

var ErrUnexpectedRenderModel = errors.New("unexpected final bubbletea model type")

type renderReadyMsg struct{}

type model struct {
	identity domain.Identity
	snapshot domain.BalanceSnapshot
	styles   styles
	output   string
}

func newModel(identity domain.Identity, snapshot domain.BalanceSnapshot) model {
	return model{
		identity: identity,
		snapshot: snapshot,
		styles:   newStyles(),
	}
}

func (m model) Init() tea.Cmd {
	return func() tea.Msg {
		return renderReadyMsg{}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg.(type) {
	case renderReadyMsg:
		m.output = renderView(m.identity, m.snapshot, m.styles)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m model) View() string {
	return m.output
}

// Render produces the static balance view for one identity.
func Render(identity domain.Identity, snapshot domain.BalanceSnapshot) (string, error) {
	p := tea.NewProgram(
		newModel(identity, snapshot),
		tea.WithInput(nil),
		tea.WithOutput(io.Discard),
	)

	finalModel, err := p.Run()
	if err != nil {
		return "", err
	}

	rendered, ok := finalModel.(model)
	if !ok {
		return "", ErrUnexpectedRenderModel
	}

	return rendered.View(), nil
}
