package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/quant/internal/tracker"
)

// Input placeholders for the two indicator states
const (
	PlaceholderIdle     = "Track what you doing"
	PlaceholderTracking = "Lemme know when you are done"
)

// CommandHook is told about every line the widget forwarded
type CommandHook func(line string, res tracker.Result, err error)

// indicator mirrors whether the tracker has an active record.
// It is connected to the tracker and refreshed after every mutation.
type indicator struct {
	tracker  *tracker.Tracker
	tracking bool
}

// Refresh re-queries the tracker
func (i *indicator) Refresh() {
	_, i.tracking = i.tracker.Active()
}

// WidgetModel is the status dot plus command input
type WidgetModel struct {
	width  int
	height int

	tracker   *tracker.Tracker
	hook      CommandHook
	input     textinput.Model
	indicator *indicator

	// Animation state
	pulse *PulseState

	quitting bool
}

// pulseTickMsg advances the indicator animation
type pulseTickMsg struct{}

// NewWidgetModel creates the widget and connects it to tr
func NewWidgetModel(tr *tracker.Tracker, hook CommandHook) WidgetModel {
	input := textinput.New()
	input.Prompt = ""
	input.Width = 40
	input.CharLimit = 200
	input.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
	input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	input.Focus()

	ind := &indicator{tracker: tr}
	tr.Connect(ind)
	ind.Refresh()

	m := WidgetModel{
		tracker:   tr,
		hook:      hook,
		input:     input,
		indicator: ind,
		pulse:     NewPulseState(DefaultPulseConfig()),
	}
	m.input.Placeholder = m.placeholder()
	return m
}

// Tracking reports whether the indicator shows an active record
func (m WidgetModel) Tracking() bool {
	return m.indicator.tracking
}

// Init starts the cursor blink and the pulse ticker
func (m WidgetModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.pulse.ShouldTick() {
		cmds = append(cmds, m.pulseTick())
	}
	return tea.Batch(cmds...)
}

func (m WidgetModel) pulseTick() tea.Cmd {
	return tea.Tick(m.pulse.GetTickInterval(), func(time.Time) tea.Msg {
		return pulseTickMsg{}
	})
}

// Update handles messages
func (m WidgetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pulseTickMsg:
		// Only the tracking indicator pulses
		if m.indicator.tracking {
			m.pulse.Advance()
		}
		if !m.quitting {
			return m, m.pulseTick()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			m.submit()
			return m, nil
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit forwards the input verbatim to the tracker and clears it
func (m *WidgetModel) submit() {
	line := m.input.Value()
	res, err := m.tracker.Listen(line)
	if m.hook != nil {
		m.hook(line, res, err)
	}

	m.input.SetValue("")
	m.input.Placeholder = m.placeholder()
}

func (m WidgetModel) placeholder() string {
	if m.indicator.tracking {
		return PlaceholderTracking
	}
	return PlaceholderIdle
}

// View renders the widget
func (m WidgetModel) View() string {
	if m.quitting {
		return ""
	}

	widget := lipgloss.JoinVertical(
		lipgloss.Center,
		m.renderContainer(),
		m.renderHelpBar(),
	)

	if m.width == 0 || m.height == 0 {
		return widget
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, widget)
}

// renderContainer renders the indicator next to the input
func (m WidgetModel) renderContainer() string {
	borderColor := ColorBorder
	if m.indicator.tracking {
		borderColor = ColorAccentMain
	}

	container := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1)

	row := lipgloss.JoinHorizontal(lipgloss.Center, m.renderIndicator(), "  ", m.input.View())
	return container.Render(row)
}

// renderIndicator renders the status dot
func (m WidgetModel) renderIndicator() string {
	color := ColorDisabledText
	if m.indicator.tracking {
		color = m.pulse.Color()
	}

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Render("●")
}

// renderHelpBar renders the help line below the widget
func (m WidgetModel) renderHelpBar() string {
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)

	return helpStyle.Render("start <name>, <sector> · stop · add · delete <id> · export · esc quit")
}
