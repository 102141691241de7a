package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/boxes360/stalker-bot/pkg/catalog"
	"github.com/boxes360/stalker-bot/pkg/engine"
)

type uiMode int

const (
	modeNaming uiMode = iota
	modeActions
	modeTerminal
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	narrativeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	actionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("208"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// ConsoleUI is the BubbleTea model that runs the play client.
type ConsoleUI struct {
	client    *apiClient
	viewport  viewport.Model
	textinput textinput.Model
	mode      uiMode
	output    engine.Output
	cursor    int
	width     int
	height    int
	ready     bool
	loading   bool
	err       error
}

type outputMsg struct {
	out engine.Output
	err error
}

func newConsoleUI(client *apiClient, initial engine.Output) *ConsoleUI {
	ti := textinput.New()
	ti.Placeholder = "Your name..."
	ti.CharLimit = 32
	ti.Focus()

	return &ConsoleUI{
		client:    client,
		textinput: ti,
		mode:      modeNaming,
		output:    initial,
	}
}

func (ui *ConsoleUI) Init() tea.Cmd {
	return textinput.Blink
}

func (ui *ConsoleUI) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		ui.width = msg.Width
		ui.height = msg.Height
		vpHeight := msg.Height - 12
		if vpHeight < 4 {
			vpHeight = 4
		}
		if !ui.ready {
			ui.viewport = viewport.New(msg.Width-2, vpHeight)
			ui.ready = true
		} else {
			ui.viewport.Width = msg.Width - 2
			ui.viewport.Height = vpHeight
		}
		ui.refreshViewport()
		return ui, nil

	case tea.KeyMsg:
		return ui.handleKey(msg)

	case outputMsg:
		ui.loading = false
		if msg.err != nil {
			ui.err = msg.err
			return ui, nil
		}
		ui.err = nil
		ui.setOutput(msg.out)
		return ui, nil
	}

	var cmd tea.Cmd
	ui.textinput, cmd = ui.textinput.Update(msg)
	return ui, cmd
}

func (ui *ConsoleUI) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return ui, tea.Quit
	}

	if ui.loading {
		return ui, nil
	}

	switch ui.mode {
	case modeNaming:
		if msg.String() == "enter" {
			name := strings.TrimSpace(ui.textinput.Value())
			if name == "" {
				return ui, nil
			}
			ui.loading = true
			return ui, ui.requestCmd(func() (engine.Output, error) {
				return ui.client.completeNaming(name)
			})
		}
		var cmd tea.Cmd
		ui.textinput, cmd = ui.textinput.Update(msg)
		return ui, cmd

	case modeActions:
		switch msg.String() {
		case "up", "k":
			if ui.cursor > 0 {
				ui.cursor--
			}
		case "down", "j":
			if ui.cursor < len(ui.output.Actions)-1 {
				ui.cursor++
			}
		case "enter":
			action := ui.output.Actions[ui.cursor]
			ui.loading = true
			return ui, ui.requestCmd(func() (engine.Output, error) {
				return ui.client.dispatch(action)
			})
		case "m":
			// Always-present shortcut to the meta menu.
			ui.loading = true
			return ui, ui.requestCmd(func() (engine.Output, error) {
				return ui.client.dispatch(catalog.ActionMenu)
			})
		case "r":
			return ui, ui.resetCmd()
		}
		return ui, nil

	case modeTerminal:
		if msg.String() == "r" {
			return ui, ui.resetCmd()
		}
		return ui, nil
	}

	return ui, nil
}

func (ui *ConsoleUI) resetCmd() tea.Cmd {
	ui.loading = true
	return ui.requestCmd(ui.client.reset)
}

func (ui *ConsoleUI) requestCmd(fn func() (engine.Output, error)) tea.Cmd {
	return func() tea.Msg {
		out, err := fn()
		return outputMsg{out: out, err: err}
	}
}

func (ui *ConsoleUI) setOutput(out engine.Output) {
	ui.output = out
	ui.cursor = 0

	switch {
	case len(out.Actions) > 0:
		ui.mode = modeActions
	case strings.Contains(out.Text, "Type your name"):
		ui.mode = modeNaming
		ui.textinput.Reset()
		ui.textinput.Focus()
	default:
		ui.mode = modeTerminal
	}
	ui.refreshViewport()
}

func (ui *ConsoleUI) refreshViewport() {
	if !ui.ready {
		return
	}
	wrapped := wordwrap.String(ui.output.Text, ui.viewport.Width)
	ui.viewport.SetContent(narrativeStyle.Render(wrapped))
	ui.viewport.GotoTop()
}

func (ui *ConsoleUI) View() string {
	if !ui.ready {
		return "Loading..."
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("ZONE STORY"))
	sb.WriteString("\n\n")
	sb.WriteString(ui.viewport.View())
	sb.WriteString("\n\n")

	if ui.err != nil {
		sb.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", ui.err)))
		sb.WriteString("\n\n")
	}

	switch ui.mode {
	case modeNaming:
		sb.WriteString(ui.textinput.View())
		sb.WriteString("\n\n")
		sb.WriteString(helpStyle.Render("enter: confirm • esc: quit"))

	case modeActions:
		for i, action := range ui.output.Actions {
			label := catalog.ActionLabel(action)
			if i == ui.cursor {
				sb.WriteString(selectedStyle.Render("> " + label))
			} else {
				sb.WriteString(actionStyle.Render("  " + label))
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("↑/↓: select • enter: act • m: menu • r: reset • esc: quit"))

	case modeTerminal:
		sb.WriteString(helpStyle.Render("r: reset • esc: quit"))
	}

	if ui.loading {
		sb.WriteString("\n")
		sb.WriteString(helpStyle.Render("..."))
	}

	return sb.String()
}
