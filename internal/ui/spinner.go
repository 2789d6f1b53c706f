package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner is an indeterminate activity indicator.
type Spinner interface {
	// SetTitle updates the displayed title.
	SetTitle(title string)

	// Stop ends the spinner and prints the final message.
	Stop(message string)
}

// NewSpinner creates a spinner for the given theme. In headless mode or
// with colors disabled it degrades to plain log lines on w.
func NewSpinner(theme *Theme, hm *HeadlessManager, w io.Writer, title string) Spinner {
	if w == nil {
		w = os.Stdout
	}
	if hm.IsHeadless() || theme.NoColor {
		return newHeadlessSpinner(w, title)
	}
	return newInteractiveSpinner(theme, title)
}

// --- headlessSpinner ---

// headlessSpinner prints title changes as plain lines.
type headlessSpinner struct {
	writer io.Writer
}

func newHeadlessSpinner(w io.Writer, title string) *headlessSpinner {
	s := &headlessSpinner{writer: w}
	fmt.Fprintln(w, title)
	return s
}

func (s *headlessSpinner) SetTitle(title string) {
	fmt.Fprintln(s.writer, title)
}

func (s *headlessSpinner) Stop(message string) {
	if message != "" {
		fmt.Fprintln(s.writer, message)
	}
}

// --- interactiveSpinner ---

// spinnerTitleMsg is sent to update the spinner title.
type spinnerTitleMsg string

// spinnerStopMsg is sent to stop the spinner.
type spinnerStopMsg struct{}

// spinnerModel is the bubbletea Model for the animated spinner.
type spinnerModel struct {
	spinner spinner.Model
	title   string
	done    bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if !theme.NoColor {
		s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(colorPrimary))
	}
	return spinnerModel{spinner: s, title: title}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinnerTitleMsg:
		m.title = string(msg)
		return m, nil
	case spinnerStopMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m spinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.title + "\n"
}

// interactiveSpinner implements Spinner with an animated bubbles spinner.
type interactiveSpinner struct {
	program *tea.Program
	once    sync.Once
}

func newInteractiveSpinner(theme *Theme, title string) *interactiveSpinner {
	p := tea.NewProgram(newSpinnerModel(theme, title))
	go func() {
		_, _ = p.Run()
	}()
	return &interactiveSpinner{program: p}
}

func (s *interactiveSpinner) SetTitle(title string) {
	s.program.Send(spinnerTitleMsg(title))
}

func (s *interactiveSpinner) Stop(message string) {
	s.once.Do(func() {
		s.program.Send(spinnerStopMsg{})
		s.program.Wait()
		if message != "" {
			fmt.Println(message)
		}
	})
}
