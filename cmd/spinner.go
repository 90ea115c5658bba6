package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("69"))
	elapsedStyle  = lipgloss.NewStyle().Faint(true)
)

// requestFinishedMsg carries the outcome of the request being waited on.
type requestFinishedMsg struct {
	err error
}

// requestProgress draws a spinner next to what is in flight and how long it
// has been waiting for the E*TRADE API.
type requestProgress struct {
	spinner  spinner.Model
	label    string
	request  tea.Cmd
	started  time.Time
	elapsed  time.Duration
	now      func() time.Time
	err      error
	finished bool
}

func newRequestProgress(label string, request tea.Cmd, now func() time.Time) requestProgress {
	if now == nil {
		now = time.Now
	}
	return requestProgress{
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(progressStyle)),
		label:   label,
		request: request,
		started: now(),
		now:     now,
	}
}

func (m requestProgress) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.request)
}

func (m requestProgress) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.elapsed = m.now().Sub(m.started)
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case requestFinishedMsg:
		m.finished = true
		m.elapsed = m.now().Sub(m.started)
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m requestProgress) View() string {
	if m.finished {
		return ""
	}
	return fmt.Sprintf("%s %s %s", m.spinner.View(), m.label, elapsedStyle.Render(formatElapsed(m.elapsed)))
}

// formatElapsed rounds to tenths of a second, e.g. "1.2s".
func formatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%.1fs", d.Round(100*time.Millisecond).Seconds())
}

// runWithSpinner runs work while the progress line is drawn on output. With
// quiet set work runs directly. A canceled ctx is reported as ctx.Err().
func runWithSpinner(ctx context.Context, output io.Writer, label string, quiet bool, work func(context.Context) error) error {
	if quiet {
		return work(ctx)
	}

	request := func() tea.Msg {
		return requestFinishedMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newRequestProgress(label, request, nil),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, tea.ErrProgramKilled) {
			return ctxErr
		}
		return err
	}

	result, ok := finalModel.(requestProgress)
	if !ok {
		return fmt.Errorf("unexpected final progress model type %T", finalModel)
	}
	return result.err
}
