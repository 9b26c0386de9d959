package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/swapbot/internal/application"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type exportPageMsg application.ExportProgress

type exportDoneMsg struct {
	result application.ExportResult
	err    error
}

// exportProgressModel shows how far the history walk has got while an export runs.
type exportProgressModel struct {
	spinner  spinner.Model
	count    lipgloss.Style
	run      tea.Cmd
	progress application.ExportProgress
	result   application.ExportResult
	err      error
	done     bool
}

func newExportProgressModel(run tea.Cmd) exportProgressModel {
	return exportProgressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("39"))),
		),
		count: lipgloss.NewStyle().Bold(true),
		run:   run,
	}
}

func (m exportProgressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.run)
}

func (m exportProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case exportPageMsg:
		m.progress = application.ExportProgress(msg)
		return m, nil
	case exportDoneMsg:
		m.done = true
		m.result, m.err = msg.result, msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m exportProgressModel) View() string {
	switch {
	case m.done:
		return ""
	case m.progress.Page == 0:
		return m.spinner.View() + " requesting the first history page"
	default:
		return fmt.Sprintf("%s history page %s fetched, %s records so far",
			m.spinner.View(), m.count.Render(fmt.Sprint(m.progress.Page)), m.count.Render(fmt.Sprint(m.progress.Records)))
	}
}

// exportWithProgress runs the export while drawing per-page progress on output.
func exportWithProgress(ctx context.Context, output io.Writer, exporter *application.HistoryExporter, anonymized bool) (application.ExportResult, error) {
	var p *tea.Program
	exporter.OnPage(func(progress application.ExportProgress) {
		p.Send(exportPageMsg(progress))
	})
	defer exporter.OnPage(nil)

	run := func() tea.Msg {
		result, err := exporter.Export(ctx, anonymized)
		return exportDoneMsg{result: result, err: err}
	}
	p = tea.NewProgram(newExportProgressModel(run),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return application.ExportResult{}, err
	}

	m, ok := final.(exportProgressModel)
	if !ok {
		return application.ExportResult{}, fmt.Errorf("unexpected final progress model %T", final)
	}
	return m.result, m.err
}
