// Package form is the interactive terminal form for a merge run.
package form

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"surveymerge/internal/merge"
)

// Request holds the three inputs the form collects.
type Request struct {
	InputDir    string
	OutputPath  string
	GeneratePDF bool
}

// RunFunc executes a merge for a request.
type RunFunc func(ctx context.Context, req Request) (merge.Summary, error)

// Options configures the form.
type Options struct {
	InputDir    string
	OutputPath  string
	GeneratePDF bool
	NoColor     bool
	Context     context.Context
}

type focus int

const (
	focusInput focus = iota
	focusOutput
	focusPDF
	focusRun
	focusCount
)

// Model renders the form using Bubble Tea.
type Model struct {
	input   textinput.Model
	output  textinput.Model
	pdf     bool
	focus   focus
	running bool
	status  status
	summary *merge.Summary
	err     error
	table   table.Model
	run     RunFunc
	ctx     context.Context
	noColor bool
}

// NewModel constructs a form prefilled from opts.
func NewModel(run RunFunc, opts Options) Model {
	input := textinput.New()
	input.Placeholder = "directory with .json files"
	input.SetValue(opts.InputDir)
	input.Focus()

	output := textinput.New()
	output.Placeholder = "combined.xlsx"
	output.SetValue(opts.OutputPath)

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	t := table.New(
		table.WithColumns(scoreColumns()),
		table.WithRows([]table.Row{}),
		table.WithFocused(false),
		table.WithHeight(8),
		table.WithWidth(68),
	)
	t.SetStyles(tableStyles(opts.NoColor))
	return Model{
		input:   input,
		output:  output,
		pdf:     opts.GeneratePDF,
		table:   t,
		run:     run,
		ctx:     ctx,
		noColor: opts.NoColor,
	}
}

// Request returns the form's current inputs.
func (m Model) Request() Request {
	output := strings.TrimSpace(m.output.Value())
	if output == "" {
		output = m.output.Placeholder
	}
	return Request{
		InputDir:    strings.TrimSpace(m.input.Value()),
		OutputPath:  output,
		GeneratePDF: m.pdf,
	}
}

// Summary returns the last successful run, if any.
func (m Model) Summary() (merge.Summary, bool) {
	if m.summary == nil {
		return merge.Summary{}, false
	}
	return *m.summary, true
}

// Err returns the error of the last run.
func (m Model) Err() error {
	return m.err
}

// Init starts the cursor blinking.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and run completion.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.table.SetWidth(typed.Width)
		return m, nil
	case runDoneMsg:
		m.running = false
		if typed.err != nil {
			m.err = typed.err
			m.status = status{text: typed.err.Error(), failed: true}
			return m, nil
		}
		summary := typed.summary
		m.err = nil
		m.summary = &summary
		m.status = status{text: fmt.Sprintf("Merged %d JSON files into %s", summary.Records, summary.OutputPath)}
		if len(summary.PDFs) > 0 {
			m.status.text += fmt.Sprintf(" (%d score PDFs)", len(summary.PDFs))
		}
		m.table.SetRows(scoreRows(summary.Respondents))
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(typed)
	}
	return m.updateInputs(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "down":
		return m.setFocus((m.focus + 1) % focusCount), nil
	case "shift+tab", "up":
		return m.setFocus((m.focus + focusCount - 1) % focusCount), nil
	case " ":
		if m.focus == focusPDF {
			m.pdf = !m.pdf
			return m, nil
		}
	case "enter":
		if m.focus == focusPDF {
			m.pdf = !m.pdf
			return m, nil
		}
		return m.start()
	}
	return m.updateInputs(msg)
}

func (m Model) setFocus(next focus) Model {
	m.focus = next
	m.input.Blur()
	m.output.Blur()
	switch next {
	case focusInput:
		m.input.Focus()
	case focusOutput:
		m.output.Focus()
	}
	return m
}

func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.focus {
	case focusInput:
		m.input, cmd = m.input.Update(msg)
	case focusOutput:
		m.output, cmd = m.output.Update(msg)
	}
	return m, cmd
}

// start validates the inputs and launches the run.
func (m Model) start() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	req := m.Request()
	if err := checkInputDir(req.InputDir); err != nil {
		m.status = status{text: err.Error(), failed: true}
		return m, nil
	}
	if m.run == nil {
		m.status = status{text: "no runner configured", failed: true}
		return m, nil
	}
	m.running = true
	m.status = status{text: "Merging " + req.InputDir + "..."}
	return m, runCmd(m.ctx, m.run, req)
}

func checkInputDir(dir string) error {
	if dir == "" {
		return fmt.Errorf("choose an input directory")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("input directory %s does not exist", dir)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	return nil
}

// View renders the form.
func (m Model) View() string {
	sections := []string{
		renderTitle(m.noColor),
		renderField("Input directory", m.input.View(), m.focus == focusInput, m.noColor),
		renderField("Output file", m.output.View(), m.focus == focusOutput, m.noColor),
		renderField("Score PDFs", renderCheckbox(m.pdf), m.focus == focusPDF, m.noColor),
		renderButton("Merge", m.focus == focusRun, m.noColor),
	}
	if m.status.text != "" {
		sections = append(sections, renderStatus(m.status, m.noColor))
	}
	if m.summary != nil && len(m.summary.Respondents) > 0 {
		sections = append(sections, m.table.View())
	}
	sections = append(sections, renderFooter(m.noColor))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// runDoneMsg carries the outcome of a run.
type runDoneMsg struct {
	summary merge.Summary
	err     error
}

// runCmd executes the run off the UI loop.
func runCmd(ctx context.Context, run RunFunc, req Request) tea.Cmd {
	return func() tea.Msg {
		summary, err := run(ctx, req)
		return runDoneMsg{summary: summary, err: err}
	}
}
