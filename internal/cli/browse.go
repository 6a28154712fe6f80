package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mhuggins102-sudo/Estimate-Game/pkg/layout"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/pipeline"
	"github.com/mhuggins102-sudo/Estimate-Game/pkg/sample"
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var width int
	var noCache bool

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Step through boards interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkPreviewWidth(width); err != nil {
				return err
			}
			ctx := cmd.Context()
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return err
			}
			defer runner.Close()

			m := newBrowseModel(ctx, runner, c.baseOptions(), width)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", defaultPreviewWidth, "preview width in terminal columns")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the measurement cache")

	return cmd
}

// =============================================================================
// browseModel - Interactive board browser
// =============================================================================

var (
	browseHelpStyle  = lipgloss.NewStyle().Foreground(colorDim)
	browseErrorStyle = lipgloss.NewStyle().Foreground(colorRed)
)

// boardMsg carries a finished generation back to the model.
type boardMsg struct {
	result *pipeline.Result
	grid   *sample.Measurement
	err    error
}

// browseModel is the bubbletea model for the board browser.
type browseModel struct {
	ctx    context.Context
	runner *pipeline.Runner
	base   pipeline.Options
	width  int

	// styleIdx indexes layout.Names(); -1 lets the selector choose.
	styleIdx int
	seed     uint64
	nextSeed func() uint64

	result  *pipeline.Result
	grid    *sample.Measurement
	err     error
	loading bool
}

func newBrowseModel(ctx context.Context, runner *pipeline.Runner, base pipeline.Options, width int) browseModel {
	return browseModel{
		ctx:      ctx,
		runner:   runner,
		base:     base,
		width:    width,
		styleIdx: -1,
		nextSeed: randomSeed,
	}
}

func (m browseModel) Init() tea.Cmd {
	return m.generate(m.nextSeed())
}

// style returns the forced style, or "" when the selector chooses.
func (m browseModel) style() string {
	if m.styleIdx < 0 {
		return ""
	}
	return layout.Names()[m.styleIdx]
}

// generate builds the board for seed off the UI goroutine.
func (m browseModel) generate(seed uint64) tea.Cmd {
	opts := m.base
	opts.Seed = seed
	opts.Style = m.style()
	ctx, runner, width := m.ctx, m.runner, m.width
	return func() tea.Msg {
		result, err := runner.Generate(ctx, opts)
		if err != nil {
			return boardMsg{err: err}
		}
		grid, err := previewMeasurement(ctx, result.Board, width)
		return boardMsg{result: result, grid: grid, err: err}
	}
}

func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case boardMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.result = msg.result
			m.grid = msg.grid
			m.seed = msg.result.Seed
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		}
		if m.loading {
			return m, nil
		}
		switch msg.String() {
		case "n", " ", "enter":
			m.loading = true
			return m, m.generate(m.nextSeed())
		case "r":
			m.loading = true
			return m, m.generate(m.seed)
		case "s", "right", "l":
			m.styleIdx = (m.styleIdx + 1) % len(layout.Names())
			m.loading = true
			return m, m.generate(m.nextSeed())
		case "left", "h":
			m.styleIdx--
			if m.styleIdx < 0 {
				m.styleIdx = len(layout.Names()) - 1
			}
			m.loading = true
			return m, m.generate(m.nextSeed())
		case "a":
			m.styleIdx = -1
			m.loading = true
			return m, m.generate(m.nextSeed())
		}
	}
	return m, nil
}

func (m browseModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Mosaic"))
	mode := "any style"
	if s := m.style(); s != "" {
		mode = s
	}
	b.WriteString(" " + StyleDim.Render(mode))
	b.WriteString("\n")
	b.WriteString(browseHelpStyle.Render("n next  r regenerate  ←/→ style  a any style  q quit"))
	b.WriteString("\n\n")

	switch {
	case m.err != nil:
		b.WriteString(browseErrorStyle.Render(m.err.Error()))
		b.WriteString("\n")
	case m.result == nil:
		b.WriteString(StyleDim.Render("Generating..."))
		b.WriteString("\n")
	default:
		r := m.result
		header := fmt.Sprintf("%s  seed %d  %d attempts", StyleTitle.Render(r.Board.Style), r.Seed, r.Attempts)
		if r.Exhausted {
			header += "  " + StyleWarning.Render("exhausted")
		}
		b.WriteString(header)
		b.WriteString("\n")
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			gridView(m.grid),
			"  ",
			breakdownTable(r.Breakdown, r.Violations)))
		b.WriteString("\n")
		if m.loading {
			b.WriteString(StyleDim.Render("Generating..."))
			b.WriteString("\n")
		}
	}
	return b.String()
}
