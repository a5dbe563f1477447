package viz

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/dataset"
	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/export"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorting"
)

const (
	width      = 100
	height     = 30
	infoWidth  = 44
	barsHeight = 16
	speedStep  = 10 * time.Millisecond

	gifWidth  = 640
	gifHeight = 360
)

type tickMsg struct{ id int }

type Options struct {
	Theme   string
	GIFPath string
	Logger  *slog.Logger
}

// Model is the interactive sorting visualizer. It owns no sorting state of
// its own: every run goes through the driver.
type Model struct {
	drv     *driver.Driver
	metrics *metrics.Set
	inv     *metrics.Inversions
	logger  *slog.Logger

	keys   keyMap
	help   help.Model
	theme  Theme
	styles styles

	step    sorting.Step
	hasStep bool
	running bool
	tickID  int
	frame   int
	status  string
	failed  bool

	showInfo  bool
	recording bool
	recorder  *export.Recorder
	gifPath   string

	width, height int
}

// NewModel wires the app to drv. The metrics set it creates is registered as
// a driver observer.
func NewModel(drv *driver.Driver, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.GIFPath == "" {
		opts.GIFPath = "sortviz.gif"
	}

	inv := metrics.NewInversions()
	set := metrics.NewSet(metrics.NewSteps(), metrics.NewComparisons(), metrics.NewWrites(), inv)
	drv.AddObserver(set)

	theme := GetTheme(opts.Theme)
	return Model{
		drv:      drv,
		metrics:  set,
		inv:      inv,
		logger:   opts.Logger,
		keys:     defaultKeys(),
		help:     help.New(),
		theme:    theme,
		styles:   newStyles(theme),
		status:   "Ready",
		showInfo: true,
		recorder: export.NewRecorder(gifWidth, gifHeight, 5, theme.Palette()),
		gifPath:  opts.GIFPath,
		width:    width,
		height:   height,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) tick() tea.Cmd {
	id := m.tickID
	return tea.Tick(m.drv.Interval(), func(time.Time) tea.Msg { return tickMsg{id: id} })
}

// Update handles input events and advances the active run.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		if msg.id != m.tickID || !m.running {
			return m, nil
		}
		return m.advance()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.drv.StopRun()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Start):
		return m.start()
	case key.Matches(msg, m.keys.Stop):
		m.stop()
	case key.Matches(msg, m.keys.NewArray):
		_, err := m.drv.Regenerate()
		m.afterReconfigure(err, "New array")
	case key.Matches(msg, m.keys.NextAlg):
		err := m.drv.SetAlgorithm(m.drv.Algorithm().Next())
		m.afterReconfigure(err, m.drv.Algorithm().Name())
	case key.Matches(msg, m.keys.PrevAlg):
		err := m.drv.SetAlgorithm(prevAlgorithm(m.drv.Algorithm()))
		m.afterReconfigure(err, m.drv.Algorithm().Name())
	case key.Matches(msg, m.keys.Bigger):
		_, err := m.drv.RegenerateArray(m.drv.Size() + 1)
		m.afterReconfigure(err, fmt.Sprintf("Size %d", m.drv.Size()))
	case key.Matches(msg, m.keys.Smaller):
		_, err := m.drv.RegenerateArray(m.drv.Size() - 1)
		m.afterReconfigure(err, fmt.Sprintf("Size %d", m.drv.Size()))
	case key.Matches(msg, m.keys.Faster):
		m.drv.SetInterval(m.drv.Interval() - speedStep)
	case key.Matches(msg, m.keys.Slower):
		m.drv.SetInterval(m.drv.Interval() + speedStep)
	case key.Matches(msg, m.keys.Pattern):
		err := m.drv.SetPattern(nextPattern(m.drv.Pattern()))
		m.afterReconfigure(err, "Pattern "+string(m.drv.Pattern()))
	case key.Matches(msg, m.keys.Theme):
		m.theme = NextTheme(m.theme.Name)
		m.styles = newStyles(m.theme)
	case key.Matches(msg, m.keys.Record):
		m.toggleRecording()
	case key.Matches(msg, m.keys.Info):
		m.showInfo = !m.showInfo
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) start() (tea.Model, tea.Cmd) {
	if err := m.drv.Start(); err != nil {
		m.setError(err)
		return m, nil
	}
	m.running = true
	m.tickID++
	m.hasStep = false
	m.setStatus("Running")
	return m, m.tick()
}

func (m *Model) stop() {
	wasActive := m.drv.Active()
	m.drv.StopRun()
	m.running = false
	m.tickID++
	if wasActive {
		m.setStatus("Stopped")
	}
}

func (m Model) advance() (tea.Model, tea.Cmd) {
	step, st := m.drv.Tick()
	switch st {
	case driver.StatusStep:
		m.step, m.hasStep = step, true
		m.frame++
		if m.recording {
			m.recorder.Capture(step)
		}
		if step.Terminal {
			m.running = false
			m.setStatus(step.Description)
			// drain so the driver goes idle
			m.drv.Tick()
			return m, nil
		}
		return m, m.tick()
	default:
		m.running = false
		return m, nil
	}
}

// afterReconfigure shows the staged array after an accepted request, or the
// rejection in the status line.
func (m *Model) afterReconfigure(err error, ok string) {
	if err != nil {
		m.setError(err)
		return
	}
	m.hasStep = false
	m.setStatus(ok)
}

func (m *Model) toggleRecording() {
	if !m.recording {
		m.recorder = export.NewRecorder(gifWidth, gifHeight, 5, m.theme.Palette())
		m.recording = true
		m.setStatus("Recording")
		return
	}
	m.recording = false
	frames := m.recorder.Frames()
	if err := m.recorder.Save(m.gifPath); err != nil {
		m.setError(err)
		return
	}
	m.logger.Info("gif saved", slog.String("path", m.gifPath), slog.Int("frames", frames))
	m.setStatus(fmt.Sprintf("Saved %d frames to %s", frames, m.gifPath))
}

func (m *Model) setStatus(s string) { m.status, m.failed = s, false }

func (m *Model) setError(err error) {
	m.failed = true
	switch {
	case errors.Is(err, driver.ErrRunActive):
		m.status = "Stop the current run first"
	case errors.Is(err, driver.ErrInvalidSize):
		m.status = fmt.Sprintf("Size must be between %d and %d", driver.MinSize, driver.MaxSize)
	default:
		m.status = err.Error()
	}
}

// current returns what the bars should show: the latest step of the run, or
// the staged array when no run has produced one yet.
func (m Model) current() sorting.Step {
	if m.hasStep {
		return m.step
	}
	values := m.drv.Array()
	return sorting.Step{
		Seq:         -1,
		Values:      values,
		Highlights:  sorting.NewHighlights(len(values)),
		Description: "Press s to start",
	}
}

// View renders the TUI interface.
func (m Model) View() string {
	step := m.current()

	left := m.viewBars(step)
	if !m.showInfo {
		return lipgloss.JoinVertical(lipgloss.Left, left, m.help.View(m.keys))
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, m.viewInfo())
	return lipgloss.JoinVertical(lipgloss.Left, body, m.help.View(m.keys))
}

func (m Model) viewBars(step sorting.Step) string {
	var s strings.Builder

	alg := m.drv.Algorithm()
	if m.hasStep {
		alg = m.drv.RunAlgorithm()
	}
	s.WriteString(GradientText("SORTVIZ", m.theme.Primary, m.theme.Secondary) + "  " + m.styles.title.Render(alg.Name()) + "\n")
	s.WriteString(m.viewStatus() + "\n\n")

	avail := m.width - 6
	if m.showInfo {
		avail -= infoWidth + 4
	}
	bw := barWidthFor(len(step.Values), avail)
	s.WriteString(m.styles.panel.Render(renderBars(step.Values, step.Highlights, barsHeight, bw, m.theme)) + "\n")

	desc := step.Description
	if step.Seq >= 0 {
		desc = fmt.Sprintf("Step %d: %s", step.Seq, step.Description)
	}
	s.WriteString(" " + m.styles.desc.Render(desc) + "\n")
	s.WriteString(" " + renderLegend(m.theme, m.styles.muted) + "\n\n")

	s.WriteString(" " + m.styles.label.Render("Size") + m.styles.value.Render(fmt.Sprintf("%d", m.drv.Size())) + "\n")
	s.WriteString(" " + m.styles.label.Render("Speed") + m.styles.value.Render(fmt.Sprintf("%d ms", m.drv.Interval().Milliseconds())) + "\n")
	s.WriteString(" " + m.styles.label.Render("Pattern") + m.styles.value.Render(string(m.drv.Pattern())) + "\n")
	s.WriteString(" " + m.styles.label.Render("Theme") + m.styles.value.Render(m.theme.Name) + "\n")
	return s.String()
}

func (m Model) viewStatus() string {
	status := m.status
	if m.recording {
		status += fmt.Sprintf("  ● REC %d", m.recorder.Frames())
	}
	switch {
	case m.failed:
		return m.styles.errorText.Render(status)
	case m.running:
		return m.styles.running.Render(AnimatedSpinner(m.frame) + " " + status)
	default:
		return m.styles.stopped.Render(status)
	}
}

func (m Model) viewInfo() string {
	var s strings.Builder
	info, err := sorting.Info(m.drv.Algorithm())
	if err != nil {
		return ""
	}

	s.WriteString(m.styles.header.Render(info.Name) + "\n")
	s.WriteString(m.styles.label.Render("Time") + m.styles.value.Render(info.Time) + "\n")
	s.WriteString(m.styles.label.Render("Best case") + m.styles.value.Render(info.Best) + "\n")
	s.WriteString(m.styles.label.Render("Space") + m.styles.value.Render(info.Space) + "\n")
	stable := "No"
	if info.Stable {
		stable = "Yes"
	}
	s.WriteString(m.styles.label.Render("Stable") + m.styles.value.Render(stable) + "\n\n")
	s.WriteString(m.styles.value.Width(infoWidth-4).Render(info.Description) + "\n\n")

	s.WriteString(m.styles.desc.Render("How it works") + "\n")
	for i, line := range info.HowItWorks {
		s.WriteString(m.styles.muted.Width(infoWidth-4).Render(fmt.Sprintf("%d. %s", i+1, line)) + "\n")
	}

	s.WriteString("\n" + m.styles.header.Render("Run") + "\n")
	vals := m.metrics.Values()
	for _, name := range m.metrics.Names() {
		s.WriteString(m.styles.label.Render(name) + m.styles.value.Render(fmt.Sprintf("%.0f", vals[name])) + "\n")
	}

	step := m.current()
	total := len(step.Values) * (len(step.Values) - 1) / 2
	if total > 0 {
		done := 1 - float64(metrics.Count(step.Values))/float64(total)
		s.WriteString(m.styles.label.Render("sortedness") + ProgressBar(done, 20, m.styles.running) + "\n")
	}

	if hist := m.inv.History(); len(hist) > 1 {
		chart := asciigraph.Plot(hist, asciigraph.Height(5), asciigraph.Width(infoWidth-12), asciigraph.Caption("inversions"))
		s.WriteString("\n" + m.styles.graph.Render(chart) + "\n")
	}
	return m.styles.info.Render(s.String())
}

func prevAlgorithm(a sorting.Algorithm) sorting.Algorithm {
	all := sorting.Algorithms()
	i := slices.Index(all, a)
	if i <= 0 {
		return all[len(all)-1]
	}
	return all[i-1]
}

func nextPattern(p dataset.Pattern) dataset.Pattern {
	all := dataset.Patterns()
	i := slices.Index(all, p)
	return all[(i+1)%len(all)]
}

// Run starts the app on the alternate screen and blocks until it quits.
func Run(m Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
