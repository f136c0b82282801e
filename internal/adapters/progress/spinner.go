package progress

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.osec.io/solverify/internal/ui/output"
	"go.osec.io/solverify/internal/ui/style"
)

// Spinner is the interactive reporter: an animated liveness indicator that
// ticks on a short fixed interval and carries no business logic.
type Spinner struct {
	w       io.Writer
	term    *termenv.Output
	program *tea.Program
	start   time.Time
	done    chan struct{}
}

// NewSpinner creates a spinner reporter writing to w.
func NewSpinner(w io.Writer) *Spinner {
	return &Spinner{
		w:    w,
		term: output.New(w),
		done: make(chan struct{}),
	}
}

// Start launches the spinner program. It does not block.
func (s *Spinner) Start(ctx context.Context) {
	s.start = time.Now()
	s.program = tea.NewProgram(newModel(s.w),
		tea.WithOutput(s.w),
		tea.WithContext(ctx),
		tea.WithoutSignalHandler(),
		tea.WithInput(nil),
	)

	go func() {
		defer close(s.done)
		_, _ = s.program.Run()
	}()
}

// Finish delivers the one-shot terminal signal, waits for the spinner to
// stop, then prints the summary line so output never interleaves.
func (s *Spinner) Finish(success bool) {
	s.program.Send(resultMsg{success: success})
	<-s.done
	summarize(s.term, success, time.Since(s.start))
}

// resultMsg is the single terminal signal value.
type resultMsg struct {
	success bool
}

type model struct {
	spinner spinner.Model
	done    bool
}

func newModel(w io.Writer) model {
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(output.ColorProfile()))
	sp := spinner.New(
		spinner.WithSpinner(spinner.Spinner{
			Frames: style.SpinnerFrames,
			FPS:    time.Second / 10,
		}),
		spinner.WithStyle(renderer.NewStyle().Foreground(style.Iris)),
	)
	return model{spinner: sp}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s %s", m.spinner.View(), WaitingMessage, style.Hourglass)
}
