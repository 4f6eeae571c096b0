// Command visualize is a terminal UI that feeds random pixel mutations into
// an Engine on a tick and renders the live binary frame alongside an ASCII
// heatmap of the current 2D-DFT magnitude.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	eventfft "github.com/cwbudde/eventfft"
)

func main() {
	size := flag.Int("size", 32, "frame size (power of two)")
	rate := flag.Duration("rate", 150*time.Millisecond, "tick interval between injected stimuli")
	flag.Parse()

	engine, err := eventfft.NewEngine(*size)
	if err != nil {
		fmt.Println(err)
		return
	}
	if err := engine.Initialize(nil); err != nil {
		fmt.Println(err)
		return
	}

	m := model{
		engine: engine,
		size:   *size,
		rate:   *rate,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Println(err)
	}
}

type tickMsg time.Time

func tickCmd(rate time.Duration) tea.Cmd {
	return tea.Tick(rate, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type model struct {
	engine *eventfft.Engine
	size   int
	rate   time.Duration
	rng    *rand.Rand
	steps  int
	last   eventfft.Stimulus
	width  int
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.rate)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tickMsg:
		row, col := m.rng.Intn(m.size), m.rng.Intn(m.size)
		state := eventfft.State(m.rng.Intn(2) == 0)
		s := eventfft.NewStimulus(row, col, state)
		_, _ = m.engine.Update(s)
		m.last = s
		m.steps++
		return m, tickCmd(m.rate)
	}
	return m, nil
}

func (m model) View() string {
	frame, err := m.engine.Frame()
	if err != nil {
		return err.Error()
	}
	fft, err := m.engine.FFT()
	if err != nil {
		return err.Error()
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("eventfft visualize") + "\n\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("step %d   last %s", m.steps, m.last)) + "\n\n")
	b.WriteString(renderFrame(frame) + "\n")
	b.WriteString(renderMagnitude(fft) + "\n")
	b.WriteString(helpStyle.Render("q to quit") + "\n")
	return b.String()
}

func renderFrame(frame [][]byte) string {
	var b strings.Builder
	for _, row := range frame {
		for _, v := range row {
			if v != 0 {
				b.WriteString("#")
			} else {
				b.WriteString(".")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}

var ramp = " .:-=+*#%@"

func renderMagnitude(fft [][]complex64) string {
	var max float64
	mags := make([][]float64, len(fft))
	for r, row := range fft {
		mags[r] = make([]float64, len(row))
		for c, v := range row {
			mag := math.Hypot(float64(real(v)), float64(imag(v)))
			mags[r][c] = mag
			if mag > max {
				max = mag
			}
		}
	}
	if max == 0 {
		max = 1
	}

	var b strings.Builder
	for _, row := range mags {
		for _, mag := range row {
			idx := int(mag / max * float64(len(ramp)-1))
			b.WriteByte(ramp[idx])
		}
		b.WriteString("\n")
	}
	return b.String()
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#888888"})

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#BBBBBB"})

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#999999", Dark: "#666666"})
)
