// Package tui implements the interactive questionnaire: the same series
// of prompts as the original console program, as a bubbletea wizard that
// ends in a result screen with the trajectory plot.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/brakesim/internal/chart"
	"github.com/san-kum/brakesim/internal/physics"
	"github.com/san-kum/brakesim/internal/scenario"
)

var (
	header    = lipgloss.NewStyle().Foreground(lipgloss.Color("#00cccc")).Bold(true)
	subtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666688"))
	pointer   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00ffff")).Bold(true)
	selected  = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Bold(true)
	unselect  = lipgloss.NewStyle().Foreground(lipgloss.Color("#555566"))
	detail    = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff88ff"))
	dimDetail = lipgloss.NewStyle().Foreground(lipgloss.Color("#444455"))
	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#00aaaa")).Bold(true)
	errStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

const (
	stateWeather = iota
	stateTyres
	stateABS
	stateAlertness
	stateSlope
	stateCar
	stateSpeed
	stateResult
)

type model struct {
	state  int
	cursor int

	weather scenario.Weather
	tyres   scenario.TyreCondition
	abs     bool
	rt      float64
	grade   scenario.GradePreset
	car     scenario.Car
	useCar  bool

	editBuf string
	errMsg  string

	outcome scenario.Outcome
	profile []physics.Sample
	grid    bool

	env           physics.Environment
	width, height int
}

func NewApp(env physics.Environment) *model {
	return &model{
		state:  stateWeather,
		rt:     scenario.ReactionAlert,
		car:    scenario.DefaultCar(),
		env:    env,
		width:  80,
		height: 24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateSpeed:
		return m.speedKey(msg)
	case stateResult:
		return m.resultKey(msg)
	}
	return m.menuKey(msg)
}

// menuKey drives every list-selection step. Each step reads its own
// option count and commits the cursor on enter.
func (m model) menuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < m.optionCount()-1 {
			m.cursor++
		}
	case "esc":
		if m.state > stateWeather {
			m.state--
			m.cursor = 0
		}
	case "enter", " ":
		m.commit()
		m.state++
		m.cursor = 0
		if m.state == stateSpeed {
			m.editBuf = ""
		}
	}
	return m, nil
}

func (m model) optionCount() int {
	switch m.state {
	case stateWeather:
		return len(scenario.Weathers())
	case stateTyres:
		return len(scenario.TyreConditions())
	case stateABS, stateAlertness:
		return 2
	case stateSlope:
		return len(scenario.GradePresets())
	case stateCar:
		return len(scenario.Cars) + 1 // plus "no car" closed-form entry
	}
	return 0
}

func (m *model) commit() {
	switch m.state {
	case stateWeather:
		m.weather = scenario.Weathers()[m.cursor]
	case stateTyres:
		m.tyres = scenario.TyreConditions()[m.cursor]
	case stateABS:
		m.abs = m.cursor == 0
	case stateAlertness:
		if m.cursor == 0 {
			m.rt = scenario.ReactionAlert
		} else {
			m.rt = scenario.ReactionTired
		}
	case stateSlope:
		m.grade = scenario.GradePresets()[m.cursor]
	case stateCar:
		if m.cursor < len(scenario.Cars) {
			m.car = scenario.Cars[m.cursor]
			m.useCar = true
		} else {
			m.useCar = false
		}
	}
}

func (m model) speedKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.state = stateCar
		m.cursor = 0
		m.errMsg = ""
	case "enter":
		speed := scenario.DefaultSpeedKmh
		if m.editBuf != "" {
			v, err := strconv.ParseFloat(m.editBuf, 64)
			if err != nil || v < 0 {
				m.errMsg = "enter a non-negative speed in km/h"
				return m, nil
			}
			speed = v
		}
		return m.run(speed)
	case "backspace":
		if len(m.editBuf) > 0 {
			m.editBuf = m.editBuf[:len(m.editBuf)-1]
		}
	default:
		if len(msg.String()) == 1 {
			c := msg.String()[0]
			if (c >= '0' && c <= '9') || c == '.' {
				m.editBuf += string(c)
			}
		}
	}
	return m, nil
}

func (m model) run(speed float64) (tea.Model, tea.Cmd) {
	sc := m.scenario(speed)

	out, err := sc.Evaluate(m.env)
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.outcome = out
	m.profile = sc.Profile(m.env, physics.DefaultProfileDt)
	m.state = stateResult
	m.errMsg = ""
	m.grid = false
	return m, nil
}

func (m model) scenario(speed float64) scenario.Scenario {
	sc := scenario.Scenario{
		SpeedKmh:     speed,
		ReactionTime: m.rt,
		Weather:      m.weather,
		Tyres:        m.tyres,
		ABS:          m.abs,
		SlopePercent: m.grade.Percent(),
	}
	if m.useCar {
		sc.Vehicle = &physics.Vehicle{
			MassKg:          m.car.MassKg,
			DragCoefficient: m.car.DragCoefficient,
			FrontalAreaM2:   m.car.FrontalAreaM2,
		}
	}
	return sc
}

func (m model) resultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "r":
		m.state = stateWeather
		m.cursor = 0
	case "g":
		m.grid = !m.grid
	}
	return m, nil
}

func (m model) View() string {
	switch m.state {
	case stateWeather:
		return m.viewMenu("WEATHER", "road surface condition", weatherOptions())
	case stateTyres:
		return m.viewMenu("TYRES", "tread condition", tyreOptions())
	case stateABS:
		return m.viewMenu("ABS", "anti-lock braking fitted", []option{
			{"yes", "+0.05 effective friction"},
			{"no", ""},
		})
	case stateAlertness:
		return m.viewMenu("DRIVER", "alertness sets reaction time", []option{
			{"alert", "1.0 s reaction"},
			{"tired / distracted", "2.0 s reaction"},
		})
	case stateSlope:
		return m.viewMenu("ROAD GRADE", "slope of the road", gradeOptions())
	case stateCar:
		return m.viewMenu("VEHICLE", "aerodynamic drag model", carOptions())
	case stateSpeed:
		return m.viewSpeed()
	case stateResult:
		return m.viewResult()
	}
	return ""
}

type option struct {
	name, desc string
}

func weatherOptions() []option {
	opts := make([]option, 0, len(scenario.Weathers()))
	for _, w := range scenario.Weathers() {
		opts = append(opts, option{w.String(), fmt.Sprintf("mu %.2f", w.BaseMu())})
	}
	return opts
}

func tyreOptions() []option {
	opts := make([]option, 0, len(scenario.TyreConditions()))
	for _, t := range scenario.TyreConditions() {
		opts = append(opts, option{t.String(), fmt.Sprintf("x%.1f", t.Factor())})
	}
	return opts
}

func gradeOptions() []option {
	opts := make([]option, 0, len(scenario.GradePresets()))
	for _, g := range scenario.GradePresets() {
		opts = append(opts, option{g.String(), fmt.Sprintf("%+.0f%%", g.Percent())})
	}
	return opts
}

func carOptions() []option {
	opts := make([]option, 0, len(scenario.Cars)+1)
	for _, c := range scenario.Cars {
		opts = append(opts, option{c.Name, fmt.Sprintf("%.0f kg, Cd %.2f", c.MassKg, c.DragCoefficient)})
	}
	opts = append(opts, option{"none", "ignore drag, closed-form model"})
	return opts
}

func (m model) viewMenu(title, sub string, opts []option) string {
	var b strings.Builder
	b.WriteString("\n\n    " + header.Render(title) + "\n    " + subtle.Render(sub) + "\n    " + subtle.Render(strings.Repeat("─", 25)) + "\n\n")
	for i, o := range opts {
		if i == m.cursor {
			b.WriteString(fmt.Sprintf("    %s %s  %s\n",
				pointer.Render("▸"),
				selected.Render(fmt.Sprintf("%-28s", o.name)),
				detail.Render(o.desc)))
		} else {
			b.WriteString(fmt.Sprintf("      %s  %s\n",
				unselect.Render(fmt.Sprintf("%-28s", o.name)),
				dimDetail.Render(o.desc)))
		}
	}
	b.WriteString("\n    " + keyStyle.Render("j/k") + unselect.Render(" navigate  ") +
		keyStyle.Render("enter") + unselect.Render(" select  ") +
		keyStyle.Render("esc") + unselect.Render(" back  ") +
		keyStyle.Render("q") + unselect.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewSpeed() string {
	var b strings.Builder
	b.WriteString("\n\n    " + header.Render("SPEED") + "\n    " + subtle.Render("initial speed in km/h") + "\n    " + subtle.Render(strings.Repeat("─", 25)) + "\n\n")

	buf := m.editBuf
	if buf == "" {
		buf = fmt.Sprintf("%.0f", scenario.DefaultSpeedKmh)
	}
	b.WriteString(fmt.Sprintf("    %s %s km/h\n", pointer.Render("▸"), selected.Render(buf+"_")))

	if m.errMsg != "" {
		b.WriteString("\n    " + errStyle.Render(m.errMsg) + "\n")
	}

	b.WriteString("\n    " + keyStyle.Render("enter") + unselect.Render(" compute  ") +
		keyStyle.Render("esc") + unselect.Render(" back  ") +
		keyStyle.Render("q") + unselect.Render(" quit") + "\n")
	return b.String()
}

func (m model) viewResult() string {
	var b strings.Builder
	b.WriteString("\n    " + header.Render("STOPPING DISTANCE") + "\n    " + subtle.Render(m.conditions()) + "\n\n")

	b.WriteString(indent(chart.Summary(m.outcome), 4))

	if m.grid {
		base := m.scenario(scenario.DefaultSpeedKmh)
		b.WriteString("\n" + indent(chart.Grid(m.env, base, gridPanelWidth(m.width), 8), 2))
	} else if m.outcome.Stoppable {
		b.WriteString("\n" + indent(chart.Plot(m.profile, plotWidth(m.width), 12), 4))
	}

	b.WriteString("\n    " + keyStyle.Render("g") + unselect.Render(" toggle comparison grid  ") +
		keyStyle.Render("r") + unselect.Render(" restart  ") +
		keyStyle.Render("q") + unselect.Render(" quit") + "\n")
	return b.String()
}

func (m model) conditions() string {
	abs := "no ABS"
	if m.abs {
		abs = "ABS"
	}
	veh := "no drag model"
	if m.useCar {
		veh = m.car.Name
	}
	return fmt.Sprintf("%s, %s, %s, %s, %s", m.weather, m.tyres, abs, m.grade, veh)
}

func plotWidth(termWidth int) int {
	w := termWidth - 16
	if w < 30 {
		w = 30
	}
	return w
}

func gridPanelWidth(termWidth int) int {
	w := termWidth/2 - 10
	if w < 24 {
		w = 24
	}
	return w
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n") + "\n"
}

// Run starts the questionnaire in the alternate screen.
func Run(env physics.Environment) error {
	_, err := tea.NewProgram(NewApp(env), tea.WithAltScreen()).Run()
	return err
}
