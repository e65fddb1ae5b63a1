// Package chart renders speed-vs-distance trajectories as terminal
// graphs: a single-profile plot and the panel grid comparing weather and
// alertness variants that replaces the original report figure.
package chart

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/brakesim/internal/physics"
	"github.com/san-kum/brakesim/internal/scenario"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// Resample interpolates a profile's speed onto a uniform distance axis so
// asciigraph's index-based x-axis reads as meters. Returns the series and
// the distance per index step.
func Resample(samples []physics.Sample, points int) ([]float64, float64) {
	if len(samples) == 0 || points < 2 {
		return nil, 0
	}

	maxDist := samples[len(samples)-1].Distance
	if maxDist <= 0 {
		series := make([]float64, points)
		for i := range series {
			series[i] = samples[0].SpeedKmh
		}
		return series, 0
	}

	step := maxDist / float64(points-1)
	series := make([]float64, points)
	j := 0
	for i := 0; i < points; i++ {
		d := float64(i) * step

		for j < len(samples)-1 && samples[j+1].Distance < d {
			j++
		}

		if j >= len(samples)-1 {
			series[i] = samples[len(samples)-1].SpeedKmh
			continue
		}

		a, b := samples[j], samples[j+1]
		if b.Distance == a.Distance {
			series[i] = b.SpeedKmh
			continue
		}
		frac := (d - a.Distance) / (b.Distance - a.Distance)
		series[i] = a.SpeedKmh + frac*(b.SpeedKmh-a.SpeedKmh)
	}

	return series, step
}

// Plot renders one trajectory as an ascii graph with a distance caption.
func Plot(samples []physics.Sample, width, height int) string {
	series, step := Resample(samples, width)
	if series == nil {
		return "no trajectory data"
	}

	totalDist := step * float64(len(series)-1)
	return asciigraph.Plot(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("speed (km/h) over %.1f m", totalDist)),
	)
}

// SpeedOffsets are the initial-speed variants overlaid in each panel of
// the comparison grid, in km/h relative to the scenario speed.
var SpeedOffsets = []float64{-20, -10, 0, 10, 20}

type panelVariant struct {
	label   string
	weather scenario.Weather
	rt      float64
}

// Grid renders the comparison figure: columns for dry/wet weather, rows
// for alert (1 s) and tired (2 s) reaction times, each panel overlaying
// the speed-offset variants of the base scenario.
func Grid(env physics.Environment, base scenario.Scenario, width, height int) string {
	variants := []panelVariant{
		{"dry | alert (1s)", scenario.DryAsphalt, scenario.ReactionAlert},
		{"wet | alert (1s)", scenario.WetAsphalt, scenario.ReactionAlert},
		{"dry | tired (2s)", scenario.DryAsphalt, scenario.ReactionTired},
		{"wet | tired (2s)", scenario.WetAsphalt, scenario.ReactionTired},
	}

	panels := make([]string, len(variants))
	for i, v := range variants {
		panels[i] = renderPanel(env, base, v, width, height)
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, panels[0], panels[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, panels[2], panels[3])

	legend := legendStyle.Render(fmt.Sprintf(
		"speed (km/h) vs distance (m), initial speeds %+.0f to %+.0f km/h around %.0f km/h",
		SpeedOffsets[0], SpeedOffsets[len(SpeedOffsets)-1], base.SpeedKmh))

	return lipgloss.JoinVertical(lipgloss.Left, top, bottom, legend)
}

func renderPanel(env physics.Environment, base scenario.Scenario, v panelVariant, width, height int) string {
	sc := base
	sc.Weather = v.weather
	sc.ReactionTime = v.rt

	// Longest stop bounds the shared distance axis of the panel.
	maxDist := 0.0
	profiles := make([][]physics.Sample, 0, len(SpeedOffsets))
	for _, off := range SpeedOffsets {
		variant := sc
		variant.SpeedKmh = sc.SpeedKmh + off
		if variant.SpeedKmh < 0 {
			variant.SpeedKmh = 0
		}
		p := variant.Profile(env, physics.DefaultProfileDt)
		profiles = append(profiles, p)
		if len(p) > 0 && p[len(p)-1].Distance > maxDist {
			maxDist = p[len(p)-1].Distance
		}
	}

	series := make([][]float64, 0, len(profiles))
	for _, p := range profiles {
		series = append(series, resampleToAxis(p, maxDist, width))
	}

	graph := asciigraph.PlotMany(series,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("0 .. %.0f m", maxDist)),
		asciigraph.SeriesColors(
			asciigraph.Gray,
			asciigraph.Blue,
			asciigraph.Green,
			asciigraph.Yellow,
			asciigraph.Red,
		),
	)

	title := titleStyle.Render(v.label)
	return panelStyle.Render(title + "\n" + graph)
}

// resampleToAxis is Resample against an externally fixed axis length, so
// all series in one panel share x coordinates. Past its own stopping
// point a trajectory holds at its final speed (zero for a full stop).
func resampleToAxis(samples []physics.Sample, maxDist float64, points int) []float64 {
	series := make([]float64, points)
	if len(samples) == 0 {
		return series
	}
	if maxDist <= 0 {
		for i := range series {
			series[i] = samples[0].SpeedKmh
		}
		return series
	}

	step := maxDist / float64(points-1)
	j := 0
	for i := 0; i < points; i++ {
		d := float64(i) * step
		for j < len(samples)-1 && samples[j+1].Distance < d {
			j++
		}
		if d >= samples[len(samples)-1].Distance || j >= len(samples)-1 {
			series[i] = samples[len(samples)-1].SpeedKmh
			continue
		}
		a, b := samples[j], samples[j+1]
		if b.Distance == a.Distance {
			series[i] = b.SpeedKmh
			continue
		}
		frac := (d - a.Distance) / (b.Distance - a.Distance)
		series[i] = a.SpeedKmh + frac*(b.SpeedKmh-a.SpeedKmh)
	}
	return series
}

// Summary renders the scalar outcome as a small styled block for the TUI
// and CLI.
func Summary(out scenario.Outcome) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("model:             %s\n", out.Model))
	b.WriteString(fmt.Sprintf("effective friction: %.2f\n", out.Mu))

	if !out.Stoppable {
		b.WriteString("\nvehicle cannot stop under these conditions (net deceleration <= 0)\n")
		b.WriteString(fmt.Sprintf("reaction distance: %.2f m\n", out.ReactionDistance))
		return b.String()
	}

	b.WriteString(fmt.Sprintf("reaction distance: %.2f m\n", out.ReactionDistance))
	b.WriteString(fmt.Sprintf("braking distance:  %.2f m\n", out.BrakingDistance))
	b.WriteString(fmt.Sprintf("total distance:    %.2f m\n", out.TotalDistance))
	if out.Model == "numeric" {
		b.WriteString(fmt.Sprintf("total time:        %.2f s\n", out.TotalTime))
		b.WriteString(fmt.Sprintf("final velocity:    %.2f m/s\n", out.FinalVelocity))
		if !out.Converged {
			b.WriteString("warning: simulation time cap reached before the vehicle stopped\n")
		}
	}
	return b.String()
}
