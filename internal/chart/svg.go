package chart

import (
	"fmt"
	"strings"

	"github.com/san-kum/brakesim/internal/physics"
)

// ProfileToSVG renders a trajectory as an SVG polyline, distance on the
// x-axis and speed in km/h on the y-axis.
func ProfileToSVG(samples []physics.Sample, width, height int, strokeColor string) string {
	if len(samples) < 2 {
		return ""
	}

	minX, maxX := samples[0].Distance, samples[0].Distance
	minY, maxY := samples[0].SpeedKmh, samples[0].SpeedKmh
	for _, p := range samples {
		if p.Distance < minX {
			minX = p.Distance
		}
		if p.Distance > maxX {
			maxX = p.Distance
		}
		if p.SpeedKmh < minY {
			minY = p.SpeedKmh
		}
		if p.SpeedKmh > maxY {
			maxY = p.SpeedKmh
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range samples {
		x := (p.Distance - minX) / rangeX * float64(width)
		y := float64(height) - (p.SpeedKmh-minY)/rangeY*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
