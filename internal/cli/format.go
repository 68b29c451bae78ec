package cli

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
)

const (
	separatorWidth = 20
	tableWidth     = 90
	rowTimeLayout  = "2006-01-02 15:04"
)

func separator(w io.Writer) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", separatorWidth))
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// describe renders a candidate as "Seattle, Washington, United States".
func describe(loc models.LocationCandidate) string {
	parts := []string{loc.Name}
	for _, p := range []string{loc.Admin1, loc.Country} {
		if p != "" && p != loc.Name {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, ", ")
}

// WriteCurrent prints one snapshot for the location the user asked for.
func WriteCurrent(w io.Writer, query string, report models.CurrentReport) error {
	bw := bufio.NewWriter(w)
	s := report.Snapshot

	fmt.Fprintf(bw, "Matched: %s (%s, %s)\n", describe(report.Location),
		formatFloat(report.Location.Latitude), formatFloat(report.Location.Longitude))
	fmt.Fprintf(bw, "Current Weather Data for %s:\n", query)
	fmt.Fprintf(bw, "Temperature: %s C\n", formatFloat(s.Temperature))
	fmt.Fprintf(bw, "Weather Condition: %s\n", s.Condition)
	fmt.Fprintf(bw, "Humidity: %d%%\n", s.Humidity)
	fmt.Fprintf(bw, "Windspeed: %s km/h\n", formatFloat(s.Windspeed))

	return bw.Flush()
}

// WriteHourly prints sampled hours as a fixed-width table.
func WriteHourly(w io.Writer, points iter.Seq[models.HourlyPoint]) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%-20s %-15s %-15s %-15s %-15s\n",
		"Time", "Temperature (C)", "Condition", "Humidity (%)", "Windspeed (km/h)")
	fmt.Fprintln(bw, strings.Repeat("-", tableWidth))

	for p := range points {
		fmt.Fprintf(bw, "%-20s %-15.1f %-15s %-15d %-15.1f\n",
			p.Time.Format(rowTimeLayout), p.Temperature, p.Condition, p.Humidity, p.Windspeed)
	}

	return bw.Flush()
}
