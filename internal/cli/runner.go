package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/Nazarious-ucu/weather-cli/internal/models"
	"github.com/Nazarious-ucu/weather-cli/internal/services/weather"
)

const (
	optionCurrent = 1
	optionHourly  = 2
	optionExit    = 3
)

type weatherService interface {
	CurrentWeather(ctx context.Context, name string) (models.CurrentReport, error)
	HourlyWeather(ctx context.Context, name string) (models.HourlyReport, error)
}

// Runner is the interactive menu loop.
type Runner struct {
	service weatherService
	logger  zerolog.Logger
}

func NewRunner(service weatherService, logger zerolog.Logger) *Runner {
	return &Runner{service: service, logger: logger}
}

// Run reads menu choices from in until the user exits or in is exhausted.
// Lookup failures are reported to out and the loop goes on.
func (r *Runner) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		printMenu(out)

		line, ok := readLine(sc)
		if !ok {
			return sc.Err()
		}

		option, err := strconv.Atoi(line)
		if err != nil || (option != optionCurrent && option != optionHourly && option != optionExit) {
			_, _ = fmt.Fprintln(out, "Invalid option.")
			separator(out)
			continue
		}

		if option == optionExit {
			_, _ = fmt.Fprintln(out, "Exiting WeatherApp. Goodbye!")
			separator(out)
			return nil
		}

		_, _ = fmt.Fprint(out, "Enter a location: ")
		name, ok := readLine(sc)
		if !ok {
			return sc.Err()
		}
		separator(out)

		if name == "" {
			_, _ = fmt.Fprintln(out, "Error: location must not be empty.")
			separator(out)
			continue
		}

		switch option {
		case optionCurrent:
			err = r.current(ctx, out, name)
		case optionHourly:
			err = r.hourly(ctx, sc, out, name)
		}
		if err != nil {
			r.report(out, name, err)
		}
		separator(out)
	}
}

func (r *Runner) current(ctx context.Context, out io.Writer, name string) error {
	report, err := r.service.CurrentWeather(ctx, name)
	if err != nil {
		return err
	}
	return WriteCurrent(out, name, report)
}

func (r *Runner) hourly(ctx context.Context, sc *bufio.Scanner, out io.Writer, name string) error {
	report, err := r.service.HourlyWeather(ctx, name)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintln(out, "Enter the Interval: ")
	line, ok := readLine(sc)
	if !ok {
		if err := sc.Err(); err != nil {
			return err
		}
		return models.ErrInvalidStride
	}
	separator(out)

	skip, err := strconv.Atoi(line)
	if err != nil {
		return models.ErrInvalidStride
	}

	points, err := weather.Sample(report.Series, skip)
	if err != nil {
		return err
	}
	return WriteHourly(out, points)
}

func (r *Runner) report(out io.Writer, name string, err error) {
	r.logger.Warn().
		Str("location", name).
		Err(err).
		Msg("lookup failed")

	var (
		netErr   *models.NetworkError
		parseErr *models.ParseError
	)
	switch {
	case errors.Is(err, models.ErrLocationNotFound):
		_, _ = fmt.Fprintln(out, "Error: Location not found.")
	case errors.Is(err, models.ErrInvalidStride):
		_, _ = fmt.Fprintf(out, "Error: %v.\n", models.ErrInvalidStride)
	case errors.As(err, &netErr):
		_, _ = fmt.Fprintf(out, "Error: %v\n", netErr)
	case errors.As(err, &parseErr):
		_, _ = fmt.Fprintf(out, "Error: %v\n", parseErr)
	default:
		_, _ = fmt.Fprintf(out, "Error: %v\n", err)
	}
}

func printMenu(out io.Writer) {
	_, _ = fmt.Fprintln(out, "Choose an option:")
	_, _ = fmt.Fprintln(out, "1. Current Weather")
	_, _ = fmt.Fprintln(out, "2. Hourly Weather")
	_, _ = fmt.Fprintln(out, "3. Exit")
	separator(out)
}

// readLine returns the next trimmed line, or false at end of input.
func readLine(sc *bufio.Scanner) (string, bool) {
	if !sc.Scan() {
		return "", false
	}
	return strings.TrimSpace(sc.Text()), true
}
