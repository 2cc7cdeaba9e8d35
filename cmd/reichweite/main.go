// SPDX-License-Identifier: MIT

// Command reichweite builds the layer-stacking probability models of one or
// more phases and prints their abundances W and transition matrices P.
//
//	reichweite -config phases.yaml
//	reichweite -R 1 -G 2 -set W1=0.25 -set P11_or_P22=0.5
//	reichweite -R 1 -G 3 -labels
//	reichweite -R 1 -G 3 -check
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/lmittmann/tint"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/reichweite/config"
	"github.com/katalvlaran/reichweite/matrix"
	"github.com/katalvlaran/reichweite/phase"
	"github.com/katalvlaran/reichweite/probability"
)

const version = "0.1.0"

// checkTolerance is the absolute tolerance of the -check comparison.
const checkTolerance = 1e-9

// assignments collects repeated -set name=value flags.
type assignments map[string]float64

func (a assignments) String() string {
	keys := make([]string, 0, len(a))
	for k := range a {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%g", k, a[k])
	}

	return strings.Join(parts, ",")
}

func (a assignments) Set(s string) error {
	name, raw, ok := strings.Cut(s, "=")
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return fmt.Errorf("expected name=value, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return fmt.Errorf("parameter %s: %w", name, err)
	}
	a[name] = v

	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is main without the process exit, so it can be tested.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("reichweite", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML file describing the phases")
	name := fs.String("name", "phase", "Phase name when R and G are given on the command line")
	r := fs.Int("R", -1, "Reichweite (overrides -config)")
	g := fs.Int("G", -1, "Number of layer components (overrides -config)")
	level := fs.String("level", "", "Log level: debug, info, warn, error")
	noColor := fs.Bool("no-color", false, "Disable coloured log output")
	labels := fs.Bool("labels", false, "List the independent parameters instead of the matrices")
	check := fs.Bool("check", false, "Also print the stationary distribution of P and its distance to W")
	initPath := fs.String("init", "", "Write a default config file to this path and exit")
	showVersion := fs.Bool("version", false, "Show version and exit")
	values := assignments{}
	fs.Var(values, "set", "Independent parameter name=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	if *showVersion {
		fmt.Fprintf(stdout, "reichweite %s\n", version)
		return 0
	}
	if *initPath != "" {
		if err := config.Default().Save(*initPath); err != nil {
			fmt.Fprintf(stderr, "Failed to initialize config: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Config initialized at: %s\n", *initPath)
		return 0
	}

	cfg, err := config.LoadOrDefault(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *noColor {
		cfg.Log.NoColor = true
	}
	lvl, err := cfg.Log.SlogLevel()
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return 2
	}
	logger := slog.New(tint.NewHandler(stderr, &tint.Options{
		Level:      lvl,
		TimeFormat: "15:04:05",
		NoColor:    cfg.Log.NoColor,
	}))

	if *r >= 0 || *g >= 0 {
		pc := config.PhaseConfig{Name: *name, Reichweite: max(*r, 0), Components: *g}
		if *g < 0 {
			pc.Components = 2
		}
		cfg.Phases = []config.PhaseConfig{pc}
	}
	if len(values) > 0 {
		if len(cfg.Phases) != 1 {
			fmt.Fprintln(stderr, "-set needs exactly one phase")
			return 2
		}
		if cfg.Phases[0].Parameters == nil {
			cfg.Phases[0].Parameters = map[string]float64{}
		}
		for k, v := range values {
			cfg.Phases[0].Parameters[k] = v
		}
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return 2
	}

	phases, err := cfg.BuildPhases(phase.WithLogger(logger))
	if err != nil {
		logger.Error("cannot build phases", "err", err)
		return 1
	}
	for _, ph := range phases {
		if *labels {
			printLabels(stdout, ph)
			continue
		}
		if err := printPhase(stdout, ph, *check); err != nil {
			logger.Error("update failed", "phase", ph.Name(), "err", err)
			return 1
		}
	}

	return 0
}

func printLabels(w io.Writer, ph *phase.Phase) {
	m := ph.Probabilities()
	fmt.Fprintf(w, "# %s\n", ph)
	for _, p := range m.IndependentLabelMap() {
		v, _ := m.Param(p.Name)
		fmt.Fprintf(w, "%-12s %-22s %g\n", p.Name, p.Label, v)
	}
}

func printPhase(w io.Writer, ph *phase.Phase, check bool) error {
	var m probability.Model = ph.Probabilities()
	dist, err := m.DistributionArray()
	if err != nil {
		return err
	}
	P := m.ProbabilityMatrix()
	fmt.Fprintf(w, "# %s %s\n", ph, ph.ID())
	fmt.Fprintf(w, "W = %v\n", dist)
	fmt.Fprintf(w, "P =\n%s", P)
	if !check {
		return nil
	}

	return printCheck(w, dist, m.DistributionMatrix(), P)
}

// printCheck reports how far W and P are from a consistent stacking: the
// row-sum error of P, the residual of W·P = W, and whether the stationary
// distribution of P matches the diagonal of diag(W).
func printCheck(w io.Writer, dist []float64, D, P *matrix.Dense) error {
	sums, err := matrix.RowSums(P)
	if err != nil {
		return err
	}
	for i := range sums {
		sums[i] -= 1
	}
	wp, err := matrix.VecMul(dist, P)
	if err != nil {
		return err
	}
	floats.Sub(wp, dist)
	fmt.Fprintf(w, "max |ΣP-1| = %.3g\n", floats.Norm(sums, math.Inf(1)))
	fmt.Fprintf(w, "max |W·P-W| = %.3g\n", floats.Norm(wp, math.Inf(1)))

	pi, err := matrix.StationaryDistribution(P)
	if err != nil {
		fmt.Fprintf(w, "stationary: %v\n", err)
		return nil
	}
	diag, err := matrix.Diagonal(D)
	if err != nil {
		return err
	}
	a, err := matrix.NewFromRows([][]float64{pi})
	if err != nil {
		return err
	}
	b, err := matrix.NewFromRows([][]float64{diag})
	if err != nil {
		return err
	}
	ok, err := matrix.AllClose(a, b, 0, checkTolerance)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "stationary = %v\nconsistent = %t\n", pi, ok)

	return nil
}
