package main

import (
	"fmt"
	"os"

	"github.com/fundsim/fund-longevity/internal/calculation"
	"github.com/fundsim/fund-longevity/internal/config"
	"github.com/fundsim/fund-longevity/internal/output"
	"github.com/spf13/cobra"
)

var (
	profilePath  string
	scenarioName string
	iterations   int
	seed         int64
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "fundsim",
	Short: "Project how long investment accounts can sustain living expenses",
	Long: `fundsim loads a user profile and projects fund longevity under three
market scenarios: constant growth, a predefined year-0 loss, and a
randomized recession model run across many iterations.`,
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&profilePath, "config", "c", "data/example_profile.yaml", "path to the user profile YAML file")
	rootCmd.Flags().StringVarP(&scenarioName, "scenario", "s", "all", "scenario to run: all, constant, year0-loss or randomized")
	rootCmd.Flags().IntVarP(&iterations, "iterations", "n", calculation.DefaultIterations, "iterations for the randomized scenario")
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for the randomized scenario (0 seeds from the clock)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print the per-year simulation trace to stderr")
}

func run(cmd *cobra.Command, args []string) error {
	profile, err := config.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	scenarios, err := selectScenarios(scenarioName)
	if err != nil {
		return err
	}

	formatter := output.ConsoleFormatter{}
	fmt.Fprintf(cmd.OutOrStdout(), "Loading user data from file %s...\n\n", profilePath)
	fmt.Fprint(cmd.OutOrStdout(), formatter.FormatProfile(profile))

	for _, scenario := range scenarios {
		study := calculation.NewLongevityStudy(profile, calculation.StudyConfig{
			Scenario:   scenario,
			Iterations: iterations,
			Seed:       seed,
		})
		if verbose {
			study.Log = stderrLogger{}
		}
		result, err := study.Run()
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), formatter.FormatStudy(result))
	}
	return nil
}

func selectScenarios(name string) ([]calculation.Scenario, error) {
	switch name {
	case "all":
		return []calculation.Scenario{
			calculation.ScenarioRandomizedRecession,
			calculation.ScenarioYear0Loss,
			calculation.ScenarioConstant,
		}, nil
	case "constant":
		return []calculation.Scenario{calculation.ScenarioConstant}, nil
	case "year0-loss":
		return []calculation.Scenario{calculation.ScenarioYear0Loss}, nil
	case "randomized":
		return []calculation.Scenario{calculation.ScenarioRandomizedRecession}, nil
	default:
		return nil, fmt.Errorf("unknown scenario %q: expected all, constant, year0-loss or randomized", name)
	}
}

// stderrLogger forwards the engine's trace to stderr.
type stderrLogger struct{}

func (stderrLogger) Debugf(format string, args ...any) { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Infof(format string, args ...any)  { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Warnf(format string, args ...any)  { fmt.Fprintf(os.Stderr, format+"\n", args...) }
func (stderrLogger) Errorf(format string, args ...any) { fmt.Fprintf(os.Stderr, format+"\n", args...) }

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
