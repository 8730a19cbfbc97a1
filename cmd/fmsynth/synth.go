package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/fcafm/settings"
	"github.com/katalvlaran/fcafm/synth"
)

func newSynthCmd() *cobra.Command {
	var (
		configPath string
		flags      = settings.Default()
	)

	cmd := &cobra.Command{
		Use:   "synth",
		Short: "Synthesize a feature model from configuration files",
		Long: `Reads configurations from --input (a .csvconf, .json or .yaml file, or a
directory of them) and writes the synthesized model to --output or stdout.

Settings come from defaults, then --config, then FMSYNTH_* environment
variables, then explicit flags.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings.Load(configPath)
			if err != nil {
				return err
			}
			applyFlags(cmd, &s, flags)
			if err = s.Validate(); err != nil {
				return err
			}

			log, err := s.Log.NewLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			r := synth.New(synth.WithLogger(log), synth.WithStdout(cmd.OutOrStdout()))
			_, err = r.Run(cmd.Context(), s)

			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&configPath, "config", "", "settings file (YAML or JSON)")
	f.StringVar(&flags.Root, "root", flags.Root, "name of the root feature (required)")
	f.StringVarP(&flags.Input, "input", "i", flags.Input, "configuration file or directory")
	f.StringVarP(&flags.Output, "output", "o", flags.Output, "model file (default stdout)")
	f.StringVar(&flags.ACPoset, "ac-poset", flags.ACPoset, "write the reduced AC-poset as Graphviz DOT")
	f.StringVar(&flags.Selector, "selector", flags.Selector, "tree selector: max-depth, dfs or random")
	f.Int64Var(&flags.Seed, "seed", flags.Seed, "seed of the random selector")
	f.IntVar(&flags.MaxExactChildren, "max-exact-children", flags.MaxExactChildren, "largest child count searched exactly")
	f.StringVar(&flags.EmptyAssignment, "empty-assignment", flags.EmptyAssignment, "zero-assignment policy: attributed (default; keeps every input configuration valid, "+
		"so a group left empty by some configuration prints as [0..n]) or cross-tree (empty only below cross-tree "+
		"edges; tighter groups such as alternative)")
	f.BoolVar(&flags.Estimates, "estimates", flags.Estimates, "annotate features with configuration-count estimates")
	f.BoolVarP(&flags.Force, "force", "f", flags.Force, "overwrite existing output files")
	f.IntVar(&flags.Workers, "workers", flags.Workers, "concurrent file decoders (0 = GOMAXPROCS)")
	f.StringVar(&flags.MetricsFile, "metrics-file", flags.MetricsFile, "write run metrics in Prometheus text format")
	f.StringVar(&flags.Log.Level, "log-level", flags.Log.Level, "log level: debug, info, warn, error")
	f.StringVar(&flags.Log.Format, "log-format", flags.Log.Format, "log format: text or json")

	return cmd
}

// applyFlags copies every explicitly set flag over s.
func applyFlags(cmd *cobra.Command, s *settings.Settings, flags settings.Settings) {
	changed := cmd.Flags().Changed
	if changed("root") {
		s.Root = flags.Root
	}
	if changed("input") {
		s.Input = flags.Input
	}
	if changed("output") {
		s.Output = flags.Output
	}
	if changed("ac-poset") {
		s.ACPoset = flags.ACPoset
	}
	if changed("selector") {
		s.Selector = flags.Selector
	}
	if changed("seed") {
		s.Seed = flags.Seed
	}
	if changed("max-exact-children") {
		s.MaxExactChildren = flags.MaxExactChildren
	}
	if changed("empty-assignment") {
		s.EmptyAssignment = flags.EmptyAssignment
	}
	if changed("estimates") {
		s.Estimates = flags.Estimates
	}
	if changed("force") {
		s.Force = flags.Force
	}
	if changed("workers") {
		s.Workers = flags.Workers
	}
	if changed("metrics-file") {
		s.MetricsFile = flags.MetricsFile
	}
	if changed("log-level") {
		s.Log.Level = flags.Log.Level
	}
	if changed("log-format") {
		s.Log.Format = flags.Log.Format
	}
}
