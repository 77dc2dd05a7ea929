package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutree.dev/pkg/mutree/internal/domain"
)

var (
	generationsFlag int
	sampleFlag      float64
	nodeCapFlag     int
	seedFlag        uint64
	runsFlag        int
	runParallelFlag int
	corpusFlag      string
	formatFlag      []string
)

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [words...]",
		Short: "Grow a mutation graph from seed words",
		Long:  runLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Run(cmd.Context(), runArgsFromConfig(args))
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&generationsFlag, generationsFlagName, "g", viper.GetInt(generationsConfigKey), "number of generations")
	bindFlagToConfig(cmd.Flags().Lookup(generationsFlagName), generationsConfigKey)

	cmd.Flags().Float64Var(&sampleFlag, sampleFlagName, viper.GetFloat64(sampleFractionConfigKey), "share of the nodes mutated per generation, in (0, 1]")
	bindFlagToConfig(cmd.Flags().Lookup(sampleFlagName), sampleFractionConfigKey)

	cmd.Flags().IntVar(&nodeCapFlag, nodeCapFlagName, viper.GetInt(nodeCapConfigKey), "stop once the graph holds this many words")
	bindFlagToConfig(cmd.Flags().Lookup(nodeCapFlagName), nodeCapConfigKey)

	cmd.Flags().Uint64Var(&seedFlag, seedFlagName, viper.GetUint64(seedConfigKey), "random seed (0 picks one from the clock)")
	bindFlagToConfig(cmd.Flags().Lookup(seedFlagName), seedConfigKey)

	cmd.Flags().IntVarP(&runsFlag, runsFlagName, "n", viper.GetInt(runsConfigKey), "number of independent runs")
	bindFlagToConfig(cmd.Flags().Lookup(runsFlagName), runsConfigKey)

	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of runs executed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().StringVar(&corpusFlag, corpusFlagName, viper.GetString(corpusConfigKey), "word list to sample seeds from when no words are given")
	bindFlagToConfig(cmd.Flags().Lookup(corpusFlagName), corpusConfigKey)

	cmd.Flags().StringSliceVarP(&formatFlag, formatFlagName, "f", viper.GetStringSlice(formatsConfigKey), "graph export formats (graphml, dot)")
	bindFlagToConfig(cmd.Flags().Lookup(formatFlagName), formatsConfigKey)
}

// runArgsFromConfig builds run arguments from the merged flag, env and file
// configuration.
func runArgsFromConfig(words []string) domain.RunArgs {
	return domain.RunArgs{
		Seeds:          words,
		Corpus:         viper.GetString(corpusConfigKey),
		Generations:    viper.GetInt(generationsConfigKey),
		SampleFraction: viper.GetFloat64(sampleFractionConfigKey),
		NodeCap:        viper.GetInt(nodeCapConfigKey),
		RandomSeed:     viper.GetUint64(seedConfigKey),
		Output:         viper.GetString(outputFlagName),
		Runs:           viper.GetInt(runsConfigKey),
		Parallel:       viper.GetInt(runParallelConfigKey),
		Formats:        viper.GetStringSlice(formatsConfigKey),
	}
}
