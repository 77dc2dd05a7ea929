// Package cmd provides the root command and CLI setup for mutree.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"mutree.dev/pkg/mutree/internal/adapter"
	"mutree.dev/pkg/mutree/internal/controller"
	"mutree.dev/pkg/mutree/internal/domain"
)

var tagger adapter.Tagger
var outputFS adapter.OutputFSAdapter
var resultStore *adapter.LocalResultStore
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write results.
var outputDirFlag string

var logFileFlag string

var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	outputFS = adapter.NewLocalOutputFSAdapter()
	resultStore = adapter.NewLocalResultStore()

	lex, err := adapter.DefaultLexicon()
	cobra.CheckErr(err)

	tagger = adapter.NewLexiconTagger(lex, defaultHeuristics)
	workflow = newWorkflow()
}

func newWorkflow() domain.Workflow {
	return domain.NewWorkflow(tagger, outputFS, resultStore, resultStore, ui)
}

const rootLongDescription = `mutree grows trees of Russian word forms.

Starting from seed words it repeatedly picks a share of the known words,
applies a random morphological rule to each (suffix, prefix, diminutive,
consonant alternation, gender or comparative form) and records every new
form together with the mutation that produced it.`

const runLongDescription = `Grow a mutation graph from the given seed words.

Words may carry "?" markers, which are removed before tagging. Without seed
words, up to 5 seeds are sampled from the --corpus word list.

The history is appended to <output>/mutation_history.txt as the run
progresses and the graph is exported as mutation_graph.graphml (and .dot).
With --runs N, independent runs go to <output>/run_000 ... run_N-1.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mutree",
		Short: "Russian word mutation tree simulator",
		Long:  rootLongDescription,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			configureLogger(logFileFlag, verboseFlag)

			return configureTagger()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&outputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for histories and graphs",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")

	cmd.PersistentFlags().StringVar(&lexiconFlag, lexiconFlagName, viper.GetString(lexiconConfigKey), "YAML lexicon to tag words with (default: bundled lexicon)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(lexiconFlagName), lexiconConfigKey)
}

var lexiconFlag string

// configureTagger replaces the default tagger when the configuration asks
// for another lexicon or disables the ending heuristics.
func configureTagger() error {
	path := viper.GetString(lexiconConfigKey)
	heuristics := viper.GetBool(heuristicsConfigKey)

	if path == defaultLexicon && heuristics == defaultHeuristics {
		return nil
	}

	lex, err := adapter.LoadLexicon(path)
	if err != nil {
		return err
	}

	tagger = adapter.NewLexiconTagger(lex, heuristics)
	workflow = newWorkflow()

	return nil
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
