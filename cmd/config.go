package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"mutree.dev/pkg/mutree/internal/adapter"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutree"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName  = "output"
	logFileFlagName = "log-file"
	verboseFlagName = "verbose"

	generationsFlagName = "generations"
	sampleFlagName      = "sample"
	nodeCapFlagName     = "cap"
	seedFlagName        = "seed"
	runsFlagName        = "runs"
	runParallelFlagName = "parallel"
	corpusFlagName      = "corpus"
	formatFlagName      = "format"
	lexiconFlagName     = "lexicon"
	addrFlagName        = "addr"

	generationsConfigKey    = "run.generations"
	sampleFractionConfigKey = "run.sample_fraction"
	nodeCapConfigKey        = "run.node_cap"
	seedConfigKey           = "run.seed"
	runsConfigKey           = "run.runs"
	runParallelConfigKey    = "run.parallel"
	corpusConfigKey         = "run.corpus"
	formatsConfigKey        = "export.formats"
	lexiconConfigKey        = "tagger.lexicon"
	heuristicsConfigKey     = "tagger.heuristics"
	serveAddrConfigKey      = "serve.addr"

	defaultOutputDir      = "results"
	defaultGenerations    = 10
	defaultSampleFraction = 0.3
	defaultNodeCap        = 50
	defaultSeed           = 0
	defaultRuns           = 1
	defaultRunParallel    = 1
	defaultCorpus         = ""
	defaultLexicon        = ""
	defaultHeuristics     = true
	defaultServeAddr      = ":5000"

	envPrefix = "MUTREE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutree.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var defaultFormats = []string{adapter.FormatGraphML, adapter.FormatDOT}

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)

	viper.SetDefault(generationsConfigKey, defaultGenerations)
	viper.SetDefault(sampleFractionConfigKey, defaultSampleFraction)
	viper.SetDefault(nodeCapConfigKey, defaultNodeCap)
	viper.SetDefault(seedConfigKey, defaultSeed)
	viper.SetDefault(runsConfigKey, defaultRuns)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(corpusConfigKey, defaultCorpus)
	viper.SetDefault(formatsConfigKey, defaultFormats)
	viper.SetDefault(lexiconConfigKey, defaultLexicon)
	viper.SetDefault(heuristicsConfigKey, defaultHeuristics)
	viper.SetDefault(serveAddrConfigKey, defaultServeAddr)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// A missing mutree.yaml is the normal case; defaults and env still apply.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		cobra.CheckErr(fmt.Errorf("read %s: %w", configFileName, err))
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at the configured level; if verbose is true it logs
// at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
