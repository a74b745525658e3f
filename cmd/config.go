package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "reckon"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName   = "output"
	plainFlagName    = "plain"
	verboseFlagName  = "verbose"
	logFileFlagName  = "log-file"
	algoFlagName     = "algo"
	tableFlagName    = "table"
	maxNaiveFlagName = "max-naive"
	stringsFlagName  = "strings"
	descFlagName     = "desc"
	diffFlagName     = "diff"

	runParallelFlagName  = "parallel"
	runWatchFlagName     = "watch"
	historyLimitFlagName = "limit"
	historyClearFlagName = "clear"
	serveAddrFlagName    = "addr"

	runParallelConfigKey    = "run.parallel"
	runMaxNConfigKey        = "run.max_n"
	runNaiveMaxNConfigKey   = "run.naive_max_n"
	serveAddrConfigKey      = "serve.addr"
	serveRateLimitConfigKey = "serve.rate_limit"
	historyPathConfigKey    = "history.path"
	jobsPathConfigKey       = "paths.jobs"

	defaultReportsDir     = ".reckon-reports"
	defaultPlain          = false
	defaultRunParallel    = 1
	defaultRunMaxN        = 100000
	defaultRunNaiveMaxN   = 40
	defaultServeAddr      = ":8750"
	defaultServeRateLimit = 10.0
	defaultHistoryPath    = ".reckon/history.db"

	envPrefix = "RECKON"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".reckon.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

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
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(plainFlagName, defaultPlain)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runMaxNConfigKey, defaultRunMaxN)
	viper.SetDefault(runNaiveMaxNConfigKey, defaultRunNaiveMaxN)
	viper.SetDefault(serveAddrConfigKey, defaultServeAddr)
	viper.SetDefault(serveRateLimitConfigKey, defaultServeRateLimit)
	viper.SetDefault(historyPathConfigKey, defaultHistoryPath)
	viper.SetDefault(jobsPathConfigKey, "")

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
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
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
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
