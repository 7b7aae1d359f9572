package parsearch

import (
	"os"

	"github.com/op/go-logging"
)

// LogLevelEnv names the environment variable that overrides the log level.
const LogLevelEnv = "PARSEARCH_LOG_LEVEL"

const logModule = "parsearch"

var log = logging.MustGetLogger(logModule)

// Library callers that never call SetupLogging only see warnings and
// errors from this package.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}

var stderrFormat = logging.MustStringFormatter(
	`%{time:15:04:05.000} %{level:.5s} ▶ %{message}`,
)

// SetupLogging points the package logger at stderr. The level comes from
// PARSEARCH_LOG_LEVEL (CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG) and
// falls back to defaultLevel when unset or unknown.
func SetupLogging(prefix string, defaultLevel logging.Level) *logging.Logger {
	backend := logging.NewBackendFormatter(
		logging.NewLogBackend(os.Stderr, prefix, 0),
		stderrFormat,
	)
	leveled := logging.AddModuleLevel(backend)
	level := defaultLevel
	if s := os.Getenv(LogLevelEnv); s != "" {
		if l, err := logging.LogLevel(s); err == nil {
			level = l
		}
	}
	leveled.SetLevel(level, "")
	logging.SetBackend(leveled)
	return log
}
