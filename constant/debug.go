package constant

// Debug Logging
const (
	// DebugLogging routes the standard logger to LogDir/LogFileName; otherwise logs are discarded
	DebugLogging = false

	LogDir      = "logs"
	LogFileName = "pong.log"

	// MaxLogSize triggers rotation of an existing log file on startup
	MaxLogSize = 10 * 1024 * 1024
)
