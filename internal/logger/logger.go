package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime/debug"
	"time"
)

const (
	logDirName  = ".hearts"
	logFileName = "server.log"

	// Rotate once the current file exceeds this size.
	maxLogSize = 10 * 1024 * 1024
)

var (
	logFile *os.File
	logPath string
)

// Init redirects the standard logger to ~/.hearts/server.log,
// rotating the previous file out if it has grown past maxLogSize.
func Init() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	logDir := filepath.Join(homeDir, logDirName)
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	logPath = filepath.Join(logDir, logFileName)

	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := fmt.Sprintf("%s.%s", logPath, time.Now().Format("20060102-150405"))
		_ = os.Rename(logPath, rotated)
	}

	logFile, err = os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds | log.Lshortfile)

	LogInfo("Hearts server logging to %s", logPath)
	return nil
}

// Close closes the log file
func Close() {
	if logFile != nil {
		_ = logFile.Close()
	}
}

// LogInfo logs an info message
func LogInfo(format string, args ...interface{}) {
	log.Printf("[INFO] "+format, args...)
}

// LogError logs an error message
func LogError(format string, args ...interface{}) {
	log.Printf("[ERROR] "+format, args...)
}

// LogPanic logs a recovered panic with its stack trace
func LogPanic(r interface{}) {
	log.Printf("[PANIC] %v\n%s", r, debug.Stack())
}

// GetLogPath returns the current log file path
func GetLogPath() string {
	return logPath
}
