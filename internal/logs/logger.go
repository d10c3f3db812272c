package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const prefix = "[todaysthought] "

var (
	Logger  *log.Logger
	logFile *os.File
	mu      sync.Mutex
)

// Until Initialize is called, log output is discarded so that commands run
// from a vault do not leave a debug.log behind.
func init() {
	Logger = log.New(io.Discard, prefix, log.LstdFlags|log.Lshortfile)
}

// Initialize points the logger at debug.log inside logDir.
func Initialize(logDir string) error {
	mu.Lock()
	defer mu.Unlock()

	if logDir == "" || logDir == "." {
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return err
	}

	logPath := filepath.Join(logDir, "debug.log")

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}

	logFile = f
	Logger = log.New(f, prefix, log.LstdFlags|log.Lshortfile)

	Logger.Printf("Logger initialized at: %s", logPath)

	return nil
}

// Close closes the log file and goes back to discarding output.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	Logger = log.New(io.Discard, prefix, log.LstdFlags|log.Lshortfile)
	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		return err
	}
	return nil
}
