package app

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"time"
)

const (
	logDir       = "logs"
	logFileName  = "snake-poison.log"
	rotatedStamp = "20060102-150405"
	maxLogSize   = 10 * 1024 * 1024
)

// SetupLogging routes the standard logger to logs/snake-poison.log when debug
// is set and discards it otherwise; stdout and stderr belong to the front-end
func SetupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	f, err := openLog(logDir, time.Now())
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}

	log.SetOutput(f)
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	log.Printf("=== snake-poison started, pid %d ===", os.Getpid())
	return f
}

// rotatedLogName is the name an oversized log is moved to
func rotatedLogName(now time.Time) string {
	return "snake-poison-" + now.Format(rotatedStamp) + ".log"
}

// openLog opens dir/snake-poison.log for appending
// A file over maxLogSize is first moved aside under rotatedLogName(now)
func openLog(dir string, now time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		if err := os.Rename(path, filepath.Join(dir, rotatedLogName(now))); err != nil {
			// Start over rather than grow without bound
			os.Remove(path)
		}
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}
