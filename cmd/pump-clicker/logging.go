package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "pump-clicker.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points logrus and the std logger at logs/pump-clicker.log when debug is set
// Otherwise all output is discarded, the terminal owns stdout and stderr
// Returns the open log file, nil when discarding
func setupLogging(debug bool) *os.File {
	discard := func() *os.File {
		logrus.SetOutput(io.Discard)
		log.SetOutput(io.Discard)
		return nil
	}
	if !debug {
		return discard()
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		return discard()
	}

	logPath := filepath.Join(logDir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(logDir, fmt.Sprintf("pump-clicker-%s.log", time.Now().Format("20060102-150405")))
		_ = os.Rename(logPath, rotated)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return discard()
	}

	logrus.SetOutput(f)
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
		DisableColors: true,
	})
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
