package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/natefinch/lumberjack.v2"
)

type flogger interface {
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// ThreadLogger - prefix each message with the name of the worker
type ThreadLogger struct {
	name string
}

func (tl *ThreadLogger) Printf(format string, v ...interface{}) {
	log.Printf(tl.name+": "+format, v...)
}

func (tl *ThreadLogger) Println(v ...interface{}) {
	log.Println(append([]interface{}{tl.name + ":"}, v...)...)
}

// route the standard logger to a rotating file, optionally echoed to stderr
func setupLogging(settings configSettings, echo bool) (*lumberjack.Logger, error) {
	fName := settings.GetString(sLogFile)
	if err := os.MkdirAll(filepath.Dir(fName), 0755); err != nil {
		return nil, errors.Wrap(err, "log directory")
	}

	logFile := &lumberjack.Logger{
		Filename:   fName,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}

	if echo {
		log.SetOutput(io.MultiWriter(os.Stderr, logFile))
	} else {
		log.SetOutput(logFile)
	}
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return logFile, nil
}
