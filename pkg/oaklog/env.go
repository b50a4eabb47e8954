package oaklog

import (
	"bytes"
	"fmt"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"strings"
	"time"
)

// Environment supplies the host facts that items render. Loggers use System()
// unless told otherwise; tests substitute a fixed implementation.
type Environment interface {
	// Now returns the current local time.
	Now() time.Time
	// StartTime returns the time the process started.
	StartTime() time.Time
	// CurrentThreadID returns an id for the calling thread of execution.
	CurrentThreadID() int64
	// CaptureCallSite describes the frame that called into the logger,
	// skipping skip additional frames above it.
	CaptureCallSite(skip int) string
}

// processStart is taken when the package is initialized, which for any
// binary importing oaklog is within the runtime's startup.
var processStart = time.Now()

var system Environment = systemEnv{}

// System returns the Environment backed by the running process.
func System() Environment { return system }

type systemEnv struct{}

func (systemEnv) Now() time.Time { return time.Now() }

func (systemEnv) StartTime() time.Time { return processStart }

// CurrentThreadID returns the id of the calling goroutine, parsed from the
// header of its stack trace ("goroutine 18 [running]:").
func (systemEnv) CurrentThreadID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	fields := bytes.Fields(bytes.TrimPrefix(buf[:n], []byte("goroutine ")))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.ParseInt(string(fields[0]), 10, 64)
	if err != nil {
		return 0
	}
	return id
}

// pkgPrefix matches functions of this package but not its external tests.
var pkgPrefix = reflect.TypeOf(systemEnv{}).PkgPath() + "."

func (systemEnv) CaptureCallSite(skip int) string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	for {
		fr, more := frames.Next()
		if !strings.HasPrefix(fr.Function, pkgPrefix) {
			if skip <= 0 {
				return formatFrame(fr)
			}
			skip--
		}
		if !more {
			return ""
		}
	}
}

func formatFrame(fr runtime.Frame) string {
	if fr.File == "" {
		return fr.Function
	}
	return fmt.Sprintf("%s (%s:%d)", fr.Function, filepath.Base(fr.File), fr.Line)
}
