package oaklog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// WallClockLayout is the time.Format layout of ItemWallClock.
const WallClockLayout = "2006/01/02 15:04"

// lineWriter writes to a stream until the first error, which it keeps.
type lineWriter struct {
	s   Stream
	err error
}

func (w *lineWriter) write(str string) {
	if w.err != nil {
		return
	}
	_, w.err = w.s.WriteString(str)
}

// render writes one line to sink. skip is passed on to CaptureCallSite.
func (l *Logger) render(sink *Sink, text string, skip int) error {
	w := &lineWriter{s: sink.Stream}
	n := len(l.Items)

	for i, item := range l.Items {
		if i > 0 && l.Items[i-1] == ItemText {
			w.write(sink.Separator)
		}

		if item == ItemText {
			// a lone text item owns the whole line
			if n != 1 {
				w.write(sink.Separator)
			}
			w.write(text)
		} else {
			if sink.UseColor {
				w.write(l.Color.Background())
			}
			w.write(l.decoration(item, skip))
			if sink.UseColor {
				w.write(Reset)
			}
		}

		// n-2, not n-1: the last two items never get an interleaved
		// separator. Pinned by TestSeparateItemsSkipsLastTwo.
		if sink.SeparateItems && i < n-2 {
			w.write(sink.Separator)
		}
		if w.err != nil {
			return w.err
		}
	}

	if l.Newline {
		w.write("\n")
	}
	return w.err
}

// decoration renders a non-text item, brackets included.
func (l *Logger) decoration(item Item, skip int) string {
	env := l.Env
	if env == nil {
		env = System()
	}

	switch item {
	case ItemSeverity:
		return "[" + l.Severity + "]"
	case ItemElapsed:
		return "[" + formatSeconds(elapsedSeconds(env.Now().Sub(env.StartTime()))) + "s]"
	case ItemWallClock:
		return "[" + env.Now().Format(WallClockLayout) + "]"
	case ItemCallSite:
		frame := strings.TrimSpace(strings.ReplaceAll(env.CaptureCallSite(skip), "\n", " "))
		return "[" + frame + "]"
	case ItemThreadID:
		return fmt.Sprintf("[#%d]", env.CurrentThreadID())
	default:
		return ""
	}
}

// elapsedSeconds keeps only the millisecond component of d, so the result
// is between 0 and 1 whatever the real uptime. The seconds are scaled by 100
// and rounded half to even as a binary double, so 545ms gives 0.55 and 575ms
// gives 0.57.
func elapsedSeconds(d time.Duration) float64 {
	ms := (d % time.Second) / time.Millisecond
	return math.RoundToEven(float64(ms)/1000*100) / 100
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', -1, 64)
}
