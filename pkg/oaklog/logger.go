package oaklog

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/rs/zerolog"
)

// DefaultSeverity is the severity tag of a new Logger.
const DefaultSeverity = "DEFAULT"

// FailurePolicy decides what Print does when a sink fails.
type FailurePolicy int

const (
	// FailFast returns the first sink error and skips the remaining sinks.
	FailFast FailurePolicy = iota
	// ContinueOnError writes to every sink and returns all failures joined.
	ContinueOnError
)

func (p FailurePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case ContinueOnError:
		return "continue"
	default:
		return "unknown"
	}
}

// ParseFailurePolicy parses the names returned by FailurePolicy.String.
func ParseFailurePolicy(s string) (FailurePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fail-fast", "failfast":
		return FailFast, nil
	case "continue", "continue-on-error":
		return ContinueOnError, nil
	default:
		return FailFast, errors.Newf(errors.ErrInvalidInput, "unknown failure policy %q", s)
	}
}

// Logger renders a configured sequence of items to each of its sinks.
//
// Fields may be changed freely between calls. A Logger does no locking:
// changing it, or printing through sinks that share a stream, from several
// goroutines at once must be serialized by the caller.
type Logger struct {
	// Items is the layout of a line, rendered in order.
	Items []Item
	// Severity is rendered as [Severity] by ItemSeverity.
	Severity string
	// Color is the background of non-text items on sinks using color.
	Color Color
	// Newline terminates every line with "\n".
	Newline bool
	Sinks   []*Sink
	Env     Environment
	Policy  FailurePolicy

	diag zerolog.Logger
}

// Option configures a Logger.
type Option func(*Logger)

// WithItems sets the layout of a line, in rendering order.
func WithItems(items ...Item) Option {
	return func(l *Logger) { l.Items = append([]Item(nil), items...) }
}

// WithSeverity sets the tag rendered by ItemSeverity.
func WithSeverity(severity string) Option {
	return func(l *Logger) { l.Severity = severity }
}

// WithColor sets the background of non-text items on color sinks.
func WithColor(c Color) Option {
	return func(l *Logger) { l.Color = c }
}

// WithNewline toggles the trailing newline.
func WithNewline(v bool) Option {
	return func(l *Logger) { l.Newline = v }
}

// WithSinks appends sinks.
func WithSinks(sinks ...*Sink) Option {
	return func(l *Logger) { l.Sinks = append(l.Sinks, sinks...) }
}

// WithEnvironment replaces the host environment, mostly for tests.
func WithEnvironment(env Environment) Option {
	return func(l *Logger) { l.Env = env }
}

// WithPolicy sets what Print does when a sink fails.
func WithPolicy(p FailurePolicy) Option {
	return func(l *Logger) { l.Policy = p }
}

// WithDiagnostics sets the logger that reports sink failures. It is silent
// by default.
func WithDiagnostics(zl zerolog.Logger) Option {
	return func(l *Logger) { l.diag = zl }
}

// New creates a Logger that prints only the text, followed by a newline, to
// no sinks.
func New(opts ...Option) *Logger {
	l := &Logger{
		Items:    []Item{ItemText},
		Severity: DefaultSeverity,
		Newline:  true,
		Env:      System(),
		diag:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// AddSink appends a sink.
func (l *Logger) AddSink(s *Sink) {
	l.Sinks = append(l.Sinks, s)
}

// Clone returns a copy whose item and sink lists can be changed without
// affecting l. Sinks themselves are shared.
func (l *Logger) Clone() *Logger {
	cp := *l
	cp.Items = append([]Item(nil), l.Items...)
	cp.Sinks = append([]*Sink(nil), l.Sinks...)
	return &cp
}

// Print renders value on every sink, in order, flushing each sink after its
// line. With FailFast the first failure is returned and later sinks are not
// written; output already written to earlier sinks stays there.
func (l *Logger) Print(value any) error {
	return l.print(value, 0)
}

// print is Print with skip frames above the caller ignored by ItemCallSite.
func (l *Logger) print(value any, skip int) error {
	text := l.text(value)

	var failed []error
	for i, sink := range l.Sinks {
		err := l.output(sink, text, skip)
		if err == nil {
			continue
		}
		err.WithDetail("sink", i)
		l.diag.Debug().Err(err).Int("sink", i).Msg("Sink failed")
		if l.Policy == FailFast {
			return err
		}
		failed = append(failed, err)
	}
	return errors.Join(failed...)
}

// Printf is Print(fmt.Sprintf(format, args...)).
func (l *Logger) Printf(format string, args ...any) error {
	return l.print(fmt.Sprintf(format, args...), 0)
}

// Write prints p as one value, without its trailing newline, so a Logger can
// serve as the output of other loggers. It reports len(p) on success. When
// the writer is a standard log.Logger, ItemCallSite names the code that
// called the log.Logger rather than the log package itself.
func (l *Logger) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if err := l.print(msg, stdLogFrames()); err != nil {
		return 0, err
	}
	return len(p), nil
}

// stdLogFrames counts the frames of the standard log package directly above
// Write.
func stdLogFrames() int {
	pcs := make([]uintptr, 16)
	// skip runtime.Callers, stdLogFrames and Write
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	count := 0
	for {
		fr, more := frames.Next()
		if !strings.HasPrefix(fr.Function, "log.") {
			return count
		}
		count++
		if !more {
			return count
		}
	}
}

// Render returns the line that Print would write to sink, without writing
// or flushing anything. Only the options of sink are used.
func (l *Logger) Render(sink *Sink, value any) string {
	var b strings.Builder
	opts := *sink
	opts.Stream = builderStream{&b}
	_ = l.render(&opts, l.text(value), 0)
	return b.String()
}

func (l *Logger) text(value any) string {
	for _, item := range l.Items {
		if item == ItemText {
			return fmt.Sprint(value)
		}
	}
	return ""
}

func (l *Logger) output(sink *Sink, text string, skip int) *errors.OaklogError {
	if sink == nil || sink.Stream == nil {
		return errors.New(errors.ErrSinkNil, "sink has no stream")
	}
	if err := l.render(sink, text, skip); err != nil {
		return errors.Wrap(err, errors.ErrSinkWrite, "failed to write log line")
	}
	if err := sink.Stream.Flush(); err != nil {
		return errors.Wrap(err, errors.ErrSinkFlush, "failed to flush sink")
	}
	return nil
}

type builderStream struct{ b *strings.Builder }

func (s builderStream) WriteString(str string) (int, error) { return s.b.WriteString(str) }
func (s builderStream) Flush() error                        { return nil }
