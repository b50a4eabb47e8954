package oaklog

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Stream is the destination a Sink writes to.
type Stream interface {
	WriteString(s string) (int, error)
	Flush() error
}

// WriterStream adapts an io.Writer to a Stream. Flush is forwarded when w has
// a Flush() error method (bufio.Writer, for example) and is a no-op otherwise.
func WriterStream(w io.Writer) Stream {
	if s, ok := w.(Stream); ok {
		return s
	}
	return &writerStream{w: w}
}

type writerStream struct {
	w io.Writer
}

func (s *writerStream) WriteString(str string) (int, error) {
	return io.WriteString(s.w, str)
}

func (s *writerStream) Flush() error {
	if f, ok := s.w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// Sink is an output destination together with its own formatting options.
// The stream is borrowed: several loggers may share one Sink, and closing the
// stream is left to whoever opened it.
type Sink struct {
	Stream Stream
	// Separator is written between text and the surrounding items.
	Separator string
	// SeparateItems also writes Separator after every item but the last two.
	SeparateItems bool
	// UseColor enables ANSI background colors around non-text items.
	UseColor bool
}

// SinkOption configures a Sink.
type SinkOption func(*Sink)

// WithSeparator sets the separator string.
func WithSeparator(sep string) SinkOption {
	return func(s *Sink) { s.Separator = sep }
}

// WithSeparateItems toggles the separator between items.
func WithSeparateItems(v bool) SinkOption {
	return func(s *Sink) { s.SeparateItems = v }
}

// WithColorOutput toggles ANSI color output.
func WithColorOutput(v bool) SinkOption {
	return func(s *Sink) { s.UseColor = v }
}

// NewSink creates a sink writing to stream. The stream is not validated; a
// nil stream fails on the first Print.
func NewSink(stream Stream, opts ...SinkOption) *Sink {
	s := &Sink{
		Stream:    stream,
		Separator: " ",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewWriterSink is NewSink(WriterStream(w), opts...).
func NewWriterSink(w io.Writer, opts ...SinkOption) *Sink {
	return NewSink(WriterStream(w), opts...)
}

// NewConsoleSink creates a sink for a terminal file such as os.Stdout. Color
// is enabled when the file is a terminal with color support and NO_COLOR is
// unset; options are applied afterwards and may override it.
func NewConsoleSink(f *os.File, opts ...SinkOption) *Sink {
	all := append([]SinkOption{WithColorOutput(SupportsColor(f))}, opts...)
	return NewSink(WriterStream(f), all...)
}

// SupportsColor reports whether f is a terminal that renders ANSI colors.
func SupportsColor(f *os.File) bool {
	if f == nil {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	out := termenv.NewOutput(f)
	if out.EnvNoColor() {
		return false
	}
	return out.EnvColorProfile() != termenv.Ascii
}
