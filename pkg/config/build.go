package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/oaklog/pkg/errors"
	"github.com/arthur-debert/oaklog/pkg/logging"
	"github.com/arthur-debert/oaklog/pkg/oaklog"
)

// Streams are the writers behind the "stdout" and "stderr" outputs. Nil
// fields mean os.Stdout and os.Stderr.
type Streams struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Built is a logger built from a Layout, along with the files it opened.
type Built struct {
	Logger *oaklog.Logger
	files  []*os.File
}

// Close closes every file opened for the logger's sinks.
func (b *Built) Close() error {
	var errs []error
	for _, f := range b.files {
		if err := f.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	b.files = nil
	return errors.Join(errs...)
}

// Build validates the layout and creates the logger it describes. Extra
// options are applied after the layout's own.
func (l *Layout) Build(streams Streams, opts ...oaklog.Option) (*Built, error) {
	resolved, err := l.Validate()
	if err != nil {
		return nil, err
	}

	built := &Built{}
	sinks := make([]*oaklog.Sink, 0, len(l.Sinks))
	for i, sc := range l.Sinks {
		sink, err := built.openSink(sc, streams)
		if err != nil {
			_ = built.Close()
			return nil, err.WithDetail("sink", i)
		}
		sinks = append(sinks, sink)
	}

	all := []oaklog.Option{
		oaklog.WithItems(resolved.Items...),
		oaklog.WithSeverity(l.Severity),
		oaklog.WithColor(resolved.Color),
		oaklog.WithNewline(l.Newline),
		oaklog.WithPolicy(resolved.Policy),
		oaklog.WithSinks(sinks...),
		oaklog.WithDiagnostics(logging.GetLogger("oaklog")),
	}
	built.Logger = oaklog.New(append(all, opts...)...)
	return built, nil
}

func (b *Built) openSink(sc SinkConfig, streams Streams) (*oaklog.Sink, *errors.OaklogError) {
	var w io.Writer
	switch strings.ToLower(sc.Output) {
	case OutputStdout:
		w = streams.Stdout
		if w == nil {
			w = os.Stdout
		}
	case OutputStderr:
		w = streams.Stderr
		if w == nil {
			w = os.Stderr
		}
	default:
		f, err := openAppend(sc.Output)
		if err != nil {
			return nil, err
		}
		b.files = append(b.files, f)
		w = f
	}

	useColor := false
	switch strings.ToLower(sc.Color) {
	case ColorAlways:
		useColor = true
	case ColorAuto, "":
		if f, ok := w.(*os.File); ok {
			useColor = oaklog.SupportsColor(f)
		}
	}

	return oaklog.NewWriterSink(w,
		oaklog.WithSeparator(sc.separator()),
		oaklog.WithSeparateItems(sc.SeparateItems),
		oaklog.WithColorOutput(useColor),
	), nil
}

func openAppend(path string) (*os.File, *errors.OaklogError) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to create directory for %s", path)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileCreate, "failed to open %s", path)
	}
	return f, nil
}
