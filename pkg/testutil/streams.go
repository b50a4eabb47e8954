package testutil

import (
	"errors"
	"strings"
)

// ErrStreamClosed is returned by failing streams unless told otherwise.
var ErrStreamClosed = errors.New("stream closed")

// RecordingStream keeps everything written to it and counts flushes.
type RecordingStream struct {
	b       strings.Builder
	Writes  int
	Flushes int
}

func (s *RecordingStream) WriteString(str string) (int, error) {
	s.Writes++
	return s.b.WriteString(str)
}

func (s *RecordingStream) Flush() error {
	s.Flushes++
	return nil
}

// String returns everything written so far.
func (s *RecordingStream) String() string { return s.b.String() }

// Reset forgets the recorded output and counters.
func (s *RecordingStream) Reset() {
	s.b.Reset()
	s.Writes = 0
	s.Flushes = 0
}

// FailingStream accepts FailAfter writes, then fails every write. With
// FailFlush set, flushing fails too.
type FailingStream struct {
	RecordingStream
	FailAfter int
	FailFlush bool
	Err       error
}

func (s *FailingStream) err() error {
	if s.Err != nil {
		return s.Err
	}
	return ErrStreamClosed
}

func (s *FailingStream) WriteString(str string) (int, error) {
	if s.Writes >= s.FailAfter {
		s.Writes++
		return 0, s.err()
	}
	return s.RecordingStream.WriteString(str)
}

func (s *FailingStream) Flush() error {
	s.Flushes++
	if s.FailFlush {
		return s.err()
	}
	return nil
}
