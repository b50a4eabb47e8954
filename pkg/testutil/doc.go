// Package testutil provides fakes and helpers for testing oaklog components.
//
// Key components:
//   - FakeEnv: a fixed clock, thread id and call site for deterministic lines
//   - RecordingStream: a Stream that keeps every write and counts flushes
//   - FailingStream: a Stream that fails after a number of writes, or on flush
//   - CreateFile, ReadFile, AssertFileContent: file helpers for layout and
//     file sink tests
package testutil
