package testutil

import (
	"time"
)

// FixedTime is the wall clock reported by NewFakeEnv: 2024/03/09 14:05:07.250
// local time.
var FixedTime = time.Date(2024, time.March, 9, 14, 5, 7, 250*int(time.Millisecond), time.Local)

// FakeEnv is an oaklog.Environment with fixed answers.
type FakeEnv struct {
	NowTime   time.Time
	Start     time.Time
	ThreadID  int64
	CallSite  string
	CallSites int // number of CaptureCallSite calls
	LastSkip  int // skip of the last CaptureCallSite call
}

// NewFakeEnv returns an environment 1.25s after process start, on thread 7,
// called from "main.main (main.go:12)".
func NewFakeEnv() *FakeEnv {
	return &FakeEnv{
		NowTime:  FixedTime,
		Start:    FixedTime.Add(-1250 * time.Millisecond),
		ThreadID: 7,
		CallSite: "main.main (main.go:12)",
	}
}

// Elapsed moves the start time so that Now()-StartTime() equals d.
func (e *FakeEnv) Elapsed(d time.Duration) *FakeEnv {
	e.Start = e.NowTime.Add(-d)
	return e
}

func (e *FakeEnv) Now() time.Time         { return e.NowTime }
func (e *FakeEnv) StartTime() time.Time   { return e.Start }
func (e *FakeEnv) CurrentThreadID() int64 { return e.ThreadID }

func (e *FakeEnv) CaptureCallSite(skip int) string {
	e.CallSites++
	e.LastSkip = skip
	return e.CallSite
}
