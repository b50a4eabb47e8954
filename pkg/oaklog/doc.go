// Package oaklog renders log lines from a configurable layout of items and
// writes them to one or more sinks.
//
// A line is built from Items in order. ItemText is replaced by the value given
// to Print; every other item is rendered in brackets. With SeparateItems set
// on the sink a line looks like:
//
//	[2024/05/01 13:37] [DEFAULT] [#1] hello
//
// Each Sink carries its own separator, interleaving and color options, so the
// same Logger can write a colored line to a terminal and a plain one to a
// file:
//
//	log := oaklog.New(
//		oaklog.WithItems(oaklog.ItemWallClock, oaklog.ItemSeverity, oaklog.ItemText),
//		oaklog.WithSeverity("WARNING"),
//		oaklog.WithColor(oaklog.RGB(200, 120, 0)),
//		oaklog.WithSinks(
//			oaklog.NewConsoleSink(os.Stdout),
//			oaklog.NewWriterSink(file),
//		),
//	)
//	err := log.Print("disk almost full")
//
// Host facts (clock, process start, goroutine id, call site) come from an
// Environment, System() by default.
package oaklog
