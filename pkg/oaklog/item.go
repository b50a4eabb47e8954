package oaklog

import (
	"strings"

	"github.com/arthur-debert/oaklog/pkg/errors"
)

// Item identifies what a rendering slot of a log line produces.
type Item int

const (
	// ItemText is the value passed to Print.
	ItemText Item = iota
	// ItemElapsed is the time elapsed since the process started.
	ItemElapsed
	// ItemWallClock is the local time in yyyy/MM/dd HH:mm form.
	ItemWallClock
	// ItemCallSite is the stack frame at which Print was called.
	ItemCallSite
	// ItemSeverity is the logger's severity tag.
	ItemSeverity
	// ItemThreadID is the id of the goroutine that called Print.
	ItemThreadID
)

var itemNames = map[Item]string{
	ItemText:      "text",
	ItemElapsed:   "elapsed",
	ItemWallClock: "time",
	ItemCallSite:  "callsite",
	ItemSeverity:  "severity",
	ItemThreadID:  "thread",
}

// aliases accepted by ParseItem, keyed by lowercased name
var itemAliases = map[string]Item{
	"text":              ItemText,
	"elapsed":           ItemElapsed,
	"elapsedsincestart": ItemElapsed,
	"timesincestartup":  ItemElapsed,
	"time":              ItemWallClock,
	"wallclock":         ItemWallClock,
	"wallclocktime":     ItemWallClock,
	"systemtime":        ItemWallClock,
	"callsite":          ItemCallSite,
	"stackframe":        ItemCallSite,
	"severity":          ItemSeverity,
	"type":              ItemSeverity,
	"thread":            ItemThreadID,
	"threadid":          ItemThreadID,
}

// AllItems lists every item kind in declaration order.
func AllItems() []Item {
	return []Item{ItemText, ItemElapsed, ItemWallClock, ItemCallSite, ItemSeverity, ItemThreadID}
}

// String returns the stable name of the item
func (i Item) String() string {
	if name, ok := itemNames[i]; ok {
		return name
	}
	return "unknown"
}

// ParseItem parses an item name. Matching is case-insensitive and ignores
// dashes and underscores, so "thread-id", "ThreadId" and "thread_id" are equal.
func ParseItem(s string) (Item, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	if item, ok := itemAliases[key]; ok {
		return item, nil
	}
	return ItemText, errors.Newf(errors.ErrInvalidItem, "unknown log item %q", s).
		WithDetail("item", s)
}

// ParseItems parses a list of item names, stopping at the first invalid one.
func ParseItems(names []string) ([]Item, error) {
	items := make([]Item, 0, len(names))
	for _, name := range names {
		item, err := ParseItem(name)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ItemNames is the inverse of ParseItems.
func ItemNames(items []Item) []string {
	names := make([]string, len(items))
	for i, item := range items {
		names[i] = item.String()
	}
	return names
}
