package logutils

import "fmt"

// Format defers formatting of item until a log line is actually emitted, so
// fields attached to debug-only entries cost nothing at higher log levels.
func Format(verb string, item any) fmt.Stringer {
	return formatPrinter{verb: verb, item: item}
}

type formatPrinter struct {
	verb string
	item any
}

func (p formatPrinter) String() string {
	return fmt.Sprintf(p.verb, p.item)
}
