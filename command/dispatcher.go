// Package command parses AT command lines and dispatches them to
// registered handlers.
//
// A command line selects one of the four standard AT forms by its shape:
// "AT+NAME" executes, "AT+NAME?" queries, "AT+NAME=?" tests, and
// "AT+NAME=a,b" sets with arguments. The Dispatcher classifies a line,
// looks the name up in a caller-supplied table, and invokes the matching
// Handler operation. Parsing never fails; all failures surface during
// dispatch as one of the three sentinel errors in this package.
//
// The package performs no I/O, keeps no state between calls, and
// allocates nothing on the parse and lookup path. Concurrent Execute
// calls on the same Dispatcher must be serialized by the caller.
package command

import "strings"

// Form identifies which of the four AT command shapes a line takes.
type Form uint8

const (
	FormExec Form = iota
	FormQuery
	FormTest
	FormSet
)

func (f Form) String() string {
	switch f {
	case FormExec:
		return "exec"
	case FormQuery:
		return "query"
	case FormTest:
		return "test"
	case FormSet:
		return "set"
	default:
		return "unknown"
	}
}

// lineCutset is the ASCII whitespace stripped from both ends of a
// command line before classification.
const lineCutset = " \t\r\n"

// Parse classifies a command line into its name and form. The line is
// trimmed of leading and trailing ASCII whitespace first; classification
// then tries, in order: the "=?" suffix (test), a trailing '?' (query),
// the first '=' (set, with everything after it as the raw argument
// tail), and finally exec. The order matters: "AT+X=?" is a test, not a
// set with a "?" tail.
//
// Parse accepts any input. Names are taken verbatim; the "AT+" prefix is
// not required or stripped, and validity is decided later by table
// lookup. The returned args view is meaningful only for FormSet.
func Parse(line string) (name string, form Form, args Args) {
	line = strings.Trim(line, lineCutset)

	switch {
	case strings.HasSuffix(line, "=?"):
		return line[:len(line)-2], FormTest, Args{}
	case strings.HasSuffix(line, "?"):
		return line[:len(line)-1], FormQuery, Args{}
	}
	if i := strings.IndexByte(line, '='); i >= 0 {
		return line[:i], FormSet, Args{Raw: line[i+1:]}
	}
	return line, FormExec, Args{}
}

// Binding associates a command name with its handler. Names are matched
// byte-for-byte and case-sensitively; there is no prefix or wildcard
// matching.
type Binding struct {
	Name    string
	Handler Handler
}

// Dispatcher routes parsed command lines to handlers registered in its
// table. The zero value and New() are equivalent: a dispatcher with an
// empty table, for which every Execute returns ErrUnknownCommand.
type Dispatcher struct {
	commands []Binding
}

// New returns a Dispatcher with an empty command table.
func New() *Dispatcher {
	return &Dispatcher{}
}

// SetCommands replaces the registration table. The dispatcher keeps the
// slice without copying; the caller must not mutate it while dispatch
// calls are in flight. Duplicate names are allowed, the first entry in
// insertion order wins.
func (d *Dispatcher) SetCommands(commands []Binding) {
	d.commands = commands
}

// Commands returns the current registration table.
func (d *Dispatcher) Commands() []Binding {
	return d.commands
}

// Execute parses a single command line and invokes the matching handler
// operation, returning its response or error unchanged. Lookup is a
// linear scan of the table in insertion order; a miss returns
// ErrUnknownCommand and invokes nothing. Command tables are small, so
// the scan is deliberate: no hash table, no sorting requirement.
func (d *Dispatcher) Execute(line string) (string, error) {
	name, form, args := Parse(line)

	for i := range d.commands {
		if d.commands[i].Name != name {
			continue
		}
		h := d.commands[i].Handler
		switch form {
		case FormQuery:
			return h.Query()
		case FormTest:
			return h.Test()
		case FormSet:
			return h.Set(args)
		default:
			return h.Exec()
		}
	}
	return "", ErrUnknownCommand
}
