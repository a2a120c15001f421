package command

// Handler implements the behavior of a single AT command. Each of the
// four operations corresponds to one command form:
//
//	Exec  — AT+NAME
//	Query — AT+NAME?
//	Test  — AT+NAME=?
//	Set   — AT+NAME=<args>
//
// An operation returns either a response string or an error, typically
// ErrNotSupported or ErrInvalidArgs. A handler that does not support an
// operation should embed Base so the operation defaults to
// ErrNotSupported.
//
// Handlers must not call back into the Dispatcher that invoked them.
type Handler interface {
	Exec() (string, error)
	Query() (string, error)
	Test() (string, error)
	Set(args Args) (string, error)
}

// Base provides the default implementation of every Handler operation,
// returning ErrNotSupported. Embed it so a handler only overrides the
// forms it actually supports.
type Base struct{}

func (Base) Exec() (string, error) { return "", ErrNotSupported }

func (Base) Query() (string, error) { return "", ErrNotSupported }

func (Base) Test() (string, error) { return "", ErrNotSupported }

func (Base) Set(Args) (string, error) { return "", ErrNotSupported }
