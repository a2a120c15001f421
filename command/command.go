package command

// Command is a Handler assembled from optional functions, for commands
// whose state lives in closures or elsewhere. A nil function behaves as
// an unimplemented operation and yields ErrNotSupported.
type Command struct {
	ExecFunc  func() (string, error)
	QueryFunc func() (string, error)
	TestFunc  func() (string, error)
	SetFunc   func(args Args) (string, error)

	// Help is a one-line description of the command. The core ignores
	// it; callers may surface it, for example through a help command.
	Help string
}

func (c *Command) Exec() (string, error) {
	if c.ExecFunc == nil {
		return "", ErrNotSupported
	}
	return c.ExecFunc()
}

func (c *Command) Query() (string, error) {
	if c.QueryFunc == nil {
		return "", ErrNotSupported
	}
	return c.QueryFunc()
}

func (c *Command) Test() (string, error) {
	if c.TestFunc == nil {
		return "", ErrNotSupported
	}
	return c.TestFunc()
}

func (c *Command) Set(args Args) (string, error) {
	if c.SetFunc == nil {
		return "", ErrNotSupported
	}
	return c.SetFunc(args)
}

var _ Handler = (*Command)(nil)
