package common

import (
	"github.com/urfave/cli"
	clihelpers "gitlab.com/gitlab-org/golang-cli-helpers"
)

// Commander executes the command with the cli.Context.
type Commander interface {
	Execute(c *cli.Context)
}

// CommanderFunc allows the registration of commands without having to explicitly implement
// the Commander interface for simple functions.
type CommanderFunc func(*cli.Context)

// Execute provides default implementation for Commander interface.
func (cf CommanderFunc) Execute(c *cli.Context) {
	cf(c)
}

var commands []cli.Command

// NewCommand constructs a command with the given name, usage, and flags.
// Additional flags are derived from the data struct's field tags.
func NewCommand(name, usage string, data Commander, flags ...cli.Flag) cli.Command {
	return cli.Command{
		Name:   name,
		Usage:  usage,
		Action: data.Execute,
		Flags:  append(flags, clihelpers.GetFlagsFromStruct(data)...),
	}
}

// RegisterCommand builds a command and adds it to the application's command
// set. It is meant to be called from init.
func RegisterCommand(name, usage string, data Commander, flags ...cli.Flag) {
	commands = append(commands, NewCommand(name, usage, data, flags...))
}

// GetCommands returns all registered commands.
func GetCommands() []cli.Command {
	return commands
}
