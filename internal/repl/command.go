package repl

import "strings"

// Command is the closed set of names the interpreter understands.
type Command int

const (
	CmdUnknown Command = iota
	CmdAdd
	CmdList
	CmdUpdate
	CmdDelete
	CmdComplete
	CmdIncomplete
	CmdStats
	CmdHelp
	CmdExit
)

// ParseCommand maps a command name, case-insensitively, to its Command.
func ParseCommand(name string) Command {
	switch strings.ToLower(name) {
	case "add":
		return CmdAdd
	case "list":
		return CmdList
	case "update":
		return CmdUpdate
	case "delete":
		return CmdDelete
	case "complete":
		return CmdComplete
	case "incomplete":
		return CmdIncomplete
	case "stats":
		return CmdStats
	case "help":
		return CmdHelp
	case "exit", "quit":
		return CmdExit
	default:
		return CmdUnknown
	}
}

func (c Command) String() string {
	switch c {
	case CmdAdd:
		return "add"
	case CmdList:
		return "list"
	case CmdUpdate:
		return "update"
	case CmdDelete:
		return "delete"
	case CmdComplete:
		return "complete"
	case CmdIncomplete:
		return "incomplete"
	case CmdStats:
		return "stats"
	case CmdHelp:
		return "help"
	case CmdExit:
		return "exit"
	default:
		return "unknown"
	}
}
