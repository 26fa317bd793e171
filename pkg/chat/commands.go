package chat

import (
	"fmt"
	"strings"
)

// Command is a canonical console command.
type Command string

const (
	CommandQuit  Command = "quit"
	CommandTeach Command = "teach"
	CommandSkip  Command = "skip"
)

// commandOrder fixes the dispatch order so a lookup is deterministic.
var commandOrder = []Command{CommandQuit, CommandTeach, CommandSkip}

// CommandTable maps each canonical command to the literal tokens that trigger it.
// Tokens are matched case-insensitively against the trimmed input line.
type CommandTable map[Command][]string

// DefaultCommands returns the interface tokens: "quit", "apprendre" and "passer".
func DefaultCommands() CommandTable {
	return CommandTable{
		CommandQuit:  {"quit"},
		CommandTeach: {"apprendre"},
		CommandSkip:  {"passer"},
	}
}

// Lookup returns the command line triggers, if any.
func (t CommandTable) Lookup(line string) (Command, bool) {
	line = strings.TrimSpace(line)
	for _, cmd := range commandOrder {
		for _, token := range t[cmd] {
			if strings.EqualFold(line, token) {
				return cmd, true
			}
		}
	}
	return "", false
}

// Is reports whether line triggers cmd.
func (t CommandTable) Is(cmd Command, line string) bool {
	got, ok := t.Lookup(line)
	return ok && got == cmd
}

// Primary returns the first token of cmd, used when a prompt names it.
func (t CommandTable) Primary(cmd Command) string {
	if tokens := t[cmd]; len(tokens) > 0 {
		return tokens[0]
	}
	return string(cmd)
}

// Validate checks that every command has at least one token and that no token is shared.
func (t CommandTable) Validate() error {
	seen := make(map[string]Command)
	for _, cmd := range commandOrder {
		tokens := t[cmd]
		if len(tokens) == 0 {
			return fmt.Errorf("command %q has no tokens", cmd)
		}
		for _, token := range tokens {
			key := strings.ToLower(strings.TrimSpace(token))
			if key == "" {
				return fmt.Errorf("command %q has an empty token", cmd)
			}
			if other, dup := seen[key]; dup {
				return fmt.Errorf("token %q is used by both %q and %q", token, other, cmd)
			}
			seen[key] = cmd
		}
	}
	return nil
}
