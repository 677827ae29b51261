// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Command-line argument handling for the memu CLI.

// Package cli implements the command-line surfaces: argument parsing,
// the plain-text REPL and the sessions listing.
package cli

import "strings"

// Command selects the program surface to run.
type Command int

const (
	// CmdTUI is the default full-screen chat interface.
	CmdTUI Command = iota
	// CmdChat is the plain-text REPL for dumb terminals and pipes.
	CmdChat
	// CmdSessions lists saved conversations.
	CmdSessions
	// CmdVersion prints version information.
	CmdVersion
	// CmdHelp prints usage.
	CmdHelp
)

// Args is the parsed command line.
type Args struct {
	Command    Command
	ConfigPath string // --config override, empty for the default
}

// Parse maps raw arguments (without the program name) to a command.
// Unknown commands fall back to help so typos never start a session.
func Parse(raw []string) Args {
	args := Args{Command: CmdTUI}

	rest := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		switch {
		case raw[i] == "--config" && i+1 < len(raw):
			args.ConfigPath = raw[i+1]
			i++
		case strings.HasPrefix(raw[i], "--config="):
			args.ConfigPath = strings.TrimPrefix(raw[i], "--config=")
		default:
			rest = append(rest, raw[i])
		}
	}

	if len(rest) == 0 {
		return args
	}

	switch rest[0] {
	case "chat":
		args.Command = CmdChat
	case "sessions":
		args.Command = CmdSessions
	case "version", "--version", "-v":
		args.Command = CmdVersion
	case "help", "--help", "-h":
		args.Command = CmdHelp
	default:
		args.Command = CmdHelp
	}
	return args
}

// Usage is the help text printed for the help command and unknown input.
const Usage = `memu - terminal chat client

Usage:
  memu              Start the full-screen chat interface
  memu chat         Start a plain-text chat REPL
  memu sessions     List saved conversations
  memu version      Print version information
  memu help         Show this help

Flags:
  --config PATH     Use an alternate config file (default ~/.memu/config.toml)

Environment:
  MEMU_API_URL      Generation endpoint (overrides config)
  MEMU_API_KEY      API key sent with each request
`
