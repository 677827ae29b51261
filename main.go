// memu TUI - A terminal chat client for the Memu assistant.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	"github.com/jeranaias/memu-tui/internal/api"
	"github.com/jeranaias/memu-tui/internal/cli"
	"github.com/jeranaias/memu-tui/internal/config"
	"github.com/jeranaias/memu-tui/internal/kvstore"
	"github.com/jeranaias/memu-tui/internal/session"
	"github.com/jeranaias/memu-tui/internal/store"
	"github.com/jeranaias/memu-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	args := cli.Parse(os.Args[1:])

	switch args.Command {
	case cli.CmdVersion:
		fmt.Printf("memu %s (%s, %s)\n", Version, GitCommit, BuildDate)
	case cli.CmdHelp:
		fmt.Print(cli.Usage)
	case cli.CmdSessions:
		runWithApp(args, false, func(app *app) error {
			return cli.RunSessions(app.conversations, os.Stdout)
		})
	case cli.CmdChat:
		runWithApp(args, true, func(app *app) error {
			return cli.RunChat(app.engine, app.conversations, app.settings)
		})
	default:
		if !cli.IsTTY() {
			fmt.Fprintln(os.Stderr, "stdin is not a terminal; use 'memu chat' for piped input")
			os.Exit(1)
		}
		runWithApp(args, true, func(app *app) error {
			return chat.Run(app.engine, app.conversations, app.settings)
		})
	}
}

// app bundles the wired application components.
type app struct {
	kv            *kvstore.Store
	conversations *store.ConversationStore
	settings      *store.SettingsStore
	engine        *session.Engine
	watcher       *config.Watcher
}

// runWithApp builds the component graph, runs fn, and tears everything
// down in order: pending writes flush before the database closes.
func runWithApp(args cli.Args, needEndpoint bool, fn func(*app) error) {
	cfg, err := loadConfig(args)
	if err != nil {
		fatal(err)
	}
	if needEndpoint {
		if err := cfg.RequireEndpoint(); err != nil {
			fatal(err)
		}
	}

	dbPath, err := cfg.DatabasePath()
	if err != nil {
		fatal(err)
	}
	kv, err := kvstore.Open(dbPath)
	if err != nil {
		fatal(err)
	}

	conversations := store.NewConversationStore(kv)
	conversations.LoadFromDisk(kv)
	settings := store.NewSettingsStore(kv)
	settings.LoadFromDisk(kv)

	client := api.NewClientWithConfig(&api.ClientConfig{
		BaseURL:    cfg.API.URL,
		APIKey:     cfg.API.Key,
		Timeout:    cfg.API.Timeout(),
		MaxRetries: cfg.API.MaxRetries,
		RetryDelay: cfg.API.RetryDelay(),
	})
	engine := session.New(conversations, settings, client)

	a := &app{
		kv:            kv,
		conversations: conversations,
		settings:      settings,
		engine:        engine,
	}
	a.watchConfig(args, client)

	runErr := fn(a)

	engine.Cancel()
	engine.Wait()
	if a.watcher != nil {
		a.watcher.Close()
	}
	conversations.Close()
	settings.Close()
	kv.Close()

	if runErr != nil {
		fatal(runErr)
	}
}

// loadConfig resolves the config path from the command line.
func loadConfig(args cli.Args) (*config.Config, error) {
	if args.ConfigPath != "" {
		return config.LoadFrom(args.ConfigPath)
	}
	return config.Load()
}

// watchConfig hot-reloads endpoint changes into the running client.
// Reload failures are ignored; the last good endpoint stays active.
func (a *app) watchConfig(args cli.Args, client *api.Client) {
	path := args.ConfigPath
	if path == "" {
		var err error
		path, err = config.Path()
		if err != nil {
			return
		}
	}
	w, err := config.Watch(path, func(cfg *config.Config, err error) {
		if err != nil || cfg.API.URL == "" {
			return
		}
		client.SetEndpoint(cfg.API.URL, cfg.API.Key)
	})
	if err == nil {
		a.watcher = w
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "memu:", err)
	os.Exit(1)
}
