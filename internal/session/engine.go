// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session drives the send/receive lifecycle of a chat turn.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/jeranaias/memu-tui/internal/model"
	"github.com/jeranaias/memu-tui/internal/prompt"
	"github.com/jeranaias/memu-tui/internal/store"
)

// Apology is appended as the assistant turn when a request fails.
const Apology = "Üzgünüm, bir hata oluştu. Lütfen tekrar dener misin? 😔"

// State of the engine. At most one request is in flight; submissions
// while Sending are dropped.
type State int

const (
	Idle State = iota
	Sending
)

// Generator produces a reply for a prompt. *api.Client satisfies it.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// =============================================================================
// ENGINE
// =============================================================================

// Engine owns the single-flight request lifecycle: it appends the user
// message, builds the prompt from the pre-append history, dispatches the
// request, and settles the turn with either the parsed reply or the
// apology message.
type Engine struct {
	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
	inflight   sync.WaitGroup

	conversations *store.ConversationStore
	settings      *store.SettingsStore
	gen           Generator

	// onChange fires after every visible state transition, outside the
	// engine lock. Nil is fine.
	onChange func()
}

// New creates an engine over the given stores and generator.
func New(conversations *store.ConversationStore, settings *store.SettingsStore, gen Generator) *Engine {
	return &Engine{
		conversations: conversations,
		settings:      settings,
		gen:           gen,
	}
}

// OnChange registers the state-change callback. Call before Submit.
func (e *Engine) OnChange(fn func()) {
	e.mu.Lock()
	e.onChange = fn
	e.mu.Unlock()
}

// State returns the current engine state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// IsComposing reports whether a reply is being generated.
func (e *Engine) IsComposing() bool {
	return e.State() == Sending
}

// Wait blocks until the in-flight request, if any, has settled.
func (e *Engine) Wait() {
	e.inflight.Wait()
}

// =============================================================================
// SUBMIT
// =============================================================================

// Submit starts a chat turn for the given input. Blank input and
// submissions while a request is already in flight are ignored. The
// user message is visible immediately; the reply (or the apology)
// arrives asynchronously.
func (e *Engine) Submit(text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}

	e.mu.Lock()
	if e.state == Sending {
		e.mu.Unlock()
		return
	}
	if e.cancel != nil {
		e.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	e.cancel = cancel
	e.generation++
	gen := e.generation
	e.state = Sending
	e.mu.Unlock()

	// Prompt history is the conversation before this user message.
	history := e.conversations.Buffer()
	e.conversations.AppendToBuffer(model.NewUserMessage(trimmed))
	e.notify()

	userName := e.settings.Get().UserName
	p := prompt.Build(history, trimmed, userName)

	e.inflight.Add(1)
	go func() {
		defer e.inflight.Done()
		reply, err := e.gen.Generate(ctx, p)
		e.settle(ctx, gen, reply, err)
	}()
}

// Cancel aborts the in-flight request, if any. The dropped reply is
// discarded when it eventually arrives.
func (e *Engine) Cancel() {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	changed := e.state == Sending
	e.state = Idle
	e.mu.Unlock()

	if changed {
		e.notify()
	}
}

// settle applies the outcome of a request: append the assistant turn
// (reply or apology), persist, and return to Idle. Results from
// cancelled or superseded requests are discarded.
func (e *Engine) settle(ctx context.Context, gen uint64, reply string, err error) {
	e.mu.Lock()
	if ctx.Err() != nil || gen != e.generation {
		e.mu.Unlock()
		return
	}
	e.state = Idle
	e.cancel = nil
	e.mu.Unlock()

	// The raw reply is stored as-is; presentation formats are parsed at
	// render time so persisted history stays faithful to the wire.
	content := reply
	if err != nil {
		content = Apology
	}
	e.conversations.AppendToBuffer(model.NewAssistantMessage(content))
	e.conversations.SaveActive()
	e.notify()
}

func (e *Engine) notify() {
	e.mu.Lock()
	fn := e.onChange
	e.mu.Unlock()
	if fn != nil {
		fn()
	}
}
