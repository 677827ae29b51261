// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns conversation and settings state plus persistence.
package store

import (
	"encoding/json"
	"sync"

	"github.com/jeranaias/memu-tui/internal/kvstore"
)

// Defaults applied when no settings record exists or it cannot be decoded.
const (
	DefaultUserName    = "Kullanıcı"
	DefaultAccentColor = "58A6FF"
)

// AccentColorOptions are the selectable theme colors.
var AccentColorOptions = []string{
	"58A6FF", // mavi
	"238636", // yeşil
	"A371F7", // mor
	"F85149", // kırmızı
	"DB61A2", // pembe
	"F0883E", // turuncu
}

// UserSettings holds the user's display preferences. Any text is accepted
// for both fields.
type UserSettings struct {
	UserName    string `json:"userName"`
	AccentColor string `json:"accentColor"`
}

// DefaultSettings returns the fallback settings.
func DefaultSettings() UserSettings {
	return UserSettings{
		UserName:    DefaultUserName,
		AccentColor: DefaultAccentColor,
	}
}

// =============================================================================
// SETTINGS STORE
// =============================================================================

// SettingsStore owns the UserSettings singleton and writes it through to
// the blob store on save.
type SettingsStore struct {
	mu       sync.Mutex
	settings UserSettings
	queue    *writeQueue
}

// NewSettingsStore creates a settings store persisting through kv.
func NewSettingsStore(kv *kvstore.Store) *SettingsStore {
	return &SettingsStore{
		settings: DefaultSettings(),
		queue:    newWriteQueue(kv),
	}
}

// LoadFromDisk reads persisted settings; missing or corrupt data keeps
// the defaults.
func (s *SettingsStore) LoadFromDisk(kv *kvstore.Store) {
	data, err := kv.Get(kvstore.KeyUserSettings)
	if err != nil {
		return
	}
	var decoded UserSettings
	if json.Unmarshal(data, &decoded) != nil {
		return
	}
	s.mu.Lock()
	s.settings = decoded
	s.mu.Unlock()
}

// Get returns the current settings.
func (s *SettingsStore) Get() UserSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Set replaces the settings and schedules a write-through.
func (s *SettingsStore) Set(settings UserSettings) {
	s.mu.Lock()
	s.settings = settings
	s.persistLocked()
	s.mu.Unlock()
}

// Save persists the current settings.
func (s *SettingsStore) Save() {
	s.mu.Lock()
	s.persistLocked()
	s.mu.Unlock()
}

// Flush blocks until scheduled writes have completed.
func (s *SettingsStore) Flush() {
	s.queue.flush()
}

// Close flushes pending writes and stops the write worker.
func (s *SettingsStore) Close() {
	s.queue.close()
}

func (s *SettingsStore) persistLocked() {
	data, err := json.Marshal(s.settings)
	if err != nil {
		return
	}
	s.queue.enqueue(kvstore.KeyUserSettings, data)
}
