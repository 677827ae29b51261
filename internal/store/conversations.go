// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns conversation and settings state plus persistence.
package store

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jeranaias/memu-tui/internal/kvstore"
	"github.com/jeranaias/memu-tui/internal/model"
	"github.com/jeranaias/memu-tui/internal/util"
)

// =============================================================================
// CONVERSATION STORE
// =============================================================================

// ConversationStore holds the conversation list, the selection pointer and
// the active message buffer. All state mutation goes through its mutex;
// byte-level persistence is dispatched to the background write queue.
//
// Invariants:
//   - New conversations insert at the front of the list.
//   - Once any conversation exists exactly one is selected.
//   - Message order within a conversation is append-only.
type ConversationStore struct {
	mu sync.Mutex

	conversations []model.Conversation
	selectedID    uuid.UUID
	buffer        []model.Message

	queue *writeQueue
}

// NewConversationStore creates a store persisting through kv.
func NewConversationStore(kv *kvstore.Store) *ConversationStore {
	return &ConversationStore{
		queue: newWriteQueue(kv),
	}
}

// LoadFromDisk reads the persisted conversation list. Missing or corrupt
// data is treated as absent: the store starts with a fresh conversation.
func (s *ConversationStore) LoadFromDisk(kv *kvstore.Store) {
	data, err := kv.Get(kvstore.KeyConversations)
	if err == nil {
		var decoded []model.Conversation
		if json.Unmarshal(data, &decoded) == nil && len(decoded) > 0 {
			s.mu.Lock()
			s.conversations = decoded
			s.selectedID = decoded[0].ID
			s.buffer = cloneMessages(decoded[0].Messages)
			s.mu.Unlock()
			return
		}
	}
	if !errors.Is(err, kvstore.ErrNotFound) {
		// Corrupt blob: fall through to a clean slate.
	}
	s.StartNew()
}

// =============================================================================
// OPERATIONS
// =============================================================================

// StartNew selects a fresh conversation id, clears the active buffer and
// inserts an empty conversation at the front.
func (s *ConversationStore) StartNew() {
	s.mu.Lock()
	s.selectedID = uuid.New()
	s.buffer = nil
	s.upsertLocked()
	s.persistLocked()
	s.mu.Unlock()
}

// Load switches the selection to id and replaces the active buffer with
// that conversation's messages. Unknown ids are ignored.
func (s *ConversationStore) Load(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, conv := range s.conversations {
		if conv.ID == id {
			s.selectedID = id
			s.buffer = cloneMessages(conv.Messages)
			return
		}
	}
}

// Delete removes the conversation with the given id. When the selected
// conversation is deleted, the front conversation takes over the
// selection; deleting the last one starts a fresh conversation so the
// selection never dangles.
func (s *ConversationStore) Delete(id uuid.UUID) {
	s.mu.Lock()

	kept := s.conversations[:0]
	for _, conv := range s.conversations {
		if conv.ID != id {
			kept = append(kept, conv)
		}
	}
	s.conversations = kept

	if id == s.selectedID {
		if len(s.conversations) > 0 {
			front := s.conversations[0]
			s.selectedID = front.ID
			s.buffer = cloneMessages(front.Messages)
		} else {
			s.selectedID = uuid.New()
			s.buffer = nil
			s.upsertLocked()
		}
	}

	s.persistLocked()
	s.mu.Unlock()
}

// UpsertActive replaces the selected conversation's messages (inserting
// the conversation at the front if it is not in the list yet) and
// schedules a persistence write.
func (s *ConversationStore) UpsertActive(messages []model.Message) {
	s.mu.Lock()
	s.buffer = cloneMessages(messages)
	s.upsertLocked()
	s.persistLocked()
	s.mu.Unlock()
}

// SaveActive persists the current buffer into the selected conversation.
func (s *ConversationStore) SaveActive() {
	s.mu.Lock()
	s.upsertLocked()
	s.persistLocked()
	s.mu.Unlock()
}

// AppendToBuffer appends a message to the active buffer without
// persisting. Persistence happens when a turn settles (SaveActive).
func (s *ConversationStore) AppendToBuffer(msg model.Message) {
	s.mu.Lock()
	s.buffer = append(s.buffer, msg)
	s.mu.Unlock()
}

// =============================================================================
// ACCESSORS
// =============================================================================

// Buffer returns a copy of the active message buffer.
func (s *ConversationStore) Buffer() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneMessages(s.buffer)
}

// SelectedID returns the id of the selected conversation.
func (s *ConversationStore) SelectedID() uuid.UUID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedID
}

// Conversations returns a snapshot of the conversation list,
// front = most recently inserted.
func (s *ConversationStore) Conversations() []model.Conversation {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Conversation, len(s.conversations))
	for i, conv := range s.conversations {
		out[i] = conv.Clone()
	}
	return out
}

// Count returns the number of conversations.
func (s *ConversationStore) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conversations)
}

// Flush blocks until all scheduled persistence writes have completed.
func (s *ConversationStore) Flush() {
	s.queue.flush()
}

// Close flushes pending writes and stops the write worker.
func (s *ConversationStore) Close() {
	s.queue.close()
}

// =============================================================================
// LISTING
// =============================================================================

// Meta is lightweight conversation metadata for listings.
type Meta struct {
	ID           uuid.UUID
	Title        string
	MessageCount int
	LastActivity time.Time
	Selected     bool
}

// List returns display metadata for every conversation in list order.
func (s *ConversationStore) List() []Meta {
	s.mu.Lock()
	defer s.mu.Unlock()

	metas := make([]Meta, 0, len(s.conversations))
	for _, conv := range s.conversations {
		metas = append(metas, Meta{
			ID:           conv.ID,
			Title:        util.TruncateRunesNoEllipsis(conv.Title(), model.TitleRunes),
			MessageCount: conv.MessageCount(),
			LastActivity: conv.LastActivity(),
			Selected:     conv.ID == s.selectedID,
		})
	}
	return metas
}

// =============================================================================
// INTERNAL
// =============================================================================

// upsertLocked writes the buffer into the selected conversation,
// inserting at the front when absent. Caller holds the mutex.
func (s *ConversationStore) upsertLocked() {
	for i := range s.conversations {
		if s.conversations[i].ID == s.selectedID {
			s.conversations[i].Messages = cloneMessages(s.buffer)
			return
		}
	}
	conv := model.Conversation{
		ID:       s.selectedID,
		Messages: cloneMessages(s.buffer),
	}
	s.conversations = append([]model.Conversation{conv}, s.conversations...)
}

// persistLocked serializes the current list and schedules the write.
// Caller holds the mutex; the snapshot therefore reflects the state at
// the moment the write was requested.
func (s *ConversationStore) persistLocked() {
	data, err := json.Marshal(s.conversations)
	if err != nil {
		return
	}
	s.queue.enqueue(kvstore.KeyConversations, data)
}

func cloneMessages(msgs []model.Message) []model.Message {
	if msgs == nil {
		return nil
	}
	out := make([]model.Message, len(msgs))
	copy(out, msgs)
	return out
}
