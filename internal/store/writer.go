// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package store owns conversation and settings state plus persistence.
package store

import (
	"sync"

	"github.com/jeranaias/memu-tui/internal/kvstore"
)

// writeQueue serializes persistence writes through a single background
// worker. Callers enqueue an already-serialized snapshot and return
// immediately; the blob written always reflects state at enqueue time.
// Write errors are swallowed: persistence failure degrades to in-memory
// operation, never to a user-visible error.
type writeQueue struct {
	jobs      chan writeJob
	wg        sync.WaitGroup
	closeOnce sync.Once
}

type writeJob struct {
	key  string
	data []byte
}

func newWriteQueue(kv *kvstore.Store) *writeQueue {
	q := &writeQueue{
		jobs: make(chan writeJob, 64),
	}
	go func() {
		for job := range q.jobs {
			_ = kv.Set(job.key, job.data)
			q.wg.Done()
		}
	}()
	return q
}

// enqueue schedules a write. Blocks only if the queue backlog is full.
func (q *writeQueue) enqueue(key string, data []byte) {
	q.wg.Add(1)
	q.jobs <- writeJob{key: key, data: data}
}

// flush blocks until every enqueued write has been applied.
func (q *writeQueue) flush() {
	q.wg.Wait()
}

// close drains the queue and stops the worker.
func (q *writeQueue) close() {
	q.closeOnce.Do(func() {
		q.flush()
		close(q.jobs)
	})
}
