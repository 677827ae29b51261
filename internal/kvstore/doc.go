// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package kvstore is the byte-blob persistence layer.
//
// State persists as opaque blobs under well-known keys in a single
// SQLite table, one row per key. Callers own serialization; this
// package only moves bytes. The database lives at ~/.memu/memu.db by
// default and is created on first open.
package kvstore
