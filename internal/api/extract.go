// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package api

import (
	"encoding/json"
	"strings"
)

// messageToken marks the start of the message value in loosely formed
// response bodies.
const messageToken = `"message": "`

// ExtractMessage pulls the message text out of a response body. A
// well-formed JSON object with a "message" field is decoded directly;
// otherwise the body is scanned for the literal message token, taking
// everything up to the next unescaped quote. Only the \" and \n escape
// sequences are interpreted on the scan path.
func ExtractMessage(body string) (string, error) {
	var payload struct {
		Message *string `json:"message"`
	}
	if err := json.Unmarshal([]byte(body), &payload); err == nil && payload.Message != nil {
		return *payload.Message, nil
	}

	start := strings.Index(body, messageToken)
	if start < 0 {
		return "", ErrMissingField
	}
	rest := body[start+len(messageToken):]

	end := -1
	for i := 0; i < len(rest); i++ {
		switch rest[i] {
		case '\\':
			i++ // skip the escaped byte
		case '"':
			end = i
		}
		if end >= 0 {
			break
		}
	}
	if end < 0 {
		return "", ErrMissingField
	}

	msg := rest[:end]
	msg = strings.ReplaceAll(msg, `\"`, `"`)
	msg = strings.ReplaceAll(msg, `\n`, "\n")
	return msg, nil
}
