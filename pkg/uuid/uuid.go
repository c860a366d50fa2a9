// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides time-ordered unique identifiers.

Version 7 values sort by creation time (millisecond precision), which keeps
request IDs in log streams roughly chronological.
*/
package uuid

import "github.com/google/uuid"

// NewString returns a UUIDv7 string.
//
// If the v7 generator fails it falls back to a random v4 value, so callers on
// the request path never have to handle an error.
func NewString() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
