// Kollabee Recommender - Product and Supplier Recommendations for Buyers
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/kollabee-recommender

package database

import (
	"context"
	"errors"
	"io"
	"strings"
)

// closeQuietly closes a resource, ignoring errors. Use only on paths that
// already return an error.
func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}

// isRetryable reports whether a failed query is worth retrying. Context
// cancellation and SQL errors are not; connection-level failures are.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	msg := strings.ToLower(err.Error())
	for _, transient := range transientErrors {
		if strings.Contains(msg, transient) {
			return true
		}
	}
	return false
}

var transientErrors = []string{
	"connection refused",
	"connection reset",
	"broken pipe",
	"bad connection",
	"database is closed",
	"database is locked",
	"too many clients",
	"timeout",
	"eof",
}
