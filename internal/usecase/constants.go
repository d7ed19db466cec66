package usecase

import "time"

const (
	// DefaultTransactionTimeout bounds posting transactions so a stuck
	// client cannot hold an entry row lock indefinitely.
	DefaultTransactionTimeout = 10 * time.Second

	// ReversalReferencePrefix marks the reference of auto-generated mirror
	// entries.
	ReversalReferencePrefix = "REV:"
)
