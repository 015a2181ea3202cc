package service

import "errors"

var (
	// ErrNotFound means the referenced VIP or quest does not exist.
	ErrNotFound = errors.New("not found")

	// ErrLocked means the operation targeted a locked quest. Policy
	// violation, not transient: callers must not auto-retry.
	ErrLocked = errors.New("quest is locked")

	// ErrNotReady means evaluation was attempted before checklist generation.
	ErrNotReady = errors.New("checklist not generated yet")

	// ErrOracleUnavailable means the generation call failed or timed out.
	// No quest state was mutated; the same request can be retried safely.
	ErrOracleUnavailable = errors.New("oracle unavailable")

	// ErrAlreadyInitialized signals the idempotent no-op when a VIP's quest
	// sequence already exists.
	ErrAlreadyInitialized = errors.New("quests already initialized")
)
