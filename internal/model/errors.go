package model

import "errors"

var ErrNoRecord = errors.New("no record")
var ErrAlreadyExists = errors.New("entity already exists")

// ErrInvalidTime marks a malformed date or clock-time value on a single item.
// Batch operations skip the item and continue.
var ErrInvalidTime = errors.New("invalid date or time")

// ErrRemoteUnavailable marks a calendar-provider failure that survived the
// retry budget. It aborts the remainder of the current sync pass.
var ErrRemoteUnavailable = errors.New("remote calendar unavailable")

// ErrSyncInProgress is returned when a reconciliation for the same owner is
// already running.
var ErrSyncInProgress = errors.New("sync already in progress")
