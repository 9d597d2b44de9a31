package engine

import "errors"

// ErrInvalidLaneState signals a programming error in lane handling,
// such as assigning over an unresolved completion. Logged and
// contained to the lane, never surfaced to the player.
var ErrInvalidLaneState = errors.New("invalid lane state")
