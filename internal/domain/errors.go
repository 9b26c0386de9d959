package domain

import "errors"

var (
	ErrNoInventory        = errors.New("inventory unavailable")
	ErrItemRejected       = errors.New("item rejected by trade session")
	ErrSessionClosed      = errors.New("trade session closed")
	ErrBridgeClosed       = errors.New("protocol bridge closed")
	ErrPaused             = errors.New("trading is paused")
	ErrOfferRunInFlight   = errors.New("offer acceptance already running")
	ErrStateNotFound      = errors.New("state not found")
	ErrUnsupportedCommand = errors.New("unrecognized command")
)
