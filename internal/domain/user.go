package domain

import "slices"

// UserID is the opaque numeric identity of a counterparty, kept as its decimal string form.
type UserID string

type Relationship string

const (
	RelationshipNone             Relationship = "none"
	RelationshipPendingInvitee   Relationship = "pending_invitee"
	RelationshipPendingRecipient Relationship = "pending_recipient"
	RelationshipFriend           Relationship = "friend"
)

func (r Relationship) Valid() bool {
	switch r {
	case RelationshipNone, RelationshipPendingInvitee, RelationshipPendingRecipient, RelationshipFriend:
		return true
	default:
		return false
	}
}

type PersonaState string

const (
	PersonaOnline         PersonaState = "online"
	PersonaBusy           PersonaState = "busy"
	PersonaSnooze         PersonaState = "snooze"
	PersonaLookingToTrade PersonaState = "looking_to_trade"
)

// Policy is the static identity policy loaded from configuration.
type Policy struct {
	Owner     UserID
	Blacklist []UserID
	Whitelist []UserID
}

func (p Policy) IsOwner(id UserID) bool {
	return p.Owner != "" && id == p.Owner
}

func (p Policy) IsBlacklisted(id UserID) bool {
	return slices.Contains(p.Blacklist, id)
}

func (p Policy) IsWhitelisted(id UserID) bool {
	return slices.Contains(p.Whitelist, id)
}

// Protected reports whether id is exempt from friend removal.
func (p Policy) Protected(id UserID) bool {
	return p.IsOwner(id) || p.IsWhitelisted(id)
}
