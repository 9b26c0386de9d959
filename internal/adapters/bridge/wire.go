package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/swapbot/internal/domain"
)

// request is one outbound call line.
type request struct {
	ID   uint64 `json:"id"`
	Call string `json:"call"`
	Args any    `json:"args,omitempty"`
}

// inbound is any line written by the sidecar: a call result when Event is empty, an event otherwise.
type inbound struct {
	ID     uint64          `json:"id,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`

	Event   string        `json:"event,omitempty"`
	Session domain.UserID `json:"session,omitempty"`

	Message      string            `json:"message,omitempty"`
	Servers      []string          `json:"servers,omitempty"`
	Sentry       []byte            `json:"sentry,omitempty"`
	SessionID    string            `json:"sessionId,omitempty"`
	Cookies      []string          `json:"cookies,omitempty"`
	User         domain.UserID     `json:"user,omitempty"`
	Relationship string            `json:"relationship,omitempty"`
	Text         string            `json:"text,omitempty"`
	EntryType    string            `json:"entryType,omitempty"`
	Proposal     domain.ProposalID `json:"proposal,omitempty"`
	Count        int               `json:"count,omitempty"`
	Status       string            `json:"status,omitempty"`
}

// CallError is a failure reported by the sidecar for one call.
type CallError struct {
	Call    string
	Message string
}

func (e *CallError) Error() string {
	return fmt.Sprintf("%s: %s", e.Call, e.Message)
}

// LogOnDetails is sent with every logOn call.
type LogOnDetails struct {
	AccountName string   `json:"accountName,omitempty"`
	Password    string   `json:"password,omitempty"`
	Sentry      []byte   `json:"sentry,omitempty"`
	Servers     []string `json:"servers,omitempty"`
}

type userArgs struct {
	User domain.UserID `json:"user"`
}

type messageArgs struct {
	User domain.UserID `json:"user"`
	Text string        `json:"text"`
}

type personaArgs struct {
	State domain.PersonaState `json:"state"`
}

type gamesArgs struct {
	Games []string `json:"games"`
}

type respondArgs struct {
	Proposal domain.ProposalID `json:"proposal"`
	Accept   bool              `json:"accept"`
}

type openArgs struct {
	Session   domain.UserID `json:"session"`
	SessionID string        `json:"sessionId,omitempty"`
	Cookies   []string      `json:"cookies,omitempty"`
}

type sessionArgs struct {
	Session domain.UserID `json:"session"`
}

type chatArgs struct {
	Session domain.UserID `json:"session"`
	Text    string        `json:"text"`
}

type inventoryArgs struct {
	Session   domain.UserID `json:"session"`
	AppID     string        `json:"appId"`
	ContextID string        `json:"contextId"`
}

type itemArgs struct {
	Session domain.UserID `json:"session"`
	Item    domain.Item   `json:"item"`
}

func decodeEvent(line inbound) (domain.Event, error) {
	switch domain.EventKind(line.Event) {
	case domain.EventLoggedOn:
		return domain.LoggedOn{}, nil
	case domain.EventLoggedOff:
		return domain.LoggedOff{}, nil
	case domain.EventProtocolError:
		return domain.ProtocolError{Message: line.Message}, nil
	case domain.EventServersUpdated:
		return domain.ServersUpdated{Servers: line.Servers}, nil
	case domain.EventSentryUpdated:
		return domain.SentryUpdated{Blob: line.Sentry}, nil
	case domain.EventWebSessionEstablished:
		return domain.WebSessionEstablished{Session: domain.WebSession{SessionID: line.SessionID, Cookies: line.Cookies}}, nil
	case domain.EventRelationshipChanged:
		relationship := domain.Relationship(line.Relationship)
		if !relationship.Valid() {
			return nil, fmt.Errorf("unknown relationship %q", line.Relationship)
		}
		return domain.RelationshipChanged{User: line.User, Relationship: relationship}, nil
	case domain.EventFriendMessage:
		return domain.FriendMessage{User: line.User, Text: line.Text, EntryType: entryType(line.EntryType)}, nil
	case domain.EventTradeProposed:
		return domain.TradeProposed{ProposalID: line.Proposal, User: line.User}, nil
	case domain.EventSessionStarted:
		return domain.SessionStarted{User: line.User}, nil
	case domain.EventTradeOffersPending:
		return domain.TradeOffersPending{Count: line.Count}, nil
	default:
		return nil, fmt.Errorf("unknown event %q", line.Event)
	}
}

func decodeSessionEvent(line inbound) (domain.SessionEvent, error) {
	switch domain.SessionEventKind(line.Event) {
	case domain.SessionEventChat:
		return domain.SessionChat{Text: line.Text}, nil
	case domain.SessionEventReady:
		return domain.SessionReady{}, nil
	case domain.SessionEventEnd:
		return domain.SessionEnded{Status: domain.ParseSessionStatus(line.Status)}, nil
	default:
		return nil, fmt.Errorf("unknown session event %q", line.Event)
	}
}

func entryType(raw string) domain.ChatEntryType {
	switch domain.ChatEntryType(raw) {
	case domain.ChatEntryMessage:
		return domain.ChatEntryMessage
	case domain.ChatEntryTyping:
		return domain.ChatEntryTyping
	default:
		return domain.ChatEntryOther
	}
}
