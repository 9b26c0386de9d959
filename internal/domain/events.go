package domain

type EventKind string

const (
	EventLoggedOn              EventKind = "logged_on"
	EventLoggedOff             EventKind = "logged_off"
	EventProtocolError         EventKind = "error"
	EventServersUpdated        EventKind = "servers"
	EventSentryUpdated         EventKind = "sentry"
	EventWebSessionEstablished EventKind = "web_session"
	EventRelationshipChanged   EventKind = "friend"
	EventFriendMessage         EventKind = "friend_msg"
	EventTradeProposed         EventKind = "trade_proposed"
	EventSessionStarted        EventKind = "session_start"
	EventTradeOffersPending    EventKind = "trade_offers"
)

// Event is an inbound protocol event. The set of implementations is closed to this package.
type Event interface {
	Kind() EventKind
	isEvent()
}

type LoggedOn struct{}

type LoggedOff struct{}

type ProtocolError struct {
	Message string
}

type ServersUpdated struct {
	Servers []string
}

type SentryUpdated struct {
	Blob []byte
}

type WebSessionEstablished struct {
	Session WebSession
}

type RelationshipChanged struct {
	User         UserID
	Relationship Relationship
}

type ChatEntryType string

const (
	ChatEntryMessage ChatEntryType = "chat_msg"
	ChatEntryTyping  ChatEntryType = "typing"
	ChatEntryOther   ChatEntryType = "other"
)

type FriendMessage struct {
	User      UserID
	Text      string
	EntryType ChatEntryType
}

type TradeProposed struct {
	ProposalID ProposalID
	User       UserID
}

type SessionStarted struct {
	User UserID
}

type TradeOffersPending struct {
	Count int
}

func (LoggedOn) Kind() EventKind              { return EventLoggedOn }
func (LoggedOff) Kind() EventKind             { return EventLoggedOff }
func (ProtocolError) Kind() EventKind         { return EventProtocolError }
func (ServersUpdated) Kind() EventKind        { return EventServersUpdated }
func (SentryUpdated) Kind() EventKind         { return EventSentryUpdated }
func (WebSessionEstablished) Kind() EventKind { return EventWebSessionEstablished }
func (RelationshipChanged) Kind() EventKind   { return EventRelationshipChanged }
func (FriendMessage) Kind() EventKind         { return EventFriendMessage }
func (TradeProposed) Kind() EventKind         { return EventTradeProposed }
func (SessionStarted) Kind() EventKind        { return EventSessionStarted }
func (TradeOffersPending) Kind() EventKind    { return EventTradeOffersPending }

func (LoggedOn) isEvent()              {}
func (LoggedOff) isEvent()             {}
func (ProtocolError) isEvent()         {}
func (ServersUpdated) isEvent()        {}
func (SentryUpdated) isEvent()         {}
func (WebSessionEstablished) isEvent() {}
func (RelationshipChanged) isEvent()   {}
func (FriendMessage) isEvent()         {}
func (TradeProposed) isEvent()         {}
func (SessionStarted) isEvent()        {}
func (TradeOffersPending) isEvent()    {}

type SessionEventKind string

const (
	SessionEventChat  SessionEventKind = "chat"
	SessionEventReady SessionEventKind = "ready"
	SessionEventEnd   SessionEventKind = "end"
)

// SessionEvent is emitted by an open trade session.
type SessionEvent interface {
	SessionKind() SessionEventKind
	isSessionEvent()
}

type SessionChat struct {
	Text string
}

type SessionReady struct{}

type SessionEnded struct {
	Status SessionStatus
}

func (SessionChat) SessionKind() SessionEventKind  { return SessionEventChat }
func (SessionReady) SessionKind() SessionEventKind { return SessionEventReady }
func (SessionEnded) SessionKind() SessionEventKind { return SessionEventEnd }

func (SessionChat) isSessionEvent()  {}
func (SessionReady) isSessionEvent() {}
func (SessionEnded) isSessionEvent() {}
