package domain

type ProposalID string

type SessionStatus string

const (
	SessionStatusComplete  SessionStatus = "complete"
	SessionStatusCancelled SessionStatus = "cancelled"
	SessionStatusUnknown   SessionStatus = "unknown"
)

func ParseSessionStatus(raw string) SessionStatus {
	switch SessionStatus(raw) {
	case SessionStatusComplete:
		return SessionStatusComplete
	case SessionStatusCancelled:
		return SessionStatusCancelled
	default:
		return SessionStatusUnknown
	}
}

// WebSession carries the web credentials a trade session is opened with.
type WebSession struct {
	SessionID string
	Cookies   []string
}

func (w WebSession) Empty() bool {
	return w.SessionID == "" && len(w.Cookies) == 0
}

// TradeItemRecord is one item movement posted to the record-keeping service.
type TradeItemRecord struct {
	User    UserID
	TradeID string
	Item    Item
	Claimed bool
}
