package domain

type Direction string

const (
	DirectionReceived Direction = "Received"
	DirectionGiven    Direction = "Given"
)

// HistoryGroup is one rendered trade-history entry.
type HistoryGroup struct {
	Date     string
	Time     string
	User     string
	Received []string
	Given    []string
}

type HistoryPage struct {
	Groups  []HistoryGroup
	HasNext bool
}

type HistoryRecord struct {
	TradeID   string
	Date      string
	Time      string
	User      string
	Direction Direction
	Item      string
}
