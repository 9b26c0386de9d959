package domain

import "sync"

// TradingState is the process-wide trading state. The zero value is ready to use.
type TradingState struct {
	mu         sync.Mutex
	canTrade   bool
	paused     bool
	responding bool
}

type TradingSnapshot struct {
	CanTrade                  bool `json:"canTrade"`
	Paused                    bool `json:"paused"`
	RespondingToTradeRequests bool `json:"respondingToTradeRequests"`
}

func (s *TradingState) CanTrade() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canTrade
}

func (s *TradingState) SetCanTrade(v bool) {
	s.mu.Lock()
	s.canTrade = v
	s.mu.Unlock()
}

func (s *TradingState) Paused() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.paused
}

func (s *TradingState) SetPaused(v bool) {
	s.mu.Lock()
	s.paused = v
	s.mu.Unlock()
}

func (s *TradingState) RespondingToTradeRequests() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responding
}

// BeginOfferRun sets the in-flight guard. Unless forced it refuses while paused or while a run is
// already in flight.
func (s *TradingState) BeginOfferRun(force bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !force {
		if s.paused {
			return ErrPaused
		}
		if s.responding {
			return ErrOfferRunInFlight
		}
	}

	s.responding = true
	return nil
}

func (s *TradingState) EndOfferRun() {
	s.mu.Lock()
	s.responding = false
	s.mu.Unlock()
}

func (s *TradingState) Snapshot() TradingSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TradingSnapshot{
		CanTrade:                  s.canTrade,
		Paused:                    s.paused,
		RespondingToTradeRequests: s.responding,
	}
}
