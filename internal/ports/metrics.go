package ports

import "github.com/bnema/swapbot/internal/domain"

type Metrics interface {
	ProposalDecided(outcome string)
	SessionEnded(status domain.SessionStatus)
	ItemsRecorded(claimed bool, n int)
	ChatIgnored()
	OfferRunStarted()
}

type NopMetrics struct{}

func (NopMetrics) ProposalDecided(string)            {}
func (NopMetrics) SessionEnded(domain.SessionStatus) {}
func (NopMetrics) ItemsRecorded(bool, int)           {}
func (NopMetrics) ChatIgnored()                      {}
func (NopMetrics) OfferRunStarted()                  {}
