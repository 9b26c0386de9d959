package domain

import "fmt"

type Item struct {
	AppID     string `json:"appid"`
	ContextID string `json:"contextid"`
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
}

// CompositeID returns the appid_contextid_id form used by inventory links and the record service.
func (i Item) CompositeID() string {
	return fmt.Sprintf("%s_%s_%s", i.AppID, i.ContextID, i.ID)
}
