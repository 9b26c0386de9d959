package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

// InventoryLinks knows the shape of links into the bot's own inventory page.
type InventoryLinks struct {
	base string
}

func NewInventoryLinks(communityURL, profileID string) InventoryLinks {
	return InventoryLinks{base: strings.TrimRight(communityURL, "/") + "/id/" + profileID + "/inventory"}
}

// PageURL is the bare inventory page, which users paste when they pick "Copy Page URL".
func (l InventoryLinks) PageURL() string {
	return l.base + "/"
}

func (l InventoryLinks) IsOwnInventory(text string) bool {
	return strings.HasPrefix(text, l.base)
}

func (l InventoryLinks) IsBarePage(text string) bool {
	return text == l.PageURL()
}

// ParseItemLink splits an item link into appID, contextID and item instance ID.
func (l InventoryLinks) ParseItemLink(text string) (appID, contextID, itemID string, ok bool) {
	var details string
	switch {
	case strings.HasPrefix(text, l.base+"/#"):
		details = strings.TrimPrefix(text, l.base+"/#")
	case strings.HasPrefix(text, l.base+"#"):
		details = strings.TrimPrefix(text, l.base+"#")
	case strings.HasPrefix(text, l.base+"/"):
		details = strings.TrimPrefix(text, l.base+"/")
	default:
		return "", "", "", false
	}

	parts := strings.Split(details, "_")
	if len(parts) != 3 {
		return "", "", "", false
	}

	return parts[0], parts[1], parts[2], true
}

// Resolver turns a pasted item link into an item currently present in the live inventory.
type Resolver struct {
	links  InventoryLinks
	logger *slog.Logger
}

func NewResolver(links InventoryLinks, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Resolver{links: links, logger: logger}
}

func (r *Resolver) Resolve(ctx context.Context, session ports.TradeSession, text string) (domain.Item, bool) {
	appID, contextID, itemID, ok := r.links.ParseItemLink(text)
	if !ok {
		return domain.Item{}, false
	}
	r.logger.Debug("parsed item link", "app", appID, "context", contextID, "item", itemID)

	items, err := session.LoadInventory(ctx, appID, contextID)
	if err != nil {
		if !errors.Is(err, domain.ErrNoInventory) {
			r.logger.Error("load inventory failed", "app", appID, "context", contextID, "err", err)
		}
		return domain.Item{}, false
	}

	for _, item := range items {
		if item.ID == itemID {
			return item, true
		}
	}

	return domain.Item{}, false
}
