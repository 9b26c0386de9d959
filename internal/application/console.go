package application

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/logging"
	"github.com/bnema/swapbot/internal/ports"
)

type CommandKind string

const (
	CommandPause      CommandKind = "pause"
	CommandUnpause    CommandKind = "unpause"
	CommandExport     CommandKind = "export"
	CommandExportAnon CommandKind = "export anon"
	CommandOffers     CommandKind = "offers"
	CommandUnfriend   CommandKind = "unfriend"
	CommandFriend     CommandKind = "friend"
	CommandGame       CommandKind = "game"
	CommandUnknown    CommandKind = ""
)

const gamePrefix = "game "

type Command struct {
	Kind CommandKind
	Arg  string
}

func ParseCommand(text string) Command {
	if strings.HasPrefix(text, gamePrefix) {
		return Command{Kind: CommandGame, Arg: strings.TrimPrefix(text, gamePrefix)}
	}

	switch kind := CommandKind(text); kind {
	case CommandPause, CommandUnpause, CommandExport, CommandExportAnon, CommandOffers, CommandUnfriend, CommandFriend:
		return Command{Kind: kind}
	default:
		return Command{Kind: CommandUnknown, Arg: text}
	}
}

// Console executes chat commands sent by the owner. Chat from anyone else gets no reply.
type Console struct {
	client   ports.Client
	policy   domain.Policy
	state    *domain.TradingState
	friends  *FriendManager
	poller   *OfferPoller
	exporter *HistoryExporter
	messages Messages
	logger   *slog.Logger

	wg sync.WaitGroup
}

func NewConsole(client ports.Client, policy domain.Policy, state *domain.TradingState, friends *FriendManager, poller *OfferPoller, exporter *HistoryExporter, messages Messages, logger *slog.Logger) *Console {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Console{
		client:   client,
		policy:   policy,
		state:    state,
		friends:  friends,
		poller:   poller,
		exporter: exporter,
		messages: messages,
		logger:   logger,
	}
}

func (c *Console) HandleMessage(ctx context.Context, msg domain.FriendMessage) error {
	c.logger.Info("friend message", "user", string(msg.User), "entry", string(msg.EntryType), "text", msg.Text)
	if msg.EntryType != domain.ChatEntryMessage || !c.policy.IsOwner(msg.User) {
		return nil
	}

	return c.Execute(ctx, ParseCommand(msg.Text))
}

func (c *Console) Execute(ctx context.Context, cmd Command) error {
	switch cmd.Kind {
	case CommandPause:
		c.state.SetPaused(true)
		c.logger.Info("paused")
		return c.client.SetPersonaState(ctx, domain.PersonaSnooze)
	case CommandUnpause:
		c.state.SetPaused(false)
		c.logger.Info("unpaused")
		return c.client.SetPersonaState(ctx, domain.PersonaLookingToTrade)
	case CommandExport, CommandExportAnon:
		c.background(ctx, func(ctx context.Context) {
			if _, err := c.exporter.Export(ctx, cmd.Kind == CommandExportAnon); err != nil {
				c.logger.Error("history export failed", "err", err)
			}
		})
		return nil
	case CommandOffers:
		_, err := c.poller.AcceptAll(ctx, true)
		return err
	case CommandUnfriend:
		_, err := c.friends.RemoveAll(ctx)
		return err
	case CommandFriend:
		_, err := c.friends.AddPending(ctx)
		return err
	case CommandGame:
		return c.client.SetGamesPlayed(ctx, []string{cmd.Arg})
	case CommandUnknown:
		return c.client.SendMessage(ctx, c.policy.Owner, c.messages.UnrecognizedCommand)
	default:
		return domain.ErrUnsupportedCommand
	}
}

// Wait blocks until background commands have finished.
func (c *Console) Wait() {
	c.wg.Wait()
}

func (c *Console) background(ctx context.Context, fn func(ctx context.Context)) {
	ctx = context.WithoutCancel(ctx)
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		fn(ctx)
	}()
}
