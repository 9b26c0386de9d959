package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	recordsadapter "github.com/bnema/swapbot/internal/adapters/records"
	"github.com/bnema/swapbot/internal/domain"
	"github.com/bnema/swapbot/internal/ports"
	"github.com/spf13/cobra"
)

var errRecordsNotConfigured = errors.New("records.url is not configured")

func newRecordsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "records",
		Short: "Call the record-keeping service by hand",
	}

	post := func(use, short string, call func(*recordsadapter.HTTPSink, context.Context, domain.UserID) error) *cobra.Command {
		return &cobra.Command{
			Use:   use + " <user>",
			Short: short,
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				if app.records == nil {
					return errRecordsNotConfigured
				}
				if err := call(app.records, cmd.Context(), domain.UserID(args[0])); err != nil {
					return err
				}
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "recorded %s for %s\n", use, args[0])
				return err
			},
		}
	}

	cmd.AddCommand(
		post("added", "Record that a user was added as a friend", (*recordsadapter.HTTPSink).UserAdded),
		post("removed", "Record that a user was removed", (*recordsadapter.HTTPSink).UserRemoved),
		post("trade-accepted", "Record an accepted trade", (*recordsadapter.HTTPSink).TradeAccepted),
		post("trade-declined", "Record a declined trade", (*recordsadapter.HTTPSink).TradeDeclined),
		newRecordsGetCmd(app),
		newRecordsFriendsCmd(app),
		newRecordsDailyCmd(app),
	)

	return cmd
}

func newRecordsGetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <user>",
		Short: "Show the stored record of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.records == nil {
				return errRecordsNotConfigured
			}
			user, err := app.records.User(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}
			return writeJSON(cmd, user)
		},
	}
}

func newRecordsFriendsCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "friends",
		Short: "List the users the service considers friends",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.records == nil {
				return errRecordsNotConfigured
			}
			friends, err := app.records.Friends(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd, friends)
		},
	}
}

func newRecordsDailyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "daily <user>",
		Short: "Show today's trade totals of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.records == nil {
				return errRecordsNotConfigured
			}
			daily, err := app.records.DailyTrades(cmd.Context(), domain.UserID(args[0]))
			if err != nil {
				return err
			}
			if daily == nil {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "no trades today")
				return err
			}
			return writeJSON(cmd, daily)
		},
	}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// loggingRecordSink stands in for the record service when none is configured.
type loggingRecordSink struct {
	logger *slog.Logger
}

var _ ports.RecordSink = loggingRecordSink{}

func (s loggingRecordSink) UserAdded(_ context.Context, id domain.UserID) error {
	s.logger.Debug("record user added", "user", string(id))
	return nil
}

func (s loggingRecordSink) UserRemoved(_ context.Context, id domain.UserID) error {
	s.logger.Debug("record user removed", "user", string(id))
	return nil
}

func (s loggingRecordSink) TradeAccepted(_ context.Context, id domain.UserID) error {
	s.logger.Debug("record trade accepted", "user", string(id))
	return nil
}

func (s loggingRecordSink) TradeDeclined(_ context.Context, id domain.UserID) error {
	s.logger.Debug("record trade declined", "user", string(id))
	return nil
}

func (s loggingRecordSink) PostTradeItem(_ context.Context, record domain.TradeItemRecord) error {
	s.logger.Debug("record trade item", "user", string(record.User), "trade", record.TradeID, "item", record.Item.CompositeID())
	return nil
}
