package status

import (
	"fmt"

	"github.com/bnema/swapbot/internal/application"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	// ConfigFile is shown in the header when set.
	ConfigFile string
}

// Render lays the report out as styled text. Colors are dropped when the output is not a terminal.
func Render(report application.StatusReport, opts RenderOptions) string {
	s := newStyles()
	header := fmt.Sprintf("profile: %s  owner: %s  environment: %s", orNone(report.ProfileID), orNone(report.OwnerID), report.Environment)
	lines := []string{
		s.title.Render("swapbot status"),
		s.header.Render(header),
	}
	if opts.ConfigFile != "" {
		lines = append(lines, s.header.Render("config: "+opts.ConfigFile))
	}

	lines = append(lines, s.section.Render(fmt.Sprintf("State (%s)", report.StateBackend)))
	lines = append(lines, field(s, "location", s.value.Render(orNone(report.StateLocation))))
	lines = append(lines, field(s, "servers", countOrMissing(s, len(report.Servers), "known")))
	lines = append(lines, field(s, "sentry", presence(s, report.HasSentry)))
	lines = append(lines, field(s, "web session", countOrMissing(s, report.Cookies, "cookies")))

	lines = append(lines, s.section.Render("Policy"))
	lines = append(lines, field(s, "blacklist", s.value.Render(fmt.Sprintf("%d", report.Blacklisted))))
	lines = append(lines, field(s, "whitelist", s.value.Render(fmt.Sprintf("%d", report.Whitelisted))))

	lines = append(lines, s.section.Render("Services"))
	lines = append(lines, field(s, "records", configured(s, report.RecordsURL, s.warning.Render("not configured"))))
	lines = append(lines, field(s, "metrics", configured(s, report.MetricsListen, s.empty.Render("disabled"))))

	lines = append(lines, s.section.Render("Bot"))
	lines = append(lines, liveLines(report.Live, s)...)

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func liveLines(live *application.LiveStatus, s styles) []string {
	if live == nil {
		return []string{s.empty.Render("not reachable")}
	}

	return []string{
		field(s, "can trade", yesNo(s, live.CanTrade)),
		field(s, "paused", yesNo(s, live.Paused)),
		field(s, "accepting offers", yesNo(s, live.RespondingToTradeRequests)),
		field(s, "live sessions", s.value.Render(fmt.Sprintf("%d", live.LiveSessions))),
	}
}

func field(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, s.key.Render(fmt.Sprintf("  %-17s", key+":")), value)
}

func countOrMissing(s styles, n int, unit string) string {
	if n == 0 {
		return s.warning.Render("none")
	}
	return s.value.Render(fmt.Sprintf("%d %s", n, unit))
}

func presence(s styles, ok bool) string {
	if ok {
		return s.good.Render("stored")
	}
	return s.warning.Render("missing")
}

func configured(s styles, value, fallback string) string {
	if value == "" {
		return fallback
	}
	return s.value.Render(value)
}

func yesNo(s styles, v bool) string {
	if v {
		return s.good.Render("yes")
	}
	return s.value.Render("no")
}

func orNone(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
