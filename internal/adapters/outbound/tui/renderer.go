package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
	info    = lipgloss.Color("#8B949E") // soft blue-gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	elementColors = [domain.NumElements]lipgloss.Color{
		domain.Wood:  lipgloss.Color("#22C55E"),
		domain.Fire:  lipgloss.Color("#EF4444"),
		domain.Earth: lipgloss.Color("#D97706"),
		domain.Metal: lipgloss.Color("#E8E6E3"),
		domain.Water: lipgloss.Color("#3B82F6"),
	}

	elementHanzi = [domain.NumElements]string{"木", "火", "土", "金", "水"}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnTagStyle  = lipgloss.NewStyle().Foreground(warning).Bold(true)
	infoTagStyle  = lipgloss.NewStyle().Foreground(info)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderResult formats a single chart's scores and ledger for the terminal.
// With explain set, every rule that moved an element is listed under it.
func RenderResult(res *domain.ScoringResult, explain bool) string {
	var b strings.Builder

	// ── Header ──
	title := headerStyle.Render("wuxing")
	subtitle := dimStyle.Render("Five-Element Strength")
	chart := titleStyle.Render(res.Pillars.String())
	season := dimStyle.Render("season: " + res.Season.String())
	b.WriteString(boxStyle.Render(title + "\n" + subtitle + "\n\n" + chart + "\n" + season))
	b.WriteString("\n\n")

	// ── Scores ──
	pct := res.Percentages()
	for _, e := range domain.Elements {
		renderElement(&b, e, res.Scores[e], pct[e], contains(res.Exempt, e))
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Ledger ──
	b.WriteString("  " + titleStyle.Render("Ledger") + "\n\n")
	renderLedgerHeader(&b)
	for _, e := range domain.Elements {
		renderLedgerRow(&b, e, res.Ledger[e])
	}
	fmt.Fprintf(&b, "\n  %s\n",
		dimStyle.Render(fmt.Sprintf("corrected min %.2f  max %.2f  avg %.2f", res.Stats.Min, res.Stats.Max, res.Stats.Avg)))

	// ── Corrections ──
	var corrections []string
	for _, e := range domain.Elements {
		for _, c := range res.Ledger[e].Corrections {
			corrections = append(corrections, fmt.Sprintf("%-6s ×%.1f  %s", e, c.Factor, c.Reason))
		}
	}
	if len(corrections) > 0 {
		b.WriteString("\n  " + titleStyle.Render("Corrections") + "\n\n")
		for _, c := range corrections {
			b.WriteString("    " + warnTagStyle.Render("▾") + " " + dimStyle.Render(c) + "\n")
		}
	}

	if explain {
		b.WriteString("\n  " + titleStyle.Render("Rules applied") + "\n")
		for _, e := range domain.Elements {
			renderNotes(&b, e, res.Ledger[e].Notes)
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  strongest %s  weakest %s\n",
		elementLabel(res.Strongest()), elementLabel(res.Weakest()))
	b.WriteString("\n")
	return b.String()
}

func renderElement(b *strings.Builder, e domain.Element, score, pct int, exempt bool) {
	scoreText := lipgloss.NewStyle().Bold(true).Foreground(scoreColor(score)).Render(fmt.Sprintf("%2d", score))
	bar := coloredBar(score, 30)
	share := dimStyle.Render(fmt.Sprintf("%3d%%", pct))
	line := fmt.Sprintf("  %s %s  %s %s", elementLabel(e), bar, scoreText, share)
	if exempt {
		line += "  " + infoTagStyle.Render("exempt")
	}
	b.WriteString(line + "\n")
}

var ledgerColumns = []string{"basic", "rel", "comb", "conf", "trans", "season", "total", "corr"}

func renderLedgerHeader(b *strings.Builder) {
	var cols []string
	for _, c := range ledgerColumns {
		cols = append(cols, fmt.Sprintf("%7s", c))
	}
	fmt.Fprintf(b, "    %s%s\n", padRight("", 9), dimStyle.Render(strings.Join(cols, "")))
}

func renderLedgerRow(b *strings.Builder, e domain.Element, l domain.ElementLedger) {
	vals := []float64{l.Basic, l.Relational, l.Combination, l.Conflict, l.Transparency, l.Seasonal, l.Total, l.Corrected}
	var cells []string
	for _, v := range vals {
		cells = append(cells, signed(v))
	}
	fmt.Fprintf(b, "    %s%s\n", padRight(e.String(), 9), strings.Join(cells, ""))
}

func renderNotes(b *strings.Builder, e domain.Element, notes []domain.LedgerNote) {
	if len(notes) == 0 {
		return
	}
	b.WriteString("\n    " + elementLabel(e) + "\n")
	for _, n := range notes {
		icon := passStyle.Render("+")
		if n.Delta < 0 {
			icon = failStyle.Render("−")
		}
		fmt.Fprintf(b, "      %s %s %s  %s\n",
			icon,
			dimStyle.Render(padRight(string(n.Stage), 13)),
			fmt.Sprintf("%7.2f", n.Delta),
			faintStyle.Render(n.Rule))
	}
}

// RenderReport formats a multi-chart project report as a compact table.
func RenderReport(report *domain.ProjectReport) string {
	var b strings.Builder

	title := headerStyle.Render("wuxing")
	subtitle := dimStyle.Render(fmt.Sprintf("%d charts", len(report.Charts)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	var head []string
	for _, e := range domain.Elements {
		head = append(head, fmt.Sprintf("%6s", e))
	}
	fmt.Fprintf(&b, "  %s %s  %s\n", padRight("", 16), dimStyle.Render(strings.Join(head, "")), dimStyle.Render("season"))

	for _, cr := range report.Charts {
		var cells []string
		for _, e := range domain.Elements {
			s := cr.Result.Scores[e]
			cells = append(cells, lipgloss.NewStyle().Foreground(scoreColor(s)).Render(fmt.Sprintf("%6d", s)))
		}
		fmt.Fprintf(&b, "  %s %s  %s\n",
			titleStyle.Render(padRight(truncate(cr.Name, 16), 16)),
			strings.Join(cells, ""),
			dimStyle.Render(cr.Result.Season.String()))
		fmt.Fprintf(&b, "  %s %s\n", padRight("", 16), faintStyle.Render(cr.Result.Pillars.String()))
	}

	b.WriteString("\n  " + separatorLine + "\n\n")
	if report.Passed() {
		b.WriteString("  " + passStyle.Render("All minimum scores met.") + "\n")
	} else {
		b.WriteString("  " + failStyle.Render(fmt.Sprintf("%d minimum scores not met", len(report.Failures))) + "\n\n")
		for _, f := range report.Failures {
			b.WriteString("    " + failStyle.Render("●") + " " + dimStyle.Render(f) + "\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderRules lists the combination and conflict rule tables.
func RenderRules(combos []domain.CombinationRule, conflicts []domain.ConflictRule) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Combinations") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, r := range combos {
		fmt.Fprintf(&b, "    %s %s → %s  %s\n",
			dimStyle.Render(padRight(string(r.Kind), 14)),
			padRight(branchList(r.Branches), 8),
			elementLabel(r.Result),
			passStyle.Render(fmt.Sprintf("+%g", r.Bonus)))
	}

	b.WriteString("\n  " + titleStyle.Render("Conflicts") + "\n")
	b.WriteString("  " + separatorLine + "\n")
	for _, r := range conflicts {
		effect := failStyle.Render(fmt.Sprintf("−%g", r.Penalty))
		if len(r.Targets) > 0 {
			var parts []string
			for _, tg := range r.Targets {
				parts = append(parts, fmt.Sprintf("%s %s %g", tg.Branch, tg.Element, tg.Magnitude))
			}
			effect = failStyle.Render(strings.Join(parts, ", "))
		}
		fmt.Fprintf(&b, "    %s %s  %s\n",
			dimStyle.Render(padRight(string(r.Kind), 14)),
			padRight(branchList(r.Members), 8),
			effect)
	}
	b.WriteString("\n")
	return b.String()
}

func elementLabel(e domain.Element) string {
	label := elementHanzi[e] + " " + padRight(e.String(), 6)
	return lipgloss.NewStyle().Bold(true).Foreground(elementColors[e]).Render(label)
}

func branchList(bs []domain.Branch) string {
	var s strings.Builder
	for _, br := range bs {
		s.WriteString(br.String())
	}
	return s.String()
}

func signed(v float64) string {
	if v == 0 {
		return faintStyle.Render(fmt.Sprintf("%7s", "·"))
	}
	return fmt.Sprintf("%7.2f", v)
}

// coloredBar draws score on the 1..95 scale as a bar of width cells.
func coloredBar(score, width int) string {
	filled := max(0, min(score*width/95, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 70:
		return success
	case score >= 45:
		return lipgloss.Color("#A3E635") // lime
	case score >= 20:
		return warning
	default:
		return danger
	}
}

// padRight pads by rune count so Hanzi labels line up with ASCII ones.
func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

func contains(es []domain.Element, e domain.Element) bool {
	for _, x := range es {
		if x == e {
			return true
		}
	}
	return false
}
