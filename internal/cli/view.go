package cli

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/okian/lineup/internal/domain/formation"
	"github.com/okian/lineup/internal/domain/lineup"
	"github.com/okian/lineup/internal/domain/rating"
	"github.com/okian/lineup/internal/domain/roster"
)

const (
	nameWidth = 18
	roleWidth = 6
	cellWidth = 10
	maxStars  = 5
)

// view renders command output. Colours degrade to plain text when out is
// not a terminal.
type view struct {
	out    io.Writer
	title  lipgloss.Style
	header lipgloss.Style
	muted  lipgloss.Style
	tiers  [tierRest + 1]lipgloss.Style
}

func newView(out io.Writer) *view {
	r := lipgloss.NewRenderer(out)
	return &view{
		out:    out,
		title:  r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF")),
		header: r.NewStyle().Bold(true),
		muted:  r.NewStyle().Foreground(lipgloss.Color("#888888")),
		tiers: [...]lipgloss.Style{
			tierFirst:  r.NewStyle().Foreground(lipgloss.Color("#3FB950")),
			tierSecond: r.NewStyle().Foreground(lipgloss.Color("#5B8DEF")),
			tierThird:  r.NewStyle().Foreground(lipgloss.Color("#D29922")),
			tierRest:   r.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		},
	}
}

func (v *view) linef(format string, args ...any) {
	_, _ = fmt.Fprintf(v.out, format+"\n", args...)
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}

// stars draws a ceiling rating as five stars, rounding half to even.
func stars(r rating.Rating) string {
	n := int(math.RoundToEven(r.Max))
	n = max(0, min(maxStars, n))
	return strings.Repeat("★", n) + strings.Repeat("☆", maxStars-n)
}

func (v *view) players(team string, players []roster.Player) {
	v.linef("%s", v.title.Render(team))
	if len(players) == 0 {
		v.linef("%s", v.muted.Render("no players yet"))
		return
	}
	v.linef("%s", v.header.Render(pad("PLAYER", nameWidth)+"MEAN"))
	for _, p := range players {
		v.linef("%s%.1f", pad(p.Name, nameWidth), p.MeanRating())
	}
}

func (v *view) sheet(p roster.Player) {
	v.linef("%s", v.title.Render(p.Name))
	v.linef("%s", v.header.Render(pad("ROLE", roleWidth)+pad("RATING", cellWidth)+pad("STARS", cellWidth)+"VOTES"))
	for _, line := range p.Sheet() {
		row := pad(line.Role.String(), roleWidth) + pad(line.Display, cellWidth) + pad(stars(line.Rating), cellWidth) + fmt.Sprint(line.Votes)
		if !line.Rating.Rated() {
			row = v.muted.Render(row)
		}
		v.linef("%s", row)
	}
}

func (v *view) votes(votes map[rating.Role]rating.Vote) {
	if len(votes) == 0 {
		v.linef("%s", v.muted.Render("no votes"))
		return
	}
	for _, role := range rating.Roles() {
		vote, ok := votes[role]
		if !ok {
			continue
		}
		v.linef("%s%s", pad(role.String(), roleWidth), rating.Rating{Min: vote.Min, Max: vote.Max})
	}
}

func (v *view) standings(role string, standings []roster.Standing) {
	v.linef("%s", v.title.Render("Top "+role))
	if len(standings) == 0 {
		v.linef("%s", v.muted.Render("nobody is rated here yet"))
		return
	}
	for _, s := range standings {
		style := v.tiers[tierOf(s.Rank, roster.CompareCell{Min: s.Rating.Min, Max: s.Rating.Max})]
		v.linef("%s", style.Render(fmt.Sprintf("#%-3d%s%s", s.Rank, pad(s.Name, nameWidth), s.Rating)))
	}
}

func (v *view) gaps(gaps []roster.Gap) {
	if len(gaps) == 0 {
		v.linef("%s", v.tiers[tierFirst].Render("every role is covered"))
		return
	}
	v.linef("%s", v.title.Render("Coverage gaps"))
	for _, g := range gaps {
		if g.Rated() == 0 {
			v.linef("%s%s", pad(g.Role.String(), roleWidth), v.tiers[tierRest].Render("no rated players"))
			continue
		}
		v.linef("%smean %.1f from %d players", pad(g.Role.String(), roleWidth), g.Mean, g.Rated())
	}
}

func (v *view) compare(rows []roster.CompareRow) {
	if len(rows) == 0 || len(rows[0].Cells) == 0 {
		v.linef("%s", v.muted.Render("no known players to compare"))
		return
	}
	head := pad("ROLE", roleWidth)
	for _, c := range rows[0].Cells {
		head += pad(c.Player, nameWidth)
	}
	v.linef("%s", v.header.Render(head))

	for _, row := range rows {
		ranks := denseRanks(row.Cells)
		var b strings.Builder
		b.WriteString(pad(row.Role.String(), roleWidth))
		for i, c := range row.Cells {
			b.WriteString(v.tiers[tierOf(ranks[i], c)].Render(pad(c.Display, nameWidth)))
		}
		v.linef("%s", b.String())
	}
}

func (v *view) lineup(res lineup.Result) {
	v.linef("%s", v.title.Render(fmt.Sprintf("%s (%s)", res.Formation, res.Strategy)))
	for _, a := range res.Slots {
		if a.Player == lineup.Unfilled {
			v.linef("%s%s", pad(a.Slot, roleWidth), v.muted.Render(lineup.Unfilled))
			continue
		}
		v.linef("%s%s%.1f", pad(a.Slot, roleWidth), pad(a.Player, nameWidth), a.Score)
	}
	v.linef("%s", v.muted.Render(fmt.Sprintf("filled %d/%d, side swaps %d", res.FilledCount(), len(res.Slots), res.SideSwaps)))
}

func (v *view) formations(schemas []formation.Schema) {
	for _, s := range schemas {
		names := make([]string, 0, len(s.Slots))
		for _, sl := range s.Slots {
			names = append(names, sl.Name)
		}
		v.linef("%s%s", pad(s.Name, nameWidth), strings.Join(names, " "))
	}
}
