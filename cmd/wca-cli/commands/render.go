package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"wca-userinfo/lib/wca"

	"github.com/jedib0t/go-pretty/v6/table"
)

func newTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func printProfile(out io.Writer, profile wca.Profile, event string, asJson bool) error {
	if event != "" {
		matched, err := matchEvent(profile.Events, event)
		if err != nil {
			return err
		}
		profile.Events = []wca.Event{matched}
	}

	if asJson {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(profile)
	}

	renderSummary(out, profile)
	if len(profile.Events) > 0 {
		renderEvents(out, profile.Events)
	}
	return nil
}

func renderSummary(out io.Writer, profile wca.Profile) {
	gender := "-"
	if profile.Gender != nil {
		gender = profile.Gender.String()
	}

	t := newTable(out)
	t.AppendRows([]table.Row{
		{"WCA ID", profile.WcaID},
		{"Country", profile.Country},
		{"Gender", gender},
		{"Competitions", profile.Competitions},
		{"Completed solves", profile.CompletedSolves},
	})
	t.Render()
}

func renderEvents(out io.Writer, events []wca.Event) {
	t := newTable(out)
	t.AppendHeader(table.Row{
		"Event",
		"NR", "CR", "WR", "Single",
		"Average", "WR", "CR", "NR",
	})
	for _, e := range events {
		t.AppendRow(table.Row{
			e.Name,
			optionalRank(e.Single.National),
			optionalRank(e.Single.Continental),
			optionalRank(e.Single.World),
			optionalTime(e.Single.Time),
			optionalTime(e.Average.Time),
			optionalRank(e.Average.World),
			optionalRank(e.Average.Continental),
			optionalRank(e.Average.National),
		})
	}
	t.Render()
}

func optionalRank(rank *uint32) string {
	if rank == nil {
		return "-"
	}
	return fmt.Sprint(*rank)
}

func optionalTime(time *string) string {
	if time == nil {
		return "-"
	}
	return *time
}
