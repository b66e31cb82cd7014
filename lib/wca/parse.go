package wca

import (
	"bytes"
	"fmt"
	"wca-userinfo/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

const (
	DetailsCellSelector = "div.details table.table tbody tr td"
	RecordRowSelector   = "div.personal-records table.table tbody tr"
	CellSelector        = "td"
)

var (
	detailsCellMatcher = cascadia.MustCompile(DetailsCellSelector)
	recordRowMatcher   = cascadia.MustCompile(RecordRowSelector)
	cellMatcher        = cascadia.MustCompile(CellSelector)
)

// ParseProfile parses a WCA person page and extracts its profile.
func ParseProfile(body []byte) (Profile, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return Profile{}, err
	}
	return ExtractProfile(doc)
}

// ExtractProfile reads the details table and the personal records table of
// a WCA person page. it fails on the first cell or row that does not fit,
// it never returns a partially filled Profile.
//
// the returned error is a *StructuralError or a *MalformedFieldError
// (possibly wrapped), use errors.As to tell them apart. a non-numeric
// competitions or completed solves cell is a *MalformedFieldError, not a
// *StructuralError.
func ExtractProfile(doc *goquery.Document) (Profile, error) {
	// details cells can have icons before the text, only the first text
	// fragment is the value
	details := htmlutil.TrimmedTexts(doc.FindMatcher(detailsCellMatcher), htmlutil.FirstText)
	fields, err := extractProfileFields(details)
	if err != nil {
		return Profile{}, err
	}

	rows := doc.FindMatcher(recordRowMatcher)
	events := make([]Event, 0, rows.Length())
	for i := range rows.Nodes {
		cells := htmlutil.TrimmedTexts(rows.Eq(i).FindMatcher(cellMatcher), htmlutil.GetText)
		event, err := buildEvent(cells)
		if err != nil {
			return Profile{}, fmt.Errorf("personal records row %d: %w", i+1, err)
		}
		events = append(events, event)
	}

	return Profile{
		Country:         fields.Country,
		WcaID:           fields.WcaID,
		Gender:          fields.Gender,
		Competitions:    fields.Competitions,
		CompletedSolves: fields.CompletedSolves,
		Events:          events,
	}, nil
}
