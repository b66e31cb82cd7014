package wca

import (
	"fmt"
)

// ResultGroup is a competitor's single or average result for one event.
// every field is independently optional, a nil field means the person
// page had no value in that cell.
type ResultGroup struct {
	// kept as text so "1:23.45" survives untouched
	Time        *string `json:"time"`
	National    *uint32 `json:"national"`
	Continental *uint32 `json:"continent"`
	World       *uint32 `json:"world"`
}

// Event is the best single and average of one discipline.
type Event struct {
	Name    string      `json:"name"`
	Single  ResultGroup `json:"single"`
	Average ResultGroup `json:"average"`
}

type Gender int

const (
	GenderOther Gender = iota
	GenderMale
	GenderFemale
)

// GenderFromLabel classifies the gender cell, anything that isn't exactly
// "Male" or "Female" is GenderOther.
func GenderFromLabel(label string) Gender {
	switch label {
	case "Male":
		return GenderMale
	case "Female":
		return GenderFemale
	default:
		return GenderOther
	}
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "Male"
	case GenderFemale:
		return "Female"
	default:
		return "Other"
	}
}

func (g Gender) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

func (g *Gender) UnmarshalText(text []byte) error {
	switch string(text) {
	case "Male":
		*g = GenderMale
	case "Female":
		*g = GenderFemale
	case "Other":
		*g = GenderOther
	default:
		return fmt.Errorf("unknown gender %q", string(text))
	}
	return nil
}

// Profile is everything read off of a WCA person page.
type Profile struct {
	Country string `json:"country"`
	WcaID   string `json:"wca_id"`
	// nil when the page does not list a gender at all
	Gender          *Gender `json:"gender"`
	Competitions    uint32  `json:"competitions"`
	CompletedSolves uint32  `json:"completed_solves"`
	Events          []Event `json:"events"`
}
