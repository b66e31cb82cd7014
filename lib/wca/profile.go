package wca

import (
	"strconv"
)

// a person page lists 5 details (country, wca id, gender, competitions,
// completed solves), the gender cell is left out entirely for some people.
const (
	ProfileCellsWithGender    = 5
	ProfileCellsWithoutGender = 4

	genderCell = 2
)

// identityCells is the details row once its cardinality has been checked
// and the gender cell has been taken out.
type identityCells [ProfileCellsWithoutGender]string

func (c identityCells) country() string { return c[0] }
func (c identityCells) wcaID() string { return c[1] }
func (c identityCells) competitions() string { return c[2] }
func (c identityCells) solves() string { return c[3] }

type profileFields struct {
	Country         string
	WcaID           string
	Gender          *Gender
	Competitions    uint32
	CompletedSolves uint32
}

// validateProfileCells checks that every cell has text and that there are
// 4 or 5 of them, splitting off the gender cell when present.
func validateProfileCells(cells []string) (identityCells, *Gender, error) {
	for _, text := range cells {
		if text == "" {
			return identityCells{}, nil, &StructuralError{
				Region:  "user information",
				Missing: true,
			}
		}
	}

	var identity identityCells
	switch len(cells) {
	case ProfileCellsWithoutGender:
		copy(identity[:], cells)
		return identity, nil, nil
	case ProfileCellsWithGender:
		gender := GenderFromLabel(cells[genderCell])
		n := copy(identity[:], cells[:genderCell])
		copy(identity[n:], cells[genderCell+1:])
		return identity, &gender, nil
	default:
		return identityCells{}, nil, &StructuralError{
			Region: "user information",
			Expected: strconv.Itoa(ProfileCellsWithoutGender) + " or " +
				strconv.Itoa(ProfileCellsWithGender),
			Found: len(cells),
		}
	}
}

// extractProfileFields expects the trimmed first-fragment text of every
// details cell.
func extractProfileFields(cells []string) (profileFields, error) {
	identity, gender, err := validateProfileCells(cells)
	if err != nil {
		return profileFields{}, err
	}

	competitions, err := coerceRequiredUint(identity.competitions())
	if err != nil {
		return profileFields{}, withField(err, "competitions")
	}
	solves, err := coerceRequiredUint(identity.solves())
	if err != nil {
		return profileFields{}, withField(err, "completed_solves")
	}

	return profileFields{
		Country:         identity.country(),
		WcaID:           identity.wcaID(),
		Gender:          gender,
		Competitions:    competitions,
		CompletedSolves: solves,
	}, nil
}
