package wca

import (
	"strconv"
)

const EventRowCells = 10

// column layout of a personal records row, the last column (10th) holds
// no data we read
const (
	eventNameCell = 0

	singleNationalCell    = 1
	singleContinentalCell = 2
	singleWorldCell       = 3
	singleTimeCell        = 4

	averageTimeCell        = 5
	averageWorldCell       = 6
	averageContinentalCell = 7
	averageNationalCell    = 8
)

func buildResultGroup(time, national, continental, world string) (ResultGroup, error) {
	nationalRank, err := coerceOptionalUint(national)
	if err != nil {
		return ResultGroup{}, withField(err, "national")
	}
	continentalRank, err := coerceOptionalUint(continental)
	if err != nil {
		return ResultGroup{}, withField(err, "continent")
	}
	worldRank, err := coerceOptionalUint(world)
	if err != nil {
		return ResultGroup{}, withField(err, "world")
	}
	return ResultGroup{
		Time:        coerceOptionalString(time),
		National:    nationalRank,
		Continental: continentalRank,
		World:       worldRank,
	}, nil
}

func buildEvent(cells []string) (Event, error) {
	if len(cells) != EventRowCells {
		return Event{}, &StructuralError{
			Region:   "an event row",
			Expected: strconv.Itoa(EventRowCells),
			Found:    len(cells),
		}
	}

	single, err := buildResultGroup(
		cells[singleTimeCell],
		cells[singleNationalCell],
		cells[singleContinentalCell],
		cells[singleWorldCell],
	)
	if err != nil {
		return Event{}, withField(err, "single")
	}
	average, err := buildResultGroup(
		cells[averageTimeCell],
		cells[averageNationalCell],
		cells[averageContinentalCell],
		cells[averageWorldCell],
	)
	if err != nil {
		return Event{}, withField(err, "average")
	}

	return Event{
		Name:    cells[eventNameCell],
		Single:  single,
		Average: average,
	}, nil
}
