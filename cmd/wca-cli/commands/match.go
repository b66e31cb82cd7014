package commands

import (
	"fmt"
	"wca-userinfo/lib/textutil"
	"wca-userinfo/lib/wca"

	"github.com/antzucaro/matchr"
)

// events scoring below this are not considered a match.
const eventMatchThreshold = 0.8

// matchEvent returns the event whose name is most similar to `query`.
func matchEvent(events []wca.Event, query string) (wca.Event, error) {
	query = textutil.NormalizeName(query)

	var best wca.Event
	var bestSimilarity float64
	for _, e := range events {
		name := textutil.NormalizeName(e.Name)
		if name == query {
			return e, nil
		}
		similarity := matchr.JaroWinkler(query, name, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = e
		}
	}

	if bestSimilarity < eventMatchThreshold {
		return wca.Event{}, fmt.Errorf("no event matching %q", query)
	}
	return best, nil
}
