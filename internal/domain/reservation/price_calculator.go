package reservation

import (
	"hotel-kiosk/internal/domain/catalog"
	"hotel-kiosk/internal/domain/pricing"
	"hotel-kiosk/internal/pkg/money"
)

type rateKey struct {
	roomType catalog.RoomTypeCode
	rate     money.Money
}

// assignmentGroups folds assigned rooms that share a type and captured rate
// into one priced selection, keeping first-seen order.
type assignmentGroups struct {
	keys    []rateKey
	counts  map[rateKey]int
	indexOf map[rateKey]int
}

func groupAssignments(assignments []RoomAssignment) assignmentGroups {
	g := assignmentGroups{counts: make(map[rateKey]int), indexOf: make(map[rateKey]int)}
	for _, a := range assignments {
		k := rateKey{roomType: a.RoomType, rate: a.NightlyRate}
		if _, ok := g.indexOf[k]; !ok {
			g.indexOf[k] = len(g.keys)
			g.keys = append(g.keys, k)
		}
		g.counts[k]++
	}
	return g
}

func (g assignmentGroups) selections() []pricing.RoomSelection {
	out := make([]pricing.RoomSelection, 0, len(g.keys))
	for _, k := range g.keys {
		out = append(out, pricing.RoomSelection{
			RoomType:    k.roomType,
			NightlyRate: k.rate,
			Quantity:    g.counts[k],
		})
	}
	return out
}

func (g assignmentGroups) applyMultipliers(assignments []RoomAssignment, lines []pricing.RoomLine) {
	for i := range assignments {
		k := rateKey{roomType: assignments[i].RoomType, rate: assignments[i].NightlyRate}
		if idx, ok := g.indexOf[k]; ok && idx < len(lines) {
			assignments[i].Multiplier = lines[idx].Multiplier
		}
	}
}
