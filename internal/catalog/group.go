package catalog

import (
	"fmt"
	"strings"
)

// Group is the semantic category an emoji belongs to.
type Group uint8

const (
	SmileysAndEmotion Group = iota
	PeopleAndBody
	AnimalsAndNature
	FoodAndDrink
	TravelAndPlaces
	Activities
	Objects
	Symbols
	Flags
)

var groupTags = [...]string{
	SmileysAndEmotion: "SmileysAndEmotion",
	PeopleAndBody:     "PeopleAndBody",
	AnimalsAndNature:  "AnimalsAndNature",
	FoodAndDrink:      "FoodAndDrink",
	TravelAndPlaces:   "TravelAndPlaces",
	Activities:        "Activities",
	Objects:           "Objects",
	Symbols:           "Symbols",
	Flags:             "Flags",
}

var groupLabels = [...]string{
	SmileysAndEmotion: "😄 Smileys & Emotion",
	PeopleAndBody:     "🧑 People & Body",
	AnimalsAndNature:  "🐷 Animals & Nature",
	FoodAndDrink:      "🍕 Food & Drink",
	TravelAndPlaces:   "✈️ Travel & Places",
	Activities:        "⚽ Activities",
	Objects:           "🧦 Objects",
	Symbols:           "☢️ Symbols",
	Flags:             "🏳️‍⚧️ Flags",
}

// displayOrder is the order groups are presented in a picker sidebar.
var displayOrder = []Group{
	SmileysAndEmotion,
	PeopleAndBody,
	AnimalsAndNature,
	Activities,
	FoodAndDrink,
	Objects,
	TravelAndPlaces,
	Symbols,
	Flags,
}

// Groups returns every group in display order.
func Groups() []Group {
	out := make([]Group, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// Valid reports whether g is a defined group.
func (g Group) Valid() bool {
	return int(g) < len(groupTags)
}

// String returns the group tag, e.g. "SmileysAndEmotion".
func (g Group) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Group(%d)", uint8(g))
	}
	return groupTags[g]
}

// Label returns the presentation label, e.g. "😄 Smileys & Emotion".
func (g Group) Label() string {
	if !g.Valid() {
		return g.String()
	}
	return groupLabels[g]
}

// MarshalText implements encoding.TextMarshaler.
func (g Group) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid group %d", uint8(g))
	}
	return []byte(groupTags[g]), nil
}

// ParseGroup resolves a group tag, ignoring case.
func ParseGroup(s string) (Group, error) {
	for i, tag := range groupTags {
		if strings.EqualFold(tag, s) {
			return Group(i), nil
		}
	}
	return 0, fmt.Errorf("unknown group %q", s)
}
