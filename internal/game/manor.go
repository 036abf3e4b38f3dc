package game

import (
	"github.com/tahcohcat/cluequest/internal/mansion"
	"github.com/tahcohcat/cluequest/internal/suspects"
)

const ManorID = "manor"

// Manor is the built-in seven room mansion.
func Manor() *Case {
	return &Case{
		ID:    ManorID,
		Title: "Detective Quest: The Final Judgement",
		Intro: "You begin your investigation in the Entrance Hall.",
		Entrance: mansion.Layout{
			Name: "Entrance Hall",
			Clue: "Wet footprints on the rug",
			Left: &mansion.Layout{
				Name:  "Living Room",
				Clue:  "Clock stopped at 3:15",
				Left:  &mansion.Layout{Name: "Library", Clue: "Page torn from a novel"},
				Right: &mansion.Layout{Name: "Garden"},
			},
			Right: &mansion.Layout{
				Name:  "Kitchen",
				Clue:  "Broken glass with wine residue",
				Left:  &mansion.Layout{Name: "Cellar", Clue: "Locked safe with a damaged keypad"},
				Right: &mansion.Layout{Name: "Tower", Clue: "Black fabric fiber caught in the window"},
			},
		},
		Evidence: []suspects.Binding{
			{Clue: "Wet footprints on the rug", Suspect: "Mr. Almeida"},
			{Clue: "Clock stopped at 3:15", Suspect: "Mrs. Helena"},
			{Clue: "Broken glass with wine residue", Suspect: "Mrs. Helena"},
			{Clue: "Page torn from a novel", Suspect: "Prof. Braga"},
			{Clue: "Locked safe with a damaged keypad", Suspect: "Mr. Almeida"},
			{Clue: "Black fabric fiber caught in the window", Suspect: "Unknown Suspect"},
		},
	}
}
