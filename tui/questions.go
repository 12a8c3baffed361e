package tui

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/tubetrivia/station-roulette/picker"
	"github.com/tubetrivia/station-roulette/stations"
)

// Question is a single quiz round: name the line serving a station.
type Question struct {
	Station stations.Station
	Options []string
	Answer  int // index into Options
}

// BuildQuestions draws n stations from the basket and builds one question
// per station. Each question offers optionCount line names, exactly one of
// which serves the station; distractors are drawn from the rest of the
// catalogue's lines. Fewer distractors than requested shrinks the option
// list rather than failing.
func BuildQuestions(cat *stations.Catalogue, basket []stations.Station, n, optionCount int, p *picker.Picker) ([]Question, error) {
	if optionCount < 2 {
		return nil, fmt.Errorf("need at least 2 options per question, got %d", optionCount)
	}
	drawn, err := p.Generate(n, basket, nil)
	if err != nil {
		return nil, err
	}

	allLines := cat.Lines()
	questions := make([]Question, 0, len(drawn))
	for _, s := range drawn {
		correct := s.Lines[rand.IntN(len(s.Lines))]

		var distractors []string
		for _, l := range allLines {
			if !slices.Contains(s.Lines, l) {
				distractors = append(distractors, l)
			}
		}
		rand.Shuffle(len(distractors), func(i, j int) {
			distractors[i], distractors[j] = distractors[j], distractors[i]
		})
		if len(distractors) > optionCount-1 {
			distractors = distractors[:optionCount-1]
		}

		options := append([]string{correct}, distractors...)
		rand.Shuffle(len(options), func(i, j int) {
			options[i], options[j] = options[j], options[i]
		})
		questions = append(questions, Question{
			Station: s,
			Options: options,
			Answer:  slices.Index(options, correct),
		})
	}
	return questions, nil
}
