package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tubetrivia/station-roulette/config"
	"github.com/tubetrivia/station-roulette/picker"
	"github.com/tubetrivia/station-roulette/tui"
)

var (
	quizFlags     criteriaFlags
	flagQuestions int
	flagOptions   int
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Play a which-line-serves-this-station quiz",
	RunE:  runQuiz,
}

func init() {
	quizFlags.register(quizCmd)
	quizCmd.Flags().IntVar(&flagQuestions, "questions", 0, "number of questions (default from config)")
	quizCmd.Flags().IntVar(&flagOptions, "options", 0, "answer options per question (default from config)")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalogue()
	if err != nil {
		return err
	}

	criteria, err := quizFlags.criteria(cmd)
	if err != nil {
		return err
	}
	basket := picker.Basket(cat, criteria)

	if len(basket) == 0 {
		return fmt.Errorf("no stations match the given criteria")
	}

	questions := flagQuestions
	if questions == 0 {
		questions = config.Config.Quiz.Questions
	}
	if questions > len(basket) {
		log.Warn().Int("basket", len(basket)).Int("questions", questions).
			Msg("fewer matching stations than questions, shrinking quiz")
		questions = len(basket)
	}
	options := flagOptions
	if options == 0 {
		options = config.Config.Quiz.Options
	}

	qs, err := tui.BuildQuestions(cat, basket, questions, options, picker.New())
	if err != nil {
		return err
	}
	score, err := tui.Run(qs)
	if err != nil {
		return err
	}
	fmt.Printf("Final score: %d/%d\n", score, len(qs))
	return nil
}
