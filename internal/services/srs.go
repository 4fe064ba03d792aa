package services

import (
	"time"

	fsrs "github.com/open-spaced-repetition/go-fsrs"
)

// SuggestSchedule simulates reviewing a brand-new card with successive Good
// ratings and returns the day interval produced by each review. The widening
// gaps are shown next to freshly generated flashcards as a concrete starting
// schedule for spaced repetition.
func SuggestSchedule(reviews int) []int {
	if reviews <= 0 {
		return nil
	}

	params := fsrs.DefaultParam()
	card := fsrs.Card{}
	now := time.Now().UTC()

	intervals := make([]int, 0, reviews)
	for i := 0; i < reviews; i++ {
		info := params.Repeat(card, now)[fsrs.Good]
		card = info.Card
		intervals = append(intervals, int(card.ScheduledDays))
		if card.Due.After(now) {
			now = card.Due
		} else {
			now = now.Add(24 * time.Hour)
		}
	}
	return intervals
}
