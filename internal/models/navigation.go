package models

import "math"

// LessonRef is a short reference to a neighbouring lesson
type LessonRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// LessonNavigation holds the previous/next neighbours of a lesson and its 1-based position.
// Position and Progress are nil when the lesson is not among its module's lessons.
type LessonNavigation struct {
	Previous *LessonRef `json:"previous"`
	Next     *LessonRef `json:"next"`
	Position *int       `json:"position"`
	Total    int        `json:"total"`
	Progress *int       `json:"progress"`
}

// Available reports whether the lesson was located among its siblings
func (n LessonNavigation) Available() bool {
	return n.Position != nil && n.Total > 0
}

// ProgressPercent returns round(position / total * 100), or false when navigation is unavailable
func (n LessonNavigation) ProgressPercent() (int, bool) {
	if !n.Available() {
		return 0, false
	}
	return int(math.Round(float64(*n.Position) / float64(n.Total) * 100)), true
}
