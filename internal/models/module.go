package models

// Module represents a catalog module that owns an ordered list of lessons
type Module struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	OrderPosition int      `json:"orderPosition"`
	LessonCount   int      `json:"lessonCount"`
	Lessons       []Lesson `json:"lessons,omitempty"`
}

// ItemID returns the module identifier
func (m Module) ItemID() string { return m.ID }

// Position returns the module order position
func (m Module) Position() int { return m.OrderPosition }

// WithPosition returns a copy of the module with the given order position
func (m Module) WithPosition(p int) Module {
	m.OrderPosition = p
	return m
}

// ModuleShortInfo represents a module with only ID and Title
type ModuleShortInfo struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
