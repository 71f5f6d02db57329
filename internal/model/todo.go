package model

// Todo is the domain model for a todo entry.
// Nothing flips Completed after creation yet; the field and the completed
// view over it are kept as they are.
type Todo struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}
