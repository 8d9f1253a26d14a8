package entity

// Prompt is a saved title + content record. Title and Content hold editor
// markup verbatim; Id is assigned once at creation and never changes.
type Prompt struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}
