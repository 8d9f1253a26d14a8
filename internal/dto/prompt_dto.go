package dto

type SavePromptRequest struct {
	Title   string `json:"title" validate:"required,utf8,visible"`
	Content string `json:"content" validate:"required,utf8,visible"`
}

// PromptView is a list row as rendered in the sidebar.
type PromptView struct {
	Id      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Preview string `json:"preview"`
}

// EditorFields holds what the editable title/content fields should show.
// The *Empty flags drive the placeholder styling.
type EditorFields struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	TitleEmpty   bool   `json:"title_empty"`
	ContentEmpty bool   `json:"content_empty"`
}

// ViewState is returned by every selection controller operation.
// Editor is nil when the fields should be left untouched.
type ViewState struct {
	Prompts    []PromptView  `json:"prompts"`
	SelectedId *string       `json:"selected_id"`
	Filter     string        `json:"filter"`
	Editor     *EditorFields `json:"editor,omitempty"`
}

type SavePromptResponse struct {
	Id      string    `json:"id"`
	Created bool      `json:"created"`
	State   ViewState `json:"state"`
}

type CopyPromptResponse struct {
	Id   string `json:"id"`
	Text string `json:"text"`
}
