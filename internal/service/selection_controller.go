package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prompt-manager/internal/constant"
	"prompt-manager/internal/dto"
	"prompt-manager/internal/entity"
	"prompt-manager/internal/pkg/validation"
	"prompt-manager/pkg/events"
	"prompt-manager/pkg/richtext"
)

var (
	ErrValidation  = errors.New("title and content cannot be empty")
	ErrNoSelection = errors.New("no prompt selected")
)

// ISelectionController turns user intents into prompt store calls and
// returns the view the presentation layer renders. It owns the current
// selection and the active filter text. Not safe for concurrent use.
type ISelectionController interface {
	Reload(ctx context.Context) dto.ViewState
	State() dto.ViewState
	StartNew() dto.ViewState
	Select(id string) dto.ViewState
	Save(ctx context.Context, title, content string) (*dto.SavePromptResponse, error)
	Delete(ctx context.Context, id string) dto.ViewState
	Filter(text string) dto.ViewState
	CopySelected(ctx context.Context) (*dto.CopyPromptResponse, error)
	SelectedId() (string, bool)
}

type selectionController struct {
	store    IPromptStore
	notifier INotifier

	selectedId *string
	filterText string
}

func NewSelectionController(store IPromptStore, notifier INotifier) ISelectionController {
	if notifier == nil {
		notifier = NopNotifier()
	}
	return &selectionController{
		store:    store,
		notifier: notifier,
	}
}

// Reload re-reads the durable mirror. The selection never survives a reload;
// the filter text does.
func (c *selectionController) Reload(ctx context.Context) dto.ViewState {
	c.store.Load(ctx)
	c.selectedId = nil
	return c.view(nil)
}

func (c *selectionController) State() dto.ViewState {
	return c.view(nil)
}

func (c *selectionController) StartNew() dto.ViewState {
	c.selectedId = nil
	return c.view(emptyEditor())
}

// Select assigns the selection even when id is unknown; the editor is only
// populated for a prompt that exists.
func (c *selectionController) Select(id string) dto.ViewState {
	c.selectedId = &id

	prompt := c.store.FindById(id)
	if prompt == nil {
		return c.view(nil)
	}
	return c.view(editorFor(prompt))
}

func (c *selectionController) Save(ctx context.Context, title, content string) (*dto.SavePromptResponse, error) {
	req := dto.SavePromptRequest{Title: title, Content: content}
	if err := validation.Struct(req); err != nil {
		c.notifier.Notify(ctx, events.NewNotice(constant.NoticeValidationFailed, constant.MessageEmptyFields, nil))
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	res := &dto.SavePromptResponse{}
	if c.selectedId != nil {
		res.Id = *c.selectedId
		// A selection whose prompt vanished is left alone
		if c.store.FindById(*c.selectedId) != nil {
			if err := c.store.Update(ctx, *c.selectedId, title, content); err != nil && !errors.Is(err, ErrPromptNotFound) {
				return nil, err
			}
		}
	} else {
		id := c.store.Create(ctx, title, content)
		c.selectedId = &id
		res.Id = id
		res.Created = true
	}

	res.State = c.view(nil)
	c.notifier.Notify(ctx, events.NewNotice(constant.NoticeSaveSucceeded, constant.MessageSaved, map[string]interface{}{"id": res.Id}))
	return res, nil
}

// Delete removes any prompt, selected or not. Deleting the selected prompt
// clears the selection and the editor.
func (c *selectionController) Delete(ctx context.Context, id string) dto.ViewState {
	c.store.Delete(ctx, id)

	var editor *dto.EditorFields
	if c.selectedId != nil && *c.selectedId == id {
		c.selectedId = nil
		editor = emptyEditor()
	}

	state := c.view(editor)
	c.notifier.Notify(ctx, events.NewNotice(constant.NoticeDeleteSucceeded, constant.MessageDeleted, map[string]interface{}{"id": id}))
	return state
}

func (c *selectionController) Filter(text string) dto.ViewState {
	c.filterText = text
	return c.view(nil)
}

// CopySelected returns the visible text of the selected prompt's content for
// the presentation layer to put on the clipboard.
func (c *selectionController) CopySelected(ctx context.Context) (*dto.CopyPromptResponse, error) {
	if c.selectedId == nil {
		return nil, ErrNoSelection
	}

	prompt := c.store.FindById(*c.selectedId)
	if prompt == nil {
		return nil, ErrPromptNotFound
	}

	res := &dto.CopyPromptResponse{
		Id:   prompt.Id,
		Text: richtext.VisibleText(prompt.Content),
	}
	c.notifier.Notify(ctx, events.NewNotice(constant.NoticeCopied, constant.MessageCopied, map[string]interface{}{"id": prompt.Id}))
	return res, nil
}

func (c *selectionController) SelectedId() (string, bool) {
	if c.selectedId == nil {
		return "", false
	}
	return *c.selectedId, true
}

func (c *selectionController) view(editor *dto.EditorFields) dto.ViewState {
	var selected *string
	if c.selectedId != nil {
		id := *c.selectedId
		selected = &id
	}

	return dto.ViewState{
		Prompts:    c.filtered(),
		SelectedId: selected,
		Filter:     c.filterText,
		Editor:     editor,
	}
}

// filtered matches the trimmed filter text case-insensitively against the
// visible text of each title, keeping collection order.
func (c *selectionController) filtered() []dto.PromptView {
	needle := strings.ToLower(strings.TrimSpace(c.filterText))

	views := make([]dto.PromptView, 0)
	for _, p := range c.store.GetAll() {
		if needle != "" && !strings.Contains(strings.ToLower(richtext.VisibleText(p.Title)), needle) {
			continue
		}
		views = append(views, dto.PromptView{
			Id:      p.Id,
			Title:   p.Title,
			Content: p.Content,
			Preview: richtext.Preview(p.Content, constant.PreviewLength),
		})
	}
	return views
}

func emptyEditor() *dto.EditorFields {
	return &dto.EditorFields{
		TitleEmpty:   true,
		ContentEmpty: true,
	}
}

func editorFor(p *entity.Prompt) *dto.EditorFields {
	return &dto.EditorFields{
		Title:        p.Title,
		Content:      p.Content,
		TitleEmpty:   richtext.IsBlank(p.Title),
		ContentEmpty: richtext.IsBlank(p.Content),
	}
}
