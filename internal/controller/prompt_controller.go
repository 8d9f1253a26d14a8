package controller

import (
	"sync"

	"prompt-manager/internal/constant"
	"prompt-manager/internal/dto"
	"prompt-manager/internal/pkg/serverutils"
	"prompt-manager/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IPromptController interface {
	RegisterRoutes(r fiber.Router)
	State(ctx *fiber.Ctx) error
	New(ctx *fiber.Ctx) error
	Save(ctx *fiber.Ctx) error
	Select(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Copy(ctx *fiber.Ctx) error
}

// promptController serves a single editing session. Requests are serialized
// because the selection controller keeps mutable selection state.
type promptController struct {
	mu        sync.Mutex
	selection service.ISelectionController
}

func NewPromptController(selection service.ISelectionController) IPromptController {
	return &promptController{
		selection: selection,
	}
}

// ErrorStatuses maps the prompt domain errors for serverutils.ErrorHandlerMiddleware.
func ErrorStatuses() []serverutils.ErrorStatus {
	return []serverutils.ErrorStatus{
		{Err: service.ErrValidation, Code: fiber.StatusUnprocessableEntity},
		{Err: service.ErrPromptNotFound, Code: fiber.StatusNotFound},
		{Err: service.ErrNoSelection, Code: fiber.StatusConflict},
	}
}

func (c *promptController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/prompt/v1")
	h.Get("", c.State)
	h.Get("copy", c.Copy)
	h.Post("new", c.New)
	h.Post("save", c.Save)
	h.Post(":id/select", c.Select)
	h.Delete(":id", c.Delete)
}

// State returns the current view. A q query parameter, even an empty one,
// replaces the filter text.
func (c *promptController) State(ctx *fiber.Ctx) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var res dto.ViewState
	if ctx.Request().URI().QueryArgs().Has("q") {
		res = c.selection.Filter(ctx.Query("q"))
	} else {
		res = c.selection.State()
	}

	return ctx.JSON(serverutils.SuccessResponse("Prompt list", res))
}

func (c *promptController) New(ctx *fiber.Ctx) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := c.selection.StartNew()
	return ctx.JSON(serverutils.SuccessResponse("New prompt", res))
}

func (c *promptController) Save(ctx *fiber.Ctx) error {
	var req dto.SavePromptRequest
	if err := ctx.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.selection.Save(ctx.UserContext(), req.Title, req.Content)
	if err != nil {
		return err
	}

	status := fiber.StatusOK
	if res.Created {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(serverutils.StatusResponse(status, constant.MessageSaved, res))
}

func (c *promptController) Select(ctx *fiber.Ctx) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := c.selection.Select(ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse("Prompt selected", res))
}

func (c *promptController) Delete(ctx *fiber.Ctx) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	res := c.selection.Delete(ctx.UserContext(), ctx.Params("id"))
	return ctx.JSON(serverutils.SuccessResponse(constant.MessageDeleted, res))
}

func (c *promptController) Copy(ctx *fiber.Ctx) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	res, err := c.selection.CopySelected(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(serverutils.SuccessResponse(constant.MessageCopied, res))
}
