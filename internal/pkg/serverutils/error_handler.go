package serverutils

import (
	"errors"

	"prompt-manager/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ErrorStatus binds a sentinel error to the HTTP status it is reported with.
type ErrorStatus struct {
	Err  error
	Code int
}

// ErrorHandlerMiddleware turns errors returned by downstream handlers into the
// error envelope. Errors matching one of statuses (via errors.Is) use its
// code, *fiber.Error keeps its own, anything else is a 500. Validation field
// failures are attached as data.
func ErrorHandlerMiddleware(statuses ...ErrorStatus) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code := StatusFor(err, statuses...)
		res := ErrorResponse(code, err.Error())
		if fields := validation.FieldErrors(err); fields != nil {
			res.Data = fields
		}

		return ctx.Status(code).JSON(res)
	}
}

func StatusFor(err error, statuses ...ErrorStatus) int {
	for _, s := range statuses {
		if errors.Is(err, s.Err) {
			return s.Code
		}
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	return fiber.StatusInternalServerError
}
