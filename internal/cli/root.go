// Package cli implements promptctl, a terminal front end for the prompt store.
// Every invocation reloads the collection, so nothing is selected when a
// command starts.
package cli

import (
	"context"
	"io"

	"prompt-manager/internal/constant"
	"prompt-manager/internal/service"
	"prompt-manager/pkg/events"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Opener loads a selection controller that reports notices to notifier.
// The returned func releases the storage.
type Opener func(ctx context.Context, notifier service.INotifier) (service.ISelectionController, func() error, error)

type Options struct {
	Out       io.Writer
	Open      Opener
	Clipboard func(text string) error
}

type app struct {
	opts Options
}

func NewRootCommand(opts Options) *cobra.Command {
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:           "promptctl",
		Short:         "Manage saved prompts from the terminal",
		Long:          longRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(opts.Out)

	root.AddCommand(
		a.listCommand(),
		a.showCommand(),
		a.saveCommand(),
		a.deleteCommand(),
		a.copyCommand(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, args []string, errOut io.Writer, opts Options) int {
	root := NewRootCommand(opts)
	root.SetArgs(args)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		color.New(color.FgRed).Fprintln(errOut, "Error:", err)
		return 1
	}
	return 0
}

// session opens a fresh controller for one command.
func (a *app) session(cmd *cobra.Command) (service.ISelectionController, func() error, error) {
	return a.opts.Open(cmd.Context(), service.NotifierFunc(a.printNotice))
}

func (a *app) printNotice(_ context.Context, e events.Event) {
	message, _ := e.Payload()["message"].(string)
	if message == "" {
		message = e.EventType()
	}

	c := color.New(color.FgGreen)
	if e.EventType() == constant.NoticeValidationFailed {
		c = color.New(color.FgRed)
	}
	c.Fprintln(a.opts.Out, message)
}

var longRoot = `
promptctl lists, edits and copies the prompts kept by the prompt manager.
It reads the same storage as the HTTP server, chosen with STORAGE_DRIVER.
`
