package cli

import (
	"fmt"

	"prompt-manager/internal/service"
	"prompt-manager/pkg/richtext"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func (a *app) listCommand() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List prompts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, closeFn, err := a.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			state := sel.Filter(filter)
			if len(state.Prompts) == 0 {
				fmt.Fprintln(a.opts.Out, "No prompts.")
				return nil
			}

			idColor := color.New(color.FgCyan)
			for _, p := range state.Prompts {
				idColor.Fprint(a.opts.Out, p.Id)
				fmt.Fprintf(a.opts.Out, "  %s", richtext.Preview(p.Title, 0))
				if p.Preview != "" {
					fmt.Fprintf(a.opts.Out, "  %s", color.New(color.Faint).Sprint(p.Preview))
				}
				fmt.Fprintln(a.opts.Out)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "only prompts whose title contains this text")
	return cmd
}

func (a *app) showCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print a prompt's title and content as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, closeFn, err := a.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			editor := sel.Select(args[0]).Editor
			if editor == nil {
				return fmt.Errorf("%w: %s", service.ErrPromptNotFound, args[0])
			}

			color.New(color.Bold).Fprintln(a.opts.Out, richtext.VisibleText(editor.Title))
			fmt.Fprintln(a.opts.Out, richtext.VisibleText(editor.Content))
			return nil
		},
	}
}

func (a *app) saveCommand() *cobra.Command {
	var id, title, content string

	cmd := &cobra.Command{
		Use:   "save",
		Short: "Create a prompt, or update one with --id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, closeFn, err := a.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			if id != "" {
				if sel.Select(id).Editor == nil {
					return fmt.Errorf("%w: %s", service.ErrPromptNotFound, id)
				}
			} else {
				sel.StartNew()
			}

			res, err := sel.Save(cmd.Context(), title, content)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.opts.Out, res.Id)
			return nil
		},
	}
	cmd.Flags().StringVar(&id, "id", "", "id of the prompt to update")
	cmd.Flags().StringVarP(&title, "title", "t", "", "prompt title (HTML allowed)")
	cmd.Flags().StringVarP(&content, "content", "c", "", "prompt content (HTML allowed)")
	return cmd
}

func (a *app) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a prompt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, closeFn, err := a.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			sel.Delete(cmd.Context(), args[0])
			return nil
		},
	}
}

func (a *app) copyCommand() *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a prompt's content to the clipboard as plain text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, closeFn, err := a.session(cmd)
			if err != nil {
				return err
			}
			defer closeFn()

			sel.Select(args[0])
			res, err := sel.CopySelected(cmd.Context())
			if err != nil {
				return err
			}

			if printOnly || a.opts.Clipboard == nil {
				fmt.Fprintln(a.opts.Out, res.Text)
				return nil
			}
			if err := a.opts.Clipboard(res.Text); err != nil {
				return fmt.Errorf("clipboard unavailable, retry with --print: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&printOnly, "print", "p", false, "write the text to stdout instead of the clipboard")
	return cmd
}
