package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen/hello-packages/internal/domain"
)

func newGreetCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "greet [package...]",
		Short: "Print the greeting of each package, or of every package when none is named",
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			var greetings []domain.Greeting

			if len(args) == 0 {
				greetings = rt.service.GreetAll(ctx)
			}

			for _, name := range args {
				g, err := rt.service.Greet(ctx, name)
				if err != nil {
					return err
				}

				greetings = append(greetings, g)
			}

			for _, g := range greetings {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", g.Package, g.Message)
			}

			return nil
		},
	}
}
