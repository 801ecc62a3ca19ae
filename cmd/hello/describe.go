package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
)

func newDescribeCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <package>",
		Short: "Print a package descriptor as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := opts.bootstrap(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			desc, err := rt.service.Describe(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			if err := enc.Encode(desc); err != nil {
				return fmt.Errorf("encoding descriptor: %w", err)
			}

			return nil
		},
	}
}
