package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	authService "ecoclean/internal/application/auth"
)

var hashTokenCmd = &cobra.Command{
	Use:   "hash-token [token]",
	Short: "Generate an API token or hash an existing one for API_TOKEN_HASH",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc := authService.NewService("")
		out := cmd.OutOrStdout()

		if len(args) == 1 {
			hash, err := svc.HashToken(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "API_TOKEN_HASH=%s\n", hash)
			return nil
		}

		pair, err := svc.GenerateToken()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Token:          %s\n", pair.Token)
		fmt.Fprintf(out, "API_TOKEN_HASH=%s\n", pair.Hash)
		return nil
	},
}
