package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// details <address>: print the registry record for <address>.
func detailsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "details <address>",
		Short: "Show a registry record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			user, err := appCtx.Registry.GetDetails(cmd.Context(), addr)
			if err != nil {
				return err
			}
			if !user.Active {
				fmt.Println("not registered")
				return nil
			}
			fmt.Printf("main key:   %s\n", user.MainKey)
			fmt.Printf("backup key: %s\n", user.BackupKey)
			if user.Bound() {
				fmt.Printf("partner:    %s\n", user.Partner)
			} else {
				fmt.Println("partner:    unset")
			}
			return nil
		},
	}
}
