package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// register <main-key> <backup-key>: create the caller's registry record.
func registerCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "register <main-key> <backup-key>",
		Short: "Create your registry record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			self, err := caller()
			if err != nil {
				return err
			}
			mainKey, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			backupKey, err := domain.ParseAddress(args[1])
			if err != nil {
				return err
			}
			if err := appCtx.Registry.Register(cmd.Context(), self, mainKey, backupKey); err != nil {
				return err
			}
			fmt.Println("registered")
			return nil
		},
	}
}
