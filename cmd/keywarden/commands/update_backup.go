package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// update-backup <new-backup-key>: replace the caller's standby credential.
func updateBackupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update-backup <new-backup-key>",
		Short: "Replace your backup credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			self, err := caller()
			if err != nil {
				return err
			}
			backupKey, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Registry.UpdateBackupKey(cmd.Context(), self, backupKey); err != nil {
				return err
			}
			fmt.Println("backup key updated")
			return nil
		},
	}
}
