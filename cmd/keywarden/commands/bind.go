package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// bind <partner>: mutually bind the caller and <partner> as recovery partners.
func bindCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bind <partner>",
		Short: "Bind a mutual recovery partner",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			self, err := caller()
			if err != nil {
				return err
			}
			partner, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			if err := appCtx.Registry.BindPartner(cmd.Context(), self, partner); err != nil {
				return err
			}
			fmt.Println("partners bound")
			return nil
		},
	}
}
