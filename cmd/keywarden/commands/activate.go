package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// activate <target> <signature>: submit an activation signature swapping
// <target>'s main and backup keys. The caller must be the target's bound
// recovery partner.
func activateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "activate <target> <signature>",
		Short: "Submit an activation signature for your partner",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			self, err := caller()
			if err != nil {
				return err
			}
			target, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			sig, err := hex.DecodeString(strings.TrimPrefix(args[1], "0x"))
			if err != nil {
				return fmt.Errorf("parse signature: %w", err)
			}
			if err := appCtx.Registry.Activate(cmd.Context(), self, target, sig); err != nil {
				return err
			}
			fmt.Println("backup key activated")
			return nil
		},
	}
}
