package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// digest <target>: print the activation digest a signer must sign to
// authorize a swap on <target>.
func digestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "digest <target>",
		Short: "Print the activation digest a signer must sign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			digest, ctxID, err := appCtx.Digest(cmd.Context(), target)
			if err != nil {
				return err
			}
			fmt.Printf("digest:  0x%s\n", hex.EncodeToString(digest))
			fmt.Printf("context: %s\n", ctxID)
			return nil
		},
	}
}
