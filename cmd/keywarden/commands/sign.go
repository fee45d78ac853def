package commands

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
	"keywarden/internal/protocol/activation"
)

var signKeyHex string

// sign <target>: produce an activation signature for <target> using a
// keystore key. The key must match the target record's current main key for
// the signature to be accepted.
func signCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign <target>",
		Short: "Sign an activation for a target with a keystore key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			target, err := domain.ParseAddress(args[0])
			if err != nil {
				return err
			}
			keyAddr, err := domain.ParseAddress(signKeyHex)
			if err != nil {
				return err
			}
			priv, ok, err := appCtx.Keys.LoadKey(passphrase, keyAddr)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no keystore key for %s", keyAddr)
			}

			// Bind the signature to the same deployment context the registry
			// will verify against.
			_, ctxID, err := appCtx.Digest(cmd.Context(), target)
			if err != nil {
				return err
			}
			sig := activation.Sign(priv, target, ctxID)
			fmt.Printf("0x%s\n", hex.EncodeToString(sig))
			return nil
		},
	}
	cmd.Flags().StringVar(&signKeyHex, "key", "", "keystore address of the signing key")
	_ = cmd.MarkFlagRequired("key")
	return cmd
}
