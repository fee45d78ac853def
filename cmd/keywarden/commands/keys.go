package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/crypto"
)

func initCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a signing key into the encrypted keystore",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			priv, err := crypto.GenerateKey()
			if err != nil {
				return err
			}
			if err := appCtx.Keys.SaveKey(passphrase, priv); err != nil {
				return err
			}
			fmt.Printf("Key created.\nAddress: %s\n", crypto.KeyAddress(priv))
			return nil
		},
	}
}

func keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys",
		Short: "List keystore addresses",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requirePassphrase(); err != nil {
				return err
			}
			addrs, err := appCtx.Keys.Addresses(passphrase)
			if err != nil {
				return err
			}
			for _, addr := range addrs {
				fmt.Println(addr)
			}
			return nil
		},
	}
}
