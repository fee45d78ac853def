package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"keywarden/internal/app"
	"keywarden/internal/domain"
)

var (
	home       string
	passphrase string
	serverURL  string
	contextID  string
	callerHex  string

	appCtx *app.Wire
)

// Execute runs the keywarden CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "keywarden",
		Short: "Mutual backup-key recovery registry CLI",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".keywarden")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			wire, err := app.NewWire(app.Config{
				Home:      home,
				ServerURL: serverURL,
				ContextID: domain.ContextID(contextID),
			})
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if appCtx != nil {
				return appCtx.Close()
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.keywarden)")
	root.PersistentFlags().StringVarP(&passphrase, "passphrase", "p", "", "passphrase protecting the keystore")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "registryd base URL (e.g. http://127.0.0.1:8080); empty runs locally")
	root.PersistentFlags().StringVar(&contextID, "context", "local", "deployment context id bound into activation digests (local mode)")
	root.PersistentFlags().StringVar(&callerHex, "as", "", "caller identity address (0x-prefixed hex)")

	root.AddCommand(
		initCmd(), keysCmd(),
		registerCmd(), bindCmd(), updateBackupCmd(), detailsCmd(),
		digestCmd(), signCmd(), activateCmd(), eventsCmd(),
	)
	return root.Execute()
}

// caller parses the --as flag.
func caller() (domain.Address, error) {
	if callerHex == "" {
		return domain.Address{}, fmt.Errorf("caller identity required (--as)")
	}
	return domain.ParseAddress(callerHex)
}

// requirePassphrase guards keystore-touching commands.
func requirePassphrase() error {
	if passphrase == "" {
		return fmt.Errorf("passphrase required (-p)")
	}
	return nil
}
