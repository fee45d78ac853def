package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"keywarden/internal/domain"
)

// events: print the registry audit log in append order.
func eventsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "events",
		Short: "Print the registry audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			events, err := appCtx.Events(cmd.Context())
			if err != nil {
				return err
			}
			for _, event := range events {
				fmt.Println(formatEvent(event))
			}
			return nil
		},
	}
}

func formatEvent(event domain.Event) string {
	switch event.Kind {
	case domain.EventUserRegistered:
		return fmt.Sprintf("%d %s user=%s main=%s backup=%s",
			event.Seq, event.Kind, event.Subject, event.MainKey, event.BackupKey)
	case domain.EventPartnerBound:
		return fmt.Sprintf("%d %s user=%s partner=%s",
			event.Seq, event.Kind, event.Subject, event.Partner)
	case domain.EventBackupKeyUpdated:
		return fmt.Sprintf("%d %s user=%s backup=%s",
			event.Seq, event.Kind, event.Subject, event.BackupKey)
	case domain.EventBackupKeyActivated:
		return fmt.Sprintf("%d %s user=%s by=%s old-backup=%s",
			event.Seq, event.Kind, event.Subject, event.ActivatedBy, event.OldBackupKey)
	}
	return fmt.Sprintf("%d %s user=%s", event.Seq, event.Kind, event.Subject)
}
