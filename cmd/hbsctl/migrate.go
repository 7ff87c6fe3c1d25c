package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	migrateLegacyUC "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/migrate_legacy"
)

func newMigrateLegacyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate-legacy <file.json>",
		Short: "Import legacy room types (base_guests/max_capacity) into the registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			overwrite, _ := cmd.Flags().GetBool("overwrite")
			dryRun, _ := cmd.Flags().GetBool("dry-run")

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			legacy, err := migrateLegacyUC.ParseLegacy(data)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			uc := migrateLegacyUC.NewUseCase(a.roomTypes, a.txManager, a.log)
			resp, err := uc.Execute(cmd.Context(), &migrateLegacyUC.Request{
				RoomTypes: legacy,
				Overwrite: overwrite,
				DryRun:    dryRun,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dryRun {
				fmt.Fprintln(out, "Dry run, nothing was saved")
			}
			if resp.Seeded {
				fmt.Fprintln(out, "Legacy registry is empty, default room types seeded")
			}
			fmt.Fprintf(out, "Migrated:  %s\n", listOrDash(resp.Migrated))
			fmt.Fprintf(out, "Canonical: %s\n", listOrDash(resp.Canonical))
			fmt.Fprintf(out, "Skipped:   %s\n", listOrDash(resp.Skipped))
			return nil
		},
	}

	cmd.Flags().Bool("overwrite", false, "Overwrite room types that already exist")
	cmd.Flags().Bool("dry-run", false, "Report what would change without saving")

	return cmd
}

func listOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
