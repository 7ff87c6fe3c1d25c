package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	transferConfigUC "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/transfer_config"
)

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export settings and room types as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			doc, err := transferConfigUC.NewUseCase(a.roomTypes, a.settings, a.txManager, a.log).Export(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	cmd.Flags().StringP("output", "o", "", "Write to file instead of stdout")

	return cmd
}

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.json>",
		Short: "Apply an exported JSON document (only present fields are changed)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read %s: %w", args[0], err)
			}

			doc, err := transferConfigUC.ParseDocument(data)
			if err != nil {
				return err
			}

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := transferConfigUC.NewUseCase(a.roomTypes, a.settings, a.txManager, a.log).Import(cmd.Context(), doc)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Settings updated: %t\nRoom types saved: %s\n",
				result.SettingsUpdated, listOrDash(result.RoomTypesSaved))
			return nil
		},
	}
}
