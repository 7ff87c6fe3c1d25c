package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-HotelQuoteService/internal/api/handlers"
	"github.com/m04kA/SMC-HotelQuoteService/internal/domain"
	previewQuoteUC "github.com/m04kA/SMC-HotelQuoteService/internal/usecase/preview_quote"
	"github.com/m04kA/SMC-HotelQuoteService/pkg/metrics"
)

func newQuoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Check eligibility and price a stay against the stored registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			adults, _ := cmd.Flags().GetInt("adults")
			kids, _ := cmd.Flags().GetInt("kids")
			nights, _ := cmd.Flags().GetInt("nights")
			roomType, _ := cmd.Flags().GetString("room-type")

			a, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			// Счетчики CLI никуда не экспортируются
			var noMetrics *metrics.Metrics
			uc := previewQuoteUC.NewUseCase(a.roomTypes, a.settings, noMetrics, a.log)

			resp, err := uc.Execute(cmd.Context(), &previewQuoteUC.Request{
				Adults:       adults,
				Kids:         kids,
				Nights:       nights,
				RoomTypeSlug: roomType,
			})
			if err != nil {
				if occupancyErr, ok := handlers.OccupancyError(err); ok {
					return fmt.Errorf("%s (%s)", occupancyErr.Error, occupancyErr.Code)
				}
				return err
			}

			printQuote(cmd.OutOrStdout(), resp)
			return nil
		},
	}

	cmd.Flags().Int("adults", 2, "Number of adults")
	cmd.Flags().Int("kids", 0, "Number of kids")
	cmd.Flags().Int("nights", 1, "Number of nights")
	cmd.Flags().String("room-type", "", "Room type slug (optional)")

	return cmd
}

func printQuote(w io.Writer, resp *previewQuoteUC.Response) {
	fmt.Fprintf(w, "Outcome:  %s\n", resp.Outcome)
	fmt.Fprintf(w, "Eligible: %s\n", listOrDash(resp.Eligible))
	for _, rej := range resp.Rejections {
		fmt.Fprintf(w, "Rejected: %s (%s)\n", rej.Slug, rej.Kind)
	}

	b := resp.Breakdown
	if b == nil {
		fmt.Fprintln(w, "Select a room type to price the stay")
		return
	}

	fmt.Fprintf(w, "Room:     %s\n", b.RoomTypeSlug)
	fmt.Fprintf(w, "Base:     %s\n", b.Base.StringFixed(domain.PriceScale))
	if b.ExtraAdultsCount > 0 {
		fmt.Fprintf(w, "Adults+:  %d x %s = %s\n", b.ExtraAdultsCount,
			b.ExtraAdultPrice.StringFixed(domain.PriceScale), b.ExtraAdultsCost.StringFixed(domain.PriceScale))
	}
	if b.ExtraKidsCount > 0 {
		fmt.Fprintf(w, "Kids+:    %d x %s = %s\n", b.ExtraKidsCount,
			b.ExtraKidPrice.StringFixed(domain.PriceScale), b.ExtraKidsCost.StringFixed(domain.PriceScale))
	}
	fmt.Fprintf(w, "%s\n", strings.Repeat("-", 28))
	fmt.Fprintf(w, "Per night: %s x %d\n", b.SubtotalPerNight.StringFixed(domain.PriceScale), b.Nights)
	fmt.Fprintf(w, "Total:     %s\n", b.Total.StringFixed(domain.PriceScale))
}
