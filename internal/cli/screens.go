package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/ui/input/types"
)

func newCalendarCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Open the month calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			month, _ := cmd.Flags().GetString("month")
			return run(cmd, types.ScreenCalendar, func(cfg *config.Config) error {
				if month == "" {
					return nil
				}
				if _, err := domain.ParseMonth(month); err != nil {
					return fmt.Errorf("invalid --month %q: %w", month, err)
				}
				cfg.Calendar.InitialMonth = month
				return nil
			})
		},
	}
	cmd.Flags().StringP("month", "m", "", "Month to show first (YYYY-MM)")
	return cmd
}

func newCarouselCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Open the slide carousel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed("index")
			index, _ := cmd.Flags().GetInt("index")
			return run(cmd, types.ScreenCarousel, func(cfg *config.Config) error {
				if !changed {
					return nil
				}
				if n := len(cfg.Carousel.Slides); index < 0 || index >= n {
					return fmt.Errorf("invalid --index %d: the deck has %d slides", index, n)
				}
				cfg.Carousel.InitialIndex = index
				return nil
			})
		},
	}
	cmd.Flags().IntP("index", "i", 0, "Zero-based slide to show first")
	return cmd
}
