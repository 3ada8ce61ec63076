package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/example/gowheels/internal/booking"
	"github.com/example/gowheels/internal/config"
	"github.com/example/gowheels/internal/db"
	"github.com/spf13/cobra"
)

func newBookingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bookings",
		Short: "Inspect stored bookings (non-UI)",
	}
	cmd.AddCommand(newBookingsListCmd())
	return cmd
}

func newBookingsListCmd() *cobra.Command {
	var limit int
	c := &cobra.Command{
		Use:   "list",
		Short: "List recent bookings",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			ctx := context.Background()
			d, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer d.Close()

			repo := booking.NewRepo(d.Pool())
			bs, err := repo.List(ctx, limit)
			if err != nil {
				return err
			}
			for _, b := range bs {
				fmt.Fprintf(os.Stdout, "id=%s name=%q car=%q pickup=%s return=%s created=%s\n",
					b.ID, b.Name, b.CarModel,
					b.PickupDate.Format(time.RFC3339), b.ReturnDate.Format(time.RFC3339), b.CreatedAt.Format(time.RFC3339))
			}
			return nil
		},
	}
	c.Flags().IntVar(&limit, "limit", 20, "max bookings to print")
	return c
}
