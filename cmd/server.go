package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/example/gowheels/internal/booking"
	"github.com/example/gowheels/internal/config"
	"github.com/example/gowheels/internal/db"
	"github.com/example/gowheels/internal/logger"
	"github.com/example/gowheels/internal/mail"
	"github.com/example/gowheels/internal/migrate"
	"github.com/example/gowheels/internal/web"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newServerCmd() *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Run the booking API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromEnv()
			if err != nil {
				return err
			}
			logger.Setup(cfg.LogLevel)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			d, err := db.Open(ctx, cfg.DatabaseURL)
			if err != nil {
				return err
			}
			defer d.Close()

			if err := d.Ping(ctx); err != nil {
				return fmt.Errorf("db ping: %w", err)
			}

			if migrateUp {
				if err := migrate.Up(ctx, d.Pool()); err != nil {
					return err
				}
			}

			var notifier booking.Notifier
			if cfg.SMTPUser != "" && cfg.SMTPPass != "" {
				notifier = mail.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass)
			} else {
				logrus.Warn("EMAIL_USER/EMAIL_PASS not set, confirmation emails disabled")
			}

			svc := booking.NewService(booking.NewRepo(d.Pool()), notifier, cfg.NotifyTimeout)

			ws := &web.Server{Bookings: svc, AllowedOrigins: cfg.AllowedOrigins}
			return web.Start(ctx, cfg.ListenAddr, ws.Routes())
		},
	}

	cmd.Flags().BoolVar(&migrateUp, "migrate", true, "run database migrations on startup")

	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"
	return cmd
}
