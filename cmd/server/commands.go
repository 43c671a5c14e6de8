package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mpl-id/mpl-chat-service/internal/config"
	"github.com/mpl-id/mpl-chat-service/internal/logging"
	"github.com/mpl-id/mpl-chat-service/internal/metrics"
	"github.com/mpl-id/mpl-chat-service/internal/server"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "MPL Indonesia Q&A service",
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	}
	root.AddCommand(newServeCmd(), newAskCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP chat API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), cmd.ErrOrStderr())
		},
	}
}

func newAskCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ask <message...>",
		Short: "Answer one message and exit",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cfg := config.Load()
			logger := newLogger(cmd.ErrOrStderr())

			engine, err := server.BuildEngine(ctx, cfg, logger, metrics.NewRecorder())
			if err != nil {
				return err
			}
			res := engine.Answer(ctx, strings.Join(args, " "))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Answer)
			return err
		},
	}
}

func runServe(parent context.Context, logOut io.Writer) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg := config.Load()
	logger := newLogger(logOut)

	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv, err := server.New(ctx, cfg, logger)
	if err != nil {
		logging.Error(logger, "startup failed", err)
		return err
	}
	srv.Run(ctx, stop)
	return nil
}

func newLogger(out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: service,
		Version: appVersion,
		Output:  out,
	})
}
