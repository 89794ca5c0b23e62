// Command notify publishes the message served by GET /notification.
//
//	notify Build succeeded
//	echo "Deploy failed" | notify
//	notify --clear
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ericfisherdev/deploydrop/internal/adapter/driven/notifyfile"
	"github.com/ericfisherdev/deploydrop/internal/application"
	"github.com/ericfisherdev/deploydrop/internal/config"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdin); err != nil {
		slog.Error("notify failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fs := pflag.NewFlagSet("notify", pflag.ContinueOnError)
	path := fs.String("path", cfg.NotificationPath, "notification file to write")
	clearFlag := fs.Bool("clear", false, "remove the current notification")
	if err := fs.Parse(args); err != nil {
		return err
	}

	svc := application.NewNotificationService(notifyfile.New(*path))

	if *clearFlag {
		if err := svc.Clear(ctx); err != nil {
			return err
		}
		slog.Info("notification cleared", "path", *path)
		return nil
	}

	message, err := readMessage(fs.Args(), stdin)
	if err != nil {
		return err
	}

	if err := svc.Publish(ctx, message); err != nil {
		return err
	}
	slog.Info("notification published", "path", *path, "bytes", len(message))
	return nil
}

// readMessage joins positional arguments with spaces, or reads stdin when there are none.
func readMessage(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return "", errors.New("no message given: pass it as arguments or on stdin")
	}
	return string(data), nil
}
