// Command jdwpdial connects to a JDWP target, requests its version string,
// subscribes to class-prepare and thread-lifecycle events, and prints them
// as they arrive until interrupted.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/javabrew/jdwp/internal/dialconfig"
	"github.com/javabrew/jdwp/jdwp"
)

var (
	eventStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render(err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "jdwpdial",
		Short:         "Dial a JDWP target and tail its events",
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runDial,
	}
	dialconfig.AddFlags(cmd.Flags())
	return cmd
}

func runDial(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	opts, err := dialconfig.Load(configPath, cmd.Flags())
	if err != nil {
		return err
	}

	zapLevel := zap.NewAtomicLevel()
	if opts.Verbosity > 0 {
		zapLevel.SetLevel(zap.DebugLevel)
	}
	zapCfg := zap.NewDevelopmentConfig()
	zapCfg.Level = zapLevel
	zapLog, err := zapCfg.Build()
	if err != nil {
		return fmt.Errorf("jdwpdial: building logger: %w", err)
	}
	defer zapLog.Sync()
	log := zapr.NewLogger(zapLog)

	signal.Ignore(syscall.SIGPIPE)
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	conn, err := dialWithRetry(ctx, opts.Address(), log)
	if err != nil {
		return err
	}
	defer conn.Close()

	conn.RegisterEventHandler(jdwp.HandlerFunc(func(ev jdwp.Event) {
		printEvent(ev)
	}))

	id, err := conn.SendMessage(jdwp.VMVersion())
	if err != nil {
		return fmt.Errorf("jdwpdial: requesting version: %w", err)
	}
	body, err := conn.AwaitReply(ctx, id)
	if err != nil {
		return fmt.Errorf("jdwpdial: reading version reply: %w", err)
	}
	fmt.Println(eventStyle.Render("connected"), "reply bytes:", len(body))

	for _, kind := range []jdwp.EventKind{jdwp.EventClassPrepare, jdwp.EventThreadStart, jdwp.EventThreadDeath} {
		reqID, err := conn.SendMessage(jdwp.EventRequestSet(conn.IDSizes(), kind, jdwp.SuspendNone, nil))
		if err != nil {
			return fmt.Errorf("jdwpdial: requesting %s events: %w", kind, err)
		}
		if _, err := conn.AwaitReply(ctx, reqID); err != nil {
			return fmt.Errorf("jdwpdial: enabling %s events: %w", kind, err)
		}
	}

	<-ctx.Done()
	fmt.Println("shutting down")
	return nil
}

func dialWithRetry(ctx context.Context, address string, log logr.Logger) (*jdwp.Connection, error) {
	bo := backoff.WithContext(backoff.NewExponentialBackOff(), ctx)
	var conn *jdwp.Connection
	op := func() error {
		c, err := jdwp.Open(ctx, address, jdwp.Options{Logger: log})
		if err != nil {
			log.Info("dial attempt failed, retrying", "address", address, "error", err.Error())
			return err
		}
		conn = c
		return nil
	}
	if err := backoff.Retry(op, bo); err != nil {
		return nil, fmt.Errorf("jdwpdial: dialing %s: %w", address, err)
	}
	return conn, nil
}

func printEvent(ev jdwp.Event) {
	switch e := ev.(type) {
	case jdwp.ClassPrepareEvent:
		fmt.Println(eventStyle.Render("class-prepare"), e.Signature)
	case jdwp.ThreadStartEvent:
		fmt.Println(eventStyle.Render("thread-start"), e.Thread)
	case jdwp.ThreadDeathEvent:
		fmt.Println(eventStyle.Render("thread-death"), e.Thread)
	case jdwp.VMDeathEvent:
		fmt.Println(eventStyle.Render("vm-death"))
	default:
		fmt.Println(eventStyle.Render(ev.Kind().String()), time.Now().Format(time.RFC3339))
	}
}
