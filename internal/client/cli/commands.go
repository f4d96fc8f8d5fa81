package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"
)

func (c *Cli) runSimple(name string, send func() error) error {
	if err := send(); err != nil {
		return fmt.Errorf("failed to send %s: %w", name, err)
	}
	c.io.Printf("✓ %s sent to room %s\n", name, c.room)
	return nil
}

func (c *Cli) runPing(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("ping", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	count := fs.Int("count", 1, "Number of probes")
	interval := fs.Duration("interval", time.Second, "Delay between probes")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid ping arguments: %w", err)
	}
	if *count < 1 {
		*count = 1
	}

	var total time.Duration
	for i := 0; i < *count; i++ {
		if i > 0 && *interval > 0 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(*interval):
			}
		}

		rtt, pong, err := c.session.Ping(ctx)
		if err != nil {
			return fmt.Errorf("ping failed: %w", err)
		}
		total += rtt

		serverTime := time.UnixMilli(pong.ServerTs).UTC().Format(time.RFC3339Nano)
		c.io.Printf("pong: rtt=%s server_time=%s\n", rtt.Round(time.Microsecond), serverTime)
	}

	if *count > 1 {
		c.io.Printf("avg rtt=%s over %d probes\n", (total / time.Duration(*count)).Round(time.Microsecond), *count)
	}
	return nil
}
