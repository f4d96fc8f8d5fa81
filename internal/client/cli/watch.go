package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	clientsync "github.com/iudanet/gophdraw/internal/client/sync"
)

// runWatch печатает события комнаты до отмены ctx или до --count событий
func (c *Cli) runWatch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("watch", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	count := fs.Int("count", 0, "Stop after N events (0 - until interrupted)")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid watch arguments: %w", err)
	}

	c.io.Printf("=== Watching room %s ===\n", c.room)
	c.printSummary()

	events := c.session.Events()
	for seen := 0; *count == 0 || seen < *count; seen++ {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			c.printEvent(ev)
		}
	}
	return nil
}

func (c *Cli) printEvent(ev clientsync.Event) {
	switch ev.Type {
	case clientsync.EventCreated:
		op := ev.Operation
		c.io.Printf("[created] seq=%d id=%s author=%s tool=%s color=%s points=%d\n",
			op.Seq, op.ID, op.AuthorID, op.Tool, op.Color, len(op.Points))
		c.printSummary()
	case clientsync.EventRemoved:
		c.io.Printf("[removed] id=%s\n", ev.OperationID)
		c.printSummary()
	case clientsync.EventCleared:
		c.io.Println("[cleared]")
		c.printSummary()
	case clientsync.EventRoster:
		names := make([]string, 0, len(ev.Roster))
		for _, p := range ev.Roster {
			names = append(names, p.DisplayName)
		}
		sort.Strings(names)
		c.io.Printf("[roster] %d online: %s\n", len(names), strings.Join(names, ", "))
	case clientsync.EventCursor:
		c.io.Printf("[cursor] %s (%.1f, %.1f)\n", ev.Cursor.Name, ev.Cursor.X, ev.Cursor.Y)
	case clientsync.EventPreview:
		c.io.Printf("[preview] %d remote strokes in progress\n", c.session.Controller().PreviewCount())
	case clientsync.EventJoined:
		c.io.Println("[joined]")
		c.printSummary()
	case clientsync.EventDisconnected:
		c.io.Printf("[disconnected] %v\n", ev.Err)
	case clientsync.EventServerError:
		c.io.Printf("[error] %s\n", ev.Message)
	default:
		c.io.Printf("[%s]\n", ev.Type)
	}
}

func (c *Cli) printSummary() {
	ctrl := c.session.Controller()
	c.io.Printf("  canvas: %d confirmed, %d pending, %d previews\n",
		len(ctrl.Confirmed()), ctrl.PendingCount(), ctrl.PreviewCount())
}
