package cli

import (
	"context"
	"fmt"
)

// runLog печатает лог комнаты из локального кэша без подключения к серверу
func (c *Cli) runLog(ctx context.Context) error {
	ops, err := c.cache.GetLog(ctx, c.room)
	if err != nil {
		return fmt.Errorf("failed to read local log: %w", err)
	}

	c.io.Printf("=== Cached log of room %s ===\n", c.room)
	c.io.Println()

	if len(ops) == 0 {
		c.io.Println("No operations cached. Run 'gophdraw watch' to sync the room.")
		return nil
	}

	for _, op := range ops {
		c.io.Printf("%6d  %s  %-6s  %-8s  w=%-4g  points=%d  author=%s\n",
			op.Seq, op.ID, op.Tool, op.Color, op.StrokeWidth, len(op.Points), op.AuthorID)
	}
	c.io.Println()
	c.io.Printf("Total: %d operations\n", len(ops))
	return nil
}

func (c *Cli) runRooms(ctx context.Context) error {
	rooms, err := c.rooms.Rooms(ctx)
	if err != nil {
		return fmt.Errorf("failed to list rooms: %w", err)
	}

	c.io.Println("=== Active rooms ===")
	if len(rooms) == 0 {
		c.io.Println("No rooms.")
		return nil
	}
	for _, name := range rooms {
		c.io.Println("  " + name)
	}
	return nil
}
