package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/internal/validation"
)

// ErrNoPoints штрих без точек
var ErrNoPoints = errors.New("no points given")

func (c *Cli) runDraw(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("draw", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	tool := fs.String("tool", string(models.ToolBrush), "Tool: brush or eraser")
	color := fs.String("color", "", "Stroke color, defaults to the user color")
	width := fs.Float64("width", models.DefaultStrokeWidth, "Stroke width")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid draw arguments: %w", err)
	}

	meta := models.StrokeMeta{Tool: models.Tool(*tool), Color: *color, StrokeWidth: *width}
	if !meta.Tool.Valid() {
		return fmt.Errorf("%w: %s", models.ErrInvalidTool, *tool)
	}
	if err := validation.ValidateColor(meta.Color); err != nil {
		return err
	}

	fields := fs.Args()
	if len(fields) == 0 {
		// Точки можно передать через stdin
		line, err := c.io.ReadInput("Points (x,y x,y ...): ")
		if err != nil {
			return fmt.Errorf("failed to read points: %w", err)
		}
		fields = strings.Fields(line)
	}

	points, err := ParsePoints(fields)
	if err != nil {
		return err
	}

	op, err := c.session.DrawStroke(ctx, meta, points)
	if err != nil {
		return fmt.Errorf("failed to draw stroke: %w", err)
	}

	c.io.Println("✓ Stroke confirmed")
	c.io.Printf("  ID:     %s\n", op.ID)
	c.io.Printf("  Seq:    %d\n", op.Seq)
	c.io.Printf("  Tool:   %s\n", op.Tool)
	c.io.Printf("  Color:  %s\n", op.Color)
	c.io.Printf("  Points: %d\n", len(op.Points))
	return nil
}

// ParsePoints разбирает точки вида "x,y"
func ParsePoints(fields []string) ([]models.Point, error) {
	if len(fields) == 0 {
		return nil, ErrNoPoints
	}

	points := make([]models.Point, 0, len(fields))
	for _, f := range fields {
		xs, ys, ok := strings.Cut(f, ",")
		if !ok {
			return nil, fmt.Errorf("invalid point %q: expected x,y", f)
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", f, err)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, fmt.Errorf("invalid point %q: %w", f, err)
		}

		p := models.Point{X: x, Y: y}
		if !p.Valid() {
			return nil, fmt.Errorf("%w: %q", models.ErrInvalidPoint, f)
		}
		points = append(points, p)
	}
	return points, nil
}
