package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/gophdraw/internal/client/iocli"
	"github.com/iudanet/gophdraw/internal/client/reconcile"
	clientsync "github.com/iudanet/gophdraw/internal/client/sync"
	"github.com/iudanet/gophdraw/internal/models"
	"github.com/iudanet/gophdraw/pkg/api"
)

// DefaultJoinTimeout сколько ждать входа в комнату перед командой
const DefaultJoinTimeout = 10 * time.Second

// ErrUnknownCommand команда не распознана
var ErrUnknownCommand = errors.New("unknown command")

//go:generate moq -out cli_mock.go . Session LogReader RoomLister

// Session подключение к комнате
type Session interface {
	Run(ctx context.Context) error
	WaitJoined(ctx context.Context) (models.UserProfile, error)
	DrawStroke(ctx context.Context, meta models.StrokeMeta, points []models.Point) (*models.Operation, error)
	Undo() error
	Redo() error
	Clear() error
	Ping(ctx context.Context) (time.Duration, api.Pong, error)
	Events() <-chan clientsync.Event
	Controller() *reconcile.Controller
}

// LogReader локальный кэш подтвержденного лога
type LogReader interface {
	GetLog(ctx context.Context, room string) ([]*models.Operation, error)
}

// RoomLister список комнат сервера
type RoomLister interface {
	Rooms(ctx context.Context) ([]string, error)
}

type Cli struct {
	io          iocli.IO
	session     Session
	cache       LogReader
	rooms       RoomLister
	room        string
	joinTimeout time.Duration
}

func New(io iocli.IO, session Session, cache LogReader, rooms RoomLister, room string) *Cli {
	return &Cli{
		io:          io,
		session:     session,
		cache:       cache,
		rooms:       rooms,
		room:        room,
		joinTimeout: DefaultJoinTimeout,
	}
}

// Run выполняет команду. Команды, которым нужна комната, сначала подключаются к ней.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "log":
		return c.runLog(ctx)
	case "rooms":
		return c.runRooms(ctx)
	case "draw", "watch", "undo", "redo", "clear", "ping":
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- c.session.Run(ctx) }()

	if err := c.join(ctx, done); err != nil {
		return err
	}

	switch command {
	case "draw":
		return c.runDraw(ctx, args)
	case "watch":
		return c.runWatch(ctx, args)
	case "undo":
		return c.runSimple("Undo", c.session.Undo)
	case "redo":
		return c.runSimple("Redo", c.session.Redo)
	case "clear":
		return c.runSimple("Clear", c.session.Clear)
	default:
		return c.runPing(ctx, args)
	}
}

// join ждет sessionInit; Run, завершившийся раньше, возвращает свою ошибку
func (c *Cli) join(ctx context.Context, done <-chan error) error {
	joinCtx, cancel := context.WithTimeout(ctx, c.joinTimeout)
	defer cancel()

	joined := make(chan error, 1)
	go func() {
		_, err := c.session.WaitJoined(joinCtx)
		joined <- err
	}()

	select {
	case err := <-joined:
		if err != nil {
			return fmt.Errorf("failed to join room %q: %w", c.room, err)
		}
		return nil
	case err := <-done:
		return fmt.Errorf("connection closed: %w", err)
	}
}

func PrintUsage(out iocli.IO) {
	out.Println("GophDraw Client")
	out.Println()
	out.Println("Usage:")
	out.Println("  gophdraw [OPTIONS] COMMAND [ARGS]")
	out.Println()
	out.Println("Options:")
	out.Println("  --version       Show version information")
	out.Println("  --server URL    Server URL (default: http://localhost:8080)")
	out.Println("  --room NAME     Room name (default: main)")
	out.Println("  --name NAME     Display name (default: Guest-xxxx from server)")
	out.Println("  --db PATH       Path to local cache (default: gophdraw-client.db)")
	out.Println()
	out.Println("Commands:")
	out.Println("  draw [--tool brush|eraser] [--color HEX] [--width N] X,Y ...")
	out.Println("                  Draw a stroke and wait for the server to confirm it")
	out.Println("  watch [--count N]")
	out.Println("                  Stream room events and print the canvas summary")
	out.Println("  undo            Undo the last operation in the room")
	out.Println("  redo            Redo the last undone operation")
	out.Println("  clear           Clear the canvas for everyone")
	out.Println("  ping [--count N]")
	out.Println("                  Measure round trip time to the server")
	out.Println("  log             Print the locally cached log (works offline)")
	out.Println("  rooms           List active rooms on the server")
	out.Println()
	out.Println("Examples:")
	out.Println("  gophdraw --room design draw 0,0 10,10 20,5")
	out.Println("  gophdraw draw --tool eraser --width 12 5,5 6,6")
	out.Println("  gophdraw --room design watch")
	out.Println("  gophdraw --server https://draw.example.com ping --count 3")
}
