package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/dmitrijs2005/garagebook/internal/config"
	"github.com/dmitrijs2005/garagebook/internal/filex"
	"github.com/dmitrijs2005/garagebook/internal/logging"
	"github.com/dmitrijs2005/garagebook/internal/services"
	"github.com/dmitrijs2005/garagebook/internal/storage"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	config  *config.Config
	garage  services.GarageService
	log     logging.Logger
	db      *sql.DB
	reader  *bufio.Reader
	out     io.Writer
	now     func() time.Time
	prompts bool
}

// NewApp opens the database named in c, loads the garage and returns an
// App reading commands from stdin.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	log := logging.New(c.LogBackend, c.LogLevel, os.Stderr)

	if dir := filepath.Dir(c.DatabasePath); dir != "." {
		if _, err := filex.EnsureDir(dir); err != nil {
			return nil, fmt.Errorf("database directory: %w", err)
		}
	}

	db, err := storage.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	svc := services.NewGarageService(storage.NewSnapshotStore(db, log), c.Thresholds(), log)
	if err := svc.Load(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{
		config:  c,
		garage:  svc,
		log:     log,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		now:     time.Now,
		prompts: isTerminal(int(os.Stdin.Fd())),
	}, nil
}

// Run starts the REPL and blocks until it ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if a.prompts {
		printlnFn("garagebook (type 'help' for commands)")
	}
	runREPL(ctx, a, a.promptText, a.reader)
}

// Close releases the database.
func (a *App) Close() {
	if a.db == nil {
		return
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn(context.Background(), "closing database", "error", err)
	}
	a.db = nil
}

// promptText is the REPL prompt, empty when input is not a terminal.
func (a *App) promptText() string {
	if !a.prompts {
		return ""
	}
	v, err := a.garage.Active()
	if err != nil {
		return "garage> "
	}
	return fmt.Sprintf("garage (%s)> ", v.Label())
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
