package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/regvault/internal/auth"
	"github.com/dmitrijs2005/regvault/internal/config"
	"github.com/dmitrijs2005/regvault/internal/drafts"
	"github.com/dmitrijs2005/regvault/internal/lockout"
	"github.com/dmitrijs2005/regvault/internal/logging"
	"github.com/dmitrijs2005/regvault/internal/storage"
	"github.com/dmitrijs2005/regvault/internal/users"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// App wires the services together and carries the interactive session
// state (the currently signed-in user).
type App struct {
	config      *config.Config
	authService *auth.Service
	tracker     *lockout.Tracker
	drafts      *drafts.Service
	user        *users.User
	log         logging.Logger
	reader      *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {

	ctx := context.Background()

	db, err := storage.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	deviceKey, err := storage.LoadOrCreateDeviceKey(c.DeviceKeyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load device key: %w", err)
	}

	repos := storage.NewRepositories(db)
	gateway := storage.NewGateway(repos, deviceKey, log)

	directory, err := newDirectory(c)
	if err != nil {
		return nil, err
	}

	return &App{
		config:      c,
		authService: auth.NewService(directory, gateway, log),
		tracker:     lockout.NewTrackerWithPolicy(gateway, c.MaxLoginAttempts, c.LockoutDuration),
		drafts:      drafts.NewService(gateway),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

// newDirectory selects the user directory backend: the shared Postgres
// directory when a DSN is configured, otherwise the in-process one.
func newDirectory(c *config.Config) (users.Repository, error) {
	if c.PostgresDSN == "" {
		return users.NewMemoryRepository(), nil
	}
	db, err := sql.Open("pgx", c.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open user directory: %w", err)
	}
	return users.NewPostgresRepository(db), nil
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.user != nil
}
