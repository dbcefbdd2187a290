// Package cli is the interactive front end of the ECG client: a REPL over
// the session store and the typed API wrappers. All validation that can be
// done without a network call (file types, sizes, password rules) happens
// here, before anything reaches the gateway.
package cli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/asaskevich/EventBus"

	"github.com/dmitrijs2005/ecgdesk/internal/client/api"
	"github.com/dmitrijs2005/ecgdesk/internal/client/config"
	"github.com/dmitrijs2005/ecgdesk/internal/client/models"
	"github.com/dmitrijs2005/ecgdesk/internal/client/repositories/credentials"
	"github.com/dmitrijs2005/ecgdesk/internal/client/session"
	"github.com/dmitrijs2005/ecgdesk/internal/common"
	"github.com/dmitrijs2005/ecgdesk/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionManager is the slice of the session store the CLI needs.
// Tests provide fakes.
type sessionManager interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Register(ctx context.Context, email, password, fullName string) (*models.User, error)
	Logout(ctx context.Context)
	State() session.State
	Identity() *models.User
	Busy() bool
}

type recordsClient interface {
	Upload(ctx context.Context, name string, file io.Reader) (*models.ECGRecord, error)
	List(ctx context.Context) ([]models.ECGRecord, error)
	Get(ctx context.Context, id int64) (*models.ECGRecord, error)
	Delete(ctx context.Context, id int64) error
	Preview(ctx context.Context, id int64) (json.RawMessage, error)
}

type processingClient interface {
	Start(ctx context.Context, recordID int64, options map[string]any) (*models.ProcessingJob, error)
	Job(ctx context.Context, jobID string) (*models.ProcessingJob, error)
	Results(ctx context.Context, recordID int64) ([]models.ProcessingResult, error)
	Status(ctx context.Context, recordID int64) (json.RawMessage, error)
	Reprocess(ctx context.Context, recordID int64) (*models.ProcessingJob, error)
}

type exportClient interface {
	Export(ctx context.Context, req models.ExportRequest) (*models.ExportResponse, error)
	Download(ctx context.Context, filename string) ([]byte, error)
	Formats(ctx context.Context) (json.RawMessage, error)
}

type App struct {
	config     *config.Config
	session    sessionManager
	records    recordsClient
	processing processingClient
	export     exportClient
	bus        EventBus.Bus
	reader     *bufio.Reader
	log        logging.Logger
}

// NewApp wires the whole client: credential database, event bus, session
// store, gateway, and the endpoint wrappers built on top of it.
func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.InitDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing credential database: %w", err)
	}

	repo := credentials.NewSQLiteRepository(db)
	bus := EventBus.New()
	store := session.New(repo, bus, log)

	gw := api.NewGateway(cfg.BaseURL, cfg.RequestTimeout, store, repo, store, log)
	store.BindAuth(api.NewAuthAPI(gw))

	app := &App{
		config:     cfg,
		session:    store,
		records:    api.NewRecordsAPI(gw),
		processing: api.NewProcessingAPI(gw),
		export:     api.NewExportAPI(gw),
		bus:        bus,
		reader:     bufio.NewReader(os.Stdin),
		log:        log,
	}

	// The "redirect to login" of the browser client: the REPL just tells
	// the user and the next prompt offers the unauthenticated command set.
	if err := bus.Subscribe(common.EventSessionInvalidated, app.onSessionInvalidated); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *App) onSessionInvalidated() {
	printlnFn("Session expired, please log in again.")
}

func (a *App) isLoggedIn() bool {
	return a.session.State() == session.StateAuthenticated
}
