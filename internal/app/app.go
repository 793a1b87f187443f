package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SuchitArtal/virtual-lab/internal/config"
	"github.com/SuchitArtal/virtual-lab/internal/db"
	"github.com/SuchitArtal/virtual-lab/internal/service"
	"github.com/SuchitArtal/virtual-lab/internal/store"
)

// App is the runtime container: configuration, the selected store and
// the three portal services.
type App struct {
	cfg config.Config
	log *logrus.Logger

	store     store.Store
	writeMu   sync.Mutex
	webRouter *gin.Engine

	Requests *service.RequestService
	Status   *service.StatusService
	Admin    *service.AdminService
}

func (a *App) GetConfig() config.Config { return a.cfg }
func (a *App) Logger() *logrus.Logger   { return a.log }

func (a *App) SetWebRouter(r *gin.Engine) { a.webRouter = r }

// New wires an App around an already-open store. Init is the production
// path; New exists so tests can inject a memory store directly.
func New(cfg config.Config, st store.Store) *App {
	a := &App{cfg: cfg, store: st}
	a.log = logrus.New()
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	a.wireServices()
	return a
}

// Init loads configuration, opens the configured store backend and
// wires the services. A storage failure here aborts startup.
func (a *App) Init() error {
	c, err := config.Load()
	if err != nil {
		return err
	}
	a.cfg = c

	a.log = logrus.New()
	a.log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if err := a.initStore(); err != nil {
		return err
	}
	a.wireServices()
	return nil
}

func (a *App) wireServices() {
	a.Requests = service.NewRequestService(a.store, &a.writeMu)
	a.Status = service.NewStatusService(a.store)
	a.Admin = service.NewAdminService(a.store, &a.writeMu, a.cfg.AdminUsername, a.cfg.AdminPassword)
}

func (a *App) initStore() error {
	switch a.cfg.StoreDriver {
	case "file", "":
		st, err := store.NewFile(a.cfg.DataFile)
		if err != nil {
			return err
		}
		// fail at startup, not on the first request, if the file is unusable
		if _, err := st.Load(context.Background()); err != nil {
			return fmt.Errorf("init data file: %w", err)
		}
		a.store = st

	case "memory":
		a.store = store.NewMemory()

	case "postgres":
		conn, err := db.Open(a.cfg.DB)
		if err != nil {
			return err
		}
		st := store.NewPostgres(conn)
		if err := st.EnsureSchema(context.Background()); err != nil {
			return err
		}
		a.store = st

	default:
		return fmt.Errorf("unknown store driver %q", a.cfg.StoreDriver)
	}

	a.log.WithField("driver", a.cfg.StoreDriver).Info("store initialized")
	return nil
}

func (a *App) Close() error {
	// nothing long-lived to tear down; the HTTP server is owned by main
	return nil
}
