package httpserver

import (
	"context"

	"github.com/archbell/picoframework"
	"github.com/archbell/picoframework/httprouter"
)

const (
	ModuleName  = "httpserver"
	ServiceName = "httpserver.server"

	// RouterServiceName is the name this module looks up to find the
	// httprouter.Router it should dispatch to. Register it (typically
	// from a module that owns application routes) before this module
	// starts.
	RouterServiceName = "httprouter.router"
)

// Module wires a Server into the application lifecycle: config section,
// router lookup, start/stop.
type Module struct {
	cfg    Config
	app    *pico.AppContext
	server *Server
}

// New creates an unconfigured httpserver Module.
func New() *Module { return &Module{} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) RegisterConfig(app *pico.AppContext) error {
	app.RegisterConfigSection(ModuleName, &m.cfg)
	return nil
}

// Init only stores app for Start; the router service is resolved in
// Start rather than Init, since Start only runs once every module has
// initialized (and so registered its services), regardless of the
// registration order Init ran in.
func (m *Module) Init(app *pico.AppContext) error {
	m.app = app
	return nil
}

func (m *Module) ProvidesServices() []pico.ServiceProvider {
	return []pico.ServiceProvider{{Name: ServiceName, Instance: m}}
}

func (m *Module) RequiresServices() []pico.ServiceDependency {
	return []pico.ServiceDependency{{Name: RouterServiceName, Required: true}}
}

func (m *Module) Start(ctx context.Context) error {
	router, err := pico.GetService[*httprouter.Router](m.app, RouterServiceName)
	if err != nil {
		return err
	}
	m.server = New(m.cfg, router, m.app.Logger())
	return m.server.Start(ctx)
}

func (m *Module) Stop(ctx context.Context) error { return m.server.Stop(ctx) }

// Server returns the underlying httpserver.Server, for tests and
// reference apps that want direct access.
func (m *Module) Server() *Server { return m.server }
