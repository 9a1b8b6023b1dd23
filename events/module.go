package events

import (
	"context"

	"github.com/archbell/picoframework"
)

// ModuleName is the registration name the AppContext uses for the events
// service and for dependency declarations from other modules.
const ModuleName = "events"

// ServiceName is the name Module registers its *Manager under.
const ServiceName = "events.manager"

// Module wires a Manager into an AppContext as a pico.Module: it
// registers Config, builds the Manager on Init, and starts/stops its
// dispatcher loop with the application lifecycle.
type Module struct {
	cfg     Config
	manager *Manager
}

// New creates an unconfigured events Module; RegisterConfig/Init populate it.
func New() *Module { return &Module{} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) RegisterConfig(app *pico.AppContext) error {
	app.RegisterConfigSection(ModuleName, &m.cfg)
	return nil
}

func (m *Module) Init(app *pico.AppContext) error {
	m.manager = NewManager(m.cfg.QueueLength, app.Logger())
	return nil
}

func (m *Module) ProvidesServices() []pico.ServiceProvider {
	return []pico.ServiceProvider{{Name: ServiceName, Instance: m.manager}}
}

func (m *Module) RequiresServices() []pico.ServiceDependency { return nil }

func (m *Module) Start(ctx context.Context) error {
	return m.manager.Start(ctx)
}

func (m *Module) Stop(ctx context.Context) error {
	return m.manager.Stop(ctx)
}

// Manager exposes the module's underlying EventManager once Init has run.
func (m *Module) Manager() *Manager { return m.manager }
