package flashfs

import (
	"context"

	"github.com/archbell/picoframework"
)

const (
	ModuleName  = "flashfs"
	ServiceName = "storage.flash"
)

// Module wires a Store into the application lifecycle.
type Module struct {
	cfg   Config
	store *Store
}

func New() *Module { return &Module{} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) RegisterConfig(app *pico.AppContext) error {
	app.RegisterConfigSection(ModuleName, &m.cfg)
	return nil
}

func (m *Module) Init(app *pico.AppContext) error {
	store, err := NewStore(m.cfg)
	if err != nil {
		return err
	}
	m.store = store
	return nil
}

func (m *Module) ProvidesServices() []pico.ServiceProvider {
	return []pico.ServiceProvider{{Name: ServiceName, Instance: m.store}}
}

func (m *Module) RequiresServices() []pico.ServiceDependency { return nil }

func (m *Module) Start(ctx context.Context) error { return m.store.Mount() }
func (m *Module) Stop(ctx context.Context) error  { return m.store.Unmount() }

func (m *Module) Store() *Store { return m.store }
