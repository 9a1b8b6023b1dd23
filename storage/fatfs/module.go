package fatfs

import (
	"context"

	"github.com/spf13/afero"

	"github.com/archbell/picoframework"
)

const (
	ModuleName  = "fatfs"
	ServiceName = "storage.sd"
)

// Module wires a Store over the real OS filesystem into the application
// lifecycle. Tests use NewStore with afero.NewMemMapFs() instead.
type Module struct {
	cfg   Config
	fs    afero.Fs
	store *Store
}

// New wires a Store backed by the real filesystem (afero.NewOsFs()).
func New() *Module { return &Module{fs: afero.NewOsFs()} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) RegisterConfig(app *pico.AppContext) error {
	app.RegisterConfigSection(ModuleName, &m.cfg)
	return nil
}

func (m *Module) Init(app *pico.AppContext) error {
	if m.fs == nil {
		m.fs = afero.NewOsFs()
	}
	m.store = NewStore(m.cfg, m.fs)
	return nil
}

func (m *Module) ProvidesServices() []pico.ServiceProvider {
	return []pico.ServiceProvider{{Name: ServiceName, Instance: m.store}}
}

func (m *Module) RequiresServices() []pico.ServiceDependency { return nil }

func (m *Module) Start(ctx context.Context) error { return m.store.Mount() }
func (m *Module) Stop(ctx context.Context) error  { return m.store.Unmount() }

func (m *Module) Store() *Store { return m.store }
