package scheduler

import (
	"context"

	"github.com/archbell/picoframework"
)

const (
	ModuleName  = "scheduler"
	ServiceName = "scheduler.timer"
)

// Module wires a TimerService into an AppContext.
type Module struct {
	cfg     Config
	service *TimerService
}

func New() *Module { return &Module{} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) RegisterConfig(app *pico.AppContext) error {
	app.RegisterConfigSection(ModuleName, &m.cfg)
	return nil
}

func (m *Module) Init(app *pico.AppContext) error {
	m.service = NewTimerService()
	return nil
}

func (m *Module) ProvidesServices() []pico.ServiceProvider {
	return []pico.ServiceProvider{{Name: ServiceName, Instance: m.service}}
}

func (m *Module) RequiresServices() []pico.ServiceDependency { return nil }

func (m *Module) Start(ctx context.Context) error { return m.service.Start(ctx) }
func (m *Module) Stop(ctx context.Context) error   { return m.service.Stop(ctx) }

// Service exposes the underlying TimerService once Init has run.
func (m *Module) Service() *TimerService { return m.service }
