package httprouter

import (
	"context"

	"github.com/archbell/picoframework"
)

const (
	// ModuleName is the registration name the AppContext uses for the
	// router service and for dependency declarations from other modules.
	ModuleName = "httprouter"
	// ServiceName is the name Module registers its *Router under.
	ServiceName = "httprouter.router"
)

// Module wires a Router into the application lifecycle so it can be
// resolved by name -- by httpserver.Module, by controllers registering
// routes in their own Init, or by a reference application.
type Module struct {
	router *Router
}

// NewModule creates an unconfigured httprouter Module.
func NewModule() *Module { return &Module{} }

func (m *Module) Name() string { return ModuleName }

func (m *Module) Init(app *pico.AppContext) error {
	m.router = New()
	return nil
}

func (m *Module) ProvidesServices() []pico.ServiceProvider {
	return []pico.ServiceProvider{{Name: ServiceName, Instance: m.router}}
}

func (m *Module) RequiresServices() []pico.ServiceDependency { return nil }

// Router returns the underlying Router, for route-registering code that
// holds the Module directly rather than resolving the service by name.
func (m *Module) Router() *Router { return m.router }
