// Package pico is the ambient core of a PicoFramework application: the
// Module lifecycle contract, the service registry, configuration and
// logging collaborators, and the AppContext that drives them. Domain
// packages (events, scheduler, httprouter, httpserver and the storage
// back-ends fatfs and flashfs) each provide a Module and are wired
// together by one AppContext per process,
// the same shape the teacher's modular.Application gives a web service.
//
// Basic usage:
//
//	app := pico.NewAppContext(logger, nil)
//	app.RegisterModule(&httpserver.Module{})
//	if err := app.Run(context.Background()); err != nil {
//		log.Fatal(err)
//	}
package pico

import "context"

// Module represents a registrable component in the application. All
// modules must implement this interface to be managed by an AppContext.
type Module interface {
	// Name returns the unique identifier for this module. Used for
	// dependency resolution and service registration.
	Name() string

	// Init initializes the module with the application context. Called
	// after all modules are registered and configuration is loaded, in
	// dependency order.
	Init(app *AppContext) error
}

// Configurable is implemented by modules that register a configuration
// section with the application before Init is called.
type Configurable interface {
	// RegisterConfig registers this module's configuration section,
	// typically via app.RegisterConfigSection(m.Name(), &cfg).
	RegisterConfig(app *AppContext) error
}

// DependencyAware is implemented by modules that depend on other modules
// by name. The AppContext initializes and starts dependencies first, and
// stops them last, in reverse order.
type DependencyAware interface {
	// Dependencies returns the names of modules this module depends on.
	// A missing dependency fails application startup.
	Dependencies() []string
}

// ServiceAware is implemented by modules that provide or require named
// services, the loose-coupling mechanism modules use instead of importing
// each other directly.
type ServiceAware interface {
	// ProvidesServices lists services this module registers once Init
	// returns successfully.
	ProvidesServices() []ServiceProvider

	// RequiresServices lists services this module needs present in the
	// registry by the time Start runs, after every module's Init.
	RequiresServices() []ServiceDependency
}

// Startable is implemented by modules with runtime operations to begin
// once every module has initialized successfully.
type Startable interface {
	// Start begins the module's runtime operations, in dependency order.
	// ctx is the application's lifecycle context; Start should return
	// promptly, spawning goroutines for anything long-running.
	Start(ctx context.Context) error
}

// Stoppable is implemented by modules needing graceful shutdown, called
// in reverse dependency order.
type Stoppable interface {
	// Stop performs shutdown, respecting ctx's deadline.
	Stop(ctx context.Context) error
}

// ModuleRegistry is a registry of modules keyed by name.
type ModuleRegistry map[string]Module
