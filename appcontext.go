package pico

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/archbell/picoframework/config"
)

// AppContext hosts the registered modules of one PicoFramework process: it
// runs the RegisterConfig -> Init -> Start lifecycle in dependency order
// and back the other way for Stop, and carries the name-keyed service
// registry modules use to reach each other. It plays the role both of the
// teacher's modular.Application and of the original firmware's
// AppContext/FrameworkManager pair, deliberately without the teacher's
// reflection-based constructor injection or multi-tenant config scoping —
// an 8-32KB-RAM target has one tenant and one config tree.
type AppContext struct {
	mu       sync.RWMutex
	logger   Logger
	loader   *config.Loader
	modules  map[string]*moduleRecord
	order    []string
	services map[string]any
	sections []*config.Section
	cancel   context.CancelFunc
}

// NewAppContext creates an AppContext. loader may be nil if no module
// registers a config section.
func NewAppContext(logger Logger, loader *config.Loader) *AppContext {
	return &AppContext{
		logger:   logger,
		loader:   loader,
		modules:  make(map[string]*moduleRecord),
		services: make(map[string]any),
	}
}

// Logger returns the application logger.
func (a *AppContext) Logger() Logger { return a.logger }

// RegisterModule adds a module to the application. Must be called before
// Run.
func (a *AppContext) RegisterModule(m Module) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.modules[m.Name()]; !exists {
		a.order = append(a.order, m.Name())
	}
	a.modules[m.Name()] = &moduleRecord{module: m, registeredAt: time.Now(), status: ModuleStatusRegistered}
}

// RegisterConfigSection registers target (a pointer to a config struct) to
// be fed by the application's config.Loader before any module's Init runs.
// Called from a module's RegisterConfig.
func (a *AppContext) RegisterConfigSection(name string, target any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.sections = append(a.sections, &config.Section{Name: name, Target: target})
}

// RegisterService adds a named service to the registry. Returns
// ErrServiceAlreadyRegistered on name collision.
func (a *AppContext) RegisterService(name string, instance any) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, exists := a.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrServiceAlreadyRegistered, name)
	}
	a.services[name] = instance
	return nil
}

// Service looks up a named service.
func (a *AppContext) Service(name string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.services[name]
	return v, ok
}

// GetService resolves a named service, asserting it satisfies T.
func GetService[T any](a *AppContext, name string) (T, error) {
	var zero T
	v, ok := a.Service(name)
	if !ok {
		return zero, fmt.Errorf("%w: %s", ErrServiceNotFound, name)
	}
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s wanted for service %q", ErrServiceWrongType, name, name)
	}
	return t, nil
}

// Run executes the full lifecycle: RegisterConfig, config load, Init (in
// dependency order), service registration and required-service checks,
// Start (in dependency order), then blocks until ctx is cancelled and
// stops every Stoppable module in reverse dependency order.
func (a *AppContext) Run(ctx context.Context) error {
	sorted, err := a.orderedModules()
	if err != nil {
		return err
	}

	for _, m := range sorted {
		if c, ok := m.(Configurable); ok {
			if err := c.RegisterConfig(a); err != nil {
				return fmt.Errorf("register config %s: %w", m.Name(), err)
			}
		}
	}
	if a.loader != nil && len(a.sections) > 0 {
		if err := a.loader.Load(a.sections...); err != nil {
			return err
		}
	}

	for _, m := range sorted {
		if err := m.Init(a); err != nil {
			a.setStatus(m.Name(), ModuleStatusError)
			return fmt.Errorf("init %s: %w", m.Name(), err)
		}
		a.markInitialized(m.Name())
		if sa, ok := m.(ServiceAware); ok {
			for _, svc := range sa.ProvidesServices() {
				if err := a.RegisterService(svc.Name, svc.Instance); err != nil {
					return fmt.Errorf("init %s: %w", m.Name(), err)
				}
			}
		}
		a.logger.Debug("module initialized", "module", m.Name())
	}

	for _, m := range sorted {
		sa, ok := m.(ServiceAware)
		if !ok {
			continue
		}
		for _, dep := range sa.RequiresServices() {
			if _, ok := a.Service(dep.Name); !ok && dep.Required {
				return fmt.Errorf("%w: module %s requires service %s", ErrRequiredServiceNotFound, m.Name(), dep.Name)
			}
		}
	}

	runCtx, cancel := context.WithCancel(ctx)
	a.mu.Lock()
	a.cancel = cancel
	a.mu.Unlock()

	started := make([]Module, 0, len(sorted))
	for _, m := range sorted {
		if s, ok := m.(Startable); ok {
			if err := s.Start(runCtx); err != nil {
				cancel()
				a.stopStarted(context.Background(), started)
				return fmt.Errorf("start %s: %w", m.Name(), err)
			}
			a.markStarted(m.Name())
		}
		started = append(started, m)
		a.logger.Info("module started", "module", m.Name())
	}

	<-runCtx.Done()
	return a.stopStarted(context.Background(), started)
}

// Stop cancels the application's lifecycle context, unblocking Run so it
// can drive Stop on every started module.
func (a *AppContext) Stop() {
	a.mu.RLock()
	cancel := a.cancel
	a.mu.RUnlock()
	if cancel != nil {
		cancel()
	}
}

func (a *AppContext) stopStarted(ctx context.Context, started []Module) error {
	var first error
	for i := len(started) - 1; i >= 0; i-- {
		m := started[i]
		if s, ok := m.(Stoppable); ok {
			if err := s.Stop(ctx); err != nil {
				a.logger.Error("module stop failed", "module", m.Name(), "error", err)
				if first == nil {
					first = fmt.Errorf("stop %s: %w", m.Name(), err)
				}
				continue
			}
		}
		a.setStatus(m.Name(), ModuleStatusStopped)
	}
	return first
}

func (a *AppContext) setStatus(name string, status ModuleStatus) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if rec, ok := a.modules[name]; ok {
		rec.status = status
	}
}

func (a *AppContext) markInitialized(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if rec, ok := a.modules[name]; ok {
		now := time.Now()
		rec.initializedAt = &now
		rec.status = ModuleStatusInitialized
	}
}

func (a *AppContext) markStarted(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if rec, ok := a.modules[name]; ok {
		now := time.Now()
		rec.startedAt = &now
		rec.status = ModuleStatusStarted
	}
}

// orderedModules performs a Kahn's-algorithm topological sort over
// DependencyAware.Dependencies(), falling back to registration order among
// modules with no dependency relationship so startup is deterministic.
func (a *AppContext) orderedModules() ([]Module, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	indegree := make(map[string]int, len(a.order))
	dependents := make(map[string][]string, len(a.order))
	for _, name := range a.order {
		indegree[name] = 0
	}
	for _, name := range a.order {
		rec := a.modules[name]
		da, ok := rec.module.(DependencyAware)
		if !ok {
			continue
		}
		for _, dep := range da.Dependencies() {
			if _, exists := a.modules[dep]; !exists {
				return nil, fmt.Errorf("%w: %s -> %s", ErrModuleDependencyMissing, name, dep)
			}
			dependents[dep] = append(dependents[dep], name)
			indegree[name]++
		}
	}

	var ready []string
	for _, name := range a.order {
		if indegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	sorted := make([]Module, 0, len(a.order))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		sorted = append(sorted, a.modules[name].module)
		for _, dependent := range dependents[name] {
			indegree[dependent]--
			if indegree[dependent] == 0 {
				ready = append(ready, dependent)
			}
		}
	}

	if len(sorted) != len(a.order) {
		return nil, ErrCircularDependency
	}
	return sorted, nil
}
