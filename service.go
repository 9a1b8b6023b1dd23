package pico

// ServiceProvider is one service a module registers once its Init call
// succeeds.
type ServiceProvider struct {
	Name     string
	Instance any
}

// ServiceDependency is one service a module needs present in the
// AppContext's registry. A missing Required dependency fails startup; a
// missing optional one is left for the module to handle at runtime.
type ServiceDependency struct {
	Name     string
	Required bool
}
