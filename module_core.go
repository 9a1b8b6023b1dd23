package pico

import "time"

// moduleRecord tracks one registered module's lifecycle state inside an
// AppContext: when it was registered, initialized and started, and its
// current status.
type moduleRecord struct {
	module        Module
	registeredAt  time.Time
	initializedAt *time.Time
	startedAt     *time.Time
	status        ModuleStatus
}

// ModuleStatus is the current lifecycle status of a registered module.
type ModuleStatus string

const (
	ModuleStatusRegistered  ModuleStatus = "registered"
	ModuleStatusInitialized ModuleStatus = "initialized"
	ModuleStatusStarted     ModuleStatus = "started"
	ModuleStatusStopped     ModuleStatus = "stopped"
	ModuleStatusError       ModuleStatus = "error"
)
