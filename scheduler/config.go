package scheduler

// Config is the scheduler module's configuration section.
type Config struct {
	// TimeZone is loaded with the section but not applied: TimeOfDay-based
	// schedules are always interpreted in the process's local time.
	TimeZone string `yaml:"timeZone" toml:"timeZone" env:"SCHEDULER_TIMEZONE"`
}
