package events

// Config is the events module's configuration section, registered by
// Module.RegisterConfig and fed from YAML/TOML/env per spec.md §6.
type Config struct {
	// QueueLength is the EventManager's bounded queue capacity
	// (spec.md §6 EVENT_QUEUE_LENGTH).
	QueueLength int `yaml:"queueLength" toml:"queueLength" env:"EVENT_QUEUE_LENGTH" default:"8"`

	// CloudEventsSinkURL, if set, enables forwarding posted events to an
	// external collector as CloudEvents (supplemental feature).
	CloudEventsSinkURL string `yaml:"cloudEventsSinkURL" toml:"cloudEventsSinkURL" env:"EVENT_CLOUDEVENTS_SINK_URL"`
}
