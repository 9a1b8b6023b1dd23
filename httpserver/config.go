package httpserver

import "time"

// Config holds httpserver.Server's tunables, grounded on
// modules/httpserver/module.go's HTTPServerConfig shape and on spec.md
// §4.6's connection-level constants.
type Config struct {
	Host string `default:"0.0.0.0"`
	Port int    `default:"8080"`

	// ListenBacklog records original_source's TCP_LISTEN_BACKLOG. Server
	// does not apply it to the listener; the accept queue has the
	// operating system's default length.
	ListenBacklog int `default:"8"`

	// MaxConnections bounds the per-connection worker pool; an accepted
	// connection beyond this limit is refused outright.
	MaxConnections int `default:"16"`

	// ReceiveTimeout (original_source's HTTP_RECEIVE_TIMEOUT) sets one
	// read deadline, taken when the connection is accepted, for reading
	// the whole request; the deadline is not extended as bytes arrive.
	ReceiveTimeout time.Duration `default:"2s"`

	// IdleTimeout mirrors original_source's HTTP_IDLE_TIMEOUT. Keep-alive
	// is not implemented: every connection is closed right after its one
	// response. Server sets this as a read deadline just before that
	// close, so it does not delay or bound the close.
	IdleTimeout time.Duration `default:"500ms"`

	ShutdownTimeout time.Duration `default:"5s"`

	TLS *TLSConfig
}

// TLSConfig enables serving over TLS on the same listening socket; the
// parser/router do not distinguish plaintext from TLS connections.
type TLSConfig struct {
	Enabled  bool
	CertFile string `yaml:"cert_file" toml:"cert_file" env:"CERT_FILE"`
	KeyFile  string `yaml:"key_file" toml:"key_file" env:"KEY_FILE"`
}
