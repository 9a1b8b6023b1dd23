package feeders

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// TomlFeeder is a feeder that reads a TOML file into a registered
// configuration section, matched by `toml` struct tags.
type TomlFeeder struct {
	Path string
}

// NewTomlFeeder creates a new TomlFeeder that reads from the given file.
func NewTomlFeeder(filePath string) TomlFeeder {
	return TomlFeeder{Path: filePath}
}

func (t TomlFeeder) Feed(structure interface{}) error {
	if _, err := os.Stat(t.Path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("toml feeder %s: %w", t.Path, err)
	}
	if _, err := toml.DecodeFile(t.Path, structure); err != nil {
		return fmt.Errorf("toml feeder %s: %w", t.Path, err)
	}
	return nil
}
