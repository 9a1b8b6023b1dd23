package feeders

import (
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
)

// JSONFeeder is a feeder that reads a JSON file into a registered
// configuration section, using the same jsoniter codec the model package
// uses for record storage.
type JSONFeeder struct {
	Path string
}

// NewJSONFeeder creates a new JSONFeeder that reads from the given file.
func NewJSONFeeder(filePath string) JSONFeeder {
	return JSONFeeder{Path: filePath}
}

func (j JSONFeeder) Feed(structure interface{}) error {
	data, err := os.ReadFile(j.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("json feeder %s: %w", j.Path, err)
	}
	if err := jsoniter.ConfigCompatibleWithStandardLibrary.Unmarshal(data, structure); err != nil {
		return fmt.Errorf("json feeder %s: %w", j.Path, err)
	}
	return nil
}
