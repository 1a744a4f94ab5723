package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/cursor-reset/cursor-reset/internal/message"
)

// Load reads the identity record at path. A missing, unreadable or corrupt
// document is treated as a first run and yields an empty record.
func Load(path string) Record {
	record, err := read(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			message.Debug("Identity record %s not found, starting from an empty record", path)
		} else {
			message.Debug("Ignoring unreadable identity record %s: %v", path, err)
		}
		return Record{}
	}
	return record
}

func read(path string) (Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
	decoder.UseNumber()

	var record Record
	if err := decoder.Decode(&record); err != nil {
		return nil, fmt.Errorf("failed to decode identity record: %w", err)
	}
	if record == nil {
		return nil, errors.New("identity record is not an object")
	}
	return record, nil
}
