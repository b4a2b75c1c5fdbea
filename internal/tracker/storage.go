package tracker

import (
	"encoding/json"
	"fmt"

	"github.com/balkashynov/quant/internal/models"
)

// Serialize encodes the log as a JSON array with ISO-8601 begin/end values
func Serialize(records []models.Record) ([]byte, error) {
	if records == nil {
		records = []models.Record{}
	}
	return json.Marshal(records)
}

// Revive decodes a stored log back into records with begin/end as time values.
// Null numbers or dates from older exports come back as zero values.
func Revive(raw string) ([]models.Record, error) {
	records := []models.Record{}
	if raw == "" {
		return records, nil
	}
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.Record{} // stored "null"
	}
	return records, nil
}

// load reads and revives the persisted log; a missing key means an empty log
func (t *Tracker) load() error {
	raw, ok, err := t.store.Get(t.namespace)
	if err != nil {
		return fmt.Errorf("failed to load log: %w", err)
	}
	if !ok {
		return nil
	}

	records, err := Revive(raw)
	if err != nil {
		return fmt.Errorf("failed to revive log %q: %w", t.namespace, err)
	}
	t.log = records

	t.logger.Debug("log loaded", "namespace", t.namespace, "records", len(records))
	return nil
}

// persist writes the whole log under the namespace key, empty or not
func (t *Tracker) persist() error {
	data, err := Serialize(t.log)
	if err != nil {
		return fmt.Errorf("failed to serialize log: %w", err)
	}
	if err := t.store.Set(t.namespace, string(data)); err != nil {
		return fmt.Errorf("failed to persist log: %w", err)
	}
	return nil
}
