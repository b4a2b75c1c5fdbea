package tracker

import (
	"slices"
	"time"

	"github.com/balkashynov/quant/internal/models"
)

// Start begins timing a new record. While another record is active it
// returns that record together with ErrAlreadyActive and changes nothing.
func (t *Tracker) Start(name, sector string) (models.Record, error) {
	if active, ok := t.Active(); ok {
		t.logger.Debug("start ignored, task already active", "id", active.ID, "name", active.Name)
		return active, ErrAlreadyActive
	}

	prev := slices.Clone(t.log)
	now := t.now()
	rec := models.Record{
		ID:     t.uniqueID(),
		Name:   name,
		Sector: sector,
		Begin:  now,
		End:    now,
	}
	t.log = append(t.log, rec)

	if err := t.commit(prev); err != nil {
		return models.Record{}, err
	}

	t.logger.Info("task started", "id", rec.ID, "name", rec.Name, "sector", rec.Sector)
	return rec, nil
}

// Stop finalizes the active record and moves it to the end of the log
func (t *Tracker) Stop() (models.Record, error) {
	idx := slices.IndexFunc(t.log, models.Record.Active)
	if idx < 0 {
		t.logger.Debug("stop ignored, nothing active")
		return models.Record{}, ErrNotActive
	}

	prev := slices.Clone(t.log)
	rec := t.log[idx]
	t.log = slices.Delete(t.log, idx, idx+1)

	rec.End = t.now()
	rec.Duration = models.DurationMillis(rec.Begin, rec.End)
	rec.Done = true
	t.log = append(t.log, rec)

	if err := t.commit(prev); err != nil {
		return models.Record{}, err
	}

	t.logger.Info("task stopped", "id", rec.ID, "name", rec.Name, "duration_ms", rec.Duration)
	return rec, nil
}

// AddTask appends a finished record with explicit bounds in unix milliseconds.
// Overlap with existing records is not checked.
func (t *Tracker) AddTask(name, sector string, beginMillis, endMillis int64) (models.Record, error) {
	prev := slices.Clone(t.log)
	rec := models.Record{
		ID:       t.uniqueID(),
		Name:     name,
		Sector:   sector,
		Begin:    time.UnixMilli(beginMillis),
		End:      time.UnixMilli(endMillis),
		Duration: endMillis - beginMillis,
		Done:     true,
	}
	t.log = append(t.log, rec)

	if err := t.commit(prev); err != nil {
		return models.Record{}, err
	}

	t.logger.Info("task added", "id", rec.ID, "name", rec.Name, "duration_ms", rec.Duration)
	return rec, nil
}

// Delete removes every record whose id is in ids and returns how many went
func (t *Tracker) Delete(ids ...string) (int, error) {
	prev := slices.Clone(t.log)
	t.log = slices.DeleteFunc(t.log, func(rec models.Record) bool {
		return slices.Contains(ids, rec.ID)
	})
	removed := len(prev) - len(t.log)

	if err := t.commit(prev); err != nil {
		return 0, err
	}

	t.logger.Info("tasks deleted", "ids", ids, "removed", removed)
	return removed, nil
}

// DeleteAll empties the log
func (t *Tracker) DeleteAll() (int, error) {
	prev := slices.Clone(t.log)
	t.log = []models.Record{}

	if err := t.commit(prev); err != nil {
		return 0, err
	}

	t.logger.Info("all tasks deleted", "removed", len(prev))
	return len(prev), nil
}
