package tracker

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"slices"
	"time"

	"github.com/balkashynov/quant/internal/db"
	"github.com/balkashynov/quant/internal/export"
	"github.com/balkashynov/quant/internal/models"
)

// DefaultNamespace is the storage key the log is kept under
const DefaultNamespace = "quantified-life"

var (
	// ErrAlreadyActive is returned by Start while another record is running
	ErrAlreadyActive = errors.New("a task is already being tracked")
	// ErrNotActive is returned by Stop when nothing is running
	ErrNotActive = errors.New("no task is being tracked")
	// ErrNoSink is returned when an export is requested without a sink
	ErrNoSink = errors.New("no export destination configured")
)

// Refresher is implemented by views that redraw after the log changes
type Refresher interface {
	Refresh()
}

// Tracker owns the ordered task log and keeps it in sync with storage
type Tracker struct {
	store     db.Store
	namespace string
	now       func() time.Time
	newID     func() string
	logger    *slog.Logger
	sink      export.Sink

	log   []models.Record
	views []Refresher
}

// Option configures a Tracker
type Option func(*Tracker)

// WithNamespace overrides the storage key
func WithNamespace(namespace string) Option {
	return func(t *Tracker) {
		t.namespace = namespace
	}
}

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		t.now = now
	}
}

// WithIDSource overrides record id generation
func WithIDSource(newID func() string) Option {
	return func(t *Tracker) {
		t.newID = newID
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *slog.Logger) Option {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithSink sets where the export command delivers its artifact
func WithSink(sink export.Sink) Option {
	return func(t *Tracker) {
		t.sink = sink
	}
}

// New creates a tracker on top of store and loads the persisted log
func New(store db.Store, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store:     store,
		namespace: DefaultNamespace,
		now:       time.Now,
		newID:     randomID,
		logger:    slog.New(slog.DiscardHandler),
		log:       []models.Record{},
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.load(); err != nil {
		return nil, err
	}
	return t, nil
}

// Connect registers a view to be refreshed after every mutation
func (t *Tracker) Connect(view Refresher) {
	t.views = append(t.views, view)
}

// Active returns the record currently being timed, if any
func (t *Tracker) Active() (models.Record, bool) {
	for _, rec := range t.log {
		if rec.Active() {
			return rec, true
		}
	}
	return models.Record{}, false
}

// Records returns a copy of the log in insertion order
func (t *Tracker) Records() []models.Record {
	return slices.Clone(t.log)
}

// Len returns the number of records in the log
func (t *Tracker) Len() int {
	return len(t.log)
}

// FilterSince yields records that began within the last days days,
// counting back from today's local midnight
func (t *Tracker) FilterSince(days int) iter.Seq[models.Record] {
	now := t.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	lowerLimit := midnight.Add(-time.Duration(days) * 24 * time.Hour)

	return func(yield func(models.Record) bool) {
		for _, rec := range t.log {
			if rec.Begin.Before(lowerLimit) {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Export serializes the full log into a downloadable artifact
func (t *Tracker) Export() (export.Artifact, error) {
	data, err := Serialize(t.log)
	if err != nil {
		return export.Artifact{}, fmt.Errorf("failed to serialize log: %w", err)
	}

	return export.Artifact{
		Filename:    export.Filename(t.now()),
		ContentType: export.ContentType,
		Data:        data,
	}, nil
}

// commit persists the log and refreshes connected views.
// When persisting fails the log is restored to prev.
func (t *Tracker) commit(prev []models.Record) error {
	err := t.persist()
	if err != nil {
		t.log = prev
		t.logger.Error("change rolled back", "error", err)
	}
	for _, view := range t.views {
		view.Refresh()
	}
	return err
}
