// Package store persists the life collections as JSON documents, one per
// collection kind, in a diskv directory or a SQLite database.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/entity"
	"tableflip.dev/life/pkg/model"
)

// CurrentSchema is written into every document.
const CurrentSchema = "1"

var (
	ErrUnknownSchema = errors.New("store: unknown document schema")
	ErrNoWatch       = errors.New("store: backend does not support watching")
)

// Blobs is the raw document store behind the ports. Read returns an error
// matching fs.ErrNotExist for a key that was never written.
type Blobs interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
}

// Watcher is implemented by blobs that can report outside changes.
type Watcher interface {
	Watch(ctx context.Context) (<-chan Event, error)
}

// Port saves and loads one collection.
type Port[E any] interface {
	Save(items []E) error
	Load() ([]E, error)
}

type document[E any] struct {
	Schema string `json:"schema"`
	Items  []E    `json:"items"`
}

type jsonPort[E any] struct {
	key    string
	blobs  Blobs
	logger *slog.Logger
}

// NewPort returns a Port storing items of kind under the kind's name.
func NewPort[E any](blobs Blobs, kind collection.Kind, logger *slog.Logger) Port[E] {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &jsonPort[E]{key: string(kind), blobs: blobs, logger: logger}
}

func (p *jsonPort[E]) Save(items []E) error {
	if items == nil {
		items = []E{}
	}
	data, err := json.MarshalIndent(document[E]{Schema: CurrentSchema, Items: items}, "", "  ")
	if err != nil {
		return fmt.Errorf("store: encoding %s: %w", p.key, err)
	}
	p.logger.Debug("writing collection", "key", p.key, "items", len(items), "bytes", len(data))
	if err := p.blobs.Write(p.key, data); err != nil {
		return fmt.Errorf("store: writing %s: %w", p.key, err)
	}
	return nil
}

func (p *jsonPort[E]) Load() ([]E, error) {
	p.logger.Debug("reading collection", "key", p.key)
	data, err := p.blobs.Read(p.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("store: reading %s: %w", p.key, err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	var doc document[E]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("store: decoding %s: %w", p.key, err)
	}
	if doc.Schema != "" && doc.Schema != CurrentSchema {
		return nil, fmt.Errorf("%w %q in %s", ErrUnknownSchema, doc.Schema, p.key)
	}
	return doc.Items, nil
}

// Storage holds one port per collection kind.
type Storage struct {
	Contacts  Port[entity.Contact]
	Tasks     Port[entity.Task]
	Ticked    Port[entity.Task]
	Purchases Port[entity.Purchase]
	Workouts  Port[entity.Workout]
	Habits    Port[entity.Habit]

	blobs Blobs
}

// NewStorage builds JSON ports over blobs.
func NewStorage(blobs Blobs, logger *slog.Logger) *Storage {
	return &Storage{
		Contacts:  NewPort[entity.Contact](blobs, collection.KindContacts, logger),
		Tasks:     NewPort[entity.Task](blobs, collection.KindTasks, logger),
		Ticked:    NewPort[entity.Task](blobs, collection.KindTicked, logger),
		Purchases: NewPort[entity.Purchase](blobs, collection.KindPurchases, logger),
		Workouts:  NewPort[entity.Workout](blobs, collection.KindWorkouts, logger),
		Habits:    NewPort[entity.Habit](blobs, collection.KindHabits, logger),
		blobs:     blobs,
	}
}

// Load opens the backend named by cfg.
func Load(cfg Config, logger *slog.Logger) (*Storage, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	var (
		blobs Blobs
		err   error
	)
	switch cfg.Backend() {
	case BackendSQLite:
		blobs, err = OpenSQLite(cfg.BasePath())
	case BackendDiskv, "":
		blobs, err = OpenDiskv(cfg.BasePath())
	default:
		err = fmt.Errorf("store: unknown backend %q", cfg.Backend())
	}
	if err != nil {
		return nil, err
	}
	return NewStorage(blobs, logger), nil
}

// ReadAll loads every collection. A collection never saved loads empty.
func (s *Storage) ReadAll() (model.Data, error) {
	var (
		d   model.Data
		err error
	)
	if d.Contacts, err = s.Contacts.Load(); err != nil {
		return model.Data{}, err
	}
	if d.Tasks, err = s.Tasks.Load(); err != nil {
		return model.Data{}, err
	}
	if d.Ticked, err = s.Ticked.Load(); err != nil {
		return model.Data{}, err
	}
	if d.Purchases, err = s.Purchases.Load(); err != nil {
		return model.Data{}, err
	}
	if d.Workouts, err = s.Workouts.Load(); err != nil {
		return model.Data{}, err
	}
	if d.Habits, err = s.Habits.Load(); err != nil {
		return model.Data{}, err
	}
	return d, nil
}

// Watch streams change events from the backend until ctx is cancelled.
func (s *Storage) Watch(ctx context.Context) (<-chan Event, error) {
	w, ok := s.blobs.(Watcher)
	if !ok {
		return nil, ErrNoWatch
	}
	return w.Watch(ctx)
}

func (s *Storage) Close() error {
	if c, ok := s.blobs.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
