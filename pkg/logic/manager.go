// Package logic runs dispatch cycles: parse, execute, record, persist.
package logic

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/history"
	"tableflip.dev/life/pkg/model"
	"tableflip.dev/life/pkg/store"
)

// Parser translates command text.
type Parser interface {
	Parse(text string) (command.Command, error)
}

type Option func(*Manager)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// Manager owns the model for the duration of the process. It is not safe for
// concurrent use; one command is processed at a time.
type Manager struct {
	model   *model.Model
	history *history.Log
	parser  Parser
	storage *store.Storage
	logger  *slog.Logger

	modified    map[collection.Kind]bool
	unsubscribe []func()
}

// New subscribes to every collection of m so that mutations made by commands
// are noticed and persisted through s.
func New(m *model.Model, s *store.Storage, p Parser, opts ...Option) *Manager {
	mgr := &Manager{
		model:    m,
		history:  history.New(),
		parser:   p,
		storage:  s,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		modified: make(map[collection.Kind]bool),
	}
	for _, opt := range opts {
		opt(mgr)
	}
	for _, c := range m.All() {
		mgr.unsubscribe = append(mgr.unsubscribe, c.Subscribe(mgr.observe))
	}
	return mgr
}

func (m *Manager) observe(ev collection.Event) {
	if ev.Type.Mutation() {
		m.modified[ev.Kind] = true
	}
}

func (m *Manager) Model() *model.Model {
	return m.model
}

func (m *Manager) History() *history.Log {
	return m.history
}

// Close detaches the manager from the model.
func (m *Manager) Close() {
	for _, stop := range m.unsubscribe {
		stop()
	}
	m.unsubscribe = nil
}

// Execute runs one dispatch cycle for text. The text is always recorded in
// the history log, and persistence runs even when the command failed, since
// any mutation it made before failing stands. The first error of parse,
// execute and persist is returned.
func (m *Manager) Execute(text string) (command.Result, error) {
	log := m.logger.With("cycle", uuid.NewString())
	log.Info("executing command", "text", text)

	clear(m.modified)

	res, err := m.run(text)
	if err != nil {
		log.Info("command failed", "error", err)
	}
	if perr := m.persist(log); perr != nil {
		log.Error("saving failed", "kind", perr.Kind, "error", perr.Err)
		if err == nil {
			err = perr
		}
	}
	if err != nil {
		return command.Result{}, err
	}
	return res, nil
}

func (m *Manager) run(text string) (command.Result, error) {
	defer m.history.Record(text)

	cmd, err := m.parser.Parse(text)
	if err != nil {
		return command.Result{}, err
	}
	return cmd.Execute(m.model, m.history)
}

type saver struct {
	col  model.Tracked
	save func() error
}

// persist saves, in a fixed order, every collection modified this cycle or
// still dirty from an earlier failure. It stops at the first failure;
// collections already saved stay saved.
func (m *Manager) persist(log *slog.Logger) *PersistenceError {
	if m.modified[collection.KindTicked] {
		log.Warn("ticked task list modified, but it is not persisted")
	}

	md, s := m.model, m.storage
	order := []saver{
		{md.Tasks, func() error { return s.Tasks.Save(md.Tasks.Items()) }},
		{md.Purchases, func() error { return s.Purchases.Save(md.Purchases.Items()) }},
		{md.Habits, func() error { return s.Habits.Save(md.Habits.Items()) }},
		{md.Workouts, func() error { return s.Workouts.Save(md.Workouts.Items()) }},
		{md.Contacts, func() error { return s.Contacts.Save(md.Contacts.Items()) }},
	}
	for _, o := range order {
		kind := o.col.Kind()
		if !m.modified[kind] && !o.col.Dirty() {
			continue
		}
		log.Info(kind.Label()+" modified, saving", "kind", kind)
		if err := o.save(); err != nil {
			return &PersistenceError{Kind: kind, Err: err}
		}
		o.col.MarkClean()
	}
	return nil
}
