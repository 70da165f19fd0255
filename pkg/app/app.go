// Package app wires configuration, storage, the model and the dispatch engine
// together so CLIs share one way of opening life.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"tableflip.dev/life/pkg/collection"
	"tableflip.dev/life/pkg/command"
	"tableflip.dev/life/pkg/logic"
	"tableflip.dev/life/pkg/model"
	"tableflip.dev/life/pkg/parser"
	"tableflip.dev/life/pkg/store"
)

var ErrClosed = errors.New("app: service is closed")

// Service is an opened life data directory.
type Service struct {
	Config  store.Config
	Storage *store.Storage

	manager *logic.Manager
	logger  *slog.Logger
}

// Open loads every collection from the storage named by cfg. A nil cfg reads
// the config file and environment.
func Open(cfg store.Config, logger *slog.Logger) (*Service, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg == nil {
		fc, err := store.LoadConfig()
		if err != nil {
			return nil, err
		}
		cfg = fc
	}
	s, err := store.Load(cfg, logger)
	if err != nil {
		return nil, err
	}
	data, err := s.ReadAll()
	if err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("app: loading collections: %w", err)
	}
	logger.Debug("opened storage", "path", cfg.BasePath(), "backend", cfg.Backend())

	m := model.New(data)
	return &Service{
		Config:  cfg,
		Storage: s,
		manager: logic.New(m, s, parser.New(), logic.WithLogger(logger)),
		logger:  logger,
	}, nil
}

// Execute runs one command through the dispatch engine.
func (s *Service) Execute(text string) (command.Result, error) {
	if s.manager == nil {
		return command.Result{}, ErrClosed
	}
	return s.manager.Execute(text)
}

func (s *Service) Model() *model.Model {
	if s.manager == nil {
		return nil
	}
	return s.manager.Model()
}

// Counts returns the number of items per collection.
func (s *Service) Counts() map[collection.Kind]int {
	counts := make(map[collection.Kind]int)
	m := s.Model()
	if m == nil {
		return counts
	}
	for _, c := range m.All() {
		counts[c.Kind()] = c.Len()
	}
	return counts
}

// Reload replaces every collection with what storage holds now. History,
// selections and unsaved changes are dropped. The ticked list keeps its
// in-memory items because it is never written.
func (s *Service) Reload() error {
	m := s.Model()
	if m == nil {
		return ErrClosed
	}
	data, err := s.Storage.ReadAll()
	if err != nil {
		return fmt.Errorf("app: reloading collections: %w", err)
	}
	data.Ticked = m.Ticked.Items()
	m.Load(data)
	s.logger.Debug("reloaded collections")
	return nil
}

// Watch subscribes to storage change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	return s.Storage.Watch(ctx)
}

func (s *Service) Close() error {
	if s.manager == nil {
		return nil
	}
	s.manager.Close()
	s.manager = nil
	return s.Storage.Close()
}
