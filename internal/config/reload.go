package config

import (
	"sync"

	"github.com/dshills/framestate/internal/config/watcher"
)

// Reloader re-reads a configuration file whenever it changes and delivers
// each valid result on Updates. Parse and validation failures are
// delivered on Errors; the consumer keeps its previous configuration.
type Reloader struct {
	path      string
	envPrefix string
	watcher   *watcher.Watcher

	updates chan *Config
	errors  chan error

	done chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

// NewReloader starts watching path. Reloaded configurations have the
// environment overrides for envPrefix applied; an empty prefix skips them.
func NewReloader(path, envPrefix string, opts ...watcher.Option) (*Reloader, error) {
	w, err := watcher.New(path, opts...)
	if err != nil {
		return nil, err
	}

	r := &Reloader{
		path:      path,
		envPrefix: envPrefix,
		watcher:   w,
		updates:   make(chan *Config, 1),
		errors:    make(chan error, 1),
		done:      make(chan struct{}),
	}

	r.wg.Add(1)
	go r.loop()

	return r, nil
}

// Updates returns the channel of reloaded configurations.
func (r *Reloader) Updates() <-chan *Config {
	return r.updates
}

// Errors returns the channel of reload failures.
func (r *Reloader) Errors() <-chan error {
	return r.errors
}

// Close stops watching.
func (r *Reloader) Close() error {
	var err error
	r.once.Do(func() {
		close(r.done)
		err = r.watcher.Close()
		r.wg.Wait()
	})
	return err
}

func (r *Reloader) loop() {
	defer r.wg.Done()

	for {
		select {
		case <-r.done:
			return

		case ev, ok := <-r.watcher.Events():
			if !ok {
				return
			}
			if ev.Op == watcher.OpRemove || ev.Op == watcher.OpRename {
				continue
			}
			cfg, err := r.reload()
			if err != nil {
				r.sendError(err)
				continue
			}
			r.sendUpdate(cfg)

		case err, ok := <-r.watcher.Errors():
			if !ok {
				return
			}
			r.sendError(err)
		}
	}
}

// reload reads the file and environment into a fresh, validated Config.
func (r *Reloader) reload() (*Config, error) {
	cfg, err := Load(r.path)
	if err != nil {
		return nil, err
	}
	if r.envPrefix != "" {
		if err := cfg.ApplyEnv(r.envPrefix); err != nil {
			return nil, err
		}
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// sendUpdate replaces any undelivered update with cfg.
func (r *Reloader) sendUpdate(cfg *Config) {
	select {
	case <-r.updates:
	default:
	}
	select {
	case r.updates <- cfg:
	case <-r.done:
	}
}

func (r *Reloader) sendError(err error) {
	select {
	case r.errors <- err:
	default:
	}
}
