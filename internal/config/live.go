package config

import (
	"sync/atomic"
)

// Live holds the stat score bound so it can be swapped while nerfs are
// running. It satisfies nerf.MaxScorer.
type Live struct {
	maxScore atomic.Int64
	path     string
}

// NewLive creates a Live view seeded from cfg. path is re-read by Reload.
func NewLive(cfg Config, path string) *Live {
	l := &Live{path: path}
	l.maxScore.Store(int64(cfg.Nerf.MaxStatScore))
	return l
}

// MaxScore returns the current bound.
func (l *Live) MaxScore() int {
	return int(l.maxScore.Load())
}

// SetMaxScore replaces the bound.
func (l *Live) SetMaxScore(v int) {
	l.maxScore.Store(int64(v))
}

// Reload re-reads the configuration and swaps in its bound.
// On error the previous bound stays in place.
func (l *Live) Reload() (Config, error) {
	cfg, err := Load(l.path)
	if err != nil {
		return cfg, err
	}
	l.SetMaxScore(cfg.Nerf.MaxStatScore)
	return cfg, nil
}
