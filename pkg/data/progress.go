package data

import (
	"sync"

	"go.uber.org/zap"
)

// ProgressLog remembers the last read verse index of every opened chapter.
type ProgressLog struct {
	kv     KV
	logger *zap.Logger
	mu     sync.Mutex
}

func NewProgressLog(kv KV, logger *zap.Logger) *ProgressLog {
	return &ProgressLog{kv: kv, logger: logger}
}

func (p *ProgressLog) All() map[int]ProgressEntry {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Load(p.kv, ProgressKey, p.logger)
}

func (p *ProgressLog) Get(chapter int) (ProgressEntry, bool) {
	entry, ok := p.All()[chapter]
	return entry, ok
}

// Set overwrites the chapter's entry; it does not compare with the old value.
func (p *ProgressLog) Set(chapter, index, total int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	all := Load(p.kv, ProgressKey, p.logger)
	if all == nil {
		all = map[int]ProgressEntry{}
	}
	all[chapter] = ProgressEntry{LastIndex: index, Total: total}
	return Save(p.kv, ProgressKey, all)
}
