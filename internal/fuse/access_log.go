package fuse

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/systemshift/robo-identities/internal/fsutil"
)

// AccessEntry is a single read-access record.
type AccessEntry struct {
	Timestamp string `json:"ts"`
	Seed      string `json:"seed"`
	File      string `json:"file"`
}

// AccessLog appends read-access entries to a JSONL file. A nil *AccessLog
// discards everything.
type AccessLog struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// NewAccessLog returns a log appending to path.
func NewAccessLog(path string) *AccessLog {
	return &AccessLog{path: path, now: time.Now}
}

// Log records that file was read from the directory of seed.
func (a *AccessLog) Log(seed, file string) {
	if a == nil {
		return
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	data, err := json.Marshal(AccessEntry{
		Timestamp: a.now().UTC().Format(time.RFC3339Nano),
		Seed:      seed,
		File:      file,
	})
	if err != nil {
		return
	}
	if err := fsutil.SafeAppend(a.path, append(data, '\n')); err != nil {
		log.Printf("robo-identities: access log: %v", err)
	}
}
