package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"KreyolCollector/internal/models"
)

// ListKind selects which record types a listing returns.
type ListKind string

const (
	KindAudio ListKind = "audio"
	KindPair  ListKind = "pair"
	KindAll   ListKind = "all"
)

// ParseKind maps the query value to a kind; anything unrecognized lists all.
func ParseKind(s string) ListKind {
	switch ListKind(s) {
	case KindAudio:
		return KindAudio
	case KindPair:
		return KindPair
	}
	return KindAll
}

// listLimit caps a listing at the most recent records.
const listLimit = 50

type candidate struct {
	path string
	mod  time.Time
	pair bool
}

// ListSamples scans the sidecar files for the requested kind, newest first,
// capped at listLimit. Corrupt or half-written files are skipped instead of
// failing the whole listing. A missing partition directory counts as empty.
func (s *Store) ListSamples(kind ListKind) ([]any, error) {
	var candidates []candidate

	if kind == KindAudio || kind == KindAll {
		for _, lang := range []models.Lang{models.LangEnglish, models.LangCreole} {
			found, err := scanDir(s.AudioDir(lang), false)
			if err != nil {
				return nil, err
			}
			candidates = append(candidates, found...)
		}
	}
	if kind == KindPair || kind == KindAll {
		found, err := scanDir(s.PairsDir(), true)
		if err != nil {
			return nil, err
		}
		candidates = append(candidates, found...)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].mod.After(candidates[j].mod)
	})
	if len(candidates) > listLimit {
		candidates = candidates[:listLimit]
	}

	items := make([]any, 0, len(candidates))
	for _, c := range candidates {
		data, err := os.ReadFile(c.path)
		if err != nil {
			continue
		}
		if c.pair {
			var rec models.PairRecord
			if json.Unmarshal(data, &rec) != nil {
				continue
			}
			items = append(items, rec)
		} else {
			var rec models.AudioRecord
			if json.Unmarshal(data, &rec) != nil {
				continue
			}
			items = append(items, rec)
		}
	}
	return items, nil
}

// scanDir collects sidecar candidates from one partition. Audio partitions
// hold blobs next to sidecars, so only plain .json entries qualify there.
func scanDir(dir string, pair bool) ([]candidate, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("scanDir(): failed to read %s: %w", dir, err)
	}

	var found []candidate
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if pair {
			if !strings.HasSuffix(name, ".pair.json") {
				continue
			}
		} else {
			if !strings.HasSuffix(name, ".json") || strings.HasSuffix(name, ".pair.json") {
				continue
			}
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		found = append(found, candidate{
			path: filepath.Join(dir, name),
			mod:  info.ModTime(),
			pair: pair,
		})
	}
	return found, nil
}
