package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"KreyolCollector/internal/models"
)

// Store is the file-backed datastore. Audio blobs live next to their JSON
// sidecar in a per-language partition, pair records in their own directory:
//
//	<dataDir>/audio/en/<id>.<ext> + <id>.json
//	<dataDir>/audio/ht/<id>.<ext> + <id>.json
//	<dataDir>/pairs/<sampleId>.pair.json
type Store struct {
	dataDir string
}

func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

func (s *Store) AudioDir(lang models.Lang) string {
	return filepath.Join(s.dataDir, "audio", string(lang))
}

func (s *Store) PairsDir() string {
	return filepath.Join(s.dataDir, "pairs")
}

// EnsureLayout creates every partition up front so the first request does
// not race directory creation.
func (s *Store) EnsureLayout() error {
	for _, dir := range []string{
		s.AudioDir(models.LangEnglish),
		s.AudioDir(models.LangCreole),
		s.PairsDir(),
	} {
		if err := EnsureDir(dir); err != nil {
			return err
		}
	}
	return nil
}

// SaveAudio writes the blob and then the sidecar. There is no transaction
// between the two writes; a crash in between leaves an orphaned blob, which
// is fine because listing only reads sidecars.
func (s *Store) SaveAudio(rec *models.AudioRecord, blob []byte) error {
	dir := s.AudioDir(rec.Lang)
	if err := EnsureDir(dir); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, rec.AudioFile), blob, 0644); err != nil {
		return fmt.Errorf("SaveAudio(): failed to write blob %s: %w", rec.AudioFile, err)
	}
	return writeJSONAtomic(filepath.Join(dir, rec.ID+".json"), rec)
}

// SavePair writes the pair record as <sampleId>.pair.json.
func (s *Store) SavePair(rec *models.PairRecord) error {
	if err := EnsureDir(s.PairsDir()); err != nil {
		return err
	}
	return writeJSONAtomic(filepath.Join(s.PairsDir(), rec.SampleID+".pair.json"), rec)
}

// writeJSONAtomic writes to a temp path and renames, so the lister never
// observes a half-written sidecar.
func writeJSONAtomic(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("writeJSONAtomic(): failed to marshal %s: %w", path, err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("writeJSONAtomic(): failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("writeJSONAtomic(): failed to rename %s: %w", tmp, err)
	}
	return nil
}
