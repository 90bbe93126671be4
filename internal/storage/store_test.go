package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"KreyolCollector/internal/models"
)

func TestSaveAudioWritesBlobAndSidecar(t *testing.T) {
	store := New(t.TempDir())
	blob := []byte("abc")
	rec := models.AudioRecord{
		ID:          "id-1",
		Lang:        models.LangEnglish,
		CreatedAt:   time.Now().UTC(),
		ContentType: "audio/webm",
		Bytes:       len(blob),
		AudioFile:   "id-1.webm",
		Transcript:  "Hello World (ASR stub)",
		Codec:       "opus",
		Domain:      []string{},
	}
	if err := store.SaveAudio(&rec, blob); err != nil {
		t.Fatalf("SaveAudio: %v", err)
	}

	dir := store.AudioDir(models.LangEnglish)
	got, err := os.ReadFile(filepath.Join(dir, "id-1.webm"))
	if err != nil {
		t.Fatalf("read blob: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("blob content = %q, want %q", got, "abc")
	}

	data, err := os.ReadFile(filepath.Join(dir, "id-1.json"))
	if err != nil {
		t.Fatalf("read sidecar: %v", err)
	}
	var parsed models.AudioRecord
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("sidecar not valid JSON: %v", err)
	}
	if parsed.ID != "id-1" || parsed.Bytes != 3 || parsed.Codec != "opus" {
		t.Fatalf("sidecar mismatch: %+v", parsed)
	}

	// atomic write must not leave a temp file behind
	entries, _ := os.ReadDir(dir)
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Fatalf("tmp file not cleaned: %s", e.Name())
		}
	}
}

func TestSavePair(t *testing.T) {
	store := New(t.TempDir())
	rec := models.PairRecord{
		SampleID:  "s-1",
		CreatedAt: time.Now().UTC(),
		Term:      "Diabetes",
		Category:  "medical",
		Annotator: "anonymous",
		Consent:   true,
		EN:        models.PairSide{Text: "Diabetes", AudioRef: "x"},
		HT:        models.PairSide{Text: "", AudioRef: "y"},
	}
	if err := store.SavePair(&rec); err != nil {
		t.Fatalf("SavePair: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(store.PairsDir(), "s-1.pair.json"))
	if err != nil {
		t.Fatalf("read pair record: %v", err)
	}
	var parsed models.PairRecord
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("pair record not valid JSON: %v", err)
	}
	if parsed.EN.AudioRef != "x" || parsed.HT.AudioRef != "y" || !parsed.Consent {
		t.Fatalf("pair record mismatch: %+v", parsed)
	}
}

func TestEnsureLayout(t *testing.T) {
	store := New(t.TempDir())
	if err := store.EnsureLayout(); err != nil {
		t.Fatalf("EnsureLayout: %v", err)
	}
	for _, dir := range []string{
		store.AudioDir(models.LangEnglish),
		store.AudioDir(models.LangCreole),
		store.PairsDir(),
	} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			t.Fatalf("partition %s missing: %v", dir, err)
		}
	}
}
