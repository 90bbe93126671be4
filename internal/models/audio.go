package models

import "time"

// Lang is a storage partition selector for uploaded audio.
type Lang string

const (
	LangEnglish Lang = "en"
	LangCreole  Lang = "ht"
)

// ParseLang validates a language selector from the URL.
func ParseLang(s string) (Lang, bool) {
	switch Lang(s) {
	case LangEnglish:
		return LangEnglish, true
	case LangCreole:
		return LangCreole, true
	}
	return "", false
}

// AudioRecord is the sidecar metadata written next to every uploaded blob.
// Records are create-only; nothing in the service updates or deletes them.
type AudioRecord struct {
	ID          string    `json:"id"`
	Lang        Lang      `json:"lang" example:"en"`
	CreatedAt   time.Time `json:"createdAt"`
	ContentType string    `json:"contentType" example:"audio/webm"`
	Bytes       int       `json:"bytes"`
	AudioFile   string    `json:"audioFile" example:"3f2b6c.webm"`
	Transcript  string    `json:"transcript"`
	Codec       string    `json:"codec" example:"opus"`
	SampleRate  *int      `json:"sr"`
	DurationS   *float64  `json:"duration_s"`
	Domain      []string  `json:"domain"`
}
