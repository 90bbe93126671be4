package models

import "time"

// PairSide holds one half of a linked EN/HT sample. AudioRef points at an
// AudioRecord id by convention only; existence is not verified on link.
type PairSide struct {
	Text     string `json:"text"`
	AudioRef string `json:"audioRef"`
}

// PairRecord links an English and a Haitian-Creole clip under one term.
type PairRecord struct {
	SampleID  string    `json:"sampleId"`
	CreatedAt time.Time `json:"createdAt"`
	Term      string    `json:"term" example:"Diabetes"`
	Category  string    `json:"category" example:"medical"`
	Annotator string    `json:"annotator" example:"anonymous"`
	Consent   bool      `json:"consent"`
	EN        PairSide  `json:"en"`
	HT        PairSide  `json:"ht"`
}
