package domain

import "time"

// Meaning is a group of glosses sharing a part of speech, as scraped from
// a definition source.
type Meaning struct {
	PartOfSpeech string   `json:"part_of_speech"`
	Glosses      []string `json:"glosses"`
}

// Pronunciation is the audio/transcription data for a word.
type Pronunciation struct {
	Transcription *string `json:"transcription,omitempty"`
	AudioURL      string  `json:"audio_url"`
	Region        *string `json:"region,omitempty"`
}

// LookupResult is the merged outcome of all lookup sources for one word.
// A nil Meanings slice or nil Pronunciation means that source produced
// nothing (not found, unreachable, or unparsable). It is never cached
// across words and never persisted.
type LookupResult struct {
	Word          string         `json:"word"`
	Meanings      []Meaning      `json:"meanings,omitempty"`
	Pronunciation *Pronunciation `json:"pronunciation,omitempty"`
	FetchedAt     time.Time      `json:"fetched_at"`
}

// HasMeanings reports whether the definition source produced anything.
func (r *LookupResult) HasMeanings() bool {
	return r != nil && len(r.Meanings) > 0
}

// HasAudio reports whether the audio source produced a playable URL.
func (r *LookupResult) HasAudio() bool {
	return r != nil && r.Pronunciation != nil && r.Pronunciation.AudioURL != ""
}

// Empty reports whether every source came back absent.
func (r *LookupResult) Empty() bool {
	return !r.HasMeanings() && !r.HasAudio()
}
