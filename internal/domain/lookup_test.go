package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupResult_Presence(t *testing.T) {
	t.Parallel()

	var nilResult *LookupResult
	assert.True(t, nilResult.Empty())

	r := &LookupResult{Word: "ephemeral"}
	assert.False(t, r.HasMeanings())
	assert.False(t, r.HasAudio())
	assert.True(t, r.Empty())

	r.Meanings = []Meaning{{PartOfSpeech: "adjective", Glosses: []string{"ক্ষণস্থায়ী"}}}
	assert.True(t, r.HasMeanings())
	assert.False(t, r.Empty())

	r.Pronunciation = &Pronunciation{}
	assert.False(t, r.HasAudio(), "pronunciation without audio URL is not audio")

	r.Pronunciation.AudioURL = "https://example.com/ephemeral-us.mp3"
	assert.True(t, r.HasAudio())
}
