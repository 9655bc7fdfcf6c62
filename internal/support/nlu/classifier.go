// Package nlu holds the keyword pipeline that decides what a raw user query
// is about: intent classification and the negative-sentiment gate. Matching
// is plain substring containment; there is no scoring and no model.
package nlu

import (
	"strings"

	"github.com/brysenPfingsten/PirateEase/internal/support/model"
)

// Classifier maps free text to an intent by trigger-phrase containment.
type Classifier struct {
	entries []model.IntentEntry
}

func NewClassifier(entries []model.IntentEntry) *Classifier {
	return &Classifier{entries: entries}
}

// Classify lower-cases the query and returns the first intent (in catalog
// order) with any trigger phrase contained in it, or IntentUnknown. First
// match wins; when one intent's phrase is a substring of another's trigger,
// catalog order decides.
func (c *Classifier) Classify(query string) model.Intent {
	q := strings.ToLower(query)
	for _, entry := range c.entries {
		for _, phrase := range entry.Phrases {
			if phrase != "" && strings.Contains(q, phrase) {
				return entry.Intent
			}
		}
	}
	return model.IntentUnknown
}
