// Package chapter loads the verse lists the exercise is played on.
package chapter

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a source has no chapter for the id.
	ErrNotFound = errors.New("chapter not found")
	// ErrMalformed is returned when chapter data cannot be decoded.
	ErrMalformed = errors.New("malformed chapter data")
)

// Verse is a single verse record. Its position in Chapter.Verses is its
// canonical order.
type Verse struct {
	Reference string `json:"reference"`
	Text      string `json:"text"`
}

// Chapter is an ordered list of verses loaded as one unit.
type Chapter struct {
	ID     string
	Verses []Verse
}

// Len returns the number of verses.
func (c Chapter) Len() int { return len(c.Verses) }

type document struct {
	Verses []Verse `json:"verses"`
}

// Decode parses the chapter wire format. A document without a verses key is
// an empty chapter.
func Decode(id string, data []byte) (Chapter, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Chapter{}, fmt.Errorf("%w: %s: %v", ErrMalformed, id, err)
	}
	return Chapter{ID: id, Verses: doc.Verses}, nil
}

func encode(verses []Verse) ([]byte, error) {
	if verses == nil {
		verses = []Verse{}
	}
	return json.Marshal(document{Verses: verses})
}
