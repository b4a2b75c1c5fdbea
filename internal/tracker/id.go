package tracker

import (
	"math/rand/v2"
	"slices"

	"github.com/balkashynov/quant/internal/models"
)

const (
	idLength   = 5
	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// randomID returns a short uppercase base36 identifier
func randomID() string {
	b := make([]byte, idLength)
	for i := range b {
		b[i] = idAlphabet[rand.IntN(len(idAlphabet))]
	}
	return string(b)
}

// uniqueID draws ids until one is not already used in the log
func (t *Tracker) uniqueID() string {
	for {
		id := t.newID()
		taken := slices.ContainsFunc(t.log, func(rec models.Record) bool {
			return rec.ID == id
		})
		if !taken {
			return id
		}
	}
}
