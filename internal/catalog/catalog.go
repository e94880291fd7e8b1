// Package catalog holds the static instrument definitions. The catalog is
// fixed at build time: question order, option sets and category membership
// never change for a given instrument id.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sehat-jiwa/assessment-service/internal/models"
)

// ErrUnknownInstrument is returned when no instrument is registered for an id.
var ErrUnknownInstrument = errors.New("unknown instrument id")

var instruments = map[string]*models.Instrument{
	dass42.ID: dass42,
	gse.ID:    gse,
	mhkq.ID:   mhkq,
	mscs.ID:   mscs,
	pdd.ID:    pdd,
}

// Get returns the instrument registered under id.
func Get(id string) (*models.Instrument, error) {
	inst, ok := instruments[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownInstrument, id)
	}
	return inst, nil
}

// IDs returns all registered instrument ids, sorted.
func IDs() []string {
	ids := make([]string, 0, len(instruments))
	for id := range instruments {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// List returns all registered instruments ordered by id.
func List() []*models.Instrument {
	list := make([]*models.Instrument, 0, len(instruments))
	for _, id := range IDs() {
		list = append(list, instruments[id])
	}
	return list
}
