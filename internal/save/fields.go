package save

import (
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/JohanGylseth/SAMI/internal/profile"
	"github.com/JohanGylseth/SAMI/internal/quest"
)

// fields decodes one save field at a time. Each lookup takes a list of
// keys, newest name first; the first key present wins. A value that does
// not parse leaves the destination untouched.
type fields struct {
	raw map[string]json.RawMessage
	log *slog.Logger
}

func (f fields) lookup(keys ...string) (string, json.RawMessage, bool) {
	for _, k := range keys {
		if v, ok := f.raw[k]; ok && string(v) != "null" {
			return k, v, true
		}
	}
	return "", nil, false
}

func (f fields) decode(dst any, keys ...string) bool {
	k, v, ok := f.lookup(keys...)
	if !ok {
		return false
	}
	if err := json.Unmarshal(v, dst); err != nil {
		f.log.Warn("ignoring unreadable save field", "field", k, "err", err)
		return false
	}
	return true
}

func (f fields) readInt(dst *int, keys ...string) {
	var v int
	if f.decode(&v, keys...) {
		*dst = v
	}
}

func (f fields) readStrings(dst *[]string, keys ...string) {
	var v []string
	if f.decode(&v, keys...) && v != nil {
		*dst = v
	}
}

func (f fields) readPlacements(dst *[]profile.Placement, keys ...string) {
	var v []profile.Placement
	if f.decode(&v, keys...) && v != nil {
		*dst = v
	}
}

// legacyInstance carries objective fields renamed across versions.
type legacyInstance struct {
	RequiresLocation string `json:"requiresLocation"`
}

// instances decodes the objective list element by element so a single
// damaged entry is dropped instead of the whole list.
func (f fields) instances(keys ...string) []quest.Instance {
	var items []json.RawMessage
	if !f.decode(&items, keys...) {
		return nil
	}
	out := make([]quest.Instance, 0, len(items))
	for i, item := range items {
		var inst quest.Instance
		if err := json.Unmarshal(item, &inst); err != nil {
			f.log.Warn("dropping unreadable objective", "index", i, "err", err)
			continue
		}
		inst.ID = strings.TrimSpace(inst.ID)
		if inst.ID == "" {
			f.log.Warn("dropping objective without id", "index", i)
			continue
		}
		if inst.Location == "" {
			var legacy legacyInstance
			if err := json.Unmarshal(item, &legacy); err == nil {
				inst.Location = legacy.RequiresLocation
			}
		}
		out = append(out, inst)
	}
	return out
}
