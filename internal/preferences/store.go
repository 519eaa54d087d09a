package preferences

import (
	"encoding/json"
	"fmt"
	"strings"

	kerrors "github.com/PolarWolf314/keepsake/internal/errors"
)

const (
	OptionsKey  = "honeymoonOptions"
	SelectedKey = "selectedHoneymoon"
)

// DefaultOptions returns the seed destinations.
func DefaultOptions() []string {
	return []string{"Africa", "Europe", "Disney", "Asia"}
}

// List is the destination list and the current pick.
// Selected is empty or one of Options.
type List struct {
	Options  []string `json:"options"`
	Selected string   `json:"selected"`
}

// Contains reports whether name is an option, compared exactly.
func (l List) Contains(name string) bool {
	for _, o := range l.Options {
		if o == name {
			return true
		}
	}
	return false
}

func (l List) clone() List {
	opts := make([]string, len(l.Options))
	copy(opts, l.Options)
	return List{Options: opts, Selected: l.Selected}
}

// Store owns the persisted destination list. It is not safe for concurrent use.
type Store struct {
	storage   Storage
	list      List
	recovered bool
}

// Open loads the list from storage. Missing or unreadable state yields the
// defaults; Recovered reports when data was present but unusable.
func Open(storage Storage) *Store {
	s := &Store{storage: storage}
	s.list, s.recovered = load(storage)
	return s
}

func load(storage Storage) (List, bool) {
	list := List{Options: DefaultOptions()}

	raw, ok, err := storage.Get(OptionsKey)
	if err != nil {
		return list, true
	}
	if !ok {
		return list, false
	}

	var opts []string
	if err := json.Unmarshal([]byte(raw), &opts); err != nil || opts == nil {
		return list, true
	}
	list.Options = dedupe(opts)

	selected, ok, err := storage.Get(SelectedKey)
	if err == nil && ok && list.Contains(selected) {
		list.Selected = selected
	}
	return list, false
}

func dedupe(opts []string) []string {
	seen := make(map[string]bool, len(opts))
	out := make([]string, 0, len(opts))
	for _, o := range opts {
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
	}
	return out
}

// Recovered reports whether Open fell back to defaults over unusable data.
func (s *Store) Recovered() bool {
	return s.recovered
}

// Current returns a copy of the list.
func (s *Store) Current() List {
	return s.list.clone()
}

// AddOption trims name, appends it when new and selects it. A blank name
// changes nothing and writes nothing.
func (s *Store) AddOption(name string) (List, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return s.Current(), nil
	}

	next := s.list.clone()
	if !next.Contains(name) {
		next.Options = append(next.Options, name)
	}
	next.Selected = name
	return s.commit(next)
}

// Select picks name when it is already an option. Anything else is ignored.
func (s *Store) Select(name string) (List, error) {
	if !s.list.Contains(name) {
		return s.Current(), nil
	}
	next := s.list.clone()
	next.Selected = name
	return s.commit(next)
}

// commit persists next and adopts it only once the write succeeded.
func (s *Store) commit(next List) (List, error) {
	if err := persist(s.storage, next); err != nil {
		return s.Current(), err
	}
	s.list = next
	return s.Current(), nil
}

func persist(storage Storage, list List) error {
	opts, err := json.Marshal(list.Options)
	if err != nil {
		return fmt.Errorf("encoding options: %v: %w", err, kerrors.ErrStorageWrite)
	}

	if b, ok := storage.(batchSetter); ok {
		return b.SetMany(map[string]string{
			OptionsKey:  string(opts),
			SelectedKey: list.Selected,
		})
	}
	if err := storage.Set(OptionsKey, string(opts)); err != nil {
		return err
	}
	return storage.Set(SelectedKey, list.Selected)
}
