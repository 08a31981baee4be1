package job

import (
	"encoding/json"
	"sort"
)

// ActorSet is a set of actor ids. Membership is structural so duplicates
// cannot exist.
type ActorSet map[ActorID]struct{}

func NewActorSet(ids ...ActorID) ActorSet {
	s := make(ActorSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// ActorSetFromStrings is used by storage adapters reading text arrays.
func ActorSetFromStrings(ids []string) ActorSet {
	s := make(ActorSet, len(ids))
	for _, id := range ids {
		s.Add(ActorID(id))
	}
	return s
}

func (s ActorSet) Add(id ActorID) {
	if id.IsZero() {
		return
	}
	s[id] = struct{}{}
}

func (s ActorSet) Remove(id ActorID) {
	delete(s, id)
}

func (s ActorSet) Contains(id ActorID) bool {
	_, ok := s[id]
	return ok
}

func (s ActorSet) Len() int {
	return len(s)
}

// Strings returns the members sorted, so output is stable across calls.
func (s ActorSet) Strings() []string {
	out := make([]string, 0, len(s))
	for id := range s {
		out = append(out, string(id))
	}
	sort.Strings(out)
	return out
}

func (s ActorSet) Clone() ActorSet {
	out := make(ActorSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}
	return out
}

func (s ActorSet) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Strings())
}

func (s *ActorSet) UnmarshalJSON(b []byte) error {
	var ids []string
	if err := json.Unmarshal(b, &ids); err != nil {
		return err
	}
	*s = ActorSetFromStrings(ids)
	return nil
}
