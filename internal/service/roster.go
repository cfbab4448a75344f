package service

import (
	"bnihub.com/chaptertracker/internal/model"
	"github.com/google/uuid"
)

// MemberRef is the identity pair the ingestor stamps onto matched rows.
type MemberRef struct {
	ID      uuid.UUID
	PhoneID string
	Name    string
}

// Roster is an exact display-name lookup table built once at batch start
// from a fresh member fetch. It is never mutated after construction, so a
// batch sees one consistent snapshot.
type Roster map[string]MemberRef

func BuildRoster(members []*model.Member) Roster {
	roster := make(Roster, len(members))
	for _, m := range members {
		roster[m.Name] = MemberRef{ID: m.ID, PhoneID: m.PhoneID, Name: m.Name}
	}
	return roster
}

// Resolve matches a spreadsheet member name by case-sensitive equality.
// No fuzzy matching; an unmatched name drops the row.
func (r Roster) Resolve(name string) (MemberRef, bool) {
	ref, ok := r[name]
	return ref, ok
}
