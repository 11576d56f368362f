package domain

import "slices"

// Move identifies one activity by position and where it should end up.
// DestIndex is the final position of the activity in the destination day.
type Move struct {
	SourceDay   int
	SourceIndex int
	DestDay     int
	DestIndex   int
}

// MoveActivity removes exactly one activity from the source position and
// inserts it at the destination. Within one day the insertion index refers
// to the list after removal, so valid destinations are [0, len-1]. Across
// days the destination may be any position in [0, len(dest)]. Start and end
// times are never used to reorder.
//
// Bounds are checked before anything is copied; on error the receiver is
// untouched.
func (it Itinerary) MoveActivity(m Move) (Itinerary, error) {
	if m.SourceDay < 0 || m.SourceDay >= len(it.Days) {
		return Itinerary{}, &IndexError{What: "source day", Index: m.SourceDay, Len: len(it.Days)}
	}
	if m.DestDay < 0 || m.DestDay >= len(it.Days) {
		return Itinerary{}, &IndexError{What: "destination day", Index: m.DestDay, Len: len(it.Days)}
	}

	src := it.Days[m.SourceDay].Activities
	if m.SourceIndex < 0 || m.SourceIndex >= len(src) {
		return Itinerary{}, &IndexError{What: "source activity", Index: m.SourceIndex, Len: len(src)}
	}

	destLen := len(it.Days[m.DestDay].Activities)
	maxDest := destLen
	if m.SourceDay == m.DestDay {
		maxDest = destLen - 1
	}
	if m.DestIndex < 0 || m.DestIndex > maxDest {
		return Itinerary{}, &IndexError{What: "destination activity", Index: m.DestIndex, Len: destLen}
	}

	next := it.Clone()
	moved := next.Days[m.SourceDay].Activities[m.SourceIndex]
	next.Days[m.SourceDay].Activities = slices.Delete(next.Days[m.SourceDay].Activities, m.SourceIndex, m.SourceIndex+1)
	next.Days[m.DestDay].Activities = slices.Insert(next.Days[m.DestDay].Activities, m.DestIndex, moved)
	return next, nil
}
