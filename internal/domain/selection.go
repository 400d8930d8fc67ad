package domain

import "github.com/m04kA/SMC-CourtBooking/pkg/types"

// SelectionKey единица выбора: (корт, время начала слота)
type SelectionKey struct {
	CourtID   int64
	StartTime types.TimeString
}

// Selection выбранный пользователем непрерывный блок слотов одного корта на одну дату
// Times всегда отсортированы, соседние значения отличаются ровно на одну длительность слота
type Selection struct {
	CourtID         int64
	DurationMinutes int
	Times           []types.TimeString
}

// IsEmpty returns true if nothing is selected
func (s Selection) IsEmpty() bool {
	return len(s.Times) == 0
}

// IndexOf возвращает позицию времени в выборе или -1
func (s Selection) IndexOf(t types.TimeString) int {
	for i, v := range s.Times {
		if v == t {
			return i
		}
	}
	return -1
}

// Contains returns true if the key is part of the selection
func (s Selection) Contains(key SelectionKey) bool {
	return !s.IsEmpty() && s.CourtID == key.CourtID && s.IndexOf(key.StartTime) >= 0
}

// Keys возвращает ключи выбора в порядке времени
func (s Selection) Keys() []SelectionKey {
	keys := make([]SelectionKey, len(s.Times))
	for i, t := range s.Times {
		keys[i] = SelectionKey{CourtID: s.CourtID, StartTime: t}
	}
	return keys
}
