// Package selection реализует выбор непрерывного блока слотов одного корта.
//
// Состояния: пустой выбор и Selecting(корт, отсортированные времена).
// Все функции чистые: принимают текущий выбор и возвращают новый.
package selection

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
	"github.com/m04kA/SMC-CourtBooking/pkg/types"
)

// Outcome результат попытки перехода
type Outcome string

const (
	Accepted Outcome = "accepted" // слот добавлен
	Rejected Outcome = "rejected" // другой корт, не соседний слот или слот недоступен
	Noop     Outcome = "noop"     // слот уже выбран (или не выбран при снятии)
	Removed  Outcome = "removed"  // слот(ы) сняты
)

// ErrInvalidSelection нарушен инвариант непрерывности выбора
var ErrInvalidSelection = errors.New("selection: invalid selection")

// Select пытается добавить слот к выбору
//
// Из пустого состояния принимается любой доступный слот не на обслуживании.
// Дальше принимается только слот того же корта, стоящий непосредственно перед первым
// или сразу после последнего выбранного. Остальные попытки молча отклоняются.
// Повторный выбор уже выбранного слота ничего не меняет.
func Select(sel domain.Selection, slot domain.Slot) (domain.Selection, Outcome) {
	if !slot.IsSelectable() || slot.DurationMinutes <= 0 {
		return sel, Rejected
	}
	t, err := slot.StartTime.Minutes()
	if err != nil {
		return sel, Rejected
	}

	if sel.IsEmpty() {
		return domain.Selection{
			CourtID:         slot.CourtID,
			DurationMinutes: slot.DurationMinutes,
			Times:           []types.TimeString{slot.StartTime},
		}, Accepted
	}

	if slot.CourtID != sel.CourtID {
		return sel, Rejected
	}
	if sel.IndexOf(slot.StartTime) >= 0 {
		return sel, Noop
	}

	first, errFirst := sel.Times[0].Minutes()
	last, errLast := sel.Times[len(sel.Times)-1].Minutes()
	if errFirst != nil || errLast != nil {
		return sel, Rejected
	}

	times := make([]types.TimeString, 0, len(sel.Times)+1)
	switch t {
	case first - sel.DurationMinutes:
		times = append(times, slot.StartTime)
		times = append(times, sel.Times...)
	case last + sel.DurationMinutes:
		times = append(times, sel.Times...)
		times = append(times, slot.StartTime)
	default:
		return sel, Rejected
	}

	return domain.Selection{
		CourtID:         sel.CourtID,
		DurationMinutes: sel.DurationMinutes,
		Times:           times,
	}, Accepted
}

// Deselect снимает слот с выбора
//
// Снятие первого слота оставляет остальные. Снятие любого другого обрезает блок
// начиная с этого слота: из [09:00, 09:30, 10:00] снятие 09:30 дает [09:00].
func Deselect(sel domain.Selection, key domain.SelectionKey) (domain.Selection, Outcome) {
	if sel.IsEmpty() || key.CourtID != sel.CourtID {
		return sel, Noop
	}
	idx := sel.IndexOf(key.StartTime)
	if idx < 0 {
		return sel, Noop
	}

	var keep []types.TimeString
	if idx == 0 {
		keep = sel.Times[1:]
	} else {
		keep = sel.Times[:idx]
	}

	if len(keep) == 0 {
		return domain.Selection{}, Removed
	}

	times := make([]types.TimeString, len(keep))
	copy(times, keep)

	return domain.Selection{
		CourtID:         sel.CourtID,
		DurationMinutes: sel.DurationMinutes,
		Times:           times,
	}, Removed
}

// Toggle обрабатывает клик по слоту: снимает выбранный слот или пытается выбрать новый
func Toggle(sel domain.Selection, slot domain.Slot) (domain.Selection, Outcome) {
	if sel.Contains(slot.Key()) {
		return Deselect(sel, slot.Key())
	}
	return Select(sel, slot)
}

// CanSelect определяет, активен ли слот в интерфейсе
// Слот активен, если он уже выбран или Select его примет
func CanSelect(sel domain.Selection, slot domain.Slot) bool {
	if sel.Contains(slot.Key()) {
		return true
	}
	_, outcome := Select(sel, slot)
	return outcome == Accepted
}

// Validate проверяет инвариант: один корт, времена строго по порядку с шагом в одну длительность
func Validate(sel domain.Selection) error {
	if sel.IsEmpty() {
		return nil
	}
	if sel.DurationMinutes <= 0 {
		return fmt.Errorf("%w: non-positive slot duration %d", ErrInvalidSelection, sel.DurationMinutes)
	}

	prev, err := sel.Times[0].Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
	}
	for _, t := range sel.Times[1:] {
		cur, err := t.Minutes()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidSelection, err)
		}
		if cur-prev != sel.DurationMinutes {
			return fmt.Errorf("%w: %s does not follow previous slot", ErrInvalidSelection, t)
		}
		prev = cur
	}
	return nil
}
