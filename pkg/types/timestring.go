package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	timeLayout        = "15:04"
	timeLayoutSeconds = "15:04:05"

	// MinutesPerDay количество минут в сутках
	MinutesPerDay = 24 * 60
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM" без привязки к дате
type TimeString string

// NewTimeString создает TimeString из time.Time (берутся только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" или "HH:MM:SS"
// Секунды отбрасываются, результат всегда нормализован к "HH:MM"
func NewTimeStringFromString(s string) (TimeString, error) {
	s = strings.TrimSpace(s)

	layout := timeLayout
	if strings.Count(s, ":") == 2 {
		layout = timeLayoutSeconds
	}

	parsed, err := time.Parse(layout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	return NewTimeString(parsed), nil
}

// FromMinutes строит TimeString из количества минут от полуночи
// Значения за пределами суток заворачиваются по модулю 24 часов
func FromMinutes(minutes int) TimeString {
	m := ((minutes % MinutesPerDay) + MinutesPerDay) % MinutesPerDay
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60))
}

// Minutes возвращает количество минут от полуночи
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// EndMinutes возвращает количество минут от полуночи для времени окончания интервала
// "00:00" в качестве конца интервала означает конец суток (1440), а не начало
func (t TimeString) EndMinutes() (int, error) {
	m, err := t.Minutes()
	if err != nil {
		return 0, err
	}
	if m == 0 {
		return MinutesPerDay, nil
	}
	return m, nil
}

// AddMinutes прибавляет минуты с переходом через полночь (по модулю 24 часов)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	m, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(m + minutes), nil
}

// IsBefore возвращает true, если t строго раньше other
// Некорректные значения никогда не сравниваются как "раньше"
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.Minutes()
	b, errB := other.Minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return other.IsBefore(t)
}

// OnDate возвращает абсолютный момент времени: дата date + время t в локации date
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	y, mo, d := date.Date()
	return time.Date(y, mo, d, m/60, m%60, 0, 0, date.Location()), nil
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM"
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
// Postgres отдает TIME как "HH:MM:SS", поэтому значение нормализуется
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
