package bookingapi

import (
	"bytes"
	"encoding/json"

	"github.com/m04kA/SMC-CourtBooking/internal/domain"
)

// Slot слот корта в ответе API бронирований
// Поля принимают любой JSON: кривое значение доходит до нормализации и считается там
type Slot struct {
	ID                    Text   `json:"id"`
	HorarioInicio         Text   `json:"horarioInicio"`
	HorarioFim            Text   `json:"horarioFim"`
	Valor                 Amount `json:"valor"`
	StatusDisponibilidade Text   `json:"statusDisponibilidade"`
}

// Text строковое поле ответа: строка как есть, число - его запись ("id": 17 -> "17"),
// null - пустая строка, остальное - исходный JSON
type Text string

func (t *Text) UnmarshalJSON(data []byte) error {
	s, err := rawText(data)
	if err != nil {
		return err
	}
	*t = Text(s)
	return nil
}

// Amount цена в том виде, в котором ее прислали: число (100.5) или строка ("R$ 100,50")
// Разбор в деньги выполняется при нормализации слотов
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	s, err := rawText(data)
	if err != nil {
		return err
	}
	*a = Amount(s)
	return nil
}

func rawText(data []byte) (string, error) {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0, bytes.Equal(data, []byte("null")):
		return "", nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return "", err
		}
		return s, nil
	default:
		return string(data), nil
	}
}

// ToRecord приводит слот ответа к записи домена
func (s Slot) ToRecord() domain.SlotRecord {
	return domain.SlotRecord{
		ID:                    string(s.ID),
		HorarioInicio:         string(s.HorarioInicio),
		HorarioFim:            string(s.HorarioFim),
		Valor:                 string(s.Valor),
		StatusDisponibilidade: string(s.StatusDisponibilidade),
	}
}

// BookingCreated ответ API на создание бронирования
type BookingCreated struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// ErrorResponse модель ошибки от API бронирований
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
