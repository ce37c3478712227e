package get_agenda

import (
	"encoding/json"
	"fmt"

	"github.com/protap/TAP-LandingService/internal/domain"
	"github.com/protap/TAP-LandingService/pkg/types"
)

// Request модель запроса расписания лендинга
type Request struct {
	LandingID int64
}

// Response расчётное расписание для календаря публичной страницы.
// nil-ответ usecase означает "агенда не настроена": календарь не показывается
type Response struct {
	Weekdays    []int               `json:"weekdays"`
	StartTime   types.TimeString    `json:"start_time"`
	EndTime     types.TimeString    `json:"end_time"`
	SlotMinutes int                 `json:"slot_minutes"`
	BookedSlots map[string][]string `json:"booked_slots"`
}

// JSON сериализует расписание в блоб для встраивания в страницу
func (r *Response) JSON() (string, error) {
	blob, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("%w: marshal agenda: %v", ErrInternal, err)
	}
	return string(blob), nil
}

func responseFromAgenda(agenda *domain.Agenda) *Response {
	return &Response{
		Weekdays:    agenda.Weekdays,
		StartTime:   agenda.StartTime,
		EndTime:     agenda.EndTime,
		SlotMinutes: agenda.SlotMinutes,
		BookedSlots: agenda.BookedSlots,
	}
}
