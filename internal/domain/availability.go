package domain

import "github.com/protap/TAP-LandingService/pkg/types"

// Availability повторяющееся недельное окно приёма для лендинга
// day_of_week: 0=понедельник … 6=воскресенье
// Статична после создания: путей обновления и удаления нет
type Availability struct {
	ID               int64
	LandingRequestID int64
	DayOfWeek        int
	StartTime        types.TimeString
	EndTime          types.TimeString
	SlotMinutes      int
}

// Agenda расчётное расписание для календаря публичной страницы
// Окно (start/end/slot) берётся из ПЕРВОЙ строки availability:
// отдельные часы по дням недели не поддерживаются
type Agenda struct {
	Weekdays    []int // разрешённые дни недели, 0=понедельник
	StartTime   types.TimeString
	EndTime     types.TimeString
	SlotMinutes int

	// Занятые слоты в окне бронирования: ISO дата -> времена "HH:MM"
	// Информирует UI; сам по себе двойное бронирование не предотвращает
	BookedSlots map[string][]string
}
