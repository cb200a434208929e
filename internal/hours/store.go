package hours

import (
	"errors"
	"fmt"
	"time"

	"github.com/zivo-app/business-hours/backend/internal/domain"
)

const (
	defaultOpenTime  = "09:00"
	defaultCloseTime = "18:00"
)

// DayShift 是某一天的营业状态
type DayShift struct {
	Day             WeekDay `json:"day"`
	IsOpen          bool    `json:"isOpen"`
	OpenTime        string  `json:"openTime"`
	CloseTime       string  `json:"closeTime"`
	ShiftTimeID     string  `json:"shiftTimeId,omitempty"`
	BusinessShiftID string  `json:"businessShiftId,omitempty"`

	// 后端返回的时间段所挂靠的日期，保存时原样写回
	Anchor time.Time `json:"-"`
}

func (ds DayShift) provisioned() bool {
	return ds.ShiftTimeID != "" && ds.BusinessShiftID != ""
}

func defaultDayShift(day WeekDay) *DayShift {
	return &DayShift{
		Day:       day,
		IsOpen:    false,
		OpenTime:  defaultOpenTime,
		CloseTime: defaultCloseTime,
		Anchor:    defaultAnchor,
	}
}

// Store 保存一次页面会话内的营业时间，不是并发安全的，
// 调用方需要保证保存过程中不会再修改它
type Store struct {
	days map[WeekDay]*DayShift
}

func NewStore() *Store {
	s := &Store{
		days: make(map[WeekDay]*DayShift, len(weekDays)),
	}
	for _, day := range weekDays {
		s.days[day] = defaultDayShift(day)
	}
	return s
}

// Load 将后端返回的记录合并进来，不合法的记录会被跳过，
// 返回的错误包含所有被跳过的记录，其余记录照常合并
func (s *Store) Load(records []domain.BusinessShift) error {
	var errs []error

	for _, record := range records {
		day, err := NumberToDay(record.DayOfWeek)
		if err != nil {
			errs = append(errs, fmt.Errorf("business shift %s: %w", record.ID, err))
			continue
		}

		if record.ShiftTime == nil {
			errs = append(errs, fmt.Errorf("business shift %s: missing shift time", record.ID))
			continue
		}

		openTime, anchor, err := clockFromTimestamp(record.ShiftTime.StartTime)
		if err != nil {
			errs = append(errs, fmt.Errorf("business shift %s: start time: %w", record.ID, err))
			continue
		}
		closeTime, _, err := clockFromTimestamp(record.ShiftTime.EndTime)
		if err != nil {
			errs = append(errs, fmt.Errorf("business shift %s: end time: %w", record.ID, err))
			continue
		}

		s.days[day] = &DayShift{
			Day:             day,
			IsOpen:          record.IsActive,
			OpenTime:        openTime,
			CloseTime:       closeTime,
			ShiftTimeID:     record.ShiftTime.ID,
			BusinessShiftID: record.ID,
			Anchor:          anchor,
		}
	}

	return errors.Join(errs...)
}

func (s *Store) Apply(m Mutation) error {
	if m == nil {
		return ErrUnknownMutation
	}

	day := m.day()
	ds, ok := s.days[day]
	if !ok {
		return fmt.Errorf("apply mutation: unknown weekday %q", string(day))
	}

	m.apply(ds)
	return nil
}

func (s *Store) Get(day WeekDay) (DayShift, bool) {
	ds, ok := s.days[day]
	if !ok {
		return DayShift{}, false
	}
	return *ds, true
}

// Snapshot 返回当前状态的副本
func (s *Store) Snapshot() map[WeekDay]DayShift {
	snapshot := make(map[WeekDay]DayShift, len(s.days))
	for day, ds := range s.days {
		snapshot[day] = *ds
	}
	return snapshot
}

// Days 按周日到周六的顺序返回所有日期的状态
func (s *Store) Days() []DayShift {
	days := make([]DayShift, 0, len(weekDays))
	for _, day := range weekDays {
		days = append(days, *s.days[day])
	}
	return days
}

func (s *Store) setIDs(day WeekDay, shiftTimeID, businessShiftID string) {
	ds := s.days[day]
	ds.ShiftTimeID = shiftTimeID
	ds.BusinessShiftID = businessShiftID
}
