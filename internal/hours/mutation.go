package hours

import "errors"

var ErrUnknownMutation = errors.New("unknown mutation")

// Mutation 是对 Store 中某一天的一次修改，只能是 SetOpen、SetOpenTime、SetCloseTime 之一
type Mutation interface {
	day() WeekDay
	apply(ds *DayShift)
}

type SetOpen struct {
	Day    WeekDay
	IsOpen bool
}

func (m SetOpen) day() WeekDay { return m.Day }
func (m SetOpen) apply(ds *DayShift) { ds.IsOpen = m.IsOpen }

// SetOpenTime 不做校验，原样保存用户的输入，保存时才会规范化
type SetOpenTime struct {
	Day  WeekDay
	Time string
}

func (m SetOpenTime) day() WeekDay { return m.Day }
func (m SetOpenTime) apply(ds *DayShift) { ds.OpenTime = m.Time }

type SetCloseTime struct {
	Day  WeekDay
	Time string
}

func (m SetCloseTime) day() WeekDay { return m.Day }
func (m SetCloseTime) apply(ds *DayShift) { ds.CloseTime = m.Time }
