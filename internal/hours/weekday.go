package hours

import (
	"errors"
	"fmt"
	"strings"
)

// WeekDay 是星期几的符号表示
type WeekDay string

const (
	Sunday    WeekDay = "sunday"
	Monday    WeekDay = "monday"
	Tuesday   WeekDay = "tuesday"
	Wednesday WeekDay = "wednesday"
	Thursday  WeekDay = "thursday"
	Friday    WeekDay = "friday"
	Saturday  WeekDay = "saturday"
)

var ErrInvalidWeekdayCode = errors.New("invalid weekday code")

// 下标即后端使用的编号（0 = 周日），必须与后端保持一致
var weekDays = [7]WeekDay{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

var dayNumbers = map[WeekDay]int{
	Sunday:    0,
	Monday:    1,
	Tuesday:   2,
	Wednesday: 3,
	Thursday:  4,
	Friday:    5,
	Saturday:  6,
}

// WeekDays 按编号顺序（周日到周六）返回所有的星期
func WeekDays() []WeekDay {
	days := make([]WeekDay, len(weekDays))
	copy(days, weekDays[:])
	return days
}

// DayToNumber 传入不合法的 WeekDay 属于调用方的编程错误，直接 panic
func DayToNumber(d WeekDay) int {
	n, ok := dayNumbers[d]
	if !ok {
		panic(fmt.Sprintf("hours: unknown weekday %q", string(d)))
	}
	return n
}

func NumberToDay(n int) (WeekDay, error) {
	if n < 0 || n >= len(weekDays) {
		return "", fmt.Errorf("%w: %d", ErrInvalidWeekdayCode, n)
	}
	return weekDays[n], nil
}

// ParseWeekDay 用于解析不可信的输入（例如请求体），不区分大小写
func ParseWeekDay(s string) (WeekDay, error) {
	d := WeekDay(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := dayNumbers[d]; !ok {
		return "", fmt.Errorf("unknown weekday %q", s)
	}
	return d, nil
}

func (d WeekDay) Valid() bool {
	_, ok := dayNumbers[d]
	return ok
}

func (d WeekDay) String() string {
	return string(d)
}
