package hours

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// NormalizeTime 将 "9:5" 这样的输入规范化为 "09:05"，输入不合法时第二个返回值为 false
func NormalizeTime(raw string) (string, bool) {
	parts := strings.Split(raw, ":")
	if len(parts) != 2 {
		return "", false
	}

	hour, ok := parseClockPart(parts[0], 23)
	if !ok {
		return "", false
	}
	minute, ok := parseClockPart(parts[1], 59)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("%02d:%02d", hour, minute), true
}

func parseClockPart(s string, upper int) (int, bool) {
	if s == "" {
		return 0, false
	}
	// strconv.Atoi 会接受 "+5" 这样的写法，这里只允许纯数字
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil || n > upper {
		return 0, false
	}
	return n, true
}

// 后端把所有班次时间都挂在一个固定的日期上，这个日期本身没有意义
var defaultAnchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// 与 JavaScript 的 Date.toISOString 输出保持一致
const isoLayout = "2006-01-02T15:04:05.000Z"

// clockFromTimestamp 取出 ISO-8601 时间戳在 UTC 下的时分，以及它所在的日期
func clockFromTimestamp(ts string) (string, time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, ts)
	if err != nil {
		return "", time.Time{}, err
	}

	t = t.UTC()
	anchor := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return t.Format("15:04"), anchor, nil
}

// timestampFromClock 要求 clock 已经过 NormalizeTime 规范化
func timestampFromClock(anchor time.Time, clock string) string {
	hour, _ := strconv.Atoi(clock[:2])
	minute, _ := strconv.Atoi(clock[3:])

	t := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), hour, minute, 0, 0, time.UTC)
	return t.Format(isoLayout)
}
