package domain

// ShiftTime 是后端保存的时间段资源，startTime/endTime 为 ISO-8601 时间戳，
// 其中日期部分只是占位，真正有意义的是 UTC 下的时分
type ShiftTime struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BusinessShift 是后端保存的营业日分配资源，将商家、星期几（0 = 周日）和时间段关联起来
type BusinessShift struct {
	ID          string     `json:"id"`
	BusinessID  string     `json:"businessId"`
	DayOfWeek   int        `json:"dayOfWeek"`
	ShiftTimeID string     `json:"shiftTimeId"`
	IsActive    bool       `json:"isActive"`
	ShiftTime   *ShiftTime `json:"shiftTime"`
}

type ShiftTimeUpdate struct {
	ID        string `json:"id"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type ShiftTimeCreate struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type BusinessShiftUpdate struct {
	ID          string `json:"id"`
	BusinessID  string `json:"businessId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	ShiftTimeID string `json:"shiftTimeId"`
	IsActive    bool   `json:"isActive"`
}

type BusinessShiftCreate struct {
	BusinessID  string `json:"businessId"`
	DayOfWeek   int    `json:"dayOfWeek"`
	ShiftTimeID string `json:"shiftTimeId"`
}
