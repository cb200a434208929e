package domain

import (
	"time"

	"github.com/google/uuid"
)

type SaveReportOutcome struct {
	Day    string `json:"day"`
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

// SaveReport 记录一次保存营业时间的过程，仅用于审计，不会被读回到营业时间状态中
type SaveReport struct {
	ID         uuid.UUID           `json:"id"`
	BusinessID string              `json:"businessId"`
	Committed  int32               `json:"committed"`
	Skipped    int32               `json:"skipped"`
	Failed     int32               `json:"failed"`
	Outcomes   []SaveReportOutcome `json:"outcomes"`
	StartedAt  time.Time           `json:"startedAt"`
	FinishedAt time.Time           `json:"finishedAt"`
}
