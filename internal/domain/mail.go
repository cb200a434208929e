package domain

const MailTypeHoursSaveFailed = "hours_save_failed"

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type HoursSaveFailedMailData struct {
	BusinessID string              `json:"businessId"`
	ReportID   string              `json:"reportId"`
	Failures   []SaveReportOutcome `json:"failures"`
}
