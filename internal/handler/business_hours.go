package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/zivo-app/business-hours/backend/internal/domain"
	"github.com/zivo-app/business-hours/backend/internal/hours"
)

const (
	defaultSaveReportLimit = 20
	maxSaveReportLimit     = 100
)

type businessHoursResponse struct {
	Days     []hours.DayShift   `json:"days"`
	Outcomes []hours.DayOutcome `json:"outcomes,omitempty"`
	ReportID string             `json:"reportId,omitempty"`
}

// loadStore 从后端拉取营业时间并创建一个新的 store，不合法的记录只记日志
func (h *Handler) loadStore(ctx context.Context, client HoursBackend, businessID string) (*hours.Store, error) {
	shifts, err := client.GetBusinessShifts(ctx, businessID)
	if err != nil {
		return nil, err
	}

	store := hours.NewStore()
	if err := store.Load(shifts); err != nil {
		slog.Warn("部分营业时间记录无法解析", "businessId", businessID, "error", err)
	}

	return store, nil
}

func (h *Handler) GetBusinessHours(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(BusinessIDCtxKey).(string)
	token := r.Context().Value(TokenCtxKey).(string)

	store, err := h.loadStore(r.Context(), h.newBackend(token), businessID)
	if err != nil {
		h.backendError(w, r, err)
		return
	}

	h.successResponse(w, r, "business hours loaded", businessHoursResponse{Days: store.Days()})
}

type mutationRequest struct {
	Type   string  `json:"type" validate:"required,oneof=setOpen setOpenTime setCloseTime"`
	Day    string  `json:"day" validate:"required,oneof=sunday monday tuesday wednesday thursday friday saturday"`
	IsOpen *bool   `json:"isOpen" validate:"required_if=Type setOpen"`
	Time   *string `json:"time" validate:"required_unless=Type setOpen"`
}

func (m mutationRequest) toMutation() (hours.Mutation, error) {
	day, err := hours.ParseWeekDay(m.Day)
	if err != nil {
		return nil, err
	}

	switch m.Type {
	case "setOpen":
		return hours.SetOpen{Day: day, IsOpen: *m.IsOpen}, nil
	case "setOpenTime":
		return hours.SetOpenTime{Day: day, Time: *m.Time}, nil
	case "setCloseTime":
		return hours.SetCloseTime{Day: day, Time: *m.Time}, nil
	default:
		return nil, fmt.Errorf("%w: %s", hours.ErrUnknownMutation, m.Type)
	}
}

func (h *Handler) SaveBusinessHours(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(BusinessIDCtxKey).(string)
	token := r.Context().Value(TokenCtxKey).(string)
	email := r.Context().Value(EmailCtxKey).(string)

	var req struct {
		Mutations []mutationRequest `json:"mutations" validate:"required,dive"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	mutations := make([]hours.Mutation, 0, len(req.Mutations))
	for _, m := range req.Mutations {
		mutation, err := m.toMutation()
		if err != nil {
			h.badRequest(w, r, err)
			return
		}
		mutations = append(mutations, mutation)
	}

	// 同一个商家同一时间只允许一次保存
	lockKey := fmt.Sprintf("business_hours_save_%s", businessID)
	lockToken, ok, err := h.locker.Acquire(r.Context(), lockKey, time.Duration(h.config.Redis.LockExpiration)*time.Second)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}
	if !ok {
		h.errorResponse(w, r, "business hours are already being saved, please try again shortly")
		return
	}
	defer func() {
		if err := h.locker.Release(context.Background(), lockKey, lockToken); err != nil {
			slog.Error("无法释放营业时间保存锁", "businessId", businessID, "error", err)
		}
	}()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Reconciler.SaveTimeout)*time.Second)
	defer cancel()

	client := h.newBackend(token)

	// 以后端的数据为准，在其基础上应用本次的修改
	store, err := h.loadStore(ctx, client, businessID)
	if err != nil {
		h.backendError(w, r, err)
		return
	}
	for _, m := range mutations {
		if err := store.Apply(m); err != nil {
			h.badRequest(w, r, err)
			return
		}
	}

	startedAt := time.Now()
	reconciler := hours.NewReconciler(client, businessID,
		hours.WithMaxConcurrentDays(h.config.Reconciler.MaxConcurrentDays),
		hours.WithLogger(slog.Default().With("businessId", businessID)),
	)
	result := reconciler.Save(ctx, store)
	finishedAt := time.Now()

	report := newSaveReport(businessID, result, startedAt, finishedAt)
	if err := h.repository.CreateSaveReport(report); err != nil {
		// 保存已经完成，记录失败不影响返回结果
		slog.Error("无法记录营业时间保存结果", "businessId", businessID, "error", err)
	}

	failures := result.Errors()
	if len(failures) > 0 && email != "" {
		h.notifySaveFailed(email, report)
	}

	resp := businessHoursResponse{
		Days:     store.Days(),
		Outcomes: result.Outcomes,
		ReportID: report.ID.String(),
	}
	if len(failures) > 0 {
		h.writeJSON(w, r, http.StatusOK, Response{
			Success: false,
			Message: fmt.Sprintf("%d day(s) could not be saved", len(failures)),
			Data:    resp,
		})
		return
	}

	h.successResponse(w, r, "business hours updated", resp)
}

func (h *Handler) notifySaveFailed(email string, report *domain.SaveReport) {
	data := domain.HoursSaveFailedMailData{
		BusinessID: report.BusinessID,
		ReportID:   report.ID.String(),
	}
	for _, o := range report.Outcomes {
		if o.State == string(hours.StateFailed) {
			data.Failures = append(data.Failures, o)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.RabbitMQ.PublishTimeout)*time.Second)
	defer cancel()

	if err := h.mail.Publish(ctx, domain.MailMessage{
		Type: domain.MailTypeHoursSaveFailed,
		To:   email,
		Data: data,
	}); err != nil {
		slog.Error("无法发送营业时间保存失败通知", "businessId", report.BusinessID, "error", err)
	}
}

func newSaveReport(businessID string, result hours.SaveResult, startedAt, finishedAt time.Time) *domain.SaveReport {
	report := &domain.SaveReport{
		ID:         uuid.New(),
		BusinessID: businessID,
		Committed:  int32(result.Count(hours.StateCommitted)),
		Skipped:    int32(result.Count(hours.StateSkipped)),
		Failed:     int32(result.Count(hours.StateFailed)),
		Outcomes:   make([]domain.SaveReportOutcome, 0, len(result.Outcomes)),
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}

	for _, o := range result.Outcomes {
		report.Outcomes = append(report.Outcomes, domain.SaveReportOutcome{
			Day:    string(o.Day),
			State:  string(o.State),
			Reason: string(o.Reason),
		})
	}

	return report
}

func (h *Handler) GetSaveReports(w http.ResponseWriter, r *http.Request) {
	businessID := r.Context().Value(BusinessIDCtxKey).(string)

	limit := defaultSaveReportLimit
	if param := r.URL.Query().Get("limit"); param != "" {
		n, err := strconv.Atoi(param)
		if err != nil || n < 1 || n > maxSaveReportLimit {
			h.errorResponse(w, r, fmt.Sprintf("limit must be between 1 and %d", maxSaveReportLimit))
			return
		}
		limit = n
	}

	reports, err := h.repository.GetSaveReportsByBusinessID(businessID, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "save reports loaded", reports)
}
