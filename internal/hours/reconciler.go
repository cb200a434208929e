package hours

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/zivo-app/business-hours/backend/internal/domain"
	"golang.org/x/sync/errgroup"
)

// Backend 是保存营业时间时需要调用的两个外部更新接口
type Backend interface {
	UpdateShiftTime(ctx context.Context, update domain.ShiftTimeUpdate) error
	UpdateBusinessShift(ctx context.Context, update domain.BusinessShiftUpdate) error
}

type DayState string

const (
	StateSkipped   DayState = "skipped"
	StateCommitted DayState = "committed"
	StateFailed    DayState = "failed"
)

type FailureReason string

const (
	ReasonInvalidTime FailureReason = "invalid-time"
	ReasonNetwork     FailureReason = "network"
)

type SaveError struct {
	Day    WeekDay
	Reason FailureReason
	Err    error
}

func (e SaveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Day, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Day, e.Reason)
}

func (e SaveError) Unwrap() error {
	return e.Err
}

// DayOutcome 是某一天在一次保存过程中的最终状态
type DayOutcome struct {
	Day    WeekDay       `json:"day"`
	State  DayState      `json:"state"`
	Reason FailureReason `json:"reason,omitempty"`
	Calls  int           `json:"-"`
	Err    error         `json:"-"`
}

// SaveResult 中的 Outcomes 按周日到周六排列
type SaveResult struct {
	Outcomes []DayOutcome `json:"outcomes"`
}

func (r SaveResult) Errors() []SaveError {
	var errs []SaveError
	for _, o := range r.Outcomes {
		if o.State == StateFailed {
			errs = append(errs, SaveError{Day: o.Day, Reason: o.Reason, Err: o.Err})
		}
	}
	return errs
}

// Err 在没有任何一天失败时返回 nil
func (r SaveResult) Err() error {
	var errs []error
	for _, e := range r.Errors() {
		errs = append(errs, e)
	}
	return errors.Join(errs...)
}

func (r SaveResult) Count(state DayState) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == state {
			n++
		}
	}
	return n
}

// CallCount 返回这次保存一共发起了多少次外部调用
func (r SaveResult) CallCount() int {
	n := 0
	for _, o := range r.Outcomes {
		n += o.Calls
	}
	return n
}

type Reconciler struct {
	backend           Backend
	businessID        string
	maxConcurrentDays int
	logger            *slog.Logger
}

type ReconcilerOption func(*Reconciler)

func WithMaxConcurrentDays(n int) ReconcilerOption {
	return func(r *Reconciler) {
		if n > 0 {
			r.maxConcurrentDays = n
		}
	}
}

func WithLogger(logger *slog.Logger) ReconcilerOption {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

func NewReconciler(backend Backend, businessID string, opts ...ReconcilerOption) *Reconciler {
	r := &Reconciler{
		backend:           backend,
		businessID:        businessID,
		maxConcurrentDays: len(weekDays),
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Save 将 store 中每一天的修改推送到后端。
// 某一天失败不会影响其他天，已经提交成功的天也不会回滚。
func (r *Reconciler) Save(ctx context.Context, store *Store) SaveResult {
	// 在开始时取快照，之后对 store 的修改不会影响这次保存
	snapshot := store.Snapshot()

	result := SaveResult{
		Outcomes: make([]DayOutcome, len(weekDays)),
	}

	var g errgroup.Group
	g.SetLimit(r.maxConcurrentDays)

	for i, day := range weekDays {
		ds := snapshot[day]
		g.Go(func() error {
			// 每个 goroutine 只写自己的下标，不需要加锁
			result.Outcomes[i] = r.saveDay(ctx, ds)
			return nil
		})
	}
	_ = g.Wait()

	return result
}

func (r *Reconciler) saveDay(ctx context.Context, ds DayShift) DayOutcome {
	// 还没有在后端创建对应资源的日期直接跳过，创建资源不是这里的职责
	if !ds.provisioned() {
		return DayOutcome{Day: ds.Day, State: StateSkipped}
	}

	openTime, okOpen := NormalizeTime(ds.OpenTime)
	closeTime, okClose := NormalizeTime(ds.CloseTime)
	if !okOpen || !okClose {
		r.logger.Warn("营业时间格式错误，跳过该日", "day", ds.Day, "openTime", ds.OpenTime, "closeTime", ds.CloseTime)
		return DayOutcome{Day: ds.Day, State: StateFailed, Reason: ReasonInvalidTime}
	}

	anchor := ds.Anchor
	if anchor.IsZero() {
		anchor = defaultAnchor
	}

	shiftTimeUpdate := domain.ShiftTimeUpdate{
		ID:        ds.ShiftTimeID,
		StartTime: timestampFromClock(anchor, openTime),
		EndTime:   timestampFromClock(anchor, closeTime),
	}
	businessShiftUpdate := domain.BusinessShiftUpdate{
		ID:          ds.BusinessShiftID,
		BusinessID:  r.businessID,
		DayOfWeek:   DayToNumber(ds.Day),
		ShiftTimeID: ds.ShiftTimeID,
		IsActive:    ds.IsOpen,
	}

	// 两个更新互不依赖，同时发出
	var (
		wg          sync.WaitGroup
		shiftErr    error
		businessErr error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		shiftErr = r.backend.UpdateShiftTime(ctx, shiftTimeUpdate)
	}()
	go func() {
		defer wg.Done()
		businessErr = r.backend.UpdateBusinessShift(ctx, businessShiftUpdate)
	}()
	wg.Wait()

	if err := errors.Join(shiftErr, businessErr); err != nil {
		r.logger.Warn("无法更新营业时间", "day", ds.Day, "error", err)
		return DayOutcome{Day: ds.Day, State: StateFailed, Reason: ReasonNetwork, Calls: 2, Err: err}
	}

	return DayOutcome{Day: ds.Day, State: StateCommitted, Calls: 2}
}
