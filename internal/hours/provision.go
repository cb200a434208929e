package hours

import (
	"context"
	"errors"
	"fmt"

	"github.com/zivo-app/business-hours/backend/internal/domain"
)

// Creator 用于在后端创建时间段和营业日分配资源
type Creator interface {
	CreateShiftTime(ctx context.Context, create domain.ShiftTimeCreate) (*domain.ShiftTime, error)
	CreateBusinessShift(ctx context.Context, create domain.BusinessShiftCreate) (*domain.BusinessShift, error)
	DeleteShiftTime(ctx context.Context, id string) error
}

type ProvisionResult struct {
	Created []WeekDay
	Errors  []SaveError
}

// Provision 为营业但尚未在后端创建资源的日期依次创建时间段和营业日分配，
// 成功后将资源 ID 写回 store。已经拥有资源的日期不会被修改。
func Provision(ctx context.Context, creator Creator, businessID string, store *Store) ProvisionResult {
	var result ProvisionResult

	for _, ds := range store.Days() {
		if ds.provisioned() || !ds.IsOpen {
			continue
		}

		openTime, okOpen := NormalizeTime(ds.OpenTime)
		closeTime, okClose := NormalizeTime(ds.CloseTime)
		if !okOpen || !okClose {
			result.Errors = append(result.Errors, SaveError{Day: ds.Day, Reason: ReasonInvalidTime})
			continue
		}

		anchor := ds.Anchor
		if anchor.IsZero() {
			anchor = defaultAnchor
		}

		// 第二步依赖第一步返回的 ID，只能顺序执行
		shiftTime, err := creator.CreateShiftTime(ctx, domain.ShiftTimeCreate{
			StartTime: timestampFromClock(anchor, openTime),
			EndTime:   timestampFromClock(anchor, closeTime),
		})
		if err != nil {
			result.Errors = append(result.Errors, SaveError{Day: ds.Day, Reason: ReasonNetwork, Err: fmt.Errorf("create shift time: %w", err)})
			continue
		}

		businessShift, err := creator.CreateBusinessShift(ctx, domain.BusinessShiftCreate{
			BusinessID:  businessID,
			DayOfWeek:   DayToNumber(ds.Day),
			ShiftTimeID: shiftTime.ID,
		})
		if err != nil {
			err = fmt.Errorf("create business shift: %w", err)
			// 删除刚创建的时间段，避免在后端留下没有被引用的资源
			if delErr := creator.DeleteShiftTime(ctx, shiftTime.ID); delErr != nil {
				err = errors.Join(err, fmt.Errorf("delete shift time %s: %w", shiftTime.ID, delErr))
			}
			result.Errors = append(result.Errors, SaveError{Day: ds.Day, Reason: ReasonNetwork, Err: err})
			continue
		}

		store.setIDs(ds.Day, shiftTime.ID, businessShift.ID)
		result.Created = append(result.Created, ds.Day)
	}

	return result
}
