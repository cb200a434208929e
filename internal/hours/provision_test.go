package hours

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zivo-app/business-hours/backend/internal/domain"
)

type fakeCreator struct {
	shiftTimes     []domain.ShiftTimeCreate
	businessShifts []domain.BusinessShiftCreate
	deleted        []string
	failDay        int
}

func (f *fakeCreator) CreateShiftTime(_ context.Context, create domain.ShiftTimeCreate) (*domain.ShiftTime, error) {
	f.shiftTimes = append(f.shiftTimes, create)
	return &domain.ShiftTime{ID: fmt.Sprintf("st-%d", len(f.shiftTimes)), StartTime: create.StartTime, EndTime: create.EndTime}, nil
}

func (f *fakeCreator) CreateBusinessShift(_ context.Context, create domain.BusinessShiftCreate) (*domain.BusinessShift, error) {
	if create.DayOfWeek == f.failDay {
		return nil, errors.New("backend unavailable")
	}
	f.businessShifts = append(f.businessShifts, create)
	return &domain.BusinessShift{ID: fmt.Sprintf("bs-%d", create.DayOfWeek), BusinessID: create.BusinessID, DayOfWeek: create.DayOfWeek, ShiftTimeID: create.ShiftTimeID}, nil
}

func (f *fakeCreator) DeleteShiftTime(_ context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestProvision(t *testing.T) {
	creator := &fakeCreator{failDay: -1}
	store := NewStore()
	require.NoError(t, store.Load([]domain.BusinessShift{{
		ID:        "existing",
		DayOfWeek: 1,
		IsActive:  true,
		ShiftTime: &domain.ShiftTime{ID: "st-existing", StartTime: "2025-01-01T09:00:00Z", EndTime: "2025-01-01T18:00:00Z"},
	}}))
	for _, day := range []WeekDay{Monday, Tuesday, Wednesday} {
		require.NoError(t, store.Apply(SetOpen{Day: day, IsOpen: true}))
	}
	require.NoError(t, store.Apply(SetOpenTime{Day: Tuesday, Time: "8:30"}))

	result := Provision(context.Background(), creator, "biz-1", store)

	assert.Empty(t, result.Errors)
	assert.Equal(t, []WeekDay{Tuesday, Wednesday}, result.Created)
	require.Len(t, creator.shiftTimes, 2)
	assert.Equal(t, "2025-01-01T08:30:00.000Z", creator.shiftTimes[0].StartTime)
	assert.Equal(t, domain.BusinessShiftCreate{BusinessID: "biz-1", DayOfWeek: 2, ShiftTimeID: "st-1"}, creator.businessShifts[0])

	tuesday, _ := store.Get(Tuesday)
	assert.Equal(t, "st-1", tuesday.ShiftTimeID)
	assert.Equal(t, "bs-2", tuesday.BusinessShiftID)
	assert.Empty(t, creator.deleted)

	monday, _ := store.Get(Monday)
	assert.Equal(t, "existing", monday.BusinessShiftID)
}

func TestProvisionPartialFailure(t *testing.T) {
	creator := &fakeCreator{failDay: 3}
	store := NewStore()
	for _, day := range []WeekDay{Wednesday, Thursday} {
		require.NoError(t, store.Apply(SetOpen{Day: day, IsOpen: true}))
	}
	require.NoError(t, store.Apply(SetOpen{Day: Friday, IsOpen: true}))
	require.NoError(t, store.Apply(SetCloseTime{Day: Friday, Time: "nope"}))

	result := Provision(context.Background(), creator, "biz-1", store)

	assert.Equal(t, []WeekDay{Thursday}, result.Created)
	require.Len(t, result.Errors, 2)
	assert.Equal(t, Wednesday, result.Errors[0].Day)
	assert.Equal(t, ReasonNetwork, result.Errors[0].Reason)
	assert.Equal(t, Friday, result.Errors[1].Day)
	assert.Equal(t, ReasonInvalidTime, result.Errors[1].Reason)

	wednesday, _ := store.Get(Wednesday)
	assert.Empty(t, wednesday.BusinessShiftID)
	assert.Equal(t, []string{"st-1"}, creator.deleted)
}
