package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/zivo-app/business-hours/backend/internal/domain"
)

func (c *Client) GetBusinessShifts(ctx context.Context, businessID string) ([]domain.BusinessShift, error) {
	var shifts []domain.BusinessShift
	if err := c.do(ctx, http.MethodGet, "/v1/business-shifts/business/"+url.PathEscape(businessID), nil, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (c *Client) CreateBusinessShift(ctx context.Context, create domain.BusinessShiftCreate) (*domain.BusinessShift, error) {
	shift := &domain.BusinessShift{}
	if err := c.do(ctx, http.MethodPost, "/v1/business-shifts", create, shift); err != nil {
		return nil, err
	}
	return shift, nil
}

func (c *Client) UpdateBusinessShift(ctx context.Context, update domain.BusinessShiftUpdate) error {
	return c.do(ctx, http.MethodPut, "/v1/business-shifts/"+url.PathEscape(update.ID), update, nil)
}
