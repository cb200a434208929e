package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/zivo-app/business-hours/backend/internal/domain"
)

func (c *Client) CreateShiftTime(ctx context.Context, create domain.ShiftTimeCreate) (*domain.ShiftTime, error) {
	shiftTime := &domain.ShiftTime{}
	if err := c.do(ctx, http.MethodPost, "/v1/shift-times", create, shiftTime); err != nil {
		return nil, err
	}
	return shiftTime, nil
}

func (c *Client) UpdateShiftTime(ctx context.Context, update domain.ShiftTimeUpdate) error {
	return c.do(ctx, http.MethodPut, "/v1/shift-times/"+url.PathEscape(update.ID), update, nil)
}

func (c *Client) DeleteShiftTime(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/v1/shift-times/"+url.PathEscape(id), nil, nil)
}
