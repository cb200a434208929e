package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/zivo-app/business-hours/backend/internal/config"
)

// Repository 保存营业时间保存记录，只负责审计数据，营业时间本身存放在预约平台后端
type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}
