package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/zivo-app/business-hours/backend/internal/backend"
	"github.com/zivo-app/business-hours/backend/internal/config"
	"github.com/zivo-app/business-hours/backend/internal/hours"
)

func main() {
	var businessID string
	var token string
	var openTime string
	var closeTime string
	var days string

	flag.StringVar(&businessID, "business-id", "", "要创建营业时间的商家 ID")
	flag.StringVar(&token, "token", "", "调用后端时使用的令牌")
	flag.StringVar(&openTime, "open", "09:00", "开门时间")
	flag.StringVar(&closeTime, "close", "18:00", "关门时间")
	flag.StringVar(&days, "days", "monday,tuesday,wednesday,thursday,friday", "营业的日期，以逗号分隔")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if businessID == "" || token == "" {
		logger.Error("必须指定 -business-id 和 -token")
		os.Exit(1)
	}

	// 读取配置文件
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("无法读取配置文件", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var openDays []hours.WeekDay
	for _, s := range strings.Split(days, ",") {
		day, err := hours.ParseWeekDay(s)
		if err != nil {
			logger.Error("日期不合法", slog.String("day", s))
			os.Exit(1)
		}
		openDays = append(openDays, day)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Reconciler.SaveTimeout)*time.Second)
	defer cancel()

	client := backend.NewClient(cfg).WithToken(token)

	// 已经存在的营业日不会被重复创建
	shifts, err := client.GetBusinessShifts(ctx, businessID)
	if err != nil {
		logger.Error("无法获取商家的营业时间", slog.String("error", err.Error()))
		os.Exit(1)
	}

	store := hours.NewStore()
	if err := store.Load(shifts); err != nil {
		logger.Warn("部分营业时间记录无法解析", slog.String("error", err.Error()))
	}

	for _, day := range openDays {
		for _, m := range []hours.Mutation{
			hours.SetOpen{Day: day, IsOpen: true},
			hours.SetOpenTime{Day: day, Time: openTime},
			hours.SetCloseTime{Day: day, Time: closeTime},
		} {
			if err := store.Apply(m); err != nil {
				logger.Error("无法修改营业时间", slog.String("error", err.Error()))
				os.Exit(1)
			}
		}
	}

	result := hours.Provision(ctx, client, businessID, store)
	for _, e := range result.Errors {
		logger.Error("无法创建营业日", slog.String("day", e.Day.String()), slog.String("error", e.Error()))
	}

	logger.Info("创建营业日完成", slog.Int("created", len(result.Created)), slog.Int("failed", len(result.Errors)))
	if len(result.Errors) > 0 {
		os.Exit(1)
	}
}
