package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	coreport "github.com/amirhossein-jamali/crowdfund-ledger/internal/domain/port/core"
	coremocks "github.com/amirhossein-jamali/crowdfund-ledger/mocks/port/core"
)

func TestDatabaseLogger_Trace(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM projects", 1 }

	t.Run("sql error logs at error level with request id", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Error("SQL Error", mock.MatchedBy(func(f map[string]any) bool {
			return f["request_id"] == "req-1" && f["type"] == "SELECT" && f["error"] == "boom"
		})).Once()

		l := NewDatabaseLogger(log, "info", time.Second)
		ctx := coreport.WithRequestID(context.Background(), "req-1")
		l.Trace(ctx, time.Now(), sql, errors.New("boom"))
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Debug("SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(log, "info", time.Second)
		l.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	})

	t.Run("slow query warns", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)
		log.EXPECT().Warn("Slow SQL Query", mock.Anything).Once()

		l := NewDatabaseLogger(log, "warn", time.Millisecond)
		l.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		log := coremocks.NewMockLogger(t)

		l := NewDatabaseLogger(log, "silent", time.Second)
		l.Trace(context.Background(), time.Now(), sql, errors.New("boom"))
		l.LogMode(gormlogger.Silent).Error(context.Background(), "ignored")
	})
}

func TestParseGormLogLevel(t *testing.T) {
	cases := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"ERROR":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"info":   gormlogger.Info,
		"debug":  gormlogger.Info,
	}
	for in, want := range cases {
		if got := ParseGormLogLevel(in); got != want {
			t.Errorf("ParseGormLogLevel(%q) = %v, want %v", in, got, want)
		}
	}
}
