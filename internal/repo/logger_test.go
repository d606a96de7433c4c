package repo

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func captureGlobal(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevLogger, prevLevel := log.Logger, zerolog.GlobalLevel()
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	t.Cleanup(func() {
		log.Logger = prevLogger
		zerolog.SetGlobalLevel(prevLevel)
	})
	return &buf
}

func TestLogger_TraceLevels(t *testing.T) {
	sql := func() (string, int64) { return "SELECT * FROM recipes", 3 }
	ctx := context.Background()

	cases := []struct {
		name  string
		level gormlogger.LogLevel
		begin time.Time
		err   error
		want  string // empty means nothing logged
	}{
		{"failure", gormlogger.Warn, time.Now(), errors.New("disk I/O error"), `"level":"error"`},
		{"not found is quiet", gormlogger.Warn, time.Now(), gorm.ErrRecordNotFound, ""},
		{"slow", gormlogger.Warn, time.Now().Add(-time.Second), nil, `"level":"warn"`},
		{"fast at warn", gormlogger.Warn, time.Now(), nil, ""},
		{"info traces at debug", gormlogger.Info, time.Now(), nil, `"level":"debug"`},
		{"silent", gormlogger.Silent, time.Now(), errors.New("x"), ""},
	}
	for _, tc := range cases {
		buf := captureGlobal(t)
		l := NewLogger(100 * time.Millisecond).LogMode(tc.level)
		l.Trace(ctx, tc.begin, sql, tc.err)

		out := buf.String()
		if tc.want == "" {
			if out != "" {
				t.Fatalf("%s: expected no output, got %q", tc.name, out)
			}
			continue
		}
		if !strings.Contains(out, tc.want) || !strings.Contains(out, `"component":"gorm"`) || !strings.Contains(out, "SELECT * FROM recipes") {
			t.Fatalf("%s: unexpected output %q", tc.name, out)
		}
	}
}

func TestLogger_MessagesRespectLevel(t *testing.T) {
	buf := captureGlobal(t)
	l := NewLogger(0)

	l.Info(context.Background(), "hidden %d", 1)
	l.Warn(context.Background(), "shown %d", 2)
	l.Error(context.Background(), "shown %d", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "shown 2") || !strings.Contains(out, "shown 3") {
		t.Fatalf("unexpected output %q", out)
	}
}
