package compat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/config"
	"github.com/oggyb/radar-match/internal/db"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/quota"
)

type fakeAI struct {
	reply  string
	err    error
	prompt string
}

func (f *fakeAI) Generate(_ context.Context, _, prompt string) (string, error) {
	f.prompt = prompt
	return f.reply, f.err
}

func setup(t *testing.T, gen *fakeAI) (*Checker, *quota.Tracker) {
	t.Helper()
	dbase, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, _ := dbase.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, db.Migrate(dbase))

	require.NoError(t, dbase.Create(&[]db.Profile{
		{UserID: "alice", Name: "Alice", Age: 29, City: "Lisbon", Interests: []string{"surf", "jazz"}},
		{UserID: "bob", Name: "Bob", Age: 31, Bio: "climber"},
	}).Error)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	tracker := quota.NewTracker(repository.NewQuotaRepository(dbase), quota.Config{
		Window:      24 * time.Hour,
		DefaultTier: "starter",
		Limits:      config.TierLimits{config.OpCompatibilityCheck: {"starter": 1}},
	}, logger, func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) })

	return NewChecker(repository.NewProfileRepository(dbase), tracker, gen, logger), tracker
}

func TestCheckScoresAndConsumesQuota(t *testing.T) {
	gen := &fakeAI{reply: "```json\n{\"score\": 87.6, \"summary\": \"Both love the outdoors.\"}\n```"}
	c, _ := setup(t, gen)
	ctx := context.Background()

	res, err := c.Check(ctx, "alice", "bob", "starter")
	require.NoError(t, err)
	assert.Equal(t, 88, res.Score)
	assert.Equal(t, "Both love the outdoors.", res.Summary)
	assert.Equal(t, 1, res.ChecksUsed)
	assert.Equal(t, 1, res.ChecksLimit)
	assert.Contains(t, gen.prompt, "Interests: surf, jazz")
	assert.Contains(t, gen.prompt, "Bio: climber")

	_, err = c.Check(ctx, "alice", "bob", "starter")
	assert.True(t, svcErr.IsCode(err, svcErr.CodeQuotaExceeded))
}

func TestCheckFailuresDoNotConsumeQuota(t *testing.T) {
	ctx := context.Background()
	for name, gen := range map[string]*fakeAI{
		"ai error":  {err: errors.New("timeout")},
		"bad reply": {reply: "I think they'd get along"},
		"no score":  {reply: `{"summary":"ok"}`},
	} {
		t.Run(name, func(t *testing.T) {
			c, tracker := setup(t, gen)
			_, err := c.Check(ctx, "alice", "bob", "starter")
			assert.True(t, svcErr.IsCode(err, svcErr.CodeUnavailable), "got %v", err)

			usage, err := tracker.Check(ctx, "alice", "starter", config.OpCompatibilityCheck)
			require.NoError(t, err)
			assert.Equal(t, 0, usage.Used)
		})
	}
}

func TestCheckUnknownProfile(t *testing.T) {
	c, _ := setup(t, &fakeAI{reply: `{"score":50}`})
	_, err := c.Check(context.Background(), "alice", "nobody", "starter")
	assert.True(t, svcErr.IsCode(err, svcErr.CodeNotFound))

	_, err = c.Check(context.Background(), "alice", "alice", "starter")
	assert.True(t, svcErr.IsCode(err, svcErr.CodeInvalidInput))
}

func TestParseReplyClamps(t *testing.T) {
	score, _, err := parseReply(`{"score": 140}`)
	require.NoError(t, err)
	assert.Equal(t, 100, score)

	score, _, err = parseReply(`Sure! {"score": -3, "summary": " meh "}`)
	require.NoError(t, err)
	assert.Equal(t, 0, score)
}
