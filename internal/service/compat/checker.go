// Package compat scores how well two profiles fit using the AI text
// capability. Each successful check consumes one compatibilityCheck quota.
package compat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"gorm.io/gorm"

	"github.com/oggyb/radar-match/internal/ai"
	"github.com/oggyb/radar-match/internal/config"
	svcErr "github.com/oggyb/radar-match/internal/errors"
	"github.com/oggyb/radar-match/internal/repository"
	"github.com/oggyb/radar-match/internal/service/quota"
)

const systemPrompt = `You rate how compatible two people are for meeting up.
Reply with JSON only: {"score": <integer 0-100>, "summary": "<one or two sentences>"}.`

type Result struct {
	Score       int
	Summary     string
	ChecksUsed  int
	ChecksLimit int
}

type Checker struct {
	profiles repository.ProfileDirectory
	quota    *quota.Tracker
	ai       ai.TextGenerator
	logger   *slog.Logger
}

func NewChecker(profiles repository.ProfileDirectory, tracker *quota.Tracker, gen ai.TextGenerator, logger *slog.Logger) *Checker {
	if gen == nil {
		gen = ai.Disabled{}
	}
	return &Checker{profiles: profiles, quota: tracker, ai: gen, logger: logger}
}

// Check scores userID against targetID.
// AI failures and unparseable replies fail Unavailable and consume nothing.
func (c *Checker) Check(ctx context.Context, userID, targetID, tier string) (Result, error) {
	userID = strings.TrimSpace(userID)
	targetID = strings.TrimSpace(targetID)
	if userID == "" || targetID == "" {
		return Result{}, svcErr.InvalidInput("user and target ids are required")
	}
	if userID == targetID {
		return Result{}, svcErr.InvalidInput("cannot check compatibility with yourself")
	}

	usage, err := c.quota.Check(ctx, userID, tier, config.OpCompatibilityCheck)
	if err != nil {
		if svcErr.IsCode(err, svcErr.CodeQuotaExceeded) {
			c.logger.Info("compatibility quota exhausted", "user_id", userID, "tier", tier)
		}
		return Result{}, err
	}

	self, err := c.summary(ctx, userID)
	if err != nil {
		return Result{}, err
	}
	target, err := c.summary(ctx, targetID)
	if err != nil {
		return Result{}, err
	}

	raw, err := c.ai.Generate(ctx, systemPrompt, buildPrompt(self, target))
	if err != nil {
		c.logger.Warn("compatibility generation failed", "user_id", userID, "target_id", targetID, "err", err)
		return Result{}, svcErr.Unavailable("compatibility scoring", err)
	}
	score, summary, err := parseReply(raw)
	if err != nil {
		c.logger.Warn("compatibility reply unparseable", "user_id", userID, "err", err)
		return Result{}, svcErr.Unavailable("compatibility scoring", err)
	}

	used, err := c.quota.Increment(ctx, userID, config.OpCompatibilityCheck)
	if err != nil {
		return Result{}, err
	}
	return Result{Score: score, Summary: summary, ChecksUsed: used, ChecksLimit: usage.Limit}, nil
}

func (c *Checker) summary(ctx context.Context, userID string) (repository.ProfileSummary, error) {
	p, err := c.profiles.Summary(ctx, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return p, svcErr.NotFound(fmt.Sprintf("profile %s not found", userID))
	}
	if err != nil {
		return p, svcErr.Unavailable("load profile", err)
	}
	return p, nil
}

func buildPrompt(a, b repository.ProfileSummary) string {
	var sb strings.Builder
	for i, p := range []repository.ProfileSummary{a, b} {
		fmt.Fprintf(&sb, "Person %d: %s, %d", i+1, p.Name, p.Age)
		if p.Location != "" {
			fmt.Fprintf(&sb, ", lives in %s", p.Location)
		}
		sb.WriteString("\n")
		if p.Bio != "" {
			fmt.Fprintf(&sb, "Bio: %s\n", p.Bio)
		}
		if len(p.Interests) > 0 {
			fmt.Fprintf(&sb, "Interests: %s\n", strings.Join(p.Interests, ", "))
		}
	}
	return sb.String()
}

// parseReply extracts the JSON object from the model reply, tolerating
// surrounding prose or code fences. Scores are clamped to 0..100.
func parseReply(raw string) (int, string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return 0, "", errors.New("no json object in reply")
	}

	var reply struct {
		Score   *float64 `json:"score"`
		Summary string   `json:"summary"`
	}
	if err := json.Unmarshal([]byte(raw[start:end+1]), &reply); err != nil {
		return 0, "", fmt.Errorf("decode reply: %w", err)
	}
	if reply.Score == nil || math.IsNaN(*reply.Score) {
		return 0, "", errors.New("reply has no score")
	}
	score := int(math.Round(math.Max(0, math.Min(100, *reply.Score))))
	return score, strings.TrimSpace(reply.Summary), nil
}
