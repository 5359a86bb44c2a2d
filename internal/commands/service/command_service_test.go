package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/classify"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/service"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/logger"
)

type cannedGenerator struct {
	reply string
	err   error
}

func (c cannedGenerator) Generate(context.Context, string) (string, error) {
	return c.reply, c.err
}

func newService(t *testing.T, gen *cannedGenerator) *service.CommandService {
	t.Helper()
	var g ai.Generator
	if gen != nil {
		g = *gen
	}
	return service.NewCommandService(g, t.TempDir(), 5*time.Second, 3, logger.Nop())
}

func TestAnalyzeElaboration(t *testing.T) {
	ctx := context.Background()

	t.Run("keeps the rule result when no generator is configured", func(t *testing.T) {
		svc := newService(t, nil)

		analysis := svc.Analyze(ctx, "show the logs", true)

		require.Len(t, analysis.Commands, 1)
		assert.Equal(t, classify.CategoryViewLogs, analysis.Commands[0].Category)
	})

	t.Run("merges model commands and keeps the stricter tag", func(t *testing.T) {
		reply := `Sure thing:
{"commands": [
  {"command": "sudo supervisorctl tail backend", "explanation": "follow the backend log", "safety_level": "safe"},
  {"command": "uptime", "explanation": "show load averages", "safety_level": "safe"}
], "overall_safety": "safe", "execution_recommended": true}`
		svc := newService(t, &cannedGenerator{reply: reply})

		analysis := svc.Analyze(ctx, "show the logs", true)

		require.Len(t, analysis.Commands, 3)
		assert.Equal(t, classify.CategoryAISuggested, analysis.Commands[1].Category)
		// sudo makes the model's "safe" claim a caution
		assert.Equal(t, domain.SafetyCaution, analysis.Commands[1].Safety)
		assert.Equal(t, domain.SafetySafe, analysis.Commands[2].Safety)
		assert.Equal(t, domain.SafetyCaution, analysis.OverallSafety)
		assert.False(t, analysis.ExecutionRecommended)
	})

	t.Run("a destructive request poisons model candidates too", func(t *testing.T) {
		reply := `{"commands": [{"command": "ls -la", "explanation": "harmless listing", "safety_level": "safe"}]}`
		svc := newService(t, &cannedGenerator{reply: reply})

		analysis := svc.Analyze(ctx, "delete the old log files", true)

		require.NotEmpty(t, analysis.Commands)
		for _, candidate := range analysis.Commands {
			assert.Equal(t, domain.SafetyDangerous, candidate.Safety)
		}
		assert.Equal(t, domain.SafetyDangerous, analysis.OverallSafety)
	})

	t.Run("elaboration clears the unable-to-classify note", func(t *testing.T) {
		reply := `{"commands": [{"command": "uptime", "explanation": "show load", "safety_level": "safe"}]}`
		svc := newService(t, &cannedGenerator{reply: reply})

		analysis := svc.Analyze(ctx, "how tired is the machine", true)

		require.Len(t, analysis.Commands, 1)
		assert.Empty(t, analysis.Note)
		assert.Equal(t, domain.SafetySafe, analysis.OverallSafety)
		assert.True(t, analysis.ExecutionRecommended)
	})

	t.Run("generator failures leave the rule result untouched", func(t *testing.T) {
		svc := newService(t, &cannedGenerator{err: errors.New("quota exhausted")})

		analysis := svc.Analyze(ctx, "show the logs", true)

		require.Len(t, analysis.Commands, 1)
		assert.Equal(t, classify.CategoryViewLogs, analysis.Commands[0].Category)
	})

	t.Run("unparseable replies leave the rule result untouched", func(t *testing.T) {
		svc := newService(t, &cannedGenerator{reply: "no json in sight"})

		analysis := svc.Analyze(ctx, "gibberish request", true)

		assert.Empty(t, analysis.Commands)
		assert.Equal(t, domain.SafetyDangerous, analysis.OverallSafety)
	})
}

func TestExecute(t *testing.T) {
	ctx := context.Background()

	t.Run("runs a safe command and records it", func(t *testing.T) {
		svc := newService(t, nil)

		result, err := svc.Execute(ctx, "echo hello empire", false)
		require.NoError(t, err)

		assert.True(t, result.Success)
		assert.Equal(t, 0, result.ReturnCode)
		assert.Contains(t, result.Output, "hello empire")
		assert.Empty(t, result.Error)

		history := svc.History()
		require.Len(t, history, 1)
		assert.Equal(t, "echo hello empire", history[0].Command)
	})

	t.Run("captures stderr and the exit code of a failing command", func(t *testing.T) {
		svc := newService(t, nil)

		result, err := svc.Execute(ctx, "echo oops >&2; exit 3", false)
		require.NoError(t, err)

		assert.False(t, result.Success)
		assert.Equal(t, 3, result.ReturnCode)
		assert.Contains(t, result.Error, "oops")
	})

	t.Run("a caution command needs confirmation", func(t *testing.T) {
		svc := newService(t, nil)

		_, err := svc.Execute(ctx, "sudo echo careful", false)
		require.ErrorIs(t, err, domain.ErrConfirmationRequired)
		assert.Empty(t, svc.History())
	})

	t.Run("a confirmed caution command runs", func(t *testing.T) {
		svc := newService(t, nil)

		// install is a caution marker even for a harmless echo
		result, err := svc.Execute(ctx, "echo pretend install", true)
		require.NoError(t, err)
		assert.True(t, result.Success)
	})

	t.Run("a dangerous command never runs, confirmed or not", func(t *testing.T) {
		svc := newService(t, nil)

		_, err := svc.Execute(ctx, "rm -rf /tmp/whatever", false)
		require.ErrorIs(t, err, domain.ErrExecutionBlocked)

		_, err = svc.Execute(ctx, "rm -rf /tmp/whatever", true)
		require.ErrorIs(t, err, domain.ErrExecutionBlocked)

		assert.Empty(t, svc.History())
	})

	t.Run("history is bounded and newest first", func(t *testing.T) {
		svc := newService(t, nil)

		for _, n := range []string{"one", "two", "three", "four"} {
			_, err := svc.Execute(ctx, "echo "+n, false)
			require.NoError(t, err)
		}

		history := svc.History()
		require.Len(t, history, 3)
		assert.Contains(t, history[0].Output, "four")
		assert.Contains(t, history[2].Output, "two")
	})
}
