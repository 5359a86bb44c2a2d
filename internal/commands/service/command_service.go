package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os/exec"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/classify"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/metrics"
)

// CommandService classifies natural language requests and executes gated
// shell commands. Execution history lives in process memory only.
type CommandService struct {
	gen        ai.Generator
	workDir    string
	timeout    time.Duration
	historyMax int
	logger     zerolog.Logger

	mu      sync.Mutex
	history []domain.ExecutionResult
}

// NewCommandService creates a new command service. gen may be nil, which
// disables model elaboration.
func NewCommandService(gen ai.Generator, workDir string, timeout time.Duration, historyMax int, logger zerolog.Logger) *CommandService {
	return &CommandService{
		gen:        gen,
		workDir:    workDir,
		timeout:    timeout,
		historyMax: historyMax,
		logger:     logger,
	}
}

const elaborationPromptTemplate = `Convert this natural language request to safe shell commands:
"%REQUEST%"

Rules:
1. Only generate safe, non-destructive commands
2. Avoid rm -rf, dd, or other dangerous operations
3. Focus on deployment, git, npm, pip, and standard operations
4. Provide explanation for each command

Return JSON format:
{
    "commands": [
        {
            "command": "actual shell command",
            "explanation": "what this command does",
            "safety_level": "safe|caution|dangerous"
        }
    ],
    "overall_safety": "safe|caution|dangerous",
    "execution_recommended": true/false
}`

type modelReply struct {
	Commands []struct {
		Command     string `json:"command"`
		Explanation string `json:"explanation"`
		SafetyLevel string `json:"safety_level"`
	} `json:"commands"`
}

// Analyze classifies a request through the rule table. With elaborate set
// and a generator configured, model-proposed commands are merged in after
// being re-classified, keeping the stricter of the two tags.
func (s *CommandService) Analyze(ctx context.Context, request string, elaborate bool) domain.Analysis {
	analysis := classify.Classify(request)
	if elaborate && s.gen != nil {
		s.elaborate(ctx, request, &analysis)
	}
	return analysis
}

func (s *CommandService) elaborate(ctx context.Context, request string, analysis *domain.Analysis) {
	prompt := strings.ReplaceAll(elaborationPromptTemplate, "%REQUEST%", request)
	reply, err := s.gen.Generate(ctx, prompt)
	if err != nil {
		s.logger.Warn().Err(err).Msg("command elaboration failed")
		return
	}

	var parsed modelReply
	if err := json.Unmarshal([]byte(extractJSON(reply)), &parsed); err != nil {
		s.logger.Warn().Msg("could not parse elaboration reply")
		return
	}

	destructive := classify.IsDestructive(request)
	added := false
	for _, proposed := range parsed.Commands {
		if proposed.Command == "" || hasCommand(analysis, proposed.Command) {
			continue
		}

		safety := classify.CommandSafety(proposed.Command)
		if proposed.SafetyLevel != "" {
			safety = domain.Stricter(safety, proposed.SafetyLevel)
		}
		if destructive {
			safety = domain.SafetyDangerous
		}

		analysis.Commands = append(analysis.Commands, domain.Candidate{
			Command:     proposed.Command,
			Explanation: proposed.Explanation,
			Category:    classify.CategoryAISuggested,
			Safety:      safety,
		})
		added = true
	}

	if !added {
		return
	}

	analysis.Note = ""
	overall := domain.SafetySafe
	for _, candidate := range analysis.Commands {
		overall = domain.Stricter(overall, candidate.Safety)
	}
	analysis.OverallSafety = overall
	analysis.ExecutionRecommended = overall == domain.SafetySafe
}

// Execute runs a shell command after the safety gate: safe commands run,
// caution commands need confirm, dangerous commands never run.
func (s *CommandService) Execute(ctx context.Context, command string, confirm bool) (*domain.ExecutionResult, error) {
	safety := classify.CommandSafety(command)

	if safety == domain.SafetyDangerous {
		metrics.CommandRunsTotal.WithLabelValues(safety, strconv.FormatBool(false)).Inc()
		return nil, domain.ErrExecutionBlocked
	}
	if safety == domain.SafetyCaution && !confirm {
		metrics.CommandRunsTotal.WithLabelValues(safety, strconv.FormatBool(false)).Inc()
		return nil, domain.ErrConfirmationRequired
	}
	metrics.CommandRunsTotal.WithLabelValues(safety, strconv.FormatBool(true)).Inc()

	runCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	cmd := exec.CommandContext(runCtx, "sh", "-c", command)
	cmd.Dir = s.workDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := domain.ExecutionResult{
		Command:    command,
		WorkingDir: s.workDir,
		Timestamp:  time.Now(),
	}

	err := cmd.Run()
	result.Output = stdout.String()
	result.Error = stderr.String()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		result.Success = true
	case errors.As(err, &exitErr):
		result.ReturnCode = exitErr.ExitCode()
	default:
		result.ReturnCode = -1
		if result.Error == "" {
			result.Error = err.Error()
		}
	}

	s.appendHistory(result)
	return &result, nil
}

// History returns recent executions, newest first.
func (s *CommandService) History() []domain.ExecutionResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ExecutionResult, len(s.history))
	for i, result := range s.history {
		out[len(s.history)-1-i] = result
	}
	return out
}

func (s *CommandService) appendHistory(result domain.ExecutionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append(s.history, result)
	if len(s.history) > s.historyMax {
		trimmed := make([]domain.ExecutionResult, s.historyMax)
		copy(trimmed, s.history[len(s.history)-s.historyMax:])
		s.history = trimmed
	}
}

func hasCommand(analysis *domain.Analysis, command string) bool {
	for _, candidate := range analysis.Commands {
		if candidate.Command == command {
			return true
		}
	}
	return false
}

func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return text[start : end+1]
}
