package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/ai"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/domain"
	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/github"
)

// Directory walks stop at this depth.
const maxTreeDepth = 6

// RepoBrowser is the subset of the GitHub client the engine needs.
// Satisfied by *github.Client and by test fakes.
type RepoBrowser interface {
	ListDir(ctx context.Context, owner, repo, path string) ([]github.ContentEntry, error)
	FileText(ctx context.Context, owner, repo, path string) (string, error)
	DefaultBranchSHA(ctx context.Context, owner, repo string) (string, string, error)
	CreateBranch(ctx context.Context, owner, repo, branch, sha string) error
	PutFile(ctx context.Context, owner, repo, branch, path, message, content string) error
}

// Engine analyzes repositories and prepares autonomous deployments.
type Engine struct {
	browser RepoBrowser
	gen     ai.Generator
	logger  zerolog.Logger
}

// New creates a deployment engine. gen may be nil, in which case the
// deterministic default strategy is always used.
func New(browser RepoBrowser, gen ai.Generator, logger zerolog.Logger) *Engine {
	return &Engine{
		browser: browser,
		gen:     gen,
		logger:  logger,
	}
}

// AnalyzeRepository walks a repository, detects its tech stack and produces
// a deployment strategy.
func (e *Engine) AnalyzeRepository(ctx context.Context, fullName string) (*domain.Analysis, error) {
	owner, name, err := github.SplitFullName(fullName)
	if err != nil {
		return nil, err
	}

	rootEntries, err := e.browser.ListDir(ctx, owner, name, "")
	if err != nil {
		return nil, fmt.Errorf("repository analysis failed: %w", err)
	}

	structure := e.buildStructure(ctx, owner, name, rootEntries, 0)
	techStack := e.analyzeTechStack(ctx, owner, name, structure)
	strategy := e.generateStrategy(ctx, techStack, structure)

	return &domain.Analysis{
		RepoName:           fullName,
		Structure:          structure,
		TechStack:          techStack,
		DeploymentStrategy: strategy,
		AnalysisTimestamp:  time.Now(),
	}, nil
}

func (e *Engine) buildStructure(ctx context.Context, owner, name string, entries []github.ContentEntry, depth int) map[string]domain.TreeNode {
	structure := make(map[string]domain.TreeNode, len(entries))

	for _, entry := range entries {
		if entry.Type == "dir" {
			contents := map[string]domain.TreeNode{}
			if depth < maxTreeDepth {
				if children, err := e.browser.ListDir(ctx, owner, name, entry.Path); err == nil {
					contents = e.buildStructure(ctx, owner, name, children, depth+1)
				}
			}
			structure[entry.Name] = domain.TreeNode{Type: "directory", Contents: contents}
			continue
		}
		structure[entry.Name] = domain.TreeNode{Type: "file", Size: entry.Size, Path: entry.Path}
	}

	return structure
}

func (e *Engine) analyzeTechStack(ctx context.Context, owner, name string, structure map[string]domain.TreeNode) domain.TechStack {
	stack := domain.NewTechStack()

	if _, ok := structure["package.json"]; ok {
		if text, err := e.browser.FileText(ctx, owner, name, "package.json"); err == nil {
			var pkg struct {
				Dependencies map[string]string `json:"dependencies"`
			}
			if json.Unmarshal([]byte(text), &pkg) == nil {
				_, hasReact := pkg.Dependencies["react"]
				stack.Frontend["react"] = hasReact

				deps := make([]string, 0, len(pkg.Dependencies))
				for dep := range pkg.Dependencies {
					deps = append(deps, dep)
				}
				sort.Strings(deps)
				stack.Frontend["dependencies"] = deps
			}
		}
	}

	if _, ok := structure["requirements.txt"]; ok {
		if text, err := e.browser.FileText(ctx, owner, name, "requirements.txt"); err == nil {
			stack.Backend["python"] = true
			stack.Backend["fastapi"] = strings.Contains(strings.ToLower(text), "fastapi")
			stack.Backend["dependencies"] = strings.Split(strings.TrimSpace(text), "\n")
		}
	}

	if frontend, ok := structure["frontend"]; ok {
		if _, ok := frontend.Contents["src"]; ok {
			stack.Frontend["react_structure"] = true
		}
	}
	if backend, ok := structure["backend"]; ok {
		if _, ok := backend.Contents["server.py"]; ok {
			stack.Backend["fastapi_structure"] = true
		}
	}

	return stack
}

const strategyPromptTemplate = `Analyze this application structure and tech stack to generate an optimal deployment strategy:

Tech Stack: %s
Structure: %s

Generate a deployment strategy for:
1. Frontend deployment to Vercel
2. Backend deployment to Render
3. Database setup with MongoDB Atlas
4. GitHub Actions CI/CD

Provide specific configuration files and deployment commands needed.
Focus on automation and zero manual intervention.

Return your response as JSON with this structure:
{
    "frontend": {"platform": "vercel", "build_command": "...", "output_directory": "...", "environment_variables": [], "vercel_config": {}},
    "backend": {"platform": "render", "build_command": "...", "start_command": "...", "environment_variables": [], "render_config": {}},
    "database": {"platform": "mongodb_atlas", "connection_string_format": "...", "collections": []},
    "cicd": {"github_actions": {}, "deployment_workflow": []}
}`

func (e *Engine) generateStrategy(ctx context.Context, stack domain.TechStack, structure map[string]domain.TreeNode) domain.Strategy {
	if e.gen == nil {
		return domain.DefaultStrategy()
	}

	stackJSON, _ := json.MarshalIndent(stack, "", "  ")
	structureJSON, _ := json.MarshalIndent(structure, "", "  ")
	prompt := fmt.Sprintf(strategyPromptTemplate, stackJSON, structureJSON)

	text, err := e.gen.Generate(ctx, prompt)
	if err != nil {
		e.logger.Warn().Err(err).Msg("strategy generation failed, using default strategy")
		return domain.DefaultStrategy()
	}

	var strategy domain.Strategy
	if err := json.Unmarshal([]byte(extractJSON(text)), &strategy); err != nil || !strategy.Usable() {
		e.logger.Warn().Msg("could not parse strategy from model reply, using default strategy")
		return domain.DefaultStrategy()
	}

	return strategy
}

// extractJSON slices the first balanced-looking JSON object out of a model
// reply that may wrap it in prose or code fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}
	return text[start : end+1]
}
