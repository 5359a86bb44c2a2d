package domain

import "time"

// Record statuses, also used for individual steps
const (
	StatusStarted   = "started"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// Record types
const (
	TypeSimulated  = "simulated"
	TypeAnalysis   = "analysis"
	TypeAutonomous = "autonomous"
)

// Step is one stage of a deployment run.
type Step struct {
	Step      string    `json:"step"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Record is the stored log of one analysis or autonomous deployment run.
type Record struct {
	ID               string     `json:"deployment_id"`
	Type             string     `json:"type"`
	RepoName         string     `json:"repo_name"`
	Status           string     `json:"status"`
	Steps            []Step     `json:"steps"`
	Analysis         *Analysis  `json:"analysis,omitempty"`
	DeploymentFiles  []string   `json:"deployment_files,omitempty"`
	DeploymentBranch string     `json:"deployment_branch,omitempty"`
	Error            string     `json:"error,omitempty"`
	StartTime        time.Time  `json:"start_time"`
	EndTime          *time.Time `json:"end_time,omitempty"`
}

// BeginStep appends a new step in the started state.
func (r *Record) BeginStep(name string) {
	r.Steps = append(r.Steps, Step{Step: name, Status: StatusStarted, Timestamp: time.Now()})
}

// CompleteStep marks the most recent step completed.
func (r *Record) CompleteStep() {
	if len(r.Steps) > 0 {
		r.Steps[len(r.Steps)-1].Status = StatusCompleted
	}
}

// FailStep marks the most recent step failed.
func (r *Record) FailStep() {
	if len(r.Steps) > 0 {
		r.Steps[len(r.Steps)-1].Status = StatusFailed
	}
}

// TreeNode is one entry of a repository structure listing.
type TreeNode struct {
	Type     string              `json:"type"` // file or directory
	Size     int                 `json:"size,omitempty"`
	Path     string              `json:"path,omitempty"`
	Contents map[string]TreeNode `json:"contents,omitempty"`
}

// TechStack captures detected technology indicators per tier.
type TechStack struct {
	Frontend   map[string]any `json:"frontend"`
	Backend    map[string]any `json:"backend"`
	Database   map[string]any `json:"database"`
	Deployment map[string]any `json:"deployment"`
}

// NewTechStack returns a TechStack with all tiers initialized.
func NewTechStack() TechStack {
	return TechStack{
		Frontend:   map[string]any{},
		Backend:    map[string]any{},
		Database:   map[string]any{},
		Deployment: map[string]any{},
	}
}

// Analysis is the result of inspecting a repository.
type Analysis struct {
	RepoName           string              `json:"repo_name"`
	Structure          map[string]TreeNode `json:"structure"`
	TechStack          TechStack           `json:"tech_stack"`
	DeploymentStrategy Strategy            `json:"deployment_strategy"`
	AnalysisTimestamp  time.Time           `json:"analysis_timestamp"`
}
