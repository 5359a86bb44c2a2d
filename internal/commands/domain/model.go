package domain

import "time"

// Safety levels, ordered from least to most restricted.
const (
	SafetySafe      = "safe"
	SafetyCaution   = "caution"
	SafetyDangerous = "dangerous"
)

var safetyRank = map[string]int{
	SafetySafe:      0,
	SafetyCaution:   1,
	SafetyDangerous: 2,
}

// Stricter returns the more restricted of two safety levels. Unknown levels
// count as dangerous.
func Stricter(a, b string) string {
	ra, ok := safetyRank[a]
	if !ok {
		return SafetyDangerous
	}
	rb, ok := safetyRank[b]
	if !ok {
		return SafetyDangerous
	}
	if ra >= rb {
		return a
	}
	return b
}

// Candidate is one suggested shell command for a request.
type Candidate struct {
	Command     string `json:"command"`
	Explanation string `json:"explanation"`
	Category    string `json:"category"`
	Safety      string `json:"safety"`
}

// Analysis is the classification result for a natural language request.
type Analysis struct {
	Commands             []Candidate `json:"commands"`
	OverallSafety        string      `json:"overall_safety"`
	ExecutionRecommended bool        `json:"execution_recommended"`
	Note                 string      `json:"note,omitempty"`
}

// ExecutionResult captures one shell command run.
type ExecutionResult struct {
	Command    string    `json:"command"`
	WorkingDir string    `json:"working_dir"`
	Timestamp  time.Time `json:"timestamp"`
	Success    bool      `json:"success"`
	Output     string    `json:"output"`
	Error      string    `json:"error"`
	ReturnCode int       `json:"return_code"`
}
