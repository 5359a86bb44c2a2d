package classify

import (
	"regexp"
	"strings"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/commands/domain"
)

// Categories of requests the rule table recognizes.
const (
	CategoryProcessStatus = "check process status"
	CategoryViewLogs      = "view logs"
	CategoryRestart       = "restart service"
	CategoryFiles         = "file operations"
	CategoryDiskUsage     = "disk usage"
	CategoryGit           = "git operations"
	CategoryPackages      = "package management"
	CategoryNetwork       = "network checks"
	CategoryDeployment    = "deployment"

	// CategoryAISuggested marks candidates that came from model elaboration
	// rather than the rule table.
	CategoryAISuggested = "ai suggested"
)

type rule struct {
	category    string
	safety      string
	command     string
	explanation string
	triggers    []*regexp.Regexp
}

func phrase(words ...string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(words))
	for _, w := range words {
		patterns = append(patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(w)+`\b`))
	}
	return patterns
}

// Rule order fixes candidate order in every analysis.
var rules = []rule{
	{
		category:    CategoryProcessStatus,
		safety:      domain.SafetySafe,
		command:     "ps aux --sort=-%cpu | head -15",
		explanation: "List the busiest processes by CPU",
		triggers:    phrase("process", "processes", "running", "pid", "cpu"),
	},
	{
		category:    CategoryViewLogs,
		safety:      domain.SafetySafe,
		command:     "tail -n 100 server.log",
		explanation: "Show the most recent log lines",
		triggers:    phrase("log", "logs", "stack trace", "output"),
	},
	{
		category:    CategoryRestart,
		safety:      domain.SafetyCaution,
		command:     "sudo supervisorctl restart all",
		explanation: "Restart the managed services",
		triggers:    phrase("restart", "reload", "bounce"),
	},
	{
		category:    CategoryFiles,
		safety:      domain.SafetySafe,
		command:     "ls -la",
		explanation: "List the working directory contents",
		triggers:    phrase("file", "files", "directory", "folder"),
	},
	{
		category:    CategoryDiskUsage,
		safety:      domain.SafetySafe,
		command:     "df -h",
		explanation: "Report free disk space per filesystem",
		triggers:    phrase("disk", "space", "storage"),
	},
	{
		category:    CategoryGit,
		safety:      domain.SafetySafe,
		command:     "git status && git log --oneline -5",
		explanation: "Show the working tree status and recent commits",
		triggers:    phrase("git", "commit", "commits", "branch"),
	},
	{
		category:    CategoryPackages,
		safety:      domain.SafetyCaution,
		command:     "npm install",
		explanation: "Install node dependencies",
		triggers:    phrase("npm", "pip", "package", "packages", "dependency", "dependencies", "install"),
	},
	{
		category:    CategoryNetwork,
		safety:      domain.SafetySafe,
		command:     "ping -c 4 8.8.8.8",
		explanation: "Check outbound network connectivity",
		triggers:    phrase("network", "ping", "port", "ports", "connectivity", "reachable", "dns"),
	},
	{
		category:    CategoryDeployment,
		safety:      domain.SafetyCaution,
		command:     "npm run build",
		explanation: "Build the production bundle",
		triggers:    phrase("deploy", "deployment", "build", "release", "vercel", "render"),
	},
}

// Requests or commands matching any of these are always dangerous.
var destructivePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bdelete\b`),
	regexp.MustCompile(`\bremove\b`),
	regexp.MustCompile(`\bwipe\b`),
	regexp.MustCompile(`\berase\b`),
	regexp.MustCompile(`\bformat\b`),
	regexp.MustCompile(`\brm\b`),
	regexp.MustCompile(`\bdd\b`),
	regexp.MustCompile(`\bmkfs\b`),
	regexp.MustCompile(`kill\s+-9`),
	regexp.MustCompile(`\bdrop\s+table\b`),
	regexp.MustCompile(`\bshutdown\b`),
	regexp.MustCompile(`\btruncate\b`),
}

var cautionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\bsudo\b`),
	regexp.MustCompile(`\binstall\b`),
	regexp.MustCompile(`\brestart\b`),
	regexp.MustCompile(`\breload\b`),
	regexp.MustCompile(`\bpush\b`),
	regexp.MustCompile(`\bdeploy\b`),
	regexp.MustCompile(`\bbuild\b`),
	regexp.MustCompile(`\bmigrate\b`),
	regexp.MustCompile(`\bkill\b`),
	regexp.MustCompile(`\bchmod\b`),
	regexp.MustCompile(`\bchown\b`),
	regexp.MustCompile(`\bmv\b`),
}

// IsDestructive reports whether text names a destructive operation.
func IsDestructive(text string) bool {
	lower := strings.ToLower(text)
	for _, p := range destructivePatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

// CommandSafety classifies a shell command string on its own.
func CommandSafety(command string) string {
	lower := strings.ToLower(command)
	if IsDestructive(lower) {
		return domain.SafetyDangerous
	}
	for _, p := range cautionPatterns {
		if p.MatchString(lower) {
			return domain.SafetyCaution
		}
	}
	return domain.SafetySafe
}

// Classify maps a natural language request onto the rule table. A request
// naming a destructive operation is never classified safe, whatever else it
// matches.
func Classify(request string) domain.Analysis {
	lower := strings.ToLower(request)
	destructive := IsDestructive(lower)

	var candidates []domain.Candidate
	for _, r := range rules {
		if !matchesAny(lower, r.triggers) {
			continue
		}
		safety := r.safety
		if destructive {
			safety = domain.SafetyDangerous
		}
		candidates = append(candidates, domain.Candidate{
			Command:     r.command,
			Explanation: r.explanation,
			Category:    r.category,
			Safety:      safety,
		})
	}

	if len(candidates) == 0 {
		return domain.Analysis{
			Commands:             []domain.Candidate{},
			OverallSafety:        domain.SafetyDangerous,
			ExecutionRecommended: false,
			Note:                 "unable to classify request",
		}
	}

	overall := domain.SafetySafe
	for _, c := range candidates {
		overall = domain.Stricter(overall, c.Safety)
	}

	return domain.Analysis{
		Commands:             candidates,
		OverallSafety:        overall,
		ExecutionRecommended: overall == domain.SafetySafe,
	}
}

func matchesAny(text string, patterns []*regexp.Regexp) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}
