package domain

// Strategy describes how each tier of an application should be deployed.
// Either parsed from a model reply or the deterministic default.
type Strategy struct {
	Frontend FrontendStrategy `json:"frontend"`
	Backend  BackendStrategy  `json:"backend"`
	Database DatabaseStrategy `json:"database"`
	CICD     CICDStrategy     `json:"cicd"`
}

type FrontendStrategy struct {
	Platform             string         `json:"platform"`
	BuildCommand         string         `json:"build_command"`
	OutputDirectory      string         `json:"output_directory"`
	EnvironmentVariables []string       `json:"environment_variables"`
	VercelConfig         map[string]any `json:"vercel_config,omitempty"`
}

type BackendStrategy struct {
	Platform             string         `json:"platform"`
	BuildCommand         string         `json:"build_command"`
	StartCommand         string         `json:"start_command"`
	EnvironmentVariables []string       `json:"environment_variables"`
	Dockerfile           string         `json:"dockerfile,omitempty"`
	RenderConfig         map[string]any `json:"render_config,omitempty"`
}

type DatabaseStrategy struct {
	Platform               string   `json:"platform"`
	ConnectionStringFormat string   `json:"connection_string_format"`
	Collections            []string `json:"collections"`
}

type CICDStrategy struct {
	GitHubActions      map[string]any `json:"github_actions"`
	DeploymentWorkflow []string       `json:"deployment_workflow"`
}

// Usable reports whether a parsed strategy names deployment platforms.
// Replies that unmarshal to an empty struct fall back to the default.
func (s Strategy) Usable() bool {
	return s.Frontend.Platform != "" || s.Backend.Platform != ""
}

// DefaultStrategy is the deterministic fallback for a React + FastAPI +
// document database application.
func DefaultStrategy() Strategy {
	return Strategy{
		Frontend: FrontendStrategy{
			Platform:             "vercel",
			BuildCommand:         "npm run build",
			OutputDirectory:      "build",
			EnvironmentVariables: []string{"REACT_APP_BACKEND_URL"},
			VercelConfig: map[string]any{
				"version": 2,
				"builds": []any{
					map[string]any{"src": "package.json", "use": "@vercel/static-build"},
				},
			},
		},
		Backend: BackendStrategy{
			Platform:             "render",
			BuildCommand:         "pip install -r requirements.txt",
			StartCommand:         "uvicorn server:app --host 0.0.0.0 --port $PORT",
			EnvironmentVariables: []string{"MONGO_URL", "SECRET_KEY", "YOUTUBE_API_KEY"},
			RenderConfig: map[string]any{
				"type":         "web",
				"env":          "python",
				"buildCommand": "pip install -r requirements.txt",
				"startCommand": "uvicorn server:app --host 0.0.0.0 --port $PORT",
			},
		},
		Database: DatabaseStrategy{
			Platform:               "mongodb_atlas",
			ConnectionStringFormat: "mongodb+srv://<username>:<password>@<cluster>.mongodb.net/<database>",
			Collections:            []string{"users", "playlists", "songs"},
		},
		CICD: CICDStrategy{
			GitHubActions: map[string]any{
				"frontend_deploy": ".github/workflows/deploy-frontend.yml",
				"backend_deploy":  ".github/workflows/deploy-backend.yml",
			},
			DeploymentWorkflow: []string{
				"Code push to main branch",
				"GitHub Actions triggers",
				"Frontend builds and deploys to Vercel",
				"Backend builds and deploys to Render",
				"Environment variables automatically configured",
			},
		},
	}
}
