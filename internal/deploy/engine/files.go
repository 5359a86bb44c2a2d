package engine

import (
	"encoding/json"
	"fmt"

	"github.com/thataway61/YazWho-MusicJam-Empire-Dashboard/internal/deploy/domain"
)

const frontendWorkflow = `name: Deploy Frontend to Vercel

on:
  push:
    branches: [ main ]
    paths: [ 'frontend/**' ]

jobs:
  deploy:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v3

      - name: Setup Node.js
        uses: actions/setup-node@v3
        with:
          node-version: '18'

      - name: Install dependencies
        run: |
          cd frontend
          npm install

      - name: Build project
        run: |
          cd frontend
          npm run build

      - name: Deploy to Vercel
        uses: amondnet/vercel-action@v25
        with:
          vercel-token: ${{ secrets.VERCEL_TOKEN }}
          vercel-org-id: ${{ secrets.VERCEL_ORG_ID }}
          vercel-project-id: ${{ secrets.VERCEL_PROJECT_ID }}
          working-directory: frontend
`

const backendWorkflow = `name: Deploy Backend to Render

on:
  push:
    branches: [ main ]
    paths: [ 'backend/**' ]

jobs:
  deploy:
    runs-on: ubuntu-latest
    steps:
      - uses: actions/checkout@v3

      - name: Trigger Render Deploy
        run: |
          curl -X POST "${{ secrets.RENDER_DEPLOY_HOOK }}"
`

const backendDockerfile = `FROM python:3.11-slim

WORKDIR /app

COPY requirements.txt .
RUN pip install -r requirements.txt

COPY . .

EXPOSE 8000

CMD ["uvicorn", "server:app", "--host", "0.0.0.0", "--port", "8000"]
`

// BuildDeploymentFiles renders the configuration files a repository needs for
// the strategy's platforms, keyed by path within the repository.
func BuildDeploymentFiles(repoName string, strategy domain.Strategy) (map[string]string, error) {
	files := make(map[string]string)

	if strategy.Frontend.Platform == "vercel" {
		vercelConfig := map[string]any{
			"version": 2,
			"builds": []map[string]any{
				{
					"src":    "frontend/package.json",
					"use":    "@vercel/static-build",
					"config": map[string]any{"distDir": "build"},
				},
			},
			"routes": []map[string]any{
				{"src": "/(.*)", "dest": "/frontend/$1"},
			},
		}
		encoded, err := json.MarshalIndent(vercelConfig, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render vercel config: %w", err)
		}
		files["vercel.json"] = string(encoded)
	}

	if strategy.Backend.Platform == "render" {
		renderConfig := map[string]any{
			"services": []map[string]any{
				{
					"type":         "web",
					"name":         repoName + "-backend",
					"env":          "python",
					"plan":         "free",
					"buildCommand": strategy.Backend.BuildCommand,
					"startCommand": strategy.Backend.StartCommand,
					"rootDir":      "backend",
					"envVars": []map[string]any{
						{
							"key": "MONGO_URL",
							"fromDatabase": map[string]any{
								"name":     repoName + "-db",
								"property": "connectionString",
							},
						},
					},
				},
			},
		}
		encoded, err := json.MarshalIndent(renderConfig, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("render service config: %w", err)
		}
		files["render.yaml"] = string(encoded)
	}

	files[".github/workflows/deploy-frontend.yml"] = frontendWorkflow
	files[".github/workflows/deploy-backend.yml"] = backendWorkflow

	if strategy.Backend.Dockerfile != "" {
		files["backend/Dockerfile"] = backendDockerfile
	}

	return files, nil
}
