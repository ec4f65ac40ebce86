package wizard

import "github.com/voltjs/volt-cli/internal/config"

// InitQuestions returns the question set for "volt init". asked reports
// whether a field still needs an answer; fields already pinned by flags are
// skipped entirely, which is how flag precedence is enforced.
func InitQuestions(asked func(field string) bool) []Question {
	questions := []Question{
		{
			ID:    "runtime",
			Type:  QuestionTypeSelect,
			Title: "Select runtime target",
			Desc:  "Where the generated application will run.",
			Options: []Option{
				{Label: "Node.js", Value: string(config.RuntimeNode), Desc: "traditional server process"},
				{Label: "Vercel Edge", Value: string(config.RuntimeVercelEdge), Desc: "edge functions"},
				{Label: "AWS Lambda", Value: string(config.RuntimeAWSLambda), Desc: "serverless functions"},
				{Label: "Cloudflare Workers", Value: string(config.RuntimeCloudflareWorkers), Desc: "workers runtime"},
			},
			Default: string(config.DefaultRuntime),
		},
		{
			ID:    "database",
			Type:  QuestionTypeSelect,
			Title: "Select database",
			Desc:  "The adapter wired into the generated project.",
			Options: []Option{
				{Label: "None", Value: string(config.DatabaseNone), Desc: "no database"},
				{Label: "PostgreSQL", Value: string(config.DatabasePostgreSQL)},
				{Label: "MySQL", Value: string(config.DatabaseMySQL)},
				{Label: "SQLite", Value: string(config.DatabaseSQLite)},
				{Label: "MongoDB", Value: string(config.DatabaseMongoDB)},
				{Label: "Redis", Value: string(config.DatabaseRedis)},
				{Label: "Drizzle ORM", Value: string(config.DatabaseDrizzle), Desc: "postgres driver"},
			},
			Default: string(config.DefaultDatabase),
		},
		{
			ID:    "template",
			Type:  QuestionTypeSelect,
			Title: "Select project template",
			Options: []Option{
				{Label: "API", Value: string(config.TemplateAPI), Desc: "REST API only"},
				{Label: "Fullstack", Value: string(config.TemplateFullstack), Desc: "API + static serving"},
				{Label: "Microservice", Value: string(config.TemplateMicroservice), Desc: "minimal service"},
			},
			Default: string(config.DefaultTemplate),
		},
		{
			ID:    "features",
			Type:  QuestionTypeMultiSelect,
			Title: "Select features",
			Desc:  "Optional code and config blocks to generate.",
			Options: []Option{
				{Label: "Authentication", Value: config.FeatureAuth, Desc: "JWT middleware"},
				{Label: "CORS", Value: config.FeatureCORS},
				{Label: "Compression", Value: config.FeatureCompression},
				{Label: "WebSocket", Value: config.FeatureWebSocket, Desc: "socket handlers"},
				{Label: "API docs", Value: config.FeatureDocs, Desc: "OpenAPI endpoint"},
				{Label: "Rate limiting", Value: config.FeatureRateLimit},
				{Label: "Response cache", Value: config.FeatureCache},
				{Label: "Circuit breaker", Value: config.FeatureCircuitBreaker},
				{Label: "Monitoring", Value: config.FeatureMonitoring, Desc: "metrics endpoint"},
			},
			Defaults: []string{config.FeatureCORS},
		},
	}

	var pending []Question
	for _, q := range questions {
		if asked(q.ID) {
			pending = append(pending, q)
		}
	}
	return pending
}
