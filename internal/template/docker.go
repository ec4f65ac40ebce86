package template

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/voltjs/volt-cli/internal/config"
)

// RenderDockerfile renders the container build file. Only the traditional
// node runtime gets one; the edge/serverless targets deploy through their
// own platform tooling.
func RenderDockerfile(cfg *config.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("FROM node:22-alpine AS build\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("COPY package*.json ./\n")
	b.WriteString("RUN npm ci\n")
	b.WriteString("COPY . .\n")
	b.WriteString("RUN npm run build\n\n")
	b.WriteString("FROM node:22-alpine\n")
	b.WriteString("WORKDIR /app\n")
	b.WriteString("ENV NODE_ENV=production\n")
	b.WriteString("COPY --from=build /app/dist ./dist\n")
	b.WriteString("COPY package*.json ./\n")
	b.WriteString("RUN npm ci --omit=dev\n")
	fmt.Fprintf(&b, "EXPOSE %d\n", config.DefaultDevPort)
	b.WriteString("CMD [\"node\", \"dist/index.js\"]\n")
	return b.String()
}

// composeService is one service entry in docker-compose.yml.
type composeService struct {
	Image       string            `yaml:"image,omitempty"`
	Build       string            `yaml:"build,omitempty"`
	Ports       []string          `yaml:"ports,omitempty"`
	Environment map[string]string `yaml:"environment,omitempty"`
	Volumes     []string          `yaml:"volumes,omitempty"`
	DependsOn   []string          `yaml:"depends_on,omitempty"`
}

type composeFile struct {
	Services map[string]composeService `yaml:"services"`
	Volumes  map[string]any            `yaml:"volumes,omitempty"`
}

// RenderDockerCompose renders docker-compose.yml for node-runtime projects
// that selected a server-backed database engine. Returns "" when the engine
// needs no companion container (sqlite, none).
func RenderDockerCompose(cfg *config.ProjectConfig) (string, error) {
	app := composeService{
		Build: ".",
		Ports: []string{fmt.Sprintf("%d:%d", config.DefaultDevPort, config.DefaultDevPort)},
		Environment: map[string]string{
			"NODE_ENV": "production",
		},
	}

	services := map[string]composeService{}
	volumes := map[string]any{}

	switch cfg.Database {
	case config.DatabasePostgreSQL, config.DatabaseDrizzle:
		services["db"] = composeService{
			Image: "postgres:17-alpine",
			Environment: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       cfg.Name,
			},
			Ports:   []string{"5432:5432"},
			Volumes: []string{"pgdata:/var/lib/postgresql/data"},
		}
		volumes["pgdata"] = nil
		app.DependsOn = []string{"db"}
		app.Environment["DATABASE_URL"] = fmt.Sprintf("postgresql://postgres:postgres@db:5432/%s", cfg.Name)
	case config.DatabaseMySQL:
		services["db"] = composeService{
			Image: "mysql:9",
			Environment: map[string]string{
				"MYSQL_ROOT_PASSWORD": "root",
				"MYSQL_DATABASE":      cfg.Name,
			},
			Ports:   []string{"3306:3306"},
			Volumes: []string{"mysqldata:/var/lib/mysql"},
		}
		volumes["mysqldata"] = nil
		app.DependsOn = []string{"db"}
		app.Environment["DATABASE_URL"] = fmt.Sprintf("mysql://root:root@db:3306/%s", cfg.Name)
	case config.DatabaseMongoDB:
		services["db"] = composeService{
			Image:   "mongo:8",
			Ports:   []string{"27017:27017"},
			Volumes: []string{"mongodata:/data/db"},
		}
		volumes["mongodata"] = nil
		app.DependsOn = []string{"db"}
		app.Environment["DATABASE_URL"] = fmt.Sprintf("mongodb://db:27017/%s", cfg.Name)
	case config.DatabaseRedis:
		services["redis"] = composeService{
			Image: "redis:7-alpine",
			Ports: []string{"6379:6379"},
		}
		app.DependsOn = []string{"redis"}
		app.Environment["DATABASE_URL"] = "redis://redis:6379/0"
	default:
		return "", nil
	}

	services["app"] = app
	data, err := yaml.Marshal(composeFile{Services: services, Volumes: volumes})
	if err != nil {
		return "", fmt.Errorf("marshal docker-compose.yml: %w", err)
	}
	return string(data), nil
}
