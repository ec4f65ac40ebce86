package generator

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/voltjs/volt-cli/internal/config"
)

func generate(t *testing.T, root string, spec *config.ModuleSpec) *Result {
	t.Helper()
	if spec.Routes == "" {
		spec.Routes = config.DefaultRoutes
	}
	result, err := New(root, nil).Generate(spec)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	return result
}

func TestGenerateBaseFileSet(t *testing.T) {
	root := t.TempDir()
	result := generate(t, root, &config.ModuleSpec{Name: "user"})

	want := []string{"types.ts", "schema.ts", "config.ts", "actions.ts", "routes.ts", "index.ts"}
	for _, f := range want {
		path := filepath.Join(root, "src", "modules", "user", f)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
	if len(result.Files) != len(want) {
		t.Errorf("file count = %d, want %d: %v", len(result.Files), len(want), result.Files)
	}
}

func TestGenerateRoutesAlwaysFive(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "order", Features: []string{"auth", "websocket"}})

	routes, err := os.ReadFile(filepath.Join(root, "src", "modules", "order", "routes.ts"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(routes)

	for _, m := range []string{"'GET'", "'POST'", "'PUT'", "'DELETE'"} {
		if !strings.Contains(content, m) {
			t.Errorf("missing method %s", m)
		}
	}
	if got := strings.Count(content, "method:"); got != 5 {
		t.Errorf("route count = %d, want exactly 5", got)
	}
	if got := strings.Count(content, "path: '/:id'"); got != 3 {
		t.Errorf("id-path routes = %d, want 3", got)
	}
}

func TestGenerateMissingIdReturnsNotFound(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "user"})

	routes, err := os.ReadFile(filepath.Join(root, "src", "modules", "user", "routes.ts"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(routes)

	// The action layer signals a missing id with null (lookups) or false
	// (deletes); the routes translate both into a 404.
	if got := strings.Count(content, "ctx.notFound(notFoundBody)"); got != 3 {
		t.Errorf("notFound translations = %d, want 3", got)
	}
	if !strings.Contains(content, "removed ? ctx.noContent() : ctx.notFound(notFoundBody)") {
		t.Error("remove route must map the false sentinel to 404")
	}
}

func TestGenerateWebSocketAddsTwoHandlers(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "chat", Features: []string{config.FeatureWebSocket}})

	sockets, err := os.ReadFile(filepath.Join(root, "src", "modules", "chat", "sockets.ts"))
	if err != nil {
		t.Fatalf("sockets.ts not generated: %v", err)
	}
	content := string(sockets)

	if !strings.Contains(content, "'chats:join'") {
		t.Error("missing join handler")
	}
	if !strings.Contains(content, "'chats:update'") {
		t.Error("missing update handler")
	}
	if got := strings.Count(content, "rateLimit:"); got != 2 {
		t.Errorf("rate-limited handlers = %d, want 2", got)
	}
}

func TestGenerateWithoutWebSocketHasNoSockets(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "user"})

	if _, err := os.Stat(filepath.Join(root, "src", "modules", "user", "sockets.ts")); !os.IsNotExist(err) {
		t.Error("sockets.ts should not exist without the websocket feature")
	}
}

func TestGenerateDatabaseAddsThreeSQLFiles(t *testing.T) {
	root := t.TempDir()
	result := generate(t, root, &config.ModuleSpec{Name: "product", Features: []string{config.FeatureDatabase}})

	var sqlFiles []string
	for _, f := range result.Files {
		if strings.HasSuffix(f, ".sql") {
			sqlFiles = append(sqlFiles, f)
		}
	}
	want := []string{
		filepath.Join("migrations", "001_create_products.sql"),
		filepath.Join("seeds", "001_products.sql"),
		filepath.Join("src", "modules", "product", "schema.sql"),
	}
	slices.Sort(sqlFiles)
	if !slices.Equal(sqlFiles, want) {
		t.Errorf("sql files = %v, want %v", sqlFiles, want)
	}
}

func TestGenerateDatabaseFlagAlsoTriggersSQL(t *testing.T) {
	root := t.TempDir()
	result := generate(t, root, &config.ModuleSpec{Name: "product", Database: config.DatabasePostgreSQL})

	count := 0
	for _, f := range result.Files {
		if strings.HasSuffix(f, ".sql") {
			count++
		}
	}
	if count != 3 {
		t.Errorf("sql files = %d, want 3", count)
	}
}

func TestGenerateMigrationPrefixesIncrement(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "user", Features: []string{config.FeatureDatabase}})
	generate(t, root, &config.ModuleSpec{Name: "order", Features: []string{config.FeatureDatabase}})

	entries, err := os.ReadDir(filepath.Join(root, "migrations"))
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	slices.Sort(names)
	want := []string{"001_create_users.sql", "002_create_orders.sql"}
	if !slices.Equal(names, want) {
		t.Errorf("migrations = %v, want %v", names, want)
	}
}

func TestGenerateMigrationHasDownMarker(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "user", Features: []string{config.FeatureDatabase}})

	raw, err := os.ReadFile(filepath.Join(root, "migrations", "001_create_users.sql"))
	if err != nil {
		t.Fatal(err)
	}
	content := string(raw)

	idx := strings.Index(content, "-- DOWN")
	if idx < 0 {
		t.Fatal("missing -- DOWN marker")
	}
	up, down := content[:idx], content[idx:]
	if !strings.Contains(up, "CREATE TABLE IF NOT EXISTS users") {
		t.Error("up half missing CREATE TABLE")
	}
	if !strings.Contains(down, "DROP TABLE IF EXISTS users") {
		t.Error("down half missing DROP TABLE")
	}
	if strings.Contains(up, "DROP TABLE") {
		t.Error("DROP TABLE leaked into the up half")
	}
}

func TestGenerateSeedIsDeterministic(t *testing.T) {
	first := renderSeedSQL(newNames("user"))
	second := renderSeedSQL(newNames("user"))
	if first != second {
		t.Error("seed content must be identical across runs")
	}
	if got := strings.Count(first, "('"); got != 3 {
		t.Errorf("seed rows = %d, want 3", got)
	}
}

func TestGenerateGraphQLAddsResolvers(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "user", Routes: config.RoutesGraphQL})

	raw, err := os.ReadFile(filepath.Join(root, "src", "modules", "user", "resolvers.ts"))
	if err != nil {
		t.Fatalf("resolvers.ts not generated: %v", err)
	}
	for _, want := range []string{"Query:", "Mutation:", "createUser", "deleteUser"} {
		if !strings.Contains(string(raw), want) {
			t.Errorf("resolvers missing %q", want)
		}
	}
}

func TestGenerateOptionalExtras(t *testing.T) {
	root := t.TempDir()
	generate(t, root, &config.ModuleSpec{Name: "user", WithTests: true, WithDocs: true})

	for _, f := range []string{"user.test.ts", "README.md"} {
		if _, err := os.Stat(filepath.Join(root, "src", "modules", "user", f)); err != nil {
			t.Errorf("missing %s: %v", f, err)
		}
	}
}

func TestGenerateEmptyName(t *testing.T) {
	_, err := New(t.TempDir(), nil).Generate(&config.ModuleSpec{Name: "  "})
	if !errors.Is(err, ErrEmptyName) {
		t.Errorf("err = %v, want ErrEmptyName", err)
	}
}

func TestList(t *testing.T) {
	root := t.TempDir()
	if got, err := List(root); err != nil || got != nil {
		t.Errorf("List on empty project = %v, %v", got, err)
	}

	generate(t, root, &config.ModuleSpec{Name: "user"})
	generate(t, root, &config.ModuleSpec{Name: "order"})

	got, err := List(root)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(got, []string{"order", "user"}) {
		t.Errorf("List = %v", got)
	}
}
