package generator

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// seedNamespace makes seed row ids deterministic per module name, so
// re-running generation produces identical file content.
var seedNamespace = uuid.MustParse("8e0ad5d6-6f3c-4a72-9a14-2b1f6c9e7d41")

// renderSchemaSQL renders schema.sql for the module's table.
func renderSchemaSQL(n names) string {
	var b strings.Builder
	fmt.Fprintf(&b, "CREATE TABLE IF NOT EXISTS %s (\n", n.Plural)
	b.WriteString("    id UUID PRIMARY KEY,\n")
	b.WriteString("    name VARCHAR(100) NOT NULL,\n")
	b.WriteString("    description VARCHAR(500),\n")
	b.WriteString("    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),\n")
	b.WriteString("    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()\n")
	b.WriteString(");\n\n")
	fmt.Fprintf(&b, "CREATE INDEX IF NOT EXISTS idx_%s_name ON %s (name);\n", n.Plural, n.Plural)
	return b.String()
}

// renderMigrationSQL renders the module's migration file. The up half runs
// before the -- DOWN marker; the down half after it.
func renderMigrationSQL(n names) string {
	var b strings.Builder
	b.WriteString(renderSchemaSQL(n))
	b.WriteString("\n-- DOWN\n\n")
	fmt.Fprintf(&b, "DROP INDEX IF EXISTS idx_%s_name;\n", n.Plural)
	fmt.Fprintf(&b, "DROP TABLE IF EXISTS %s;\n", n.Plural)
	return b.String()
}

// renderSeedSQL renders deterministic sample rows for the module's table.
func renderSeedSQL(n names) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INSERT INTO %s (id, name, description) VALUES\n", n.Plural)
	for i := 1; i <= 3; i++ {
		id := uuid.NewSHA1(seedNamespace, []byte(fmt.Sprintf("%s-%d", n.Plural, i)))
		sep := ","
		if i == 3 {
			sep = ""
		}
		fmt.Fprintf(&b, "    ('%s', 'Sample %s %d', 'Seeded by volt')%s\n", id, n.Raw, i, sep)
	}
	b.WriteString("ON CONFLICT (id) DO NOTHING;\n")
	return b.String()
}
