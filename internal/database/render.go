package database

import (
	"fmt"
	"path/filepath"
	"strings"
)

func connString(scheme string, spec *AdapterSpec) string {
	return fmt.Sprintf("%s://%s@%s:%d/%s", scheme, spec.Username, spec.Host, spec.Port, spec.DatabaseName)
}

func renderPostgres(spec *AdapterSpec) rendered {
	var b strings.Builder
	b.WriteString("import pg from 'pg';\n\n")
	b.WriteString("export const pool = new pg.Pool({ connectionString: process.env.DATABASE_URL });\n\n")
	b.WriteString("export const query = (text: string, params?: unknown[]) => pool.query(text, params);\n")
	b.WriteString("export const close = () => pool.end();\n")

	return rendered{
		setupFile:   b.String(),
		adapterPath: filepath.Join("src", "db", "migrate.ts"),
		adapterFile: renderRunnerScript(),
		envFragment: "DATABASE_URL=" + connString("postgresql", spec),
	}
}

func renderMySQL(spec *AdapterSpec) rendered {
	var b strings.Builder
	b.WriteString("import mysql from 'mysql2/promise';\n\n")
	b.WriteString("export const pool = mysql.createPool(process.env.DATABASE_URL!);\n\n")
	b.WriteString("export const query = async (sql: string, params?: unknown[]) => {\n")
	b.WriteString("  const [rows] = await pool.query(sql, params);\n")
	b.WriteString("  return rows;\n")
	b.WriteString("};\n")

	return rendered{
		setupFile:   b.String(),
		adapterPath: filepath.Join("src", "db", "migrate.ts"),
		adapterFile: renderRunnerScript(),
		envFragment: "DATABASE_URL=" + connString("mysql", spec),
	}
}

func renderSQLite(spec *AdapterSpec) rendered {
	var b strings.Builder
	b.WriteString("import Database from 'better-sqlite3';\n\n")
	fmt.Fprintf(&b, "const file = process.env.DATABASE_URL?.replace('file:', '') ?? './%s.db';\n", spec.DatabaseName)
	b.WriteString("export const db = new Database(file);\n")
	b.WriteString("db.pragma('journal_mode = WAL');\n")

	return rendered{
		setupFile:   b.String(),
		adapterPath: filepath.Join("src", "db", "migrate.ts"),
		adapterFile: renderRunnerScript(),
		envFragment: fmt.Sprintf("DATABASE_URL=file:./%s.db", spec.DatabaseName),
	}
}

func renderMongo(spec *AdapterSpec) rendered {
	var b strings.Builder
	b.WriteString("import { MongoClient } from 'mongodb';\n\n")
	b.WriteString("const client = new MongoClient(process.env.DATABASE_URL!);\n")
	b.WriteString("export const connect = () => client.connect();\n")
	b.WriteString("export const db = client.db();\n")

	return rendered{
		setupFile:   b.String(),
		envFragment: "DATABASE_URL=" + connString("mongodb", spec),
	}
}

func renderRedis(spec *AdapterSpec) rendered {
	var b strings.Builder
	b.WriteString("import Redis from 'ioredis';\n\n")
	b.WriteString("export const redis = new Redis(process.env.DATABASE_URL!);\n")
	b.WriteString("export const close = () => redis.quit();\n")

	return rendered{
		setupFile:   b.String(),
		envFragment: fmt.Sprintf("DATABASE_URL=redis://%s:%d/0", spec.Host, spec.Port),
	}
}

func renderDrizzle(spec *AdapterSpec) rendered {
	var setup strings.Builder
	setup.WriteString("import { drizzle } from 'drizzle-orm/node-postgres';\n")
	setup.WriteString("import pg from 'pg';\n")
	setup.WriteString("import * as schema from './schema.js';\n\n")
	setup.WriteString("const pool = new pg.Pool({ connectionString: process.env.DATABASE_URL });\n")
	setup.WriteString("export const db = drizzle(pool, { schema });\n")

	var schema strings.Builder
	schema.WriteString("import { pgTable, uuid, varchar, timestamp } from 'drizzle-orm/pg-core';\n\n")
	schema.WriteString("// Add one export per table; drizzle-kit picks them up for migrations.\n")
	schema.WriteString("export const examples = pgTable('examples', {\n")
	schema.WriteString("  id: uuid('id').primaryKey().defaultRandom(),\n")
	schema.WriteString("  name: varchar('name', { length: 100 }).notNull(),\n")
	schema.WriteString("  createdAt: timestamp('created_at').defaultNow().notNull(),\n")
	schema.WriteString("});\n")

	return rendered{
		setupFile:   setup.String(),
		adapterPath: filepath.Join("src", "db", "schema.ts"),
		adapterFile: schema.String(),
		envFragment: "DATABASE_URL=" + connString("postgresql", spec),
	}
}

// renderRunnerScript renders the generated project's own migration runner
// stub. It reads migrations/*.sql, splits each file on the -- DOWN marker,
// and applies the halves in filename-sorted order; numeric prefixes like
// 001_ establish migration order.
func renderRunnerScript() string {
	var b strings.Builder
	b.WriteString("import { readdir, readFile } from 'node:fs/promises';\n")
	b.WriteString("import { join } from 'node:path';\n")
	b.WriteString("import { query } from './index.js';\n\n")
	b.WriteString("const MIGRATIONS_DIR = 'migrations';\n")
	b.WriteString("const DOWN_MARKER = '-- DOWN';\n\n")
	b.WriteString("export async function migrate(direction: 'up' | 'down' = 'up') {\n")
	b.WriteString("  const files = (await readdir(MIGRATIONS_DIR))\n")
	b.WriteString("    .filter((f) => f.endsWith('.sql'))\n")
	b.WriteString("    .sort();\n")
	b.WriteString("  if (direction === 'down') {\n")
	b.WriteString("    files.reverse();\n")
	b.WriteString("  }\n")
	b.WriteString("  for (const file of files) {\n")
	b.WriteString("    const sql = await readFile(join(MIGRATIONS_DIR, file), 'utf8');\n")
	b.WriteString("    const [up, down = ''] = sql.split(DOWN_MARKER);\n")
	b.WriteString("    const half = direction === 'up' ? up : down;\n")
	b.WriteString("    if (half.trim()) {\n")
	b.WriteString("      await query(half);\n")
	b.WriteString("      console.log(`applied ${file} (${direction})`);\n")
	b.WriteString("    }\n")
	b.WriteString("  }\n")
	b.WriteString("}\n")
	return b.String()
}
