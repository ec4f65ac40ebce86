package template

import (
	"fmt"
	"strings"

	"github.com/voltjs/volt-cli/internal/config"
)

// RenderDatabaseStub renders src/db/index.ts, the adapter connection stub
// for the selected engine.
func RenderDatabaseStub(cfg *config.ProjectConfig) string {
	var b strings.Builder
	switch cfg.Database {
	case config.DatabaseMongoDB:
		b.WriteString("import { MongoClient } from 'mongodb';\n\n")
		b.WriteString("const client = new MongoClient(process.env.DATABASE_URL!);\n")
		b.WriteString("export const db = client.db();\n")
		b.WriteString("export const connect = () => client.connect();\n")
	case config.DatabaseRedis:
		b.WriteString("import Redis from 'ioredis';\n\n")
		b.WriteString("export const redis = new Redis(process.env.DATABASE_URL!);\n")
	case config.DatabaseDrizzle:
		b.WriteString("import { drizzle } from 'drizzle-orm/node-postgres';\n")
		b.WriteString("import pg from 'pg';\n\n")
		b.WriteString("const pool = new pg.Pool({ connectionString: process.env.DATABASE_URL });\n")
		b.WriteString("export const db = drizzle(pool);\n")
	case config.DatabaseSQLite:
		b.WriteString("import Database from 'better-sqlite3';\n\n")
		b.WriteString("export const db = new Database(process.env.DATABASE_URL!.replace('file:', ''));\n")
	case config.DatabaseMySQL:
		b.WriteString("import mysql from 'mysql2/promise';\n\n")
		b.WriteString("export const pool = mysql.createPool(process.env.DATABASE_URL!);\n")
	default:
		b.WriteString("import pg from 'pg';\n\n")
		b.WriteString("export const pool = new pg.Pool({ connectionString: process.env.DATABASE_URL });\n")
		b.WriteString("export const query = (text: string, params?: unknown[]) => pool.query(text, params);\n")
	}
	return b.String()
}

// RenderAuthStub renders src/middleware/auth.ts for projects with the auth
// feature: JWT verification plus role guard helpers.
func RenderAuthStub(cfg *config.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("import jwt from 'jsonwebtoken';\n")
	b.WriteString("import type { Context, Next } from '@voltjs/core';\n\n")
	b.WriteString("export interface TokenPayload {\n  sub: string;\n  roles: string[];\n}\n\n")
	b.WriteString("export async function authenticate(ctx: Context, next: Next) {\n")
	b.WriteString("  const header = ctx.request.headers.get('authorization') ?? '';\n")
	b.WriteString("  const token = header.replace(/^Bearer /, '');\n")
	b.WriteString("  try {\n")
	b.WriteString("    ctx.state.user = jwt.verify(token, process.env.JWT_SECRET!) as TokenPayload;\n")
	b.WriteString("  } catch {\n")
	b.WriteString("    return ctx.unauthorized({ error: 'invalid or missing token' });\n")
	b.WriteString("  }\n")
	b.WriteString("  return next();\n")
	b.WriteString("}\n\n")
	b.WriteString("export const requireRole = (role: string) => async (ctx: Context, next: Next) => {\n")
	b.WriteString("  const user = ctx.state.user as TokenPayload | undefined;\n")
	b.WriteString("  if (!user?.roles.includes(role)) {\n")
	b.WriteString("    return ctx.forbidden({ error: 'insufficient role' });\n")
	b.WriteString("  }\n")
	b.WriteString("  return next();\n")
	b.WriteString("};\n")
	return b.String()
}

// RenderTestSetup renders tests/setup.ts plus a smoke test for the entry app.
func RenderTestSetup(cfg *config.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("import { beforeAll, afterAll } from 'vitest';\n\n")
	b.WriteString("beforeAll(() => {\n")
	b.WriteString("  process.env.NODE_ENV = 'test';\n")
	if cfg.Database != config.DatabaseNone {
		fmt.Fprintf(&b, "  process.env.DATABASE_URL ??= '%s';\n", defaultDatabaseURL(cfg.Database, cfg.Name+"_test"))
	}
	b.WriteString("});\n\n")
	b.WriteString("afterAll(() => {\n  // close shared resources here\n});\n")
	return b.String()
}

// RenderSmokeTest renders tests/app.test.ts.
func RenderSmokeTest(cfg *config.ProjectConfig) string {
	var b strings.Builder
	b.WriteString("import { describe, expect, it } from 'vitest';\n")
	b.WriteString("import { createApp } from '@voltjs/core';\n")
	b.WriteString("import { config } from '../src/volt.config.js';\n\n")
	fmt.Fprintf(&b, "describe('%s', () => {\n", cfg.Name)
	b.WriteString("  it('responds on /health', async () => {\n")
	b.WriteString("    const app = createApp(config);\n")
	b.WriteString("    const res = await app.inject({ method: 'GET', path: '/health' });\n")
	b.WriteString("    expect(res.status).toBe(200);\n")
	b.WriteString("  });\n")
	b.WriteString("});\n")
	return b.String()
}
