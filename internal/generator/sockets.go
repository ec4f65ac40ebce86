package generator

import (
	"fmt"
	"strings"
)

// renderSockets renders sockets.ts: the two socket-event handlers every
// websocket-enabled module gets (room join, room broadcast update), each
// with an attached rate limit.
func renderSockets(n names) string {
	var b strings.Builder
	b.WriteString("import type { SocketHandlers } from '@voltjs/core';\n")
	fmt.Fprintf(&b, "import { create%sActions } from './actions.js';\n\n", n.Pascal)

	fmt.Fprintf(&b, "export const %sSockets = (actions: ReturnType<typeof create%sActions>): SocketHandlers => ({\n",
		n.Camel, n.Pascal)

	fmt.Fprintf(&b, "  '%s:join': {\n", n.Plural)
	b.WriteString("    rateLimit: { max: 10, window: 60_000 },\n")
	b.WriteString("    handler: async (socket, payload: { room: string }) => {\n")
	fmt.Fprintf(&b, "      await socket.join(`%s:${payload.room}`);\n", n.Plural)
	b.WriteString("      socket.emit('joined', { room: payload.room });\n")
	b.WriteString("    },\n")
	b.WriteString("  },\n\n")

	fmt.Fprintf(&b, "  '%s:update': {\n", n.Plural)
	b.WriteString("    rateLimit: { max: 30, window: 60_000 },\n")
	b.WriteString("    handler: async (socket, payload: { room: string; id: string; input: unknown }) => {\n")
	b.WriteString("      const updated = await actions.update(payload.id, payload.input as never);\n")
	b.WriteString("      if (!updated) {\n")
	b.WriteString("        return socket.emit('error', { error: 'not found' });\n")
	b.WriteString("      }\n")
	fmt.Fprintf(&b, "      socket.to(`%s:${payload.room}`).emit('updated', updated);\n", n.Plural)
	b.WriteString("    },\n")
	b.WriteString("  },\n")
	b.WriteString("});\n")
	return b.String()
}
