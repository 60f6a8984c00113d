package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"strings"

	"frame-notify-srv/pkg/discord"

	"github.com/gin-gonic/gin"
)

func sendDiscordMessageAsync(c *gin.Context, d discord.IDiscord, message string) {
	if d == nil || message == "" {
		return
	}
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		for _, msg := range splitMessageForDiscord(message) {
			if err := d.ReportBug(ctx, msg); err != nil {
				// The request logger may already be gone.
				log.Printf("pkg.response.sendDiscordMessageAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

func splitMessageForDiscord(message string) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > DiscordMaxMessageLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > DiscordMaxMessageLen {
				chunks = append(chunks, line[:DiscordMaxMessageLen])
				line = line[DiscordMaxMessageLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

// buildInternalServerErrorDataForReportBug renders the request that failed. The raw body is
// taken from gin.BodyBytesKey, where the webhook handlers leave it after reading.
func buildInternalServerErrorDataForReportBug(c *gin.Context, errString string, backtrace []string) string {
	var sb strings.Builder
	sb.WriteString("============ FRAME NOTIFY SERVICE ERROR ============\n")
	sb.WriteString(fmt.Sprintf("Route   : %s\n", c.Request.URL.String()))
	sb.WriteString(fmt.Sprintf("Method  : %s\n", c.Request.Method))
	sb.WriteString("----------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for k := range c.Request.Header {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteString("Headers :\n")
		for _, key := range keys {
			value := strings.Join(c.Request.Header[key], ", ")
			if _, ok := redactedHeaders[key]; ok {
				value = redactedHeaderValue
			}
			sb.WriteString(fmt.Sprintf("    %s: %s\n", key, value))
		}
		sb.WriteString("----------------------------------------------------\n")
	}

	if raw, ok := c.Get(gin.BodyBytesKey); ok {
		if bodyBytes, ok := raw.([]byte); ok && len(bodyBytes) > 0 {
			sb.WriteString("Body    :\n")
			var prettyBody bytes.Buffer
			if err := json.Indent(&prettyBody, bodyBytes, "    ", "  "); err == nil {
				sb.WriteString("    " + prettyBody.String() + "\n")
			} else {
				sb.WriteString("    " + string(bodyBytes) + "\n")
			}
			sb.WriteString("----------------------------------------------------\n")
		}
	}

	sb.WriteString(fmt.Sprintf("Error   : %s\n", errString))

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			sb.WriteString(fmt.Sprintf("[%d]: %s\n", i, line))
		}
	}

	sb.WriteString("====================================================\n")
	return sb.String()
}
