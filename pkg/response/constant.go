package response

const (
	DefaultStackTraceDepth = 32
	DefaultErrorMessage    = "Something went wrong"
	DiscordMaxMessageLen   = 4000
	redactedHeaderValue    = "[redacted]"
)

// Headers that carry credentials and never reach an incident report verbatim.
var redactedHeaders = map[string]struct{}{
	"Authorization":     {},
	"X-Ghost-Signature": {},
	"X-Api-Key":         {},
}
