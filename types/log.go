package types

import "time"

// LogEntry is the in-flight form of a request log before it is persisted by
// the async logger.
type LogEntry struct {
	Method          string
	URL             string
	ClientIP        string
	RequestBody     string
	RequestHeaders  string
	ResponseBody    string
	ResponseHeaders string
	StatusCode      int
	CreatedAt       time.Time
}
