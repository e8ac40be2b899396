package utils

import (
	"regexp"
	"time"

	"logitrans-backend/types"

	"github.com/gofiber/fiber/v2"
)

const maxLoggedBody = 16 * 1024

var passwordFieldRe = regexp.MustCompile(`("(?:new_)?password"\s*:\s*)"[^"]*"`)

// CreateSanitizedLogEntry builds a deep-copied log entry for the async
// logger. Password fields are masked before the body is persisted.
func CreateSanitizedLogEntry(c *fiber.Ctx) types.LogEntry {
	method := string([]byte(c.Method()))
	url := string([]byte(c.OriginalURL()))
	requestBody := sanitizeRequestBody(string(c.Body()))
	responseBody := string(append([]byte(nil), c.Response().Body()...))

	requestHeaders := make([]byte, len(c.Request().Header.Header()))
	copy(requestHeaders, c.Request().Header.Header())

	responseHeaders := make([]byte, len(c.Response().Header.Header()))
	copy(responseHeaders, c.Response().Header.Header())

	return types.LogEntry{
		Method:          method,
		URL:             url,
		ClientIP:        c.IP(),
		RequestBody:     requestBody,
		ResponseBody:    responseBody,
		RequestHeaders:  string(requestHeaders),
		ResponseHeaders: string(responseHeaders),
		StatusCode:      c.Response().StatusCode(),
		CreatedAt:       time.Now(),
	}
}

// sanitizeRequestBody trims oversized payloads and masks password values so
// credentials never reach the logs table.
func sanitizeRequestBody(body string) string {
	if len(body) > maxLoggedBody {
		body = body[:maxLoggedBody] + "...(truncated)"
	}
	return passwordFieldRe.ReplaceAllString(body, `$1"***"`)
}
