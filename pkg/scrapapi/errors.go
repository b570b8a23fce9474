package scrapapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	pkgerrors "github.com/scrapyardhq/scrapdash/pkg/errors"
)

// errorFromResponse maps a non-2xx response to a typed error, preserving the
// backend's own message text so validation detail reaches the caller
// unchanged.
func (c *Client) errorFromResponse(ctx context.Context, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyReadLimit))
	code := codeForStatus(resp.StatusCode)
	message := serverMessage(raw)
	if message == "" {
		message = pkgerrors.MetadataFor(code).PublicMessage
	}

	err := pkgerrors.New(code, message)
	var details any
	if json.Unmarshal(raw, &details) == nil && details != nil {
		err = err.WithDetails(details)
	}

	if code == pkgerrors.CodeServer {
		c.logg.Error(ctx, fmt.Sprintf("backend fault (status %d)", resp.StatusCode), err)
	}
	return err
}

func codeForStatus(status int) pkgerrors.Code {
	switch {
	case status == http.StatusUnauthorized:
		return pkgerrors.CodeUnauthorized
	case status == http.StatusForbidden:
		return pkgerrors.CodeForbidden
	case status == http.StatusNotFound:
		return pkgerrors.CodeNotFound
	case status == http.StatusConflict:
		return pkgerrors.CodeConflict
	case status == http.StatusUnprocessableEntity:
		return pkgerrors.CodeStateConflict
	case status == http.StatusTooManyRequests:
		return pkgerrors.CodeRateLimit
	case status >= 500:
		return pkgerrors.CodeServer
	default:
		return pkgerrors.CodeValidation
	}
}

// serverMessage extracts human-readable text from the backend's error body.
// The backend answers either {"detail": "..."} or a field-to-messages map.
func serverMessage(raw []byte) string {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" {
		return ""
	}

	var withDetail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &withDetail); err == nil && withDetail.Detail != "" {
		return withDetail.Detail
	}

	var fieldErrors map[string]any
	if err := json.Unmarshal(raw, &fieldErrors); err == nil && len(fieldErrors) > 0 {
		fields := make([]string, 0, len(fieldErrors))
		for field := range fieldErrors {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		var parts []string
		for _, field := range fields {
			for _, msg := range flattenMessages(fieldErrors[field]) {
				parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, "; ")
		}
	}

	if !strings.HasPrefix(trimmed, "<") {
		return trimmed
	}
	return ""
}

func flattenMessages(value any) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []any:
		var out []string
		for _, item := range v {
			out = append(out, flattenMessages(item)...)
		}
		return out
	default:
		return nil
	}
}

// IsReauthRequired reports whether the error demands a fresh login. The view
// layer owns the navigation decision; this client only signals it.
func IsReauthRequired(err error) bool {
	return pkgerrors.HasCode(err, pkgerrors.CodeReauthNeeded)
}

// IsPermissionDenied reports whether the backend refused the operation for
// the current role.
func IsPermissionDenied(err error) bool {
	return pkgerrors.HasCode(err, pkgerrors.CodeForbidden)
}
