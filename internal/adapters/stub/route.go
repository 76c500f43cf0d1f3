// Package stub simulates a skills REST backend inside the HTTP client:
// a RoundTripper intercepts requests under the API prefix, interprets
// them as skill operations, and answers from the local store.
package stub

import (
	"encoding/json"
	"io"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Maximum multipart memory before spilling to disk.
const multipartMaxMemory = 4 << 20

// opKind enumerates the operations the stubbed API understands.
type opKind int

const (
	opList opKind = iota
	opCreate
	opUpdate
	opDelete
	opBadges
	opNotFound
)

// op is a normalized operation decoded from an intercepted request.
type op struct {
	kind opKind
	id   string         // path parameter for update/delete
	body map[string]any // normalized request body, never nil
}

// route returns the metric/log label for the operation.
func (o op) route() string {
	switch o.kind {
	case opList, opCreate:
		return "skills"
	case opUpdate, opDelete:
		return "skill"
	case opBadges:
		return "badges"
	default:
		return "unknown"
	}
}

// parseOp interprets a request below the API prefix. Unmatched
// method/path combinations map to opNotFound; they still produce a
// simulated 404 rather than reaching a real network.
func parseOp(r *http.Request, prefix string) op {
	rel := strings.TrimPrefix(r.URL.Path, prefix)
	segments := strings.Split(strings.Trim(rel, "/"), "/")

	switch {
	case len(segments) == 1 && segments[0] == "skills" && r.Method == http.MethodGet:
		return op{kind: opList, body: map[string]any{}}
	case len(segments) == 1 && segments[0] == "skills" && r.Method == http.MethodPost:
		return op{kind: opCreate, body: decodeBody(r)}
	case len(segments) == 2 && segments[0] == "skills" && segments[1] != "" && r.Method == http.MethodPatch:
		return op{kind: opUpdate, id: segments[1], body: decodeBody(r)}
	case len(segments) == 2 && segments[0] == "skills" && segments[1] != "" && r.Method == http.MethodDelete:
		return op{kind: opDelete, id: segments[1], body: map[string]any{}}
	case len(segments) == 1 && segments[0] == "badges" && r.Method == http.MethodGet:
		return op{kind: opBadges, body: map[string]any{}}
	default:
		return op{kind: opNotFound, body: map[string]any{}}
	}
}

// decodeBody normalizes the request body into one flat record, with a
// branch per concrete shape. Every failure path defaults to an empty
// record; a bad body never fails a simulated request.
func decodeBody(r *http.Request) map[string]any {
	if r.Body == nil {
		return map[string]any{}
	}
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		mediaType = ""
	}

	switch mediaType {
	case "application/x-www-form-urlencoded":
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return map[string]any{}
		}
		values, err := url.ParseQuery(string(data))
		if err != nil {
			return map[string]any{}
		}
		return flattenValues(values)

	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			return map[string]any{}
		}
		return flattenValues(url.Values(r.MultipartForm.Value))

	default:
		// Textual bodies get a structured parse with a safe fallback.
		data, err := io.ReadAll(r.Body)
		if err != nil {
			return map[string]any{}
		}
		var record map[string]any
		if err := json.Unmarshal(data, &record); err != nil || record == nil {
			return map[string]any{}
		}
		return record
	}
}

// flattenValues keeps the first value of each form key.
func flattenValues(values url.Values) map[string]any {
	record := make(map[string]any, len(values))
	for key, vals := range values {
		if len(vals) > 0 {
			record[key] = vals[0]
		}
	}
	return record
}

// fieldString extracts a string field, defaulting to "".
func fieldString(body map[string]any, key string) string {
	if v, ok := body[key].(string); ok {
		return v
	}
	return ""
}

// fieldLevel coerces a level field to an integer, defaulting to 0 for
// missing or non-numeric values. JSON numbers, form strings, and plain
// ints are all accepted; fractional input is truncated.
func fieldLevel(body map[string]any, key string) int {
	switch v := body[key].(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return int(v)
	case int:
		return v
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0
		}
		return int(f)
	default:
		return 0
	}
}

// hasField reports whether the body carries the key at all, so partial
// updates can distinguish "absent" from "zero value".
func hasField(body map[string]any, key string) bool {
	_, ok := body[key]
	return ok
}
