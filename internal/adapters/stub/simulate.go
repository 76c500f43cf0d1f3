package stub

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"sync"
	"time"

	service "github.com/skillstub/skillstub/internal/app"
	"github.com/skillstub/skillstub/internal/domain/model"
	"github.com/skillstub/skillstub/internal/domain/types"
)

// Default simulation constants.
const (
	defaultLatency    = 200 * time.Millisecond
	defaultRandomSeed = 42
)

// notFoundBody is the body of every simulated 404.
var notFoundBody = types.ErrorBody{Message: "Not Found"}

// result is the outcome of executing an operation: a status code plus
// an optional JSON payload. A nil payload yields an empty body.
type result struct {
	status  int
	payload any
}

// simulator executes operations against the service and wraps each
// outcome as a real HTTP response after an artificial delay.
type simulator struct {
	svc *service.Service

	// Simulated latency range.
	minLatency time.Duration
	maxLatency time.Duration

	// rng jitters the latency; guarded because RoundTrip may be called
	// from multiple goroutines.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func newSimulator(svc *service.Service) *simulator {
	return &simulator{
		svc:        svc,
		minLatency: defaultLatency,
		maxLatency: defaultLatency,
		rng:        rand.New(rand.NewSource(defaultRandomSeed)), //nolint:gosec // jitter, not security
	}
}

// do executes the operation and resolves the simulated response. The
// store write happens before the delay, so a caller abandoning the
// request cannot abort an in-progress persistence.
func (s *simulator) do(req *http.Request, o op) (*http.Response, error) {
	res := s.execute(context.WithoutCancel(req.Context()), o)

	var payload []byte
	if res.payload != nil {
		var err error
		payload, err = json.Marshal(res.payload)
		if err != nil {
			return nil, fmt.Errorf("encode simulated response: %w", err)
		}
	}

	select {
	case <-req.Context().Done():
		return nil, fmt.Errorf("simulated request cancelled: %w", req.Context().Err())
	case <-time.After(s.latency()):
	}

	return newResponse(req, res.status, payload), nil
}

func (s *simulator) execute(ctx context.Context, o op) result {
	switch o.kind {
	case opList:
		skills, err := s.svc.List(ctx)
		if err != nil {
			return errorResult(err)
		}
		return result{status: http.StatusOK, payload: types.SkillsFromModel(skills)}

	case opCreate:
		created, err := s.svc.Create(ctx, fieldString(o.body, "name"), fieldLevel(o.body, "level"))
		if err != nil {
			return errorResult(err)
		}
		return result{status: http.StatusCreated, payload: types.SkillFromModel(created)}

	case opUpdate:
		var patch model.SkillPatch
		if hasField(o.body, "name") {
			name := fieldString(o.body, "name")
			patch.Name = &name
		}
		if hasField(o.body, "level") {
			level := fieldLevel(o.body, "level")
			patch.Level = &level
		}
		updated, err := s.svc.Update(ctx, o.id, patch)
		if err != nil {
			return errorResult(err)
		}
		return result{status: http.StatusOK, payload: types.SkillFromModel(updated)}

	case opDelete:
		if err := s.svc.Delete(ctx, o.id); err != nil {
			return errorResult(err)
		}
		return result{status: http.StatusNoContent}

	case opBadges:
		badges, err := s.svc.Badges(ctx)
		if err != nil {
			return errorResult(err)
		}
		return result{status: http.StatusOK, payload: types.BadgesFromModel(badges)}

	default:
		return result{status: http.StatusNotFound, payload: notFoundBody}
	}
}

// latency picks the artificial delay for one request.
func (s *simulator) latency() time.Duration {
	if s.maxLatency <= s.minLatency {
		return s.minLatency
	}
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.minLatency + time.Duration(s.rng.Int63n(int64(s.maxLatency-s.minLatency)))
}

// newResponse builds a response indistinguishable from one produced by
// a real server: status line, headers, body, and the originating
// request echoed back for callers that inspect it.
func newResponse(req *http.Request, status int, payload []byte) *http.Response {
	header := make(http.Header)
	if len(payload) > 0 {
		header.Set("Content-Type", "application/json; charset=utf-8")
	}
	return &http.Response{
		Status:        fmt.Sprintf("%d %s", status, http.StatusText(status)),
		StatusCode:    status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        header,
		Body:          io.NopCloser(bytes.NewReader(payload)),
		ContentLength: int64(len(payload)),
		Request:       req,
	}
}

// errorResult maps an operation error to a simulated response. Unknown
// ids become a 404; anything else (a failing storage backend) surfaces
// as a 500 so callers still receive a structured response.
func errorResult(err error) result {
	if errors.Is(err, service.ErrSkillNotFound) {
		return result{status: http.StatusNotFound, payload: notFoundBody}
	}
	return result{status: http.StatusInternalServerError, payload: types.ErrorBody{Message: http.StatusText(http.StatusInternalServerError)}}
}
