package stub

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	service "github.com/skillstub/skillstub/internal/app"
	"github.com/skillstub/skillstub/pkg/logger"
	"github.com/skillstub/skillstub/pkg/metrics"
)

// Default API prefix gated by the transport.
const defaultPrefix = "/api"

// Transport is an http.RoundTripper that answers requests under the
// API prefix from the local simulator and hands everything else to the
// fallback transport unchanged.
type Transport struct {
	prefix   string
	fallback http.RoundTripper
	sim      *simulator
	log      logger.Logger
}

// NewTransport creates a stub transport over the given service.
func NewTransport(svc *service.Service, opts ...Option) (*Transport, error) {
	if svc == nil {
		return nil, ErrNilService
	}
	t := &Transport{
		prefix:   defaultPrefix,
		fallback: http.DefaultTransport,
		sim:      newSimulator(svc),
		log:      logger.Nop(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Client returns an http.Client whose requests go through the stub.
func (t *Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if !t.matches(req.URL.Path) {
		metrics.RecordPassthrough()
		return t.fallback.RoundTrip(req)
	}

	// The RoundTripper contract: the body is consumed and closed even
	// when the operation never reads it.
	if req.Body != nil {
		defer req.Body.Close()
	}

	start := time.Now()
	o := parseOp(req, t.prefix)
	resp, err := t.sim.do(req, o)
	if err != nil {
		return nil, err
	}

	code := strconv.Itoa(resp.StatusCode)
	metrics.RecordRequest(o.route(), req.Method, code)
	metrics.RecordRequestDuration(o.route(), req.Method, code, time.Since(start).Seconds())
	t.log.Debug(req.Context(), "simulated request",
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("code", code),
	)
	return resp, nil
}

// matches gates on the API prefix, honoring segment boundaries so
// "/apiary" never matches a "/api" prefix.
func (t *Transport) matches(path string) bool {
	return path == t.prefix || strings.HasPrefix(path, t.prefix+"/")
}
