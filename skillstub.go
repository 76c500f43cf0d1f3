// Package skillstub turns an ordinary http.Client into a client of a
// simulated skills-tracking backend. Requests under the API prefix are
// answered from local storage with realistic status codes and latency;
// everything else travels over the real network.
//
// The simulated API:
//
//	GET    {prefix}/skills       list stored skills
//	POST   {prefix}/skills       create a skill from {name, level}
//	PATCH  {prefix}/skills/{id}  partially update a skill
//	DELETE {prefix}/skills/{id}  remove a skill
//	GET    {prefix}/badges       derive achievement badges
package skillstub

import (
	"context"
	"net/http"
	"time"

	"github.com/skillstub/skillstub/internal/adapters/repository"
	"github.com/skillstub/skillstub/internal/adapters/stub"
	service "github.com/skillstub/skillstub/internal/app"
	"github.com/skillstub/skillstub/pkg/logger"
)

// Stub is the assembled simulated backend. It implements
// http.RoundTripper and owns the storage backend it was built with.
type Stub struct {
	transport *stub.Transport
	closer    func() error
}

// Option applies a configuration option to the Stub under construction.
type Option func(*settings)

type settings struct {
	prefix     string
	latencySet bool
	latencyMin time.Duration
	latencyMax time.Duration
	fallback   http.RoundTripper
	log        logger.Logger
	newID      func() string

	slot      repository.Slot
	slotClose func() error
	slotErr   error
}

// WithPrefix sets the intercepted API prefix (default "/api").
func WithPrefix(prefix string) Option {
	return func(s *settings) { s.prefix = prefix }
}

// WithLatency sets a fixed artificial response delay (default 200ms).
func WithLatency(d time.Duration) Option {
	return func(s *settings) {
		s.latencySet = true
		s.latencyMin = d
		s.latencyMax = d
	}
}

// WithLatencyRange sets a jittered artificial response delay.
func WithLatencyRange(minLatency, maxLatency time.Duration) Option {
	return func(s *settings) {
		s.latencySet = true
		s.latencyMin = minLatency
		s.latencyMax = maxLatency
	}
}

// WithFallback sets the transport for requests outside the prefix
// (default http.DefaultTransport).
func WithFallback(rt http.RoundTripper) Option {
	return func(s *settings) { s.fallback = rt }
}

// WithLogger sets the logger used by all components.
func WithLogger(log logger.Logger) Option {
	return func(s *settings) { s.log = log }
}

// WithIDGenerator overrides the id source for created skills.
func WithIDGenerator(newID func() string) Option {
	return func(s *settings) { s.newID = newID }
}

// WithMemoryStorage keeps the collection in process memory (default).
func WithMemoryStorage() Option {
	return func(s *settings) {
		s.slot = repository.NewMemorySlot()
		s.slotClose = nil
		s.slotErr = nil
	}
}

// WithFileStorage persists the collection to a JSON file at path.
func WithFileStorage(path string) Option {
	return func(s *settings) {
		slot, err := repository.NewFileSlot(path)
		s.slot, s.slotClose, s.slotErr = slot, nil, err
	}
}

// WithSQLiteStorage persists the collection in a sqlite database,
// under the named slot row.
func WithSQLiteStorage(ctx context.Context, dbPath, slotName string) Option {
	return func(s *settings) {
		slot, err := repository.NewSQLiteSlot(ctx, dbPath, slotName)
		if err != nil {
			s.slot, s.slotClose, s.slotErr = nil, nil, err
			return
		}
		s.slot, s.slotClose, s.slotErr = slot, slot.Close, nil
	}
}

// New assembles a Stub from the given options.
func New(opts ...Option) (*Stub, error) {
	s := &settings{
		slot: repository.NewMemorySlot(),
		log:  logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.slotErr != nil {
		return nil, s.slotErr
	}

	store, err := repository.NewSkillStore(s.slot, repository.WithLogger(s.log))
	if err != nil {
		return nil, err
	}

	svcOpts := []service.Option{service.WithLogger(s.log)}
	if s.newID != nil {
		svcOpts = append(svcOpts, service.WithIDGenerator(s.newID))
	}
	svc, err := service.New(store, svcOpts...)
	if err != nil {
		return nil, err
	}

	stubOpts := []stub.Option{stub.WithLogger(s.log)}
	if s.prefix != "" {
		stubOpts = append(stubOpts, stub.WithPrefix(s.prefix))
	}
	if s.latencySet {
		stubOpts = append(stubOpts, stub.WithLatencyRange(s.latencyMin, s.latencyMax))
	}
	if s.fallback != nil {
		stubOpts = append(stubOpts, stub.WithFallback(s.fallback))
	}
	transport, err := stub.NewTransport(svc, stubOpts...)
	if err != nil {
		return nil, err
	}

	return &Stub{transport: transport, closer: s.slotClose}, nil
}

// NewClient assembles a Stub and wraps it in an http.Client.
func NewClient(opts ...Option) (*http.Client, *Stub, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, nil, err
	}
	return s.Client(), s, nil
}

// RoundTrip implements http.RoundTripper.
func (s *Stub) RoundTrip(req *http.Request) (*http.Response, error) {
	return s.transport.RoundTrip(req)
}

// Client returns an http.Client backed by the stub.
func (s *Stub) Client() *http.Client {
	return &http.Client{Transport: s}
}

// Close releases the storage backend, if it holds resources.
func (s *Stub) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}
