package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fxswap/internal/conversion"
	"fxswap/internal/domain"
	"fxswap/internal/price"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const defaultLoadTimeout = 15 * time.Second

type IndexLoader interface {
	Load(ctx context.Context) (*price.Index, error)
}

// View is a consistent copy of one session taken under its lock.
type View struct {
	ID    uuid.UUID
	Phase conversion.Phase
	State conversion.State
}

// Picker is what a currency picker needs for both sides: the selections and the candidates.
type Picker struct {
	From       string
	To         string
	Candidates []domain.LatestPrice
}

// session serializes events on one controller: each runs to completion before the next.
type session struct {
	id uuid.UUID

	mu       sync.Mutex
	ctrl     *conversion.Controller
	lastSeen time.Time
}

func (s *session) view() View {
	return View{ID: s.id, Phase: s.ctrl.Phase(), State: s.ctrl.State()}
}

type Service struct {
	loader      IndexLoader
	opts        conversion.Options
	loadTimeout time.Duration
	now         func() time.Time

	mu       sync.RWMutex
	sessions map[uuid.UUID]*session
	loads    sync.WaitGroup
}

// Create starts a session in the loading phase and fetches its prices in the background.
func (s *Service) Create(ctx context.Context) View {
	sess := &session{
		id:       uuid.New(),
		ctrl:     conversion.NewController(s.opts),
		lastSeen: s.now(),
	}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	// Snapshot before the load goroutine can touch the controller.
	v := sess.view()

	loadCtx := context.WithoutCancel(ctx)
	s.loads.Add(1)
	go func() {
		defer s.loads.Done()
		s.load(loadCtx, sess)
	}()
	return v
}

func (s *Service) load(ctx context.Context, sess *session) {
	ctx, cancel := context.WithTimeout(ctx, s.loadTimeout)
	defer cancel()

	idx, err := s.loader.Load(ctx)

	sess.mu.Lock()
	defer sess.mu.Unlock()
	if err != nil {
		logrus.WithError(err).WithField("session_id", sess.id).Warn("Price feed unavailable, session stays loading")
		sess.ctrl.FailLoad(err)
		return
	}
	sess.ctrl.Load(idx)
	logrus.WithFields(logrus.Fields{"session_id": sess.id, "currencies": idx.Len()}).Debug("Session prices loaded")
}

// Wait blocks until every background feed load started so far has finished.
func (s *Service) Wait() {
	s.loads.Wait()
}

func (s *Service) Get(id uuid.UUID) (View, error) {
	return s.apply(id, func(*conversion.Controller) {})
}

func (s *Service) Candidates(id uuid.UUID) (Picker, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return Picker{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()

	st := sess.ctrl.State()
	return Picker{From: st.FromCurrency, To: st.ToCurrency, Candidates: sess.ctrl.Candidates()}, nil
}

func (s *Service) SelectFrom(id uuid.UUID, currency string) (View, error) {
	return s.apply(id, func(c *conversion.Controller) { c.SelectFrom(currency) })
}

func (s *Service) SelectTo(id uuid.UUID, currency string) (View, error) {
	return s.apply(id, func(c *conversion.Controller) { c.SelectTo(currency) })
}

// EditAmount reports whether the text was accepted as the new amount.
func (s *Service) EditAmount(id uuid.UUID, text string) (View, bool, error) {
	var accepted bool
	v, err := s.apply(id, func(c *conversion.Controller) { accepted = c.EditAmount(text) })
	return v, accepted, err
}

func (s *Service) Swap(id uuid.UUID) (View, error) {
	return s.apply(id, func(c *conversion.Controller) { c.Swap() })
}

// Close ends the session; its state is dropped.
func (s *Service) Close(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// EvictIdle drops sessions not used for longer than ttl and returns how many were dropped.
func (s *Service) EvictIdle(ttl time.Duration) int {
	cutoff := s.now().Add(-ttl)

	s.mu.Lock()
	defer s.mu.Unlock()
	evicted := 0
	for id, sess := range s.sessions {
		sess.mu.Lock()
		idle := sess.lastSeen.Before(cutoff)
		sess.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			evicted++
		}
	}
	return evicted
}

func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Convert is a one-shot conversion outside of any session.
func (s *Service) Convert(ctx context.Context, from, to, amount string) (conversion.Conversion, error) {
	if !conversion.WellFormedAmount(amount) {
		return conversion.Conversion{}, fmt.Errorf("%w: %q is not a decimal amount", domain.ErrInvalidAmount, amount)
	}
	idx, err := s.loader.Load(ctx)
	if err != nil {
		return conversion.Conversion{}, err
	}
	return conversion.Compute(idx, from, to, amount)
}

func (s *Service) apply(id uuid.UUID, event func(*conversion.Controller)) (View, error) {
	sess, err := s.lookup(id)
	if err != nil {
		return View{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.lastSeen = s.now()
	event(sess.ctrl)
	return sess.view(), nil
}

func (s *Service) lookup(id uuid.UUID) (*session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func NewService(loader IndexLoader, opts conversion.Options, loadTimeout time.Duration) *Service {
	if loadTimeout <= 0 {
		loadTimeout = defaultLoadTimeout
	}
	return &Service{
		loader:      loader,
		opts:        opts,
		loadTimeout: loadTimeout,
		now:         time.Now,
		sessions:    make(map[uuid.UUID]*session),
	}
}
