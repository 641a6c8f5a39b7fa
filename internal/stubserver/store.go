package stubserver

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/homefix/marketplace-client/internal/core/domain"
)

// userRecord is the stub's account row. The password hash never leaves
// the store.
type userRecord struct {
	ID           string
	Username     string
	Email        string
	Name         string
	Phone        string
	City         string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// profile renders the record the way /auth/me exposes it.
func (u *userRecord) profile() map[string]any {
	return map[string]any{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"name":       u.Name,
		"phone":      u.Phone,
		"city":       u.City,
		"roles":      u.Roles,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// store is the in-memory database behind the stub backend. All access
// goes through the mutex; handlers never hold references into the maps.
type store struct {
	mu            sync.RWMutex
	users         map[string]*userRecord // keyed by username
	professionals map[string]*domain.Professional
	reviews       map[string]*domain.Review
	replies       map[string]*domain.ReviewReply
	orders        map[string]*domain.ServiceOrder
	messages      map[string][]domain.Message // keyed by order ID
	payments      map[string]*domain.Payment
	services      map[string]*domain.PricedService
	trades        []domain.Trade
}

func newStore() *store {
	return &store{
		users:         make(map[string]*userRecord),
		professionals: make(map[string]*domain.Professional),
		reviews:       make(map[string]*domain.Review),
		replies:       make(map[string]*domain.ReviewReply),
		orders:        make(map[string]*domain.ServiceOrder),
		messages:      make(map[string][]domain.Message),
		payments:      make(map[string]*domain.Payment),
		services:      make(map[string]*domain.PricedService),
		trades: []domain.Trade{
			{ID: uuid.NewString(), Name: "Plumber", Slug: "plumber"},
			{ID: uuid.NewString(), Name: "Electrician", Slug: "electrician"},
			{ID: uuid.NewString(), Name: "Carpenter", Slug: "carpenter"},
			{ID: uuid.NewString(), Name: "Painter", Slug: "painter"},
			{ID: uuid.NewString(), Name: "Gardener", Slug: "gardener"},
		},
	}
}

func (s *store) createUser(u *userRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.users[u.Username]; exists {
		return false
	}
	u.ID = uuid.NewString()
	s.users[u.Username] = u
	return true
}

func (s *store) findUser(username string) (*userRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return nil, false
	}
	clone := *u
	return &clone, true
}

func (s *store) updateUser(username string, apply func(*userRecord)) (*userRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, false
	}
	apply(u)
	u.UpdatedAt = time.Now().UTC()
	clone := *u
	return &clone, true
}

func (s *store) putProfessional(p *domain.Professional) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.professionals[p.ID] = p
}

func (s *store) getProfessional(id string) (*domain.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.professionals[id]
	if !ok {
		return nil, false
	}
	clone := *p
	return &clone, true
}

func (s *store) professionalByUser(userID string) (*domain.Professional, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.professionals {
		if p.UserID == userID || p.Username == userID {
			clone := *p
			return &clone, true
		}
	}
	return nil, false
}

// listProfessionals applies the advanced-search filters; the plain
// listing is the same call with empty filters.
func (s *store) listProfessionals(q domain.ProfessionalSearch) []domain.Professional {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Professional, 0, len(s.professionals))
	for _, p := range s.professionals {
		if q.Query != "" && !matches(q.Query, p.Name, p.Bio, p.Trade) {
			continue
		}
		if q.Trade != "" && !strings.EqualFold(q.Trade, p.Trade) {
			continue
		}
		if len(q.Trades) > 0 && !containsFold(q.Trades, p.Trade) {
			continue
		}
		if q.City != "" && !strings.EqualFold(q.City, p.City) {
			continue
		}
		if q.MinRating > 0 && p.Rating < q.MinRating {
			continue
		}
		if q.MaxRate > 0 && p.HourlyRate > q.MaxRate {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return paginate(out, q.Page, q.Size)
}

func matches(query string, fields ...string) bool {
	query = strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), query) {
			return true
		}
	}
	return false
}

func containsFold(haystack []string, needle string) bool {
	for _, h := range haystack {
		if strings.EqualFold(h, needle) {
			return true
		}
	}
	return false
}

func paginate(items []domain.Professional, page, size int) []domain.Professional {
	if size <= 0 {
		return items
	}
	start := page * size
	if start >= len(items) {
		return []domain.Professional{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (s *store) putReview(r *domain.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[r.ID] = r
	s.recalcRating(r.ProfessionalID)
}

func (s *store) getReview(id string) (*domain.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.reviews[id]
	if !ok {
		return nil, false
	}
	clone := *r
	return &clone, true
}

func (s *store) deleteReview(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reviews[id]
	if !ok {
		return false
	}
	delete(s.reviews, id)
	s.recalcRating(r.ProfessionalID)
	return true
}

func (s *store) reviewsFor(professionalID string) []domain.Review {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.Review{}
	for _, r := range s.reviews {
		if professionalID == "" || r.ProfessionalID == professionalID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *store) userReview(username, professionalID string) (*domain.Review, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, r := range s.reviews {
		if r.Username == username && r.ProfessionalID == professionalID {
			clone := *r
			return &clone, true
		}
	}
	return nil, false
}

// recalcRating must be called with the write lock held.
func (s *store) recalcRating(professionalID string) {
	p, ok := s.professionals[professionalID]
	if !ok {
		return
	}
	var sum, n int
	for _, r := range s.reviews {
		if r.ProfessionalID == professionalID {
			sum += r.Rating
			n++
		}
	}
	p.ReviewCount = n
	if n == 0 {
		p.Rating = 0
		return
	}
	p.Rating = float64(sum) / float64(n)
}

func (s *store) putReply(r *domain.ReviewReply) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[r.ID] = r
}

func (s *store) getReply(id string) (*domain.ReviewReply, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.replies[id]
	if !ok {
		return nil, false
	}
	clone := *r
	return &clone, true
}

func (s *store) deleteReply(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.replies[id]; !ok {
		return false
	}
	delete(s.replies, id)
	return true
}

func (s *store) repliesFor(reviewID string) []domain.ReviewReply {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ReviewReply{}
	for _, r := range s.replies {
		if r.ReviewID == reviewID {
			out = append(out, *r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *store) putOrder(o *domain.ServiceOrder) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = o
}

func (s *store) getOrder(id string) (*domain.ServiceOrder, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, false
	}
	clone := *o
	return &clone, true
}

func (s *store) updateOrder(id string, apply func(*domain.ServiceOrder) error) (*domain.ServiceOrder, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	if err := apply(o); err != nil {
		return nil, err
	}
	o.UpdatedAt = time.Now().UTC()
	clone := *o
	return &clone, nil
}

func (s *store) ordersByClient(username string) []domain.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ServiceOrder{}
	for _, o := range s.orders {
		if o.ClientUsername == username {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *store) ordersByProfessional(professionalID string) []domain.ServiceOrder {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.ServiceOrder{}
	for _, o := range s.orders {
		if o.ProfessionalID == professionalID {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

func (s *store) appendMessage(orderID string, m domain.Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages[orderID] = append(s.messages[orderID], m)
}

func (s *store) messagesFor(orderID string) []domain.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Message{}, s.messages[orderID]...)
}

func (s *store) deleteMessage(orderID, messageID, sender string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	msgs := s.messages[orderID]
	for i, m := range msgs {
		if m.ID != messageID {
			continue
		}
		if m.Sender != sender {
			return domain.ErrForbidden
		}
		s.messages[orderID] = append(msgs[:i], msgs[i+1:]...)
		return nil
	}
	return domain.ErrMessageNotFound
}

func (s *store) putPayment(p *domain.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID] = p
}

func (s *store) putService(ps *domain.PricedService) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.services[ps.ID] = ps
}

func (s *store) getService(id string) (*domain.PricedService, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ps, ok := s.services[id]
	if !ok {
		return nil, false
	}
	clone := *ps
	return &clone, true
}

func (s *store) deleteService(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.services[id]; !ok {
		return false
	}
	delete(s.services, id)
	return true
}

func (s *store) servicesByProfessional(professionalID string) []domain.PricedService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.PricedService{}
	for _, ps := range s.services {
		if ps.ProfessionalID == professionalID {
			out = append(out, *ps)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *store) servicesByTrade(trade string) []domain.PricedService {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.PricedService{}
	for _, ps := range s.services {
		if strings.EqualFold(ps.Trade, trade) {
			out = append(out, *ps)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (s *store) listTrades() []domain.Trade {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Trade{}, s.trades...)
}
