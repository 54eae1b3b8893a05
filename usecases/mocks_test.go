package usecases_test

import (
	"time"

	"github.com/mvegadev/comanda/models"
)

// In-memory repository doubles. They copy on the way in and out so tests
// cannot accidentally mutate stored state through shared pointers.

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time          { return c.now }
func (c *fixedClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type sinkEvent struct {
	name    string
	payload any
}

type recordingSink struct{ events []sinkEvent }

func (s *recordingSink) Emit(name string, payload any) {
	s.events = append(s.events, sinkEvent{name: name, payload: payload})
}

func (s *recordingSink) names() []string {
	names := make([]string, 0, len(s.events))
	for _, e := range s.events {
		names = append(names, e.name)
	}
	return names
}

func (s *recordingSink) reset() { s.events = nil }

// --- users ---

type memUserRepo struct{ store map[string]models.User }

func newMemUserRepo() *memUserRepo { return &memUserRepo{store: make(map[string]models.User)} }

func (r *memUserRepo) FindByID(id string) (*models.User, error) {
	if u, ok := r.store[id]; ok {
		return &u, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(email string) (*models.User, error) {
	for _, u := range r.store {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindAll() ([]*models.User, error) {
	out := make([]*models.User, 0, len(r.store))
	for _, u := range r.store {
		u := u
		out = append(out, &u)
	}
	return out, nil
}

func (r *memUserRepo) FindByRole(role models.UserRole) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.store {
		if u.Role == role {
			u := u
			out = append(out, &u)
		}
	}
	return out, nil
}

func (r *memUserRepo) Save(u *models.User) (*models.User, error) {
	r.store[u.ID] = *u
	return u, nil
}

func (r *memUserRepo) Update(u *models.User) (*models.User, error) {
	r.store[u.ID] = *u
	return u, nil
}

func (r *memUserRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// --- tables ---

type memTableRepo struct{ store map[string]models.Table }

func newMemTableRepo() *memTableRepo { return &memTableRepo{store: make(map[string]models.Table)} }

func (r *memTableRepo) FindByID(id string) (*models.Table, error) {
	if t, ok := r.store[id]; ok {
		return &t, nil
	}
	return nil, nil
}

func (r *memTableRepo) FindAll() ([]*models.Table, error) {
	out := make([]*models.Table, 0, len(r.store))
	for _, t := range r.store {
		t := t
		out = append(out, &t)
	}
	return out, nil
}

func (r *memTableRepo) FindByStatus(status models.TableStatus) ([]*models.Table, error) {
	var out []*models.Table
	for _, t := range r.store {
		if t.Status == status {
			t := t
			out = append(out, &t)
		}
	}
	return out, nil
}

func (r *memTableRepo) FindByNumber(number int) (*models.Table, error) {
	for _, t := range r.store {
		if t.Number == number {
			t := t
			return &t, nil
		}
	}
	return nil, nil
}

func (r *memTableRepo) Save(t *models.Table) (*models.Table, error) {
	r.store[t.ID] = *t
	return t, nil
}

func (r *memTableRepo) Update(t *models.Table) (*models.Table, error) {
	r.store[t.ID] = *t
	return t, nil
}

func (r *memTableRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// --- menu ---

type memMenuRepo struct{ store map[string]models.MenuItem }

func newMemMenuRepo() *memMenuRepo { return &memMenuRepo{store: make(map[string]models.MenuItem)} }

func (r *memMenuRepo) FindByID(id string) (*models.MenuItem, error) {
	if m, ok := r.store[id]; ok {
		return &m, nil
	}
	return nil, nil
}

func (r *memMenuRepo) FindAll() ([]*models.MenuItem, error) {
	out := make([]*models.MenuItem, 0, len(r.store))
	for _, m := range r.store {
		m := m
		out = append(out, &m)
	}
	return out, nil
}

func (r *memMenuRepo) FindAvailable() ([]*models.MenuItem, error) {
	var out []*models.MenuItem
	for _, m := range r.store {
		if m.IsAvailable {
			m := m
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *memMenuRepo) FindByCategory(category models.MenuItemCategory) ([]*models.MenuItem, error) {
	var out []*models.MenuItem
	for _, m := range r.store {
		if m.Category == category {
			m := m
			out = append(out, &m)
		}
	}
	return out, nil
}

func (r *memMenuRepo) Save(m *models.MenuItem) (*models.MenuItem, error) {
	r.store[m.ID] = *m
	return m, nil
}

func (r *memMenuRepo) Update(m *models.MenuItem) (*models.MenuItem, error) {
	r.store[m.ID] = *m
	return m, nil
}

func (r *memMenuRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// --- orders ---

type memOrderRepo struct{ store map[string]models.Order }

func newMemOrderRepo() *memOrderRepo { return &memOrderRepo{store: make(map[string]models.Order)} }

func copyOrder(o models.Order) models.Order {
	o.Items = append([]models.OrderItem(nil), o.Items...)
	return o
}

func (r *memOrderRepo) FindByID(id string) (*models.Order, error) {
	if o, ok := r.store[id]; ok {
		o = copyOrder(o)
		return &o, nil
	}
	return nil, nil
}

func (r *memOrderRepo) FindAll() ([]*models.Order, error) {
	out := make([]*models.Order, 0, len(r.store))
	for _, o := range r.store {
		o := copyOrder(o)
		out = append(out, &o)
	}
	return out, nil
}

func (r *memOrderRepo) FindByStatus(status models.OrderStatus) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range r.store {
		if o.Status == status {
			o := copyOrder(o)
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) FindByTable(tableID string) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range r.store {
		if o.TableID == tableID {
			o := copyOrder(o)
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) FindByWaiter(waiterID string) ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range r.store {
		if o.WaiterID == waiterID {
			o := copyOrder(o)
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) FindActive() ([]*models.Order, error) {
	var out []*models.Order
	for _, o := range r.store {
		if !o.Status.Terminal() {
			o := copyOrder(o)
			out = append(out, &o)
		}
	}
	return out, nil
}

func (r *memOrderRepo) Save(o *models.Order) (*models.Order, error) {
	r.store[o.ID] = copyOrder(*o)
	return o, nil
}

func (r *memOrderRepo) Update(o *models.Order) (*models.Order, error) {
	r.store[o.ID] = copyOrder(*o)
	return o, nil
}

func (r *memOrderRepo) Delete(id string) error {
	delete(r.store, id)
	return nil
}

// --- payments ---

type memPaymentRepo struct{ store map[string]models.Payment }

func newMemPaymentRepo() *memPaymentRepo {
	return &memPaymentRepo{store: make(map[string]models.Payment)}
}

func (r *memPaymentRepo) FindByID(id string) (*models.Payment, error) {
	if p, ok := r.store[id]; ok {
		return &p, nil
	}
	return nil, nil
}

func (r *memPaymentRepo) FindByOrder(orderID string) (*models.Payment, error) {
	for _, p := range r.store {
		if p.OrderID == orderID {
			p := p
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memPaymentRepo) FindAll() ([]*models.Payment, error) {
	out := make([]*models.Payment, 0, len(r.store))
	for _, p := range r.store {
		p := p
		out = append(out, &p)
	}
	return out, nil
}

func (r *memPaymentRepo) Save(p *models.Payment) (*models.Payment, error) {
	r.store[p.ID] = *p
	return p, nil
}

func (r *memPaymentRepo) Update(p *models.Payment) (*models.Payment, error) {
	r.store[p.ID] = *p
	return p, nil
}
