// Package memstore is the in-process storage behind the memory repository
// driver. All four tables live behind one lock so multi-table operations
// such as the request-accepted cascade are atomic.
package memstore

import (
	"strings"
	"sync"

	"github.com/unirides/unirides/internal/pkg/models"
)

type table[T any] struct {
	rows  map[string]T
	order []string
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[string]T)}
}

func (t *table[T]) get(id string) (T, bool) {
	v, ok := t.rows[id]
	return v, ok
}

func (t *table[T]) put(id string, v T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = v
}

func (t *table[T]) remove(id string) {
	if _, ok := t.rows[id]; !ok {
		return
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i:i], t.order[i+1:]...)
			break
		}
	}
}

// snapshot returns the row and its position so remove can be undone
func (t *table[T]) snapshot(id string) func() {
	prev, existed := t.rows[id]
	if !existed {
		return func() { t.remove(id) }
	}
	order := append([]string(nil), t.order...)
	return func() {
		t.rows[id] = prev
		t.order = order
	}
}

func (t *table[T]) all() []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.rows[id])
	}
	return out
}

// Store holds every table of the memory driver
type Store struct {
	mu        sync.RWMutex
	users     *table[models.User]
	rides     *table[models.Ride]
	bookings  *table[models.Booking]
	requests  *table[models.Request]
	locations map[string]models.Location
}

// New creates an empty store
func New() *Store {
	return &Store{
		users:     newTable[models.User](),
		rides:     newTable[models.Ride](),
		bookings:  newTable[models.Booking](),
		requests:  newTable[models.Request](),
		locations: make(map[string]models.Location),
	}
}

// View runs fn under the read lock. fn must not write.
func (s *Store) View(fn func(tx *Tx) error) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&Tx{s: s, readOnly: true})
}

// Update runs fn under the write lock. When fn returns an error every
// write it made is undone.
func (s *Store) Update(fn func(tx *Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx := &Tx{s: s}
	if err := fn(tx); err != nil {
		tx.rollback()
		return err
	}
	return nil
}

// Tx gives access to the tables while the store lock is held. Values
// returned by Tx are copies.
type Tx struct {
	s        *Store
	readOnly bool
	undo     []func()
}

func (tx *Tx) record(undo func()) {
	if tx.readOnly {
		panic("memstore: write in read-only transaction")
	}
	tx.undo = append(tx.undo, undo)
}

func (tx *Tx) rollback() {
	for i := len(tx.undo) - 1; i >= 0; i-- {
		tx.undo[i]()
	}
	tx.undo = nil
}

// User returns the user with id
func (tx *Tx) User(id string) (*models.User, bool) {
	u, ok := tx.s.users.get(id)
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

// UserByEmail matches email case-insensitively
func (tx *Tx) UserByEmail(email string) (*models.User, bool) {
	for _, u := range tx.s.users.all() {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), true
		}
	}
	return nil, false
}

// PutUser inserts or replaces a user
func (tx *Tx) PutUser(u *models.User) {
	tx.record(tx.s.users.snapshot(u.ID))
	tx.s.users.put(u.ID, *cloneUser(*u))
}

// Ride returns the ride with id
func (tx *Tx) Ride(id string) (*models.Ride, bool) {
	r, ok := tx.s.rides.get(id)
	if !ok {
		return nil, false
	}
	return cloneRide(r), true
}

// Rides returns every ride in insertion order
func (tx *Tx) Rides() []*models.Ride {
	rows := tx.s.rides.all()
	out := make([]*models.Ride, 0, len(rows))
	for _, r := range rows {
		out = append(out, cloneRide(r))
	}
	return out
}

// PutRide inserts or replaces a ride
func (tx *Tx) PutRide(r *models.Ride) {
	tx.record(tx.s.rides.snapshot(r.ID))
	tx.s.rides.put(r.ID, *cloneRide(*r))
}

// DeleteRide removes a ride and reports whether it existed
func (tx *Tx) DeleteRide(id string) bool {
	if _, ok := tx.s.rides.get(id); !ok {
		return false
	}
	tx.record(tx.s.rides.snapshot(id))
	tx.s.rides.remove(id)
	return true
}

// ReserveSeat takes a seat on rideID for passengerID with
// models.Ride.ReserveSeat semantics. It returns nil when the ride does not
// exist.
func (tx *Tx) ReserveSeat(rideID, passengerID string) (ride *models.Ride, hadSeat bool) {
	ride, ok := tx.Ride(rideID)
	if !ok {
		return nil, false
	}
	hadSeat = ride.ReserveSeat(passengerID)
	ride.UpdatedAt = models.Now()
	tx.PutRide(ride)
	return ride, hadSeat
}

// Booking returns the booking with id
func (tx *Tx) Booking(id string) (*models.Booking, bool) {
	b, ok := tx.s.bookings.get(id)
	if !ok {
		return nil, false
	}
	return &b, true
}

// Bookings returns the bookings matching keep in insertion order
func (tx *Tx) Bookings(keep func(*models.Booking) bool) []*models.Booking {
	out := make([]*models.Booking, 0)
	for _, b := range tx.s.bookings.all() {
		b := b
		if keep == nil || keep(&b) {
			out = append(out, &b)
		}
	}
	return out
}

// PutBooking inserts or replaces a booking
func (tx *Tx) PutBooking(b *models.Booking) {
	tx.record(tx.s.bookings.snapshot(b.ID))
	tx.s.bookings.put(b.ID, *b)
}

// Request returns the request with id
func (tx *Tx) Request(id string) (*models.Request, bool) {
	r, ok := tx.s.requests.get(id)
	if !ok {
		return nil, false
	}
	return &r, true
}

// Requests returns the requests matching keep in insertion order
func (tx *Tx) Requests(keep func(*models.Request) bool) []*models.Request {
	out := make([]*models.Request, 0)
	for _, r := range tx.s.requests.all() {
		r := r
		if keep == nil || keep(&r) {
			out = append(out, &r)
		}
	}
	return out
}

// PutRequest inserts or replaces a request
func (tx *Tx) PutRequest(r *models.Request) {
	tx.record(tx.s.requests.snapshot(r.ID))
	tx.s.requests.put(r.ID, *r)
}

// Location returns the last stored location of a user
func (tx *Tx) Location(userID string) (models.Location, bool) {
	loc, ok := tx.s.locations[userID]
	return loc, ok
}

// PutLocation stores the location of a user
func (tx *Tx) PutLocation(userID string, loc models.Location) {
	prev, existed := tx.s.locations[userID]
	tx.record(func() {
		if existed {
			tx.s.locations[userID] = prev
		} else {
			delete(tx.s.locations, userID)
		}
	})
	tx.s.locations[userID] = loc
}

func cloneUser(u models.User) *models.User {
	if u.Vehicle != nil {
		v := *u.Vehicle
		u.Vehicle = &v
	}
	return &u
}

func cloneRide(r models.Ride) *models.Ride {
	r.Passengers = append([]string{}, r.Passengers...)
	return &r
}
