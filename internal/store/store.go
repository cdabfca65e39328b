// Package store holds the lodging records in process memory: accommodations,
// rooms, bookings and users, each in its own Collection with its own lock
// and id counter. Nothing is persisted.
package store

type (
	Accommodations = Collection[Accommodation, *Accommodation]
	Rooms          = Collection[Room, *Room]
	Bookings       = Collection[Booking, *Booking]
)

// Options tunes a Store.
type Options struct {
	// ValidateParents makes room and booking writes fail when parentId does
	// not name an existing accommodation.
	ValidateParents bool
	// PasswordCost is the bcrypt cost for user passwords; zero means
	// bcrypt.DefaultCost.
	PasswordCost int
}

// Store groups the four collections. Build one per server, or per test.
type Store struct {
	Accommodations *Accommodations
	Rooms          *Rooms
	Bookings       *Bookings
	Users          *Users
}

func New(opts Options) *Store {
	s := &Store{
		Accommodations: NewCollection[Accommodation]("Accommodation", "name", "city", "address", "rating"),
		Rooms:          NewCollection[Room]("Room", "parentId", "type", "price"),
		Bookings:       NewCollection[Booking]("Booking", "parentId", "userName", "checkInDate", "checkOutDate"),
		Users:          newUsers(opts.PasswordCost),
	}
	s.Rooms.check = func(r *Room) error { return s.checkParent(int64(r.ParentID), opts.ValidateParents) }
	s.Bookings.check = func(b *Booking) error { return s.checkParent(int64(b.ParentID), opts.ValidateParents) }
	return s
}

// checkParent rejects non-positive parent ids always, and unknown ones when
// strict is set.
func (s *Store) checkParent(id int64, strict bool) error {
	if id <= 0 {
		return &ValidationError{Fields: []string{"parentId"}}
	}
	if strict && !s.Accommodations.Exists(id) {
		return &ValidationError{Fields: []string{"parentId"}, Reason: "parentId does not reference an existing accommodation"}
	}
	return nil
}
