// Package memory provides in-memory repository implementations mirroring the
// Postgres semantics (atomic upsert keyed by (user, store), left-join
// rollups). Used as a fixture by service and handler tests.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ratehub/store-rating-api/internal/domain/entity"
	"github.com/ratehub/store-rating-api/internal/domain/repository"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("duplicate email")
)

type ratingKey struct {
	UserID  int64
	StoreID int64
}

// DB is the shared in-memory state behind the three repositories.
type DB struct {
	mu       sync.Mutex
	userSeq  int64
	storeSeq int64
	users    map[int64]*entity.User
	stores   map[int64]*entity.Store
	ratings  map[ratingKey]int
}

func NewDB() *DB {
	return &DB{
		users:   make(map[int64]*entity.User),
		stores:  make(map[int64]*entity.Store),
		ratings: make(map[ratingKey]int),
	}
}

func (db *DB) Users() repository.UserRepository     { return &userRepo{db} }
func (db *DB) Stores() repository.StoreRepository   { return &storeRepo{db} }
func (db *DB) Ratings() repository.RatingRepository { return &ratingRepo{db} }

type userRepo struct{ db *DB }

func (r *userRepo) Create(_ context.Context, u *entity.User) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, existing := range r.db.users {
		if existing.Email == u.Email {
			return ErrDuplicateEmail
		}
	}
	r.db.userSeq++
	u.ID = r.db.userSeq
	cp := *u
	r.db.users[u.ID] = &cp
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	for _, u := range r.db.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// List omits the password hash, matching the SQL projection.
func (r *userRepo) List(_ context.Context) ([]entity.User, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]entity.User, 0, len(r.db.users))
	for _, u := range r.db.users {
		out = append(out, entity.User{ID: u.ID, Name: u.Name, Email: u.Email, Address: u.Address, Role: u.Role})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *userRepo) UpdatePasswordHash(_ context.Context, id int64, hash string) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	u, ok := r.db.users[id]
	if !ok {
		return ErrNotFound
	}
	u.PasswordHash = hash
	return nil
}

type storeRepo struct{ db *DB }

func (r *storeRepo) Create(_ context.Context, s *entity.Store) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[s.OwnerID]; !ok {
		return ErrNotFound
	}
	r.db.storeSeq++
	s.ID = r.db.storeSeq
	cp := *s
	r.db.stores[s.ID] = &cp
	return nil
}

func (r *storeRepo) ListWithRating(_ context.Context) ([]entity.StoreWithRating, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]entity.StoreWithRating, 0, len(r.db.stores))
	for _, s := range r.db.stores {
		sum, n := 0, 0
		for k, v := range r.db.ratings {
			if k.StoreID == s.ID {
				sum += v
				n++
			}
		}
		avg := 0.0 // zero-default for unrated stores
		if n > 0 {
			avg = float64(sum) / float64(n)
		}
		out = append(out, entity.StoreWithRating{ID: s.ID, Name: s.Name, Email: s.Email, Address: s.Address, AvgRating: avg})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type ratingRepo struct{ db *DB }

// Upsert holds the lock for the whole insert-or-update, the in-memory
// equivalent of the ON CONFLICT clause.
func (r *ratingRepo) Upsert(_ context.Context, userID, storeID int64, rating int) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	if _, ok := r.db.users[userID]; !ok {
		return ErrNotFound
	}
	if _, ok := r.db.stores[storeID]; !ok {
		return ErrNotFound
	}
	r.db.ratings[ratingKey{userID, storeID}] = rating
	return nil
}

func (r *ratingRepo) ListForUser(_ context.Context, userID int64) ([]entity.UserRating, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]entity.UserRating, 0)
	for k, v := range r.db.ratings {
		if k.UserID != userID {
			continue
		}
		s := r.db.stores[k.StoreID]
		out = append(out, entity.UserRating{StoreID: s.ID, StoreName: s.Name, StoreAddress: s.Address, Rating: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoreID < out[j].StoreID })
	return out, nil
}

// OwnerRollup keeps zero-rated stores with a nil average, matching the SQL
// LEFT JOIN.
func (r *ratingRepo) OwnerRollup(_ context.Context, ownerID int64) ([]entity.OwnerStoreRollup, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	ids := make([]int64, 0)
	for id, s := range r.db.stores {
		if s.OwnerID == ownerID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	out := make([]entity.OwnerStoreRollup, 0, len(ids))
	for _, id := range ids {
		s := r.db.stores[id]
		sum, n := 0, 0
		for k, v := range r.db.ratings {
			if k.StoreID == id {
				sum += v
				n++
			}
		}
		ro := entity.OwnerStoreRollup{StoreName: s.Name, TotalRatings: int64(n)}
		if n > 0 {
			avg := float64(sum) / float64(n)
			ro.AvgRating = &avg
		}
		out = append(out, ro)
	}
	return out, nil
}

func (r *ratingRepo) RatersForOwner(_ context.Context, ownerID int64) ([]entity.StoreRater, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	out := make([]entity.StoreRater, 0)
	for k, v := range r.db.ratings {
		s := r.db.stores[k.StoreID]
		if s.OwnerID != ownerID {
			continue
		}
		u := r.db.users[k.UserID]
		out = append(out, entity.StoreRater{UserName: u.Name, UserEmail: u.Email, StoreName: s.Name, Rating: v})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StoreName != out[j].StoreName {
			return out[i].StoreName < out[j].StoreName
		}
		return out[i].UserEmail < out[j].UserEmail
	})
	return out, nil
}

func (r *ratingRepo) Count(_ context.Context) (int64, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return int64(len(r.db.ratings)), nil
}

var (
	_ repository.UserRepository   = (*userRepo)(nil)
	_ repository.StoreRepository  = (*storeRepo)(nil)
	_ repository.RatingRepository = (*ratingRepo)(nil)
)
