package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/model"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/repository"
)

// ── In-memory UserRepository stub ─────────────────────────────────────────────

type stubUserRepo struct {
	mu    sync.Mutex
	users map[string]*model.User
	// skipExists makes every Exists* report false, simulating a racing insert.
	skipExists bool
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) Create(_ context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, other := range r.users {
		if other.Email == u.Email || other.Code == u.Code || other.NUIT == u.NUIT || other.MSISDN == u.MSISDN {
			return repository.ErrDuplicate
		}
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	if u.RegistrationDate.IsZero() {
		u.RegistrationDate = now
	}
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubUserRepo) existsBy(match func(*model.User) bool) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.skipExists {
		return false, nil
	}
	for _, u := range r.users {
		if match(u) {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	return r.existsBy(func(u *model.User) bool { return strings.EqualFold(u.Email, email) })
}

func (r *stubUserRepo) ExistsByCode(_ context.Context, code string) (bool, error) {
	return r.existsBy(func(u *model.User) bool { return u.Code == code })
}

func (r *stubUserRepo) ExistsByNUIT(_ context.Context, nuit string) (bool, error) {
	return r.existsBy(func(u *model.User) bool { return u.NUIT == nuit })
}

func (r *stubUserRepo) ExistsByMSISDN(_ context.Context, msisdn string) (bool, error) {
	return r.existsBy(func(u *model.User) bool { return u.MSISDN == msisdn })
}

func (r *stubUserRepo) List(_ context.Context) ([]model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, id string, changes map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for col, v := range changes {
		switch col {
		case "full_name":
			u.FullName = v.(string)
		case "address":
			u.Address = v.(string)
		case "notes":
			u.Notes = v.(string)
		case "is_active":
			u.IsActive = v.(bool)
		case "nationality":
			u.Nationality = v.(string)
		case "marital_status":
			u.MaritalStatus = v.(string)
		case "occupation":
			u.Occupation = v.(string)
		case "preferred_payment_method":
			u.PreferredPaymentMethod = model.PaymentMethod(v.(string))
		case "password":
			u.PasswordHash = v.(string)
		case "email":
			for _, other := range r.users {
				if other.ID != id && other.Email == v.(string) {
					return repository.ErrDuplicate
				}
			}
			u.Email = v.(string)
		case "gender":
			if v == nil {
				u.Gender = nil
			} else {
				g := model.Gender(v.(string))
				u.Gender = &g
			}
		case "date_of_birth":
			if v == nil {
				u.DateOfBirth = nil
			} else {
				d := v.(time.Time)
				u.DateOfBirth = &d
			}
		}
	}
	u.UpdatedAt = time.Now()
	return nil
}

func (r *stubUserRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": active})
}
