package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/model"
)

// ErrDuplicate is returned when a write hits one of the unique indexes.
var ErrDuplicate = errors.New("repository: duplicate key")

// UserRepository persists users. Lookups that find nothing return
// gorm.ErrRecordNotFound; unique violations return an error wrapping ErrDuplicate.
type UserRepository interface {
	Create(ctx context.Context, u *model.User) error
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	ExistsByNUIT(ctx context.Context, nuit string) (bool, error)
	ExistsByMSISDN(ctx context.Context, msisdn string) (bool, error)
	List(ctx context.Context) ([]model.User, error)
	Update(ctx context.Context, id string, changes map[string]interface{}) error
	SetActive(ctx context.Context, id string, active bool) error
}

type userRepo struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepo{db: db} }

func (r *userRepo) Create(ctx context.Context, u *model.User) error {
	return translate(r.db.WithContext(ctx).Create(u).Error)
}

func (r *userRepo) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", strings.TrimSpace(email)).
		First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "LOWER(email) = LOWER(?)", strings.TrimSpace(email))
}

func (r *userRepo) ExistsByCode(ctx context.Context, code string) (bool, error) {
	return r.exists(ctx, "code = ?", code)
}

func (r *userRepo) ExistsByNUIT(ctx context.Context, nuit string) (bool, error) {
	return r.exists(ctx, "nuit = ?", nuit)
}

func (r *userRepo) ExistsByMSISDN(ctx context.Context, msisdn string) (bool, error) {
	return r.exists(ctx, "msisdn = ?", msisdn)
}

func (r *userRepo) exists(ctx context.Context, cond string, arg interface{}) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Where(cond, arg).Count(&count).Error
	return count > 0, err
}

// List returns every user, most recently created first.
func (r *userRepo) List(ctx context.Context) ([]model.User, error) {
	var users []model.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&users).Error
	return users, err
}

// Update applies a column→value map to one row. Using a map (not a struct)
// lets callers write zero values such as is_active=false.
func (r *userRepo) Update(ctx context.Context, id string, changes map[string]interface{}) error {
	if len(changes) == 0 {
		return nil
	}
	res := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", id).Updates(changes)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *userRepo) SetActive(ctx context.Context, id string, active bool) error {
	return r.Update(ctx, id, map[string]interface{}{"is_active": active})
}

func translate(err error) error {
	if err != nil && isUniqueViolation(err) {
		return fmt.Errorf("%w: %v", ErrDuplicate, err)
	}
	return err
}

// isUniqueViolation recognises unique-index failures from gorm's error
// translation, from pgx directly, and from SQLite.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
