package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/apierror"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/auth"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/dto"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/model"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/repository"
	"github.com/PumAraujo-Projects/SISTEMA-FINANCEIRO-CORE/internal/validation"
)

const (
	msgUserNotFound      = "Usuário não encontrado"
	msgEmailExists       = "Usuário com este email já existe"
	msgCodeExists        = "Usuário com este código já existe"
	msgNUITExists        = "Usuário com este NUIT já existe"
	msgMSISDNExists      = "Usuário com este número de telefone já existe"
	msgUserExists        = "Usuário com estes dados já existe"
	msgEmailInUse        = "Este email já está em uso por outro usuário"
	msgWrongPassword     = "Senha atual incorreta"
	msgInvalidDateFormat = "Data inválida, use o formato AAAA-MM-DD"
)

// UserService is the only writer of users. Every mutation loads the target
// first so an unknown id fails with NotFound before anything is written.
type UserService interface {
	Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error)
	GetUsers(ctx context.Context) ([]dto.UserResponse, error)
	FindByID(ctx context.Context, id string) (*dto.UserResponse, error)
	// FindByEmail returns the stored record, hash included; it is meant for
	// credential checks and never leaves the service layer.
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	GetOnlineUserDetails(ctx context.Context, userID string) (*dto.UserResponse, error)
	Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error)
	UpdatePassword(ctx context.Context, id string, req dto.UpdatePasswordRequest) error
	UpdateEmail(ctx context.Context, id string, req dto.UpdateEmailRequest) (*dto.UserResponse, error)
	Deactivate(ctx context.Context, id string) error
	Activate(ctx context.Context, id string) error
}

type userService struct {
	repo   repository.UserRepository
	hasher *auth.PasswordHasher
	cache  *profileCache
}

// NewUserService wires the service. rdb may be nil, which disables the
// profile cache.
func NewUserService(repo repository.UserRepository, hasher *auth.PasswordHasher, rdb *redis.Client, cacheTTL time.Duration) UserService {
	return &userService{repo: repo, hasher: hasher, cache: newProfileCache(rdb, cacheTTL)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)

	checks := []struct {
		exists func(context.Context, string) (bool, error)
		value  string
		msg    string
	}{
		{s.repo.ExistsByEmail, email, msgEmailExists},
		{s.repo.ExistsByCode, req.Code, msgCodeExists},
		{s.repo.ExistsByNUIT, req.NUIT, msgNUITExists},
		{s.repo.ExistsByMSISDN, req.MSISDN, msgMSISDNExists},
	}
	for _, c := range checks {
		exists, err := c.exists(ctx, c.value)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apierror.Conflict(c.msg)
		}
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: hash,
		Code:         req.Code,
		NUIT:         req.NUIT,
		MSISDN:       req.MSISDN,
		Address:      req.Address,
		Role:         model.RoleCliente,
		IsActive:     true,
	}
	if req.DateOfBirth != nil && *req.DateOfBirth != "" {
		dob, err := validation.ParseDate(*req.DateOfBirth)
		if err != nil {
			return nil, apierror.BadRequest(msgInvalidDateFormat)
		}
		user.DateOfBirth = &dob
	}
	if req.RegistrationDate != nil && *req.RegistrationDate != "" {
		reg, err := validation.ParseDate(*req.RegistrationDate)
		if err != nil {
			return nil, apierror.BadRequest(msgInvalidDateFormat)
		}
		user.RegistrationDate = reg
	}
	if req.Gender != nil && *req.Gender != "" {
		g := model.Gender(*req.Gender)
		user.Gender = &g
	}
	if req.Role != nil && *req.Role != "" {
		user.Role = model.Role(*req.Role)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.Notes != nil {
		user.Notes = *req.Notes
	}
	if req.Nationality != nil {
		user.Nationality = *req.Nationality
	}
	if req.MaritalStatus != nil {
		user.MaritalStatus = *req.MaritalStatus
	}
	if req.Occupation != nil {
		user.Occupation = *req.Occupation
	}
	if req.PreferredPaymentMethod != nil {
		user.PreferredPaymentMethod = model.PaymentMethod(*req.PreferredPaymentMethod)
	}
	if req.LoyaltyPoints != nil {
		user.LoyaltyPoints = *req.LoyaltyPoints
	}

	if err := s.repo.Create(ctx, user); err != nil {
		// Two registrations raced past the checks above; the unique index caught it.
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apierror.Conflict(msgUserExists)
		}
		return nil, err
	}

	log.Info().Str("user_id", user.ID).Str("code", user.Code).Msg("user created")
	resp := toUserResponse(user)
	return &resp, nil
}

func (s *userService) GetUsers(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toUserResponses(users), nil
}

func (s *userService) FindByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if cached, ok := s.cache.get(ctx, id); ok {
		return cached, nil
	}
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	s.cache.set(ctx, &resp)
	return &resp, nil
}

func (s *userService) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	user, err := s.repo.FindByEmail(ctx, normalizeEmail(email))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound(msgUserNotFound)
	}
	return user, err
}

// GetOnlineUserDetails resolves the identity carried by a verified token.
// Tokens outlive deactivation, so only a missing record is an error here.
func (s *userService) GetOnlineUserDetails(ctx context.Context, userID string) (*dto.UserResponse, error) {
	return s.FindByID(ctx, userID)
}

func (s *userService) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if _, err := s.load(ctx, id); err != nil {
		return nil, err
	}

	changes := map[string]interface{}{}
	if req.FullName != nil {
		changes["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if req.Address != nil {
		changes["address"] = *req.Address
	}
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			changes["date_of_birth"] = nil
		} else {
			dob, err := validation.ParseDate(*req.DateOfBirth)
			if err != nil {
				return nil, apierror.BadRequest(msgInvalidDateFormat)
			}
			changes["date_of_birth"] = dob
		}
	}
	if req.Gender != nil {
		if *req.Gender == "" {
			changes["gender"] = nil
		} else {
			changes["gender"] = *req.Gender
		}
	}
	if req.Notes != nil {
		changes["notes"] = *req.Notes
	}
	if req.IsActive != nil {
		changes["is_active"] = *req.IsActive
	}
	if req.Nationality != nil {
		changes["nationality"] = *req.Nationality
	}
	if req.MaritalStatus != nil {
		changes["marital_status"] = *req.MaritalStatus
	}
	if req.Occupation != nil {
		changes["occupation"] = *req.Occupation
	}
	if req.PreferredPaymentMethod != nil {
		changes["preferred_payment_method"] = *req.PreferredPaymentMethod
	}

	if err := s.repo.Update(ctx, id, changes); err != nil {
		return nil, s.mapWriteErr(err)
	}
	s.cache.invalidate(ctx, id)
	return s.reload(ctx, id)
}

func (s *userService) UpdatePassword(ctx context.Context, id string, req dto.UpdatePasswordRequest) error {
	user, err := s.load(ctx, id)
	if err != nil {
		return err
	}

	ok, err := s.hasher.Verify(req.CurrentPassword, user.PasswordHash)
	if err != nil {
		return err
	}
	if !ok {
		return apierror.BadRequest(msgWrongPassword)
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	if err := s.repo.Update(ctx, id, map[string]interface{}{"password": hash}); err != nil {
		return s.mapWriteErr(err)
	}
	s.cache.invalidate(ctx, id)
	log.Info().Str("user_id", id).Msg("password changed")
	return nil
}

// UpdateEmail treats the user's own current address as a no-op; only an
// address held by someone else is a conflict.
func (s *userService) UpdateEmail(ctx context.Context, id string, req dto.UpdateEmailRequest) (*dto.UserResponse, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	email := normalizeEmail(req.Email)
	if email == normalizeEmail(user.Email) {
		resp := toUserResponse(user)
		return &resp, nil
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apierror.Conflict(msgEmailInUse)
	}

	if err := s.repo.Update(ctx, id, map[string]interface{}{"email": email}); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apierror.Conflict(msgEmailInUse)
		}
		return nil, s.mapWriteErr(err)
	}
	s.cache.invalidate(ctx, id)
	return s.reload(ctx, id)
}

func (s *userService) Deactivate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, false)
}

func (s *userService) Activate(ctx context.Context, id string) error {
	return s.setActive(ctx, id, true)
}

func (s *userService) setActive(ctx context.Context, id string, active bool) error {
	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	if err := s.repo.SetActive(ctx, id, active); err != nil {
		return s.mapWriteErr(err)
	}
	s.cache.invalidate(ctx, id)
	log.Info().Str("user_id", id).Bool("active", active).Msg("user active flag set")
	return nil
}

// load reads the stored record, translating absence into NotFound.
func (s *userService) load(ctx context.Context, id string) (*model.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound(msgUserNotFound)
	}
	return user, err
}

func (s *userService) reload(ctx context.Context, id string) (*dto.UserResponse, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// mapWriteErr covers a row that vanished between load and write.
func (s *userService) mapWriteErr(err error) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apierror.NotFound(msgUserNotFound)
	case errors.Is(err, repository.ErrDuplicate):
		return apierror.Conflict(msgUserExists)
	default:
		return err
	}
}
