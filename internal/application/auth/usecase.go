package auth

import (
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	domainauth "github.com/tu-usuario/stock-control-api/internal/domain/auth"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	"github.com/tu-usuario/stock-control-api/internal/domain/repository"
	"github.com/tu-usuario/stock-control-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// Vigencia del refresh token.
const refreshTokenTTL = 7 * 24 * time.Hour

// AuthUseCase autenticación y gestión de usuarios: login con bcrypt + JWT,
// renovación por refresh token persistido, alta/baja de empleados y resolución
// del actor (rol + categorías permitidas) para cada petición.
type AuthUseCase struct {
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	tokenRepo    repository.RefreshTokenRepository
	jwtCfg       JWTConfig
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	tokenRepo repository.RefreshTokenRepository,
	jwtCfg JWTConfig,
) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, categoryRepo: categoryRepo, tokenRepo: tokenRepo, jwtCfg: jwtCfg}
}

// Login verifica email/password, genera el JWT de acceso y persiste un refresh
// token opaco con expiración.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	refresh := &entity.RefreshToken{
		ID:         uuid.New().String(),
		Token:      uuid.New().String(),
		UserID:     user.ID,
		ExpiryDate: now.Add(refreshTokenTTL),
		CreatedAt:  now,
	}
	if err := uc.tokenRepo.Create(refresh); err != nil {
		return nil, err
	}
	return &dto.LoginResponse{AccessToken: access, RefreshToken: refresh.Token}, nil
}

// Refresh emite un nuevo token de acceso a partir de un refresh token vigente.
// Los tokens vencidos se eliminan y se rechazan.
func (uc *AuthUseCase) Refresh(in dto.RefreshRequest) (*dto.RefreshResponse, error) {
	stored, err := uc.tokenRepo.GetByToken(in.RefreshToken)
	if err != nil {
		return nil, err
	}
	if stored == nil {
		return nil, domain.ErrUnauthorized
	}
	if stored.Expired(time.Now()) {
		_ = uc.tokenRepo.DeleteByToken(stored.Token)
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.userRepo.GetByID(stored.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	access, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.RefreshResponse{AccessToken: access}, nil
}

// CreateUser crea un empleado (solo ADMIN en la capa HTTP). Las categorías
// asignadas deben existir; vacías = empleado sin restricción de visibilidad.
func (uc *AuthUseCase) CreateUser(in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	if len(in.CategoryIDs) > 0 {
		categories, err := uc.categoryRepo.GetByIDs(in.CategoryIDs)
		if err != nil {
			return nil, err
		}
		if len(categories) != len(in.CategoryIDs) {
			return nil, domain.ErrNotFound
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	name := in.Name
	if name == "" {
		name = in.Email
	}
	user := &entity.User{
		ID:                 uuid.New().String(),
		Name:               name,
		Email:              in.Email,
		PasswordHash:       string(hash),
		Role:               entity.RoleEmployee,
		AllowedCategoryIDs: in.CategoryIDs,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ListUsers lista todos los usuarios.
func (uc *AuthUseCase) ListUsers() ([]dto.UserResponse, error) {
	list, err := uc.userRepo.List()
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(list))
	for _, u := range list {
		items = append(items, *toUserResponse(u))
	}
	return items, nil
}

// DeleteUser elimina un usuario y sus refresh tokens.
func (uc *AuthUseCase) DeleteUser(id string) error {
	user, err := uc.userRepo.GetByID(id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	if err := uc.tokenRepo.DeleteByUser(id); err != nil {
		return err
	}
	return uc.userRepo.Delete(id)
}

// MyCategories devuelve las categorías asignadas al usuario autenticado.
func (uc *AuthUseCase) MyCategories(userID string) ([]dto.CategoryResponse, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	if len(user.AllowedCategoryIDs) == 0 {
		return []dto.CategoryResponse{}, nil
	}
	categories, err := uc.categoryRepo.GetByIDs(user.AllowedCategoryIDs)
	if err != nil {
		return nil, err
	}
	items := make([]dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, dto.CategoryResponse{
			ID:        c.ID,
			Name:      c.Name,
			Size:      c.Size,
			Packaging: c.Packaging,
		})
	}
	return items, nil
}

// ActorFor resuelve el actor (rol + categorías permitidas) de un usuario.
// Se consulta la BD en cada petición para que los cambios de asignación
// apliquen de inmediato, sin depender de claims cacheados en el token.
func (uc *AuthUseCase) ActorFor(userID string) (domainauth.Actor, error) {
	user, err := uc.userRepo.GetByID(userID)
	if err != nil {
		return domainauth.Actor{}, err
	}
	if user == nil {
		return domainauth.Actor{}, domain.ErrUnauthorized
	}
	return domainauth.Actor{Role: user.Role, AllowedCategories: user.AllowedCategoryIDs}, nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		CategoryIDs: u.AllowedCategoryIDs,
		CreatedAt:   u.CreatedAt,
	}
}
