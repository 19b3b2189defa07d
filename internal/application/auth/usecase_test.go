package auth_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/stock-control-api/internal/application/auth"
	"github.com/tu-usuario/stock-control-api/internal/application/dto"
	"github.com/tu-usuario/stock-control-api/internal/domain"
	"github.com/tu-usuario/stock-control-api/internal/domain/entity"
	pkgjwt "github.com/tu-usuario/stock-control-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	users map[string]entity.User // por ID
}

func newFakeUserRepo(users ...entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[string]entity.User)}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	r.users[u.ID] = *u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			uu := u
			return &uu, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List() ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		uu := u
		out = append(out, &uu)
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) ReplaceAllowedCategories(userID string, categoryIDs []string) error {
	u, ok := r.users[userID]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.AllowedCategoryIDs = categoryIDs
	r.users[userID] = u
	return nil
}

type fakeCategoryRepo struct {
	categories map[string]entity.Category
}

func newFakeCategoryRepo(categories ...entity.Category) *fakeCategoryRepo {
	r := &fakeCategoryRepo{categories: make(map[string]entity.Category)}
	for _, c := range categories {
		r.categories[c.ID] = c
	}
	return r
}

func (r *fakeCategoryRepo) Create(c *entity.Category) error {
	r.categories[c.ID] = *c
	return nil
}

func (r *fakeCategoryRepo) GetByID(id string) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &c, nil
}

func (r *fakeCategoryRepo) GetByIDs(ids []string) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			cc := c
			out = append(out, &cc)
		}
	}
	return out, nil
}

func (r *fakeCategoryRepo) ListAllByName() ([]*entity.Category, error) { return nil, nil }
func (r *fakeCategoryRepo) Update(c *entity.Category) error            { return nil }
func (r *fakeCategoryRepo) Delete(id string) error                     { return nil }

type fakeTokenRepo struct {
	tokens map[string]entity.RefreshToken // por valor del token
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]entity.RefreshToken)}
}

func (r *fakeTokenRepo) Create(t *entity.RefreshToken) error {
	r.tokens[t.Token] = *t
	return nil
}

func (r *fakeTokenRepo) GetByToken(token string) (*entity.RefreshToken, error) {
	t, ok := r.tokens[token]
	if !ok {
		return nil, nil
	}
	return &t, nil
}

func (r *fakeTokenRepo) DeleteByToken(token string) error {
	delete(r.tokens, token)
	return nil
}

func (r *fakeTokenRepo) DeleteByUser(userID string) error {
	for k, t := range r.tokens {
		if t.UserID == userID {
			delete(r.tokens, k)
		}
	}
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var jwtCfg = auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "stock-control-test"}

func hashOf(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func adminUser(t *testing.T) entity.User {
	return entity.User{
		ID:           "user-admin",
		Name:         "Administrador",
		Email:        "admin",
		PasswordHash: hashOf(t, "admin123"),
		Role:         entity.RoleAdmin,
	}
}

func buildUC(t *testing.T, users ...entity.User) (*auth.AuthUseCase, *fakeUserRepo, *fakeTokenRepo) {
	userRepo := newFakeUserRepo(users...)
	categoryRepo := newFakeCategoryRepo(
		entity.Category{ID: "cat-1", Name: "Ferretería"},
		entity.Category{ID: "cat-2", Name: "Pinturas"},
	)
	tokenRepo := newFakeTokenRepo()
	return auth.NewAuthUseCase(userRepo, categoryRepo, tokenRepo, jwtCfg), userRepo, tokenRepo
}

// ──────────────────────────────────────────────────────────────────────────────
// Login / Refresh
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_CredencialesValidas(t *testing.T) {
	uc, _, tokens := buildUC(t, adminUser(t))

	out, err := uc.Login(dto.LoginRequest{Email: "admin", Password: "admin123"})
	require.NoError(t, err)

	userID, role, err := pkgjwt.Parse(jwtCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-admin", userID)
	assert.Equal(t, entity.RoleAdmin, role)

	require.NotEmpty(t, out.RefreshToken)
	stored, ok := tokens.tokens[out.RefreshToken]
	require.True(t, ok, "el refresh token queda persistido")
	assert.Equal(t, "user-admin", stored.UserID)
	assert.True(t, stored.ExpiryDate.After(time.Now()))
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	uc, _, _ := buildUC(t, adminUser(t))

	_, err := uc.Login(dto.LoginRequest{Email: "admin", Password: "otra"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc, _, _ := buildUC(t)

	_, err := uc.Login(dto.LoginRequest{Email: "nadie", Password: "x"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestRefresh_EmiteNuevoAccessToken(t *testing.T) {
	uc, _, _ := buildUC(t, adminUser(t))

	login, err := uc.Login(dto.LoginRequest{Email: "admin", Password: "admin123"})
	require.NoError(t, err)

	out, err := uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	userID, _, err := pkgjwt.Parse(jwtCfg.Secret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "user-admin", userID)
}

func TestRefresh_TokenVencidoSeEliminaYRechaza(t *testing.T) {
	uc, _, tokens := buildUC(t, adminUser(t))
	tokens.tokens["viejo"] = entity.RefreshToken{
		ID: "rt-1", Token: "viejo", UserID: "user-admin",
		ExpiryDate: time.Now().Add(-time.Hour),
	}

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "viejo"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, ok := tokens.tokens["viejo"]
	assert.False(t, ok, "el token vencido se elimina")
}

func TestRefresh_TokenDesconocido(t *testing.T) {
	uc, _, _ := buildUC(t, adminUser(t))

	_, err := uc.Refresh(dto.RefreshRequest{RefreshToken: "inventado"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// Gestión de usuarios
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_EmpleadoConCategorias(t *testing.T) {
	uc, userRepo, _ := buildUC(t)

	out, err := uc.CreateUser(dto.CreateUserRequest{
		Name: "Ana", Email: "ana@tienda.com", Password: "secreta1",
		CategoryIDs: []string{"cat-1", "cat-2"},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.RoleEmployee, out.Role, "los usuarios creados por la API son siempre EMPLOYEE")
	assert.ElementsMatch(t, []string{"cat-1", "cat-2"}, out.CategoryIDs)

	stored, err := userRepo.GetByEmail("ana@tienda.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secreta1")),
		"la contraseña se guarda con hash bcrypt")
}

func TestCreateUser_CategoriaInexistente(t *testing.T) {
	uc, _, _ := buildUC(t)

	_, err := uc.CreateUser(dto.CreateUserRequest{
		Email: "ana@tienda.com", Password: "secreta1",
		CategoryIDs: []string{"cat-1", "no-existe"},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreateUser_EmailDuplicado(t *testing.T) {
	uc, _, _ := buildUC(t, adminUser(t))

	_, err := uc.CreateUser(dto.CreateUserRequest{Email: "admin", Password: "x1234567"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestDeleteUser_EliminaSusRefreshTokens(t *testing.T) {
	uc, userRepo, tokens := buildUC(t, adminUser(t))

	login, err := uc.Login(dto.LoginRequest{Email: "admin", Password: "admin123"})
	require.NoError(t, err)
	require.Len(t, tokens.tokens, 1)

	require.NoError(t, uc.DeleteUser("user-admin"))

	assert.Empty(t, tokens.tokens, "los refresh tokens del usuario caen con él")
	_, ok := userRepo.users["user-admin"]
	assert.False(t, ok)

	_, err = uc.Refresh(dto.RefreshRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ──────────────────────────────────────────────────────────────────────────────
// ActorFor / MyCategories
// ──────────────────────────────────────────────────────────────────────────────

func TestActorFor_ReflejaAsignacionActual(t *testing.T) {
	uc, userRepo, _ := buildUC(t, entity.User{
		ID: "user-1", Email: "ana@tienda.com", Role: entity.RoleEmployee,
		AllowedCategoryIDs: []string{"cat-1"},
	})

	actor, err := uc.ActorFor("user-1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleEmployee, actor.Role)
	assert.Equal(t, []string{"cat-1"}, actor.AllowedCategories)

	// El cambio de asignación aplica de inmediato, sin reemitir el token.
	require.NoError(t, userRepo.ReplaceAllowedCategories("user-1", []string{"cat-2"}))
	actor, err = uc.ActorFor("user-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat-2"}, actor.AllowedCategories)
}

func TestActorFor_UsuarioEliminado(t *testing.T) {
	uc, _, _ := buildUC(t)

	_, err := uc.ActorFor("fantasma")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestMyCategories_DevuelveLasAsignadas(t *testing.T) {
	uc, _, _ := buildUC(t, entity.User{
		ID: "user-1", Email: "ana@tienda.com", Role: entity.RoleEmployee,
		AllowedCategoryIDs: []string{"cat-2"},
	})

	out, err := uc.MyCategories("user-1")
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Pinturas", out[0].Name)
}

func TestMyCategories_SinAsignacionListaVacia(t *testing.T) {
	uc, _, _ := buildUC(t, entity.User{
		ID: "user-1", Email: "ana@tienda.com", Role: entity.RoleEmployee,
	})

	out, err := uc.MyCategories("user-1")
	require.NoError(t, err)
	assert.Empty(t, out)
}
