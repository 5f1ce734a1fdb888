package service

import (
	"context"
	"testing"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/infra"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ── In-memory Repository Stub ─────────────────────────────────────────────────

type stubEmployeeRepo struct {
	employees map[string]*model.Employee
	passwords map[uint]*model.EmployeePassword
	nextID    uint
}

func newStubRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{
		employees: make(map[string]*model.Employee),
		passwords: make(map[uint]*model.EmployeePassword),
	}
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]model.Employee, error) {
	out := make([]model.Employee, 0, len(r.employees))
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id uint) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *stubEmployeeRepo) FindByCPF(_ context.Context, cpf string) (*model.Employee, error) {
	e, ok := r.employees[cpf]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *model.Employee) error {
	if _, ok := r.employees[e.CPF]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.nextID++
	e.ID = r.nextID
	r.employees[e.CPF] = e
	return nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, _ uint, _ map[string]interface{}) error {
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, _ uint) error { return nil }

func (r *stubEmployeeRepo) FindPassword(_ context.Context, employeeID uint) (*model.EmployeePassword, error) {
	p, ok := r.passwords[employeeID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return p, nil
}

func (r *stubEmployeeRepo) CreatePassword(_ context.Context, p *model.EmployeePassword) error {
	if _, ok := r.passwords[p.EmployeeID]; ok {
		return gorm.ErrDuplicatedKey
	}
	r.passwords[p.EmployeeID] = p
	return nil
}

// ── Helpers ───────────────────────────────────────────────────────────────────

const testSecret = "test_jwt_secret_32_chars_minimum!"

func seedEmployee(t *testing.T, repo *stubEmployeeRepo, cpf, role string) *model.Employee {
	t.Helper()
	e := &model.Employee{FullName: "Maria Silva", CPF: cpf, HireDate: time.Now(), Role: role}
	require.NoError(t, repo.Create(context.Background(), e))
	return e
}

func newTestAuth(repo *stubEmployeeRepo) (AuthService, *security.TokenIssuer) {
	tokens := security.NewTokenIssuer(testSecret, time.Hour)
	return NewAuthService(repo, tokens, infra.NewMemoryRevocationStore(), bcrypt.MinCost), tokens
}

func creds(cpf, password string) dto.CredentialsRequest {
	return dto.CredentialsRequest{CPF: dto.CPF(cpf), Password: password}
}

// ── Tests: Signup ─────────────────────────────────────────────────────────────

func TestSignup_Success(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, tokens := newTestAuth(repo)

	resp, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	require.NoError(t, err)
	assert.Equal(t, "12345678901", resp.Employee.CPF)
	assert.Equal(t, "bearer", resp.TokenType)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "12345678901", claims.CPF)
}

func TestSignup_UnknownEmployee(t *testing.T) {
	svc, _ := newTestAuth(newStubRepo())

	_, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Funcionário não encontrado", MessageOf(err))
}

func TestSignup_CashierForbidden(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleCashier)
	svc, _ := newTestAuth(repo)

	_, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	assert.Equal(t, KindForbidden, KindOf(err))
	assert.Equal(t, "Cargo não administrativo", MessageOf(err))
	assert.Empty(t, repo.passwords)
}

func TestSignup_Twice(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleCoordinator)
	svc, _ := newTestAuth(repo)

	_, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), creds("12345678901", "Other12#x"))
	assert.Equal(t, KindConflict, KindOf(err))
	assert.Equal(t, "Funcionário já possui senha", MessageOf(err))
}

func TestSignup_StoresHashNotPassword(t *testing.T) {
	repo := newStubRepo()
	emp := seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, _ := newTestAuth(repo)

	_, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	require.NoError(t, err)

	stored := repo.passwords[emp.ID].PasswordHash
	assert.NotEqual(t, "Abcdef1!", stored)
	ok, err := security.CheckPassword(stored, "Abcdef1!")
	require.NoError(t, err)
	assert.True(t, ok)
}

// ── Tests: Login ──────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, tokens := newTestAuth(repo)
	_, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), creds("12345678901", "Abcdef1!"))
	require.NoError(t, err)
	require.NotNil(t, resp.ExpiresAt)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "12345678901", claims.CPF)
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, _ := newTestAuth(repo)
	_, err := svc.Signup(context.Background(), creds("12345678901", "Abcdef1!"))
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), creds("12345678901", "Abcdef1?"))
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Dados inválidos", MessageOf(err))
}

func TestLogin_NoPassword(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, _ := newTestAuth(repo)

	_, err := svc.Login(context.Background(), creds("12345678901", "Abcdef1!"))
	assert.Equal(t, KindNotFound, KindOf(err))
	assert.Equal(t, "Senha não cadastrada", MessageOf(err))
}

func TestLogin_UnknownEmployee(t *testing.T) {
	svc, _ := newTestAuth(newStubRepo())

	_, err := svc.Login(context.Background(), creds("12345678901", "Abcdef1!"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

// ── Tests: Verify / Logout ────────────────────────────────────────────────────

func TestVerify(t *testing.T) {
	repo := newStubRepo()
	emp := seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, tokens := newTestAuth(repo)

	signed, _, err := tokens.Issue("12345678901")
	require.NoError(t, err)

	got, err := svc.Verify(context.Background(), signed)
	require.NoError(t, err)
	assert.Equal(t, emp.ID, got.ID)

	_, err = svc.Verify(context.Background(), "garbage")
	assert.Equal(t, KindUnauthorized, KindOf(err))
	assert.Equal(t, "Não autorizado", MessageOf(err))
}

func TestVerify_EmployeeGone(t *testing.T) {
	svc, tokens := newTestAuth(newStubRepo())

	signed, _, err := tokens.Issue("99999999999")
	require.NoError(t, err)

	_, err = svc.Verify(context.Background(), signed)
	assert.Equal(t, KindUnauthorized, KindOf(err))
}

func TestLogout_RevokesToken(t *testing.T) {
	repo := newStubRepo()
	seedEmployee(t, repo, "12345678901", model.RoleManager)
	svc, tokens := newTestAuth(repo)

	signed, _, err := tokens.Issue("12345678901")
	require.NoError(t, err)
	other, _, err := tokens.Issue("12345678901")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), signed))

	_, err = svc.Verify(context.Background(), signed)
	assert.Equal(t, KindUnauthorized, KindOf(err))

	_, err = svc.Verify(context.Background(), other)
	assert.NoError(t, err, "other sessions stay valid")
}
