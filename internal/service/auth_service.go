package service

import (
	"context"
	"time"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/repository"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/security"

	"github.com/rs/zerolog/log"
)

// revokeForever bounds the revocation entry of a token issued without expiry.
const revokeForever = 10 * 365 * 24 * time.Hour

// RevocationStore remembers logged-out token ids until they expire.
type RevocationStore interface {
	Revoke(ctx context.Context, jti string, until time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

type AuthService interface {
	Signup(ctx context.Context, req dto.CredentialsRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req dto.CredentialsRequest) (*dto.TokenResponse, error)
	Verify(ctx context.Context, token string) (*model.Employee, error)
	Logout(ctx context.Context, token string) error
}

type authService struct {
	repo       repository.EmployeeRepository
	tokens     *security.TokenIssuer
	revoked    RevocationStore
	bcryptCost int
}

func NewAuthService(
	repo repository.EmployeeRepository,
	tokens *security.TokenIssuer,
	revoked RevocationStore,
	bcryptCost int,
) AuthService {
	return &authService{repo: repo, tokens: tokens, revoked: revoked, bcryptCost: bcryptCost}
}

// Signup sets the first password of an administrative employee and logs
// them in.
func (s *authService) Signup(ctx context.Context, req dto.CredentialsRequest) (*dto.SignupResponse, error) {
	emp, err := s.repo.FindByCPF(ctx, req.CPF.String())
	if err != nil {
		return nil, readError("auth.signup", err, msgAuthNoEmployee)
	}
	if emp.Role == model.RoleCashier {
		return nil, newError(KindForbidden, msgAuthCashier, nil)
	}

	_, err = s.repo.FindPassword(ctx, emp.ID)
	if err == nil {
		return nil, newError(KindConflict, msgAuthHasPassword, nil)
	}
	if classifyStoreError(err) != storeNotFound {
		return nil, internal("auth.signup", err)
	}

	hash, err := security.HashPassword(req.Password, s.bcryptCost)
	if err != nil {
		return nil, internal("auth.signup", err)
	}
	pw := &model.EmployeePassword{EmployeeID: emp.ID, PasswordHash: hash}
	if err := s.repo.CreatePassword(ctx, pw); err != nil {
		// Two concurrent signups race on the unique employee_id index.
		if classifyStoreError(err) == storeUnique {
			return nil, newError(KindConflict, msgAuthHasPassword, err)
		}
		return nil, internal("auth.signup", err)
	}

	tok, err := s.issue(emp.CPF)
	if err != nil {
		return nil, err
	}
	log.Info().Uint("employee_id", emp.ID).Msg("password registered")
	return &dto.SignupResponse{Employee: mapEmployee(*emp), TokenResponse: *tok}, nil
}

func (s *authService) Login(ctx context.Context, req dto.CredentialsRequest) (*dto.TokenResponse, error) {
	emp, err := s.repo.FindByCPF(ctx, req.CPF.String())
	if err != nil {
		return nil, readError("auth.login", err, msgAuthNoEmployee)
	}
	pw, err := s.repo.FindPassword(ctx, emp.ID)
	if err != nil {
		return nil, readError("auth.login", err, msgAuthNoPassword)
	}

	ok, err := security.CheckPassword(pw.PasswordHash, req.Password)
	if err != nil {
		return nil, internal("auth.login", err)
	}
	if !ok {
		return nil, newError(KindUnauthorized, msgAuthBadPassword, nil)
	}
	return s.issue(emp.CPF)
}

// Verify is the single check behind the bearer gate: signature and expiry,
// revocation, then the employee the token names.
func (s *authService) Verify(ctx context.Context, token string) (*model.Employee, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, newError(KindUnauthorized, msgAuthUnauthorized, err)
	}

	revoked, err := s.revoked.IsRevoked(ctx, claims.ID)
	if err != nil {
		log.Error().Err(err).Msg("revocation lookup failed")
		return nil, newError(KindUnauthorized, msgAuthUnauthorized, err)
	}
	if revoked {
		return nil, newError(KindUnauthorized, msgAuthUnauthorized, nil)
	}

	emp, err := s.repo.FindByCPF(ctx, claims.CPF)
	if err != nil {
		return nil, newError(KindUnauthorized, msgAuthUnauthorized, err)
	}
	return emp, nil
}

// Logout revokes the token until it would have expired.
func (s *authService) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return newError(KindUnauthorized, msgAuthUnauthorized, err)
	}

	until := time.Now().Add(revokeForever)
	if claims.ExpiresAt != nil {
		until = claims.ExpiresAt.Time
	}
	if err := s.revoked.Revoke(ctx, claims.ID, until); err != nil {
		return internal("auth.logout", err)
	}
	return nil
}

func (s *authService) issue(cpf string) (*dto.TokenResponse, error) {
	signed, claims, err := s.tokens.Issue(cpf)
	if err != nil {
		return nil, internal("auth.issue", err)
	}
	resp := &dto.TokenResponse{Token: signed, TokenType: "bearer"}
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		resp.ExpiresAt = &exp
	}
	return resp, nil
}
