package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	EmployeeKey = "employee"
	TokenKey    = "token"

	unauthorizedMessage = "Não autorizado"
)

// TokenVerifier resolves a bearer token to the employee it was issued for.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*model.Employee, error)
}

// RequireAuth rejects the request with 401 unless it carries a valid,
// unrevoked bearer token of an existing employee.
func RequireAuth(v TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(unauthorizedMessage))
			return
		}

		emp, err := v.Verify(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New(unauthorizedMessage))
			return
		}

		c.Set(EmployeeKey, emp)
		c.Set(TokenKey, token)
		c.Next()
	}
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header.
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// CurrentEmployee returns the employee set by RequireAuth, nil on public routes.
func CurrentEmployee(c *gin.Context) *model.Employee {
	v, ok := c.Get(EmployeeKey)
	if !ok {
		return nil
	}
	emp, _ := v.(*model.Employee)
	return emp
}
