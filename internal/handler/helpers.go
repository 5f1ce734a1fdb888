package handler

import (
	"errors"
	"net/http"
	"reflect"
	"strconv"

	"github.com/GustavoGFG/omnisystem-backend-sql/internal/apierror"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/dto"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/service"
	"github.com/GustavoGFG/omnisystem-backend-sql/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// maxBulkRows caps the array bodies of the bulk endpoints.
const maxBulkRows = 1000

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validation.New()
	dto.RegisterValidations(v)
	return v
}

// bindAndValidate binds the JSON body into req and runs the validator tags.
// req may point to a struct or to a slice of structs (bulk endpoints).
// Returns false and writes the 400 envelope on failure; the caller should
// return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithDetails(apierror.InvalidData, gin.H{"body": err.Error()}))
		return false
	}

	var err error
	if rv := reflect.Indirect(reflect.ValueOf(req)); rv.Kind() == reflect.Slice {
		err = validate.Var(rv.Interface(), "required,min=1,max="+strconv.Itoa(maxBulkRows)+",dive")
	} else {
		err = validate.Struct(req)
	}
	if err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, apierror.NewValidation(validation.Fields(err)))
		} else {
			c.JSON(http.StatusBadRequest, apierror.New(apierror.InvalidData))
		}
		return false
	}
	return true
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, apierror.WithDetails(apierror.InvalidData, gin.H{name: "uint"}))
		return 0, false
	}
	return uint(id), true
}

// parseFilter reads employee_id, from and to from the query string.
func parseFilter(c *gin.Context) (dto.ListFilter, bool) {
	var q dto.RecordFilter
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithDetails(apierror.InvalidData, gin.H{"query": err.Error()}))
		return dto.ListFilter{}, false
	}
	f, err := q.Parse()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.WithDetails(apierror.InvalidData, gin.H{"query": err.Error()}))
		return dto.ListFilter{}, false
	}
	return f, true
}

// statusOf maps a service error kind to its HTTP status.
func statusOf(err error) int {
	switch service.KindOf(err) {
	case service.KindValidation, service.KindConflict, service.KindMissingReference, service.KindForbidden:
		return http.StatusBadRequest
	case service.KindNotFound:
		return http.StatusNotFound
	case service.KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the failure envelope for a service error.
func respondError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(statusOf(err), apierror.New(service.MessageOf(err)))
}

func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, apierror.OK(data))
}
