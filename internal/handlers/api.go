package handlers

import (
	"encoding/json"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/edulane/tutorhub/internal/repository"
)

// API bundles the handler dependencies: repositories, logger and the
// request validator. Everything is injected; handlers hold no globals.
type API struct {
	Repos    *repository.Repositories
	Log      *zap.Logger
	validate *validator.Validate
}

func New(repos *repository.Repositories, log *zap.Logger) *API {
	v := validator.New()
	// Report json field names in validation errors, not Go struct names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &API{Repos: repos, Log: log, validate: v}
}

func (a *API) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		a.Log.Error("encode response", zap.Error(err))
	}
}

func (a *API) writeError(w http.ResponseWriter, status int, msg string) {
	a.writeJSON(w, status, map[string]string{"error": msg})
}

// serverError logs the underlying cause and hides it from the client.
func (a *API) serverError(w http.ResponseWriter, err error) {
	a.Log.Error("request failed", zap.Error(err))
	a.writeError(w, http.StatusInternalServerError, "internal error")
}

// checkRequest validates a decoded request body and returns a
// client-facing message for the first failing field.
func (a *API) checkRequest(v any) (string, bool) {
	err := a.validate.Struct(v)
	if err == nil {
		return "", true
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		fe := errs[0]
		if fe.Tag() == "required" {
			return fe.Field() + " is required", false
		}
		return "invalid " + fe.Field(), false
	}
	return "invalid request", false
}

func decodeJSON(r *http.Request, v any) error {
	return json.NewDecoder(r.Body).Decode(v)
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
