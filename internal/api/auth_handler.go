package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/todo-api/internal/api/shared"
	"github.com/phrazzld/todo-api/internal/domain"
	"github.com/phrazzld/todo-api/internal/platform/logger"
	"github.com/phrazzld/todo-api/internal/service/auth"
	"github.com/phrazzld/todo-api/internal/store"
)

// AuthHandler serves the sign-up and sign-in endpoints.
type AuthHandler struct {
	signUp     *auth.SignUp
	signIn     *auth.SignIn
	jwtService auth.JWTService
	logger     *slog.Logger
}

// NewAuthHandler wires the auth use cases to their stores.
func NewAuthHandler(
	db store.TxBeginner,
	users store.UserStore,
	identities store.IdentityStore,
	jwtService auth.JWTService,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		signUp:     auth.NewSignUp(db, users, identities, logger),
		signIn:     auth.NewSignIn(users, identities, logger),
		jwtService: jwtService,
		logger:     logger.With(slog.String("component", "auth_handler")),
	}
}

// SignUp handles POST /api/auth/signup.
func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	name, err := domain.NewName(req.FirstName, req.LastName)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.signUp.Execute(r.Context(), auth.SignUpInput{Email: email, Password: password, Name: name})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusCreated, result)
}

// SignIn handles POST /api/auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	email, err := domain.NewEmail(req.Email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	password, err := domain.NewPassword(req.Password)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	result, err := h.signIn.Execute(r.Context(), auth.SignInInput{Email: email, Password: password})
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	h.respondWithToken(w, r, http.StatusOK, result)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, r *http.Request, status int, result *auth.Result) {
	token, err := h.jwtService.GenerateToken(r.Context(), result.UserID, result.Email)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).Error("failed to generate token",
			slog.String("user_id", result.UserID.String()))
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, status, AuthResponse{
		UserID:      result.UserID.String(),
		Email:       result.Email.String(),
		AccessToken: token.AccessToken,
		ExpiresAt:   token.ExpiresAt.UTC(),
	})
}
