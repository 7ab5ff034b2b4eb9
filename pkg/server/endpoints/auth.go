package endpoints

import (
	"encoding/json"
	"errors"
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"github.com/sivamani2003/accesshub/pkg/audit"
	"github.com/sivamani2003/accesshub/pkg/model"
	"github.com/sivamani2003/accesshub/pkg/server"
	"github.com/sivamani2003/accesshub/pkg/server/store"
	"github.com/sivamani2003/accesshub/pkg/token"
)

// invalidCredentialsMessage is identical for unknown usernames and wrong
// passwords so login failures cannot be used to enumerate accounts.
const invalidCredentialsMessage = "invalid username or password"

// dummyHash is compared against when the username does not resolve, keeping
// the failure paths close in timing.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("accesshub-dummy-password"), bcrypt.DefaultCost)

// RegisterRequest is the body of POST /auth/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// RegisterResponse is the body of a successful registration
type RegisterResponse struct {
	Message string        `json:"message"`
	User    *UserResponse `json:"user"`
}

// LoginRequest is the body of POST /auth/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body of a successful login
type LoginResponse struct {
	Message string        `json:"message"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
}

// RegisterAuthEndpoints registers the unauthenticated /auth endpoints
func RegisterAuthEndpoints(s *server.Server) {
	router := s.Router

	router.HandleFunc("/auth/register", handleRegister(s.UsersStore)).Methods("POST")
	router.HandleFunc("/auth/login", handleLogin(s.UsersStore, s.Signer)).Methods("POST")
}

func handleRegister(usersStore store.UsersStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.Username == "" || req.Password == "" {
			respondWithMessage(w, http.StatusBadRequest, "username and password are required")
			return
		}

		role := model.RoleEmployee
		if req.Role != "" {
			if !model.ValidRole(req.Role) {
				respondWithMessage(w, http.StatusBadRequest, "invalid role, must be Employee, Manager, or Admin")
				return
			}
			role = model.Role(req.Role)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "error registering user")
			return
		}

		user, err := usersStore.CreateUser(store.NewUser{
			Username:     req.Username,
			PasswordHash: string(hash),
			Role:         role,
		})
		if err != nil {
			if errors.Is(err, store.ErrUsernameTaken) {
				respondWithMessage(w, http.StatusConflict, "username already exists")
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "error registering user")
			return
		}

		audit.Log(audit.RegisterEvent{
			Username: user.Username,
			Role:     string(user.Role),
			ClientIP: clientIP(r),
		})

		respondWithJSON(w, http.StatusCreated, RegisterResponse{
			Message: "user registered successfully",
			User:    userResponse(user),
		})
	}
}

func handleLogin(usersStore store.UsersStore, signer *token.Signer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondWithMessage(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
		defer func() { _ = r.Body.Close() }()

		if req.Username == "" || req.Password == "" {
			respondWithMessage(w, http.StatusBadRequest, "username and password are required")
			return
		}

		user, err := usersStore.FindByUsername(req.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(req.Password))
				audit.Log(audit.LoginEvent{
					Username:     req.Username,
					ClientIP:     clientIP(r),
					ErrorMessage: "unknown username",
				})
				respondWithMessage(w, http.StatusUnauthorized, invalidCredentialsMessage)
				return
			}
			respondWithMessage(w, http.StatusInternalServerError, "error logging in")
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
			audit.Log(audit.LoginEvent{
				Username:     req.Username,
				ClientIP:     clientIP(r),
				ErrorMessage: "bad password",
			})
			respondWithMessage(w, http.StatusUnauthorized, invalidCredentialsMessage)
			return
		}

		tokenString, err := signer.Issue(user)
		if err != nil {
			respondWithMessage(w, http.StatusInternalServerError, "error logging in")
			return
		}

		audit.Log(audit.LoginEvent{
			Username: user.Username,
			ClientIP: clientIP(r),
			Success:  true,
		})

		respondWithJSON(w, http.StatusOK, LoginResponse{
			Message: "login successful",
			Token:   tokenString,
			User:    userResponse(user),
		})
	}
}
