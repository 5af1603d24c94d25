package handler

import (
	"encoding/json"
	"net/http"

	"patients-care-api/internal/delivery/dto"
	"patients-care-api/internal/delivery/http/middleware"
	"patients-care-api/internal/domain/entity"
	"patients-care-api/internal/usecase"
	"patients-care-api/pkg/response"
	"patients-care-api/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
	responder   *response.Responder
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator, responder *response.Responder) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		responder:   responder,
	}
}

// Register handles account registration
// @Summary Register a doctor or patient
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.MessageResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.register(w, r, "")
}

// RegisterAs serves the role-specific registration aliases
func (h *AuthHandler) RegisterAs(role entity.Role) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h.register(w, r, role)
	}
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request, role entity.Role) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.Error(w, r, errBadObjectStructure)
		return
	}
	if role != "" {
		req.Role = string(role)
	}

	if err := h.validator.Validate(&req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.authUsecase.Register(r.Context(), &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusCreated, msgUserCreated)
}

// Login handles user login
// @Summary Login user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} response.MessageResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.LoginResponse{
		Message:      h.responder.Translate(r, msgUserLogin),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
}

// RefreshToken issues a new access token
// @Summary Refresh access token
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh Token Request"
// @Success 200 {object} dto.AccessTokenResponse
// @Failure 406 {object} response.MessageResponse
// @Router /auth/refreshToken [post]
func (h *AuthHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.Error(w, r, errBadObjectStructure)
		return
	}

	accessToken, err := h.authUsecase.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, dto.AccessTokenResponse{AccessToken: accessToken})
}

// Logout revokes the current access token and an optional refresh token
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	tokenID, _ := middleware.GetTokenIDFromContext(r.Context())

	// Body is optional
	var req dto.LogoutRequest
	json.NewDecoder(r.Body).Decode(&req)

	if err := h.authUsecase.Logout(r.Context(), identity, tokenID, req.RefreshToken); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgUserLogout)
}

func (h *AuthHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	account, err := h.authUsecase.GetCurrentUser(r.Context(), identity)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	response.JSON(w, http.StatusOK, account)
}

func (h *AuthHandler) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.UpdateAccountRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.authUsecase.UpdateCurrentUser(r.Context(), identity, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgUserUpdated)
}

func (h *AuthHandler) DeleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.authUsecase.DeleteCurrentUser(r.Context(), identity); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgUserDeleted)
}

func (h *AuthHandler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	var req dto.UpdatePasswordRequest
	if err := decodeJSON(r, h.validator, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.authUsecase.UpdatePassword(r.Context(), identity, &req); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgUserUpdated)
}

func (h *AuthHandler) UploadPhoto(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	file, err := photoFile(w, r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}
	defer file.Close()

	if err := h.authUsecase.UploadPhoto(r.Context(), identity, file); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgPhotoUpdated)
}

func (h *AuthHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	identity, err := identityFrom(r)
	if err != nil {
		h.responder.Error(w, r, err)
		return
	}

	if err := h.authUsecase.RemovePhoto(r.Context(), identity); err != nil {
		h.responder.Error(w, r, err)
		return
	}

	h.responder.Message(w, r, http.StatusOK, msgPhotoRemoved)
}
