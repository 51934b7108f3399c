package user

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"vidtube/internal/common"
	"vidtube/internal/media"
	"vidtube/internal/middleware"
)

const RefreshTokenCookie = "refreshToken"

// CookieConfig controls the auth cookies set on login and refresh.
type CookieConfig struct {
	Secure     bool
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Handler wires HTTP -> UserService.
type Handler struct {
	userService UserService
	spooler     *media.Spooler
	maxUpload   int64
	cookies     CookieConfig
}

func NewHandler(userService UserService, spooler *media.Spooler, maxUpload int64, cookies CookieConfig) *Handler {
	return &Handler{
		userService: userService,
		spooler:     spooler,
		maxUpload:   maxUpload,
		cookies:     cookies,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router, protect func(http.HandlerFunc) http.Handler) {
	users := r.PathPrefix("/users").Subrouter()

	users.HandleFunc("/register", h.Register).Methods(http.MethodPost)
	users.HandleFunc("/login", h.Login).Methods(http.MethodPost)
	users.HandleFunc("/refresh-token", h.RefreshToken).Methods(http.MethodPost)

	users.Handle("/logout", protect(h.Logout)).Methods(http.MethodPost)
	users.Handle("/change-password", protect(h.ChangePassword)).Methods(http.MethodPost)
	users.Handle("/current-user", protect(h.CurrentUser)).Methods(http.MethodGet)
	users.Handle("/update-account", protect(h.UpdateAccount)).Methods(http.MethodPatch)
	users.Handle("/avatar", protect(h.UpdateAvatar)).Methods(http.MethodPatch)
	users.Handle("/cover-image", protect(h.UpdateCoverImage)).Methods(http.MethodPatch)
	users.Handle("/c/{username}", protect(h.ChannelProfile)).Methods(http.MethodGet)
	users.Handle("/history", protect(h.WatchHistory)).Methods(http.MethodGet)
}

type loginRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8,max=100"`
}

type updateAccountRequest struct {
	Fullname string `json:"fullname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
}

type loginResponse struct {
	User any `json:"user"`
	Tokens
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	if err := media.ParseForm(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}

	avatar, err := h.spooler.SpoolFormFile(r, "avatar", true)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer media.Discard(r.Context(), avatar)

	cover, err := h.spooler.SpoolFormFile(r, "coverImage", false)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer media.Discard(r.Context(), cover)

	user, err := h.userService.Register(r.Context(), RegisterInput{
		Username:   r.FormValue("username"),
		Fullname:   r.FormValue("fullname"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusCreated, user, "User registered successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, tokens, err := h.userService.Login(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	h.setAuthCookies(w, tokens)
	common.WriteJSON(w, http.StatusOK, loginResponse{User: user, Tokens: *tokens}, "User logged in successfully")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	if err := h.userService.Logout(r.Context(), userID, common.AccessTokenFromContext(r.Context())); err != nil {
		common.WriteError(w, r, err)
		return
	}

	h.clearAuthCookies(w)
	common.WriteJSON(w, http.StatusOK, struct{}{}, "User logged out")
}

func (h *Handler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	token := ""
	if c, err := r.Cookie(RefreshTokenCookie); err == nil {
		token = c.Value
	}
	if token == "" && r.ContentLength != 0 {
		var req refreshRequest
		if err := common.DecodeJSON(r, &req); err != nil {
			common.WriteError(w, r, err)
			return
		}
		token = req.RefreshToken
	}

	tokens, err := h.userService.RefreshTokens(r.Context(), token)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}

	h.setAuthCookies(w, tokens)
	common.WriteJSON(w, http.StatusOK, tokens, "Access token refreshed")
}

func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	var req changePasswordRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	if err := h.userService.ChangePassword(r.Context(), userID, req.OldPassword, req.NewPassword); err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, struct{}{}, "Password changed successfully")
}

func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	user, err := h.userService.CurrentUser(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, "Current user fetched successfully")
}

func (h *Handler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	var req updateAccountRequest
	if err := common.DecodeJSON(r, &req); err != nil {
		common.WriteError(w, r, err)
		return
	}

	user, err := h.userService.UpdateAccount(r.Context(), userID, req.Fullname, req.Email)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, "Account details updated successfully")
}

func (h *Handler) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, AvatarField, "Avatar updated successfully")
}

func (h *Handler) UpdateCoverImage(w http.ResponseWriter, r *http.Request) {
	h.updateImage(w, r, CoverImageField, "Cover image updated successfully")
}

func (h *Handler) updateImage(w http.ResponseWriter, r *http.Request, field ImageField, message string) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}
	if err := media.ParseForm(w, r, h.maxUpload); err != nil {
		common.WriteError(w, r, err)
		return
	}

	file, err := h.spooler.SpoolFormFile(r, string(field), true)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	defer media.Discard(r.Context(), file)

	user, err := h.userService.UpdateImage(r.Context(), userID, field, file)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, user, message)
}

func (h *Handler) ChannelProfile(w http.ResponseWriter, r *http.Request) {
	viewer, _ := common.UserIDFromContext(r.Context())

	profile, err := h.userService.ChannelProfile(r.Context(), mux.Vars(r)["username"], viewer)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, profile, "User channel fetched successfully")
}

func (h *Handler) WatchHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, r, common.ErrUnauthorized("Unauthorized request"))
		return
	}

	history, err := h.userService.WatchHistory(r.Context(), userID)
	if err != nil {
		common.WriteError(w, r, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, history, "Watch history fetched successfully")
}

func (h *Handler) setAuthCookies(w http.ResponseWriter, tokens *Tokens) {
	http.SetCookie(w, h.cookie(middleware.AccessTokenCookie, tokens.AccessToken, h.cookies.AccessTTL))
	http.SetCookie(w, h.cookie(RefreshTokenCookie, tokens.RefreshToken, h.cookies.RefreshTTL))
}

func (h *Handler) clearAuthCookies(w http.ResponseWriter) {
	http.SetCookie(w, h.cookie(middleware.AccessTokenCookie, "", -1))
	http.SetCookie(w, h.cookie(RefreshTokenCookie, "", -1))
}

func (h *Handler) cookie(name, value string, ttl time.Duration) *http.Cookie {
	maxAge := int(ttl.Seconds())
	if ttl < 0 {
		maxAge = -1
	}
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.cookies.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}
