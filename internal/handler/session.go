package handler

import (
	"net/http"

	"dalarosa-be/internal/auth"
	"dalarosa-be/internal/user"
	"dalarosa-be/internal/utils"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := utils.DecodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	sess, err := h.backend.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	auth.SetAccessToken(w, sess.Token, sess.ExpiresAt, h.secure)
	utils.WriteJSON(w, http.StatusOK, sess)
}

// Logout always clears the cookie; listeners are only notified when the
// session was still valid.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if token := auth.ExtractAccessToken(r); token != "" {
		if u, err := h.backend.CurrentUser(ctx, token); err == nil {
			h.users.SignOut(ctx, u)
		}
	}

	auth.ClearAccessToken(w, h.secure)
	w.WriteHeader(http.StatusNoContent)
}

type adminHomeResponse struct {
	User     sessionUser `json:"user"`
	Sections []string    `json:"sections"`
}

type sessionUser struct {
	ID    string    `json:"id"`
	Email string    `json:"email"`
	Role  user.Role `json:"role"`
}

// AdminHome runs behind the admin gate, which already put the user in context.
func (h *Handler) AdminHome(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id, _ := utils.GetUserIDFromContext(ctx)

	utils.WriteJSON(w, http.StatusOK, adminHomeResponse{
		User: sessionUser{
			ID:    id,
			Email: utils.GetUserEmailFromContext(ctx),
			Role:  user.Role(utils.GetUserRoleFromContext(ctx)),
		},
		Sections: []string{"products", "orders"},
	})
}
