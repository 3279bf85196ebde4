package controllers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bean-scene-ordering/helpers"
	"bean-scene-ordering/models"
	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	store  Store
	tokens *helpers.TokenService
}

func NewAuthController(s Store, tokens *helpers.TokenService) *AuthController {
	return &AuthController{store: s, tokens: tokens}
}

// Login verifies staff credentials and issues access and refresh tokens.
// The tokens are also persisted on the user document so an operator can
// see the last issued pair.
func (ctrl *AuthController) Login() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid login payload", err)
			return
		}
		if err := validate.Struct(&req); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid login payload", err)
			return
		}

		user, err := ctrl.store.FindOne(ctx, store.Users, "email", *req.Email)
		if errors.Is(err, store.ErrNotFound) {
			abortError(c, http.StatusUnauthorized, CodeUnauthorized, "Email or password is incorrect", nil)
			return
		}
		if err != nil {
			slog.Error("login lookup", "error", err)
			abortStoreError(c, "Failed to log in", err)
			return
		}

		hash, _ := user["password"].(string)
		if !VerifyPassword(*req.Password, hash) {
			abortError(c, http.StatusUnauthorized, CodeUnauthorized, "Email or password is incorrect", nil)
			return
		}

		id, _ := user["id"].(string)
		name, _ := user["name"].(string)
		role, _ := user["role"].(string)
		token, refreshToken, err := ctrl.tokens.GenerateAllTokens(*req.Email, name, id, role)
		if err != nil {
			abortError(c, http.StatusInternalServerError, CodeStoreFailure, "Failed to log in", err)
			return
		}

		if err := ctrl.store.UpdateByID(ctx, store.Users, id, map[string]any{
			"token":        token,
			"refreshToken": refreshToken,
		}); err != nil {
			slog.Error("persist tokens", "user_id", id, "error", err)
		}

		delete(user, "password")
		c.JSON(http.StatusOK, gin.H{
			"token":        token,
			"refreshToken": refreshToken,
			"user":         user,
		})
	}
}

// Me echoes the authenticated identity; it sits behind the token
// middleware.
func (ctrl *AuthController) Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"email": c.GetString("email"),
			"name":  c.GetString("name"),
			"uid":   c.GetString("uid"),
			"role":  c.GetString("role"),
		})
	}
}
