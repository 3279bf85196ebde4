package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"bean-scene-ordering/models"
	"bean-scene-ordering/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserController struct {
	store Store
}

func NewUserController(s Store) *UserController {
	return &UserController{store: s}
}

func (ctrl *UserController) GetUsers() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		users, err := ctrl.store.ListAll(ctx, store.Users)
		if err != nil {
			slog.Error("list users", "error", err)
			abortStoreError(c, "Failed to load staff", err)
			return
		}
		c.JSON(http.StatusOK, users)
	}
}

func (ctrl *UserController) CreateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid staff payload", err)
			return
		}
		if err := validate.Struct(&user); err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid staff payload", err)
			return
		}

		hashed, err := HashPassword(*user.Password)
		if err != nil {
			abortError(c, http.StatusInternalServerError, CodeStoreFailure, "Failed to add staff", err)
			return
		}

		fields := map[string]any{
			"email":    *user.Email,
			"password": hashed,
			"role":     *user.Role,
		}
		if user.Name != nil {
			fields["name"] = *user.Name
		}

		id, err := ctrl.store.AddOne(ctx, store.Users, fields)
		if err != nil {
			slog.Error("create user", "error", err)
			abortStoreError(c, "Failed to add staff", err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"msg": "Staff added successfully.", "id": id})
	}
}

func (ctrl *UserController) UpdateUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		userId := c.Param("user_id")
		updates, err := bindUpdates(c)
		if err != nil {
			abortError(c, http.StatusBadRequest, CodeValidation, "Invalid staff payload", err)
			return
		}
		if password, ok := updates["password"].(string); ok && password != "" {
			hashed, err := HashPassword(password)
			if err != nil {
				abortError(c, http.StatusInternalServerError, CodeStoreFailure, "Failed to update staff", err)
				return
			}
			updates["password"] = hashed
		}

		if err := ctrl.store.UpdateByID(ctx, store.Users, userId, updates); err != nil {
			slog.Error("update user", "user_id", userId, "error", err)
			abortStoreError(c, "Failed to update staff", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Staff updated successfully."})
	}
}

func (ctrl *UserController) DeleteUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		userId := c.Param("user_id")
		if err := ctrl.store.DeleteByID(ctx, store.Users, userId); err != nil {
			slog.Error("delete user", "user_id", userId, "error", err)
			abortStoreError(c, "Failed to delete staff", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Staff deleted successfully."})
	}
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
