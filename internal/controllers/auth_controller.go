package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/apperr"
	"github.com/KelvenKs/SGTE/internal/middleware"
	"github.com/KelvenKs/SGTE/internal/models"
)

type AuthController struct {
	DB   *gorm.DB
	Auth *middleware.Auth
}

// Login exchanges email+password for a signed token. Unknown email and wrong
// password produce the same response so the existence of an account is never
// disclosed.
func (ac *AuthController) Login(c *gin.Context) {
	var body struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("email = ?", body.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not look up user", err))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(body.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := ac.Auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		apperr.JSON(c, apperr.Wrap(apperr.Storage, "could not generate token", err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":        token,
		"nivel_acesso": user.Role,
		"usuario":      user,
	})
}
