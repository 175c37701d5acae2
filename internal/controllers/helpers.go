package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var contactRe = regexp.MustCompile(`^\d{9}$`)

// validContact reports whether s is exactly 9 digits.
func validContact(s string) bool {
	return contactRe.MatchString(s)
}

// parseID parses the :id URL parameter, replying 400 on malformed input.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id format"})
		return uuid.Nil, false
	}
	return id, true
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// savePhoto stores the uploaded "foto" file under dir and returns the stored
// path. Requests without a photo (or without a multipart body) return "".
func savePhoto(c *gin.Context, dir string) (string, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		return "", nil
	}
	file, err := c.FormFile("foto")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return "", nil
		}
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	dst := filepath.Join(dir, fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", err
	}
	return dst, nil
}
