package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"socialfeed/internal/core/follower"
	"socialfeed/internal/core/post"
	"socialfeed/internal/core/user"
)

// respondError maps the core error taxonomy onto HTTP statuses: conflicts to
// 409, not-found to 404, validation to 400, auth to 401, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, post.ErrAlreadyLiked),
		errors.Is(err, follower.ErrAlreadyFollowing),
		errors.Is(err, user.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, post.ErrNotFound),
		errors.Is(err, user.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, post.ErrEmptyContent),
		errors.Is(err, follower.ErrSelfFollow),
		errors.Is(err, user.ErrInvalidEmail),
		errors.Is(err, user.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// principal reads the authenticated user id the JWT middleware stored.
func principal(c *gin.Context) (string, bool) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found in context"})
		return "", false
	}
	return userID.(string), true
}
