package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type FollowerController struct{ fc FollowerUseCase }

func NewFollowerController(fc FollowerUseCase) *FollowerController {
	return &FollowerController{fc: fc}
}

func (ctl *FollowerController) FollowUser(c *gin.Context) {
	var req struct {
		FollowingID string `json:"followingId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	userID, ok := principal(c)
	if !ok {
		return
	}
	res, err := ctl.fc.FollowUser(c.Request.Context(), userID, req.FollowingID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

func (ctl *FollowerController) GetFollowers(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	followers, err := ctl.fc.GetFollowers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, followers)
}

func (ctl *FollowerController) GetFollowing(c *gin.Context) {
	userID, ok := principal(c)
	if !ok {
		return
	}
	following, err := ctl.fc.GetFollowing(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, following)
}
