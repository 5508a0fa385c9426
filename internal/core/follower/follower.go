package follower

import (
	"errors"
	"time"

	"github.com/gofrs/uuid"

	"socialfeed/internal/core/user"
)

var (
	ErrAlreadyFollowing = errors.New("you are already following this user")
	ErrSelfFollow       = errors.New("cannot follow yourself")
)

// Follower records that FollowerID follows FollowingID. The composite unique
// index keeps the ordered pair unique at the store level.
type Follower struct {
	ID          uuid.UUID  `gorm:"primary_key;type:char(36)"`
	FollowingID uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_following_follower"`
	Following   *user.User `gorm:"foreignkey:FollowingID"`
	FollowerID  uuid.UUID  `gorm:"type:char(36);not null;uniqueIndex:idx_following_follower"`
	Follower    *user.User `gorm:"foreignkey:FollowerID"`
	CreatedAt   time.Time  `gorm:"autoCreateTime"`
	UpdatedAt   time.Time  `gorm:"autoUpdateTime"`
}
