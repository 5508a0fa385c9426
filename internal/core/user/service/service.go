package userapp

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	userEntity "socialfeed/internal/core/user"
	followerPort "socialfeed/internal/ports/follower"
	postPort "socialfeed/internal/ports/post"
	userPort "socialfeed/internal/ports/user"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// UserService handles registration, login and profile reads. Token
// verification itself lives in the transport middleware; this service only
// issues tokens.
type UserService struct {
	UserRepository     userPort.UserRepository
	PostRepository     postPort.PostRepository
	FollowerRepository followerPort.FollowerRepository
	Logger             *zap.Logger
	jwtKey             []byte
}

func NewUserService(
	userRepo userPort.UserRepository,
	postRepo postPort.PostRepository,
	followerRepo followerPort.FollowerRepository,
	logger *zap.Logger,
	jwtKey []byte,
) *UserService {
	return &UserService{
		UserRepository:     userRepo,
		PostRepository:     postRepo,
		FollowerRepository: followerRepo,
		Logger:             logger,
		jwtKey:             jwtKey,
	}
}

// RegisterUser validates and stores a new user with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, name, username, email, password string) (*userPort.UserDTO, error) {
	if !emailPattern.MatchString(email) {
		return nil, userEntity.ErrInvalidEmail
	}
	if len(password) < 5 {
		return nil, userEntity.ErrPasswordTooShort
	}

	existing, err := s.UserRepository.FindByUsernameOrEmail(ctx, username, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, userEntity.ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Name:     name,
		Username: username,
		Email:    email,
		Password: string(hashed),
	}
	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	s.Logger.Info("user registered", zap.String("userID", created.ID.String()))

	return toUserDTO(created), nil
}

// LoginUser verifies the credentials and issues a signed JWT.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, userEntity.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, userEntity.ErrInvalidCredentials
	}

	token, err := s.generateJWT(u)
	if err != nil {
		s.Logger.Error("could not generate token", zap.Error(err))
		return nil, err
	}
	return &userPort.LoginResponse{
		Token:  token,
		UserID: u.ID.String(),
	}, nil
}

func (s *UserService) generateJWT(u *userEntity.User) (string, error) {
	claims := &jwt.StandardClaims{
		Subject:   u.ID.String(),
		Issuer:    "socialfeed",
		ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}

// Users lists every user without password material.
func (s *UserService) Users(ctx context.Context) ([]*userPort.UserDTO, error) {
	users, err := s.UserRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}
	return dtos, nil
}

// SearchUser does a case-insensitive name/username search. An empty term
// returns an empty result rather than an error.
func (s *UserService) SearchUser(ctx context.Context, term string) ([]*userPort.UserDTO, error) {
	if strings.TrimSpace(term) == "" {
		return []*userPort.UserDTO{}, nil
	}
	users, err := s.UserRepository.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	dtos := make([]*userPort.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, toUserDTO(u))
	}
	return dtos, nil
}

// GetUserByID returns the joined profile: the user plus resolved followers,
// following and authored posts.
func (s *UserService) GetUserByID(ctx context.Context, userID string) (*userPort.UserDetailDTO, error) {
	u, err := s.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	followers, err := s.FollowerRepository.GetFollowers(ctx, userID)
	if err != nil {
		return nil, err
	}
	following, err := s.FollowerRepository.GetFollowing(ctx, userID)
	if err != nil {
		return nil, err
	}
	posts, err := s.PostRepository.FindByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}

	detail := &userPort.UserDetailDTO{
		UserDTO:   *toUserDTO(u),
		Followers: make([]*userPort.UserDTO, 0, len(followers)),
		Following: make([]*userPort.UserDTO, 0, len(following)),
		Posts:     make([]*userPort.UserPostDTO, 0, len(posts)),
	}
	for _, f := range followers {
		detail.Followers = append(detail.Followers, toUserDTO(f))
	}
	for _, f := range following {
		detail.Following = append(detail.Following, toUserDTO(f))
	}
	for _, p := range posts {
		detail.Posts = append(detail.Posts, &userPort.UserPostDTO{
			ID:        p.ID.String(),
			Content:   p.Content,
			ImgURL:    p.ImgURL,
			AuthorID:  p.AuthorID.String(),
			CreatedAt: p.CreatedAt.UTC().Format(time.RFC3339),
			UpdatedAt: p.UpdatedAt.UTC().Format(time.RFC3339),
		})
	}
	return detail, nil
}

func toUserDTO(u *userEntity.User) *userPort.UserDTO {
	return &userPort.UserDTO{
		ID:       u.ID.String(),
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
	}
}
