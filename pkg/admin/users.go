package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/panelkit/panelkit/pkg/apiclient"
)

// User is the user entity as served by the admin API.
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateUserRequest carries the fields for creating a user.
type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Status   string `json:"status,omitempty"`
}

// UpdateUserRequest carries the fields for updating a user.
type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status,omitempty"`
}

// UserService exposes the /users endpoints. All calls are authenticated;
// errors pass through from the request client untranslated.
type UserService struct {
	api *apiclient.Client
}

// NewUserService creates a user service over the given client.
func NewUserService(api *apiclient.Client) *UserService {
	return &UserService{api: api}
}

// List returns all users.
func (s *UserService) List(ctx context.Context) ([]User, error) {
	var users []User
	if err := s.api.Get(ctx, "/users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

// Get returns a single user by id.
func (s *UserService) Get(ctx context.Context, id int64) (*User, error) {
	var user User
	if err := s.api.Get(ctx, fmt.Sprintf("/users/%d", id), &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a user.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*User, error) {
	var user User
	if err := s.api.Post(ctx, "/users", req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update updates a user by id.
func (s *UserService) Update(ctx context.Context, id int64, req UpdateUserRequest) (*User, error) {
	var user User
	if err := s.api.Put(ctx, fmt.Sprintf("/users/%d", id), req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes a user by id.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	return s.api.Delete(ctx, fmt.Sprintf("/users/%d", id), nil)
}
