// internal/repository/user.go
package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/witoon-skydea/flow-3-strategic-system/internal/auth"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/domain"
	"github.com/witoon-skydea/flow-3-strategic-system/internal/model"
)

type UserRepository struct {
	db     *gorm.DB
	hasher *auth.PasswordHasher
}

func NewUserRepository(db *gorm.DB, hasher *auth.PasswordHasher) *UserRepository {
	return &UserRepository{db: db, hasher: hasher}
}

type CreateUserInput struct {
	Username string     `json:"username" validate:"required"`
	Password string     `json:"password" validate:"required"`
	Email    *string    `json:"email"`
	Name     string     `json:"name"`
	Role     model.Role `json:"role" validate:"required,oneof=admin management staff"`
}

type UpdateUserInput struct {
	Username Optional[string]     `json:"username"`
	Password Optional[string]     `json:"password"`
	Email    Optional[*string]    `json:"email"`
	Name     Optional[string]     `json:"name"`
	Role     Optional[model.Role] `json:"role"`
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	users := make([]model.User, 0)
	if err := r.db.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("finding all users: %w", err)
	}
	return users, nil
}

func (r *UserRepository) Get(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("user")
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.NotFound("user")
		}
		return nil, fmt.Errorf("finding user: %w", err)
	}
	return &user, nil
}

func (r *UserRepository) Create(ctx context.Context, in CreateUserInput) (*model.User, error) {
	taken, err := r.identityTaken(ctx, in.Username, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.Conflict("user already exists")
	}

	hash, err := r.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Username: in.Username,
		Password: hash,
		Email:    in.Email,
		Name:     in.Name,
		Role:     in.Role,
	}
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return r.Get(ctx, user.ID)
}

func (r *UserRepository) Update(ctx context.Context, id uint, in UpdateUserInput) (*model.User, error) {
	user, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if role, ok := in.Role.Get(); ok && !role.Valid() {
		return nil, domain.Invalid("role must be admin, management, or staff")
	}

	if in.Username.Provided() || in.Email.Provided() {
		username := user.Username
		apply(&username, in.Username)
		email := user.Email
		apply(&email, in.Email)
		taken, err := r.identityTaken(ctx, username, email, id)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.Conflict("username or email already taken")
		}
	}

	if password, ok := in.Password.Get(); ok {
		hash, err := r.hasher.Hash(password)
		if err != nil {
			return nil, err
		}
		user.Password = hash
	}

	apply(&user.Username, in.Username)
	apply(&user.Email, in.Email)
	apply(&user.Name, in.Name)
	apply(&user.Role, in.Role)

	if err := r.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return r.Get(ctx, id)
}

func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	user, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if user.Username == model.AdminUsername {
		return domain.Conflict("cannot delete default admin account")
	}
	if err := r.db.WithContext(ctx).Delete(&model.User{}, id).Error; err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// identityTaken reports whether another user already holds the username
// or email. excludeID skips the row being updated; zero excludes nothing.
func (r *UserRepository) identityTaken(ctx context.Context, username string, email *string, excludeID uint) (bool, error) {
	identity := r.db.Where("username = ?", username)
	if email != nil {
		identity = identity.Or("email = ?", *email)
	}

	q := r.db.WithContext(ctx).Model(&model.User{}).Where(identity)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("checking existing users: %w", err)
	}
	return count > 0, nil
}
