package usecase

import (
	"context"

	"clinic-records-api/internal/converter"
	"clinic-records-api/internal/delivery/dto"
	"clinic-records-api/internal/domain/entity"
	"clinic-records-api/internal/domain/repository"
	repositoryImpl "clinic-records-api/internal/repository"
	"clinic-records-api/internal/service"
	"clinic-records-api/pkg/jwt"
	"clinic-records-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt ignores input past 72 bytes.
const maxPasswordLength = 72

type UserUsecase interface {
	Create(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error)
	List(ctx context.Context) ([]dto.UserResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UserRequest) (*dto.UserResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, userID uuid.UUID, tokenID string) error
}

type userUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	validate   *validator.CustomValidator
	userRepo   repository.UserRepository
	jwtService *jwt.JWTService
	sessions   service.SessionStore
	hashCost   int
}

func NewUserUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	validate *validator.CustomValidator,
	userRepo repository.UserRepository,
	jwtService *jwt.JWTService,
	sessions service.SessionStore,
) UserUsecase {
	return &userUsecase{
		db:         db,
		log:        log,
		validate:   validate,
		userRepo:   userRepo,
		jwtService: jwtService,
		sessions:   sessions,
		hashCost:   bcrypt.DefaultCost,
	}
}

func (u *userUsecase) Create(ctx context.Context, req *dto.UserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user := &entity.User{}
	if err := u.assign(tx, user, req, true); err != nil {
		return nil, err
	}

	if err := u.userRepo.Create(tx, user); err != nil {
		if repositoryImpl.IsDuplicateKeyError(err, "email") {
			return nil, newValidationError(msgEmailTaken)
		}
		u.log.Warnf("Failed to create user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) List(ctx context.Context) ([]dto.UserResponse, error) {
	users, err := u.userRepo.FindAll(u.db.WithContext(ctx))
	if err != nil {
		u.log.Warnf("Failed to find all users: %+v", err)
		return nil, err
	}

	return converter.UsersToResponses(users), nil
}

func (u *userUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UserRequest) (*dto.UserResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	user, err := u.userRepo.FindByID(tx, id)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := u.assign(tx, user, req, false); err != nil {
		return nil, err
	}

	if err := u.userRepo.Update(tx, user); err != nil {
		if repositoryImpl.IsDuplicateKeyError(err, "email") {
			return nil, newValidationError(msgEmailTaken)
		}
		u.log.Warnf("Failed to update user: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	return converter.UserToResponse(user), nil
}

func (u *userUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	deleted, err := u.userRepo.Delete(tx, id)
	if err != nil {
		u.log.Warnf("Failed to delete user: %+v", err)
		return err
	}
	if deleted == 0 {
		return ErrUserNotFound
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}

	return nil
}

// Login answers every failure with ErrInvalidCredentials so callers cannot
// tell an unknown email from a wrong password.
func (u *userUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, ErrInvalidCredentials
	}

	// Find user by email (read-only, no transaction needed)
	user, err := u.userRepo.FindByEmail(u.db.WithContext(ctx), req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	// Verify password
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, tokenID, err := u.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		u.log.Warnf("Failed to generate access token: %+v", err)
		return nil, err
	}

	if err := u.sessions.Register(ctx, user.ID, tokenID, u.jwtService.GetAccessExpiry()); err != nil {
		u.log.Warnf("Failed to store access token: %+v", err)
		return nil, err
	}

	return &dto.LoginResponse{
		User:        converter.UserToIdentity(user),
		AccessToken: accessToken,
		ExpiresIn:   int64(u.jwtService.GetAccessExpiry().Seconds()),
	}, nil
}

func (u *userUsecase) Logout(ctx context.Context, userID uuid.UUID, tokenID string) error {
	if err := u.sessions.Revoke(ctx, userID, tokenID); err != nil {
		u.log.Warnf("Failed to revoke access token: %+v", err)
		return err
	}
	return nil
}

// assign requires a password on create. On update the stored hash is only
// replaced when a password is supplied.
func (u *userUsecase) assign(tx *gorm.DB, user *entity.User, req *dto.UserRequest, creating bool) error {
	var c checks

	if req.Email != nil {
		user.Email = *req.Email
	}

	var password string
	if req.Password != nil {
		password = *req.Password
	}
	checkPassword := creating || req.Password != nil

	if err := c.rules(u.validate, user); err != nil {
		return err
	}

	if user.Email != "" && !c.has("email") {
		taken, err := u.userRepo.ExistsByEmail(tx, user.Email, user.ID)
		if err != nil {
			u.log.Warnf("Failed to check user email: %+v", err)
			return err
		}
		if taken {
			c.add("email", msgEmailTaken)
		}
	}

	if checkPassword {
		switch {
		case password == "":
			c.add("password", "Password can't be blank")
		case len(password) > maxPasswordLength:
			c.add("password", "Password is too long (maximum is 72 characters)")
		}
		if req.PasswordConfirmation != nil && *req.PasswordConfirmation != password {
			c.add("password_confirmation", msgPasswordMismatch)
		}
	}

	if err := c.err(); err != nil {
		return err
	}

	if checkPassword {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), u.hashCost)
		if err != nil {
			u.log.Warnf("Failed to hash password: %+v", err)
			return err
		}
		user.Password = string(hashedPassword)
	}

	return nil
}
