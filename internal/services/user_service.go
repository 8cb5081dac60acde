package services

import (
	"context"
	"log"

	"gympoint/internal/models/db_models"
	"gympoint/internal/models/request_models"
	"gympoint/internal/repositories"
	"gympoint/pkg/utils"

	"github.com/google/uuid"
)

type UserService interface {
	Register(ctx context.Context, req request_models.SignUpRequest) (*db_models.User, error)
	Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error)
	ListAll(ctx context.Context) ([]db_models.User, error)
	ListClients(ctx context.Context) ([]db_models.User, error)
	ListInstructors(ctx context.Context) ([]db_models.User, error)
	ListAdmins(ctx context.Context) ([]db_models.User, error)
	EditInfo(ctx context.Context, actor *db_models.User, req request_models.EditUserInfoRequest) (*db_models.User, error)
	ForgotPassword(ctx context.Context, email string) error
	ChangePassword(ctx context.Context, token, newPassword string) error
	SetRoles(ctx context.Context, userID uuid.UUID, req request_models.SetRolesRequest) (*db_models.User, error)
}

type userService struct {
	userRepo     repositories.UserRepository
	scheduleRepo repositories.ScheduleRepository
	tokenRepo    repositories.TokenRepository
	mail         MailService
}

func NewUserService(
	userRepo repositories.UserRepository,
	scheduleRepo repositories.ScheduleRepository,
	tokenRepo repositories.TokenRepository,
	mail MailService,
) UserService {
	return &userService{
		userRepo:     userRepo,
		scheduleRepo: scheduleRepo,
		tokenRepo:    tokenRepo,
		mail:         mail,
	}
}

func (s *userService) Register(ctx context.Context, req request_models.SignUpRequest) (*db_models.User, error) {
	existing, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, utils.ConflictError("Email is already taken.")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &db_models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PasswordHash: hash,
	}
	if req.IsClient {
		user.Client = &db_models.Client{}
	}
	if req.IsInstructor {
		user.Instructor = &db_models.Instructor{}
	}
	if req.IsAdmin {
		user.Admin = &db_models.Admin{}
	}

	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) Login(ctx context.Context, req request_models.LoginRequest) (string, *db_models.User, error) {
	user, err := s.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, err
	}
	// Same message for unknown email and bad password.
	if user == nil {
		return "", nil, utils.NotAuthenticatedError("Invalid email or password.")
	}
	if err := utils.ComparePasswords(user.PasswordHash, req.Password); err != nil {
		return "", nil, utils.NotAuthenticatedError("Invalid email or password.")
	}

	token, err := utils.CreateToken(user.ID)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *userService) GetByID(ctx context.Context, id uuid.UUID) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFoundError("User does not exist.")
	}
	return user, nil
}

func (s *userService) ListAll(ctx context.Context) ([]db_models.User, error) {
	return s.userRepo.ListAll(ctx)
}

func (s *userService) ListClients(ctx context.Context) ([]db_models.User, error) {
	return s.userRepo.ListWithRole(ctx, "clients")
}

func (s *userService) ListInstructors(ctx context.Context) ([]db_models.User, error) {
	return s.userRepo.ListWithRole(ctx, "instructors")
}

func (s *userService) ListAdmins(ctx context.Context) ([]db_models.User, error) {
	return s.userRepo.ListWithRole(ctx, "admins")
}

func (s *userService) EditInfo(ctx context.Context, actor *db_models.User, req request_models.EditUserInfoRequest) (*db_models.User, error) {
	if req.FirstName != nil {
		actor.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		actor.LastName = *req.LastName
	}
	if req.Email != nil && *req.Email != actor.Email {
		taken, err := s.userRepo.FindByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, utils.ConflictError("Email is already taken.")
		}
		actor.Email = *req.Email
	}

	if err := s.userRepo.Save(ctx, actor); err != nil {
		return nil, err
	}
	return actor, nil
}

func (s *userService) ForgotPassword(ctx context.Context, email string) error {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NotFoundError("User does not exist.")
	}

	tokenString, err := utils.GenerateSecureToken(32)
	if err != nil {
		return err
	}

	// A new token replaces any previous one for this user.
	token := &db_models.ForgotPasswordToken{
		Token:  tokenString,
		UserID: user.ID,
	}
	if err := s.tokenRepo.Replace(ctx, token); err != nil {
		return err
	}

	if err := s.mail.SendPasswordReset(user.Email, tokenString); err != nil {
		log.Printf("Failed to send reset mail to %s: %v", user.Email, err)
		return err
	}

	return nil
}

func (s *userService) ChangePassword(ctx context.Context, tokenString, newPassword string) error {
	token, err := s.tokenRepo.Consume(ctx, tokenString)
	if err != nil {
		return err
	}
	if token == nil {
		return utils.NotFoundError("Token does not exist.")
	}

	user, err := s.userRepo.FindByID(ctx, token.UserID)
	if err != nil {
		return err
	}
	if user == nil {
		return utils.NotFoundError("User does not exist.")
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash

	return s.userRepo.Save(ctx, user)
}

// SetRoles applies role transitions for every flag present in the request.
// Turning a role on is idempotent. Turning instructor off fails while the
// instructor still owns schedules.
func (s *userService) SetRoles(ctx context.Context, userID uuid.UUID, req request_models.SetRolesRequest) (*db_models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, utils.NotFoundError("User does not exist.")
	}

	if req.IsClient != nil {
		if *req.IsClient && !user.IsClient() {
			if err := s.userRepo.AddClientRole(ctx, user.ID); err != nil {
				return nil, err
			}
		} else if !*req.IsClient && user.IsClient() {
			if err := s.userRepo.RemoveClientRole(ctx, user.ID); err != nil {
				return nil, err
			}
		}
	}

	if req.IsInstructor != nil {
		if *req.IsInstructor && !user.IsInstructor() {
			if err := s.userRepo.AddInstructorRole(ctx, user.ID); err != nil {
				return nil, err
			}
		} else if !*req.IsInstructor && user.IsInstructor() {
			owned, err := s.scheduleRepo.CountByInstructor(ctx, user.Instructor.ID)
			if err != nil {
				return nil, err
			}
			if owned > 0 {
				return nil, utils.ConflictError("Instructor has assigned classes. Remove those classes first.")
			}
			if err := s.userRepo.RemoveInstructorRole(ctx, user.ID); err != nil {
				return nil, err
			}
		}
	}

	if req.IsAdmin != nil {
		if *req.IsAdmin && !user.IsAdmin() {
			if err := s.userRepo.AddAdminRole(ctx, user.ID); err != nil {
				return nil, err
			}
		} else if !*req.IsAdmin && user.IsAdmin() {
			if err := s.userRepo.RemoveAdminRole(ctx, user.ID); err != nil {
				return nil, err
			}
		}
	}

	return s.userRepo.FindByID(ctx, userID)
}
