package authservice

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/savichev/restofloor/internal/apperrors"
	"github.com/savichev/restofloor/internal/domain"
	"github.com/savichev/restofloor/pkg/auth"
	"go.uber.org/zap"
)

type Repo interface {
	FindByID(ctx context.Context, id int) (*domain.Employee, error)
	FindAll(ctx context.Context) ([]domain.Employee, error)
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	Delete(ctx context.Context, id int) error
}

type WalletService interface {
	CreateWallet(ctx context.Context, employeeID int) (*domain.Wallet, error)
}

type Service struct {
	employeeRepo  Repo
	walletService WalletService
	hashService   auth.HashServiceInterface
	jwtService    auth.JWTServiceInterface
}

func New(repo Repo, walletService WalletService, hashService auth.HashServiceInterface, jwtService auth.JWTServiceInterface) *Service {
	return &Service{
		employeeRepo:  repo,
		walletService: walletService,
		hashService:   hashService,
		jwtService:    jwtService,
	}
}

// Register creates an employee with a freshly generated 3-digit login code
// and seeds their tip wallet. The code is returned once, in the clear, and
// only its hash is stored.
func (s *Service) Register(ctx context.Context, name string, position domain.Position) (*domain.Employee, string, error) {
	if !position.Valid() {
		return nil, "", apperrors.Validation("unknown position: %s", position)
	}

	code, err := generateCode()
	if err != nil {
		zap.L().Error("can't generate login code: ", zap.Error(err))
		return nil, "", err
	}
	hash, err := s.hashService.HashPassword(code)
	if err != nil {
		zap.L().Error("can't hash login code: ", zap.Error(err))
		return nil, "", err
	}

	employee := &domain.Employee{
		Name:     name,
		Position: position,
		CodeHash: hash,
	}
	newEmployee, err := s.employeeRepo.Create(ctx, employee)
	if err != nil {
		zap.L().Error("can't create employee: ", zap.Error(err))
		return nil, "", err
	}

	if _, err := s.walletService.CreateWallet(ctx, newEmployee.ID); err != nil {
		zap.L().Error("can't create wallet: ", zap.Error(err))
		return nil, "", err
	}

	zap.L().Info("employee registered", zap.Int("employee_id", newEmployee.ID), zap.String("position", string(position)))
	return newEmployee, code, nil
}

func (s *Service) Authenticate(ctx context.Context, employeeID int, code string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil || employee == nil {
		zap.L().Error("invalid credentials", zap.Error(err))
		return nil, apperrors.Validation("invalid credentials")
	}
	if ok := s.hashService.ComparePassword(employee.CodeHash, code); !ok {
		zap.L().Error("invalid credentials", zap.Int("employee_id", employeeID))
		return nil, apperrors.Validation("invalid credentials")
	}
	return employee, nil
}

func (s *Service) GenerateToken(employeeID int, position domain.Position) (string, error) {
	expirationTime := time.Now().Add(24 * time.Hour)

	token, err := s.jwtService.GenerateJWT(employeeID, string(position), expirationTime)
	if err != nil {
		zap.L().Error("can't generate token: ", zap.Error(err))
		return "", err
	}
	return token, nil
}

func (s *Service) GetEmployee(ctx context.Context, id int) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, apperrors.NotFound("employee")
	}
	return employee, nil
}

func (s *Service) GetEmployees(ctx context.Context) ([]domain.Employee, error) {
	return s.employeeRepo.FindAll(ctx)
}

func (s *Service) DeleteEmployee(ctx context.Context, id int) error {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if employee == nil {
		return apperrors.NotFound("employee")
	}
	return s.employeeRepo.Delete(ctx, id)
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%03d", n.Int64()), nil
}
