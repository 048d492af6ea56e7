package auth

import (
	"context"
	"errors"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	defaultEntryTime = "09:00"
	defaultExitTime  = "18:00"
	defaultShiftName = "Morning"
)

type authService struct {
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &authService{
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Signup implements auth.AuthService. Self-service accounts start as regular
// employees on the default shift with seeded leave balances.
func (s *authService) Signup(ctx context.Context, req auth.SignupRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, req.Email); err == nil {
		return auth.AuthResponse{}, auth.ErrEmailAlreadyRegistered
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.AuthResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	code, err := s.employeeRepo.NextEmployeeCode(ctx)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	entryTime := req.EntryTime
	if entryTime == "" {
		entryTime = defaultEntryTime
	}
	exitTime := req.ExitTime
	if exitTime == "" {
		exitTime = defaultExitTime
	}

	created, err := s.employeeRepo.Create(ctx, employee.Employee{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         employee.RoleEmployee,
		EmployeeCode: code,
		Phone:        req.Phone,
		ShiftName:    defaultShiftName,
		EntryTime:    entryTime,
		ExitTime:     exitTime,
		AnnualLeaves: employee.DefaultLeaveBalance,
		CasualLeaves: employee.DefaultLeaveBalance,
	})
	if err != nil {
		if errors.Is(err, employee.ErrEmailExists) {
			return auth.AuthResponse{}, auth.ErrEmailAlreadyRegistered
		}
		return auth.AuthResponse{}, err
	}

	return s.issueToken(created)
}

// Login implements auth.AuthService.
func (s *authService) Login(ctx context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.AuthResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.AuthResponse{}, auth.ErrInvalidCredentials
		}
		return auth.AuthResponse{}, err
	}

	if bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)) != nil {
		return auth.AuthResponse{}, auth.ErrInvalidCredentials
	}

	return s.issueToken(emp)
}

// Me implements auth.AuthService.
func (s *authService) Me(ctx context.Context) (employee.EmployeeResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, auth.ErrInvalidToken
	}

	employeeID, _ := claims["employee_id"].(string)
	if employeeID == "" {
		return employee.EmployeeResponse{}, auth.ErrEmployeeContextRequired
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

func (s *authService) issueToken(emp employee.Employee) (auth.AuthResponse, error) {
	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.ID, emp.Email, emp.Role)
	if err != nil {
		return auth.AuthResponse{}, err
	}

	return auth.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      employee.ToResponse(emp),
	}, nil
}
