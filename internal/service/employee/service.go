package employee

import (
	"context"
	"errors"

	"github.com/attendly/attendance-backend-go/internal/domain/employee"
	"github.com/attendly/attendance-backend-go/internal/domain/shift"
	"golang.org/x/crypto/bcrypt"
)

type employeeService struct {
	employeeRepo employee.EmployeeRepository
	shiftRepo    shift.ShiftRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, shiftRepo shift.ShiftRepository) employee.EmployeeService {
	return &employeeService{
		employeeRepo: employeeRepo,
		shiftRepo:    shiftRepo,
	}
}

// CreateEmployee implements employee.EmployeeService.
func (s *employeeService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	code, err := s.employeeRepo.NextEmployeeCode(ctx)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Role:         employee.RoleEmployee,
		EmployeeCode: code,
		Position:     req.Position,
		Department:   req.Department,
		Phone:        req.Phone,
		Salary:       req.Salary,
		ShiftName:    req.ShiftName,
		EntryTime:    req.EntryTime,
		ExitTime:     req.ExitTime,
		AnnualLeaves: employee.DefaultLeaveBalance,
		CasualLeaves: employee.DefaultLeaveBalance,
	}
	if req.AnnualLeaves != nil {
		emp.AnnualLeaves = *req.AnnualLeaves
	}
	if req.CasualLeaves != nil {
		emp.CasualLeaves = *req.CasualLeaves
	}

	// Assigning a policy by name snapshots its times unless the request
	// overrides them explicitly.
	if emp.ShiftName != "" {
		policy, err := s.shiftRepo.GetByName(ctx, emp.ShiftName)
		if err != nil {
			return employee.EmployeeResponse{}, err
		}
		emp.ShiftName = policy.Name
		if emp.EntryTime == "" {
			emp.EntryTime = policy.EntryTime
		}
		if emp.ExitTime == "" {
			emp.ExitTime = policy.ExitTime
		}
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// ListEmployees implements employee.EmployeeService.
func (s *employeeService) ListEmployees(ctx context.Context) (employee.ListEmployeesResponse, error) {
	employees, err := s.employeeRepo.List(ctx, nil)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: int64(len(responses)),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *employeeService) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// UpdateEmployee implements employee.EmployeeService. Nil request fields
// leave the stored values untouched.
func (s *employeeService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.Department != nil {
		emp.Department = *req.Department
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.Salary != nil {
		emp.Salary = req.Salary
	}
	if req.AnnualLeaves != nil {
		emp.AnnualLeaves = *req.AnnualLeaves
	}
	if req.CasualLeaves != nil {
		emp.CasualLeaves = *req.CasualLeaves
	}

	// Re-assigning the shift re-snapshots the policy times; explicit time
	// patches then win over the snapshot.
	if req.ShiftName != nil {
		policy, err := s.shiftRepo.GetByName(ctx, *req.ShiftName)
		if err != nil {
			if errors.Is(err, shift.ErrShiftNotFound) {
				return employee.EmployeeResponse{}, employee.ErrShiftNotAssigned
			}
			return employee.EmployeeResponse{}, err
		}
		emp.ShiftName = policy.Name
		emp.EntryTime = policy.EntryTime
		emp.ExitTime = policy.ExitTime
	}
	if req.EntryTime != nil {
		emp.EntryTime = *req.EntryTime
	}
	if req.ExitTime != nil {
		emp.ExitTime = *req.ExitTime
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(emp), nil
}

// DeleteEmployee implements employee.EmployeeService.
func (s *employeeService) DeleteEmployee(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}
