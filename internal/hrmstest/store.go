package hrmstest

import (
	"time"

	"github.com/shopspring/decimal"

	"hrmclient/internal/domain/attendance"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/domain/compliance"
	"hrmclient/internal/domain/documents"
	"hrmclient/internal/domain/employees"
	"hrmclient/internal/domain/leave"
	"hrmclient/internal/domain/payroll"
	"hrmclient/internal/domain/performance"
	"hrmclient/internal/domain/recruitment"
	"hrmclient/internal/domain/training"
)

// Seeded fixtures every fresh server starts with.
const (
	SeedAdminEmail    = "admin@example.com"
	SeedEmployeeEmail = "employee@example.com"
	SeedPassword      = "password"

	SeedAdminUserID    = "usr-admin"
	SeedEmployeeUserID = "usr-emp"
	SeedAdminID        = "emp-0001"
	SeedEmployeeID     = "emp-0002"
	SeedDepartmentID   = "dept-eng"

	SeedAnnualLeaveTypeID = "lt-annual"
	SeedSickLeaveTypeID   = "lt-sick"
)

type userRecord struct {
	user auth.User
	hash string
}

type state struct {
	users map[string]*userRecord // keyed by email

	employees    []employees.Employee
	empDocuments map[string][]documents.Document // keyed by employee id

	leaveTypes    []leave.LeaveType
	leaveRequests []leave.Request
	balances      []leave.Balance

	attendance []attendance.Record

	payslips   []payroll.Payslip
	components []payroll.SalaryComponent
	structures []payroll.SalaryStructure
	loans      []payroll.Loan

	goals      []performance.Goal
	feedback   []performance.Feedback
	appraisals []performance.Appraisal

	requisitions []recruitment.JobRequisition
	vacancies    []recruitment.Vacancy
	applications []recruitment.Application
	interviews   []recruitment.Interview

	programs         []training.Program
	trainingRequests []training.Request
	skills           []training.Skill
	certifications   []training.Certification

	documents   []documents.Document
	docBlobs    map[string][]byte // keyed by document id
	docRequests []documents.Request

	checks    []compliance.Check
	auditLogs []compliance.AuditLog
	reports   []compliance.Report
}

func seed(now time.Time) *state {
	hash := hashPassword(SeedPassword)
	year := now.Year()
	today := now.Format("2006-01-02")

	st := &state{
		users: map[string]*userRecord{
			SeedAdminEmail: {
				user: auth.User{
					ID:           SeedAdminUserID,
					Email:        SeedAdminEmail,
					Name:         "Admin User",
					Role:         auth.RoleAdmin,
					DepartmentID: strPtr(SeedDepartmentID),
					EmployeeID:   strPtr(SeedAdminID),
				},
				hash: hash,
			},
			SeedEmployeeEmail: {
				user: auth.User{
					ID:           SeedEmployeeUserID,
					Email:        SeedEmployeeEmail,
					Name:         "Sara Ahmed",
					Role:         auth.RoleEmployee,
					DepartmentID: strPtr(SeedDepartmentID),
					EmployeeID:   strPtr(SeedEmployeeID),
				},
				hash: hash,
			},
		},
		empDocuments: map[string][]documents.Document{},
		docBlobs:     map[string][]byte{},
	}

	st.employees = []employees.Employee{
		{
			ID:               SeedAdminID,
			EmployeeNumber:   "EMP-0001",
			FirstNameEn:      "Admin",
			LastNameEn:       "User",
			Email:            SeedAdminEmail,
			MobileNumber:     "+966500000001",
			NationalID:       "1000000001",
			DateOfBirth:      "1985-03-12",
			Gender:           "Male",
			Nationality:      "Saudi",
			MaritalStatus:    "Married",
			JobTitle:         "HR Manager",
			DepartmentID:     SeedDepartmentID,
			EmploymentStatus: employees.StatusActive,
			EmploymentType:   employees.TypeFullTime,
			JoinDate:         "2019-01-06",
			BasicSalary:      18000,
		},
		{
			ID:               SeedEmployeeID,
			EmployeeNumber:   "EMP-0002",
			FirstNameEn:      "Sara",
			LastNameEn:       "Ahmed",
			Email:            SeedEmployeeEmail,
			MobileNumber:     "+966500000002",
			NationalID:       "1000000002",
			DateOfBirth:      "1993-07-22",
			Gender:           "Female",
			Nationality:      "Saudi",
			MaritalStatus:    "Single",
			JobTitle:         "Software Engineer",
			DepartmentID:     SeedDepartmentID,
			ManagerID:        strPtr(SeedAdminID),
			EmploymentStatus: employees.StatusActive,
			EmploymentType:   employees.TypeFullTime,
			JoinDate:         "2022-02-14",
			BasicSalary:      12000,
		},
	}

	st.leaveTypes = []leave.LeaveType{
		{
			ID:               SeedAnnualLeaveTypeID,
			NameEn:           "Annual Leave",
			AnnualDays:       21,
			CarryForward:     true,
			RequiresApproval: true,
			IsPaid:           true,
		},
		{
			ID:               SeedSickLeaveTypeID,
			NameEn:           "Sick Leave",
			AnnualDays:       10,
			RequiresApproval: true,
			IsPaid:           true,
		},
	}

	st.balances = []leave.Balance{
		{
			ID:               "bal-0001",
			EmployeeID:       SeedEmployeeID,
			LeaveTypeID:      SeedAnnualLeaveTypeID,
			Year:             year,
			AllocatedDays:    21,
			UsedDays:         3,
			RemainingBalance: 18,
		},
		{
			ID:               "bal-0002",
			EmployeeID:       SeedEmployeeID,
			LeaveTypeID:      SeedSickLeaveTypeID,
			Year:             year,
			AllocatedDays:    10,
			UsedDays:         0,
			RemainingBalance: 10,
		},
	}

	lastMonth := time.Date(now.Year(), now.Month()-1, 1, 0, 0, 0, 0, time.UTC)
	st.payslips = []payroll.Payslip{
		{
			ID:                 "ps-0001",
			EmployeeID:         SeedEmployeeID,
			Month:              lastMonth.Month().String(),
			Year:               lastMonth.Year(),
			BasicSalary:        decimal.NewFromInt(12000),
			HousingAllowance:   decimal.NewFromInt(3000),
			TransportAllowance: decimal.NewFromInt(800),
			GrossSalary:        decimal.NewFromInt(15800),
			GosiEmployee:       decimal.NewFromInt(1180),
			TotalDeductions:    decimal.NewFromInt(1180),
			NetPay:             decimal.NewFromInt(14620),
			Status:             payroll.PayslipStatusProcessed,
			ProcessedBy:        strPtr(SeedAdminUserID),
		},
	}

	st.structures = []payroll.SalaryStructure{
		{
			ID:                 "ss-0001",
			EmployeeID:         SeedEmployeeID,
			BasicSalary:        decimal.NewFromInt(12000),
			HousingAllowance:   decimal.NewFromInt(3000),
			TransportAllowance: decimal.NewFromInt(800),
			OtherAllowances:    decimal.Zero,
			EffectiveFrom:      "2022-02-14",
			CreatedBy:          SeedAdminUserID,
		},
	}

	st.components = []payroll.SalaryComponent{
		{
			ID:            "sc-0001",
			EmployeeID:    SeedEmployeeID,
			ComponentType: "allowance",
			ComponentName: "Housing Allowance",
			Amount:        decimal.NewFromInt(3000),
			IsTaxable:     false,
			EffectiveFrom: "2022-02-14",
			Status:        "Active",
		},
	}

	st.programs = []training.Program{
		{
			ID:            "tp-0001",
			TitleEn:       "Go for Backend Engineers",
			DescriptionEn: "Intensive workshop covering services, testing and deployment.",
			Type:          "Workshop",
			Category:      "Engineering",
			DurationHours: 24,
			StartDate:     today,
			EndDate:       now.AddDate(0, 0, 3).Format("2006-01-02"),
			Status:        "Active",
			CreatedBy:     SeedAdminUserID,
		},
	}

	st.checks = []compliance.Check{
		{
			ID:          "cc-0001",
			EmployeeID:  SeedEmployeeID,
			CheckType:   "iqama_renewal",
			Description: "Residence permit renewal due",
			DueDate:     now.AddDate(0, 1, 0).Format("2006-01-02"),
			Status:      "pending",
		},
	}

	return st
}
