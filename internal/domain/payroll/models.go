package payroll

import "github.com/shopspring/decimal"

// Payslip is one employee-month of pay. Money fields are decimals on the
// wire; the record is immutable once issued (Draft -> Processed -> Paid).
type Payslip struct {
	ID                 string          `json:"id" validate:"required"`
	EmployeeID         string          `json:"employee_id" validate:"required"`
	Month              string          `json:"month" validate:"required"`
	Year               int             `json:"year" validate:"required"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	OvertimeAmount     decimal.Decimal `json:"overtime_amount"`
	GrossSalary        decimal.Decimal `json:"gross_salary"`
	GosiEmployee       decimal.Decimal `json:"gosi_employee"`
	IncomeTax          decimal.Decimal `json:"income_tax"`
	OtherDeductions    decimal.Decimal `json:"other_deductions"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	NetPay             decimal.Decimal `json:"net_pay"`
	Status             string          `json:"status" validate:"required,oneof=Draft Processed Paid"`
	ProcessedBy        *string         `json:"processed_by,omitempty"`
	ProcessedAt        *string         `json:"processed_at,omitempty"`
	CreatedAt          *string         `json:"created_at,omitempty"`
}

// Allowances sums the allowance components on top of basic salary.
func (p Payslip) Allowances() decimal.Decimal {
	return p.HousingAllowance.Add(p.TransportAllowance).Add(p.OtherAllowances).Add(p.OvertimeAmount)
}

type SalaryComponent struct {
	ID            string          `json:"id" validate:"required"`
	EmployeeID    string          `json:"employee_id" validate:"required"`
	ComponentType string          `json:"component_type" validate:"required,oneof=allowance deduction"`
	ComponentName string          `json:"component_name" validate:"required"`
	Amount        decimal.Decimal `json:"amount"`
	IsPercentage  bool            `json:"is_percentage"`
	IsTaxable     bool            `json:"is_taxable"`
	EffectiveFrom string          `json:"effective_from" validate:"required,datetime=2006-01-02"`
	EffectiveTo   *string         `json:"effective_to,omitempty"`
	Status        string          `json:"status" validate:"required,oneof=Active Inactive"`
}

type SalaryStructure struct {
	ID                 string          `json:"id" validate:"required"`
	EmployeeID         string          `json:"employee_id" validate:"required"`
	BasicSalary        decimal.Decimal `json:"basic_salary"`
	HousingAllowance   decimal.Decimal `json:"housing_allowance"`
	TransportAllowance decimal.Decimal `json:"transport_allowance"`
	OtherAllowances    decimal.Decimal `json:"other_allowances"`
	EffectiveFrom      string          `json:"effective_from" validate:"required,datetime=2006-01-02"`
	EffectiveTo        *string         `json:"effective_to,omitempty"`
	CreatedBy          string          `json:"created_by" validate:"required"`
	CreatedAt          *string         `json:"created_at,omitempty"`
}

type Loan struct {
	ID                string          `json:"id" validate:"required"`
	EmployeeID        string          `json:"employee_id" validate:"required"`
	LoanType          string          `json:"loan_type" validate:"required"`
	Amount            decimal.Decimal `json:"amount"`
	Installments      int             `json:"installments" validate:"gt=0"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	RemainingAmount   decimal.Decimal `json:"remaining_amount"`
	StartDate         string          `json:"start_date" validate:"required,datetime=2006-01-02"`
	Status            string          `json:"status" validate:"required,oneof=Active Completed Cancelled"`
	ApprovedBy        *string         `json:"approved_by,omitempty"`
	CreatedAt         *string         `json:"created_at,omitempty"`
}

// CreateLoan omits the server-computed remaining amount and the
// server-assigned status and approval metadata.
type CreateLoan struct {
	EmployeeID        string          `json:"employee_id"`
	LoanType          string          `json:"loan_type"`
	Amount            decimal.Decimal `json:"amount"`
	Installments      int             `json:"installments"`
	InstallmentAmount decimal.Decimal `json:"installment_amount"`
	StartDate         string          `json:"start_date"`
}
