package employees

// Employee is the full HR record. Dates are calendar dates (YYYY-MM-DD);
// audit timestamps are RFC 3339 and always server-assigned.
type Employee struct {
	ID                    string   `json:"id" validate:"required"`
	EmployeeNumber        string   `json:"employee_number" validate:"required"`
	FirstNameEn           string   `json:"first_name_en" validate:"required"`
	LastNameEn            string   `json:"last_name_en" validate:"required"`
	FirstNameAr           *string  `json:"first_name_ar,omitempty"`
	LastNameAr            *string  `json:"last_name_ar,omitempty"`
	Email                 string   `json:"email" validate:"required,email"`
	MobileNumber          string   `json:"mobile_number" validate:"required"`
	NationalID            string   `json:"national_id" validate:"required"`
	PassportNumber        *string  `json:"passport_number,omitempty"`
	DateOfBirth           string   `json:"date_of_birth" validate:"required,datetime=2006-01-02"`
	Gender                string   `json:"gender" validate:"required,oneof=Male Female"`
	Nationality           string   `json:"nationality" validate:"required"`
	MaritalStatus         string   `json:"marital_status" validate:"required,oneof=Single Married Divorced Widowed"`
	JobTitle              string   `json:"job_title" validate:"required"`
	DepartmentID          string   `json:"department_id" validate:"required"`
	ManagerID             *string  `json:"manager_id,omitempty"`
	EmploymentStatus      string   `json:"employment_status" validate:"required,oneof=Active Inactive Terminated"`
	EmploymentType        string   `json:"employment_type" validate:"required,oneof=Full-time Part-time Contract Intern"`
	JoinDate              string   `json:"join_date" validate:"required,datetime=2006-01-02"`
	ProbationEndDate      *string  `json:"probation_end_date,omitempty"`
	ContractEndDate       *string  `json:"contract_end_date,omitempty"`
	BasicSalary           float64  `json:"basic_salary" validate:"gte=0"`
	HousingAllowance      *float64 `json:"housing_allowance,omitempty"`
	TransportAllowance    *float64 `json:"transport_allowance,omitempty"`
	OtherAllowances       *float64 `json:"other_allowances,omitempty"`
	BankName              *string  `json:"bank_name,omitempty"`
	BankAccountNumber     *string  `json:"bank_account_number,omitempty"`
	IBAN                  *string  `json:"iban,omitempty"`
	EmergencyContactName  *string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone,omitempty"`
	Address               *string  `json:"address,omitempty"`
	City                  *string  `json:"city,omitempty"`
	Country               *string  `json:"country,omitempty"`
	PostalCode            *string  `json:"postal_code,omitempty"`
	CreatedAt             *string  `json:"created_at,omitempty"`
	UpdatedAt             *string  `json:"updated_at,omitempty"`
}

// CreateEmployee is the create contract: Employee minus the server-assigned
// id and audit timestamps.
type CreateEmployee struct {
	EmployeeNumber        string   `json:"employee_number"`
	FirstNameEn           string   `json:"first_name_en"`
	LastNameEn            string   `json:"last_name_en"`
	FirstNameAr           *string  `json:"first_name_ar,omitempty"`
	LastNameAr            *string  `json:"last_name_ar,omitempty"`
	Email                 string   `json:"email"`
	MobileNumber          string   `json:"mobile_number"`
	NationalID            string   `json:"national_id"`
	PassportNumber        *string  `json:"passport_number,omitempty"`
	DateOfBirth           string   `json:"date_of_birth"`
	Gender                string   `json:"gender"`
	Nationality           string   `json:"nationality"`
	MaritalStatus         string   `json:"marital_status"`
	JobTitle              string   `json:"job_title"`
	DepartmentID          string   `json:"department_id"`
	ManagerID             *string  `json:"manager_id,omitempty"`
	EmploymentStatus      string   `json:"employment_status"`
	EmploymentType        string   `json:"employment_type"`
	JoinDate              string   `json:"join_date"`
	ProbationEndDate      *string  `json:"probation_end_date,omitempty"`
	ContractEndDate       *string  `json:"contract_end_date,omitempty"`
	BasicSalary           float64  `json:"basic_salary"`
	HousingAllowance      *float64 `json:"housing_allowance,omitempty"`
	TransportAllowance    *float64 `json:"transport_allowance,omitempty"`
	OtherAllowances       *float64 `json:"other_allowances,omitempty"`
	BankName              *string  `json:"bank_name,omitempty"`
	BankAccountNumber     *string  `json:"bank_account_number,omitempty"`
	IBAN                  *string  `json:"iban,omitempty"`
	EmergencyContactName  *string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone,omitempty"`
	Address               *string  `json:"address,omitempty"`
	City                  *string  `json:"city,omitempty"`
	Country               *string  `json:"country,omitempty"`
	PostalCode            *string  `json:"postal_code,omitempty"`
}

// UpdateEmployee is a partial update: nil fields are left untouched
// server-side.
type UpdateEmployee struct {
	FirstNameEn           *string  `json:"first_name_en,omitempty"`
	LastNameEn            *string  `json:"last_name_en,omitempty"`
	FirstNameAr           *string  `json:"first_name_ar,omitempty"`
	LastNameAr            *string  `json:"last_name_ar,omitempty"`
	Email                 *string  `json:"email,omitempty"`
	MobileNumber          *string  `json:"mobile_number,omitempty"`
	PassportNumber        *string  `json:"passport_number,omitempty"`
	MaritalStatus         *string  `json:"marital_status,omitempty"`
	JobTitle              *string  `json:"job_title,omitempty"`
	DepartmentID          *string  `json:"department_id,omitempty"`
	ManagerID             *string  `json:"manager_id,omitempty"`
	EmploymentStatus      *string  `json:"employment_status,omitempty"`
	EmploymentType        *string  `json:"employment_type,omitempty"`
	ProbationEndDate      *string  `json:"probation_end_date,omitempty"`
	ContractEndDate       *string  `json:"contract_end_date,omitempty"`
	BasicSalary           *float64 `json:"basic_salary,omitempty"`
	HousingAllowance      *float64 `json:"housing_allowance,omitempty"`
	TransportAllowance    *float64 `json:"transport_allowance,omitempty"`
	OtherAllowances       *float64 `json:"other_allowances,omitempty"`
	BankName              *string  `json:"bank_name,omitempty"`
	BankAccountNumber     *string  `json:"bank_account_number,omitempty"`
	IBAN                  *string  `json:"iban,omitempty"`
	EmergencyContactName  *string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone *string  `json:"emergency_contact_phone,omitempty"`
	Address               *string  `json:"address,omitempty"`
	City                  *string  `json:"city,omitempty"`
	Country               *string  `json:"country,omitempty"`
	PostalCode            *string  `json:"postal_code,omitempty"`
}

// Document is an employee-owned file record.
type Document struct {
	ID           string  `json:"id" validate:"required"`
	EmployeeID   string  `json:"employee_id" validate:"required"`
	DocumentType string  `json:"document_type" validate:"required"`
	DocumentName string  `json:"document_name" validate:"required"`
	FilePath     string  `json:"file_path" validate:"required"`
	FileSize     int64   `json:"file_size" validate:"gte=0"`
	MimeType     string  `json:"mime_type" validate:"required"`
	UploadedBy   string  `json:"uploaded_by" validate:"required"`
	UploadDate   string  `json:"upload_date" validate:"required"`
	ExpiryDate   *string `json:"expiry_date,omitempty"`
	Status       string  `json:"status" validate:"required,oneof=active expired archived"`
}
