package querycache

// Read-operation names. Every cached read is keyed under one of these.
const (
	OpEmployees         = "employees"
	OpEmployee          = "employee"
	OpEmployeeDocuments = "employee-documents"

	OpLeaveRequests = "leave-requests"
	OpLeaveRequest  = "leave-request"
	OpLeaveTypes    = "leave-types"
	OpLeaveBalances = "leave-balances"

	OpAttendanceRecords = "attendance-records"
	OpTodayAttendance   = "today-attendance"
	OpAttendanceSummary = "attendance-summary"

	OpPayslips         = "payslips"
	OpPayslip          = "payslip"
	OpSalaryComponents = "salary-components"
	OpSalaryStructures = "salary-structures"
	OpLoans            = "loans"

	OpGoals      = "goals"
	OpFeedback   = "feedback"
	OpAppraisals = "appraisals"

	OpJobRequisitions = "job-requisitions"
	OpVacancies       = "vacancies"
	OpApplications    = "applications"
	OpInterviews      = "interviews"

	OpTrainingPrograms = "training-programs"
	OpTrainingRequests = "training-requests"
	OpSkills           = "employee-skills"
	OpCertifications   = "employee-certifications"

	OpDocuments        = "documents"
	OpDocumentRequests = "document-requests"

	OpComplianceChecks  = "compliance-checks"
	OpAuditLogs         = "audit-logs"
	OpComplianceReports = "compliance-reports"

	OpCurrentUser = "current-user"
)

// Mutation names every write operation the cache layer wraps.
type Mutation string

const (
	MutCreateEmployee Mutation = "create-employee"
	MutUpdateEmployee Mutation = "update-employee"
	MutDeleteEmployee Mutation = "delete-employee"

	MutCreateLeaveRequest  Mutation = "create-leave-request"
	MutUpdateLeaveRequest  Mutation = "update-leave-request"
	MutApproveLeaveRequest Mutation = "approve-leave-request"
	MutRejectLeaveRequest  Mutation = "reject-leave-request"

	MutClock Mutation = "clock"

	MutProcessPayroll Mutation = "process-payroll"
	MutCreateLoan     Mutation = "create-loan"

	MutCreateGoal     Mutation = "create-goal"
	MutUpdateGoal     Mutation = "update-goal"
	MutCreateFeedback Mutation = "create-feedback"

	MutCreateRequisition       Mutation = "create-requisition"
	MutUpdateRequisition       Mutation = "update-requisition"
	MutApproveRequisition      Mutation = "approve-requisition"
	MutCreateVacancy           Mutation = "create-vacancy"
	MutUpdateApplicationStatus Mutation = "update-application-status"
	MutScheduleInterview       Mutation = "schedule-interview"
	MutSubmitInterviewFeedback Mutation = "submit-interview-feedback"

	MutCreateTrainingRequest Mutation = "create-training-request"
	MutAddSkill              Mutation = "add-skill"

	MutUploadDocument        Mutation = "upload-document"
	MutDeleteDocument        Mutation = "delete-document"
	MutCreateDocumentRequest Mutation = "create-document-request"
	MutUpdateDocumentRequest Mutation = "update-document-request"

	MutCreateComplianceCheck Mutation = "create-compliance-check"
	MutUpdateComplianceCheck Mutation = "update-compliance-check"
	MutGenerateReport        Mutation = "generate-report"

	MutChangePassword Mutation = "change-password"
)

// MutationSpec declares, for one mutation, the read operations it makes
// stale and the notification texts. Invalidation is by operation prefix:
// every key under the operation is hit, whatever its parameters.
type MutationSpec struct {
	Invalidates  []string
	SuccessText  string
	FallbackText string
}

// Invalidations is the first-class mutation -> stale-reads table. Approving
// a leave request also invalidates balances: the server recomputes them on
// approval, so any cached balance list could have changed.
var Invalidations = map[Mutation]MutationSpec{
	MutCreateEmployee: {
		Invalidates:  []string{OpEmployees},
		SuccessText:  "Employee created successfully",
		FallbackText: "Failed to create employee",
	},
	MutUpdateEmployee: {
		Invalidates:  []string{OpEmployees, OpEmployee},
		SuccessText:  "Employee updated successfully",
		FallbackText: "Failed to update employee",
	},
	MutDeleteEmployee: {
		Invalidates:  []string{OpEmployees},
		SuccessText:  "Employee deleted successfully",
		FallbackText: "Failed to delete employee",
	},
	MutCreateLeaveRequest: {
		Invalidates:  []string{OpLeaveRequests, OpLeaveBalances},
		SuccessText:  "Leave request submitted successfully",
		FallbackText: "Failed to submit leave request",
	},
	MutUpdateLeaveRequest: {
		Invalidates:  []string{OpLeaveRequests, OpLeaveRequest},
		SuccessText:  "Leave request updated successfully",
		FallbackText: "Failed to update leave request",
	},
	MutApproveLeaveRequest: {
		Invalidates:  []string{OpLeaveRequests, OpLeaveBalances},
		SuccessText:  "Leave request approved successfully",
		FallbackText: "Failed to approve leave request",
	},
	MutRejectLeaveRequest: {
		Invalidates:  []string{OpLeaveRequests},
		SuccessText:  "Leave request rejected successfully",
		FallbackText: "Failed to reject leave request",
	},
	MutClock: {
		Invalidates:  []string{OpAttendanceRecords, OpTodayAttendance, OpAttendanceSummary},
		SuccessText:  "Attendance recorded successfully",
		FallbackText: "Failed to record attendance",
	},
	MutProcessPayroll: {
		Invalidates:  []string{OpPayslips},
		SuccessText:  "Payroll processed successfully",
		FallbackText: "Failed to process payroll",
	},
	MutCreateLoan: {
		Invalidates:  []string{OpLoans},
		SuccessText:  "Loan created successfully",
		FallbackText: "Failed to create loan",
	},
	MutCreateGoal: {
		Invalidates:  []string{OpGoals},
		SuccessText:  "Goal created successfully",
		FallbackText: "Failed to create goal",
	},
	MutUpdateGoal: {
		Invalidates:  []string{OpGoals},
		SuccessText:  "Goal updated successfully",
		FallbackText: "Failed to update goal",
	},
	MutCreateFeedback: {
		Invalidates:  []string{OpFeedback},
		SuccessText:  "Feedback submitted successfully",
		FallbackText: "Failed to submit feedback",
	},
	MutCreateRequisition: {
		Invalidates:  []string{OpJobRequisitions},
		SuccessText:  "Job requisition created successfully",
		FallbackText: "Failed to create job requisition",
	},
	MutUpdateRequisition: {
		Invalidates:  []string{OpJobRequisitions},
		SuccessText:  "Job requisition updated successfully",
		FallbackText: "Failed to update job requisition",
	},
	MutApproveRequisition: {
		Invalidates:  []string{OpJobRequisitions},
		SuccessText:  "Job requisition approved successfully",
		FallbackText: "Failed to approve job requisition",
	},
	MutCreateVacancy: {
		Invalidates:  []string{OpVacancies},
		SuccessText:  "Vacancy created successfully",
		FallbackText: "Failed to create vacancy",
	},
	MutUpdateApplicationStatus: {
		Invalidates:  []string{OpApplications},
		SuccessText:  "Application status updated successfully",
		FallbackText: "Failed to update application status",
	},
	MutScheduleInterview: {
		Invalidates:  []string{OpInterviews},
		SuccessText:  "Interview scheduled successfully",
		FallbackText: "Failed to schedule interview",
	},
	MutSubmitInterviewFeedback: {
		Invalidates:  []string{OpInterviews},
		SuccessText:  "Interview feedback submitted successfully",
		FallbackText: "Failed to submit interview feedback",
	},
	MutCreateTrainingRequest: {
		Invalidates:  []string{OpTrainingRequests},
		SuccessText:  "Training request submitted successfully",
		FallbackText: "Failed to submit training request",
	},
	MutAddSkill: {
		Invalidates:  []string{OpSkills},
		SuccessText:  "Skill added successfully",
		FallbackText: "Failed to add skill",
	},
	MutUploadDocument: {
		Invalidates:  []string{OpDocuments},
		SuccessText:  "Document uploaded successfully",
		FallbackText: "Failed to upload document",
	},
	MutDeleteDocument: {
		Invalidates:  []string{OpDocuments},
		SuccessText:  "Document deleted successfully",
		FallbackText: "Failed to delete document",
	},
	MutCreateDocumentRequest: {
		Invalidates:  []string{OpDocumentRequests},
		SuccessText:  "Document request submitted successfully",
		FallbackText: "Failed to submit document request",
	},
	MutUpdateDocumentRequest: {
		Invalidates:  []string{OpDocumentRequests},
		SuccessText:  "Document request updated successfully",
		FallbackText: "Failed to update document request",
	},
	MutCreateComplianceCheck: {
		Invalidates:  []string{OpComplianceChecks},
		SuccessText:  "Compliance check created successfully",
		FallbackText: "Failed to create compliance check",
	},
	MutUpdateComplianceCheck: {
		Invalidates:  []string{OpComplianceChecks},
		SuccessText:  "Compliance check updated successfully",
		FallbackText: "Failed to update compliance check",
	},
	MutGenerateReport: {
		Invalidates:  []string{OpComplianceReports},
		SuccessText:  "Report generation started",
		FallbackText: "Failed to generate report",
	},
	MutChangePassword: {
		SuccessText:  "Password changed successfully",
		FallbackText: "Failed to change password",
	},
}
