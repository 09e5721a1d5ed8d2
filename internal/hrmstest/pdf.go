package hrmstest

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"hrmclient/internal/domain/compliance"
	"hrmclient/internal/domain/payroll"
)

func renderPayslipPDF(slip payroll.Payslip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Payslip %s %d", slip.Month, slip.Year))
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 11)
	rows := [][2]string{
		{"Employee", slip.EmployeeID},
		{"Basic Salary", slip.BasicSalary.StringFixed(2)},
		{"Allowances", slip.Allowances().StringFixed(2)},
		{"Gross Salary", slip.GrossSalary.StringFixed(2)},
		{"GOSI", slip.GosiEmployee.StringFixed(2)},
		{"Total Deductions", slip.TotalDeductions.StringFixed(2)},
		{"Net Pay", slip.NetPay.StringFixed(2)},
		{"Status", slip.Status},
	}
	for _, row := range rows {
		pdf.CellFormat(60, 8, row[0], "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, row[1], "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderCompliancePDF(report compliance.Report, checks []compliance.Check) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, fmt.Sprintf("Compliance Report: %s", report.ReportType))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("Period %s to %s", report.PeriodStart, report.PeriodEnd))
	pdf.Ln(10)

	for _, check := range checks {
		pdf.CellFormat(50, 8, check.CheckType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, check.EmployeeID, "1", 0, "L", false, 0, "")
		pdf.CellFormat(35, 8, check.DueDate, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 8, check.Status, "1", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
