// hrmctl is a terminal front-end for the HRMS API, mainly used to exercise
// the client stack against a running backend. Run without arguments for
// usage.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"hrmclient/internal/api"
	"hrmclient/internal/domain/attendance"
	"hrmclient/internal/domain/auth"
	"hrmclient/internal/domain/employees"
	"hrmclient/internal/domain/leave"
	"hrmclient/internal/domain/payroll"
	"hrmclient/internal/platform/config"
	"hrmclient/internal/querycache"
	"hrmclient/internal/session"
)

const usage = `usage: hrmctl <command> [args]

  login <email> <password>
  logout
  whoami
  employees
  leaves [employee_id]
  request-leave <employee_id> <leave_type_id> <start> <end> <reason>
  approve <request_id>
  reject <request_id> <reason>
  balances <employee_id>
  clock <employee_id> <clock_in|clock_out|break_start|break_end>
  payslips [employee_id]
`

// stderrNotifier prints mutation outcomes the way the web client toasts
// them.
type stderrNotifier struct{}

func (stderrNotifier) Success(message string) { fmt.Fprintln(os.Stderr, message) }

func (stderrNotifier) Error(message string) { fmt.Fprintln(os.Stderr, "error: "+message) }

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	var store *session.Store
	client := api.New(cfg.APIBaseURL, cfg.RequestTimeout, func() string {
		if store == nil {
			return ""
		}
		return store.Token()
	})

	authSvc := auth.NewService(client)
	store = session.New(authSvc, session.NewFileStorage(cfg.StateDir))
	client.SetUnauthorizedHook(store.Clear)

	employeeSvc := employees.NewService(client)
	leaveSvc := leave.NewService(client)
	attendanceSvc := attendance.NewService(client)
	payrollSvc := payroll.NewService(client)
	cache := querycache.New(querycache.WithNotifier(stderrNotifier{}))

	ctx := context.Background()
	command, args := os.Args[1], os.Args[2:]

	var err error
	switch command {
	case "login":
		if len(args) != 2 {
			log.Fatal("usage: hrmctl login <email> <password>")
		}
		if err = store.Login(ctx, args[0], args[1]); err == nil {
			fmt.Printf("logged in as %s (%s)\n", store.User().Name, store.User().Role)
		}

	case "logout":
		store.Logout(ctx)
		fmt.Println("logged out")

	case "whoami":
		if !store.IsAuthenticated() {
			log.Fatal("not logged in")
		}
		user := store.User()
		fmt.Printf("%s <%s> role=%s\n", user.Name, user.Email, user.Role)

	case "employees":
		var list []employees.Employee
		if list, err = employeeSvc.List(ctx, employees.ListFilter{}); err == nil {
			for _, e := range list {
				fmt.Printf("%s  %s %s  %s  %s\n", e.ID, e.FirstNameEn, e.LastNameEn, e.JobTitle, e.EmploymentStatus)
			}
		}

	case "leaves":
		filter := leave.ListFilter{}
		if len(args) > 0 {
			filter.EmployeeID = args[0]
		}
		var list []leave.Request
		if list, err = leaveSvc.ListRequests(ctx, filter); err == nil {
			for _, req := range list {
				fmt.Printf("%s  %s  %s..%s  %.1fd  %s\n", req.ID, req.EmployeeID, req.StartDate, req.EndDate, req.TotalDays, req.Status)
			}
		}

	case "request-leave":
		if len(args) < 5 {
			log.Fatal("usage: hrmctl request-leave <employee_id> <leave_type_id> <start> <end> <reason>")
		}
		err = cache.Mutate(ctx, querycache.MutCreateLeaveRequest, func(ctx context.Context) error {
			_, err := leaveSvc.CreateRequest(ctx, leave.CreateRequest{
				EmployeeID:  args[0],
				LeaveTypeID: args[1],
				StartDate:   args[2],
				EndDate:     args[3],
				Reason:      strings.Join(args[4:], " "),
			})
			return err
		})

	case "approve":
		if len(args) != 1 {
			log.Fatal("usage: hrmctl approve <request_id>")
		}
		err = cache.Mutate(ctx, querycache.MutApproveLeaveRequest, func(ctx context.Context) error {
			_, err := leaveSvc.Approve(ctx, args[0])
			return err
		})

	case "reject":
		if len(args) < 2 {
			log.Fatal("usage: hrmctl reject <request_id> <reason>")
		}
		err = cache.Mutate(ctx, querycache.MutRejectLeaveRequest, func(ctx context.Context) error {
			_, err := leaveSvc.Reject(ctx, args[0], strings.Join(args[1:], " "))
			return err
		})

	case "balances":
		if len(args) != 1 {
			log.Fatal("usage: hrmctl balances <employee_id>")
		}
		var list []leave.Balance
		if list, err = leaveSvc.ListBalances(ctx, args[0], 0); err == nil {
			for _, b := range list {
				fmt.Printf("%s  year=%d  allocated=%.1f  used=%.1f  remaining=%.1f\n", b.LeaveTypeID, b.Year, b.AllocatedDays, b.UsedDays, b.RemainingBalance)
			}
		}

	case "clock":
		if len(args) != 2 {
			log.Fatal("usage: hrmctl clock <employee_id> <clock_in|clock_out|break_start|break_end>")
		}
		err = cache.Mutate(ctx, querycache.MutClock, func(ctx context.Context) error {
			_, err := attendanceSvc.Clock(ctx, attendance.ClockEvent{EmployeeID: args[0], Action: args[1]})
			return err
		})

	case "payslips":
		employeeID := ""
		if len(args) > 0 {
			employeeID = args[0]
		}
		var list []payroll.Payslip
		if list, err = payrollSvc.ListPayslips(ctx, employeeID); err == nil {
			for _, p := range list {
				fmt.Printf("%s  %s %d  net=%s  %s\n", p.ID, p.Month, p.Year, p.NetPay.StringFixed(2), p.Status)
			}
		}

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("%s failed: %v", command, err)
	}
}
