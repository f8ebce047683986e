// Package seed fills a development database with a small set of
// Vietnamese service centers, their shifts and a staff roster, so the
// API has something realistic to serve out of the box.
package seed

import (
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/carserv-vn/service-center/backend/internal/config"
	"github.com/carserv-vn/service-center/backend/internal/domain"
	"github.com/carserv-vn/service-center/backend/internal/repository"
	"github.com/carserv-vn/service-center/backend/internal/scheduler"
	"github.com/carserv-vn/service-center/backend/internal/timezone"
)

type employeeFixture struct {
	Email     string
	FirstName string
	LastName  string
	Phone     string
	Role      domain.Role
}

var employeeFixtures = []employeeFixture{
	{Email: "minh.nguyen@carserv.vn", FirstName: "Minh", LastName: "Nguyen", Phone: "0901234561", Role: domain.RoleStaff},
	{Email: "lan.tran@carserv.vn", FirstName: "Lan", LastName: "Tran", Phone: "0901234562", Role: domain.RoleStaff},
	{Email: "hung.le@carserv.vn", FirstName: "Hung", LastName: "Le", Phone: "0901234563", Role: domain.RoleTechnician},
	{Email: "thao.pham@carserv.vn", FirstName: "Thao", LastName: "Pham", Phone: "0901234564", Role: domain.RoleTechnician},
	{Email: "quan.hoang@carserv.vn", FirstName: "Quan", LastName: "Hoang", Phone: "0901234565", Role: domain.RoleTechnician},
	{Email: "vy.dang@carserv.vn", FirstName: "Vy", LastName: "Dang", Phone: "0901234566", Role: domain.RoleStaff},
}

var centerFixtures = []domain.ServiceCenter{
	{Name: "CarServ Quan 1", Address: "125 Hai Ba Trung, District 1, Ho Chi Minh City", Status: domain.CenterStatusOpen},
	{Name: "CarServ Thu Duc", Address: "50 Vo Van Ngan, Thu Duc City, Ho Chi Minh City", Status: domain.CenterStatusOpen},
	{Name: "CarServ Ha Noi", Address: "8 Lang Ha, Ba Dinh, Ha Noi", Status: domain.CenterStatusOpen},
}

type shiftFixture struct {
	Name        string
	StartTime   string
	EndTime     string
	RepeatDays  []int
	MaximumSlot int32
}

// every center gets the same three windows; the night shift runs
// overnight into the next day
var shiftFixtures = []shiftFixture{
	{Name: "Morning", StartTime: "08:00:00", EndTime: "12:00:00", RepeatDays: []int{1, 2, 3, 4, 5, 6}, MaximumSlot: 3},
	{Name: "Afternoon", StartTime: "13:00:00", EndTime: "18:00:00", RepeatDays: []int{1, 2, 3, 4, 5, 6}, MaximumSlot: 3},
	{Name: "Night", StartTime: "21:00:00", EndTime: "06:00:00", RepeatDays: []int{5, 6}, MaximumSlot: 2},
}

// SeedEmployees creates the fixture accounts with their employee
// profiles. All seeded accounts share the configured seed password.
func SeedEmployees(cfg *config.Config, repo *repository.Repository) int {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(cfg.Seed.Password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("unable to hash the seed password", slog.String("error", err.Error()))
		return 0
	}

	cnt := 0
	for _, fixture := range employeeFixtures {
		account := &domain.Account{
			Email:        fixture.Email,
			PasswordHash: string(passwordHash),
			Role:         fixture.Role,
		}
		employee := &domain.Employee{
			FirstName: fixture.FirstName,
			LastName:  fixture.LastName,
			Phone:     fixture.Phone,
		}
		if err := repo.CreateEmployeeAccount(account, employee); err != nil {
			slog.Error("unable to insert employee", slog.String("email", fixture.Email), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}

// SeedCenters creates the fixture service centers.
func SeedCenters(repo *repository.Repository) int {
	cnt := 0
	for _, fixture := range centerFixtures {
		center := fixture
		if err := repo.CreateServiceCenter(&center); err != nil {
			slog.Error("unable to insert service center", slog.String("name", fixture.Name), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}

// SeedShifts creates the fixture shifts for every existing center, with
// a two-week recurrence window starting today.
func SeedShifts(repo *repository.Repository) int {
	centers, err := repo.GetAllServiceCenters()
	if err != nil {
		slog.Error("unable to fetch service centers", slog.String("error", err.Error()))
		return 0
	}

	startDate := timezone.Today()
	end, _ := timezone.ParseDate(startDate)
	endDate := timezone.FormatDate(end.AddDate(0, 0, 13))

	cnt := 0
	for _, center := range centers {
		for _, fixture := range shiftFixtures {
			shift := &domain.Shift{
				CenterID:    center.ID,
				Name:        fixture.Name,
				StartTime:   fixture.StartTime,
				EndTime:     fixture.EndTime,
				StartDate:   &startDate,
				EndDate:     &endDate,
				RepeatDays:  fixture.RepeatDays,
				MaximumSlot: fixture.MaximumSlot,
				Status:      domain.ShiftStatusActive,
			}
			if err := repo.CreateShift(shift); err != nil {
				slog.Error("unable to insert shift", slog.String("center", center.Name), slog.String("name", fixture.Name), slog.String("error", err.Error()))
				continue
			}
			cnt++
		}
	}

	return cnt
}

// SeedAssignments spreads the schedulable employees across the centers
// round-robin with open-ended work-center assignments starting today.
func SeedAssignments(repo *repository.Repository) int {
	employees, err := repo.GetAllEmployees(nil)
	if err != nil {
		slog.Error("unable to fetch employees", slog.String("error", err.Error()))
		return 0
	}
	centers, err := repo.GetAllServiceCenters()
	if err != nil {
		slog.Error("unable to fetch service centers", slog.String("error", err.Error()))
		return 0
	}
	if len(centers) == 0 {
		slog.Error("no service centers to assign to, seed centers first")
		return 0
	}

	today := timezone.Today()
	cnt := 0
	next := 0
	for _, employee := range employees {
		if !employee.Role.Schedulable() {
			continue
		}
		assignment := &domain.WorkCenter{
			EmployeeID: employee.ID,
			CenterID:   centers[next%len(centers)].ID,
			StartDate:  today,
		}
		next++
		if err := repo.CreateWorkCenter(assignment); err != nil {
			slog.Error("unable to insert work-center assignment", slog.String("employee", employee.FullName()), slog.String("error", err.Error()))
			continue
		}
		cnt++
	}

	return cnt
}

// SeedSchedules expands every recurring shift and fills its dates with
// the employees assigned to the shift's center, up to the slot limit.
func SeedSchedules(repo *repository.Repository) int {
	centers, err := repo.GetAllServiceCenters()
	if err != nil {
		slog.Error("unable to fetch service centers", slog.String("error", err.Error()))
		return 0
	}

	cnt := 0
	for _, center := range centers {
		assignments, err := repo.ListWorkCenters(repository.WorkCenterFilter{CenterID: &center.ID})
		if err != nil {
			slog.Error("unable to fetch work-center assignments", slog.String("center", center.Name), slog.String("error", err.Error()))
			continue
		}
		if len(assignments) == 0 {
			continue
		}

		shifts, err := repo.GetShiftsByCenter(center.ID)
		if err != nil {
			slog.Error("unable to fetch shifts", slog.String("center", center.Name), slog.String("error", err.Error()))
			continue
		}

		for _, shift := range shifts {
			if !shift.Recurring() {
				continue
			}

			dates, err := scheduler.ExpandDates(*shift.StartDate, *shift.EndDate, shift.RepeatDays)
			if err != nil || len(dates) == 0 {
				continue
			}

			employeeIDs := make([]uuid.UUID, 0, len(assignments))
			for _, assignment := range assignments {
				if len(employeeIDs) == int(shift.MaximumSlot) {
					break
				}
				employeeIDs = append(employeeIDs, assignment.EmployeeID)
			}

			if _, err := repo.CreateWorkSchedules(shift, employeeIDs, dates); err != nil {
				slog.Error("unable to insert work schedules", slog.String("center", center.Name), slog.String("shift", shift.Name), slog.String("error", err.Error()))
				continue
			}
			cnt += len(employeeIDs) * len(dates)
		}
	}

	return cnt
}
