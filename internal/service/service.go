package service

import (
	"github.com/savichev/restofloor/internal/handlers/auth"
	"github.com/savichev/restofloor/internal/handlers/bills"
	"github.com/savichev/restofloor/internal/handlers/employees"
	"github.com/savichev/restofloor/internal/handlers/journal"
	"github.com/savichev/restofloor/internal/handlers/menu"
	"github.com/savichev/restofloor/internal/handlers/orders"
	"github.com/savichev/restofloor/internal/handlers/reports"
	"github.com/savichev/restofloor/internal/handlers/wallet"

	pkgauth "github.com/savichev/restofloor/pkg/auth"

	"github.com/savichev/restofloor/internal/repo"
	"github.com/savichev/restofloor/internal/service/authservice"
	"github.com/savichev/restofloor/internal/service/billservice"
	"github.com/savichev/restofloor/internal/service/dishservice"
	"github.com/savichev/restofloor/internal/service/journalservice"
	"github.com/savichev/restofloor/internal/service/orderservice"
	"github.com/savichev/restofloor/internal/service/reportservice"
	"github.com/savichev/restofloor/internal/service/walletservice"
)

type Services struct {
	AuthService     auth.Service
	EmployeeService employees.Service
	JournalService  journal.Service
	OrderService    orders.Service
	BillService     bills.Service
	WalletService   wallet.Service
	MenuService     menu.Service
	ReportService   reports.Service
}

// New wires the service layer. The events publisher may be nil; order
// creation then skips the kitchen feed.
func New(repo *repo.Repositories, events orderservice.Events) *Services {
	journalService := journalservice.New(repo.JournalRepo, repo.OrderRepo, repo.EmployeeRepo)
	billService := billservice.New(repo.BillRepo, journalService)
	orderService := orderservice.New(repo.OrderRepo, repo.DishRepo, journalService, events)
	walletService := walletservice.New(repo.WalletRepo)
	authService := authservice.New(repo.EmployeeRepo, walletService, &pkgauth.HashService{}, &pkgauth.JWTService{})
	dishService := dishservice.New(repo.DishRepo)
	reportService := reportservice.New(repo.ReportRepo, repo.EmployeeRepo)

	return &Services{
		AuthService:     authService,
		EmployeeService: authService,
		JournalService:  journalService,
		OrderService:    orderService,
		BillService:     billService,
		WalletService:   walletService,
		MenuService:     dishService,
		ReportService:   reportService,
	}
}
