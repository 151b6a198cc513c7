package handlers

import (
	"net/http"

	_ "github.com/savichev/restofloor/docs"
	authhandlers "github.com/savichev/restofloor/internal/handlers/auth"
	billhandlers "github.com/savichev/restofloor/internal/handlers/bills"
	employeehandlers "github.com/savichev/restofloor/internal/handlers/employees"
	journalhandlers "github.com/savichev/restofloor/internal/handlers/journal"
	menuhandlers "github.com/savichev/restofloor/internal/handlers/menu"
	orderhandlers "github.com/savichev/restofloor/internal/handlers/orders"
	reporthandlers "github.com/savichev/restofloor/internal/handlers/reports"
	wallethandlers "github.com/savichev/restofloor/internal/handlers/wallet"
	"github.com/savichev/restofloor/internal/service"
	"github.com/savichev/restofloor/pkg/auth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type JournalHandler interface {
	MakeRecord(w http.ResponseWriter, r *http.Request)
	GetTableStatus(w http.ResponseWriter, r *http.Request)
	GetAllStatuses(w http.ResponseWriter, r *http.Request)
	GetOwner(w http.ResponseWriter, r *http.Request)
	Reassign(w http.ResponseWriter, r *http.Request)
	GetEntries(w http.ResponseWriter, r *http.Request)
}

type OrderHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	ChangeStatus(w http.ResponseWriter, r *http.Request)
	Modify(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	GetAll(w http.ResponseWriter, r *http.Request)
	GetForTable(w http.ResponseWriter, r *http.Request)
}

type BillHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Pay(w http.ResponseWriter, r *http.Request)
}

type WalletHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
}

type MenuHandler interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	ChangeCost(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandler interface {
	GetAll(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ReportHandler interface {
	Main(w http.ResponseWriter, r *http.Request)
	Employee(w http.ResponseWriter, r *http.Request)
	Employees(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	JournalHandler  JournalHandler
	OrderHandler    OrderHandler
	BillHandler     BillHandler
	WalletHandler   WalletHandler
	MenuHandler     MenuHandler
	EmployeeHandler EmployeeHandler
	ReportHandler   ReportHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		JournalHandler:  journalhandlers.New(s.JournalService),
		OrderHandler:    orderhandlers.New(s.OrderService),
		BillHandler:     billhandlers.New(s.BillService, s.JournalService),
		WalletHandler:   wallethandlers.New(s.WalletService),
		MenuHandler:     menuhandlers.New(s.MenuService),
		EmployeeHandler: employeehandlers.New(s.EmployeeService),
		ReportHandler:   reporthandlers.New(s.ReportService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Post("/auth/register", h.AuthHandler.Register)

			r.Route("/journal", func(r chi.Router) {
				r.Post("/record", h.JournalHandler.MakeRecord)
				r.Get("/status/{tableNumber}", h.JournalHandler.GetTableStatus)
				r.Get("/statuses", h.JournalHandler.GetAllStatuses)
				r.Get("/owner/{tableNumber}", h.JournalHandler.GetOwner)
				r.Put("/owner", h.JournalHandler.Reassign)
				r.Get("/entries", h.JournalHandler.GetEntries)
			})
			r.Route("/orders", func(r chi.Router) {
				r.Post("/", h.OrderHandler.Create)
				r.Get("/", h.OrderHandler.GetAll)
				r.Get("/table/{tableNumber}", h.OrderHandler.GetForTable)
				r.Get("/{id}", h.OrderHandler.Get)
				r.Patch("/{id}", h.OrderHandler.Modify)
				r.Patch("/{id}/status", h.OrderHandler.ChangeStatus)
				r.Delete("/{id}", h.OrderHandler.Delete)
			})
			r.Route("/bills", func(r chi.Router) {
				r.Post("/", h.BillHandler.Create)
				r.Get("/{id}", h.BillHandler.Get)
				r.Post("/{id}/pay", h.BillHandler.Pay)
			})
			r.Route("/wallets", func(r chi.Router) {
				r.Get("/{employeeID}", h.WalletHandler.GetBalance)
				r.Post("/{employeeID}/withdraw", h.WalletHandler.Withdraw)
			})
			r.Route("/dishes", func(r chi.Router) {
				r.Get("/", h.MenuHandler.GetAll)
				r.Post("/", h.MenuHandler.Create)
				r.Get("/{id}", h.MenuHandler.Get)
				r.Patch("/{id}/cost", h.MenuHandler.ChangeCost)
				r.Delete("/{id}", h.MenuHandler.Delete)
			})
			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.EmployeeHandler.GetAll)
				r.Get("/{id}", h.EmployeeHandler.Get)
				r.Delete("/{id}", h.EmployeeHandler.Delete)
			})
			r.Route("/reports", func(r chi.Router) {
				r.Get("/main", h.ReportHandler.Main)
				r.Get("/employees", h.ReportHandler.Employees)
				r.Get("/employees/{id}", h.ReportHandler.Employee)
			})
		})
	})

	return r
}
