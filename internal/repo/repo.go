package repo

import (
	"github.com/savichev/restofloor/internal/pg"
	billrepo "github.com/savichev/restofloor/internal/repo/bill-repo"
	dishrepo "github.com/savichev/restofloor/internal/repo/dish-repo"
	employeerepo "github.com/savichev/restofloor/internal/repo/employee-repo"
	journalrepo "github.com/savichev/restofloor/internal/repo/journal-repo"
	orderrepo "github.com/savichev/restofloor/internal/repo/order-repo"
	reportrepo "github.com/savichev/restofloor/internal/repo/report-repo"
	walletrepo "github.com/savichev/restofloor/internal/repo/wallet-repo"
)

type Repositories struct {
	JournalRepo  *journalrepo.Repository
	OrderRepo    *orderrepo.Repository
	BillRepo     *billrepo.Repository
	WalletRepo   *walletrepo.Repository
	DishRepo     *dishrepo.Repository
	EmployeeRepo *employeerepo.Repository
	ReportRepo   *reportrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		JournalRepo:  journalrepo.New(conn, txManager),
		OrderRepo:    orderrepo.New(conn, txManager),
		BillRepo:     billrepo.New(conn, txManager),
		WalletRepo:   walletrepo.New(conn, txManager),
		DishRepo:     dishrepo.New(conn),
		EmployeeRepo: employeerepo.New(conn),
		ReportRepo:   reportrepo.New(conn),
	}
}
