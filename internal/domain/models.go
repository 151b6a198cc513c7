package domain

import "time"

type TableStatus string

const (
	TableFree     TableStatus = "free"
	TableOccupied TableStatus = "occupied"
	TableNotPaid  TableStatus = "not_paid"
	TablePaid     TableStatus = "paid"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableFree, TableOccupied, TableNotPaid, TablePaid:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderAccepted  OrderStatus = "accepted"
	OrderCooked    OrderStatus = "cooked"
	OrderDelivered OrderStatus = "delivered"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderAccepted, OrderCooked, OrderDelivered:
		return true
	}
	return false
}

type BillStatus string

const (
	BillOpen BillStatus = "open"
	BillPaid BillStatus = "paid"
)

type Position string

const (
	PositionWaiter Position = "waiter"
	PositionCook   Position = "cook"
	PositionBarman Position = "barman"
	PositionAdmin  Position = "admin"
)

func (p Position) Valid() bool {
	switch p {
	case PositionWaiter, PositionCook, PositionBarman, PositionAdmin:
		return true
	}
	return false
}

// TableNumber is the closed set of physical tables on the floor.
type TableNumber string

const (
	Table1  TableNumber = "table_1"
	Table2  TableNumber = "table_2"
	Table3  TableNumber = "table_3"
	Table4  TableNumber = "table_4"
	Table5  TableNumber = "table_5"
	Table6  TableNumber = "table_6"
	Table7  TableNumber = "table_7"
	Table8  TableNumber = "table_8"
	Table9  TableNumber = "table_9"
	Table10 TableNumber = "table_10"
)

func TableNumbers() []TableNumber {
	return []TableNumber{
		Table1, Table2, Table3, Table4, Table5,
		Table6, Table7, Table8, Table9, Table10,
	}
}

func (t TableNumber) Valid() bool {
	for _, known := range TableNumbers() {
		if t == known {
			return true
		}
	}
	return false
}

// JournalEntry is one immutable record of a table status change. The current
// status of a table is the status of its latest entry.
type JournalEntry struct {
	ID          int         `db:"id"`
	TableNumber TableNumber `db:"table_number"`
	TableStatus TableStatus `db:"table_status"`
	EmployeeID  int         `db:"id_employee"`
	Time        time.Time   `db:"time"`
}

type Order struct {
	ID             int         `db:"id"`
	JournalEntryID int         `db:"id_journal_entry"`
	DishID         int         `db:"id_dish"`
	GuestNumber    int16       `db:"guest_number"`
	Status         OrderStatus `db:"order_status"`
	Time           time.Time   `db:"time"`
}

type Bill struct {
	ID          int        `db:"id"`
	Sum         float64    `db:"sum"`
	GuestNumber int16      `db:"guest_number"`
	Status      BillStatus `db:"bill_status"`
	Time        time.Time  `db:"time"`
}

type Wallet struct {
	ID         int     `db:"id"`
	EmployeeID int     `db:"id_employee"`
	Balance    float64 `db:"balance"`
}

type Employee struct {
	ID       int      `db:"id"`
	Name     string   `db:"name"`
	Position Position `db:"position"`
	CodeHash string   `db:"code_hash"`
}

type Dish struct {
	ID        int     `db:"id"`
	Name      string  `db:"name"`
	Cost      float64 `db:"cost"`
	PrimeCost float64 `db:"prime_cost"`
}

// Feedback rows are written by the guest-facing surface and only read here,
// as report inputs.
type Feedback struct {
	ID             int       `db:"id"`
	JournalEntryID int       `db:"id_journal_entry"`
	Rating         int       `db:"rating"`
	Comment        string    `db:"comment"`
	Time           time.Time `db:"time"`
}
