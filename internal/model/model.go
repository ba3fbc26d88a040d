package model

import "strings"

// Role gates navigation and the API operations a signed-in user may call.
// The server is the real authorization boundary; the client only mirrors it.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleCafeOwner Role = "cafeowner"
	RoleChef      Role = "chef"
	RoleWaiter    Role = "waiter"
	RoleCustomer  Role = "customer"
)

// ParseRole normalizes a server-supplied role string. Anything unknown is
// treated as a plain customer, matching the server's default role.
func ParseRole(s string) Role {
	switch Role(strings.ToLower(s)) {
	case RoleAdmin:
		return RoleAdmin
	case RoleCafeOwner:
		return RoleCafeOwner
	case RoleChef:
		return RoleChef
	case RoleWaiter:
		return RoleWaiter
	default:
		return RoleCustomer
	}
}

type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	RoleType string `json:"roleType"`
	Active   bool   `json:"active,omitempty"`
}

// Role returns the typed role of the user, defaulting to customer.
func (u *User) Role() Role {
	if u == nil {
		return ""
	}
	return ParseRole(u.RoleType)
}

// Session is the client-held token plus cached user record. It is the only
// durable client state.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableBooked    TableStatus = "booked"
)

type Table struct {
	ID          int         `json:"id"`
	TableNumber string      `json:"tableNumber"`
	Capacity    int         `json:"capacity"`
	Status      TableStatus `json:"status"`
}

// TableList is the owner tables response, which carries status counts
// alongside the rows.
type TableList struct {
	Tables         []Table `json:"tables"`
	AvailableCount int     `json:"availableCount"`
	BookedCount    int     `json:"bookedCount"`
	TotalCount     int     `json:"totalCount"`
}

type Category string

const (
	CategoryBeverage Category = "beverage"
	CategoryFood     Category = "food"
	CategoryDessert  Category = "dessert"
	CategorySnack    Category = "snack"
)

type MenuItem struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Available   bool     `json:"available"`
}

type Cafe struct {
	ID         int        `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Tables     []Table    `json:"tables,omitempty"`
	Menu       []MenuItem `json:"menu,omitempty"`
	TableCount int        `json:"tableCount,omitempty"`
}

type Booking struct {
	ID          int    `json:"id"`
	CafeID      int    `json:"cafeId"`
	TableID     int    `json:"tableId"`
	CafeName    string `json:"cafeName,omitempty"`
	TableNumber string `json:"tableNumber,omitempty"`
	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
	Status      string `json:"status"`
}

type OrderItem struct {
	MenuItemID int     `json:"menuItemId"`
	ItemName   string  `json:"itemName"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unitPrice"`
	Subtotal   float64 `json:"subtotal"`
}

type Order struct {
	ID          int         `json:"id"`
	CafeID      int         `json:"cafeId"`
	TableID     int         `json:"tableId"`
	BookingID   int         `json:"bookingId,omitempty"`
	UserName    string      `json:"userName,omitempty"`
	TableNumber string      `json:"tableNumber,omitempty"`
	OrderDate   string      `json:"orderDate"`
	OrderTime   string      `json:"orderTime"`
	Status      OrderStatus `json:"status"`
	Items       []OrderItem `json:"items"`
	TotalAmount float64     `json:"totalAmount"`
}

// Profile is the self-profile record. The academic and work history arrays
// are only populated for customer accounts.
type Profile struct {
	ID                  int              `json:"id"`
	Name                string           `json:"name"`
	Email               string           `json:"email"`
	RoleType            string           `json:"roleType"`
	FirstName           string           `json:"firstName,omitempty"`
	LastName            string           `json:"lastName,omitempty"`
	DOB                 string           `json:"dob,omitempty"`
	Gender              string           `json:"gender,omitempty"`
	Street              string           `json:"street,omitempty"`
	PlotNo              string           `json:"plotNo,omitempty"`
	City                string           `json:"city,omitempty"`
	Pincode             string           `json:"pincode,omitempty"`
	AcademicInformation []AcademicRecord `json:"academicInformation,omitempty"`
	WorkExperience      []WorkRecord     `json:"workExperience,omitempty"`
}

type AcademicRecord struct {
	Degree         string `json:"degree"`
	Institution    string `json:"institution"`
	CompletionYear string `json:"completionYear"`
}

type WorkRecord struct {
	Company     string `json:"company"`
	Role        string `json:"role"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type DashboardSummary struct {
	TotalCustomers int            `json:"totalCustomers"`
	TotalCafes     int            `json:"totalCafes"`
	TotalOrders    int            `json:"totalOrders"`
	TotalSales     float64        `json:"totalSales"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
}

type CafeLocation struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

type DailyStat struct {
	Date   string  `json:"date"`
	Orders int     `json:"orders"`
	Sales  float64 `json:"sales"`
}

type DailyStats struct {
	Period     string      `json:"period"`
	DailyStats []DailyStat `json:"dailyStats"`
}
