package models

type User struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username" validate:"required"`
	Password string `json:"-" validate:"required"`
}

type Item struct {
	ItemID      int    `json:"item_id"`
	Name        string `json:"name" validate:"required"`
	ImagePath   string `json:"image" validate:"required"`
	Description string `json:"description"`
	Quantity    int    `json:"quantity"`
}

type Supplier struct {
	SupplierID int    `json:"supplier_id"`
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
}

type Report struct {
	ReportID int     `json:"report_id"`
	Date     Date    `json:"date"`
	Income   float64 `json:"income"`
	Outcome  float64 `json:"outcome"`
}
