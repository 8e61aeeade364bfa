package sales

import "time"

// Sale represents one recorded product sale. Rows are only ever created by
// the create-sale flow; this service never updates or deletes them, and
// TotalRevenue is frozen at creation time even if the catalog price changes
// later.
type Sale struct {
	ID           int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       int64     `json:"user_id"`
	ProductID    int64     `json:"product_id"`
	QuantitySold int64     `json:"quantity_sold"`
	TotalRevenue float64   `json:"total_revenue"`
	SaleDate     time.Time `json:"sale_date"`
}
