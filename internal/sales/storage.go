package sales

import (
	"sort"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Storage is the main interface for our sales storage layer. Sales are
// append-only: inserted once and listed, never updated or deleted.
type Storage interface {
	Insert(sale *Sale) error
	GetAll() ([]*Sale, error)
}

// GormStorage persists sales in a SQLite database through GORM.
type GormStorage struct {
	db *gorm.DB
}

// NewGormStorage opens (or creates) the SQLite database at dbPath and
// migrates the sales table.
func NewGormStorage(dbPath string) (*GormStorage, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&Sale{}); err != nil {
		return nil, err
	}
	return &GormStorage{db: db}, nil
}

// Insert writes a sale row and fills in its assigned id.
func (g *GormStorage) Insert(sale *Sale) error {
	return g.db.Create(sale).Error
}

// GetAll retrieves every sale, newest sale date first.
func (g *GormStorage) GetAll() ([]*Sale, error) {
	sales := make([]*Sale, 0)
	if err := g.db.Order("sale_date DESC").Find(&sales).Error; err != nil {
		return nil, err
	}
	return sales, nil
}

// LocalStorage provides an in-memory implementation for storing sales.
type LocalStorage struct {
	nextID int64
	sales  []*Sale
}

// NewLocalStorage instantiates a new LocalStorage for sales.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{nextID: 1}
}

// Insert stores a sale and assigns it the next id.
func (l *LocalStorage) Insert(sale *Sale) error {
	sale.ID = l.nextID
	l.nextID++
	l.sales = append(l.sales, sale)
	return nil
}

// GetAll retrieves all sales, newest sale date first.
func (l *LocalStorage) GetAll() ([]*Sale, error) {
	out := make([]*Sale, len(l.sales))
	copy(out, l.sales)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SaleDate.After(out[j].SaleDate)
	})
	return out, nil
}
