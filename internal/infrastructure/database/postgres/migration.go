// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"
	"github.com/your-org/motoparts-backend/internal/domain/borrower"
	"github.com/your-org/motoparts-backend/internal/domain/catalog"
	"github.com/your-org/motoparts-backend/internal/domain/inventory"
	"github.com/your-org/motoparts-backend/internal/domain/order"
	"github.com/your-org/motoparts-backend/internal/domain/transaction"
	"gorm.io/gorm"
)

// Migration handles database migrations
type Migration struct {
	db *gorm.DB
}

// NewMigration creates a new migration instance
func NewMigration(db *gorm.DB) *Migration {
	return &Migration{
		db: db,
	}
}

// RunAutoMigrations runs GORM auto-migrations for all models
func (m *Migration) RunAutoMigrations() error {
	log.Println("🔄 Running database auto-migrations...")

	// Define all models that need migration in dependency order
	models := []interface{}{
		// Catalog domain - Base tables
		&catalog.Company{},
		&catalog.BikeModel{},
		&catalog.Product{},

		// Inventory domain
		&inventory.Stock{},
		&inventory.StockMovement{},

		// Borrower domain
		&borrower.Borrower{},

		// Order domain - Dependent tables
		&order.Order{},
		&order.Item{},
		&order.StatusHistory{},

		// Transaction domain
		&transaction.Transaction{},
	}

	// Run auto-migration for each model
	for _, model := range models {
		log.Printf("Migrating model: %T", model)
		if err := m.db.AutoMigrate(model); err != nil {
			return fmt.Errorf("failed to migrate model %T: %w", model, err)
		}
	}

	log.Println("✅ Database auto-migrations completed successfully")
	return nil
}

// CreateIndexes creates additional indexes for better performance
func (m *Migration) CreateIndexes() error {
	log.Println("🔄 Creating additional database indexes...")

	indexes := []string{
		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_company ON products(company_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_bike_model ON products(bike_model_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_part_no ON products(part_no)",
		"CREATE INDEX IF NOT EXISTS idx_products_model_no ON products(model_no)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Stock indexes
		"CREATE INDEX IF NOT EXISTS idx_stocks_product ON stocks(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_stock ON stock_movements(stock_id, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_stock_movements_reason ON stock_movements(reason)",

		// Order indexes
		"CREATE INDEX IF NOT EXISTS idx_orders_status_created ON orders(status, created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_orders_borrower ON orders(borrower_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_order ON order_items(order_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_items_product ON order_items(product_id)",
		"CREATE INDEX IF NOT EXISTS idx_order_status_histories_order ON order_status_histories(order_id, created_at DESC)",

		// Borrower indexes
		"CREATE INDEX IF NOT EXISTS idx_borrowers_phone ON borrowers(phone)",
		"CREATE INDEX IF NOT EXISTS idx_borrowers_current_due ON borrowers(current_due DESC)",

		// Transaction indexes
		"CREATE INDEX IF NOT EXISTS idx_transactions_borrower_date ON transactions(borrower_id, tx_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_company_date ON transactions(company_id, tx_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_transactions_kind ON transactions(kind)",
	}

	successCount := 0
	failCount := 0

	for _, indexSQL := range indexes {
		if err := m.db.Exec(indexSQL).Error; err != nil {
			log.Printf("⚠️ Failed to create index: %v", err)
			failCount++
		} else {
			successCount++
		}
	}

	log.Printf("✅ Created %d indexes successfully (%d failed)", successCount, failCount)
	return nil
}

// SeedInitialData inserts initial data into the database
func (m *Migration) SeedInitialData() error {
	log.Println("🌱 Seeding initial data...")

	if err := m.seedCompanies(); err != nil {
		return fmt.Errorf("failed to seed companies: %w", err)
	}

	if err := m.seedBikeModels(); err != nil {
		return fmt.Errorf("failed to seed bike models: %w", err)
	}

	if err := m.seedTestProducts(); err != nil {
		return fmt.Errorf("failed to seed test products: %w", err)
	}

	log.Println("✅ Initial data seeded successfully")
	return nil
}

// seedCompanies creates the default parts manufacturers
func (m *Migration) seedCompanies() error {
	log.Println("🏷️ Seeding companies...")

	companies := []catalog.Company{
		{CompanyName: "Honda"},
		{CompanyName: "Yamaha"},
		{CompanyName: "Suzuki"},
		{CompanyName: "TVS"},
		{CompanyName: "Bajaj"},
		{CompanyName: "Hero"},
	}

	for _, company := range companies {
		var existing catalog.Company
		err := m.db.Where("company_name = ?", company.CompanyName).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := m.db.Create(&company).Error; err != nil {
				return fmt.Errorf("failed to create company %s: %w", company.CompanyName, err)
			}
			log.Printf("Created company: %s", company.CompanyName)
		}
	}

	return nil
}

// seedBikeModels creates a few common bike models per manufacturer
func (m *Migration) seedBikeModels() error {
	log.Println("🏍️ Seeding bike models...")

	modelsByCompany := map[string][]string{
		"Honda":  {"CB Shine", "Hornet 2.0", "CBR 150R"},
		"Yamaha": {"FZS V3", "R15 V4", "Saluto"},
		"Suzuki": {"Gixxer", "GSX-R150"},
		"TVS":    {"Apache RTR 160", "Metro Plus"},
		"Bajaj":  {"Pulsar 150", "Discover 125"},
		"Hero":   {"Splendor Plus", "Glamour"},
	}

	for companyName, models := range modelsByCompany {
		var company catalog.Company
		if err := m.db.Where("company_name = ?", companyName).First(&company).Error; err != nil {
			continue
		}
		for _, modelName := range models {
			var existing catalog.BikeModel
			err := m.db.Where("name = ? AND company_id = ?", modelName, company.ID).
				First(&existing).Error
			if err == gorm.ErrRecordNotFound {
				bikeModel := catalog.BikeModel{
					Name:      modelName,
					CompanyID: company.ID,
				}
				if err := m.db.Create(&bikeModel).Error; err != nil {
					return fmt.Errorf("failed to create bike model %s: %w", modelName, err)
				}
			}
		}
	}

	return nil
}

// seedTestProducts creates sample products with stock for development
func (m *Migration) seedTestProducts() error {
	var count int64
	if err := m.db.Model(&catalog.Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("📦 Products already exist, skipping product seed")
		return nil
	}

	log.Println("📦 Seeding test products...")

	var honda catalog.Company
	if err := m.db.Where("company_name = ?", "Honda").First(&honda).Error; err != nil {
		return err
	}

	price := func(s string) *decimal.Decimal {
		d := decimal.RequireFromString(s)
		return &d
	}

	products := []struct {
		product  catalog.Product
		quantity int
	}{
		{
			product: catalog.Product{
				Name:         "Air Filter",
				PartNo:       "17210-KVB-900",
				ProductCode:  "HON-AF-001",
				ModelNo:      "CB Shine",
				CompanyID:    honda.ID,
				Price:        price("350.00"),
				SellingPrice: price("320.00"),
				MRP:          price("400.00"),
			},
			quantity: 40,
		},
		{
			product: catalog.Product{
				Name:        "Brake Shoe Set",
				PartNo:      "06430-KWW-740",
				ProductCode: "HON-BS-002",
				ModelNo:     "CB Shine",
				CompanyID:   honda.ID,
				Price:       price("520.00"),
				MRP:         price("580.00"),
			},
			quantity: 25,
		},
		{
			product: catalog.Product{
				Name:        "Clutch Cable",
				PartNo:      "22870-KTE-911",
				ProductCode: "HON-CC-003",
				ModelNo:     "Hornet 2.0",
				CompanyID:   honda.ID,
				MRP:         price("260.00"),
			},
			quantity: 60,
		},
	}

	for _, entry := range products {
		if err := m.db.Create(&entry.product).Error; err != nil {
			return fmt.Errorf("failed to create product %s: %w", entry.product.Name, err)
		}
		stock := inventory.Stock{
			ProductID:            entry.product.ID,
			PartNo:               entry.product.PartNo,
			PurchaseQuantity:     entry.quantity,
			CurrentStockQuantity: entry.quantity,
			PurchasePrice:        decimal.RequireFromString("200.00"),
			SalePrice:            decimal.RequireFromString("300.00"),
		}
		if err := m.db.Create(&stock).Error; err != nil {
			return fmt.Errorf("failed to create stock for %s: %w", entry.product.Name, err)
		}
	}

	log.Printf("Created %d test products with stock", len(products))
	return nil
}

// GetTableInfo logs a per-table record count summary
func (m *Migration) GetTableInfo() error {
	var tables []string

	if err := m.db.Raw("SELECT tablename FROM pg_tables WHERE schemaname = 'public' ORDER BY tablename").Scan(&tables).Error; err != nil {
		return err
	}

	log.Println("📊 Database Tables Information:")
	log.Println("================================")

	totalRecords := int64(0)
	for _, table := range tables {
		var count int64
		m.db.Table(table).Count(&count)
		totalRecords += count

		status := "✅"
		if count == 0 {
			status = "📭"
		}

		log.Printf("%s %-25s | %d records", status, table, count)
	}

	log.Println("================================")
	log.Printf("📈 Total records across all tables: %d", totalRecords)
	log.Printf("🗂️ Total tables: %d", len(tables))

	return nil
}
