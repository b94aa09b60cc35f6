package database

import (
	"fmt"

	"gorm.io/gorm"
)

// Migrate applies the idempotent raw SQL pass on top of AutoMigrate:
// - Money column types (NUMERIC(12,2))
// - Composite/helper indexes
// - Basic CHECK constraints (non-negative money, positive payments)
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// --- Enforce money columns as NUMERIC(12,2) (idempotent ALTERs) ---
		alters := []string{
			`ALTER TABLE invoices             ALTER COLUMN subtotal_amount TYPE numeric(12,2)`,
			`ALTER TABLE invoices             ALTER COLUMN tax_amount      TYPE numeric(12,2)`,
			`ALTER TABLE invoices             ALTER COLUMN discount_amount TYPE numeric(12,2)`,
			`ALTER TABLE invoices             ALTER COLUMN total_amount    TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items        ALTER COLUMN unit_price      TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items        ALTER COLUMN amount          TYPE numeric(12,2)`,
			`ALTER TABLE invoice_items        ALTER COLUMN tax_amount      TYPE numeric(12,2)`,
			`ALTER TABLE estimates            ALTER COLUMN subtotal_amount TYPE numeric(12,2)`,
			`ALTER TABLE estimates            ALTER COLUMN total_amount    TYPE numeric(12,2)`,
			`ALTER TABLE estimate_items       ALTER COLUMN unit_price      TYPE numeric(12,2)`,
			`ALTER TABLE estimate_items       ALTER COLUMN amount          TYPE numeric(12,2)`,
			`ALTER TABLE payment_transactions ALTER COLUMN amount          TYPE numeric(12,2)`,
		}
		for _, stmt := range alters {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("money type migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Composite / helpful indexes (idempotent) ---
		indexes := []string{
			`CREATE INDEX IF NOT EXISTS idx_invoices_company_status ON invoices (company_id, status)`,
			`CREATE INDEX IF NOT EXISTS idx_invoices_company_issued ON invoices (company_id, date_issued)`,
			`CREATE INDEX IF NOT EXISTS idx_payments_company_invoice ON payment_transactions (company_id, invoice_id)`,
			`CREATE INDEX IF NOT EXISTS idx_estimates_company_status ON estimates (company_id, status)`,
		}
		for _, stmt := range indexes {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("index migration failed on: %s - %w", stmt, err)
			}
		}

		// --- Basic CHECK constraints (idempotent) ---
		checks := []string{
			// Payments must be strictly positive
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'payment_transactions'::regclass
					  AND conname  = 'chk_payments_amount_positive'
				) THEN
					ALTER TABLE payment_transactions
					ADD CONSTRAINT chk_payments_amount_positive
					CHECK (amount > 0);
				END IF;
			END $$;`,
			// Invoice totals are non-negative
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoices'::regclass
					  AND conname  = 'chk_invoices_total_nonneg'
				) THEN
					ALTER TABLE invoices
					ADD CONSTRAINT chk_invoices_total_nonneg
					CHECK (total_amount >= 0);
				END IF;
			END $$;`,
			// Item unit price non-negative
			`DO $$
			BEGIN
				IF NOT EXISTS (
					SELECT 1 FROM pg_constraint
					WHERE conrelid = 'invoice_items'::regclass
					  AND conname  = 'chk_invoice_items_unit_price_nonneg'
				) THEN
					ALTER TABLE invoice_items
					ADD CONSTRAINT chk_invoice_items_unit_price_nonneg
					CHECK (unit_price >= 0);
				END IF;
			END $$;`,
		}
		for _, stmt := range checks {
			if err := tx.Exec(stmt).Error; err != nil {
				return fmt.Errorf("check constraint migration failed: %w", err)
			}
		}

		return nil
	})
}
