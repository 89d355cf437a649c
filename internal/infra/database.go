package infra

import (
	"fmt"

	"github.com/jjsecurevpn-vpn/SistemaPosReact/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies the idempotent SQL patches that
// AutoMigrate cannot express (the sale-number sequence, partial indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		// Constraints are owned here, not inferred from struct associations.
		// Several delete flows are deliberately non-referential: products stay
		// deletable while historical sale lines reference them, and removing a
		// sale's ledger entry cascades in application code inside one
		// transaction. Auto-generated FKs would veto both.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by the integration test setup,
// which points it at a throwaway container database.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Usuario{},
		&model.Producto{},
		&model.Cliente{},
		&model.Venta{},
		&model.VentaProducto{},
		&model.VentaFiada{},
		&model.PagoFiado{},
		&model.MovimientoCaja{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that GORM cannot generate. Each
// statement uses IF NOT EXISTS semantics so re-running on an already-patched
// database is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Human-facing correlative sale number ("Venta #N"). Allocated with
		// nextval() inside the sale transaction, separate from the uuid PK.
		`CREATE SEQUENCE IF NOT EXISTS ventas_numero_seq START 1`,

		// The exposure query filters unpaid debts constantly; a partial index
		// keeps it cheap as paid history accumulates.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ventas_fiadas_impagas') THEN
		    CREATE INDEX idx_ventas_fiadas_impagas
		        ON ventas_fiadas (cliente_id)
		        WHERE estado <> 'pagada';
		  END IF;
		END $$`,

		// Due-date sweep scans pending debts with a due date in the past.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_ventas_fiadas_vencimiento') THEN
		    CREATE INDEX idx_ventas_fiadas_vencimiento
		        ON ventas_fiadas (fecha_vencimiento)
		        WHERE estado = 'pendiente' AND fecha_vencimiento IS NOT NULL;
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
