package catalog

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the catalog database, bootstraps the schema and seeds the
// demo catalog when empty. The cart never writes here; after the one-time
// load in NewService this database is effectively read-only.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	if err := ensureSchema(db); err != nil {
		return nil, err
	}
	if err := seedIfEmpty(db); err != nil {
		return nil, err
	}
	return db, nil
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL,
  price NUMERIC NOT NULL CHECK (price >= 0),
  category TEXT NOT NULL,
  image TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_products_category ON products(category);
`
	_, err := db.Exec(schema)
	return err
}

func seedIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo catalog")

	tx := db.MustBegin()
	tx.MustExec(`INSERT INTO products(id,name,price,category,image) VALUES
	  (1,'Chang Beer',50,'Drinks','media/products/chang.jpg'),
	  (2,'Singha Beer',70,'Drinks','media/products/singha.jpg'),
	  (3,'Leo Beer',50,'Drinks','media/products/leo.jpg'),
	  (4,'Heineken',40,'Drinks','media/products/heineken.jpg'),
	  (5,'Coke',35,'Drinks','media/products/coke.jpg'),
	  (6,'French Fries',50,'Food','media/products/fries.jpg'),
	  (7,'Basil Pork Stir-Fry',50,'Food','media/products/kaprao.jpg'),
	  (8,'Sour Pork Ribs',50,'Food','media/products/naem.jpg'),
	  (9,'Fried Chicken Knuckles',45,'Food','media/products/knuckles.jpg')`)
	return tx.Commit()
}
