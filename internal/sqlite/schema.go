package sqlite

// Schema DDL. Money columns hold integer cents so SQL aggregation stays
// exact; timestamps are RFC3339 UTC text. The stock CHECK backs the
// conditional updates that guard it: if a bug ever slips past the guard,
// the statement fails instead of persisting a negative count.
const (
	createProducts = `CREATE TABLE IF NOT EXISTS products (
    product_id TEXT PRIMARY KEY,
    barcode TEXT NOT NULL UNIQUE,
    name TEXT NOT NULL,
    price_cents INTEGER NOT NULL,
    stock INTEGER NOT NULL CHECK (stock >= 0),
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createSales = `CREATE TABLE IF NOT EXISTS sales (
    sale_id TEXT PRIMARY KEY,
    sold_at TEXT NOT NULL,
    total_cents INTEGER NOT NULL
);`

	// sale_items carries no foreign key to products: lines keep their
	// product reference even after the product is deleted.
	createSaleItems = `CREATE TABLE IF NOT EXISTS sale_items (
    sale_id TEXT NOT NULL,
    product_id TEXT NOT NULL,
    quantity INTEGER NOT NULL,
    line_total_cents INTEGER NOT NULL,
    FOREIGN KEY (sale_id) REFERENCES sales(sale_id)
);`
)

// Index DDL for common queries.
const (
	idxProductsName  = `CREATE INDEX IF NOT EXISTS idx_products_name ON products(name);`
	idxProductsStock = `CREATE INDEX IF NOT EXISTS idx_products_stock ON products(stock);`
	idxSalesSoldAt   = `CREATE INDEX IF NOT EXISTS idx_sales_sold_at ON sales(sold_at);`
	idxSaleItemsSale = `CREATE INDEX IF NOT EXISTS idx_sale_items_sale ON sale_items(sale_id);`
)

// schemaDDL lists all CREATE TABLE statements in dependency order.
var schemaDDL = []string{
	createProducts,
	createSales,
	createSaleItems,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxProductsName,
	idxProductsStock,
	idxSalesSoldAt,
	idxSaleItemsSale,
}
