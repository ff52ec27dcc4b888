package main

import (
	"fmt"
	"log"
	"time"

	"github.com/16SULPHUR/new-vh-ecom/config"
	"github.com/joho/godotenv"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main provisions the hosted platform: storefront tables, the generated
// remote procedures the backend calls, and a small demo catalog.
// Usage: go run cmd/seed/main.go
// This is a standalone CLI tool, not part of the main application.
func main() {
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("VH ECOM - Storefront Platform Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to store database")

	steps := []struct {
		name string
		sql  string
	}{
		{"tables", schemaSQL},
		{"cart procedures", cartProceduresSQL},
		{"catalog procedures", catalogProceduresSQL},
		{"demo catalog", demoDataSQL},
	}

	for _, step := range steps {
		// DDL against a cold Neon instance can blow past the request timeout
		// the server uses, so each step gets its own longer window.
		ctx, cancel := config.WithCustomTimeout(2 * time.Minute)
		err := config.StoreGorm.WithContext(ctx).Exec(step.sql).Error
		cancel()
		if err != nil {
			log.Fatalf("❌ Failed to create %s: %v", step.name, err)
		}
		log.Printf("✓ Created %s", step.name)
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Platform Provisioned Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the storefront server: go run main.go")
	fmt.Println("2. Browse the catalog at GET /api/v1/store/products/latest")
	fmt.Println("3. Add to bag with PUT /api/v1/store/bag/items")
	fmt.Println()
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS categories (
	id    bigserial PRIMARY KEY,
	name  text NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS collections (
	id    bigserial PRIMARY KEY,
	name  text NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS colors (
	id        bigserial PRIMARY KEY,
	name      text NOT NULL UNIQUE,
	hex_code  text NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	id                 bigserial PRIMARY KEY,
	name               text NOT NULL,
	description        text,
	price              numeric(12,2) NOT NULL CHECK (price >= 0),
	sku                text NOT NULL DEFAULT '',
	fabric             text NOT NULL DEFAULT '',
	shipping_duration  int NOT NULL DEFAULT 7,
	tag                text,
	category_id        bigint REFERENCES categories(id),
	collection_id      bigint REFERENCES collections(id),
	created_at         timestamptz NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS variations (
	id          bigserial PRIMARY KEY,
	product_id  bigint NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	color_id    bigint REFERENCES colors(id),
	size        text NOT NULL DEFAULT '',
	stock       int NOT NULL DEFAULT 0 CHECK (stock >= 0),
	UNIQUE (product_id, color_id, size)
);

CREATE TABLE IF NOT EXISTS images (
	id          bigserial PRIMARY KEY,
	product_id  bigint NOT NULL REFERENCES products(id) ON DELETE CASCADE,
	color_id    bigint REFERENCES colors(id),
	url         text NOT NULL,
	is_primary  boolean NOT NULL DEFAULT false
);

CREATE TABLE IF NOT EXISTS cart_items (
	id          bigserial PRIMARY KEY,
	cart_id     text NOT NULL,
	variant_id  bigint NOT NULL REFERENCES variations(id) ON DELETE CASCADE,
	quantity    int NOT NULL CHECK (quantity > 0),
	created_at  timestamptz NOT NULL DEFAULT now(),
	UNIQUE (cart_id, variant_id)
);

CREATE INDEX IF NOT EXISTS idx_cart_items_cart ON cart_items (cart_id);
`

const cartProceduresSQL = `
CREATE OR REPLACE FUNCTION get_cart_product_variant_details(p_cart_id text)
RETURNS TABLE (
	line_item_id    bigint,
	variant_id      bigint,
	quantity        int,
	unit_price      numeric,
	product_name    text,
	color_name      text,
	size_name       text,
	image_url       text,
	available_stock int
) AS $$
	SELECT
		ci.id,
		ci.variant_id,
		ci.quantity,
		p.price,
		p.name,
		COALESCE(c.name, ''),
		v.size,
		COALESCE((
			SELECT i.url FROM images i
			WHERE i.product_id = p.id AND i.is_primary
			LIMIT 1
		), ''),
		v.stock
	FROM cart_items ci
	JOIN variations v ON v.id = ci.variant_id
	JOIN products p   ON p.id = v.product_id
	LEFT JOIN colors c ON c.id = v.color_id
	WHERE ci.cart_id = p_cart_id
	ORDER BY ci.created_at;
$$ LANGUAGE sql STABLE;

CREATE OR REPLACE FUNCTION manage_cart(p_cart_id text, p_variant_id bigint, p_quantity int)
RETURNS TABLE (
	line_item_id    bigint,
	variant_id      bigint,
	quantity        int,
	unit_price      numeric,
	product_name    text,
	color_name      text,
	size_name       text,
	image_url       text,
	available_stock int
) AS $$
DECLARE
	v_stock int;
BEGIN
	-- variant 0 means "just list"
	IF p_variant_id > 0 THEN
		SELECT v.stock INTO v_stock FROM variations v WHERE v.id = p_variant_id;
		IF NOT FOUND THEN
			RAISE EXCEPTION 'variant % does not exist', p_variant_id;
		END IF;

		IF p_quantity <= 0 THEN
			DELETE FROM cart_items ci
			WHERE ci.cart_id = p_cart_id AND ci.variant_id = p_variant_id;
		ELSE
			IF p_quantity > v_stock THEN
				RAISE EXCEPTION 'quantity % exceeds available stock %', p_quantity, v_stock
					USING ERRCODE = '23514';
			END IF;

			INSERT INTO cart_items (cart_id, variant_id, quantity)
			VALUES (p_cart_id, p_variant_id, p_quantity)
			ON CONFLICT (cart_id, variant_id)
			DO UPDATE SET quantity = EXCLUDED.quantity;
		END IF;
	END IF;

	RETURN QUERY SELECT * FROM get_cart_product_variant_details(p_cart_id);
END;
$$ LANGUAGE plpgsql;
`

const catalogProceduresSQL = `
CREATE OR REPLACE FUNCTION get_all_category_names()
RETURNS TABLE (name text) AS $$
	SELECT c.name FROM categories c ORDER BY c.name;
$$ LANGUAGE sql STABLE;

CREATE OR REPLACE VIEW catalog_products AS
SELECT
	p.id,
	p.name,
	p.description,
	p.price,
	p.shipping_duration,
	p.tag,
	COALESCE((
		SELECT json_agg(json_build_object(
			'size', v.size,
			'color', json_build_object('name', c.name, 'hex_code', c.hex_code)
		))
		FROM variations v
		LEFT JOIN colors c ON c.id = v.color_id
		WHERE v.product_id = p.id
	), '[]'::json) AS variations,
	COALESCE((
		SELECT json_agg(json_build_object('url', i.url, 'is_primary', i.is_primary))
		FROM images i
		WHERE i.product_id = p.id
	), '[]'::json) AS images,
	COALESCE(cat.name, '') AS category_name,
	COALESCE(col.name, '') AS collection_name,
	p.created_at
FROM products p
LEFT JOIN categories cat ON cat.id = p.category_id
LEFT JOIN collections col ON col.id = p.collection_id;

CREATE OR REPLACE FUNCTION get_latest_products()
RETURNS TABLE (
	id bigint, name text, description text, price numeric,
	shipping_duration int, tag text, variations json, images json,
	category_name text
) AS $$
	SELECT cp.id, cp.name, cp.description, cp.price, cp.shipping_duration,
	       cp.tag, cp.variations, cp.images, cp.category_name
	FROM catalog_products cp
	ORDER BY cp.created_at DESC
	LIMIT 12;
$$ LANGUAGE sql STABLE;

CREATE OR REPLACE FUNCTION get_products_from_collection(p_collection_name text)
RETURNS TABLE (
	id bigint, name text, description text, price numeric,
	shipping_duration int, tag text, variations json, images json,
	category_name text
) AS $$
	SELECT cp.id, cp.name, cp.description, cp.price, cp.shipping_duration,
	       cp.tag, cp.variations, cp.images, cp.category_name
	FROM catalog_products cp
	WHERE cp.collection_name = p_collection_name
	ORDER BY cp.created_at DESC;
$$ LANGUAGE sql STABLE;

CREATE OR REPLACE FUNCTION get_products_from_category(p_category_name text)
RETURNS TABLE (
	id bigint, name text, description text, price numeric,
	shipping_duration int, tag text, variations json, images json,
	category_name text
) AS $$
	SELECT cp.id, cp.name, cp.description, cp.price, cp.shipping_duration,
	       cp.tag, cp.variations, cp.images, cp.category_name
	FROM catalog_products cp
	WHERE cp.category_name = p_category_name
	ORDER BY cp.created_at DESC;
$$ LANGUAGE sql STABLE;

CREATE OR REPLACE FUNCTION get_product_details(input_product_id bigint)
RETURNS TABLE (
	id bigint, name text, description text, price numeric, sku text,
	fabric text, category_name text, primary_image_url text,
	color_variants json, size_variants json, variant_images json
) AS $$
	SELECT
		p.id, p.name, p.description, p.price,
		COALESCE(p.sku, ''), COALESCE(p.fabric, ''),
		COALESCE(cat.name, ''),
		COALESCE((
			SELECT i.url FROM images i
			WHERE i.product_id = p.id AND i.is_primary
			LIMIT 1
		), ''),
		COALESCE((
			SELECT json_agg(DISTINCT jsonb_build_object('name', c.name, 'hex_code', c.hex_code))
			FROM variations v
			JOIN colors c ON c.id = v.color_id
			WHERE v.product_id = p.id
		), '[]'::json),
		COALESCE((
			SELECT json_agg(DISTINCT v.size)
			FROM variations v
			WHERE v.product_id = p.id AND v.size <> ''
		), '[]'::json),
		COALESCE((
			SELECT json_agg(json_build_object(
				'color', c.name,
				'images', (
					SELECT COALESCE(json_agg(json_build_object('url', i.url, 'is_primary', i.is_primary)), '[]'::json)
					FROM images i
					WHERE i.product_id = p.id AND i.color_id = c.id
				)
			))
			FROM (SELECT DISTINCT v.color_id FROM variations v WHERE v.product_id = p.id) vc
			JOIN colors c ON c.id = vc.color_id
		), '[]'::json)
	FROM products p
	LEFT JOIN categories cat ON cat.id = p.category_id
	WHERE p.id = input_product_id;
$$ LANGUAGE sql STABLE;
`

const demoDataSQL = `
INSERT INTO categories (name) VALUES ('Sarees'), ('Lehengas'), ('Dupattas')
ON CONFLICT (name) DO NOTHING;

INSERT INTO collections (name) VALUES ('Festive Edit'), ('Summer Weaves')
ON CONFLICT (name) DO NOTHING;

INSERT INTO colors (name, hex_code) VALUES
	('Rose Pink', '#e8a0bf'),
	('Deep Maroon', '#7b1e3b'),
	('Ivory', '#f5f0e1')
ON CONFLICT (name) DO NOTHING;

INSERT INTO products (name, description, price, sku, fabric, shipping_duration, tag, category_id, collection_id)
SELECT 'Banarasi Silk Saree', 'Handwoven Banarasi silk with zari border', 5499.00,
       'VH-SR-001', 'Silk', 5, 'bestseller',
       (SELECT id FROM categories WHERE name = 'Sarees'),
       (SELECT id FROM collections WHERE name = 'Festive Edit')
WHERE NOT EXISTS (SELECT 1 FROM products WHERE sku = 'VH-SR-001');

INSERT INTO products (name, description, price, sku, fabric, shipping_duration, tag, category_id, collection_id)
SELECT 'Chanderi Cotton Saree', 'Lightweight Chanderi cotton for daily wear', 2199.00,
       'VH-SR-002', 'Cotton', 7, NULL,
       (SELECT id FROM categories WHERE name = 'Sarees'),
       (SELECT id FROM collections WHERE name = 'Summer Weaves')
WHERE NOT EXISTS (SELECT 1 FROM products WHERE sku = 'VH-SR-002');

INSERT INTO variations (product_id, color_id, size, stock)
SELECT p.id, c.id, s.size, s.stock
FROM products p
JOIN colors c ON c.name IN ('Rose Pink', 'Deep Maroon')
CROSS JOIN (VALUES ('Free Size', 5)) AS s(size, stock)
WHERE p.sku = 'VH-SR-001'
ON CONFLICT (product_id, color_id, size) DO NOTHING;

INSERT INTO variations (product_id, color_id, size, stock)
SELECT p.id, c.id, 'Free Size', 8
FROM products p
JOIN colors c ON c.name = 'Ivory'
WHERE p.sku = 'VH-SR-002'
ON CONFLICT (product_id, color_id, size) DO NOTHING;

INSERT INTO images (product_id, color_id, url, is_primary)
SELECT p.id, c.id, 'https://cdn.example.com/products/' || p.sku || '-' || lower(replace(c.name, ' ', '-')) || '.jpg',
       c.name = 'Rose Pink'
FROM products p
JOIN variations v ON v.product_id = p.id
JOIN colors c ON c.id = v.color_id
WHERE NOT EXISTS (SELECT 1 FROM images i WHERE i.product_id = p.id AND i.color_id = c.id);
`
