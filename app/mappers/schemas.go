package mappers

// Per-table schemas. The nested entries mirror the joined payloads the
// store returns (a product row carrying its category, an order row
// carrying its product); they surface as read-only projections on the
// application side.

var CategorySchema = NewSchema(
	Field{Column: "id", Name: "id"},
	Field{Column: "name", Name: "name"},
	Field{Column: "description", Name: "description"},
	Field{Column: "image", Name: "image"},
	Field{Column: "created_at", Name: "createdAt", Kind: KindTime},
	Field{Column: "updated_at", Name: "updatedAt", Kind: KindTime},
)

var ProductSchema = NewSchema(
	Field{Column: "id", Name: "id"},
	Field{Column: "name", Name: "name"},
	Field{Column: "price", Name: "price"},
	Field{Column: "old_price", Name: "oldPrice"},
	Field{Column: "stock", Name: "stock"},
	Field{Column: "short_description", Name: "shortDescription"},
	Field{Column: "long_description", Name: "longDescription"},
	Field{Column: "images", Name: "images", Kind: KindJSON},
	Field{Column: "colors", Name: "colors", Kind: KindJSON},
	Field{Column: "sizes", Name: "sizes", Kind: KindJSON},
	Field{Column: "category_id", Name: "categoryId"},
	Field{Column: "created_at", Name: "createdAt", Kind: KindTime},
	Field{Column: "updated_at", Name: "updatedAt", Kind: KindTime},
	Field{Column: "categories", Name: "category", Kind: KindNested, Nested: CategorySchema},
)

var CustomerSchema = NewSchema(
	Field{Column: "id", Name: "id"},
	Field{Column: "name", Name: "name"},
	Field{Column: "phone_number", Name: "phoneNumber"},
	Field{Column: "wilaya", Name: "wilaya"},
	Field{Column: "commune", Name: "commune"},
	Field{Column: "address", Name: "address"},
	Field{Column: "created_at", Name: "createdAt", Kind: KindTime},
	Field{Column: "updated_at", Name: "updatedAt", Kind: KindTime},
)

var OrderSchema = NewSchema(
	Field{Column: "id", Name: "id"},
	Field{Column: "product_id", Name: "productId"},
	Field{Column: "customer_id", Name: "customerId"},
	Field{Column: "customer_name", Name: "customerName"},
	Field{Column: "customer_phone", Name: "customerPhone"},
	Field{Column: "date", Name: "date", Kind: KindTime},
	Field{Column: "status", Name: "status"},
	Field{Column: "wilaya", Name: "wilaya"},
	Field{Column: "commune", Name: "commune"},
	Field{Column: "address", Name: "address"},
	Field{Column: "quantity", Name: "quantity"},
	Field{Column: "price", Name: "price"},
	Field{Column: "notes", Name: "notes"},
	Field{Column: "created_at", Name: "createdAt", Kind: KindTime},
	Field{Column: "updated_at", Name: "updatedAt", Kind: KindTime},
	Field{Column: "products", Name: "product", Kind: KindNested, Nested: ProductSchema},
)
