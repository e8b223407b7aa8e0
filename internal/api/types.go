package api

// Book is a bookshop catalog entry as served by the API. Price is a decimal
// string scaled by money.ScaleFactor; the client descales it for display only.
type Book struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Writer          string `json:"writer"`
	Publisher       string `json:"publisher,omitempty"`
	PublicationYear int    `json:"publication_year,omitempty"`
	Price           string `json:"price"`
	StockQuantity   int    `json:"stock_quantity"`
	Description     string `json:"description"`
	Genre           string `json:"genre"`
	GenreID         string `json:"genre_id,omitempty"`
}

// BookPayload is the request body for creating or updating a book.
type BookPayload struct {
	Title           string `json:"title"`
	Writer          string `json:"writer"`
	Publisher       string `json:"publisher"`
	PublicationYear int    `json:"publication_year"`
	Price           string `json:"price"`
	StockQuantity   int    `json:"stock_quantity"`
	GenreID         string `json:"genre_id"`
	Description     string `json:"description"`
}

// Genre is a book category.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// User is the authenticated account returned by /auth/me.
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Transaction is a completed checkout. TotalAmount is the summed quantity,
// TotalPrice a scaled price string like Book.Price.
type Transaction struct {
	ID          string            `json:"id"`
	TotalAmount int               `json:"total_amount"`
	TotalPrice  string            `json:"total_price"`
	Status      string            `json:"status"`
	CreatedAt   string            `json:"created_at"`
	Items       []TransactionItem `json:"items,omitempty"`
}

// TransactionItem is one purchased line within a transaction.
type TransactionItem struct {
	ID        string `json:"id"`
	BookTitle string `json:"book_title"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// CheckoutItem is one cart line submitted at checkout.
type CheckoutItem struct {
	BookID   string `json:"book_id"`
	Quantity int    `json:"quantity"`
}

// TransactionStats is the aggregate view from /transactions/statistics.
type TransactionStats struct {
	TotalTransactions int    `json:"total_transactions"`
	TotalItemsSold    int    `json:"total_items_sold"`
	TotalRevenue      string `json:"total_revenue"`
}
