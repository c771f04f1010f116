package categories

import "github.com/jackc/pgx/v5/pgxpool"

// handles category and tag database operations
type Repository struct {
	db *pgxpool.Pool
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
}

type Tag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description,omitempty" binding:"max=2000"`
	Icon        string `json:"icon,omitempty" binding:"max=100"`
	Color       string `json:"color,omitempty" binding:"omitempty,hexcolor,len=7"`
}

// categories created by the seed command
var Defaults = []CreateCategoryRequest{
	{Name: "Electronics", Description: "Phones, laptops, tablets, etc.", Icon: "📱", Color: "#3B82F6"},
	{Name: "Wallet & Cards", Description: "Wallets, ID cards, credit cards", Icon: "💳", Color: "#EF4444"},
	{Name: "Jewelry", Description: "Rings, necklaces, watches", Icon: "💍", Color: "#F59E0B"},
	{Name: "Clothing", Description: "Jackets, bags, shoes", Icon: "👕", Color: "#10B981"},
	{Name: "Documents", Description: "Passports, certificates, papers", Icon: "📄", Color: "#8B5CF6"},
	{Name: "Keys", Description: "House keys, car keys, keychains", Icon: "🔑", Color: "#F97316"},
	{Name: "Other", Description: "Miscellaneous items", Icon: "❓", Color: "#6B7280"},
}
