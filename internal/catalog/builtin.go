package catalog

import (
	"github.com/rentwear/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// Builtin returns the storefront's hard-coded catalog in declaration order.
func Builtin() []domain.Product {
	return []domain.Product{
		{
			ID:          "1",
			Name:        "Classic White T-Shirt",
			Category:    domain.CategoryTops,
			Price:       decimal.RequireFromString("29.99"),
			RentPrice:   decimal.RequireFromString("5.99"),
			Image:       "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?q=80&w=500",
			Description: "A timeless white t-shirt that goes with everything. Made from 100% organic cotton for maximum comfort.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Gray"},
			InStock:     true,
			IsFeatured:  true,
		},
		{
			ID:          "2",
			Name:        "High-Waist Slim Jeans",
			Category:    domain.CategoryBottoms,
			Price:       decimal.RequireFromString("59.99"),
			RentPrice:   decimal.RequireFromString("12.99"),
			Image:       "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?q=80&w=500",
			Description: "Flattering high-waisted jeans with a slim fit through the hip and thigh. Sustainably produced denim.",
			Sizes:       []string{"24", "25", "26", "27", "28", "29", "30"},
			Colors:      []string{"Blue", "Black", "Light Wash"},
			InStock:     true,
			IsFeatured:  true,
		},
		{
			ID:          "3",
			Name:        "Floral Summer Dress",
			Category:    domain.CategoryDresses,
			Price:       decimal.RequireFromString("79.99"),
			RentPrice:   decimal.RequireFromString("15.99"),
			Image:       "https://images.unsplash.com/photo-1595777457583-95e059d581b8?q=80&w=500",
			Description: "A beautiful floral dress perfect for summer days and special occasions. Features an adjustable waist tie.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Floral Print"},
			InStock:     true,
			IsFeatured:  true,
		},
		{
			ID:          "4",
			Name:        "Leather Biker Jacket",
			Category:    domain.CategoryJackets,
			Price:       decimal.RequireFromString("199.99"),
			RentPrice:   decimal.RequireFromString("39.99"),
			Image:       "https://images.unsplash.com/photo-1551028719-00167b16eac5?q=80&w=500",
			Description: "Classic biker jacket in genuine leather. Features asymmetric zip fastening and multiple pockets.",
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Brown"},
			InStock:     true,
		},
		{
			ID:          "5",
			Name:        "Crystal Statement Necklace",
			Category:    domain.CategoryJewelry,
			Price:       decimal.RequireFromString("49.99"),
			RentPrice:   decimal.RequireFromString("9.99"),
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?q=80&w=500",
			Description: "Eye-catching statement necklace with crystal pendants. Perfect for adding glamour to any outfit.",
			InStock:     true,
			IsFeatured:  true,
		},
		{
			ID:          "6",
			Name:        "Leather Ankle Boots",
			Category:    domain.CategoryShoes,
			Price:       decimal.RequireFromString("129.99"),
			RentPrice:   decimal.RequireFromString("25.99"),
			Image:       "https://images.unsplash.com/photo-1543163521-1bf539c55dd2?q=80&w=500",
			Description: "Versatile ankle boots in genuine leather. Features a small heel and side zipper for easy wear.",
			Sizes:       []string{"36", "37", "38", "39", "40", "41"},
			Colors:      []string{"Black", "Brown", "Tan"},
			InStock:     true,
		},
		{
			ID:          "7",
			Name:        "Oversized Knit Sweater",
			Category:    domain.CategoryTops,
			Price:       decimal.RequireFromString("69.99"),
			RentPrice:   decimal.RequireFromString("14.99"),
			Image:       "https://images.unsplash.com/photo-1576566588028-4147f3842f27?q=80&w=500",
			Description: "Cozy oversized sweater in a chunky knit. Perfect for layering during colder months.",
			Sizes:       []string{"S/M", "L/XL"},
			Colors:      []string{"Cream", "Gray", "Navy"},
			InStock:     true,
		},
		{
			ID:          "8",
			Name:        "Wide-Leg Trousers",
			Category:    domain.CategoryBottoms,
			Price:       decimal.RequireFromString("69.99"),
			RentPrice:   decimal.RequireFromString("14.99"),
			Image:       "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?q=80&w=500",
			Description: "Elegant wide-leg trousers with a high waist. Suitable for both office and evening wear.",
			Sizes:       []string{"XS", "S", "M", "L", "XL"},
			Colors:      []string{"Black", "Navy", "Beige"},
			InStock:     true,
			IsFeatured:  true,
		},
		{
			ID:          "9",
			Name:        "Cocktail Party Dress",
			Category:    domain.CategoryDresses,
			Price:       decimal.RequireFromString("129.99"),
			RentPrice:   decimal.RequireFromString("29.99"),
			Image:       "https://images.unsplash.com/photo-1566174053879-31528523f8ae?q=80&w=500",
			Description: "Stunning cocktail dress with sequin details. Perfect for parties and formal events.",
			Sizes:       []string{"XS", "S", "M", "L"},
			Colors:      []string{"Black", "Navy", "Burgundy"},
			InStock:     true,
		},
		{
			ID:          "11",
			Name:        "Delicate Gold Bracelet",
			Category:    domain.CategoryJewelry,
			Price:       decimal.RequireFromString("39.99"),
			RentPrice:   decimal.RequireFromString("7.99"),
			Image:       "https://images.unsplash.com/photo-1611652022419-a9419f74343d?q=80&w=500",
			Description: "Delicate gold-plated bracelet with minimalist design. Perfect for everyday wear.",
			InStock:     true,
		},
		{
			ID:          "12",
			Name:        "High Heel Sandals",
			Category:    domain.CategoryShoes,
			Price:       decimal.RequireFromString("89.99"),
			RentPrice:   decimal.RequireFromString("18.99"),
			Image:       "https://images.unsplash.com/photo-1515347619252-60a4bf4fff4f?q=80&w=500",
			Description: "Elegant high heel sandals with ankle strap. Perfect for special occasions.",
			Sizes:       []string{"36", "37", "38", "39", "40"},
			Colors:      []string{"Black", "Nude", "Silver"},
			InStock:     true,
		},
	}
}
