package catalog

// DemoPassword is the single password shared by every seed user. It is a
// demo fixture, printed in the service index on purpose.
const DemoPassword = "password123"

func seedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Wireless Headphones",
			Description: "Noise-cancelling over-ear wireless headphones with 30-hour battery life.",
			Price:       199.99,
			Category:    "electronics",
			Subcategory: "audio",
			Image:       "/images/products/wireless-headphones.jpg",
			Stock:       25,
			Featured:    true,
		},
		{
			ID:          "2",
			Name:        "Smart Watch",
			Description: "Fitness tracking smart watch with heart-rate monitor and GPS.",
			Price:       299.99,
			Category:    "electronics",
			Subcategory: "wearables",
			Image:       "/images/products/smart-watch.jpg",
			Stock:       15,
			Featured:    true,
		},
		{
			ID:          "3",
			Name:        "Cotton T-Shirt",
			Description: "Classic crew-neck t-shirt in organic cotton.",
			Price:       29.99,
			Category:    "clothing",
			Subcategory: "shirts",
			Image:       "/images/products/cotton-t-shirt.jpg",
			Stock:       120,
		},
		{
			ID:          "4",
			Name:        "Denim Jeans",
			Description: "Slim-fit stretch denim jeans.",
			Price:       79.99,
			Category:    "clothing",
			Subcategory: "pants",
			Image:       "/images/products/denim-jeans.jpg",
			Stock:       60,
		},
		{
			ID:          "5",
			Name:        "Running Shoes",
			Description: "Lightweight road running shoes with a cushioned sole.",
			Price:       119.99,
			Category:    "clothing",
			Subcategory: "shoes",
			Image:       "/images/products/running-shoes.jpg",
			Stock:       45,
		},
		{
			ID:          "6",
			Name:        "Intro to Programming",
			Description: "Beginner-friendly introduction to programming concepts.",
			Price:       39.99,
			Category:    "books",
			Subcategory: "programming",
			Image:       "/images/products/intro-to-programming.jpg",
			Stock:       35,
		},
		{
			ID:          "7",
			Name:        "Detective Novel",
			Description: "Hard-boiled detective novel set in 1940s Los Angeles.",
			Price:       19.99,
			Category:    "books",
			Subcategory: "fiction",
			Image:       "/images/products/detective-novel.jpg",
			Stock:       80,
		},
		{
			ID:          "8",
			Name:        "Bluetooth Speaker",
			Description: "Portable waterproof speaker with deep bass.",
			Price:       89.99,
			Category:    "electronics",
			Subcategory: "audio",
			Image:       "/images/products/bluetooth-speaker.jpg",
			Stock:       40,
			Featured:    true,
		},
		{
			ID:          "9",
			Name:        "Coffee Maker",
			Description: "12-cup programmable drip coffee maker.",
			Price:       129.99,
			Category:    "home",
			Subcategory: "kitchen",
			Image:       "/images/products/coffee-maker.jpg",
			Stock:       20,
		},
		{
			ID:          "10",
			Name:        "Garden Tool Set",
			Description: "Five-piece stainless steel garden tool set.",
			Price:       59.99,
			Category:    "home",
			Subcategory: "garden",
			Image:       "/images/products/garden-tool-set.jpg",
			Stock:       30,
		},
	}
}

func seedUsers() []User {
	return []User{
		{ID: "u_1", Name: "Alice Johnson", Email: "alice@example.com", IsAuthenticated: true},
		{ID: "u_2", Name: "Bob Smith", Email: "bob@example.com", IsAuthenticated: false},
	}
}

func seedCategories() []Category {
	return []Category{
		{Name: "electronics", Subcategories: []string{"audio", "wearables", "cameras"}},
		{Name: "clothing", Subcategories: []string{"shirts", "pants", "shoes"}},
		{Name: "books", Subcategories: []string{"programming", "fiction"}},
		{Name: "home", Subcategories: []string{"kitchen", "garden"}},
	}
}
