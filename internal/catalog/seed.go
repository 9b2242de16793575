package catalog

// SampleProducts returns the catalog seed set: a small range of phones
// and accessories. Prices are in paise.
func SampleProducts() []Product {
	return []Product{
		{
			ID:            "iphone-15-pro",
			Name:          "iPhone 15 Pro",
			Description:   "The most advanced iPhone with A17 Pro chip, titanium design, and Action Button.",
			Price:         9990000,
			OriginalPrice: 11990000,
			Image:         "https://images.unsplash.com/photo-1695048133142-1a20484d2569?w=500&h=500&fit=crop",
			Category:      "smartphone",
			Brand:         "Apple",
			InStock:       true,
			StockCount:    25,
			Rating:        4.8,
			Reviews:       1205,
			Discount:      17,
			IsNew:         true,
			IsBestseller:  true,
			Features: []string{
				"A17 Pro chip with 6-core GPU",
				"Pro camera system with 48MP",
				"Titanium design",
				"Action Button",
				"USB-C connector",
			},
			Specifications: map[string]string{
				"Display": "6.1-inch Super Retina XDR",
				"Chip":    "A17 Pro",
				"Camera":  "48MP Main + 12MP Ultra Wide + 12MP Telephoto",
				"Storage": "128GB, 256GB, 512GB, 1TB",
				"Battery": "Up to 23 hours video playback",
				"OS":      "iOS 17",
			},
			Tags:         []string{"iphone", "apple", "pro", "titanium", "a17"},
			DeliveryInfo: &DeliveryInfo{FreeDelivery: true, EstimatedDays: 1, ExpressDelivery: true},
			Warranty:     "1 year limited warranty",
			Seller:       "Apple Store",
			Highlights: []string{
				"Latest A17 Pro chip for ultimate performance",
				"Professional camera system",
				"Premium titanium build quality",
			},
		},
		{
			ID:            "galaxy-s24-ultra",
			Name:          "Samsung Galaxy S24 Ultra",
			Description:   "Premium Android phone with S Pen, 200MP camera, and AI-powered features.",
			Price:         11990000,
			OriginalPrice: 12990000,
			Image:         "https://images.unsplash.com/photo-1610945265064-0e34e5519bbf?w=500&h=500&fit=crop",
			Category:      "smartphone",
			Brand:         "Samsung",
			InStock:       true,
			StockCount:    15,
			Rating:        4.7,
			Reviews:       892,
			Discount:      8,
			IsBestseller:  true,
			Features: []string{
				"200MP Pro camera with AI",
				"S Pen included",
				"Snapdragon 8 Gen 3",
				"6.8-inch Dynamic AMOLED 2X",
			},
			Specifications: map[string]string{
				"Display":   "6.8-inch Dynamic AMOLED 2X",
				"Processor": "Snapdragon 8 Gen 3",
				"Camera":    "200MP + 50MP + 12MP + 10MP",
				"RAM":       "12GB",
				"Battery":   "5000mAh with 45W fast charging",
			},
			Tags:         []string{"samsung", "galaxy", "ultra", "s-pen", "android"},
			DeliveryInfo: &DeliveryInfo{FreeDelivery: true, EstimatedDays: 2, ExpressDelivery: true},
			Warranty:     "1 year manufacturer warranty",
			Seller:       "Samsung Official",
		},
		{
			ID:            "pixel-8-pro",
			Name:          "Google Pixel 8 Pro",
			Description:   "Pure Android experience with exceptional camera and AI capabilities.",
			Price:         8990000,
			OriginalPrice: 9990000,
			Image:         "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=500&h=500&fit=crop",
			Category:      "smartphone",
			Brand:         "Google",
			InStock:       true,
			StockCount:    30,
			Rating:        4.6,
			Reviews:       634,
			Discount:      10,
			IsNew:         true,
			Features: []string{
				"Google Tensor G3 chip",
				"Magic Eraser and AI features",
				"7 years of OS updates",
			},
			Tags:     []string{"google", "pixel", "android", "camera"},
			Warranty: "1 year warranty",
			Seller:   "Google Store",
		},
		{
			ID:           "oneplus-12",
			Name:         "OnePlus 12",
			Description:  "Flagship killer with Snapdragon 8 Gen 3 and 100W fast charging.",
			Price:        7990000,
			Image:        "https://images.unsplash.com/photo-1598300042247-d088f8ab3a91?w=500&h=500&fit=crop",
			Category:     "smartphone",
			Brand:        "OnePlus",
			InStock:      true,
			StockCount:   40,
			Rating:       4.5,
			Reviews:      412,
			Tags:         []string{"oneplus", "android", "fast-charging"},
			DeliveryInfo: &DeliveryInfo{FreeDelivery: true, EstimatedDays: 3},
			Seller:       "OnePlus Store",
		},
		{
			ID:            "airpods-pro-2",
			Name:          "AirPods Pro (2nd Gen)",
			Description:   "Active noise cancellation, adaptive transparency, and spatial audio.",
			Price:         2490000,
			OriginalPrice: 2790000,
			Image:         "https://images.unsplash.com/photo-1600294037681-c80b4cb5b434?w=500&h=500&fit=crop",
			Category:      "accessory",
			Brand:         "Apple",
			InStock:       true,
			StockCount:    50,
			Rating:        4.7,
			Reviews:       2310,
			Discount:      11,
			IsBestseller:  true,
			Tags:          []string{"airpods", "apple", "earbuds", "anc"},
			Warranty:      "1 year limited warranty",
			Seller:        "Apple Store",
		},
		{
			ID:          "galaxy-buds2-pro",
			Name:        "Samsung Galaxy Buds2 Pro",
			Description: "Hi-Fi sound quality with intelligent ANC and seamless Galaxy pairing.",
			Price:       1990000,
			Image:       "https://images.unsplash.com/photo-1590658268037-6bf12165a8df?w=500&h=500&fit=crop",
			Category:    "accessory",
			Brand:       "Samsung",
			InStock:     true,
			StockCount:  35,
			Rating:      4.4,
			Reviews:     768,
			Tags:        []string{"samsung", "buds", "earbuds", "anc"},
			Seller:      "Samsung Official",
		},
	}
}
