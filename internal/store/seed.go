package store

type seedCategory struct {
	name string
	slug string
	icon string
}

type seedProduct struct {
	name        string
	slug        string
	description string
	price       float64
	oldPrice    *float64
	category    string
	image       string
	stock       int
	rating      float64
	reviews     int
	featured    bool
}

func pricePtr(v float64) *float64 { return &v }

var seedCategories = []seedCategory{
	{"Electronics", "electronics", "📱"},
	{"Clothing", "clothing", "👕"},
	{"Home & Garden", "home", "🏠"},
	{"Sports", "sports", "⚽"},
	{"Books", "books", "📚"},
	{"Beauty", "beauty", "💄"},
}

var seedProducts = []seedProduct{
	{"Aurora Phone 15 Pro", "aurora-phone-15-pro", "Flagship smartphone with the latest chipset", 129990, pricePtr(139990), "electronics", "📱", 50, 4.9, 128, true},
	{"Featherlight Laptop 13", "featherlight-laptop-13", "Thin and light notebook for everyday work", 149990, nil, "electronics", "💻", 30, 4.8, 85, true},
	{"SilentBuds Pro", "silentbuds-pro", "Wireless earbuds with active noise cancellation", 24990, pricePtr(27990), "electronics", "🎧", 100, 4.7, 256, true},
	{"TrailWatch Ultra", "trailwatch-ultra", "Premium sports smartwatch", 89990, nil, "electronics", "⌚", 25, 4.9, 64, true},
	{"Studio Tablet 12.9", "studio-tablet-12", "Professional tablet for creative work", 109990, pricePtr(119990), "electronics", "📱", 40, 4.8, 92, false},
	{"Galaxy Flagship Ultra", "galaxy-flagship-ultra", "Android flagship with AI features", 119990, nil, "electronics", "📱", 45, 4.7, 156, true},
	{"QuietTone XM5", "quiettone-xm5", "Over-ear wireless headphones", 34990, pricePtr(39990), "electronics", "🎧", 60, 4.8, 312, false},
	{"Pocket Console OLED", "pocket-console-oled", "Handheld gaming console with OLED screen", 29990, nil, "electronics", "🎮", 35, 4.6, 178, false},
	{"Premium Hoodie", "premium-hoodie", "Comfortable hoodie made of organic cotton", 7990, pricePtr(9990), "clothing", "👕", 200, 4.5, 89, true},
	{"Cloudrunner Sneakers", "cloudrunner-sneakers", "Running shoes with responsive cushioning", 15990, pricePtr(18990), "clothing", "👟", 80, 4.7, 234, true},
	{"Classic Straight Jeans", "classic-straight-jeans", "Straight-cut denim classic", 8990, nil, "clothing", "👖", 150, 4.6, 167, false},
	{"Summit Down Jacket", "summit-down-jacket", "Warm winter down jacket", 24990, pricePtr(29990), "clothing", "🧥", 40, 4.8, 78, true},
	{"Barista Coffee Machine", "barista-coffee-machine", "Automatic espresso machine for the home", 49990, pricePtr(59990), "home", "☕", 25, 4.9, 156, true},
	{"RoboVac Laser", "robovac-laser", "Smart robot vacuum with lidar navigation", 29990, pricePtr(34990), "home", "🤖", 50, 4.6, 289, true},
	{"Egyptian Cotton Bed Set", "egyptian-cotton-bed-set", "Bed linen woven from long-staple cotton", 5990, pricePtr(7990), "home", "🛏️", 100, 4.4, 67, false},
	{"LED String Lights 10m", "led-string-lights", "Festive string lights, 10 meters", 1290, pricePtr(1590), "home", "💡", 300, 4.3, 45, false},
	{"ProRun Treadmill", "prorun-treadmill", "Professional folding treadmill", 79990, pricePtr(89990), "sports", "🏃", 10, 4.7, 34, true},
	{"Adjustable Dumbbells 20kg", "adjustable-dumbbells-20kg", "Pair of adjustable dumbbells", 6990, nil, "sports", "💪", 80, 4.5, 123, false},
	{"Premium Yoga Mat", "premium-yoga-mat", "6mm non-slip yoga mat", 2490, pricePtr(2990), "sports", "🧘", 200, 4.6, 89, false},
	{"Ridgeline Mountain Bike", "ridgeline-mountain-bike", "21-speed mountain bike", 34990, pricePtr(39990), "sports", "🚴", 15, 4.8, 56, true},
	{"Atomic Habits", "atomic-habits", "James Clear on building better habits", 890, pricePtr(990), "books", "📖", 500, 4.9, 1256, true},
	{"Thinking, Fast and Slow", "thinking-fast-slow", "Daniel Kahneman on decision making", 790, nil, "books", "📖", 300, 4.8, 892, false},
	{"Go for Beginners", "go-for-beginners", "A complete introduction to the Go language", 1290, pricePtr(1490), "books", "📖", 200, 4.7, 234, true},
	{"Skincare Essentials Set", "skincare-essentials-set", "Complete daily skincare routine", 4990, pricePtr(6990), "beauty", "✨", 100, 4.6, 178, true},
	{"Signature Perfume", "signature-perfume", "Iconic floral fragrance", 12990, nil, "beauty", "💐", 30, 4.9, 89, true},
	{"Supersonic Hair Dryer", "supersonic-hair-dryer", "Professional high-speed hair dryer", 44990, pricePtr(49990), "beauty", "💨", 20, 4.8, 167, false},
}
