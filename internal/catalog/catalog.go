// Package catalog holds the static reference data the API serves verbatim:
// disposal vendors, donation organizations, repair shops, the repair FAQ and
// the fixed marketplace products. It is loaded once at startup and injected
// into workflows as a read-only collaborator.
package catalog

// StaticIDFloor is the first id reserved for fixed catalog products. Persisted
// marketplace rows live below it; ids at or above it never hit the database.
const StaticIDFloor = 1000

type Vendor struct {
	Name     string  `json:"name"`
	Location string  `json:"location"`
	Rating   float64 `json:"rating"`
	Pickup   bool    `json:"pickup"`
}

type Organization struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Contact     string `json:"contact"`
	Image       string `json:"image"`
}

type Review struct {
	User    string  `json:"user"`
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

type RepairShop struct {
	Name        string   `json:"name"`
	Address     string   `json:"address"`
	Rating      float64  `json:"rating"`
	Specialties []string `json:"specialties"`
	Phone       string   `json:"phone"`
	Hours       string   `json:"hours"`
	Warranty    string   `json:"warranty"`
	PriceRange  string   `json:"price_range"`
	Reviews     []Review `json:"reviews"`
}

type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type Product struct {
	ID             int64
	Title          string
	Brand          string
	Model          string
	Description    string
	Price          float64
	OriginalPrice  *float64
	CategoryID     int64
	Images         []string
	Specifications map[string]string
	WarrantyInfo   string
	SellerName     string
	SellerRating   float64
	IsSelling      bool
	Status         string
}

type Category struct {
	Name string
	Icon string
}

type Catalog struct {
	Vendors           map[string][]Vendor
	Organizations     []Organization
	RepairShops       map[string][]RepairShop
	FAQ               []FAQEntry
	Products          []Product
	DefaultCategories []Category
}

// IsStaticID reports whether a marketplace item id refers to the fixed catalog.
func IsStaticID(id int64) bool { return id >= StaticIDFloor }

// Product returns the fixed catalog product with the given id, if any.
func (c *Catalog) Product(id int64) (Product, bool) {
	for _, p := range c.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

func price(v float64) *float64 { return &v }

// Load builds the catalog. Callers must treat the result as read-only.
func Load() *Catalog {
	return &Catalog{
		Vendors:           vendors,
		Organizations:     organizations,
		RepairShops:       repairShops,
		FAQ:               faq,
		Products:          staticProducts,
		DefaultCategories: defaultCategories,
	}
}

var defaultCategories = []Category{
	{Name: "Mobile Phones", Icon: "Smartphone"},
	{Name: "Laptops", Icon: "Laptop"},
	{Name: "Home Appliances", Icon: "Home"},
	{Name: "Audio & Video", Icon: "Headphones"},
	{Name: "Gaming", Icon: "Gamepad2"},
	{Name: "Accessories", Icon: "Cable"},
}

var vendors = map[string][]Vendor{
	"batteries": {
		{Name: "EcoBattery Recycling", Location: "Downtown", Rating: 4.5, Pickup: true},
		{Name: "Green Power Solutions", Location: "Uptown", Rating: 4.2, Pickup: false},
	},
	"computers": {
		{Name: "TechRecycle Pro", Location: "Tech District", Rating: 4.8, Pickup: true},
		{Name: "Digital Waste Management", Location: "Business Park", Rating: 4.3, Pickup: true},
	},
	"appliances": {
		{Name: "Home Appliance Recyclers", Location: "Industrial Zone", Rating: 4.1, Pickup: true},
		{Name: "White Goods Disposal", Location: "Suburb Area", Rating: 4.0, Pickup: false},
	},
	"phones": {
		{Name: "Mobile Recycle Hub", Location: "City Center", Rating: 4.6, Pickup: true},
		{Name: "Phone Disposal Service", Location: "Mall District", Rating: 4.4, Pickup: false},
	},
}

var organizations = []Organization{
	{
		Name:        "Tech for Schools",
		Type:        "Educational",
		Description: "Providing technology to underfunded schools",
		Location:    "City Wide",
		Contact:     "contact@techforschools.org",
		Image:       "/images/school.jpg",
	},
	{
		Name:        "Digital Divide Foundation",
		Type:        "Non-Profit",
		Description: "Bridging the digital gap in communities",
		Location:    "Metro Area",
		Contact:     "info@digitaldivide.org",
		Image:       "/images/foundation.jpg",
	},
	{
		Name:        "Senior Tech Support",
		Type:        "Community",
		Description: "Helping seniors access technology",
		Location:    "Local Community",
		Contact:     "help@seniortech.org",
		Image:       "/images/seniors.jpg",
	},
}

var repairShops = map[string][]RepairShop{
	"phones": {
		{
			Name: "QuickFix Mobile", Address: "123 Tech St, Downtown", Rating: 4.7,
			Specialties: []string{"iPhone", "Android", "Screen Repair"},
			Phone:       "+1 (555) 123-4567", Hours: "Mon-Sat 9AM-7PM",
			Warranty: "90 days", PriceRange: "$50-200",
			Reviews: []Review{
				{User: "John D.", Rating: 5, Comment: "Fixed my iPhone screen perfectly!"},
				{User: "Sarah M.", Rating: 4, Comment: "Quick service, reasonable prices."},
			},
		},
		{
			Name: "Phone Repair Pro", Address: "456 Mobile Ave, Uptown", Rating: 4.5,
			Specialties: []string{"Samsung", "Google", "Battery Replacement"},
			Phone:       "+1 (555) 987-6543", Hours: "Mon-Fri 10AM-6PM",
			Warranty: "60 days", PriceRange: "$40-180",
			Reviews: []Review{
				{User: "Mike R.", Rating: 5, Comment: "Great expertise with Android devices."},
				{User: "Lisa K.", Rating: 4, Comment: "Professional service, fair pricing."},
			},
		},
	},
	"computers": {
		{
			Name: "PC Doctor", Address: "789 Computer Blvd, Tech District", Rating: 4.8,
			Specialties: []string{"Laptops", "Desktops", "Data Recovery"},
			Phone:       "+1 (555) 456-7890", Hours: "Mon-Sat 8AM-8PM",
			Warranty: "120 days", PriceRange: "$80-400",
			Reviews: []Review{
				{User: "David L.", Rating: 5, Comment: "Saved my laptop and all my data!"},
				{User: "Emma W.", Rating: 5, Comment: "Excellent technical knowledge."},
			},
		},
		{
			Name: "Tech Solutions", Address: "321 IT Way, Business Park", Rating: 4.6,
			Specialties: []string{"Gaming PCs", "Business Systems", "Upgrades"},
			Phone:       "+1 (555) 321-0987", Hours: "Mon-Fri 9AM-6PM",
			Warranty: "90 days", PriceRange: "$100-500",
			Reviews: []Review{
				{User: "Alex T.", Rating: 5, Comment: "Built an amazing gaming rig for me."},
				{User: "Rachel P.", Rating: 4, Comment: "Good for business computer needs."},
			},
		},
	},
	"appliances": {
		{
			Name: "Home Appliance Repair", Address: "654 Service Rd, Residential Area", Rating: 4.3,
			Specialties: []string{"Kitchen", "Laundry", "HVAC"},
			Phone:       "+1 (555) 654-3210", Hours: "Mon-Sat 7AM-5PM",
			Warranty: "180 days", PriceRange: "$120-600",
			Reviews: []Review{
				{User: "Tom B.", Rating: 4, Comment: "Fixed my washing machine quickly."},
				{User: "Nancy H.", Rating: 5, Comment: "Reliable service for all appliances."},
			},
		},
		{
			Name: "Fix-It-All Services", Address: "987 Repair Lane, Industrial Zone", Rating: 4.1,
			Specialties: []string{"Electronics", "Small Appliances", "Diagnostics"},
			Phone:       "+1 (555) 789-0123", Hours: "Tue-Sat 8AM-6PM",
			Warranty: "60 days", PriceRange: "$60-300",
			Reviews: []Review{
				{User: "Steve C.", Rating: 4, Comment: "Good diagnostic skills."},
				{User: "Maria G.", Rating: 4, Comment: "Honest pricing and service."},
			},
		},
	},
}

var faq = []FAQEntry{
	{
		Question: "How long does a typical repair take?",
		Answer:   "Most repairs are completed within 1-3 business days. Complex issues may take longer.",
	},
	{
		Question: "Do you offer warranties on repairs?",
		Answer:   "Yes, all our partner shops offer warranties ranging from 60-180 days depending on the repair type.",
	},
	{
		Question: "What should I do before bringing my device for repair?",
		Answer:   "Back up your data if possible, remove any cases or accessories, and note down the specific issues you're experiencing.",
	},
	{
		Question: "How much do repairs typically cost?",
		Answer:   "Costs vary by device and issue. Phone repairs: $40-200, Computer repairs: $80-500, Appliances: $60-600.",
	},
	{
		Question: "Can you repair water-damaged devices?",
		Answer:   "Many water-damaged devices can be repaired, but success depends on the extent of damage and how quickly you bring it in.",
	},
	{
		Question: "Do I need an appointment?",
		Answer:   "While walk-ins are welcome, we recommend calling ahead to ensure availability and reduce wait times.",
	},
}

var staticProducts = []Product{
	{
		ID: 1001, Title: "iPhone 12 (Refurbished)", Brand: "Apple", Model: "A2403",
		Description: "Certified refurbished iPhone 12, 64GB, unlocked. Battery health above 85%.",
		Price:       379.99, OriginalPrice: price(699.00), CategoryID: 1,
		Images:         []string{"/images/products/iphone12.jpg"},
		Specifications: map[string]string{"Storage": "64GB", "Color": "Black", "Condition": "Refurbished"},
		WarrantyInfo:   "6 months", SellerName: "E-Cycle Certified", SellerRating: 4.8,
		IsSelling: true, Status: "available",
	},
	{
		ID: 1002, Title: "ThinkPad T480 (Refurbished)", Brand: "Lenovo", Model: "T480",
		Description: "Business laptop, i5-8350U, 16GB RAM, 256GB SSD. Professionally wiped and tested.",
		Price:       329.00, OriginalPrice: price(1099.00), CategoryID: 2,
		Images:         []string{"/images/products/t480.jpg"},
		Specifications: map[string]string{"CPU": "Intel i5-8350U", "RAM": "16GB", "Storage": "256GB SSD"},
		WarrantyInfo:   "6 months", SellerName: "E-Cycle Certified", SellerRating: 4.8,
		IsSelling: true, Status: "available",
	},
	{
		ID: 1003, Title: "Dyson V8 Vacuum (Renewed)", Brand: "Dyson", Model: "V8 Animal",
		Description: "Cordless stick vacuum with new battery pack. Cleaned and fully serviced.",
		Price:       189.50, OriginalPrice: price(399.99), CategoryID: 3,
		Images:         []string{"/images/products/dysonv8.jpg"},
		Specifications: map[string]string{"Runtime": "40 min", "Type": "Cordless stick"},
		WarrantyInfo:   "90 days", SellerName: "E-Cycle Certified", SellerRating: 4.7,
		IsSelling: true, Status: "available",
	},
	{
		ID: 1004, Title: "Bose QuietComfort 35 II", Brand: "Bose", Model: "QC35 II",
		Description: "Wireless noise cancelling headphones, replaced ear cushions, 30-day tested.",
		Price:       149.00, OriginalPrice: price(299.00), CategoryID: 4,
		Images:         []string{"/images/products/qc35.jpg"},
		Specifications: map[string]string{"Connectivity": "Bluetooth", "Battery": "20 hours"},
		WarrantyInfo:   "90 days", SellerName: "E-Cycle Certified", SellerRating: 4.9,
		IsSelling: true, Status: "available",
	},
	{
		ID: 1005, Title: "PlayStation 4 Slim 1TB", Brand: "Sony", Model: "CUH-2215B",
		Description: "Console with one controller, fresh thermal paste, quiet fan. Saves your planet and your wallet.",
		Price:       179.99, OriginalPrice: price(299.99), CategoryID: 5,
		Images:         []string{"/images/products/ps4slim.jpg"},
		Specifications: map[string]string{"Storage": "1TB", "Includes": "1 controller, HDMI cable"},
		WarrantyInfo:   "6 months", SellerName: "E-Cycle Certified", SellerRating: 4.6,
		IsSelling: true, Status: "available",
	},
	{
		ID: 1006, Title: "Anker PowerPort 5 Charger", Brand: "Anker", Model: "A2124",
		Description: "5-port USB desktop charger, recovered from open-box returns. Like new.",
		Price:       19.99, OriginalPrice: price(39.99), CategoryID: 6,
		Images:         []string{"/images/products/powerport5.jpg"},
		Specifications: map[string]string{"Ports": "5x USB-A", "Output": "40W total"},
		WarrantyInfo:   "30 days", SellerName: "E-Cycle Certified", SellerRating: 4.5,
		IsSelling: true, Status: "available",
	},
}
