package memory

import "github.com/storehub/dashboard-system/internal/core/domain"

// indianStates is the fixed location reference list: ten states, eight
// cities each, in a stable order the generator and the filter UI rely on.
var indianStates = []domain.State{
	{
		ID:     "maharashtra",
		Name:   "Maharashtra",
		Cities: []string{"Mumbai", "Pune", "Nagpur", "Nashik", "Aurangabad", "Solapur", "Kolhapur", "Amravati"},
	},
	{
		ID:     "karnataka",
		Name:   "Karnataka",
		Cities: []string{"Bangalore", "Mysore", "Mangalore", "Hubli", "Belgaum", "Davangere", "Shimoga", "Tumkur"},
	},
	{
		ID:     "tamilnadu",
		Name:   "Tamil Nadu",
		Cities: []string{"Chennai", "Coimbatore", "Madurai", "Tiruchirappalli", "Salem", "Tirunelveli", "Erode", "Vellore"},
	},
	{
		ID:     "kerala",
		Name:   "Kerala",
		Cities: []string{"Kochi", "Thiruvananthapuram", "Kozhikode", "Thrissur", "Kollam", "Palakkad", "Alappuzha", "Kannur"},
	},
	{
		ID:     "gujarat",
		Name:   "Gujarat",
		Cities: []string{"Ahmedabad", "Surat", "Vadodara", "Rajkot", "Bhavnagar", "Jamnagar", "Gandhinagar", "Anand"},
	},
	{
		ID:     "rajasthan",
		Name:   "Rajasthan",
		Cities: []string{"Jaipur", "Jodhpur", "Udaipur", "Ajmer", "Bikaner", "Kota", "Bharatpur", "Alwar"},
	},
	{
		ID:     "westbengal",
		Name:   "West Bengal",
		Cities: []string{"Kolkata", "Howrah", "Durgapur", "Asansol", "Siliguri", "Malda", "Bardhaman", "Kharagpur"},
	},
	{
		ID:     "uttarpradesh",
		Name:   "Uttar Pradesh",
		Cities: []string{"Lucknow", "Kanpur", "Agra", "Varanasi", "Meerut", "Allahabad", "Bareilly", "Aligarh"},
	},
	{
		ID:     "telangana",
		Name:   "Telangana",
		Cities: []string{"Hyderabad", "Warangal", "Nizamabad", "Karimnagar", "Khammam", "Mahbubnagar", "Nalgonda", "Medak"},
	},
	{
		ID:     "andhrapradesh",
		Name:   "Andhra Pradesh",
		Cities: []string{"Visakhapatnam", "Vijayawada", "Guntur", "Nellore", "Kurnool", "Tirupati", "Rajahmundry", "Kadapa"},
	},
}

var storeCategories = []string{
	"Restaurant", "Cafe", "Electronics", "Clothing", "Grocery", "Pharmacy",
	"Bookstore", "Jewelry", "Furniture", "Sports", "Beauty", "Automobile",
	"Mobile", "Sweets", "Bakery", "Medical", "Education", "Travel",
}

var storeNames = []string{
	"Royal Palace", "Golden Gate", "Silver Star", "Diamond Plaza", "Emerald Corner",
	"Sapphire Store", "Ruby Retail", "Pearl Point", "Crystal Clear", "Platinum Plus",
	"Sunshine Super", "Moonlight Mall", "Starlight Shop", "Rainbow Retail", "Galaxy Goods",
	"Ocean View", "Mountain Peak", "Valley Vibes", "River Side", "Garden Gate",
	"Heritage Hub", "Modern Mart", "Classic Corner", "Trendy Touch", "Elite Emporium",
	"Prime Plaza", "Select Store", "Choice Corner", "Quality Quarters", "Premium Point",
}

var storeDescriptions = []string{
	"A premium shopping destination with excellent customer service",
	"Family-owned business serving the community for over 20 years",
	"Modern store with latest products and competitive prices",
	"Traditional store with authentic products and warm hospitality",
	"One-stop shop for all your daily needs",
	"Specialized store with expert staff and quality products",
	"Popular local store known for its fresh products",
	"Trusted name in the locality with loyal customers",
	"Contemporary store with wide variety and great deals",
	"Heritage store combining tradition with modern convenience",
}

var storeAreas = []string{
	"MG Road", "Main Street", "Commercial Complex", "Market Area", "Shopping Plaza",
	"Central Avenue", "Gandhi Road", "Nehru Street", "Station Road", "Mall Road",
	"Business District", "City Center", "Old Town", "New Area", "Industrial Zone",
}
