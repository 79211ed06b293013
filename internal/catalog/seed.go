package catalog

const sampleLink = "https://www.amazon.in/s?k=amazon+online+sofa"

type seedRow struct {
	name      string
	costRange string
	priceMin  float64
	priceMax  float64
}

var seedByRoom = map[string][]seedRow{
	"Living Room": {
		{"Sofa", "Medium", 20000, 25000},
		{"Coffee Table", "Low", 2000, 3000},
		{"Accent Chair", "Medium", 10000, 15000},
		{"Bookshelf", "High", 7000, 10000},
		{"Lamp", "Low", 1000, 2000},
		{"Rug", "Medium", 3000, 4000},
		{"Side Table", "Low", 4000, 6000},
		{"TV Stand", "Medium", 8000, 10000},
		{"Clock", "Low", 1000, 2000},
		{"Curtains", "Medium", 3000, 6000},
		{"Wall Art", "Low", 1000, 2000},
		{"Cushions", "Low", 1000, 1500},
		{"Luxury Sofa", "High", 40000, 60000},
		{"Designer Coffee Table", "High", 10000, 15000},
		{"High-End Accent Chair", "High", 10000, 15000},
		{"Antique Bookshelf", "High", 10000, 20000},
		{"Chandelier", "High", 20000, 40000},
		{"Handcrafted Rug", "High", 12000, 15000},
	},
	"Master Bedroom": {
		{"Bed", "High", 40000, 100000},
		{"Nightstand", "Medium", 3000, 5000},
		{"Dresser", "Medium", 5000, 8000},
		{"Wardrobe", "High", 15000, 25000},
		{"Desk", "Medium", 2000, 3000},
		{"Desk Chair", "Low", 2000, 3000},
		{"Bedside Lamp", "Low", 1000, 2000},
		{"Bookcase", "Medium", 2000, 3000},
		{"Vanity", "High", 20000, 30000},
		{"Mirror", "Medium", 3000, 5000},
		{"Curtains", "Low", 2000, 4000},
		{"Carpet", "Low", 1500, 2500},
		{"Luxury King-Sized Bed", "High", 30000, 40000},
		{"Designer Wardrobe", "High", 20000, 30000},
		{"Custom Dresser", "High", 8000, 20000},
		{"Smart Mirror", "High", 6000, 10000},
	},
	"Kids Bedroom": {
		{"Bunker Bed", "Medium", 10000, 20000},
		{"Nightstand", "Low", 1000, 2000},
		{"Dresser", "Medium", 2000, 3000},
		{"Wardrobe", "Medium", 1500, 4000},
		{"Desk", "Low", 1000, 3000},
		{"Desk Chair", "Low", 1000, 1500},
		{"Lamp", "Low", 1000, 1500},
		{"Bookshelf", "Low", 1000, 2000},
		{"Chest of Drawers", "Medium", 2000, 3000},
		{"Toy Stand", "Medium", 1500, 2500},
		{"Study Table", "Medium", 2000, 3000},
		{"Curtains", "Low", 1000, 2000},
		{"Bean Bag", "Low", 1000, 2500},
		{"Custom Bunker Bed", "High", 20000, 30000},
		{"Designer Wardrobe", "High", 10000, 20000},
		{"Luxury Study Desk", "High", 5000, 15000},
		{"High-End Toy Stand", "High", 5000, 10000},
		{"Smart Lighting System", "High", 10000, 20000},
	},
	"Kitchen": {
		{"Stove", "Low", 4000, 6000},
		{"Stove", "High", 5000, 7500},
		{"Chimney", "High", 8000, 10000},
		{"Microwave", "Medium", 4000, 6000},
		{"Dishwasher", "Medium", 4500, 7000},
		{"Refrigerator", "Low", 10000, 15000},
		{"Toaster", "Medium", 2000, 3000},
		{"Coffee Maker", "High", 4000, 5000},
		{"Mixer Grinder", "Low", 3000, 4000},
		{"Blender", "Medium", 2500, 3500},
		{"Water Purifier", "Low", 4000, 5000},
		{"Smart Refrigerator", "High", 30000, 50000},
		{"Professional Gas Range", "High", 15000, 30000},
		{"Built-in Coffee Machine", "High", 8000, 20000},
		{"Luxury Marble Countertops", "High", 15000, 35000},
		{"Custom Cabinetry", "High", 25000, 35000},
	},
	"Dining Room": {
		{"Dining Table", "High", 30000, 50000},
		{"Dining Chairs", "Medium", 2500, 5000},
		{"Sideboard", "Medium", 2000, 5000},
		{"Bar Cabinet", "High", 10000, 20000},
		{"Buffet Table", "Medium", 5000, 10000},
		{"Dinnerware Set", "Low", 1000, 2500},
		{"Cutlery Set", "Low", 1000, 2000},
		{"Table Cloth", "Low", 1000, 1500},
		{"Wall Art", "Low", 500, 1500},
		{"Chandelier", "High", 20000, 40000},
		{"Custom Dining Table", "High", 300000, 500000},
		{"Designer Dining Chairs", "High", 15000, 25000},
		{"Luxury Sideboard", "High", 20000, 30000},
		{"Crystal Chandelier", "High", 15000, 30000},
		{"Handcrafted Dinnerware Set", "High", 5000, 10000},
	},
	"Home Theatre": {
		{"Projector", "High", 8000, 15000},
		{"Projector Screen", "Medium", 1500, 4000},
		{"Sound System", "High", 10000, 20000},
		{"Recliner Chair", "High", 25000, 45000},
		{"Popcorn Machine", "Low", 2500, 4000},
		{"Home Theatre Lighting", "Medium", 2000, 3500},
		{"Blu-ray Player", "Medium", 4000, 5500},
		{"Media Cabinet", "Low", 2000, 4000},
		{"Acoustic Panels", "High", 20000, 30000},
		{"4K Laser Projector", "High", 25000, 45000},
		{"High-End Surround Sound System", "High", 25000, 45000},
		{"Luxury Recliner Chairs", "High", 30000, 50000},
		{"Automated Lighting System", "High", 25000, 45000},
		{"Premium Acoustic Panels", "High", 20000, 40000},
	},
	"Study Room": {
		{"Desk", "Medium", 1500, 3000},
		{"Office Chair", "Low", 1500, 2500},
		{"Bookshelf", "Low", 1000, 3500},
		{"Desk Lamp", "Low", 1000, 2000},
		{"Filing Cabinet", "Medium", 1500, 3000},
		{"Whiteboard", "Low", 1500, 2500},
		{"Printer", "Medium", 4000, 5000},
		{"Rug", "Low", 1000, 2000},
		{"Curtains", "Low", 1000, 2500},
		{"Wall Art", "Low", 500, 1500},
		{"Ergonomic Executive Chair", "High", 5000, 15000},
		{"Luxury Wooden Desk", "High", 10000, 20000},
		{"Custom Bookshelf", "High", 8000, 20000},
		{"High-End Filing Cabinet", "High", 5000, 15000},
		{"Smart Desk Lamp", "High", 5000, 10000},
	},
}

// roomOrder keeps SampleItems deterministic across runs.
var roomOrder = []string{
	"Living Room",
	"Master Bedroom",
	"Kids Bedroom",
	"Kitchen",
	"Dining Room",
	"Home Theatre",
	"Study Room",
}

// SampleItems returns the built-in furniture data set used to seed new
// catalogs and to back the in-memory store.
func SampleItems() []Item {
	items := []Item{}
	for _, room := range roomOrder {
		for _, row := range seedByRoom[room] {
			items = append(items, Item{
				Name:      row.name,
				RoomType:  room,
				CostRange: row.costRange,
				PriceMin:  row.priceMin,
				PriceMax:  row.priceMax,
				Link:      sampleLink,
			})
		}
	}
	return items
}
