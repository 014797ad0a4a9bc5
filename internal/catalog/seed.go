package catalog

// Seed data for the three Austin stores. Applied once on first boot when the
// catalog tables are empty; after that the database is the source of truth.

var allLocations = []string{"downtown", "soco", "east"}

// SeedLocations returns the initial set of stores.
func SeedLocations() []Location {
	return []Location{
		{
			ID:            "downtown",
			Name:          "Downtown Austin",
			Address:       "401 Congress Ave, Austin, TX 78701",
			HoursLabel:    "Mon-Sun · 7:00 AM - 8:00 PM",
			IsOpenNow:     true,
			PickupEtaMins: 12,
			TaxRateBps:    825,
			ImageURL:      "https://images.unsplash.com/photo-1554118811-1e0d58224f24?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:            "soco",
			Name:          "South Congress",
			Address:       "1608 S Congress Ave, Austin, TX 78704",
			HoursLabel:    "Mon-Sun · 7:30 AM - 7:30 PM",
			IsOpenNow:     true,
			PickupEtaMins: 16,
			TaxRateBps:    825,
			ImageURL:      "https://images.unsplash.com/photo-1559925393-8be0ec4767c8?auto=format&fit=crop&w=800&q=80",
		},
		{
			ID:            "east",
			Name:          "East Austin",
			Address:       "1209 E 7th St, Austin, TX 78702",
			HoursLabel:    "Mon-Sun · 8:00 AM - 6:00 PM",
			IsOpenNow:     false,
			PickupEtaMins: 20,
			TaxRateBps:    825,
			ImageURL:      "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?auto=format&fit=crop&w=800&q=80",
		},
	}
}

type seedItem struct {
	item        Item
	priceCents  int
	locationIDs []string
}

func seedItems() []seedItem {
	return []seedItem{
		{
			item: Item{
				ID:          "croissant-butter",
				Name:        "Cultured Butter Croissant",
				Description: "Laminated daily with Normandy-style cultured butter.",
				ImageURL:    "https://images.unsplash.com/photo-1555507036-ab794f4afe5a?auto=format&fit=crop&w=800&q=80",
				Category:    "Pastry",
				Tags:        []string{"popular"},
			},
			priceCents:  450,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "kouign-amann",
				Name:        "Salted Caramel Kouign-Amann",
				Description: "Caramelized Breton pastry with flaky, buttery layers.",
				ImageURL:    "https://images.unsplash.com/photo-1509440159596-0249088772ff?auto=format&fit=crop&w=800&q=80",
				Category:    "Pastry",
				Tags:        []string{"new"},
			},
			priceCents:  525,
			locationIDs: []string{"downtown", "soco"},
		},
		{
			item: Item{
				ID:          "danish-berry",
				Name:        "Roasted Berry Danish",
				Description: "Cream cheese custard, roasted berries, citrus glaze.",
				ImageURL:    "https://images.unsplash.com/photo-1483695028939-5bb13f8648b0?auto=format&fit=crop&w=800&q=80",
				Category:    "Pastry",
				Tags:        []string{"seasonal"},
			},
			priceCents:  575,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "country-loaf",
				Name:        "Country Sourdough",
				Description: "48-hour fermented loaf with a caramelized crust.",
				ImageURL:    "https://images.unsplash.com/photo-1585478259715-876acc5be8eb?auto=format&fit=crop&w=800&q=80",
				Category:    "Bread",
				Tags:        []string{"popular"},
			},
			priceCents:  900,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "seeded-rye",
				Name:        "Seeded Rye",
				Description: "Hearty rye with toasted sunflower, flax, and sesame.",
				ImageURL:    "https://images.unsplash.com/photo-1512058564366-18510be2db19?auto=format&fit=crop&w=800&q=80",
				Category:    "Bread",
			},
			priceCents:  1000,
			locationIDs: []string{"downtown", "east"},
		},
		{
			item: Item{
				ID:          "olive-levain",
				Name:        "Olive Levain",
				Description: "Naturally leavened dough folded with Castelvetrano olives.",
				ImageURL:    "https://images.unsplash.com/photo-1486887396153-fa416526c108?auto=format&fit=crop&w=800&q=80",
				Category:    "Bread",
			},
			priceCents:  1050,
			locationIDs: []string{"soco", "east"},
		},
		{
			item: Item{
				ID:          "honey-cake",
				Name:        "Burnt Honey Layer Cake",
				Description: "Whipped mascarpone frosting and candied citrus peel.",
				ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?auto=format&fit=crop&w=800&q=80",
				Category:    "Cake",
				Tags:        []string{"seasonal"},
			},
			priceCents:  850,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "pistachio-rose",
				Name:        "Pistachio Rose Slice",
				Description: "Olive oil sponge with rose cream and pistachio praline.",
				ImageURL:    "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?auto=format&fit=crop&w=800&q=80",
				Category:    "Cake",
				Tags:        []string{"seasonal"},
			},
			priceCents:  875,
			locationIDs: []string{"downtown", "soco"},
		},
		{
			item: Item{
				ID:          "chocolate-torte",
				Name:        "Dark Chocolate Torte",
				Description: "Flourless torte with sea salt ganache and cream.",
				ImageURL:    "https://images.unsplash.com/photo-1542826438-bd32f43d626f?auto=format&fit=crop&w=800&q=80",
				Category:    "Cake",
			},
			priceCents:  925,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "drip-coffee",
				Name:        "House Drip Coffee",
				Description: "Single-origin rotating roast, brewed fresh every hour.",
				ImageURL:    "https://images.unsplash.com/photo-1509042239860-f550ce710b93?auto=format&fit=crop&w=800&q=80",
				Category:    "Coffee",
				Tags:        []string{"popular"},
			},
			priceCents:  350,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "oat-latte",
				Name:        "Oat Milk Latte",
				Description: "Double shot espresso with steamed oat milk.",
				ImageURL:    "https://images.unsplash.com/photo-1572442388796-11668a67e53d?auto=format&fit=crop&w=800&q=80",
				Category:    "Coffee",
				Tags:        []string{"vegan"},
			},
			priceCents:  550,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "cold-brew",
				Name:        "Nitro Cold Brew",
				Description: "Slow-steeped 24 hours, served on tap with a creamy head.",
				ImageURL:    "https://images.unsplash.com/photo-1461023058943-07fcbe16d735?auto=format&fit=crop&w=800&q=80",
				Category:    "Coffee",
			},
			priceCents:  500,
			locationIDs: []string{"downtown", "east"},
		},
		{
			item: Item{
				ID:          "cortado",
				Name:        "Cortado",
				Description: "Equal parts espresso and steamed milk. No fuss.",
				ImageURL:    "https://images.unsplash.com/photo-1514432324607-a09d9b4aefda?auto=format&fit=crop&w=800&q=80",
				Category:    "Coffee",
			},
			priceCents:  425,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "focaccia-sandwich",
				Name:        "Focaccia Sandwich",
				Description: "Mortadella, provolone, chili crisp aioli, arugula.",
				ImageURL:    "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?auto=format&fit=crop&w=800&q=80",
				Category:    "Savory",
			},
			priceCents:  1250,
			locationIDs: allLocations,
		},
		{
			item: Item{
				ID:          "spinach-pie",
				Name:        "Spinach & Feta Hand Pie",
				Description: "Buttery pastry packed with spinach, feta, and herbs.",
				ImageURL:    "https://images.unsplash.com/photo-1551024506-0bccd828d307?auto=format&fit=crop&w=800&q=80",
				Category:    "Savory",
				Tags:        []string{"vegan"},
			},
			priceCents:  700,
			locationIDs: []string{"soco", "east"},
		},
	}
}

// SeedItems returns the item definitions.
func SeedItems() []Item {
	seeds := seedItems()
	items := make([]Item, len(seeds))
	for i, s := range seeds {
		items[i] = s.item
	}
	return items
}

// SeedAvailability returns the per-location availability rows, all active.
func SeedAvailability() []Availability {
	var rows []Availability
	for _, s := range seedItems() {
		for _, locID := range s.locationIDs {
			rows = append(rows, Availability{
				LocationID: locID,
				ItemID:     s.item.ID,
				PriceCents: s.priceCents,
				IsActive:   true,
			})
		}
	}
	return rows
}
