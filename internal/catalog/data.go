package catalog

// Published price list for PH Cleaning Pro (Port Harcourt). Prices are
// whole Naira; the currency has no minor units in this catalog.

var services = []Service{
	{
		ID:            "svc_general",
		Title:         "General Cleaning",
		Description:   "Routine maintenance to keep your home fresh and tidy. Best for weekly or bi-weekly service.",
		BasePrice:     15000,
		DurationHours: 3,
		Features: []string{
			"Sweep and mop floors",
			"Dust all surfaces",
			"Clean kitchen counters and sinks",
			"Wipe appliances externally",
			"Scrub toilets and basins",
			"Wipe mirrors",
			"Empty trash",
		},
		Image: "https://images.unsplash.com/photo-1527515545081-5db817172677?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_deep",
		Title:         "Deep Cleaning",
		Description:   "A thorough top-to-bottom clean. Ideal for homes that haven't been cleaned professionally in months.",
		BasePrice:     35000,
		DurationHours: 6,
		Features: []string{
			"Wash walls where applicable",
			"Scrub tiles and grout",
			"Clean behind/under appliances",
			"Remove grease from kitchen hood",
			"Wash windows and tracks",
			"Clean light fixtures",
			"Sanitize high-touch points",
		},
		Image: "https://images.unsplash.com/photo-1584622050111-993a426fbf0a?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_move",
		Title:         "Move-In/Move-Out",
		Description:   "Ensure your deposit return or start fresh in a new home. Empty home requirement.",
		BasePrice:     45000,
		DurationHours: 7,
		Features: []string{
			"Full deep-clean checklist",
			"Remove stickers and paint splashes",
			"Clean inside cabinets/wardrobes",
			"Clean inside ovens/fridges",
			"Scrub balcony areas",
			"Ensure property is odor-free",
		},
		Image: "https://images.unsplash.com/photo-1594917666299-9759c8db9927?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_construction",
		Title:         "Post-Construction",
		Description:   "Specialized cleaning for after renovation or building work. We remove fine dust and debris.",
		BasePrice:     60000,
		DurationHours: 8,
		Features: []string{
			"Remove debris and materials",
			"Sweep and vacuum fine dust",
			"Scrape paint and cement stains",
			"Thoroughly clean windows/tracks",
			"Mop with industrial solution",
			"Polish fixtures",
		},
		Image: "https://images.unsplash.com/photo-1621905251189-08b45d6a269e?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_office",
		Title:         "Office & Commercial",
		Description:   "Professional cleaning for workspaces to maintain a productive and healthy environment.",
		BasePrice:     25000,
		DurationHours: 4,
		Features: []string{
			"Clean desks and work surfaces",
			"Empty all trash bins",
			"Sanitize restrooms completely",
			"Wipe glass doors and partitions",
			"Clean reception and communal areas",
			"Disinfect high-touch points",
		},
		Image: "https://images.unsplash.com/photo-1497366216548-37526070297c?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_shortlet",
		Title:         "Short-let/Airbnb Turnover",
		Description:   "Fast and reliable turnover for Airbnb and short-let apartments. Impress your next guest.",
		BasePrice:     12000,
		DurationHours: 2,
		Features: []string{
			"Strip and replace beddings",
			"Sanitize bathroom and kitchen",
			"Restock essentials",
			"Vacuum and mop floors",
			"Reset furniture layout",
			"Check for damages",
		},
		Image: "https://images.unsplash.com/photo-1522771753035-4850d3a5d495?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_industrial",
		Title:         "Industrial Cleaning",
		Description:   "Heavy-duty cleaning for warehouses, factories, and industrial zones. Safety compliant.",
		BasePrice:     150000,
		DurationHours: 10,
		Features: []string{
			"Assess hazard zones",
			"Degrease machinery areas",
			"Clean oil spills safely",
			"Vacuum industrial dust",
			"Wash high walls/structures",
			"Proper waste disposal",
		},
		Image: "https://images.unsplash.com/photo-1550751827-4bd374c3f58b?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_floor",
		Title:         "Floor Polishing",
		Description:   "Restore the shine to your marble, terrazzo, or tiled floors with professional buffing.",
		BasePrice:     30000,
		DurationHours: 5,
		Features: []string{
			"Strip old polish",
			"Clean surface thoroughly",
			"Buff floor to shine",
			"Apply polish or sealant",
			"Inspect for streaks",
		},
		Image: "https://images.unsplash.com/photo-1628177142898-93e36e4e3a50?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_carpet",
		Title:         "Carpet & Upholstery",
		Description:   "Deep clean for rugs, carpets, and sofas to remove stains, allergens, and odors.",
		BasePrice:     20000,
		DurationHours: 3,
		Features: []string{
			"Vacuum thoroughly",
			"Spot-treat stains",
			"Apply steam/chemical solution",
			"Extract moisture",
			"Brush fabric for even finish",
			"Deodorize",
		},
		Image: "https://images.unsplash.com/photo-1558317374-a309d91bc40d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_fumigation",
		Title:         "Fumigation & Pest Control",
		Description:   "Eliminate pests and insects safely. We use approved chemicals safe for residential use.",
		BasePrice:     25000,
		DurationHours: 4,
		Features: []string{
			"Inspect infestation areas",
			"Seal food items",
			"Target nests and hidden zones",
			"Apply chemicals safely",
			"Ventilate after treatment",
			"Post-treatment guidance",
		},
		Image: "https://images.unsplash.com/photo-1629196914375-f7e48f477b6d?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_janitorial",
		Title:         "Janitorial Contracts",
		Description:   "Ongoing contract cleaning for corporate buildings. Price displayed is a monthly starting estimate.",
		BasePrice:     200000,
		DurationHours: 0,
		Features: []string{
			"Daily floor cleaning",
			"Restroom sanitation",
			"Trash removal",
			"Consumables refilling",
			"Periodic deep-cleans",
			"Dedicated staff presence",
		},
		Image: "https://images.unsplash.com/photo-1580674285054-bed31e145f59?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:            "svc_event",
		Title:         "Event Venue Cleaning",
		Description:   "Pre and post-event cleanup for weddings, parties, and conferences.",
		BasePrice:     50000,
		DurationHours: 5,
		Features: []string{
			"Remove litter and trash",
			"Sweep and mop entire hall",
			"Sanitize chairs and tables",
			"Clear stage and backstage",
			"Clean restrooms",
			"Inspect venue before handover",
		},
		Image: "https://images.unsplash.com/photo-1519167758481-83f550bb49b3?ixlib=rb-1.2.1&auto=format&fit=crop&w=800&q=80",
	},
}

var addons = []Addon{
	{ID: "add_fridge", Name: "Inside Fridge", Price: 3000},
	{ID: "add_oven", Name: "Inside Oven", Price: 4000},
	{ID: "add_balcony", Name: "Balcony/Patio", Price: 2500},
	{ID: "add_laundry", Name: "Laundry (Wash & Fold)", Price: 5000},
	{ID: "add_upholstery_spot", Name: "Spot Clean Sofa", Price: 4500},
}

var neighborhoods = []Neighborhood{
	{Name: "Old GRA", Surcharge: 0},
	{Name: "New GRA", Surcharge: 0},
	{Name: "Trans Amadi", Surcharge: 1000},
	{Name: "Peter Odili Rd", Surcharge: 1000},
	{Name: "Woji", Surcharge: 1500},
	{Name: "Rumuola", Surcharge: 1500},
	{Name: "G.R.A Phase 1-3", Surcharge: 500},
	{Name: "Rumodara", Surcharge: 2500},
	{Name: "Airport Road", Surcharge: 3500},
	{Name: "Elelenwo", Surcharge: 2000},
	{Name: "Agip Estate", Surcharge: 1500},
}

var timeSlots = []string{
	"08:00 AM",
	"10:00 AM",
	"12:00 PM",
	"02:00 PM",
	"04:00 PM",
}
