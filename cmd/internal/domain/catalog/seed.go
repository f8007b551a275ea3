package catalog

import "driveline/cmd/internal/domain/entity"

// Default returns the store seeded with the showroom inventory.
func Default() *Store {
	return New(inventory)
}

var inventory = []entity.VehicleDetail{
	{
		Vehicle: entity.Vehicle{
			ID:      1,
			Name:    "Tesla Model 3",
			Price:   "73,490",
			Image:   "/images/tesla s.png",
			Type:    "Electric",
			Year:    "2024",
			Mileage: "New",
		},
		Description: "Experience the future of driving with the Tesla Model 3. This all-electric sedan combines luxury with cutting-edge technology and exceptional performance.",
		Specs: map[string]string{
			"range":        "405 miles",
			"acceleration": "0-60 mph in 3.1s",
			"topSpeed":     "149 mph",
			"powertrain":   "Dual Motor All-Wheel Drive",
		},
		Features: []string{
			"Enhanced Autopilot",
			"17-inch Cinematic Display",
			"Premium Audio System",
			"Wireless Gaming Computer",
			"HEPA Air Filtration",
			"Custom Driver Profiles",
		},
		Gallery: []string{
			"/images/tesla s.png",
			"/images/teslainside.jpg",
			"/images/teslainside2.jpg",
		},
	},
	{
		Vehicle: entity.Vehicle{
			ID:      2,
			Name:    "BMW M4",
			Price:   "52,800",
			Image:   "/images/bmwi4.png",
			Type:    "Luxury",
			Year:    "2024",
			Mileage: "New",
		},
		Description: "The BMW M4 delivers exceptional performance and luxury in one stunning package. With its powerful engine and precise handling, it offers an unmatched driving experience.",
		Specs: map[string]string{
			"engine":       "3.0L Twin-Turbo inline-6",
			"horsepower":   "473 hp",
			"acceleration": "0-60 mph in 3.8s",
			"transmission": "8-speed automatic",
		},
		Features: []string{
			"M Sport Differential",
			"Carbon Fiber Roof",
			"Adaptive M Suspension",
			"BMW Live Cockpit Professional",
			"Harman Kardon Surround Sound",
			"Head-Up Display",
		},
		Gallery: []string{
			"/images/bmwi4.png",
			"/images/bmwback.jpg",
			"/images/bmwinside2.jpg",
		},
	},
	{
		Vehicle: entity.Vehicle{
			ID:      3,
			Name:    "Mercedes C-Class",
			Price:   "42,000",
			Image:   "/images/benz c.png",
			Type:    "Luxury",
			Year:    "2020",
			Mileage: "Used",
		},
		Description: "The Mercedes-Benz C-Class exemplifies luxury and sophistication. This elegant sedan combines refined comfort with cutting-edge technology and impressive performance capabilities.",
		Specs: map[string]string{
			"engine":       "2.0L Turbocharged 4-cylinder",
			"horsepower":   "255 hp",
			"acceleration": "0-60 mph in 5.9s",
			"transmission": "9G-TRONIC 9-speed",
		},
		Features: []string{
			"MBUX Infotainment System",
			"11.9-inch Central Display",
			"Burmester® 3D Surround Sound",
			"LED Digital Light System",
			"Active Distance Assist DISTRONIC®",
			"Wireless Device Charging",
		},
		Gallery: []string{
			"/images/benz c.png",
			"/images/benzinside.png",
			"/images/benzinside2.jpg",
		},
	},
	{
		Vehicle: entity.Vehicle{
			ID:      4,
			Name:    "Porsche 911",
			Price:   "116,950",
			Image:   "/images/porsche911.png",
			Type:    "Sports",
			Year:    "2024",
			Mileage: "New",
		},
		Description: "The iconic Porsche 911 continues to set the standard for sports cars. With its legendary performance, precise handling, and timeless design, it delivers an unparalleled driving experience.",
		Specs: map[string]string{
			"engine":       "3.0L Twin-Turbo Flat-Six",
			"horsepower":   "379 hp",
			"acceleration": "0-60 mph in 3.4s",
			"transmission": "8-speed PDK",
		},
		Features: []string{
			"Sport Chrono Package",
			"Porsche Active Suspension Management",
			"Launch Control",
			"Porsche Communication Management",
			"Bose® Surround Sound System",
			"Sport Seats Plus",
		},
		Gallery: []string{
			"/images/porsche911.png",
			"/images/porscheinside.jpg",
			"/images/porscheback.jpg",
		},
	},
	{
		Vehicle: entity.Vehicle{
			ID:      5,
			Name:    "Audi e-tron GT",
			Price:   "106,500",
			Image:   "/images/etron.png",
			Type:    "Electric",
			Year:    "2024",
			Mileage: "New",
		},
		Description: "The Audi e-tron GT represents the perfect fusion of luxury and electric performance. This all-electric grand tourer combines stunning design with cutting-edge technology.",
		Specs: map[string]string{
			"range":        "238 miles",
			"horsepower":   "522 hp",
			"acceleration": "0-60 mph in 3.9s",
			"charging":     "5-80% in 23 minutes",
		},
		Features: []string{
			"Matrix LED headlights",
			"Audi Virtual Cockpit",
			"Bang & Olufsen 3D Sound",
			"Adaptive Air Suspension",
			"e-quattro all-wheel drive",
			"Massage Front Seats",
		},
		Gallery: []string{
			"/images/etron.png",
			"/images/etroninside.jpg",
			"/images/etronback.jpg",
		},
	},
	{
		Vehicle: entity.Vehicle{
			ID:      6,
			Name:    "Lexus LS",
			Price:   "77,535",
			Image:   "/images/lexusls.png",
			Type:    "Luxury",
			Year:    "2023",
			Mileage: "Used",
		},
		Description: "The Lexus LS is the epitome of luxury and refinement. This flagship sedan offers exceptional comfort, advanced technology, and meticulous craftsmanship.",
		Specs: map[string]string{
			"engine":       "3.5L Twin-Turbo V6",
			"horsepower":   "416 hp",
			"acceleration": "0-60 mph in 4.6s",
			"transmission": "10-speed Direct-Shift",
		},
		Features: []string{
			"Mark Levinson® Audio",
			"28-way Power Front Seats",
			"Lexus Safety System+ 2.5",
			"Digital Rearview Mirror",
			"Kiriko Glass Interior Trim",
			"Executive Package with Massage",
		},
		Gallery: []string{
			"/images/lexusls.png",
			"/images/lexusinside.jpg",
			"/images/lexusback.jpg",
		},
	},
}
