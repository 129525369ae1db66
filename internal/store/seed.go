package store

import "github.com/vwcs/build-tracker/internal/models"

// Fixture history for the VW Passat B6 project car. Seed ids are
// deterministic so repeated seeding across cold starts stays idempotent
// as long as the collections remain non-empty.

func seedMaintenance() []models.MaintenanceEntry {
	return []models.MaintenanceEntry{
		{
			ID: "seed-maintenance-0", Date: "2024-07-01", Mileage: 277043, Category: models.CategoryEngine,
			Title:       "Coolant Top-off + Tire Swap",
			Description: "Coolant top-off and rear left tire replacement due to blowout. Cluster: 209,843 mi",
			Parts:       []string{"Coolant", "Rear Tire (temp oversized)"},
			Cost:        120, Priority: models.PriorityRoutine, Completed: true,
			Tags: []string{"coolant", "tire", "emergency"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-1", Date: "2023-11-15", Mileage: 275000, Category: models.CategoryEngine,
			Title:       "Cam Chain Service",
			Description: "Complete cam chain replacement with tensioner and guides. Post-service DTCs appeared.",
			Parts:       []string{"Cam Chain", "Chain Tensioner", "Chain Guides", "Timing Cover Gasket"},
			Cost:        1250, Priority: models.PriorityCritical, Completed: true,
			Tags: []string{"timing", "cam-chain", "engine"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-2", Date: "2022-11-20", Mileage: 268000, Category: models.CategoryEngine,
			Title:       "Timing Belt Service",
			Description: "Complete timing belt kit with water pump and tensioner replacement.",
			Parts:       []string{"Timing Belt", "Water Pump", "Tensioner", "Idler Pulley"},
			Cost:        850, Priority: models.PriorityCritical, Completed: true,
			Tags: []string{"timing", "belt", "water-pump"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-3", Date: "2023-08-15", Mileage: 272000, Category: models.CategoryEngine,
			Title:       "Cooling System Refresh",
			Description: "Complete cooling system overhaul: flange, heater core, pump, fan, tank",
			Parts:       []string{"Coolant Flange", "Heater Core", "Water Pump", "Cooling Fan", "Expansion Tank"},
			Cost:        680, Priority: models.PriorityCritical, Completed: true,
			Tags: []string{"cooling", "overhaul", "reliability"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-4", Date: "2023-06-10", Mileage: 271500, Category: models.CategorySuspension,
			Title:       "Full Brake Service",
			Description: "Complete brake overhaul: pads, rotors front and rear",
			Parts:       []string{"Front Brake Pads", "Rear Brake Pads", "Front Rotors", "Rear Rotors"},
			Cost:        420, Priority: models.PriorityCritical, Completed: true,
			Tags: []string{"brakes", "pads", "rotors", "safety"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-5", Date: "2024-05-20", Mileage: 276800, Category: models.CategoryEngine,
			Title:       "Partial Intake Cleaning",
			Description: "Intake manifold and throttle body cleaning for carbon buildup",
			Parts:       []string{"Intake Cleaner", "Throttle Body Cleaner", "Gaskets"},
			Cost:        180, Priority: models.PriorityRoutine, Completed: true,
			Tags: []string{"intake", "carbon", "cleaning"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-6", Date: "2024-01-20", Mileage: 275500, Category: models.CategoryElectrical,
			Title:       "Coil Pack Replacement",
			Description: "New OEM ignition coil packs to resolve cylinder 2 misfire issues",
			Parts:       []string{"OEM Coil Packs (x4)", "NGK BKR7EIX Spark Plugs"},
			Cost:        280, Priority: models.PriorityCritical, Completed: true,
			Tags: []string{"ignition", "coils", "oem"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-7", Date: "2024-06-15", Mileage: 277200, Category: models.CategoryExterior,
			Title:       "Rear Crash Rebuild",
			Description: "Rear end rebuilt post-spinout with bodywork and glass replacement",
			Parts:       []string{"Rear Quarter Panel", "Rear Glass (temp sealed)", "Body Filler", "Paint"},
			Cost:        2800, Priority: models.PriorityCritical, Completed: true,
			Tags: []string{"crash", "bodywork", "rebuild"}, Photos: []string{},
		},
		{
			ID: "seed-maintenance-8", Date: "2024-08-10", Mileage: 277500, Category: models.CategoryExterior,
			Title:       "Front Crash Assessment",
			Description: "Front crash damage: driver fender, hood, bumper, headlight. Using 2009 donor parts.",
			Parts:       []string{"2009 Donor Fender", "2009 Hood", "2009 Bumper", "2009 Headlight"},
			Cost:        1200, Priority: models.PriorityCritical, Completed: false,
			Tags: []string{"crash", "front", "donor-parts"}, Photos: []string{},
		},
	}
}

func seedModifications() []models.Modification {
	return []models.Modification{
		{
			ID: "seed-mod-0", Title: "Rev D Diverter Valve",
			Description: "OEM Rev D diverter valve upgrade for better boost response",
			Stage:       0, System: models.CategoryEngine, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 85, InstallDate: "2023-03-15",
			Notes: "Eliminates boost leaks, improved throttle response", Priority: 1,
			Tags: []string{"boost", "reliability", "oem"}, Photos: []string{},
		},
		{
			ID: "seed-mod-1", Title: "Catch Can with 034 Adapter Plate",
			Description: "Oil catch can system with 034 Motorsport adapter plate",
			Stage:       0, System: models.CategoryEngine, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 180, InstallDate: "2023-04-20",
			Notes: "Prevents carbon buildup in intake manifold", Priority: 1,
			Tags: []string{"pcv", "carbon", "reliability"}, Photos: []string{},
		},
		{
			ID: "seed-mod-2", Title: "Dogbone Insert",
			Description: "Polyurethane dogbone mount insert for reduced wheel hop",
			Stage:       0, System: models.CategorySuspension, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 45, InstallDate: "2023-05-10",
			Notes: "Significantly reduced wheel hop under acceleration", Priority: 2,
			Tags: []string{"mounts", "handling", "poly"}, Photos: []string{},
		},
		{
			ID: "seed-mod-3", Title: "NGK BKR7EIX Spark Plugs",
			Description: "One step colder iridium spark plugs for forced induction",
			Stage:       0, System: models.CategoryEngine, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 60, InstallDate: "2023-10-15",
			Notes: "Better heat range for turbo applications", Priority: 1,
			Tags: []string{"ignition", "plugs", "turbo"}, Photos: []string{},
		},
		{
			ID: "seed-mod-4", Title: "OEM Coil Packs",
			Description: "New OEM ignition coil packs to resolve misfires",
			Stage:       0, System: models.CategoryElectrical, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 280, InstallDate: "2024-01-20",
			Notes: "Resolved cylinder 2 misfire issues", Priority: 1,
			Tags: []string{"ignition", "coils", "oem"}, Photos: []string{},
		},
		{
			ID: "seed-mod-5", Title: "R36-style DRL Headlights",
			Description: "R36 Passat style headlights with integrated DRL strips",
			Stage:       0, System: models.CategoryLighting, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 450, InstallDate: "2023-08-05",
			Notes: "Dramatic improvement in lighting and aesthetics", Priority: 2,
			Tags: []string{"headlights", "drl", "r36", "aesthetics"}, Photos: []string{},
		},
		{
			ID: "seed-mod-6", Title: "GTI Rear Spoiler",
			Description: "OEM GTI rear spoiler for improved aerodynamics and looks",
			Stage:       0, System: models.CategoryExterior, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 220, InstallDate: "2023-09-12",
			Notes: "Perfect color match, adds sporty appearance", Priority: 3,
			Tags: []string{"spoiler", "aero", "gti", "exterior"}, Photos: []string{},
		},
		{
			ID: "seed-mod-7", Title: "Purple Underglow System",
			Description: "Music-reactive underglow with boost sync capability",
			Stage:       0, System: models.CategoryLighting, Status: models.StatusCompleted,
			Parts: []models.Part{}, Cost: 150, InstallDate: "2024-03-15",
			Notes: "Syncs to music via phone app", Priority: 3,
			Tags: []string{"underglow", "music-sync", "purple"}, Photos: []string{},
		},
		{
			ID: "seed-mod-8", Title: "K04 Turbo Upgrade",
			Description: "K04 turbo conversion for significant power gains",
			Stage:       1, System: models.CategoryEngine, Status: models.StatusPlanned,
			Parts: []models.Part{}, Cost: 800,
			Notes: "Needs supporting mods and tune", Priority: 1,
			Tags: []string{"turbo", "k04", "stage2"}, Photos: []string{},
		},
		{
			ID: "seed-mod-9", Title: "Methanol Injection Kit",
			Description: "Water/methanol injection for charge cooling and knock control",
			Stage:       1, System: models.CategoryEngine, Status: models.StatusPlanned,
			Parts: []models.Part{}, Cost: 650,
			Notes: "Pairs with K04 for safe timing", Priority: 1,
			Tags: []string{"meth", "cooling", "knock"}, Photos: []string{},
		},
		{
			ID: "seed-mod-10", Title: "High Pressure Fuel Pump",
			Description: "Upgraded HPFP internals for K04 fueling headroom",
			Stage:       2, System: models.CategoryEngine, Status: models.StatusPlanned,
			Parts: []models.Part{}, Cost: 450,
			Notes: "Required before tune", Priority: 1,
			Tags: []string{"fuel", "hpfp", "supporting"}, Photos: []string{},
		},
		{
			ID: "seed-mod-11", Title: "K04 Tune",
			Description: "ECU calibration for the full K04 setup",
			Stage:       3, System: models.CategoryEngine, Status: models.StatusPlanned,
			Parts: []models.Part{}, Cost: 600,
			Notes: "Final step once hardware is in", Priority: 1,
			Tags: []string{"tune", "ecu", "stage3"}, Photos: []string{},
		},
	}
}

func seedDiagnostics() []models.DiagnosticCode {
	return []models.DiagnosticCode{
		{
			ID: "seed-dtc-0", Code: "P0341",
			Description: "Camshaft Position Sensor (Bank 1) - Range/Performance Problem",
			Date:        "2023-12-01", Mileage: 274272, Active: true,
			FreezeFrameData: "RPM: 1720, Load: 14.3%, Throttle: 4.3°, Ignition: 7.5°, Coolant: 89°C",
			Notes:           "Appeared after cam chain service. Possible timing issue or sensor failure. Using OBDeleven for monitoring.",
			Resolved:        false, Severity: models.SeverityHigh, System: models.CategoryEngine,
			Tags: []string{"cps", "timing", "cam-chain", "obdeleven"},
		},
		{
			ID: "seed-dtc-1", Code: "P0100",
			Description: "Mass Air Flow Circuit Malfunction",
			Date:        "2023-12-01", Mileage: 274272, Active: true,
			FreezeFrameData: "RPM: 1720, Load: 14.3%, MAF: 0.00 g/s, Throttle: 4.3°",
			Notes:           "MAF sensor showing no signal. Possible wiring issue or sensor failure. Needs circuit trace.",
			Resolved:        false, Severity: models.SeverityHigh, System: models.CategoryEngine,
			Tags: []string{"maf", "airflow", "sensor", "circuit"},
		},
		{
			ID: "seed-dtc-2", Code: "P1302",
			Description: "Cylinder 2 - Ignition Circuit Open",
			Date:        "2023-12-01", Mileage: 274272, Active: true,
			FreezeFrameData: "RPM: 1720, Load: 14.3%, Cyl 2 Misfire Count: 15",
			Notes:           "Open circuit in cylinder 2 ignition. New coil pack installed but issue persists. Wiring harness suspect.",
			Resolved:        false, Severity: models.SeverityHigh, System: models.CategoryElectrical,
			Tags: []string{"cylinder-2", "ignition", "open-circuit", "harness"},
		},
		{
			ID: "seed-dtc-3", Code: "P0300",
			Description: "Random/Multiple Cylinder Misfire Detected",
			Date:        "2023-12-01", Mileage: 274272, Active: true,
			FreezeFrameData: "RPM: 1720, Load: 14.3%, Total Misfire Count: 45",
			Notes:           "Random misfires across multiple cylinders. Related to P0341, P0100, and P1302. All appeared post cam chain service.",
			Resolved:        false, Severity: models.SeverityCritical, System: models.CategoryEngine,
			Tags: []string{"misfire", "random", "multiple", "post-service"},
		},
		{
			ID: "seed-dtc-4", Code: "P0016",
			Description: "Crankshaft Position - Camshaft Position Correlation (Bank 1)",
			Date:        "2024-01-15", Mileage: 275500, Active: false,
			FreezeFrameData: "RPM: 850, Load: 0%, Cam Advance: -5.5°",
			Notes:           "Timing correlation error. Resolved after cam chain tensioner adjustment.",
			Resolved:        true, ResolvedDate: "2024-01-20", Severity: models.SeverityHigh, System: models.CategoryEngine,
			Tags: []string{"timing", "correlation", "resolved", "tensioner"},
		},
		{
			ID: "seed-dtc-5", Code: "P0299",
			Description: "Turbocharger/Supercharger A Underboost Condition",
			Date:        "2023-03-10", Mileage: 270500, Active: false,
			FreezeFrameData: "Boost Pressure: 0.8 bar, Requested: 1.2 bar, RPM: 3000",
			Notes:           "Resolved with Rev D diverter valve installation. Boost leak eliminated.",
			Resolved:        true, ResolvedDate: "2023-03-15", Severity: models.SeverityHigh, System: models.CategoryEngine,
			Tags: []string{"boost", "turbo", "resolved", "dv"},
		},
	}
}

func seedFuel() []models.FuelEntry {
	mpg := func(v float64) *float64 { return &v }
	return []models.FuelEntry{
		{
			ID: "seed-fuel-0", Date: "2024-07-01", Mileage: 209843, Gallons: 10.5, Octane: models.Octane93,
			Cost: 4.55, FullTank: false,
			Notes:            "Post tire swap fill-up, Boostane-safe to 98-104 octane",
			PerformanceNotes: "Testing Boostane additive for knock protection",
			Tags:             []string{"boostane", "octane-booster", "testing"},
		},
		{
			ID: "seed-fuel-1", Date: "2024-06-15", Mileage: 208486, Gallons: 7.0, Octane: models.Octane93,
			Cost: 4.35, FullTank: false, MPG: mpg(26.7),
			Notes:            "187 miles on this tank, mixed driving",
			PerformanceNotes: "Good power delivery with 93 octane, smooth acceleration",
			Tags:             []string{"mixed-driving", "premium"},
		},
		{
			ID: "seed-fuel-2", Date: "2024-05-20", Mileage: 207800, Gallons: 18.5, Octane: models.Octane91,
			Cost: 4.15, FullTank: true, MPG: mpg(29.73),
			Notes:            "Best tank ever! 550 miles total, mostly highway",
			PerformanceNotes: "Excellent efficiency on highway cruise, minimal city driving",
			Tags:             []string{"highway", "best-mpg", "full-tank"},
		},
		{
			ID: "seed-fuel-3", Date: "2024-04-10", Mileage: 207200, Gallons: 15.2, Octane: models.Octane93,
			Cost: 4.42, FullTank: true, MPG: mpg(27.8),
			Notes:            "Mixed city/highway, dash showed 33.1 MPG at one point",
			PerformanceNotes: "Dash computer optimistic but good real-world efficiency",
			Tags:             []string{"mixed", "dash-reading", "premium"},
		},
		{
			ID: "seed-fuel-4", Date: "2024-03-25", Mileage: 206800, Gallons: 12.8, Octane: models.Octane91,
			Cost: 4.28, FullTank: false, MPG: mpg(25.2),
			Notes:            "City driving with some spirited runs",
			PerformanceNotes: "Lower efficiency due to aggressive driving, but good power",
			Tags:             []string{"city", "spirited", "partial-fill"},
		},
		{
			ID: "seed-fuel-5", Date: "2024-02-15", Mileage: 206200, Gallons: 14.1, Octane: models.Octane93,
			Cost: 4.38, FullTank: true, MPG: mpg(28.1),
			Notes:            "Winter driving, cold weather impact",
			PerformanceNotes: "Cold weather reduces efficiency, longer warm-up times",
			Tags:             []string{"winter", "cold", "full-tank"},
		},
	}
}

func seedPhotos() []models.PhotoEntry {
	return []models.PhotoEntry{
		{
			ID: "seed-photo-0", URL: "https://images.unsplash.com/photo-1549399542-7e3f8b79c341?w=800",
			Date: "2024-03-15", Title: "Front Lighting v3 - R36 Headlights",
			Tags:        []string{"r36", "headlights", "drl", "front"},
			Description: "R36-style headlights with integrated DRL strips, dramatic improvement over stock",
			Category:    models.PhotoLighting, Version: "v3",
		},
		{
			ID: "seed-photo-1", URL: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800",
			Date: "2024-02-10", Title: "Underglow v1 - Purple RGB System",
			Tags:        []string{"underglow", "rgb", "purple", "music-sync"},
			Description: "Initial underglow installation with music sync capability, boost sync planned",
			Category:    models.PhotoLighting, Version: "v1",
		},
		{
			ID: "seed-photo-2", URL: "https://images.unsplash.com/photo-1606664515524-ed2f786a0bd6?w=800",
			Date: "2023-09-15", Title: "Rear End - GTI Spoiler & Smoked Lights",
			Tags:        []string{"rear", "spoiler", "gti", "smoked", "taillights"},
			Description: "Complete rear transformation with GTI spoiler and smoked tail lights",
			Category:    models.PhotoAesthetic,
		},
		{
			ID: "seed-photo-3", URL: "https://images.unsplash.com/photo-1492144534655-ae79c964c9d7?w=800",
			Date: "2024-01-20", Title: "Post-Crash Rear Rebuild Progress",
			Tags:        []string{"crash", "rebuild", "bodywork", "rear"},
			Description: "Rear end rebuild progress after spinout incident",
			Category:    models.PhotoMaintenance,
		},
		{
			ID: "seed-photo-4", URL: "https://images.unsplash.com/photo-1571019613454-1cb2f99b2d8b?w=800",
			Date: "2023-11-15", Title: "Cam Chain Service Documentation",
			Tags:        []string{"cam-chain", "timing", "service", "engine"},
			Description: "Complete cam chain replacement with tensioner and guides",
			Category:    models.PhotoMaintenance,
		},
		{
			ID: "seed-photo-5", URL: "https://images.unsplash.com/photo-1605559424843-9e4c228bf1c2?w=800",
			Date: "2023-08-05", Title: "Audio System - Kicker Components",
			Tags:        []string{"audio", "kicker", "speakers", "system"},
			Description: "Kicker CS speakers, Power Acoustik tweets, Kicker CVT sub, 2 amps",
			Category:    models.PhotoMod,
		},
	}
}

func seedAudio() []models.AudioComponent {
	return []models.AudioComponent{
		{
			ID: "seed-audio-0", Name: "Kicker CS 6.5\" Speakers", Type: models.AudioSpeakers,
			Location: "Front Doors", Brand: "Kicker", Model: "CS Series 6.5\"",
			PowerRating: "100W RMS", Impedance: "4 ohm", Installed: true, InstallDate: "2023-06-15", Cost: 120,
			Notes: "Significant improvement over stock speakers, clear mids and highs",
			Tags:  []string{"front", "upgrade", "kicker"},
		},
		{
			ID: "seed-audio-1", Name: "Power Acoustik Tweeters", Type: models.AudioTweeter,
			Location: "Front Doors", Brand: "Power Acoustik", Model: "NB-1",
			PowerRating: "50W RMS", Impedance: "4 ohm", Installed: true, InstallDate: "2023-06-15", Cost: 45,
			Notes: "Crisp high frequency response, good imaging",
			Tags:  []string{"front", "tweeters", "highs"},
		},
		{
			ID: "seed-audio-2", Name: "Kicker CVT Subwoofer", Type: models.AudioSubwoofer,
			Location: "Trunk", Brand: "Kicker", Model: "CVT 12\"",
			PowerRating: "400W RMS", Impedance: "2 ohm", Installed: true, InstallDate: "2023-07-20", Cost: 180,
			Notes: "Compact design fits well in trunk, good bass response",
			Tags:  []string{"bass", "trunk", "compact"},
		},
		{
			ID: "seed-audio-3", Name: "BAMF 1200.4 Amplifier", Type: models.AudioAmplifier,
			Location: "Under Seat", Brand: "BAMF", Model: "1200.4",
			PowerRating: "300W x 4 @ 2 ohm", Installed: true, InstallDate: "2023-07-25", Cost: 220,
			Notes: "Powers front speakers and tweeters, clean power delivery",
			Tags:  []string{"4-channel", "front-amp", "clean"},
		},
		{
			ID: "seed-audio-4", Name: "BAMF Mono Amplifier", Type: models.AudioAmplifier,
			Location: "Trunk", Brand: "BAMF", Model: "Mono 1000",
			PowerRating: "1000W @ 1 ohm", Installed: true, InstallDate: "2023-07-25", Cost: 180,
			Notes: "Powers subwoofer, plenty of headroom for bass",
			Tags:  []string{"mono", "sub-amp", "power"},
		},
		{
			ID: "seed-audio-5", Name: "Stock Head Unit", Type: models.AudioHeadUnit,
			Location: "Dashboard", Brand: "Volkswagen", Model: "RCD 310",
			Installed: true, Cost: 0,
			Notes: "Stock head unit, planning upgrade to RCD 330 or aftermarket",
			Tags:  []string{"stock", "upgrade-planned"},
		},
	}
}

func seedCrashes() []models.CrashEntry {
	rear := 2800.0
	return []models.CrashEntry{
		{
			ID: "seed-crash-0", Date: "2024-03-20", Location: models.CrashRear, Severity: models.CrashMajor,
			Description: "Spinout incident resulting in rear end damage",
			DamageAssessment: []string{
				"Rear bumper cracked", "Rear quarter panel dented", "Rear glass damaged (temp sealed)",
				"Trunk lid misaligned", "Rear lights damaged",
			},
			RepairStatus: models.RepairCompleted, EstimatedCost: 3500, ActualCost: &rear,
			PartsNeeded: []string{"Rear bumper", "Quarter panel repair", "Rear glass", "Trunk alignment", "Tail light assembly"},
			DonorParts:  []string{}, InsuranceClaim: false,
			Photos: []string{"rear-damage-1.jpg", "rear-damage-2.jpg"},
			Notes:  "Rear rebuilt post-spinout. Rear glass temp sealed with dimensions: 1414 x 889 x 928 mm",
			Tags:   []string{"spinout", "rear-damage", "bodywork", "completed"},
		},
		{
			ID: "seed-crash-1", Date: "2024-07-15", Location: models.CrashFront, Severity: models.CrashModerate,
			Description: "Front end collision damage",
			DamageAssessment: []string{
				"Driver side fender damaged", "Hood dented", "Front bumper cracked",
				"Driver headlight damaged", "Grille damaged",
			},
			RepairStatus: models.RepairInProgress, EstimatedCost: 1800,
			PartsNeeded: []string{"Driver fender", "Hood", "Front bumper", "Headlight assembly", "Grille"},
			DonorParts:  []string{"2009 Passat donor fender", "2009 Passat hood", "2009 Passat bumper", "2009 Passat headlight"},
			InsuranceClaim: false,
			Photos:         []string{"front-damage-1.jpg", "front-damage-2.jpg"},
			Notes:          "Using 2009 donor parts for repair. Color match may require paint work.",
			Tags:           []string{"front-damage", "donor-parts", "in-progress", "2009-parts"},
		},
	}
}

func seedLighting() []models.LightingPlan {
	return []models.LightingPlan{
		{
			ID: "1", Title: "Purple Underglow System",
			Description: "Music-reactive underglow with boost sync capability",
			Components:  []string{"LED strips", "Bluetooth controller", "Power supply", "Wiring harness"},
			Wiring:      "Connect to 12V accessory power, route under chassis with protective conduit",
			Controller:  "Bluetooth RGB controller with music sync",
			Status:      models.StatusCompleted,
			Notes:       "Currently installed and working. Syncs to music via phone app.",
			SyncMode:    models.SyncMusic,
			Tags:        []string{"underglow", "music-sync", "purple"},
		},
		{
			ID: "2", Title: "White LED Grille Outline",
			Description: "Clean white LED accent around front grille",
			Components:  []string{"White LED strip", "Inline controller", "12V tap"},
			Wiring:      "Tap into DRL circuit for auto on/off",
			Controller:  "Simple on/off with DRL integration",
			Status:      models.StatusCompleted,
			Notes:       "Installed with R36-style headlights. Clean OEM+ look.",
			SyncMode:    models.SyncManual,
			Tags:        []string{"grille", "white", "drl"},
		},
		{
			ID: "3", Title: "Interior Ambient Lighting",
			Description: "Subtle interior accent lighting for doors and footwells",
			Components:  []string{"RGB LED strips", "Dimmer controller", "Door triggers"},
			Wiring:      "Connect to door courtesy light circuits",
			Controller:  "Manual dimmer with door activation",
			Status:      models.StatusPlanned,
			Notes:       "Want to match exterior purple theme but keep it subtle",
			SyncMode:    models.SyncManual,
			Tags:        []string{"interior", "ambient", "doors"},
		},
	}
}

func seedBlueprints() []models.Blueprint {
	return []models.Blueprint{
		{
			ID: "1", Title: "K04 Turbo Installation", Category: models.BlueprintModification,
			Description: "Complete K04 turbo upgrade with supporting modifications",
			Steps: []string{
				"Remove stock K03 turbo", "Install K04 turbo with new gaskets", "Upgrade intercooler piping",
				"Install boost gauge and wastegate", "Flash ECU with K04 tune", "Test boost levels and AFR",
			},
			Materials: []string{"K04 Turbo", "Intercooler upgrade", "Boost gauge", "Wastegate actuator", "Gasket set", "Coolant lines"},
			Tools:     []string{"Socket set", "Torque wrench", "Jack and stands", "Coolant drain pan", "VCDS/OBDeleven"},
			Difficulty: models.DifficultyExpert, EstimatedTime: "8-12 hours", Cost: 2500,
			Status: models.BlueprintPlanned,
			Notes:  "Requires ECU tune and supporting mods for reliability",
			Tags:   []string{"turbo", "stage2", "performance"},
		},
		{
			ID: "2", Title: "Custom Wiring Harness Repair", Category: models.BlueprintWiring,
			Description: "Repair damaged engine harness sections",
			Steps: []string{
				"Identify damaged wire sections", "Remove old connectors", "Splice in new wire sections",
				"Apply heat shrink protection", "Test continuity", "Secure with proper routing",
			},
			Materials: []string{"18AWG automotive wire", "Heat shrink tubing", "Electrical tape", "Wire connectors", "Dielectric grease"},
			Tools:     []string{"Wire strippers", "Soldering iron", "Heat gun", "Multimeter", "Crimping tool"},
			Difficulty: models.DifficultyHard, EstimatedTime: "4-6 hours", Cost: 150,
			Status: models.BlueprintPlanned,
			Notes:  "Focus on CPS and MAF sensor circuits first",
			Tags:   []string{"electrical", "repair", "harness"},
			Dimensions: "Wire gauge: 18AWG, Length: 2m",
		},
		{
			ID: "3", Title: "Rear Glass Replacement", Category: models.BlueprintRepair,
			Description: "Replace damaged rear windshield with proper sealing",
			Steps: []string{
				"Remove interior trim panels", "Cut out old glass and sealant", "Clean frame thoroughly",
				"Apply new urethane sealant", "Install new glass", "Reinstall trim and test",
			},
			Materials: []string{"Rear windshield glass", "Urethane sealant", "Primer", "Trim clips", "Weather stripping"},
			Tools:     []string{"Glass cutting wire", "Sealant gun", "Trim removal tools", "Vacuum cups", "Safety glasses"},
			Difficulty: models.DifficultyHard, EstimatedTime: "6-8 hours", Cost: 400,
			Status: models.BlueprintCompleted,
			Notes:  "Glass dimensions: 1414 x 889 x 928 mm. Used temporary seal initially.",
			Tags:   []string{"glass", "bodywork", "repair"},
			Dimensions: "Glass: 1414 x 889 x 928 mm",
		},
	}
}

func seedDimensions() []models.Dimension {
	return []models.Dimension{
		{
			ID: "1", Name: "Overall Length", Category: models.DimensionVehicle, Measurement: 4765, Unit: "mm",
			Description: "Total vehicle length from front bumper to rear bumper",
			Reference:   "VW Official Specs", Verified: true, Tags: []string{"exterior", "body"},
		},
		{
			ID: "2", Name: "Overall Width", Category: models.DimensionVehicle, Measurement: 1820, Unit: "mm",
			Description: "Total vehicle width including mirrors",
			Reference:   "VW Official Specs", Verified: true, Tags: []string{"exterior", "body"},
		},
		{
			ID: "3", Name: "Overall Height", Category: models.DimensionVehicle, Measurement: 1472, Unit: "mm",
			Description: "Total vehicle height from ground to roof",
			Reference:   "VW Official Specs", Verified: true, Tags: []string{"exterior", "body"},
		},
		{
			ID: "4", Name: "Wheelbase", Category: models.DimensionVehicle, Measurement: 2709, Unit: "mm",
			Description: "Distance between front and rear axle centers",
			Reference:   "VW Official Specs", Verified: true, Tags: []string{"chassis", "suspension"},
		},
		{
			ID: "5", Name: "Rear Glass Width", Category: models.DimensionGlass, Measurement: 1414, Unit: "mm",
			Description: "Width of rear windshield glass",
			Reference:   "Measured during replacement", Verified: true,
			Notes: "Measured during glass replacement project", Tags: []string{"glass", "bodywork"},
		},
		{
			ID: "6", Name: "Rear Glass Height", Category: models.DimensionGlass, Measurement: 889, Unit: "mm",
			Description: "Height of rear windshield glass",
			Reference:   "Measured during replacement", Verified: true,
			Notes: "Measured during glass replacement project", Tags: []string{"glass", "bodywork"},
		},
		{
			ID: "7", Name: "Rear Glass Depth", Category: models.DimensionGlass, Measurement: 928, Unit: "mm",
			Description: "Depth/curve of rear windshield glass",
			Reference:   "Measured during replacement", Verified: true,
			Notes: "Critical for proper fitment", Tags: []string{"glass", "bodywork"},
		},
		{
			ID: "8", Name: "Engine Bay Width", Category: models.DimensionEngine, Measurement: 1200, Unit: "mm",
			Description: "Available width in engine bay for modifications",
			Reference:   "Manual measurement", Verified: false,
			Notes: "Approximate measurement for turbo clearance", Tags: []string{"engine", "modification"},
		},
		{
			ID: "9", Name: "Turbo Clearance Height", Category: models.DimensionEngine, Measurement: 180, Unit: "mm",
			Description: "Available height clearance for turbo installation",
			Reference:   "K04 installation planning", Verified: false,
			Notes: "Need to verify during K04 install", Tags: []string{"turbo", "modification"},
		},
		{
			ID: "10", Name: "Interior Headroom", Category: models.DimensionInterior, Measurement: 990, Unit: "mm",
			Description: "Front seat headroom measurement",
			Reference:   "VW Official Specs", Verified: true, Tags: []string{"interior", "comfort"},
		},
	}
}
