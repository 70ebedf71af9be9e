package search

// Per-entity search configuration. StringFields take ILIKE substring
// matches, NumericFields take exact equality when the term is an integer,
// Columns is the set accepted for sorting and filtering.

var VehicleConfig = Config{
	StringFields:  []string{"make", "model", "registration_number", "status", "fuel_type"},
	NumericFields: []string{"vehicle_id", "year"},
	Columns: map[string]bool{
		"vehicle_id": true, "make": true, "model": true, "year": true,
		"registration_number": true, "status": true, "mileage": true,
		"fuel_type": true, "created_at": true, "updated_at": true,
	},
	DefaultSortBy: "make",
}

var DriverConfig = Config{
	StringFields:  []string{"name", "license_number", "email"},
	NumericFields: []string{"driver_id"},
	Columns: map[string]bool{
		"driver_id": true, "name": true, "license_number": true,
		"license_expiry_date": true, "phone_number": true, "email": true,
		"assigned_vehicle_id": true, "created_at": true, "updated_at": true,
	},
	DefaultSortBy: "name",
}

var RouteConfig = Config{
	StringFields:  []string{"origin", "destination"},
	NumericFields: []string{"route_id"},
	Columns: map[string]bool{
		"route_id": true, "origin": true, "destination": true,
		"distance": true, "estimated_duration": true,
		"created_at": true, "updated_at": true,
	},
	DefaultSortBy: "route_id",
}

var TripLogConfig = Config{
	StringFields:  []string{"status"},
	NumericFields: []string{"trip_id", "driver_id", "vehicle_id"},
	Columns: map[string]bool{
		"trip_id": true, "vehicle_id": true, "driver_id": true,
		"route_id": true, "start_time": true, "end_time": true,
		"mileage_start": true, "mileage_end": true, "status": true,
		"created_at": true, "updated_at": true,
	},
	DefaultSortBy: "trip_id",
}

var MaintenanceConfig = Config{
	StringFields:  []string{"maintenance_type", "description", "notes"},
	NumericFields: []string{"maintenance_id"},
	Columns: map[string]bool{
		"maintenance_id": true, "vehicle_id": true, "driver_id": true,
		"maintenance_type": true, "description": true, "cost": true,
		"maintenance_date": true, "notes": true,
		"created_at": true, "updated_at": true,
	},
	DefaultSortBy: "maintenance_type",
}
