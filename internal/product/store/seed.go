package store

// DefaultCatalog is the sample data the service starts with.
func DefaultCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Stylo", Price: 2},
		{ID: 2, Name: "Feutre", Price: 3},
		{ID: 3, Name: "Cahier", Price: 4},
		{ID: 4, Name: "Trousse", Price: 4.50},
		{ID: 5, Name: "Règle", Price: 2.50},
	}
}
