package domain

// CatalogLoader loads the initial catalog configuration for a directory.
type CatalogLoader interface {
	Load(dir string) (CatalogConfig, error)
}

// OrderObserver records the outcome of order attempts.
type OrderObserver interface {
	OrderPlaced(lines int, total float64)
	OrderFailed(reason string)
}
