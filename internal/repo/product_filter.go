package repo

import "github.com/rogerio-castellano/inventory-panel/internal/models"

// ProductFilter narrows a listing. An empty Query lists everything.
type ProductFilter struct {
	Query string
}

// SearchID is the id a free-text query is compared against.
func (f ProductFilter) SearchID() int64 {
	return models.ParseID(f.Query)
}
