package handlers

type ErrorResponse struct {
	Error string `json:"error"`
}

type ImportRowError struct {
	Row         int    `json:"row"`
	Description string `json:"description"`
}

type ImportProductsResult struct {
	ImportedProductsCount int              `json:"imported"`
	Errors                []ImportRowError `json:"errors"`
}
