package response

// ListResponse wraps a collection with its total count.
type ListResponse[T any] struct {
	Total int `json:"total"`
	Items []T `json:"items"`
}

func NewListResponse[T any](items []T) *ListResponse[T] {
	return &ListResponse[T]{Total: len(items), Items: items}
}
