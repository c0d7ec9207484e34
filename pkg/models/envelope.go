package models

// Envelope wraps a single entity, matching the `{data: T}` contract shared
// with both the frontend and the upstream API.
type Envelope[T any] struct {
	Data T `json:"data"`
}

// Paginated wraps a list of entities together with the upstream pagination
// metadata. The gateway never re-paginates; the envelope is returned
// verbatim from upstream.
type Paginated[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// ErrorResponse is the error envelope for every non-2xx gateway response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
