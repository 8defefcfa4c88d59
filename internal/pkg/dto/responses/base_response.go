package responses

import "ehr-gateway-service/internal/pkg/exceptions"

type ResponseDTO struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type ErrorResponseDTO struct {
	Success    bool                 `json:"success"`
	Message    string               `json:"message"`
	Error      *exceptions.ApiError `json:"error"`
	DevMessage string               `json:"dev_message,omitempty"`
	Location   *exceptions.Location `json:"location,omitempty"`
}

// Pagination carries the upstream bundle paging state. NextPage is nil when
// the bundle has no next link.
type Pagination struct {
	Total    *int `json:"total,omitempty"`
	NextPage *int `json:"next_page,omitempty"`
}
