package response

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the envelope for mutations and errors
type MessageResponse struct {
	Message string `json:"message"`
}

// ListResponse is the envelope for collection endpoints
type ListResponse struct {
	Data       interface{} `json:"data"`
	TotalItems int         `json:"totalItems"`
	NumOfPages *int        `json:"numOfPages,omitempty"`
}

// DataResponse wraps a single item
type DataResponse struct {
	Data interface{} `json:"data"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Message(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, MessageResponse{Message: message})
}

// List writes an unpaginated collection
func List(w http.ResponseWriter, data interface{}, totalItems int) {
	JSON(w, http.StatusOK, ListResponse{Data: data, TotalItems: totalItems})
}

// Paginated writes one page with the post-filter totals
func Paginated(w http.ResponseWriter, data interface{}, totalItems, numOfPages int) {
	JSON(w, http.StatusOK, ListResponse{Data: data, TotalItems: totalItems, NumOfPages: &numOfPages})
}

func Data(w http.ResponseWriter, statusCode int, data interface{}) {
	JSON(w, statusCode, DataResponse{Data: data})
}
