package dto

type ReviewRequest struct {
	Name    string `json:"name"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Rating  int    `json:"rating"`
}

type AmenitiesResponse struct {
	Amenities []string `json:"amenities"`
}
