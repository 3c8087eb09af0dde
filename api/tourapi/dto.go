package tourapi

// TourRequest carries a grid in its text form: a "W,H" header line followed
// by H rows.
type TourRequest struct {
	Grid string `json:"grid" binding:"required"`
}

// Point is a landmark position in a response.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// TourResponse is the answer to a TourRequest. Length is -1 when no tour exists.
type TourResponse struct {
	ID     string  `json:"id"`
	Length int     `json:"length"`
	Solved bool    `json:"solved"`
	Order  []Point `json:"order"`
	Cached bool    `json:"cached"`
}
