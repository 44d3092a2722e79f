package process_turn

// TurnRequest HTTP request model
type TurnRequest struct {
	Text string `json:"text"`
}
