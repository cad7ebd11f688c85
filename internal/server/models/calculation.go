package models

import "time"

// Calculation is a stored arithmetic record owned by a single user.
// Result is always derived from Operation, Operand1 and Operand2.
type Calculation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Operation string    `json:"operation"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}
