// Package models holds the client-side shapes of API resources.
package models

import (
	"fmt"
	"strconv"
	"time"
)

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type Calculation struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Operation string    `json:"operation"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// CalculationInput is what the client sends on create and update.
type CalculationInput struct {
	Operation string  `json:"operation"`
	Operand1  float64 `json:"operand1"`
	Operand2  float64 `json:"operand2"`
}

// String renders c as "#id  a op b = result".
func (c *Calculation) String() string {
	return fmt.Sprintf("#%d  %s %s %s = %s",
		c.ID, formatFloat(c.Operand1), symbol(c.Operation), formatFloat(c.Operand2), formatFloat(c.Result))
}

func symbol(op string) string {
	switch op {
	case "add":
		return "+"
	case "subtract":
		return "-"
	case "multiply":
		return "*"
	case "divide":
		return "/"
	}
	return op
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
