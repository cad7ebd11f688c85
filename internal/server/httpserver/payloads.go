package httpserver

import (
	"time"

	"github.com/dmitrijs2005/calckeeper/internal/server/auth"
	"github.com/dmitrijs2005/calckeeper/internal/server/models"
	"github.com/dmitrijs2005/calckeeper/internal/server/services"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// UserCreate is the body of register and login.
type UserCreate struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (u *UserCreate) Validate() error {
	return validation.ValidateStruct(u,
		validation.Field(&u.Email, validation.Required, is.Email),
		// bcrypt only looks at the first 72 bytes
		validation.Field(&u.Password, validation.Required, validation.Length(1, auth.MaxPasswordBytes)),
	)
}

// CalculationCreate is the body of create and update. Operands are
// pointers so that an explicit 0 is told apart from a missing field.
type CalculationCreate struct {
	Operation string   `json:"operation"`
	Operand1  *float64 `json:"operand1"`
	Operand2  *float64 `json:"operand2"`
}

func (c *CalculationCreate) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Operation, validation.Required),
		validation.Field(&c.Operand1, validation.NotNil),
		validation.Field(&c.Operand2, validation.NotNil),
	)
}

func (c *CalculationCreate) Input() services.CalculationInput {
	return services.CalculationInput{
		Operation: c.Operation,
		Operand1:  *c.Operand1,
		Operand2:  *c.Operand2,
	}
}

type UserRead struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserRead(u *models.User) UserRead {
	return UserRead{ID: u.ID, Email: u.Email, IsActive: u.IsActive, CreatedAt: u.CreatedAt}
}

type CalculationRead struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Operation string    `json:"operation"`
	Operand1  float64   `json:"operand1"`
	Operand2  float64   `json:"operand2"`
	Result    float64   `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

func newCalculationRead(c *models.Calculation) CalculationRead {
	return CalculationRead{
		ID:        c.ID,
		UserID:    c.UserID,
		Operation: c.Operation,
		Operand1:  c.Operand1,
		Operand2:  c.Operand2,
		Result:    c.Result,
		CreatedAt: c.CreatedAt,
	}
}

type TokenRead struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type MessageRead struct {
	Message string `json:"message"`
}
