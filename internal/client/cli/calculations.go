package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/calckeeper/internal/client/client"
	"github.com/dmitrijs2005/calckeeper/internal/client/models"
)

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer, got %q", client.ErrInvalidInput, s)
	}
	return id, nil
}

func parseInput(args []string) (models.CalculationInput, error) {
	a, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return models.CalculationInput{}, fmt.Errorf("%w: operand %q is not a number", client.ErrInvalidInput, args[1])
	}
	b, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return models.CalculationInput{}, fmt.Errorf("%w: operand %q is not a number", client.ErrInvalidInput, args[2])
	}
	return models.CalculationInput{Operation: args[0], Operand1: a, Operand2: b}, nil
}

func usage(text string) error {
	return fmt.Errorf("%w: usage: %s", client.ErrInvalidInput, text)
}

func (a *App) List(ctx context.Context) error {
	calcs, err := a.api.List(ctx)
	if err != nil {
		return err
	}

	if len(calcs) == 0 {
		fmt.Fprintln(a.out, "No calculations")
		return nil
	}
	for _, c := range calcs {
		fmt.Fprintln(a.out, c.String())
	}
	return nil
}

// Add handles "add <op> <a> <b>".
func (a *App) Add(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return usage("add <op> <a> <b>")
	}
	in, err := parseInput(args)
	if err != nil {
		return err
	}

	c, err := a.api.Create(ctx, in)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, c.String())
	return nil
}

// Show handles "show <id>".
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("show <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	c, err := a.api.Get(ctx, id)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, c.String())
	fmt.Fprintf(a.out, "created %s\n", c.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}

// Edit handles "edit <id> <op> <a> <b>".
func (a *App) Edit(ctx context.Context, args []string) error {
	if len(args) != 4 {
		return usage("edit <id> <op> <a> <b>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	in, err := parseInput(args[1:])
	if err != nil {
		return err
	}

	c, err := a.api.Update(ctx, id, in)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, c.String())
	return nil
}

// Delete handles "delete <id>".
func (a *App) Delete(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return usage("delete <id>")
	}
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	if err := a.api.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Deleted #%d\n", id)
	return nil
}
