// Package shell is an interactive terminal front end for the product store.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/yourorg/shoplist/internal/apperrors"
	"github.com/yourorg/shoplist/internal/id"
	"github.com/yourorg/shoplist/internal/models"
)

const prompt = "shoplist> "

// ProductStore defines only the methods the shell needs from the store.
type ProductStore interface {
	AddProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	ToggleBought(ctx context.Context, productID string) (*models.ToggleResult, error)
	DeleteProduct(ctx context.Context, productID string) error
	FilterProducts(ctx context.Context, criteria models.FilterCriteria) ([]*models.Product, error)
	Summary(ctx context.Context) (models.Summary, error)
}

type Shell struct {
	store    ProductStore
	in       io.Reader
	out      io.Writer
	render   *Renderer
	criteria models.FilterCriteria
	// rows is the last rendered table, addressed by #n.
	rows []*models.Product
}

func New(store ProductStore, in io.Reader, out io.Writer, noColor bool) *Shell {
	return &Shell{
		store:  store,
		in:     in,
		out:    out,
		render: NewRenderer(out, noColor),
	}
}

// Run reads commands until quit, EOF or ctx is done. Lines are read on a
// separate goroutine so a cancelled ctx ends the session while the prompt
// is waiting for input.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		fmt.Fprint(s.out, prompt)
		var line string
		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			return nil
		case err := <-readErr:
			fmt.Fprintln(s.out)
			return err
		case line = <-lines:
		}

		quit, err := s.Execute(ctx, line)
		if err != nil {
			slog.DebugContext(ctx, "shell command failed", "line", line, "error", err)
			s.render.Error(err)
		}
		if quit {
			return nil
		}
	}
}

// Execute runs one command line. It reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) (bool, error) {
	if strings.TrimSpace(line) == "" {
		return false, nil
	}

	cmd, err := Parse(line)
	if err != nil {
		return false, err
	}

	switch {
	case cmd.Quit:
		return true, nil
	case cmd.Help:
		s.render.Help()
		return false, nil
	case cmd.Catalog:
		s.render.Catalog()
		return false, nil
	case cmd.List:
		s.criteria = models.FilterCriteria{}
		return false, s.show(ctx)
	case cmd.Filter != nil:
		criteria, err := cmd.Filter.Criteria()
		if err != nil {
			return false, err
		}
		previous := s.criteria
		s.criteria = criteria
		if err := s.show(ctx); err != nil {
			s.criteria = previous
			return false, err
		}
		return false, nil
	case cmd.Add != nil:
		return false, s.add(ctx, cmd.Add)
	case cmd.Toggle != nil:
		return false, s.toggle(ctx, cmd.Toggle)
	case cmd.Delete != nil:
		return false, s.delete(ctx, cmd.Delete)
	}
	return false, fmt.Errorf("unsupported command %q", line)
}

func (s *Shell) add(ctx context.Context, a *AddCommand) error {
	req, err := a.Request()
	if err != nil {
		return err
	}
	if _, err := s.store.AddProduct(ctx, req); err != nil {
		return err
	}
	return s.show(ctx)
}

func (s *Shell) toggle(ctx context.Context, t *Target) error {
	productID, err := s.resolve(t)
	if err != nil {
		return err
	}

	result, err := s.store.ToggleBought(ctx, productID)
	if err != nil {
		var notFoundErr *apperrors.NotFoundError
		if errors.As(err, &notFoundErr) {
			s.render.Warn("no product with id %s", productID)
			return nil
		}
		return err
	}

	if err := s.show(ctx); err != nil {
		return err
	}
	if result.Notified {
		s.render.AllBought()
	}
	return nil
}

func (s *Shell) delete(ctx context.Context, t *Target) error {
	productID, err := s.resolve(t)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProduct(ctx, productID); err != nil {
		return err
	}
	return s.show(ctx)
}

func (s *Shell) resolve(t *Target) (string, error) {
	if t.Row != nil {
		n := *t.Row
		if n < 1 || n > len(s.rows) {
			return "", fmt.Errorf("no row #%d in the last listing", n)
		}
		return s.rows[n-1].ID, nil
	}
	if !id.HasPrefix(t.ID, models.ProductIDPrefix) {
		return "", fmt.Errorf("%q is not a product id", t.ID)
	}
	return t.ID, nil
}

func (s *Shell) show(ctx context.Context) error {
	products, err := s.store.FilterProducts(ctx, s.criteria)
	if err != nil {
		return err
	}
	summary, err := s.store.Summary(ctx)
	if err != nil {
		return err
	}

	s.rows = products
	s.render.Table(products, summary)
	return nil
}
