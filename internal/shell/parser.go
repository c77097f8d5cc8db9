package shell

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/yourorg/shoplist/internal/models"
)

// Command is one line of shell input. Exactly one branch is set.
type Command struct {
	Add     *AddCommand    `parser:"  'add' @@"`
	Toggle  *Target        `parser:"| 'toggle' @@"`
	Delete  *Target        `parser:"| ( 'delete' | 'rm' ) @@"`
	List    bool           `parser:"| @'list'"`
	Filter  *FilterCommand `parser:"| @@"`
	Catalog bool           `parser:"| @'catalog'"`
	Help    bool           `parser:"| @'help'"`
	Quit    bool           `parser:"| @( 'quit' | 'exit' )"`
}

type AddCommand struct {
	Name    string    `parser:"@( String | Ident )"`
	Options []*Option `parser:"@@*"`
}

// Target addresses a product by id or by its row in the last listing.
type Target struct {
	Row *int   `parser:"  '#' @Int"`
	ID  string `parser:"| @Ident"`
}

type FilterCommand struct {
	Keyword string    `parser:"@'filter'"`
	Options []*Option `parser:"@@*"`
}

type Option struct {
	Key   string `parser:"@Ident '='"`
	Value string `parser:"@( String | Ident )"`
}

var commandLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "String", Pattern: `"(\\"|[^"])*"`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Ident", Pattern: `[\p{L}_][\p{L}\p{N}_-]*`},
	{Name: "Punct", Pattern: `[#=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var commandParser = participle.MustBuild[Command](
	participle.Lexer(commandLexer),
	participle.Elide("Whitespace"),
	participle.Unquote("String"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

// Parse parses a single command line.
func Parse(line string) (*Command, error) {
	cmd, err := commandParser.ParseString("", strings.TrimSpace(line))
	if err != nil {
		return nil, fmt.Errorf("parse command: %w", err)
	}
	return cmd, nil
}

// Request converts the add command into a store request. Shop and category
// values are matched against the catalog ignoring case.
func (a *AddCommand) Request() (*models.CreateProductRequest, error) {
	req := &models.CreateProductRequest{Name: a.Name}
	for _, opt := range a.Options {
		var err error
		switch strings.ToLower(opt.Key) {
		case "shop":
			req.Shop, err = lookup("shop", opt.Value, models.Shops())
		case "category":
			req.Category, err = lookup("category", opt.Value, models.Categories())
		default:
			err = fmt.Errorf("unknown option %q", opt.Key)
		}
		if err != nil {
			return nil, fmt.Errorf("add: %w", err)
		}
	}
	return req, nil
}

// Criteria converts the filter command into filter criteria. Options not
// given match everything.
func (f *FilterCommand) Criteria() (models.FilterCriteria, error) {
	var criteria models.FilterCriteria
	for _, opt := range f.Options {
		var err error
		switch strings.ToLower(opt.Key) {
		case "name":
			criteria.Name = opt.Value
		case "shop":
			criteria.Shop, err = lookupOrAny("shop", opt.Value, models.Shops())
		case "category":
			criteria.Category, err = lookupOrAny("category", opt.Value, models.Categories())
		case "status":
			criteria.Status, err = lookup("status", opt.Value, statuses)
		default:
			err = fmt.Errorf("unknown option %q", opt.Key)
		}
		if err != nil {
			return models.FilterCriteria{}, fmt.Errorf("filter: %w", err)
		}
	}
	return criteria, nil
}

var statuses = []models.Status{models.StatusAll, models.StatusBought, models.StatusNotBought}

func lookup[T ~string](key, value string, known []T) (T, error) {
	for _, v := range known {
		if strings.EqualFold(string(v), value) {
			return v, nil
		}
	}
	names := make([]string, len(known))
	for i, v := range known {
		names[i] = string(v)
	}
	return "", fmt.Errorf("unknown %s %q, must be one of: %s", key, value, strings.Join(names, " "))
}

func lookupOrAny[T ~string](key, value string, known []T) (T, error) {
	if strings.EqualFold(value, models.AnyValue) {
		return models.AnyValue, nil
	}
	return lookup(key, value, known)
}
