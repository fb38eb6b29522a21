package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/catalogadmin/console/internal/core/domain"
)

// Access is the login/registration side of the services.
type Access interface {
	Login(ctx context.Context, form domain.LoginForm) error
	Register(ctx context.Context, form domain.RegisterForm) error
}

// Catalog is the authenticated create/list side of the services.
type Catalog interface {
	CreateCategory(ctx context.Context, form domain.CategoryForm) error
	CreateProduct(ctx context.Context, form domain.ProductForm) error
	CreateOrder(ctx context.Context, form domain.OrderForm) error
	AddOrderItem(ctx context.Context, form domain.OrderItemForm) error
	Refresh(ctx context.Context, kind domain.ResourceKind) error
	RefreshAll(ctx context.Context) error
}

// Credentials reports the session's current credential.
type Credentials interface {
	Credential() (domain.Credential, bool)
}

const helpText = `commands:
  login <username> <password>
  register <username> <password>
  category add <name>
  product add <name> <price> <category_id>
  order add <user_id>
  item add <order_id> <product_id> <quantity>
  list <categories|products|users|orders>
  refresh
  whoami
  help
  quit
arguments containing spaces go in double quotes
`

// Shell reads one command per line and runs it to completion before
// reading the next.
type Shell struct {
	in      io.Reader
	term    *Terminal
	access  Access
	catalog Catalog
	creds   Credentials
	logger  zerolog.Logger
}

func NewShell(in io.Reader, term *Terminal, access Access, catalog Catalog, creds Credentials, logger zerolog.Logger) *Shell {
	return &Shell{
		in:      in,
		term:    term,
		access:  access,
		catalog: catalog,
		creds:   creds,
		logger:  logger.With().Str("component", "shell").Logger(),
	}
}

// Run processes commands until quit, end of input or ctx is done.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	s.prompt()
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		args, err := Fields(scanner.Text())
		if err != nil {
			s.term.Printf("%v\n", err)
			s.prompt()
			continue
		}
		if len(args) > 0 {
			if quit := s.exec(ctx, args); quit {
				return nil
			}
		}
		s.prompt()
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("shell: read input: %w", err)
	}
	return nil
}

func (s *Shell) prompt() {
	s.term.Printf("%s> ", s.term.Panel())
}

// exec runs one command and reports whether the shell should stop.
// Service errors have already been shown by the view and are only logged.
func (s *Shell) exec(ctx context.Context, args []string) bool {
	cmd, rest := strings.ToLower(args[0]), args[1:]
	var err error

	switch cmd {
	case "quit", "exit":
		return true
	case "help":
		s.term.Printf("%s", helpText)
		return false
	case "whoami":
		s.whoami()
		return false
	case "login":
		if !s.arity(rest, 2, "login <username> <password>") {
			return false
		}
		err = s.access.Login(ctx, domain.LoginForm{Username: rest[0], Password: rest[1]})
	case "register":
		if !s.arity(rest, 2, "register <username> <password>") {
			return false
		}
		err = s.access.Register(ctx, domain.RegisterForm{Username: rest[0], Password: rest[1]})
	case "category", "product", "order", "item":
		err = s.add(ctx, cmd, rest)
	case "list":
		if !s.arity(rest, 1, "list <categories|products|users|orders>") {
			return false
		}
		kind, ok := domain.ParseKind(strings.ToLower(rest[0]))
		if !ok || kind == domain.KindOrderItem {
			s.term.Printf("unknown list %q\n", rest[0])
			return false
		}
		err = s.catalog.Refresh(ctx, kind)
	case "refresh":
		err = s.catalog.RefreshAll(ctx)
	default:
		s.term.Printf("unknown command %q, type help\n", args[0])
		return false
	}

	if err != nil {
		s.logger.Debug().Err(err).Str("command", cmd).Msg("command failed")
	}
	return false
}

func (s *Shell) add(ctx context.Context, cmd string, rest []string) error {
	if len(rest) == 0 || strings.ToLower(rest[0]) != "add" {
		s.term.Printf("usage: %s add ...\n", cmd)
		return nil
	}
	rest = rest[1:]

	switch cmd {
	case "category":
		if !s.arity(rest, 1, "category add <name>") {
			return nil
		}
		return s.catalog.CreateCategory(ctx, domain.CategoryForm{Name: rest[0]})
	case "product":
		if !s.arity(rest, 3, "product add <name> <price> <category_id>") {
			return nil
		}
		return s.catalog.CreateProduct(ctx, domain.ProductForm{Name: rest[0], Price: rest[1], CategoryID: rest[2]})
	case "order":
		if !s.arity(rest, 1, "order add <user_id>") {
			return nil
		}
		return s.catalog.CreateOrder(ctx, domain.OrderForm{UserID: rest[0]})
	default:
		if !s.arity(rest, 3, "item add <order_id> <product_id> <quantity>") {
			return nil
		}
		return s.catalog.AddOrderItem(ctx, domain.OrderItemForm{OrderID: rest[0], ProductID: rest[1], Quantity: rest[2]})
	}
}

func (s *Shell) arity(args []string, n int, usage string) bool {
	if len(args) != n {
		s.term.Printf("usage: %s\n", usage)
		return false
	}
	return true
}

func (s *Shell) whoami() {
	cred, ok := s.creds.Credential()
	if !ok {
		s.term.Printf("not logged in\n")
		return
	}
	who := cred.Subject
	if who == "" {
		who = "(opaque token)"
	}
	if cred.ExpiresAt.IsZero() {
		s.term.Printf("%s\n", who)
		return
	}
	s.term.Printf("%s, token expires %s\n", who, cred.ExpiresAt.Local().Format(time.RFC3339))
}
