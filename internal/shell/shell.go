package shell

import (
	"errors"
	"fmt"

	"github.com/hance08/campuspay/internal/errhandler"
	"github.com/hance08/campuspay/internal/service"
	"github.com/hance08/campuspay/internal/store"
	"github.com/hance08/campuspay/internal/ui"
	"github.com/hance08/campuspay/internal/ui/prompts"
	"github.com/hance08/campuspay/internal/ui/views"
	"github.com/pterm/pterm"
)

const (
	MenuRegister = "Register"
	MenuLogin    = "Login"
	MenuExit     = "Exit"

	MenuBalance      = "Check Balance"
	MenuSend         = "Send Money"
	MenuRequest      = "Request Money"
	MenuTransactions = "View Transactions"
	MenuLogout       = "Logout"
)

var (
	mainMenu = []string{MenuRegister, MenuLogin, MenuExit}
	userMenu = []string{MenuBalance, MenuSend, MenuRequest, MenuTransactions, MenuLogout}
)

// Shell is the interactive menu loop. Every failed operation is reported
// and the loop continues.
type Shell struct {
	svc    *service.Service
	prompt prompts.Prompter
}

func New(svc *service.Service, p prompts.Prompter) *Shell {
	return &Shell{svc: svc, prompt: p}
}

// Run shows the top level menu until the user picks Exit or aborts it.
func (s *Shell) Run() error {
	for {
		ui.PrintMenuHeader("", "")

		choice, err := s.prompt.Select("Choose an option:", mainMenu)
		if err != nil {
			if errhandler.IsCancelled(err) {
				pterm.Println("Goodbye!")
				return nil
			}
			return err
		}

		switch choice {
		case MenuRegister:
			errhandler.HandleError(s.register())
		case MenuLogin:
			user, err := s.login()
			if err != nil {
				errhandler.HandleError(err)
				continue
			}
			if err := s.userLoop(user); err != nil {
				return err
			}
		case MenuExit:
			pterm.Println("Goodbye!")
			return nil
		default:
			pterm.Warning.Println("Invalid choice.")
		}
	}
}

func (s *Shell) register() error {
	username, password, err := prompts.PromptCredentials(s.prompt, true)
	if err != nil {
		return err
	}

	acc, err := s.svc.Account.Register(username, password)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Registration successful! You received a %s sign-up bonus.\n",
		s.svc.Account.FormatAmount(acc.Balance))
	return nil
}

func (s *Shell) login() (string, error) {
	username, password, err := prompts.PromptCredentials(s.prompt, false)
	if err != nil {
		return "", err
	}

	acc, err := s.svc.Account.Login(username, password)
	if err != nil {
		return "", err
	}

	pterm.Success.Printf("Welcome, %s!\n", acc.Username)
	return acc.Username, nil
}

func (s *Shell) userLoop(user string) error {
	for {
		balance, err := s.svc.Account.GetBalanceFormatted(user)
		if err != nil {
			return err
		}
		ui.PrintMenuHeader(user, balance)

		choice, err := s.prompt.Select("Choose an option:", userMenu)
		if err != nil {
			if errhandler.IsCancelled(err) {
				pterm.Println("Logged out.")
				return nil
			}
			return err
		}

		switch choice {
		case MenuBalance:
			views.RenderBalance(user, balance)
		case MenuSend:
			errhandler.HandleError(s.send(user))
		case MenuRequest:
			errhandler.HandleError(s.request(user))
		case MenuTransactions:
			errhandler.HandleError(s.showTransactions(user))
		case MenuLogout:
			pterm.Println("Logged out.")
			return nil
		default:
			pterm.Warning.Println("Invalid choice.")
		}
	}
}

func (s *Shell) send(user string) error {
	recipient, err := s.prompt.Input("Recipient's username:", nil)
	if err != nil {
		return fmt.Errorf("input cancelled: %w", err)
	}

	amountStr, err := s.prompt.Amount("Amount ($):")
	if err != nil {
		return fmt.Errorf("input cancelled: %w", err)
	}

	amount, err := service.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	if _, err := s.svc.Transaction.Send(user, recipient, amount); err != nil {
		return err
	}

	pterm.Success.Println("Payment sent!")
	return nil
}

func (s *Shell) request(user string) error {
	target, err := s.prompt.Input("Request from (username):", nil)
	if err != nil {
		return fmt.Errorf("input cancelled: %w", err)
	}

	amountStr, err := s.prompt.Amount("Amount ($):")
	if err != nil {
		return fmt.Errorf("input cancelled: %w", err)
	}

	amount, err := service.ParseAmount(amountStr)
	if err != nil {
		return err
	}

	rec, err := s.svc.Transaction.Request(user, target, amount)
	if err != nil {
		return err
	}

	pterm.Success.Printf("Request for %s sent to %s.\n", s.svc.Transaction.FormatAmount(rec.Amount), rec.Sender)
	return nil
}

func (s *Shell) showTransactions(user string) error {
	return ShowHistory(s.svc, service.HistoryFilter{}, user)
}

// ShowHistory renders the log as a table, falling back to the raw text when
// some line cannot be parsed.
func ShowHistory(svc *service.Service, filter service.HistoryFilter, viewer string) error {
	records, err := svc.Transaction.History(filter)
	if err != nil {
		if !errors.Is(err, store.ErrMalformedRecord) {
			return err
		}

		pterm.Warning.Printf("Showing raw history: %v\n", err)
		raw, rawErr := svc.Transaction.RawHistory()
		if rawErr != nil {
			return rawErr
		}
		views.RenderRawHistory(raw)
		return nil
	}

	items := views.BuildTransactionItems(records, viewer, svc.Transaction.FormatAmount)
	return views.NewTransactionListView().Render(items)
}
