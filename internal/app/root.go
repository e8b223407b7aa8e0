package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/bookshopctl/internal/api"
	"github.com/blackwell-systems/bookshopctl/internal/cart"
	"github.com/blackwell-systems/bookshopctl/internal/config"
	"github.com/blackwell-systems/bookshopctl/internal/money"
	"github.com/blackwell-systems/bookshopctl/internal/session"
	"github.com/blackwell-systems/bookshopctl/internal/store"
	"github.com/blackwell-systems/bookshopctl/internal/tui"
	"github.com/blackwell-systems/bookshopctl/internal/util"
)

var (
	cfg    *config.Config
	client *api.Client
	sess   *session.Session
	crt    *cart.Cart

	flagNoColor       bool
	flagNoInteractive bool
)

var rootCmd = &cobra.Command{
	Use:   "bookshopctl",
	Short: "A terminal storefront for the bookshop API",
	Long: `bookshopctl browses the bookshop catalog, manages a local shopping cart,
and checks out into transactions against the remote bookshop API.

The cart lives on this machine and survives between runs; it only reaches
the server at checkout.

Run 'bookshopctl' with no arguments to launch the interactive menu.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if tui.ShouldUseTUI(cmd) {
			return runHub()
		}
		return cmd.Help()
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("error:"), err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagNoInteractive, "no-interactive", false, "Disable interactive TUI mode")

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		util.InitColor(flagNoColor)

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		kv := store.NewFileStore(cfg.Defaults.DataDir)
		sess = session.Load(kv)
		crt = cart.Load(kv, warn)

		// An env token takes precedence over the stored session.
		var tokens api.TokenSource = sess
		if cfg.API.Token != "" {
			tokens = staticToken(cfg.API.Token)
		}
		client = api.New(cfg.API.BaseURL, tokens)
		return nil
	}

	rootCmd.AddCommand(
		newLoginCmd(),
		newRegisterCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newBooksCmd(),
		newGenresCmd(),
		newCartCmd(),
		newCheckoutCmd(),
		newTransactionsCmd(),
		newBrowseCmd(),
		newConfigCmd(),
		newVersionCmd(),
		newCompletionCmd(),
	)
}

// staticToken adapts a fixed env-provided credential to api.TokenSource.
type staticToken string

func (t staticToken) Token() string { return string(t) }

// requireLogin returns an error unless a credential is available.
func requireLogin() error {
	if sess.LoggedIn() || cfg.API.Token != "" {
		return nil
	}
	return fmt.Errorf("not logged in — run: bookshopctl login")
}

// authErr maps an unauthorized response to a forced logout. Every command
// that talks to a protected endpoint routes its error through here.
func authErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, api.ErrUnauthorized) {
		if clearErr := sess.Clear(); clearErr != nil {
			warn("clearing session: %v", clearErr)
		}
		return fmt.Errorf("session expired — run: bookshopctl login")
	}
	return err
}

// ok prints a green success line.
func ok(format string, a ...interface{}) {
	fmt.Println(color.GreenString("✓"), fmt.Sprintf(format, a...))
}

// warn prints a yellow warning line.
func warn(format string, a ...interface{}) {
	fmt.Fprintln(os.Stderr, color.YellowString("!"), fmt.Sprintf(format, a...))
}

// header prints a cyan section heading.
func header(format string, a ...interface{}) {
	fmt.Println(color.CyanString(fmt.Sprintf(format, a...)))
}

// runHub launches the interactive hub menu and routes to selected action.
func runHub() error {
	ctx := tui.HubContext{
		Username:  sess.Username(),
		CartItems: crt.ItemCount(),
		CartTotal: money.Format(crt.TotalPrice()),
	}

	action, err := tui.RunHub(ctx)
	if err != nil {
		return err
	}

	switch action {
	case "browse":
		return runBrowse()
	case "cart":
		return runCartView()
	case "checkout":
		return runCheckout(false)
	case "history":
		return runHistory()
	case "quit":
		return nil
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}
