package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/IvanChernomyrdin/go-mars-registry/internal/server/service"
)

// NewUserCmd создаёт группу команд для администрирования пользователей.
func NewUserCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Администрирование пользователей",
	}
	cmd.AddCommand(newUserCreateCmd(app))
	return cmd
}

// newUserCreateCmd создаёт пользователя так же, как форма регистрации.
// Первый созданный пользователь получает id 1 и права суперпользователя.
func newUserCreateCmd(app *App) *cobra.Command {
	var (
		in        service.RegisterInput
		fromStdin bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Создать пользователя",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig()
			if err != nil {
				return err
			}

			pw, err := ReadPassword(cmd, fromStdin)
			if err != nil {
				return err
			}
			in.Password = pw
			in.PasswordAgain = pw

			ctx := cmd.Context()
			db, err := OpenDB(ctx, cfg.DB)
			if err != nil {
				return err
			}
			defer db.Close()

			store, err := OpenRepositories(ctx, cfg, db)
			if err != nil {
				return err
			}
			defer store.Close()

			svc := service.NewServices(store.Repos, cfg)
			u, err := svc.Auth.Register(ctx, in)
			if err != nil {
				return fmt.Errorf("create user: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "user created: id=%d email=%s\n", u.ID, u.Email)
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "login (email)")
	f.StringVar(&in.Surname, "surname", "", "surname")
	f.StringVar(&in.Name, "name", "", "name")
	f.IntVar(&in.Age, "age", 0, "age")
	f.StringVar(&in.Position, "position", "", "position")
	f.StringVar(&in.Speciality, "speciality", "", "speciality")
	f.StringVar(&in.Address, "address", "", "address")
	f.BoolVar(&fromStdin, "password-stdin", false, "read password from stdin")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("surname")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

// readPassword читает пароль из stdin или из терминала без эха.
// В терминале пароль спрашивается дважды. Пароль не обрезается,
// как и в форме регистрации: отбрасывается только перевод строки из stdin.
func readPassword(cmd *cobra.Command, fromStdin bool) (string, error) {
	if fromStdin {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read password from stdin: %w", err)
		}
		return checkPassword(strings.TrimRight(string(b), "\r\n"))
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", errors.New("stdin is not a terminal; use --password-stdin")
	}

	prompt := func(label string) (string, error) {
		fmt.Fprint(cmd.ErrOrStderr(), label)
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}

	pw, err := prompt("Password: ")
	if err != nil {
		return "", err
	}
	if _, err := checkPassword(pw); err != nil {
		return "", err
	}
	again, err := prompt("Repeat password: ")
	if err != nil {
		return "", err
	}
	if pw != again {
		return "", errors.New("passwords do not match")
	}
	return pw, nil
}

// checkPassword отклоняет пароль из одних пробелов, как форма регистрации.
func checkPassword(pw string) (string, error) {
	if strings.TrimSpace(pw) == "" {
		return "", errors.New("empty password")
	}
	return pw, nil
}
