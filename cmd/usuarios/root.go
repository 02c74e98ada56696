package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"gestionusuarios/internal/client"
	"gestionusuarios/internal/config"
	"gestionusuarios/internal/logging"
)

// app carries what every subcommand needs once the root command has run.
type app struct {
	cfg    *config.Config
	client *client.Client

	in           *bufio.Reader
	readPassword func() (string, error)

	apiURL   string
	email    string
	password string
}

func newApp(in io.Reader) *app {
	a := &app{in: bufio.NewReader(in)}
	a.readPassword = a.promptPassword
	return a
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "usuarios",
		Short:         "Gestión de usuarios y cargos",
		Long:          `Cliente de línea de comandos y terminal interactiva para la API de usuarios.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			a.cfg = cfg
			logging.Setup(cfg.Env, cfg.LogLevel)

			url := cfg.APIURL
			if a.apiURL != "" {
				url = a.apiURL
			}
			if a.email == "" {
				a.email = cfg.AdminEmail
			}
			a.client = client.New(url, cfg.APITimeout)
			log.Debug().Str("api_url", url).Msg("client ready")
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.client == nil {
				return nil
			}
			// revoke the refresh token a write command obtained
			if err := a.client.Logout(cmd.Context()); err != nil {
				log.Warn().Err(err).Msg("logout failed")
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.apiURL, "api-url", "", "URL base de la API (por defecto API_URL)")
	flags.StringVar(&a.email, "email", "", "email del operador (por defecto ADMIN_EMAIL)")
	flags.StringVar(&a.password, "password", "", "contraseña del operador; se solicita si falta")

	root.AddCommand(
		newTUICmd(a),
		newListarCmd(a),
		newObtenerCmd(a),
		newAgregarCmd(a),
		newModificarCmd(a),
		newEliminarCmd(a),
		newCargosCmd(a),
		newConsultaCmd(a),
		newAsistenciaCmd(a),
		newExportarCmd(a),
	)
	return root
}

// login obtains an operator session for write commands.
func (a *app) login(ctx context.Context) error {
	if a.client.Authenticated() {
		return nil
	}
	password := a.password
	if password == "" {
		p, err := a.readPassword()
		if err != nil {
			return fmt.Errorf("read password: %w", err)
		}
		password = p
	}
	if err := a.client.Login(ctx, a.email, password); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	log.Debug().Str("email", a.email).Msg("logged in")
	return nil
}

// promptPassword reads without echo on a terminal and falls back to a plain
// line when stdin is piped.
func (a *app) promptPassword() (string, error) {
	fmt.Fprintf(os.Stderr, "Contraseña para %s: ", a.email)
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", err
		}
		return string(raw), nil
	}
	return a.readLine()
}

func (a *app) readLine() (string, error) {
	line, err := a.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// confirm asks a yes/no question; anything but s/si/y/yes declines.
func (a *app) confirm(out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [s/N]: ", question)
	answer, err := a.readLine()
	if err != nil {
		return false
	}
	switch strings.ToLower(answer) {
	case "s", "si", "sí", "y", "yes":
		return true
	}
	return false
}
