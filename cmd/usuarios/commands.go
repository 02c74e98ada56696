package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"gestionusuarios/internal/logging"
	"gestionusuarios/internal/model"
	"gestionusuarios/internal/report"
	"gestionusuarios/internal/tui"
)

const msgConfirmEliminar = "¿Estás seguro de que quieres eliminar este usuario?"

func newTUICmd(a *app) *cobra.Command {
	var soloLectura bool
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Abre la página interactiva de usuarios",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if !soloLectura {
				if err := a.login(ctx); err != nil {
					return err
				}
			}
			logging.Discard()
			return tui.Run(ctx, a.client, tui.Options{
				MontoConsulta: a.cfg.MontoConsulta,
				RangoMin:      a.cfg.RangoMin,
				RangoMax:      a.cfg.RangoMax,
				ToastTTL:      3 * time.Second,
			})
		},
	}
	cmd.Flags().BoolVar(&soloLectura, "solo-lectura", false, "no inicia sesión; solo consultas")
	return cmd
}

func newListarCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "listar",
		Short: "Lista todos los usuarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usuarios, err := a.client.ListarUsuarios(cmd.Context())
			if err != nil {
				return err
			}
			printUsuarios(cmd.OutOrStdout(), "Todos los Usuarios", usuarios)
			return nil
		},
	}
}

func newObtenerCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "obtener <id>",
		Short: "Muestra un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			u, err := a.client.ObtenerUsuario(cmd.Context(), id)
			if err != nil {
				return err
			}
			printUsuarios(cmd.OutOrStdout(), "Usuario", []model.Usuario{*u})
			return nil
		},
	}
}

func newAgregarCmd(a *app) *cobra.Command {
	var form model.UsuarioFormData
	cmd := &cobra.Command{
		Use:   "agregar",
		Short: "Agrega un usuario con su cargo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if form.FechaInicio == "" {
				form.FechaInicio = time.Now().Format("2006-01-02")
			}
			ctx := cmd.Context()
			if err := a.login(ctx); err != nil {
				return err
			}
			u, err := a.client.AgregarUsuario(ctx, form)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Usuario agregado")
			printUsuarios(cmd.OutOrStdout(), "", []model.Usuario{*u})
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Nombre, "nombre", "", "nombre completo")
	f.StringVar(&form.Email, "email-usuario", "", "email del usuario")
	f.StringVar(&form.IDCargo, "cargo", "", "id del cargo")
	f.StringVar(&form.FechaInicio, "fecha", "", "fecha de inicio YYYY-MM-DD (hoy por defecto)")
	_ = cmd.MarkFlagRequired("nombre")
	_ = cmd.MarkFlagRequired("email-usuario")
	_ = cmd.MarkFlagRequired("cargo")
	return cmd
}

func newModificarCmd(a *app) *cobra.Command {
	var form model.UsuarioFormData
	cmd := &cobra.Command{
		Use:   "modificar <id>",
		Short: "Modifica nombre, email o cargo de un usuario",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if err := a.login(ctx); err != nil {
				return err
			}
			u, err := a.client.ModificarUsuario(ctx, id, form)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Usuario actualizado")
			printUsuarios(cmd.OutOrStdout(), "", []model.Usuario{*u})
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&form.Nombre, "nombre", "", "nuevo nombre")
	f.StringVar(&form.Email, "email-usuario", "", "nuevo email")
	f.StringVar(&form.IDCargo, "cargo", "", "nuevo id de cargo")
	f.StringVar(&form.FechaInicio, "fecha", "", "fecha de inicio si el usuario no tenía cargo")
	return cmd
}

func newEliminarCmd(a *app) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "eliminar <id>",
		Short: "Elimina un usuario tras confirmar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !yes && !a.confirm(out, msgConfirmEliminar) {
				fmt.Fprintln(out, "Cancelado")
				return nil
			}
			ctx := cmd.Context()
			if err := a.login(ctx); err != nil {
				return err
			}
			if err := a.client.EliminarUsuario(ctx, id); err != nil {
				return err
			}
			fmt.Fprintln(out, "Usuario eliminado correctamente")
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "no pedir confirmación")
	return cmd
}

func newCargosCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cargos",
		Short: "Lista los cargos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cargos, err := a.client.ListarCargos(cmd.Context())
			if err != nil {
				return err
			}
			printCargos(cmd.OutOrStdout(), cargos)
			return nil
		},
	}

	var (
		nuevo  model.Cargo
		sueldo string
	)
	crear := &cobra.Command{
		Use:   "crear",
		Short: "Crea un cargo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := decimal.NewFromString(sueldo)
			if err != nil {
				return fmt.Errorf("sueldo inválido %q", sueldo)
			}
			nuevo.Sueldo = s
			ctx := cmd.Context()
			if err := a.login(ctx); err != nil {
				return err
			}
			c, err := a.client.CrearCargo(ctx, nuevo)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Cargo creado")
			printCargos(cmd.OutOrStdout(), []model.Cargo{*c})
			return nil
		},
	}
	f := crear.Flags()
	f.StringVar(&nuevo.Cargo, "nombre", "", "nombre del cargo")
	f.StringVar(&sueldo, "sueldo", "", "sueldo en Bs.")
	f.StringVar(&nuevo.HoraEntrada, "entrada", "", "hora de entrada HH:MM (08:00 por defecto)")
	f.StringVar(&nuevo.HoraSalida, "salida", "", "hora de salida HH:MM (17:00 por defecto)")
	_ = crear.MarkFlagRequired("nombre")
	_ = crear.MarkFlagRequired("sueldo")

	cmd.AddCommand(crear)
	return cmd
}

func newConsultaCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "consulta",
		Short: "Consultas especiales sobre los usuarios",
	}

	mayor := &cobra.Command{
		Use:   "sueldo-mayor [monto]",
		Short: "Usuarios con sueldo mayor al monto",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			monto := decimal.NewFromInt(a.cfg.MontoConsulta)
			if len(args) == 1 {
				m, err := parseMonto(args[0])
				if err != nil {
					return err
				}
				monto = m
			}
			usuarios, err := a.client.UsuariosSueldoMayor(cmd.Context(), monto)
			if err != nil {
				return err
			}
			printUsuarios(cmd.OutOrStdout(), "Sueldo mayor a Bs. "+monto.String(), usuarios)
			return nil
		},
	}

	entre := &cobra.Command{
		Use:   "sueldo-entre [min max]",
		Short: "Usuarios con sueldo dentro del rango, inclusive",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("expected 0 or 2 args, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			min, max := decimal.NewFromInt(a.cfg.RangoMin), decimal.NewFromInt(a.cfg.RangoMax)
			if len(args) == 2 {
				var err error
				if min, err = parseMonto(args[0]); err != nil {
					return err
				}
				if max, err = parseMonto(args[1]); err != nil {
					return err
				}
			}
			usuarios, err := a.client.UsuariosSueldoEntre(cmd.Context(), min, max)
			if err != nil {
				return err
			}
			printUsuarios(cmd.OutOrStdout(), fmt.Sprintf("Sueldo entre Bs. %s-%s", min, max), usuarios)
			return nil
		},
	}

	tarde := &cobra.Command{
		Use:   "tarde",
		Short: "Usuarios que llegaron tarde",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usuarios, err := a.client.UsuariosLlegaronTarde(cmd.Context())
			if err != nil {
				return err
			}
			printUsuarios(cmd.OutOrStdout(), "Llegaron tarde", usuarios)
			return nil
		},
	}

	temprano := &cobra.Command{
		Use:   "temprano",
		Short: "Usuarios que salieron temprano",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			usuarios, err := a.client.UsuariosSalieronTemprano(cmd.Context())
			if err != nil {
				return err
			}
			printUsuarios(cmd.OutOrStdout(), "Salieron temprano", usuarios)
			return nil
		},
	}

	cmd.AddCommand(mayor, entre, tarde, temprano)
	return cmd
}

func newAsistenciaCmd(a *app) *cobra.Command {
	var form model.AsistenciaFormData
	cmd := &cobra.Command{
		Use:   "asistencia",
		Short: "Registra la asistencia de un usuario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := a.login(ctx); err != nil {
				return err
			}
			as, err := a.client.RegistrarAsistencia(ctx, form)
			if err != nil {
				return err
			}
			salida := ""
			if as.HoraSalida != nil {
				salida = *as.HoraSalida
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Asistencia registrada: usuario %d, %s, %s-%s\n",
				as.IDUsuario, as.Fecha.Format("2006-01-02"), as.HoraEntrada, salida)
			return nil
		},
	}
	f := cmd.Flags()
	f.UintVar(&form.IDUsuario, "usuario", 0, "id del usuario")
	f.StringVar(&form.Fecha, "fecha", "", "fecha YYYY-MM-DD (hoy por defecto)")
	f.StringVar(&form.HoraEntrada, "entrada", "", "hora de entrada HH:MM")
	f.StringVar(&form.HoraSalida, "salida", "", "hora de salida HH:MM")
	_ = cmd.MarkFlagRequired("usuario")
	_ = cmd.MarkFlagRequired("entrada")
	return cmd
}

func newExportarCmd(a *app) *cobra.Command {
	var consulta, salida string
	cmd := &cobra.Command{
		Use:   "exportar",
		Short: "Exporta los usuarios o el resultado de una consulta a PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			titulo, usuarios, err := a.seleccion(cmd.Context(), consulta)
			if err != nil {
				return err
			}
			f, err := os.Create(salida)
			if err != nil {
				return fmt.Errorf("create %s: %w", salida, err)
			}
			defer f.Close()
			if err := report.WriteUsuariosPDF(f, titulo, usuarios, time.Now()); err != nil {
				return err
			}
			if err := f.Close(); err != nil {
				return fmt.Errorf("close %s: %w", salida, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "PDF generado: %s (%d registros)\n", salida, len(usuarios))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&consulta, "consulta", "todos", "todos, sueldo-mayor, sueldo-entre, tarde o temprano")
	f.StringVarP(&salida, "salida", "o", "usuarios.pdf", "archivo de salida")
	return cmd
}

// seleccion runs the named consulta with the configured monto and rango.
func (a *app) seleccion(ctx context.Context, consulta string) (string, []model.Usuario, error) {
	var (
		titulo   string
		usuarios []model.Usuario
		err      error
	)
	switch consulta {
	case "", "todos":
		titulo = "Todos los Usuarios"
		usuarios, err = a.client.ListarUsuarios(ctx)
	case "sueldo-mayor":
		titulo = fmt.Sprintf("Sueldo mayor a Bs. %d", a.cfg.MontoConsulta)
		usuarios, err = a.client.UsuariosSueldoMayor(ctx, decimal.NewFromInt(a.cfg.MontoConsulta))
	case "sueldo-entre":
		titulo = fmt.Sprintf("Sueldo entre Bs. %d-%d", a.cfg.RangoMin, a.cfg.RangoMax)
		usuarios, err = a.client.UsuariosSueldoEntre(ctx, decimal.NewFromInt(a.cfg.RangoMin), decimal.NewFromInt(a.cfg.RangoMax))
	case "tarde":
		titulo = "Llegaron tarde"
		usuarios, err = a.client.UsuariosLlegaronTarde(ctx)
	case "temprano":
		titulo = "Salieron temprano"
		usuarios, err = a.client.UsuariosSalieronTemprano(ctx)
	default:
		return "", nil, fmt.Errorf("consulta desconocida %q", consulta)
	}
	return titulo, usuarios, err
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("id inválido %q", raw)
	}
	return uint(id), nil
}

func parseMonto(raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("monto inválido %q", raw)
	}
	return d, nil
}
