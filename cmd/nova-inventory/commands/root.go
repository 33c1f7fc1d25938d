// Package commands defines the CLI surface and flag bindings.
//
// The dynamic inventory contract is a fixed invocation surface: no
// arguments or --list for the full inventory, --host <address> for one
// host's variables, and a usage line with exit code 1 for anything else.
// Mode execution is delegated to the handlers package.
package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/imamik/nova-inventory/cmd/nova-inventory/handlers"
	"github.com/imamik/nova-inventory/internal/config"
	"github.com/imamik/nova-inventory/internal/openstack"
)

// Usage is the line printed to stdout for any unrecognized argument shape.
const Usage = "usage: --list  ..OR.. --host <hostname>"

// ErrUsage marks argument-shape errors so main can print Usage and exit 1
// instead of treating them as fatal diagnostics.
var ErrUsage = errors.New("invalid arguments")

// noHelp is a bool-typed flag value that rejects being set. Registering it
// under the "help" name keeps cobra from installing its own --help/-h
// handling, so the help shape fails flag parsing and lands on the usage
// path like every other unrecognized invocation.
type noHelp struct{}

func (noHelp) String() string   { return "false" }
func (noHelp) Type() string     { return "bool" }
func (noHelp) Set(string) error { return ErrUsage }

// Root returns the root command for the nova-inventory CLI.
func Root() *cobra.Command {
	var listMode bool
	var hostAddress string

	cmd := &cobra.Command{
		Use:           "nova-inventory",
		Short:         "OpenStack dynamic inventory for Ansible",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 0 {
				return ErrUsage
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			hostMode := cmd.Flags().Changed("host")
			if listMode && hostMode {
				return ErrUsage
			}

			profile, err := config.Load()
			if err != nil {
				return err
			}

			client, err := openstack.NewClient(cmd.Context(), profile)
			if err != nil {
				return err
			}

			if hostMode {
				return handlers.Host(cmd.Context(), client, profile.PreferPrivate, hostAddress, cmd.OutOrStdout())
			}
			return handlers.List(cmd.Context(), client, profile.PreferPrivate, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&listMode, "list", false, "List all hosts grouped by name, tag, and inventory group")
	cmd.Flags().StringVar(&hostAddress, "host", "", "Show variables for the host with the given address")
	cmd.Flags().Var(noHelp{}, "help", "")
	_ = cmd.Flags().MarkHidden("help")
	cmd.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return ErrUsage
	})

	return cmd
}
