package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	DefaultServer = "http://localhost:8080"
	envPrefix     = "TRAVELCTL"
)

// Output formats
const (
	OutputText = "text"
	OutputYAML = "yaml"
	OutputJSON = "json"
)

// NewRootCmd builds the travelctl command tree. Flags can also be set through
// TRAVELCTL_SERVER, TRAVELCTL_USER and TRAVELCTL_OUTPUT.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "travelctl",
		Short:         "Talk to the travel assistant from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("server", DefaultServer, "travel assistant base URL")
	root.PersistentFlags().StringP("user", "u", "", "user id sent as X-User-ID")
	root.PersistentFlags().StringP("output", "o", OutputText, "output format: text, yaml or json")
	_ = v.BindPFlags(root.PersistentFlags())

	root.AddCommand(
		newAskCmd(v),
		newHistoryCmd(v),
		newClearCmd(v),
	)
	return root
}

func clientFrom(v *viper.Viper) (*Client, error) {
	return NewClient(v.GetString("server"), v.GetString("user"))
}
