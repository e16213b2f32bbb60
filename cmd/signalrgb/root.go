package main

import (
	"io"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hyperb1iss/signalrgb-go/signalrgb"
)

// app carries the resolved connection settings and output sink shared by
// every subcommand.
type app struct {
	host    string
	port    int
	noColor bool
	debug   bool

	out io.Writer
	log *logrus.Logger
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out, log: logrus.New()}

	root := &cobra.Command{
		Use:   "signalrgb",
		Short: "Control SignalRGB lighting from the command line",
		Long: `signalrgb talks to the REST API of a local SignalRGB instance to list
and apply lighting effects, manage presets and layouts, and control
canvas brightness and power.

Connection settings come from --host/--port or the SIGNALRGB_HOST and
SIGNALRGB_PORT environment variables.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("host", signalrgb.DefaultHost, "SignalRGB API host")
	root.PersistentFlags().Int("port", signalrgb.DefaultPort, "SignalRGB API port")
	root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "disable colored output")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		v := viper.New()
		v.SetEnvPrefix("signalrgb")
		v.AutomaticEnv()
		if err := v.BindPFlag("host", cmd.Flags().Lookup("host")); err != nil {
			return err
		}
		if err := v.BindPFlag("port", cmd.Flags().Lookup("port")); err != nil {
			return err
		}

		a.host = v.GetString("host")
		a.port = v.GetInt("port")
		a.debug = v.GetBool("debug")
		if a.debug {
			a.log.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	root.AddCommand(
		a.effectCmd(),
		a.presetCmd(),
		a.layoutCmd(),
		a.canvasCmd(),
		versionCmd(),
	)

	return root
}

// client builds a blocking client from the resolved settings. The caller
// owns the returned client and must close it.
func (a *app) client() (*signalrgb.SyncClient, error) {
	config := signalrgb.DefaultConfig().
		WithHost(a.host).
		WithPort(a.port)
	if a.debug {
		config.WithObserver(signalrgb.NewLogObserver(a.log))
	}
	return signalrgb.NewSyncClient(config)
}

// withClient runs fn with a fresh client and closes it afterwards.
func (a *app) withClient(fn func(*signalrgb.SyncClient) error) error {
	client, err := a.client()
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(client)
}

func (a *app) successf(format string, args ...interface{}) {
	msg := color.New(color.FgGreen)
	if a.noColor {
		msg.DisableColor()
	}
	msg.Fprintf(a.out, format+"\n", args...)
}
