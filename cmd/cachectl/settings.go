package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leextar/readercache/cache"
	"github.com/leextar/readercache/settings"
)

var (
	proxyEnable   bool
	proxyHost     string
	proxyPort     uint16
	proxyUser     string
	proxyPassword string
)

func init() {
	rootCmd.AddCommand(newSettingsCmd())
}

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show the reader settings stored in the cache",
		Long: `The settings command decodes the settings block of the cache header:
font, window placement, colors, hotkeys and, on current layouts, the
proxy configuration.

Example:
  cachectl settings
  cachectl settings --json
  cachectl settings proxy --enable --host 127.0.0.1 --port 1080`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSettings()
		},
	}
	cmd.AddCommand(newProxyCmd(), newHotkeysResetCmd())
	return cmd
}

func newProxyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "proxy",
		Short: "Change the proxy configuration",
		Long: `The proxy command updates the fields given as flags and leaves the
others unchanged.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProxy(cmd)
		},
	}
	cmd.Flags().BoolVar(&proxyEnable, "enable", false, "Enable the proxy (use --enable=false to disable)")
	cmd.Flags().StringVar(&proxyHost, "host", "", "Proxy host")
	cmd.Flags().Uint16Var(&proxyPort, "port", 0, "Proxy port")
	cmd.Flags().StringVar(&proxyUser, "user", "", "Proxy user")
	cmd.Flags().StringVar(&proxyPassword, "password", "", "Proxy password")
	return cmd
}

func newHotkeysResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset-hotkeys",
		Short: "Restore the factory hotkey table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHotkeysReset()
		},
	}
}

func runSettings() error {
	return withStore(false, func(s *cache.Store) error {
		v, err := settings.Decode(s.Settings())
		if err != nil {
			return err
		}
		if jsonOut {
			return printJSON(v)
		}

		printInfo("\nFont: %s %dpx weight %d\n", v.Font.Face, v.Font.Height, v.Font.Weight)
		printInfo("Window: (%d,%d)-(%d,%d)\n", v.Rect.Left, v.Rect.Top, v.Rect.Right, v.Rect.Bottom)
		printInfo("Colors: font #%06X background #%06X alpha %d\n", v.FontColor, v.BgColor, v.Alpha)
		printInfo("Page mode: %d, auto page: %d every %dms\n", v.PageMode, v.AutoPageMode, v.AutoPageMillis)
		printInfo("Systray: %t, hide taskbar: %t\n", v.ShowSystray, v.HideTaskbar)

		printInfo("\nHotkeys:\n")
		for i, hk := range v.Hotkeys {
			if i >= len(settings.ActionNames) {
				if hk != (settings.Hotkey{}) {
					printInfo("  %-12s %s\n", fmt.Sprintf("#%d", i), hk)
				}
				continue
			}
			printInfo("  %-12s %s\n", settings.ActionNames[i], keyColor.Sprint(hk))
		}

		if v.Proxy != nil {
			state := "disabled"
			if v.Proxy.Enabled {
				state = "enabled"
			}
			printInfo("\nProxy: %s %s:%d", state, v.Proxy.Host, v.Proxy.Port)
			if v.Proxy.User != "" {
				printInfo(" user %s", v.Proxy.User)
			}
			printInfo("\n")
		}
		return nil
	})
}

func runProxy(cmd *cobra.Command) error {
	return withStore(true, func(s *cache.Store) error {
		var p settings.Proxy
		s.Attach(&p)
		cur, ok := p.Config()
		if !ok {
			return fmt.Errorf("cache schema v%d has no proxy settings", s.SchemaVersion())
		}

		flags := cmd.Flags()
		if flags.Changed("enable") {
			cur.Enabled = proxyEnable
		}
		if flags.Changed("host") {
			cur.Host = proxyHost
		}
		if flags.Changed("port") {
			cur.Port = proxyPort
		}
		if flags.Changed("user") {
			cur.User = proxyUser
		}
		if flags.Changed("password") {
			cur.Password = proxyPassword
		}
		if err := p.Set(cur); err != nil {
			return err
		}
		printInfo("%s %s:%d (enabled %t)\n", okColor.Sprint("Proxy updated:"), cur.Host, cur.Port, cur.Enabled)
		return nil
	})
}

func runHotkeysReset() error {
	return withStore(true, func(s *cache.Store) error {
		var h settings.Hotkeys
		s.Attach(&h)
		for i := 0; i < settings.HotkeyCount; i++ {
			var hk settings.Hotkey
			if i < len(settings.DefaultHotkeys) {
				hk = settings.DefaultHotkeys[i]
			}
			h.Set(i, hk)
		}
		printInfo("%s\n", okColor.Sprint("Hotkeys restored"))
		return nil
	})
}
