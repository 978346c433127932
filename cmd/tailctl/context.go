package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"tailctl/internal/config"
	"tailctl/internal/logging"
	"tailctl/localapi"
)

type commandContext struct {
	socketFlag       *string
	portFlag         *int
	passwordFileFlag *string
	configFlag       *string
	timeoutFlag      *time.Duration
	jsonFlag         *bool

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(socketFlag *string, portFlag *int, passwordFileFlag, configFlag *string, timeoutFlag *time.Duration, jsonFlag *bool) *commandContext {
	return &commandContext{
		socketFlag:       socketFlag,
		portFlag:         portFlag,
		passwordFileFlag: passwordFileFlag,
		configFlag:       configFlag,
		timeoutFlag:      timeoutFlag,
		jsonFlag:         jsonFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.New(logging.Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format})
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger
	})
	return c.logger
}

// transport resolves the daemon transport from flags, config, and finally
// the platform defaults, in that order.
func (c *commandContext) transport() (localapi.Transport, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return localapi.Transport{}, err
	}

	socket := strings.TrimSpace(*c.socketFlag)
	if socket == "" {
		socket = cfg.Daemon.Socket
	}
	port := *c.portFlag
	if port == 0 {
		port = cfg.Daemon.Port
	}

	switch {
	case socket != "" && *c.portFlag != 0:
		return localapi.Transport{}, errors.New("--socket and --port are mutually exclusive")
	case socket != "":
		return localapi.SocketTransport(socket), nil
	case port != 0:
		password, err := c.readPassword(cfg)
		if err != nil {
			return localapi.Transport{}, err
		}
		return localapi.TCPTransport(uint16(port), password), nil
	default:
		return localapi.Resolve()
	}
}

func (c *commandContext) readPassword(cfg *config.Config) (string, error) {
	path := strings.TrimSpace(*c.passwordFileFlag)
	if path == "" {
		path = cfg.Daemon.PasswordFile
	}
	if path == "" {
		return "", errors.New("--port requires --password-file or daemon.password_file")
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read password file: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func (c *commandContext) timeout() time.Duration {
	if c.timeoutFlag != nil && *c.timeoutFlag > 0 {
		return *c.timeoutFlag
	}
	if cfg, err := c.ensureConfig(); err == nil {
		return time.Duration(cfg.Daemon.TimeoutSeconds) * time.Second
	}
	return 0
}

func (c *commandContext) newClient() (*localapi.Client, error) {
	transport, err := c.transport()
	if err != nil {
		return nil, err
	}
	return localapi.New(transport,
		localapi.WithTimeout(c.timeout()),
		localapi.WithLogger(c.ensureLogger()),
	), nil
}

func (c *commandContext) withClient(fn func(*localapi.Client) error) error {
	client, err := c.newClient()
	if err != nil {
		return err
	}
	if err := fn(client); err != nil {
		return wrapDaemonError(err, client.Transport().Endpoint())
	}
	return nil
}

func (c *commandContext) jsonOutput() bool {
	if c.jsonFlag != nil && *c.jsonFlag {
		return true
	}
	if cfg, err := c.ensureConfig(); err == nil {
		return cfg.Output.Format == "json"
	}
	return false
}

func (c *commandContext) colorize() bool {
	cfg, err := c.ensureConfig()
	if err != nil {
		return false
	}
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(os.Stdout)
	}
}

// wrapDaemonError attaches an actionable hint to transport-level failures.
func wrapDaemonError(err error, endpoint string) error {
	var reqErr *localapi.RequestError
	if !errors.As(err, &reqErr) {
		return err
	}
	switch {
	case errors.Is(err, syscall.ENOENT) || errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("connect to daemon: %s not found; is tailscaled running?: %w", endpoint, err)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connect to daemon: %s refused the connection; is tailscaled running?: %w", endpoint, err)
	default:
		return err
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
