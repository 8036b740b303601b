package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// NetAddress holds structured network address data for host and port.
// It implements the pflag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses command-line arguments (without the program name).
//
// Flags:
//
//	-a, --address            server address in format [host]:[port]
//	-c, --config             json file path with configs
//	--session-secret         session token signing key
//	--token-issuer           session token issuer name
//	--token-duration         session lifetime (e.g., "168h")
//	--request-timeout        API request timeout (e.g., "30s")
//	--data-dir               registry and instance base directory
//	--data-dir-external      host path of the data directory for volume binds
//	--max-users              registry capacity
//	--disable-containers     never invoke the container runtime
//	--disable-file-browser   run the sync engine only
//	--compose-command        orchestration command (e.g., "docker compose")
//	--log-level              zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var sessionSecret, tokenIssuer, logLevel string
	var tokenDuration, requestTimeout time.Duration
	var dataDir, externalDataDir string
	var maxUsers int
	var disableContainers, disableFileBrowser bool
	var composeCommand string

	fs := pflag.NewFlagSet("go-sync-hub", pflag.ContinueOnError)
	fs.VarP(&serverAddress, "address", "a", "Net address host:port")
	fs.StringVarP(&jsonConfigPath, "config", "c", "", "JSON config file path")
	fs.StringVar(&sessionSecret, "session-secret", "", "Session token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Session token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Session lifetime (e.g., 168h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s, 1m)")
	fs.StringVar(&dataDir, "data-dir", "", "Registry and instance base directory")
	fs.StringVar(&externalDataDir, "data-dir-external", "", "Host path of the data directory")
	fs.IntVar(&maxUsers, "max-users", 0, "Registry capacity")
	fs.BoolVar(&disableContainers, "disable-containers", false, "Never invoke the container runtime")
	fs.BoolVar(&disableFileBrowser, "disable-file-browser", false, "Run the sync engine only")
	fs.StringVar(&composeCommand, "compose-command", "", "Orchestration command")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			SessionSecret: sessionSecret,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			LogLevel:      logLevel,
		},
		Storage: Storage{
			DataDir:         dataDir,
			ExternalDataDir: externalDataDir,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Instances: Instances{
			MaxUsers:           maxUsers,
			DisableContainers:  disableContainers,
			DisableFileBrowser: disableFileBrowser,
			ComposeCommand:     composeCommand,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Type implements pflag.Value.
func (a *NetAddress) Type() string {
	return "host:port"
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
