package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags from the process command line.
//
// Flags:
//
//	-a server address in format [host]:[port]; the client uses it as the API address
//	-api-url full API base URL of the backend (client)
//	-d database DSN (server)
//	-local-db SQLite session database path (client)
//	-redis-address redis host:port (server)
//	-amqp-url AMQP broker URL (server)
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "24h")
//	-reset-token-ttl password reset token lifetime (e.g., "1h")
//	-reset-link-base URL the reset token is appended to
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-hash-key reset token hash key
//	-refresh-interval client list refresh interval (e.g., "1m")
func ParseFlags() (*StructuredConfig, error) {
	return parseFlags(flag.CommandLine, os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var apiURL string
	var databaseDSN, localDB string
	var redisAddress, amqpURL string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, resetTokenTTL time.Duration
	var resetLinkBase string
	var requestTimeout time.Duration
	var hashKey string
	var refreshInterval time.Duration

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&apiURL, "api-url", "", "API base URL")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&localDB, "local-db", "", "Local session database path")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address host:port")
	fs.StringVar(&amqpURL, "amqp-url", "", "AMQP broker URL")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 24h)")
	fs.DurationVar(&resetTokenTTL, "reset-token-ttl", 0, "Password reset token lifetime (e.g., 1h)")
	fs.StringVar(&resetLinkBase, "reset-link-base", "", "Password reset link base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Reset token hash key")
	fs.DurationVar(&refreshInterval, "refresh-interval", 0, "Client list refresh interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	adapterAddress := apiURL
	if adapterAddress == "" {
		adapterAddress = serverAddress.String()
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
			ResetTokenTTL: resetTokenTTL,
			ResetLinkBase: resetLinkBase,
			HashKey:       hashKey,
		},
		Storage: Storage{
			DB:       DB{DSN: databaseDSN},
			ClientDB: ClientDBSource{DSN: localDB},
			Redis:    Redis{Address: redisAddress},
		},
		Broker: Broker{URL: amqpURL},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: requestTimeout,
		},
		Workers:      Workers{RefreshInterval: refreshInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(strings.Trim(host, "[]"))
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
