package config

import (
	"errors"
	"flag"
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

// stringList is a comma separated flag.Value.
type stringList []string

func (l *stringList) String() string {
	return strings.Join(*l, ",")
}

func (l *stringList) Set(s string) error {
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			*l = append(*l, v)
		}
	}
	return nil
}

// ParseFlags parses all configuration flags of flag.CommandLine.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d ledger database DSN
//	-c/-config json file path with configs
//	-static-dir directory served under "/"
//	-cors-origins comma separated allowed CORS origins
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-square-token Square access token
//	-square-env sandbox or production
//	-square-version Square-Version header
//	-square-base-url Square API root override
//	-square-timeout Square request timeout (e.g., "10s")
//	-square-retries retries per Square call, negative disables
//	-location-id default Square location id
//	-sweep-interval how often stale PENDING attempts are swept, 0 disables
//	-pending-max-age age after which a PENDING attempt is canceled
//	-log-level zerolog level
func ParseFlags() (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var staticDir string
	var corsOrigins stringList
	var requestTimeout time.Duration
	var squareToken, squareEnv, squareVersion, squareBaseURL string
	var squareTimeout time.Duration
	var squareRetries int
	var locationID string
	var sweepInterval, pendingMaxAge time.Duration
	var logLevel string

	fs := flag.CommandLine
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Ledger database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&staticDir, "static-dir", "", "Directory with static files")
	fs.Var(&corsOrigins, "cors-origins", "Comma separated allowed CORS origins")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&squareToken, "square-token", "", "Square access token")
	fs.StringVar(&squareEnv, "square-env", "", "Square environment: sandbox or production")
	fs.StringVar(&squareVersion, "square-version", "", "Square-Version header")
	fs.StringVar(&squareBaseURL, "square-base-url", "", "Square API root override")
	fs.DurationVar(&squareTimeout, "square-timeout", 0, "Square request timeout (e.g., 10s)")
	fs.IntVar(&squareRetries, "square-retries", 0, "Retries per Square call, negative disables")
	fs.StringVar(&locationID, "location-id", "", "Default Square location id")
	fs.DurationVar(&sweepInterval, "sweep-interval", 0, "Stale PENDING sweep interval, 0 disables")
	fs.DurationVar(&pendingMaxAge, "pending-max-age", 0, "Age after which a PENDING attempt is canceled")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(os.Args[1:]); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Square: Square{
			AccessToken: squareToken,
			Environment: squareEnv,
			Version:     squareVersion,
			BaseURL:     squareBaseURL,
			Timeout:     squareTimeout,
			MaxRetries:  squareRetries,
			LocationID:  locationID,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
			AllowedOrigins: corsOrigins,
		},
		Workers: Workers{
			PendingSweepInterval: sweepInterval,
			PendingMaxAge:        pendingMaxAge,
		},
		Log:          Log{Level: logLevel},
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
// It validates the port range, checks IP correctness unless host is empty
// or "localhost", and returns an error if the format or values are invalid.
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
		return errors.New("port number is an integer in 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
