package config

import (
	"errors"
	"flag"
	"net"
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

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (SQLite path on the client, PostgreSQL DSN on the server)
//	-c/-config json file path with configs
//	-password-hash-key password hash key
//	-password-hash-scheme password hash scheme (sha256, argon2id)
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-token-duration token duration (e.g., "1h", "30m")
//	-request-timeout server request timeout (e.g., "30s", "1m")
//	-hash-key response signing key
//	-remote remote directory address
//	-remote-token device token for the remote directory
//	-remote-timeout remote request timeout
//	-pull-timeout bootstrap pull timeout
//	-log-dir client log directory
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("directory", flag.ContinueOnError)

	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var passwordHashKey, passwordHashScheme string
	var tokenSignKey, tokenIssuer string
	var tokenDuration, requestTimeout time.Duration
	var hashKey string
	var remoteAddress, remoteToken string
	var remoteTimeout, pullTimeout time.Duration
	var logDir string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&passwordHashKey, "password-hash-key", "", "Password hash key")
	fs.StringVar(&passwordHashScheme, "password-hash-scheme", "", "Password hash scheme (sha256, argon2id)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Token duration (e.g., 1h, 30m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&hashKey, "hash-key", "", "Response signing key")
	fs.StringVar(&remoteAddress, "remote", "", "Remote directory address")
	fs.StringVar(&remoteToken, "remote-token", "", "Remote directory device token")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout")
	fs.DurationVar(&pullTimeout, "pull-timeout", 0, "Bootstrap pull timeout")
	fs.StringVar(&logDir, "log-dir", "", "Client log directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			PasswordHashKey:    passwordHashKey,
			PasswordHashScheme: passwordHashScheme,
			TokenSignKey:       tokenSignKey,
			TokenIssuer:        tokenIssuer,
			TokenDuration:      tokenDuration,
			HashKey:            hashKey,
			LogDir:             logDir,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    remoteAddress,
			RequestTimeout: remoteTimeout,
			Token:          remoteToken,
		},
		Workers:      Workers{PullTimeout: pullTimeout},
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
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
