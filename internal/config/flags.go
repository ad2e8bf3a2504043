package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
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

// ParseFlags parses the client command line.
//
// Flags:
//
//	-a backend address, with or without scheme
//	-request-timeout outbound request timeout (e.g., "30s", "1m")
//	-d local storage DSN
//	-callback-address OAuth loopback listener in format [host]:[port]
//	-poll-interval document status poll interval (e.g., "10s")
//	-log-file client log file path
//	-log-level client log level
//	-dev-login show the developer login entry
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, error) {
	var callbackAddress NetAddress
	var backendAddress string
	var requestTimeout time.Duration
	var databaseDSN string
	var pollInterval time.Duration
	var logFile, logLevel string
	var devLogin bool
	var jsonConfigPath string

	fs := flag.NewFlagSet("campus-assistant", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&backendAddress, "a", "", "Backend address")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Local storage DSN")
	fs.Var(&callbackAddress, "callback-address", "OAuth callback listener host:port")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Document status poll interval")
	fs.StringVar(&logFile, "log-file", "", "Log file path")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.BoolVar(&devLogin, "dev-login", false, "Enable developer login")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			DevLogin: devLogin,
		},
		Adapter: Adapter{
			HTTPAddress:    backendAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Callback: Callback{
			Address: callbackAddress.String(),
		},
		Workers: Workers{
			DocumentPollInterval: pollInterval,
		},
		Log: Log{
			File:  logFile,
			Level: logLevel,
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

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
