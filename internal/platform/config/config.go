// Package config loads application configuration from an optional INI file
// layered over built-in defaults.
package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/ini.v1"
)

// Remote configures the outbound fetch of the employee listing.
type Remote struct {
	Endpoint string
	Timeout  time.Duration
	// Retries is the number of extra attempts after the first, on transport
	// error or 5xx response.
	Retries int
}

// Pagination configures the derived page window.
type Pagination struct {
	PageSize int
}

// Server configures the HTTP presentation server.
type Server struct {
	Host string
	Port int
}

// Config is the full application configuration.
type Config struct {
	Remote     Remote
	Pagination Pagination
	Server     Server
}

// Default returns the built-in configuration: the public employee listing
// endpoint, a 10s fetch timeout with one retry, three records per page.
func Default() Config {
	return Config{
		Remote: Remote{
			Endpoint: "https://jsonplaceholder.typicode.com/users",
			Timeout:  10 * time.Second,
			Retries:  1,
		},
		Pagination: Pagination{PageSize: 3},
		Server:     Server{Host: "", Port: 8080},
	}
}

// Load reads the INI file at path and overlays it on the defaults. An empty
// path or a missing file yields the defaults; a malformed file is an error.
//
// Recognized keys:
//
//	[remote]     endpoint, timeout_seconds, retries
//	[pagination] page_size
//	[server]     host, port
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
	}

	remote := file.Section("remote")
	cfg.Remote.Endpoint = remote.Key("endpoint").MustString(cfg.Remote.Endpoint)
	cfg.Remote.Timeout = time.Duration(remote.Key("timeout_seconds").MustInt(int(cfg.Remote.Timeout/time.Second))) * time.Second
	cfg.Remote.Retries = remote.Key("retries").MustInt(cfg.Remote.Retries)

	cfg.Pagination.PageSize = file.Section("pagination").Key("page_size").MustInt(cfg.Pagination.PageSize)

	server := file.Section("server")
	cfg.Server.Host = server.Key("host").MustString(cfg.Server.Host)
	cfg.Server.Port = server.Key("port").MustInt(cfg.Server.Port)

	if cfg.Pagination.PageSize <= 0 {
		return Config{}, fmt.Errorf("page_size must be positive, got %d", cfg.Pagination.PageSize)
	}

	return cfg, nil
}
