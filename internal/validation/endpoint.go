package validation

import (
	"net"
	"net/url"
	"strings"

	validation "github.com/jellydator/validation"
)

// Endpoint validates that a string is a service management endpoint that
// NormalizeEndpoint accepts.
var Endpoint = validation.By(func(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_endpoint_type", "must be a string")
	}
	if s == "" {
		return nil // Let Required handle empty strings
	}
	_, err := NormalizeEndpoint(s)
	return err
})

// NormalizeEndpoint returns the canonical form of a service management
// endpoint: an https scheme is assumed when none is given, scheme and host are
// lowercased, default ports are dropped and the path always ends with "/".
//
//	management.core.windows.net        -> https://management.core.windows.net/
//	HTTPS://Management.Example.com:443 -> https://management.example.com/
func NormalizeEndpoint(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", validation.NewError("validation_endpoint_empty", "endpoint must not be empty")
	}
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", validation.NewError("validation_endpoint_format", "endpoint must be a valid URL")
	}

	scheme := strings.ToLower(u.Scheme)
	if scheme != "https" && scheme != "http" {
		return "", validation.NewError("validation_endpoint_scheme", "endpoint scheme must be http or https")
	}
	if u.User != nil || u.RawQuery != "" || u.Fragment != "" {
		return "", validation.NewError(
			"validation_endpoint_parts",
			"endpoint must not contain credentials, query or fragment",
		)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", validation.NewError("validation_endpoint_host", "endpoint must have a host")
	}

	port := u.Port()
	if (scheme == "https" && port == "443") || (scheme == "http" && port == "80") {
		port = ""
	}
	hostPort := host
	if port != "" {
		hostPort = net.JoinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		hostPort = "[" + host + "]"
	}

	path := u.EscapedPath()
	if !strings.HasSuffix(path, "/") {
		path += "/"
	}

	return scheme + "://" + hostPort + path, nil
}
