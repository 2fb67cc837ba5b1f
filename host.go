package podnote

import "strings"

// Host is a recognized podcast hosting domain.
type Host string

// Recognized hosts.
const (
	HostSpotify Host = "open.spotify.com"
	HostApple   Host = "podcasts.apple.com"
)

// Hosts lists the recognized hosts in the order ResolveHost tests them.
var Hosts = []Host{HostSpotify, HostApple}

// ResolveHost classifies rawURL by the first recognized host it contains
// and returns the request path, which is everything after the first
// occurrence of the host name. The path may be empty.
// Returns EUNRECOGNIZEDHOST if rawURL contains no recognized host.
func ResolveHost(rawURL string) (Host, string, error) {
	for _, host := range Hosts {
		if _, path, ok := strings.Cut(rawURL, string(host)); ok {
			return host, path, nil
		}
	}
	return "", "", Errorf(EUNRECOGNIZEDHOST, "unrecognized podcast host: %q", rawURL)
}
