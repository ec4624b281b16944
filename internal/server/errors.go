package server

import "errors"

// errNoListenAddress is returned by NewServer when the configuration carries
// no HTTP listen address.
var errNoListenAddress = errors.New("no HTTP listen address configured")
