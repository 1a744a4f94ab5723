package platform

import "errors"

var ErrUnsupportedPlatform = errors.New("unsupported platform")
