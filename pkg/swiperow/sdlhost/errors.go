package sdlhost

import "errors"

var errEmptyImage = errors.New("image has no pixels")
