package bot

import "errors"

var ErrShopNotFound = errors.New("shop not found for instance")
