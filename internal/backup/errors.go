package backup

import "errors"

var ErrBackupFailed = errors.New("backup failed")
