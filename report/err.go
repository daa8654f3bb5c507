package report

import (
	"github.com/ezrec/xbacktrace/translate"
)

var f = translate.From

type ErrFormat string

func (err ErrFormat) Error() string {
	return f("format %v unknown", string(err))
}
