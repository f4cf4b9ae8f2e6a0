package format

import (
	"encoding"

	"github.com/yongjiguan/repESP/gausslog"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(rep *gausslog.Report) error
}
