package log

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// attrText renders one slog attribute as key=value for the host's flat
// text log.
func attrText(attr slog.Attr) string {
	attr.Value = attr.Value.Resolve()

	var value string
	switch attr.Value.Kind() {
	case slog.KindString:
		value = strconv.Quote(attr.Value.String())
	case slog.KindInt64:
		value = strconv.FormatInt(attr.Value.Int64(), 10)
	case slog.KindUint64:
		value = strconv.FormatUint(attr.Value.Uint64(), 10)
	case slog.KindBool:
		value = strconv.FormatBool(attr.Value.Bool())
	case slog.KindFloat64:
		value = strconv.FormatFloat(attr.Value.Float64(), 'g', -1, 64)
	case slog.KindTime:
		value = attr.Value.Time().Format(time.RFC3339Nano)
	case slog.KindDuration:
		value = attr.Value.Duration().String()
	case slog.KindAny:
		v := attr.Value.Any()
		switch {
		case v == nil:
			value = "<nil>"
		default:
			if err, isErr := v.(error); isErr {
				value = strconv.Quote(err.Error())
			} else if data, marshalErr := json.Marshal(v); marshalErr == nil {
				value = string(data)
			} else {
				value = fmt.Sprintf("%v", v)
			}
		}
	default:
		value = fmt.Sprintf("%v", attr.Value.Any())
	}

	return attr.Key + "=" + value
}
