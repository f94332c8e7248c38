package validation

import "log/slog"

// LogValue implements slog.LogValuer. A Success logs as a group with
// status=success and the value; a Failure as status=failure and the message.
func (v Validation[A]) LogValue() slog.Value {
	if v.ok {
		return slog.GroupValue(
			slog.String("status", "success"),
			slog.Any("value", v.value),
		)
	}
	return slog.GroupValue(
		slog.String("status", "failure"),
		slog.String("error", v.msg),
	)
}
