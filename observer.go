package mldsabip39

// OperationObserverFunc receives one event per keygen, sign or verify
// call: the operation name, the level it ran at, and whether it returned
// without a structural error. Observers must not block.
type OperationObserverFunc func(op string, level Level, ok bool)

var opObserver OperationObserverFunc

// SetOperationObserver installs a process-wide observer for signature
// operations, or removes it when fn is nil. Install once at startup; the
// hook is not synchronized against in-flight operations. The telemetry
// subpackage provides a prometheus-backed observer.
func SetOperationObserver(fn OperationObserverFunc) {
	opObserver = fn
}

func observeOp(op string, level Level, ok bool) {
	if opObserver != nil {
		opObserver(op, level, ok)
	}
}
