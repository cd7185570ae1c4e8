package problemgen

// Ledger records the parameter keys already emitted in one batch.
// A fresh ledger is used per batch; it is not safe for concurrent use.
type Ledger struct {
	keys map[string]struct{}
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{keys: make(map[string]struct{})}
}

// Reset forgets every reserved key.
func (l *Ledger) Reset() {
	clear(l.keys)
}

// TryReserve records key and reports true if it was not already present.
func (l *Ledger) TryReserve(key string) bool {
	if _, ok := l.keys[key]; ok {
		return false
	}
	l.keys[key] = struct{}{}
	return true
}

// Has reports whether key has been reserved.
func (l *Ledger) Has(key string) bool {
	_, ok := l.keys[key]
	return ok
}

// Len returns the number of reserved keys.
func (l *Ledger) Len() int {
	return len(l.keys)
}
