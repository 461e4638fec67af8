package domain

// LockOrder returns the canonical acquisition order for the locks of two
// wallets. The same pair always yields the same order regardless of call
// direction, so no two concurrent operations can ever request the same two
// locks in opposite orders and a circular wait is impossible.
//
// Rule: a system wallet is locked before a user wallet; when both wallets are
// system wallets or both are user wallets, the lexicographically smaller
// wallet ID goes first.
func LockOrder(a, b WalletRef) (first, second WalletRef) {
	if a.System != b.System {
		if a.System {
			return a, b
		}
		return b, a
	}
	if a.WalletID <= b.WalletID {
		return a, b
	}
	return b, a
}
