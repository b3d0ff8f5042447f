package locker

import "go.uber.org/fx"

// Module wires the per-account lock registry for dependency injection.
var Module = fx.Provide(
	NewAccountLocks,
	func(l *AccountLocks) Locker { return l },
)
