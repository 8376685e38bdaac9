package consoles

type Console interface {
	Printf(format string, a ...any)

	// Prepare formats a message the same way Printf would, without
	// printing it. Useful to prefix output coming from other processes.
	Prepare(format string, a ...any) string

	PushPrefix(format string, a ...any)
	PopPrefix()
}
