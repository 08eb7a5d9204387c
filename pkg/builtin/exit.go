package builtin

// Exit (aliased "quit") requests loop termination. It never itself stops
// anything — pkg/repl checks ExitRequested after every dispatched line and
// breaks its own loop, since a command has no direct handle on the REPL
// that invoked it.
func (h *Handler) Exit(code int) error {
	h.ExitRequested = true
	h.RequestedExitCode = code
	return nil
}
