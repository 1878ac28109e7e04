package core

// Signal is an out-of-band event produced by Session.HandleKey for the UI
// layer: save outcomes that deserve a transient message, and quit. A nil
// Signal means the key was fully handled inside the session.
type Signal any

// SavedSignal reports a successful save.
type SavedSignal struct {
	Path string
}

// ErrorSignal reports a failed operation the user should see.
type ErrorSignal struct {
	Err error
}

// QuitSignal asks the UI layer to end the program after the current event.
type QuitSignal struct{}
