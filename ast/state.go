package ast

// EvalState is the interpreter's process-wide evaluation state: the parts
// of a running script's behavior that depend on commands executed earlier,
// rather than on the expression currently being evaluated.
//
// The zero EvalState is the correct state for a script that has not yet
// executed an HPMODE command.
type EvalState struct {
	// HPMode is toggled by each HPMODE command. While set, every TCU or USB
	// command whose frame carries an ESC (0x1B) gets one extra NUL right
	// after it: the hex pair "00" in TCU frames, a raw 0x00 byte in USB
	// frames. Frames without an ESC are unchanged.
	HPMode bool
}
