package launch

// Preflight exit codes. Each failure gets its own code so operators can tell
// causes apart from exit status alone.
const (
	ExitMissingURL        = 1
	ExitMissingToken      = 2
	ExitMissingUsername   = 3
	ExitTransportConflict = 4
)

// ExitError is a fatal preflight failure carrying a stable exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string {
	return e.Message
}
