package sclerr

// Option is an Error option function
type Option func(*Error)

func WithMessage(msg string) Option  { return func(e *Error) { e.Message = msg } }
func WithElement(elem string) Option { return func(e *Error) { e.Element = elem } }
func WithPath(path string) Option    { return func(e *Error) { e.Path = path } }
func WithSeverity(s Severity) Option { return func(e *Error) { e.Severity = s } }
func WithRegistry(r Registry) Option { return func(e *Error) { e.Registry = r } }
