package submit

// User-facing messages for submission failures.
const (
	MsgNoFile       = "Please select a file before submitting."
	MsgFileTooLarge = "File size exceeds 10MB limit."
	MsgBlankTitle   = "Please enter a job title."
	MsgBadFileType  = "Invalid file type. Please upload a PDF, DOC, or DOCX file."

	// MsgGenericFailure is shown for transport failures; the underlying
	// detail goes to the log, not the user.
	MsgGenericFailure = "An error occurred while processing your resume. Please try again."
)

// ValidationError is a submission rejected by a local check, before any
// request is made.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}
