package logfactory

const (
	// DefaultMessageFormat is the message template applied when a Config
	// does not supply one. Tokens: {time}, {name}, {level}, {message}.
	DefaultMessageFormat = "{time} - {name} - {level} - {message}"

	// defaultTimeFormat renders full date+time when no time format is given.
	defaultTimeFormat = "2006-01-02 15:04:05"

	// rotatingTimeFormat is forced for file output with daily rotation:
	// the rotated file names already carry the date.
	rotatingTimeFormat = "15:04:05"

	loggerFieldName = "logger"
	rootLoggerName  = "root"
	emptyString     = ""
)

const (
	errMsgBlankName     = "logger name must be a non-empty string"
	errMsgConfigInvalid = "logging configuration is invalid"
)
